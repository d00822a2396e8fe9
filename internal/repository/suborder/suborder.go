package suborder

import (
	"context"
	"fmt"

	"orderflow/internal/entities"
)

// Статусы вендорских частей пишет вендорская сторона, наш сервис
// их только агрегирует.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetStatusesByOrderID(ctx context.Context, orderID string) ([]entities.SubOrderStatusType, error) {
	query := `
	SELECT status
	FROM suborders
	WHERE order_id = $1
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected suborder repository get statuses error: %w", err)
	}
	defer rows.Close()

	statuses := make([]entities.SubOrderStatusType, 0, 8)
	for rows.Next() {
		var status string
		if err := rows.Scan(&status); err != nil {
			return nil, fmt.Errorf("unexpected suborder repository get statuses error: %w", err)
		}
		statuses = append(statuses, entities.SubOrderStatusType(status))
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected suborder repository get statuses error: %w", err)
	}

	return statuses, nil
}
