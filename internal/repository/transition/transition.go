package transition

import (
	"context"
	"fmt"
	"time"

	"orderflow/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// CreatePending вставляет отложенный переход. Частичный уникальный
// индекс по (order_id, kind) WHERE state = 'pending' гасит дубли:
// второй активный переход того же вида не появится, завершенные записи
// повторной записи не мешают.
func (r *Repository) CreatePending(ctx context.Context, orderID string, kind entities.TransitionKind, dueAt time.Time) (bool, error) {
	query := `
		INSERT INTO pending_transitions (order_id, kind, due_at, state)
		VALUES ($1, $2, $3, 'pending')
		ON CONFLICT (order_id, kind) WHERE state = 'pending' DO NOTHING
	`

	result, err := r.querier.Exec(ctx, query, orderID, kind.String(), dueAt)
	if err != nil {
		return false, fmt.Errorf("unexpected transition repository create error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *Repository) GetDue(ctx context.Context, now time.Time, limit uint64) ([]entities.PendingTransition, error) {
	query := `
		SELECT id, order_id, kind, due_at, state, attempts, created_at, updated_at
		FROM pending_transitions
		WHERE state = 'pending' AND due_at <= $1
		ORDER BY due_at
		LIMIT $2
	`

	rows, err := r.querier.Query(ctx, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected transition repository getdue error: %w", err)
	}
	defer rows.Close()

	transitionModels := make([]PendingTransitionDB, 0, 8)
	for rows.Next() {
		var transitionModel PendingTransitionDB
		err := rows.Scan(
			&transitionModel.ID,
			&transitionModel.OrderID,
			&transitionModel.Kind,
			&transitionModel.DueAt,
			&transitionModel.State,
			&transitionModel.Attempts,
			&transitionModel.CreatedAt,
			&transitionModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected transition repository getdue error: %w", err)
		}
		transitionModels = append(transitionModels, transitionModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected transition repository getdue error: %w", err)
	}

	return ToDomainList(transitionModels), nil
}

// MarkCompleted идемпотентна: повторная отметка уже завершенной записи
// просто не меняет строк.
func (r *Repository) MarkCompleted(ctx context.Context, id int64) error {
	query := `
		UPDATE pending_transitions
		SET state = 'completed',
		    updated_at = NOW()
		WHERE id = $1 AND state = 'pending'
	`

	_, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected transition repository mark completed error: %w", err)
	}

	return nil
}

// RegisterFailure сжигает попытку. Достигнув потолка, запись уходит в
// failed и больше не попадает в выборку sweep'а.
func (r *Repository) RegisterFailure(ctx context.Context, id int64, maxAttempts int32) error {
	query := `
		UPDATE pending_transitions
		SET attempts = attempts + 1,
		    state = CASE WHEN attempts + 1 >= $2 THEN 'failed' ELSE 'pending' END,
		    updated_at = NOW()
		WHERE id = $1 AND state = 'pending'
	`

	_, err := r.querier.Exec(ctx, query, id, maxAttempts)
	if err != nil {
		return fmt.Errorf("unexpected transition repository register failure error: %w", err)
	}

	return nil
}
