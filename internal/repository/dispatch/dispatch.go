package dispatch

import (
	"context"
	"fmt"

	"orderflow/internal/entities"
	"orderflow/internal/repository"
	"orderflow/internal/service/dispatch"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create вставляет запись-клейм назначения. Уникальный индекс по
// order_id делает клейм атомарным: из гонки за заказ выходит ровно
// один победитель, остальные получают ErrAlreadyDispatched.
func (r *Repository) Create(ctx context.Context, assignment entities.DispatchAssignment) error {
	query := `
		INSERT INTO dispatches (order_id, worker_id, distance_km, assigned_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		assignment.OrderID,
		assignment.WorkerID,
		assignment.DistanceKm,
		assignment.AssignedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return dispatch.ErrAlreadyDispatched
		}
		return fmt.Errorf("unexpected dispatch repository create error: %w", err)
	}

	return nil
}
