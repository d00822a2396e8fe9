package worker

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"orderflow/internal/entities"
	"orderflow/internal/repository"
	"orderflow/internal/service/worker"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Update(ctx context.Context, workerModifyEntity entities.DeliveryWorkerModify) (*entities.DeliveryWorker, error) {
	workerModifyModel := FromDomainModify(&workerModifyEntity)

	builder := qb.
		Update("delivery_workers")

	// опциональные поля
	if workerModifyModel.Name != nil {
		builder = builder.Set("name", workerModifyModel.Name)
	}
	if workerModifyModel.Availability != nil {
		builder = builder.Set("availability", workerModifyModel.Availability)
	}
	if workerModifyModel.Lat != nil && workerModifyModel.Lon != nil {
		builder = builder.Set("lat", workerModifyModel.Lat)
		builder = builder.Set("lon", workerModifyModel.Lon)
	}
	if workerModifyModel.PushToken != nil {
		builder = builder.Set("push_token", workerModifyModel.PushToken)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": workerModifyModel.ID}).
		Suffix("RETURNING id, name, availability, lat, lon, push_token, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected worker repository update error: %w", err)
	}

	var workerModel WorkerDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&workerModel.ID,
			&workerModel.Name,
			&workerModel.Availability,
			&workerModel.Lat,
			&workerModel.Lon,
			&workerModel.PushToken,
			&workerModel.CreatedAt,
			&workerModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, worker.ErrWorkerNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, worker.ErrConflict
		}

		return nil, fmt.Errorf("unexpected worker repository update error: %w", err)
	}

	return ToDomain(&workerModel), nil
}

func (r *Repository) GetAvailable(ctx context.Context) ([]entities.DeliveryWorker, error) {
	query := `
	SELECT id, name, availability, lat, lon, push_token, created_at, updated_at
	FROM delivery_workers
	WHERE availability = 'available'
	ORDER BY id`

	return r.queryList(ctx, query)
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.DeliveryWorker, error) {
	query := `
	SELECT id, name, availability, lat, lon, push_token, created_at, updated_at
	FROM delivery_workers
	ORDER BY id`

	return r.queryList(ctx, query)
}

func (r *Repository) queryList(ctx context.Context, query string) ([]entities.DeliveryWorker, error) {
	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected worker repository list error: %w", err)
	}
	defer rows.Close()

	workerModels := make([]WorkerDB, 0, 8)
	for rows.Next() {
		var workerModel WorkerDB
		err := rows.Scan(
			&workerModel.ID,
			&workerModel.Name,
			&workerModel.Availability,
			&workerModel.Lat,
			&workerModel.Lon,
			&workerModel.PushToken,
			&workerModel.CreatedAt,
			&workerModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected worker repository list error: %w", err)
		}
		workerModels = append(workerModels, workerModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected worker repository list error: %w", err)
	}

	return ToDomainList(workerModels), nil
}
