package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"orderflow/internal/entities"
	"orderflow/internal/repository"
	"orderflow/internal/service/order"
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

func (r *Repository) Create(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)
	query := `INSERT INTO orders (id, status, customer_lat, customer_lon)
		VALUES ($1, $2, $3, $4)
		RETURNING id, status, customer_lat, customer_lon, delivery_started_at, created_at, updated_at`

	var orderModel OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderModifyModel.ID,
		orderModifyModel.Status,
		orderModifyModel.CustomerLat,
		orderModifyModel.CustomerLon,
	).Scan(
		&orderModel.ID,
		&orderModel.Status,
		&orderModel.CustomerLat,
		&orderModel.CustomerLon,
		&orderModel.DeliveryStartedAt,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrConflict
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `SELECT id, status, customer_lat, customer_lon, delivery_started_at, created_at, updated_at
		FROM orders
		WHERE id = $1`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, orderID).
		Scan(
			&orderModel.ID,
			&orderModel.Status,
			&orderModel.CustomerLat,
			&orderModel.CustomerLon,
			&orderModel.DeliveryStartedAt,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

// UpdateStatusFrom выполняет условный переход статуса: запись меняется
// только если текущий статус равен ожидаемому. Ноль затронутых строк -
// проигранная гонка, решает вызывающий.
func (r *Repository) UpdateStatusFrom(
	ctx context.Context,
	orderID string,
	from, to entities.OrderStatusType,
	markDeliveryStarted bool,
) (int64, error) {
	builder := qb.
		Update("orders").
		Set("status", to.String()).
		Set("updated_at", sq.Expr("NOW()"))

	if markDeliveryStarted {
		builder = builder.Set("delivery_started_at", sq.Expr("NOW()"))
	}

	builder = builder.Where(sq.Eq{
		"id":     orderID,
		"status": from.String(),
	})

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	return result.RowsAffected(), nil
}
