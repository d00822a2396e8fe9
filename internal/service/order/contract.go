//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"orderflow/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)

	// UpdateStatusFrom - условное обновление вида
	// UPDATE ... SET status = to WHERE id = $1 AND status = from.
	// Возвращает число затронутых строк: 0 означает проигрыш гонки.
	UpdateStatusFrom(
		ctx context.Context,
		orderID string,
		from entities.OrderStatusType,
		to entities.OrderStatusType,
		markDeliveryStarted bool,
	) (int64, error)
}

type SubOrderRepository interface {
	GetStatusesByOrderID(ctx context.Context, orderID string) ([]entities.SubOrderStatusType, error)
}

type Publisher interface {
	PublishOrderReady(ctx context.Context, orderID string) error
}
