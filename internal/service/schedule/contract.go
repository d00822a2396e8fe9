//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=schedule_test
package schedule

import (
	"context"
	"time"

	"orderflow/internal/entities"
	"orderflow/pkg/logger"
)

type Repository interface {
	// CreatePending возвращает false если активный переход того же вида
	// для заказа уже существует.
	CreatePending(ctx context.Context, orderID string, kind entities.TransitionKind, dueAt time.Time) (bool, error)
	GetDue(ctx context.Context, now time.Time, limit uint64) ([]entities.PendingTransition, error)
	MarkCompleted(ctx context.Context, id int64) error
	RegisterFailure(ctx context.Context, id int64, maxAttempts int32) error
}

type OrderService interface {
	GetOrder(ctx context.Context, orderID string) (*entities.Order, error)
}

type SubOrderRepository interface {
	GetStatusesByOrderID(ctx context.Context, orderID string) ([]entities.SubOrderStatusType, error)
}

type (
	ApplyFn        func(ctx context.Context, orderID string) error
	HandlerFactory interface {
		GetHandler(kind entities.TransitionKind) (ApplyFn, error)
	}
)

type StartTimeFactory interface {
	CalculateDueAt(baseTime time.Time, vendorCount int) time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
