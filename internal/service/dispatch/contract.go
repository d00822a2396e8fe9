//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"

	"orderflow/internal/entities"
	"orderflow/internal/service/geoindex"
	"orderflow/pkg/logger"
)

type OrderService interface {
	GetOrder(ctx context.Context, orderID string) (*entities.Order, error)
	Transition(ctx context.Context, orderID string, target entities.OrderStatusType) error
}

type WorkerRepository interface {
	GetAvailable(ctx context.Context) ([]entities.DeliveryWorker, error)
}

type Repository interface {
	// Create вставляет запись-клейм. Дубль по заказу - ErrAlreadyDispatched.
	Create(ctx context.Context, assignment entities.DispatchAssignment) error
}

type GeoIndex interface {
	Nearest(origin entities.GeoPoint, candidates []geoindex.Candidate) (*geoindex.Candidate, error)
}

type Notifier interface {
	Send(ctx context.Context, token, title, body string) error
}

type Publisher interface {
	PublishAssignmentRequested(ctx context.Context, orderID, workerID string) error
}

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
