//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=workers_get_test
package workers_get

import (
	"context"

	"orderflow/internal/entities"
	"orderflow/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetWorkers(ctx context.Context) ([]entities.DeliveryWorker, error)
}
