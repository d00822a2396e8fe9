//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=worker_put_test
package worker_put

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
	UpdateWorker(ctx context.Context, workerModify entities.DeliveryWorkerModify) (*entities.DeliveryWorker, error)
}
