//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=worker_test
package worker

import (
	"context"

	"orderflow/internal/entities"
)

type Repository interface {
	Update(ctx context.Context, workerModify entities.DeliveryWorkerModify) (*entities.DeliveryWorker, error)
	GetAll(ctx context.Context) ([]entities.DeliveryWorker, error)
}
