package worker

import (
	"context"
	"fmt"

	"orderflow/internal/entities"
)

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

func (s *Service) UpdateWorker(ctx context.Context, workerModify entities.DeliveryWorkerModify) (*entities.DeliveryWorker, error) {
	if workerModify.ID == nil || !isValidWorkerID(*workerModify.ID) {
		return nil, ErrInvalidWorkerID
	}

	if workerModify.Name == nil &&
		workerModify.Availability == nil &&
		workerModify.Location == nil &&
		workerModify.PushToken == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if workerModify.Availability != nil && !isValidAvailability(workerModify.Availability.String()) {
		return nil, ErrInvalidAvailability
	}
	if workerModify.Location != nil && !workerModify.Location.Valid() {
		return nil, ErrInvalidLocation
	}

	worker, err := s.repository.Update(ctx, workerModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update worker: %w", err)
	}
	return worker, nil
}

func (s *Service) GetWorkers(ctx context.Context) ([]entities.DeliveryWorker, error) {
	workers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get workers: %w", err)
	}

	return workers, nil
}
