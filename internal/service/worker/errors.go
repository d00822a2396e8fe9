package worker

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidWorkerID       = errors.New("invalid worker id")
	ErrInvalidAvailability   = errors.New("invalid availability")
	ErrInvalidLocation       = errors.New("invalid location")

	ErrWorkerNotFound = errors.New("worker not found")
	ErrConflict       = errors.New("worker already exists")
)
