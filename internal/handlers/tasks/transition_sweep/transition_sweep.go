package transition_sweep

import (
	"context"
	"time"

	"orderflow/pkg/logger"
)

type Service interface {
	Sweep(ctx context.Context) (int64, error)
}

type TransitionSweep struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewTransitionSweep(log logger.Logger, service Service, interval time.Duration) *TransitionSweep {
	return &TransitionSweep{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *TransitionSweep) TTL() time.Duration {
	return s.interval
}

func (s *TransitionSweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	applied, err := s.service.Sweep(ctxWithTimeout)

	if applied > 0 {
		s.log.With(
			logger.NewField("applied_transitions", applied),
		).Info("transition sweep")
	}

	return err
}

func (s *TransitionSweep) Info() string {
	return "transition sweep"
}
