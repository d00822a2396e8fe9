package transition_apply

import (
	"context"
	"fmt"

	"orderflow/internal/entities"
	"orderflow/internal/service/schedule"
)

type orderService interface {
	Transition(ctx context.Context, orderID string, target entities.OrderStatusType) error
}

type ApplyHandlerFactory struct {
	orderService orderService
}

func NewApplyHandlerFactory(orderService orderService) *ApplyHandlerFactory {
	return &ApplyHandlerFactory{
		orderService: orderService,
	}
}

func (f *ApplyHandlerFactory) GetHandler(kind entities.TransitionKind) (schedule.ApplyFn, error) {
	switch kind {
	case entities.TransitionStartDelivery:
		return f.startDeliveryHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", schedule.ErrUndefinedKind, kind)
	}
}

func (f *ApplyHandlerFactory) startDeliveryHandler(ctx context.Context, orderID string) error {
	err := f.orderService.Transition(ctx, orderID, entities.OrderInDelivery)
	if err != nil {
		return fmt.Errorf("start delivery for order %s: %w", orderID, err)
	}
	return nil
}
