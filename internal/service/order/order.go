package order

import (
	"context"
	"fmt"

	"orderflow/internal/entities"
)

type Service struct {
	repository Repository
	subOrders  SubOrderRepository
	publisher  Publisher
}

func New(repository Repository, subOrders SubOrderRepository, publisher Publisher) *Service {
	return &Service{
		repository: repository,
		subOrders:  subOrders,
		publisher:  publisher,
	}
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	ord, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return ord, nil
}

// Transition переводит заказ в target ровно один раз. Повторный вызов
// с тем же target после успеха - no-op, проигранная гонка за тот же
// переход - тоже no-op: условный UPDATE в хранилище решает победителя.
func (s *Service) Transition(ctx context.Context, orderID string, target entities.OrderStatusType) error {
	if !isValidOrderID(orderID) {
		return ErrInvalidOrderID
	}

	ord, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}

	if ord.Status.ReachedOrPassed(target) {
		return nil
	}
	if !ord.Status.CanAdvanceTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, ord.Status, target)
	}

	markDeliveryStarted := target == entities.OrderInDelivery

	affected, err := s.repository.UpdateStatusFrom(ctx, orderID, ord.Status, target, markDeliveryStarted)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}

	if affected == 0 {
		// CAS не прошел: кто-то успел поменять статус между чтением и
		// записью. Если заказ уже там, куда мы шли - это не ошибка.
		current, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order after lost update race: %w", err)
		}
		if current.Status.ReachedOrPassed(target) {
			return nil
		}
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, current.Status, target)
	}

	if target == entities.OrderReady {
		if err := s.publisher.PublishOrderReady(ctx, orderID); err != nil {
			// статус уже записан, откат не нужен: переход состоялся,
			// доставка события добивается ручным Republish
			return fmt.Errorf("%w: %w", ErrEventPublish, err)
		}
	}

	return nil
}

// ProcessSubOrderStatusChange пересчитывает готовность заказа после
// изменения статуса любой его вендорской части.
func (s *Service) ProcessSubOrderStatusChange(ctx context.Context, orderID string) error {
	advance, err := s.Evaluate(ctx, orderID)
	if err != nil {
		return fmt.Errorf("evaluate order readiness: %w", err)
	}
	if !advance {
		return nil
	}

	if err := s.Transition(ctx, orderID, entities.OrderReady); err != nil {
		return fmt.Errorf("advance order to ready: %w", err)
	}

	return nil
}

// Republish повторно отправляет событие готовности. Нужен когда
// переход закоммитился, а публикация упала.
func (s *Service) Republish(ctx context.Context, orderID string) error {
	if !isValidOrderID(orderID) {
		return ErrInvalidOrderID
	}

	ord, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}

	if !ord.Status.ReachedOrPassed(entities.OrderReady) {
		return fmt.Errorf("%w: status %s", ErrOrderNotReady, ord.Status)
	}

	if err := s.publisher.PublishOrderReady(ctx, orderID); err != nil {
		return fmt.Errorf("%w: %w", ErrEventPublish, err)
	}

	return nil
}
