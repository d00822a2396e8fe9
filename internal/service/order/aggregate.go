package order

import (
	"context"
	"fmt"

	"orderflow/internal/entities"
)

// Evaluate проверяет предикат готовности заказа: все вендорские части
// достигли ready. Возвращает true только если заказ реально надо
// продвигать, то есть он еще не прошел ready.
func (s *Service) Evaluate(ctx context.Context, orderID string) (bool, error) {
	if !isValidOrderID(orderID) {
		return false, ErrInvalidOrderID
	}

	ord, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return false, fmt.Errorf("get order: %w", err)
	}

	// заказ уже ready или дальше: агрегация ничего не меняет
	if ord.Status.ReachedOrPassed(entities.OrderReady) {
		return false, nil
	}

	statuses, err := s.subOrders.GetStatusesByOrderID(ctx, orderID)
	if err != nil {
		return false, fmt.Errorf("get sub-order statuses: %w", err)
	}

	// пустой набор дает отказ, а не вакуумную истину
	if len(statuses) == 0 {
		return false, ErrNoSubOrders
	}

	for _, status := range statuses {
		if !status.ReadyForNextStage() {
			return false, nil
		}
	}

	return true, nil
}
