package dispatch

import "errors"

var (
	ErrInvalidOrderID          = errors.New("invalid order id")
	ErrMissingCustomerLocation = errors.New("order has no customer location")

	// ErrAlreadyDispatched - клейм по заказу уже существует. Нормальный
	// исход при повторной доставке события, не инцидент.
	ErrAlreadyDispatched = errors.New("order already dispatched")

	ErrEventPublish = errors.New("domain event publish failed")
)
