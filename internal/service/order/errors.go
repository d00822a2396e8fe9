package order

import "errors"

var (
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrOrderNotFound  = errors.New("order not found")
	ErrConflict       = errors.New("order already exists")

	// ErrIllegalTransition - запрошенный переход не разрешен таблицей
	// переходов. Это баг логики или гонка данных, не ретраится.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrNoSubOrders - у заказа нет вендорских частей, предикат
	// готовности по пустому набору не срабатывает никогда.
	ErrNoSubOrders = errors.New("order has no sub-orders")

	// ErrEventPublish - переход закоммичен, но событие не ушло в
	// транспорт. Статус заказа уже источник истины, откатывать нечего.
	ErrEventPublish = errors.New("domain event publish failed")

	ErrOrderNotReady = errors.New("order is not in a ready state")
)
