package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

type Order struct {
	ID                string
	Status            OrderStatusType
	Customer          GeoPoint
	DeliveryStartedAt *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type OrderModify struct {
	ID                *string
	Status            *OrderStatusType
	Customer          *GeoPoint
	DeliveryStartedAt *time.Time
}

type OrderStatusType string

const (
	OrderCreated     OrderStatusType = "created"
	OrderPreparing   OrderStatusType = "preparing"
	OrderReady       OrderStatusType = "ready"
	OrderDispatching OrderStatusType = "dispatching"
	OrderInDelivery  OrderStatusType = "in_delivery"
	OrderCompleted   OrderStatusType = "completed"
	OrderCancelled   OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// rank задает порядок статусов вдоль "счастливого пути".
// cancelled вне пути, терминальный из любого нетерминального статуса.
var rank = map[OrderStatusType]int{
	OrderCreated:     0,
	OrderPreparing:   1,
	OrderReady:       2,
	OrderDispatching: 3,
	OrderInDelivery:  4,
	OrderCompleted:   5,
}

func (s OrderStatusType) IsTerminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

// CanAdvanceTo сообщает, допустим ли переход s -> target.
// Статусы двигаются только вперед на один шаг, назад не откатываются.
func (s OrderStatusType) CanAdvanceTo(target OrderStatusType) bool {
	if s.IsTerminal() {
		return false
	}
	if target == OrderCancelled {
		return true
	}

	from, ok := rank[s]
	if !ok {
		return false
	}
	to, ok := rank[target]
	if !ok {
		return false
	}
	return to == from+1
}

// ReachedOrPassed - статус уже равен target либо дальше по пути.
// Используется чтобы отличить проигрыш гонки от нелегального перехода.
func (s OrderStatusType) ReachedOrPassed(target OrderStatusType) bool {
	from, okFrom := rank[s]
	to, okTo := rank[target]
	if !okFrom || !okTo {
		return s == target
	}
	return from >= to
}

var ErrUnparsableOrderID = errors.New("unparsable order id")

// CanonicalOrderID приводит идентификатор заказа к канонической строковой
// форме. Источники пишут ID то числом, то строкой - нормализуем один раз
// на границе, а не ветвимся по представлениям в каждом запросе.
func CanonicalOrderID(raw interface{}) (string, error) {
	switch v := raw.(type) {
	case string:
		if v == "" {
			return "", fmt.Errorf("%w: empty string", ErrUnparsableOrderID)
		}
		return v, nil
	case json.Number:
		return v.String(), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case int:
		return strconv.Itoa(v), nil
	case float64:
		// JSON number по умолчанию; дробный ID заказа - мусор
		if v != float64(int64(v)) {
			return "", fmt.Errorf("%w: non-integer number %v", ErrUnparsableOrderID, v)
		}
		return strconv.FormatInt(int64(v), 10), nil
	case nil:
		return "", fmt.Errorf("%w: missing", ErrUnparsableOrderID)
	default:
		return "", fmt.Errorf("%w: unsupported type %T", ErrUnparsableOrderID, raw)
	}
}
