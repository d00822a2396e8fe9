package entities

import "time"

// SubOrder вендорская часть заказа. Создается при разбиении корзины по
// вендорам, статус меняет вендорская сторона - здесь только читаем.
type SubOrder struct {
	ID        string
	OrderID   string
	VendorID  string
	Status    SubOrderStatusType
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SubOrderStatusType string

const (
	SubOrderPending   SubOrderStatusType = "pending"
	SubOrderPreparing SubOrderStatusType = "preparing"
	SubOrderReady     SubOrderStatusType = "ready"
	SubOrderCompleted SubOrderStatusType = "completed"
)

func (s SubOrderStatusType) String() string {
	return string(s)
}

// ReadyForNextStage - предикат готовности для агрегации по родителю.
func (s SubOrderStatusType) ReadyForNextStage() bool {
	return s == SubOrderReady || s == SubOrderCompleted
}
