package entities

// Доменные события. Транспорт дает at-least-once, потребители обязаны
// быть идемпотентны по orderId.
type OrderReadyEvent struct {
	OrderID string `json:"orderId"`
}

type AssignmentRequestedEvent struct {
	OrderID  string `json:"orderId"`
	WorkerID string `json:"workerId"`
}

// Входящее событие смены статуса вендорской части заказа.
type SubOrderStatusChangedEvent struct {
	OrderID    interface{} `json:"orderId"`
	SubOrderID string      `json:"subOrderId"`
	Status     string      `json:"status"`
}
