package entities

import "time"

// DeliveryWorker курьер доставки. Запись мутирует приложение самого
// курьера, наш сервис ее только читает.
type DeliveryWorker struct {
	ID           string
	Name         string
	Availability WorkerAvailabilityType
	Location     *GeoPoint
	PushToken    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type WorkerAvailabilityType string

const (
	WorkerAvailable WorkerAvailabilityType = "available"
	WorkerBusy      WorkerAvailabilityType = "busy"
	WorkerOffline   WorkerAvailabilityType = "offline"
)

func (t WorkerAvailabilityType) String() string {
	return string(t)
}

type DeliveryWorkerModify struct {
	ID           *string
	Name         *string
	Availability *WorkerAvailabilityType
	Location     *GeoPoint
	PushToken    *string
}
