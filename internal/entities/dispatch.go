package entities

import "time"

// DispatchAssignment итог подбора курьера для готового заказа.
type DispatchAssignment struct {
	OrderID    string
	WorkerID   string
	DistanceKm float64
	AssignedAt time.Time
}
