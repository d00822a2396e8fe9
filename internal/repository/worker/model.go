package worker

import "time"

type WorkerDB struct {
	ID           string
	Name         string
	Availability string
	Lat          *float64
	Lon          *float64
	PushToken    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type WorkerModifyDB struct {
	ID           *string
	Name         *string
	Availability *string
	Lat          *float64
	Lon          *float64
	PushToken    *string
}
