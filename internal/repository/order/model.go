package order

import "time"

type OrderDB struct {
	ID                string
	Status            string
	CustomerLat       *float64
	CustomerLon       *float64
	DeliveryStartedAt *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type OrderModifyDB struct {
	ID          *string
	Status      *string
	CustomerLat *float64
	CustomerLon *float64
}
