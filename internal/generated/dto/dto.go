// Package dto содержит тела HTTP запросов и ответов.
// Структуры соответствуют api/openapi.yaml.
package dto

import "time"

type Order struct {
	ID                string
	Status            string     `json:"status"`
	CustomerLat       *float64   `json:"customer_lat"`
	CustomerLon       *float64   `json:"customer_lon"`
	DeliveryStartedAt *time.Time `json:"delivery_started_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type Worker struct {
	ID           string
	Name         string   `json:"name"`
	Availability string   `json:"availability"`
	Lat          *float64 `json:"lat,omitempty"`
	Lon          *float64 `json:"lon,omitempty"`
	PushToken    string   `json:"push_token,omitempty"`
}

type WorkerUpdate struct {
	ID           string   `json:"ID"`
	Name         *string  `json:"name,omitempty"`
	Availability *string  `json:"availability,omitempty"`
	Lat          *float64 `json:"lat,omitempty"`
	Lon          *float64 `json:"lon,omitempty"`
	PushToken    *string  `json:"push_token,omitempty"`
}

type OrderConfirmRequest struct {
	OrderID string `json:"order_id"`
}

type OrderConfirmResponse struct {
	OrderID         string    `json:"order_id"`
	DeliveryStartAt time.Time `json:"delivery_start_at"`
}

type OrderRepublishRequest struct {
	OrderID string `json:"order_id"`
}

type OrderRepublishResponse struct {
	OrderID string `json:"order_id"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
