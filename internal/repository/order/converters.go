package order

import (
	"math"

	"orderflow/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	// отсутствующие координаты превращаем в невалидную точку, а не в
	// (0, 0) - нулевой остров валиден для haversine
	customer := entities.GeoPoint{Lat: math.NaN(), Lon: math.NaN()}
	if o.CustomerLat != nil && o.CustomerLon != nil {
		customer = entities.GeoPoint{Lat: *o.CustomerLat, Lon: *o.CustomerLon}
	}

	return &entities.Order{
		ID:                o.ID,
		Status:            entities.OrderStatusType(o.Status),
		Customer:          customer,
		DeliveryStartedAt: o.DeliveryStartedAt,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}
	orderDB := &OrderModifyDB{}

	if orderModify.ID != nil {
		orderDB.ID = orderModify.ID
	}
	if orderModify.Status != nil {
		status := orderModify.Status.String()
		orderDB.Status = &status
	}
	if orderModify.Customer != nil {
		lat := orderModify.Customer.Lat
		lon := orderModify.Customer.Lon
		orderDB.CustomerLat = &lat
		orderDB.CustomerLon = &lon
	}

	return orderDB
}
