package worker

import (
	"orderflow/internal/entities"
)

func ToDomain(w *WorkerDB) *entities.DeliveryWorker {
	if w == nil {
		return nil
	}

	var location *entities.GeoPoint
	if w.Lat != nil && w.Lon != nil {
		location = &entities.GeoPoint{Lat: *w.Lat, Lon: *w.Lon}
	}

	return &entities.DeliveryWorker{
		ID:           w.ID,
		Name:         w.Name,
		Availability: entities.WorkerAvailabilityType(w.Availability),
		Location:     location,
		PushToken:    w.PushToken,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}
}

func FromDomainModify(workerModify *entities.DeliveryWorkerModify) *WorkerModifyDB {
	if workerModify == nil {
		return nil
	}
	workerDB := &WorkerModifyDB{}

	if workerModify.ID != nil {
		workerDB.ID = workerModify.ID
	}
	if workerModify.Name != nil {
		workerDB.Name = workerModify.Name
	}
	if workerModify.Availability != nil {
		availability := workerModify.Availability.String()
		workerDB.Availability = &availability
	}
	if workerModify.Location != nil {
		lat := workerModify.Location.Lat
		lon := workerModify.Location.Lon
		workerDB.Lat = &lat
		workerDB.Lon = &lon
	}
	if workerModify.PushToken != nil {
		workerDB.PushToken = workerModify.PushToken
	}

	return workerDB
}

func ToDomainList(workersDB []WorkerDB) []entities.DeliveryWorker {
	if len(workersDB) == 0 {
		return []entities.DeliveryWorker{}
	}

	result := make([]entities.DeliveryWorker, len(workersDB))
	for i, workerDB := range workersDB {
		result[i] = *ToDomain(&workerDB)
	}
	return result
}
