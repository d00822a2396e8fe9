package worker_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"orderflow/internal/entities"
	"orderflow/internal/generated/dto"
	"orderflow/internal/service/worker"
	"orderflow/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var workerUpdateDTO dto.WorkerUpdate
	err := json.NewDecoder(r.Body).Decode(&workerUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	workerModifyEntity := entities.DeliveryWorkerModify{
		ID: &workerUpdateDTO.ID,
	}

	// Опциональные параметры
	if workerUpdateDTO.Name != nil {
		workerModifyEntity.Name = workerUpdateDTO.Name
	}
	if workerUpdateDTO.Availability != nil {
		availabilityType := entities.WorkerAvailabilityType(*workerUpdateDTO.Availability)
		workerModifyEntity.Availability = &availabilityType
	}
	if workerUpdateDTO.Lat != nil && workerUpdateDTO.Lon != nil {
		workerModifyEntity.Location = &entities.GeoPoint{
			Lat: *workerUpdateDTO.Lat,
			Lon: *workerUpdateDTO.Lon,
		}
	}
	if workerUpdateDTO.PushToken != nil {
		workerModifyEntity.PushToken = workerUpdateDTO.PushToken
	}

	res, err := h.service.UpdateWorker(r.Context(), workerModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, worker.ErrMissingRequiredFields),
			errors.Is(err, worker.ErrInvalidWorkerID),
			errors.Is(err, worker.ErrInvalidAvailability),
			errors.Is(err, worker.ErrInvalidLocation):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, worker.ErrWorkerNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, worker.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Worker{
		ID:           res.ID,
		Name:         res.Name,
		Availability: res.Availability.String(),
		PushToken:    res.PushToken,
	}
	if res.Location != nil && res.Location.Valid() {
		response.Lat = &res.Location.Lat
		response.Lon = &res.Location.Lon
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
