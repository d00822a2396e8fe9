package workers_get

import (
	"encoding/json"
	"net/http"

	"orderflow/internal/generated/dto"
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
	workerEntities, err := h.service.GetWorkers(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	workerDTOs := make([]dto.Worker, len(workerEntities))
	for i, worker := range workerEntities {
		workerDTOs[i].ID = worker.ID
		workerDTOs[i].Name = worker.Name
		workerDTOs[i].Availability = worker.Availability.String()
		workerDTOs[i].PushToken = worker.PushToken
		if worker.Location != nil && worker.Location.Valid() {
			workerDTOs[i].Lat = &worker.Location.Lat
			workerDTOs[i].Lon = &worker.Location.Lon
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(workerDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
