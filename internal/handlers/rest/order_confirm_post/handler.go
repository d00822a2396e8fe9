package order_confirm_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"orderflow/internal/generated/dto"
	"orderflow/internal/service/order"
	"orderflow/internal/service/schedule"
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
	var confirmDTO dto.OrderConfirmRequest
	err := json.NewDecoder(r.Body).Decode(&confirmDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	dueAt, err := h.service.Confirm(r.Context(), confirmDTO.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, schedule.ErrOrderNotConfirmable):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OrderConfirmResponse{
		OrderID:         confirmDTO.OrderID,
		DeliveryStartAt: dueAt,
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
