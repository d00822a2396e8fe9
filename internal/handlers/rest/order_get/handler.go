package order_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"github.com/gorilla/mux"
	"orderflow/internal/generated/dto"
	"orderflow/internal/service/order"
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
	orderID := mux.Vars(r)["id"]

	orderEntity, err := h.service.GetOrder(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	orderDTO := dto.Order{
		ID:                orderEntity.ID,
		Status:            orderEntity.Status.String(),
		DeliveryStartedAt: orderEntity.DeliveryStartedAt,
		CreatedAt:         orderEntity.CreatedAt,
		UpdatedAt:         orderEntity.UpdatedAt,
	}
	// Невалидные координаты наружу не отдаем
	if orderEntity.Customer.Valid() {
		orderDTO.CustomerLat = pointer.To(orderEntity.Customer.Lat)
		orderDTO.CustomerLon = pointer.To(orderEntity.Customer.Lon)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
