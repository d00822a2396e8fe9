package order_ready

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"orderflow/internal/entities"
	dispatchservice "orderflow/internal/service/dispatch"
	"orderflow/internal/service/geoindex"
	"orderflow/pkg/logger"
)

type Handler struct {
	dispatchService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, dispatchService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		dispatchService:          dispatchService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("order.ready: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("order.ready: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event entities.OrderReadyEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.ready handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.ready processing")

	assignment, err := h.dispatchService.Dispatch(ctx, event.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.ready handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, dispatchservice.ErrAlreadyDispatched):
			// Повторная доставка события после уже состоявшегося подбора
			msgLog.Info("order.ready handler order already dispatched, skipping")

		case errors.Is(err, geoindex.ErrNoEligibleCandidate):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.ready handler no eligible workers, waiting for republish")

		case errors.Is(err, dispatchservice.ErrMissingCustomerLocation):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.ready handler order has no customer location")

		case errors.Is(err, dispatchservice.ErrEventPublish):
			// Назначение закоммичено, событие не ушло. Не перечитываем
			// сообщение: ручной Republish доставит событие повторно.
			msgLog.With(
				logger.NewField("error", err),
			).Error("order.ready handler assignment committed but event publish failed")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.ready handler failed to dispatch order")
		}
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("order", assignment.OrderID),
		logger.NewField("worker", assignment.WorkerID),
		logger.NewField("distance_km", assignment.DistanceKm),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("order.ready: dispatched")

	sess.MarkMessage(message, "")
	return false
}
