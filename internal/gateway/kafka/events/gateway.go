package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"orderflow/internal/entities"
	"orderflow/internal/pkg/config"
)

const (
	resultOK    = "ok"
	resultError = "error"
)

// EventGateway публикует доменные события. Ключ — orderId, чтобы события
// одного заказа попадали в одну партицию.
type EventGateway struct {
	producer producer
	topics   config.KafkaTopics
}

func New(producer producer, topics config.KafkaTopics) *EventGateway {
	return &EventGateway{
		producer: producer,
		topics:   topics,
	}
}

func (g *EventGateway) PublishOrderReady(ctx context.Context, orderID string) error {
	event := entities.OrderReadyEvent{
		OrderID: orderID,
	}

	err := g.publish(ctx, g.topics.OrderReady, orderID, event)
	if err != nil {
		return fmt.Errorf("gateway events, publish order ready: %s: %w", orderID, err)
	}
	return nil
}

func (g *EventGateway) PublishAssignmentRequested(ctx context.Context, orderID string, workerID string) error {
	event := entities.AssignmentRequestedEvent{
		OrderID:  orderID,
		WorkerID: workerID,
	}

	err := g.publish(ctx, g.topics.AssignmentRequested, orderID, event)
	if err != nil {
		return fmt.Errorf("gateway events, publish assignment requested: %s: %w", orderID, err)
	}
	return nil
}

func (g *EventGateway) publish(ctx context.Context, topic string, key string, event any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
	}

	start := time.Now()
	_, _, err = g.producer.SendMessage(msg)

	// Метрики Prometheus
	EventPublishDuration.WithLabelValues(topic).Observe(time.Since(start).Seconds())
	if err != nil {
		EventsPublishedTotal.WithLabelValues(topic, resultError).Inc()
		return fmt.Errorf("send message: %w", err)
	}
	EventsPublishedTotal.WithLabelValues(topic, resultOK).Inc()

	return nil
}
