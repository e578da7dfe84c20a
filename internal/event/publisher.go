package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ContactPublisher publishes contact events to RabbitMQ. An amqp channel is
// not safe for concurrent publishing, so calls are serialised.
type ContactPublisher struct {
	conn *RabbitMQConnection

	mu                sync.Mutex
	declared          bool
	messagesPublished int64
	messagesFailed    int64
	lastPublishTime   time.Time
}

func NewContactPublisher(conn *RabbitMQConnection) *ContactPublisher {
	return &ContactPublisher{
		conn:            conn,
		lastPublishTime: time.Now(),
	}
}

func (p *ContactPublisher) PublishContactEvent(ctx context.Context, event ContactEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal contact event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.conn.Healthy() {
		p.messagesFailed++
		return fmt.Errorf("rabbitmq connection is closed")
	}

	if !p.declared {
		if err := declareQueue(p.conn.Channel, ContactQueue); err != nil {
			p.messagesFailed++
			return err
		}
		p.declared = true
	}

	err = p.conn.Channel.PublishWithContext(
		ctx,
		"",           // exchange
		ContactQueue, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    event.ID,
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		p.messagesFailed++
		return fmt.Errorf("failed to publish contact event: %w", err)
	}

	p.messagesPublished++
	p.lastPublishTime = time.Now()

	slog.Info("Contact event published", "queue", ContactQueue, "event_id", event.ID, "message_id", event.MessageID)
	return nil
}

func (p *ContactPublisher) HealthCheck() PublisherHealthStatus {
	p.mu.Lock()
	defer p.mu.Unlock()

	return PublisherHealthStatus{
		IsHealthy:         p.conn.Healthy(),
		MessagesPublished: p.messagesPublished,
		MessagesFailed:    p.messagesFailed,
		LastPublishTime:   p.lastPublishTime,
		Queue:             ContactQueue,
	}
}

type PublisherHealthStatus struct {
	IsHealthy         bool      `json:"is_healthy"`
	MessagesPublished int64     `json:"messages_published"`
	MessagesFailed    int64     `json:"messages_failed"`
	LastPublishTime   time.Time `json:"last_publish_time"`
	Queue             string    `json:"queue"`
}
