package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ContactNotifier delivers a contact submission to the site team.
type ContactNotifier interface {
	SendContactNotification(name, email, subject, message string, receivedAt time.Time) error
}

// ContactConsumer turns queued contact events into e-mail notifications.
type ContactConsumer struct {
	conn     *RabbitMQConnection
	notifier ContactNotifier
}

func NewContactConsumer(conn *RabbitMQConnection, notifier ContactNotifier) *ContactConsumer {
	return &ContactConsumer{
		conn:     conn,
		notifier: notifier,
	}
}

// Start begins consuming in a background goroutine that stops with ctx.
func (c *ContactConsumer) Start(ctx context.Context) error {
	ch, err := c.conn.Connection.Channel()
	if err != nil {
		return fmt.Errorf("failed to open consumer channel: %w", err)
	}

	if err := declareQueue(ch, ContactQueue); err != nil {
		ch.Close()
		return err
	}

	if err := ch.Qos(1, 0, false); err != nil {
		ch.Close()
		return fmt.Errorf("failed to set qos: %w", err)
	}

	msgs, err := ch.Consume(
		ContactQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		ch.Close()
		return fmt.Errorf("failed to consume %s: %w", ContactQueue, err)
	}

	slog.Info("Contact consumer started", "queue", ContactQueue)

	go func() {
		defer ch.Close()
		for {
			select {
			case <-ctx.Done():
				slog.Info("Contact consumer stopped")
				return
			case msg, ok := <-msgs:
				if !ok {
					slog.Warn("Contact consumer channel closed")
					return
				}
				c.processMessage(msg)
			}
		}
	}()

	return nil
}

func (c *ContactConsumer) processMessage(msg amqp.Delivery) {
	var event ContactEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		slog.Error("failed to unmarshal contact event", "error", err)
		msg.Nack(false, false)
		return
	}

	if err := c.notifier.SendContactNotification(event.Name, event.Email, event.Subject, event.Message, event.ReceivedAt); err != nil {
		slog.Error("failed to send contact notification", "event_id", event.ID, "error", err)
		// A failure is requeued once; a redelivered message is dropped.
		msg.Nack(false, !msg.Redelivered)
		return
	}

	msg.Ack(false)
	slog.Info("Contact notification sent", "event_id", event.ID, "message_id", event.MessageID)
}
