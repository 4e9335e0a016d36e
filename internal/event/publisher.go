// Package event publishes session lifecycle notifications for the
// presentation layer and any external consumers.
package event

import (
	"encoding/json"
	"log"

	"github.com/streadway/amqp"
)

// Notifier receives state-change notifications emitted by the session
// service. The rendering layer subscribes through this interface so the
// core stays testable headlessly.
type Notifier interface {
	Publish(eventType string, payload any) error
}

// NopNotifier drops every event. Used when no sink is configured.
type NopNotifier struct{}

func (NopNotifier) Publish(string, any) error { return nil }

// LogNotifier writes events to the process log.
type LogNotifier struct{}

func (LogNotifier) Publish(eventType string, payload any) error {
	log.Printf("[EVENT] %s: %v", eventType, payload)
	return nil
}

// EventPublisher forwards session events to a RabbitMQ topic exchange,
// using the event type as routing key.
type EventPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewEventPublisher(amqpURL, exchange string) (*EventPublisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	return &EventPublisher{conn: conn, channel: ch, exchange: exchange}, nil
}

func (p *EventPublisher) Publish(eventType string, payload any) error {
	event := map[string]any{
		"type":    eventType,
		"payload": payload,
	}
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	log.Printf("[EVENT] %s", eventType)

	return p.channel.Publish(
		p.exchange,
		eventType, // routing key
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

func (p *EventPublisher) Close() {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
