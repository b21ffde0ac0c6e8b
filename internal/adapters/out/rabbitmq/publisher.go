// Package rabbitmq publishes committed order lifecycle events to a durable
// queue for out-of-process consumers such as kitchen displays and analytics.
// Live staff clients are served over WebSocket, not through the broker; this
// feed is strictly outbound and optional.
package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const queueName = "order.events"

// Publisher holds an open connection and channel to the broker. Messages are
// published to the default exchange with the lifecycle routing key recorded
// in the message type header.
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewPublisher dials the broker and declares the durable event queue.
func NewPublisher(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	if _, err = channel.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, err
	}

	return &Publisher{
		conn:    conn,
		channel: channel,
	}, nil
}

// Publish marshals message to JSON and delivers it to the event queue as a
// persistent message. The routing key travels in the Type property so
// consumers can filter without parsing the body.
func (p *Publisher) Publish(ctx context.Context, routingKey string, message any) error {
	body, err := json.Marshal(message)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return p.channel.PublishWithContext(ctx,
		"",        // default exchange
		queueName, // routing key = queue name
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Type:         routingKey,
			Body:         body,
		},
	)
}

// Close releases the channel and connection.
func (p *Publisher) Close() error {
	_ = p.channel.Close()
	return p.conn.Close()
}
