package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/tiendamoderna/tienda/internal/infrastructure/config"
	apperrors "github.com/tiendamoderna/tienda/pkg/errors"
	"github.com/tiendamoderna/tienda/pkg/metrics"
)

// Publisher emits integration events on a topic exchange. With the broker
// disabled in config it degrades to a no-op, so the storefront runs without
// RabbitMQ in development.
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// NewPublisher connects and declares the exchange. A disabled MQ section
// yields a no-op publisher.
func NewPublisher(cfg *config.Config) (*Publisher, error) {
	if !cfg.MQ.Enabled {
		log.Println("broker de eventos deshabilitado, usando publicador nulo")
		return &Publisher{}, nil
	}

	conn, err := amqp.Dial(cfg.MQ.URL)
	if err != nil {
		return nil, fmt.Errorf("error al conectar al broker: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("error al abrir el canal: %w", err)
	}

	if err := channel.ExchangeDeclare(
		cfg.MQ.Exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("error al declarar el exchange: %w", err)
	}

	log.Printf("conexión al broker establecida, exchange %s", cfg.MQ.Exchange)
	return &Publisher{conn: conn, channel: channel, exchange: cfg.MQ.Exchange}, nil
}

// Publish serializes payload as JSON and publishes it under routingKey.
func (p *Publisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	if p.channel == nil {
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return apperrors.Wrap(err, "error al serializar el evento")
	}

	err = p.channel.PublishWithContext(ctx,
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return apperrors.Wrap(err, "error al publicar el evento")
	}

	metrics.MessagesPublishedTotal.WithLabelValues(p.exchange, routingKey).Inc()
	return nil
}

// Close releases the channel and connection.
func (p *Publisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
