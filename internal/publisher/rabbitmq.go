package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"campus_connect/internal/domain"
)

// RabbitMQ announces opportunity writes on a topic exchange. Routing keys
// have the form <prefix>.<kind>.<action>, e.g. opportunity.work.create.
type RabbitMQ struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	prefix   string
	logger   *slog.Logger
}

type Config struct {
	URL              string
	Exchange         string
	RoutingKeyPrefix string
	QueueName        string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
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
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	if cfg.QueueName != "" {
		q, err := ch.QueueDeclare(
			cfg.QueueName,
			true,
			false,
			false,
			false,
			nil,
		)
		if err != nil {
			ch.Close()
			conn.Close()
			return nil, fmt.Errorf("declare queue: %w", err)
		}

		if err := ch.QueueBind(q.Name, cfg.RoutingKeyPrefix+".#", cfg.Exchange, false, nil); err != nil {
			ch.Close()
			conn.Close()
			return nil, fmt.Errorf("bind queue: %w", err)
		}
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key_prefix", cfg.RoutingKeyPrefix,
	)

	return &RabbitMQ{
		conn:     conn,
		channel:  ch,
		exchange: cfg.Exchange,
		prefix:   cfg.RoutingKeyPrefix,
		logger:   logger,
	}, nil
}

// RoutingKey returns the key an event is published under.
func (r *RabbitMQ) RoutingKey(event domain.OpportunityEvent) string {
	return r.prefix + "." + string(event.Kind) + "." + event.Action
}

func (r *RabbitMQ) Publish(ctx context.Context, event domain.OpportunityEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	key := r.RoutingKey(event)
	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		key,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    event.ID,
			Body:         body,
			Timestamp:    event.Timestamp,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug("published opportunity event",
		"id", event.ID,
		"routing_key", key,
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
