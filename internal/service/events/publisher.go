package events

import (
	"ChiwawaRelay/entity"
	"ChiwawaRelay/internal/config"
	"ChiwawaRelay/internal/lib/sl"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

const (
	DeliveryEventType = "chiwawa.delivery"
	eventVersion      = 1
	publishTimeout    = 5 * time.Second
)

// Publisher fans delivery events out to a topic exchange.
type Publisher struct {
	conn       *amqp091.Connection
	exchange   string
	routingKey string
	log        *slog.Logger
}

func NewPublisher(conf *config.Config, logger *slog.Logger) (*Publisher, error) {
	if !conf.Amqp.Enabled {
		return nil, nil
	}
	conn, err := amqp091.Dial(conf.Amqp.URL)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(
		conf.Amqp.Exchange, "topic", true, false, false, false, nil,
	); err != nil {
		conn.Close()
		return nil, fmt.Errorf("amqp exchange declare: %w", err)
	}

	return &Publisher{
		conn:       conn,
		exchange:   conf.Amqp.Exchange,
		routingKey: conf.Amqp.RoutingKey,
		log:        logger.With(sl.Module("events.publisher")),
	}, nil
}

func (p *Publisher) Publish(ctx context.Context, key string, msg entity.Envelope) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	msgID := msg.Meta.ID
	if msgID == "" {
		msgID = uuid.NewString()
	}
	cid := msgID
	if msg.Meta.CorrelationID != nil {
		cid = *msg.Meta.CorrelationID
	}

	return ch.PublishWithContext(
		ctx, p.exchange, key, false, false,
		amqp091.Publishing{
			ContentType:   "application/json",
			DeliveryMode:  amqp091.Persistent,
			MessageId:     msgID,
			CorrelationId: cid,
			Timestamp:     time.Now(),
			Body:          body,
		},
	)
}

// Observe publishes a delivery event; failures are logged only.
func (p *Publisher) Observe(delivery entity.Delivery) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := p.Publish(ctx, p.routingKey, DeliveryEnvelope(delivery)); err != nil {
		p.log.With(
			slog.String("delivery", delivery.ID),
			sl.Err(err),
		).Error("publish delivery")
		return
	}
	p.log.With(
		slog.String("delivery", delivery.ID),
		slog.String("exchange", p.exchange),
	).Debug("delivery published")
}

func (p *Publisher) Close() error {
	return p.conn.Close()
}

// DeliveryEnvelope wraps a delivery for the broker. The delivery id doubles as
// the event id so consumers can deduplicate.
func DeliveryEnvelope(delivery entity.Delivery) entity.Envelope {
	return entity.Envelope{
		Meta: entity.EventMeta{
			ID:         delivery.ID,
			Type:       DeliveryEventType,
			Version:    eventVersion,
			OccurredAt: delivery.Time,
		},
		Data: delivery,
	}
}
