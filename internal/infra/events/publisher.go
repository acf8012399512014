package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

var (
	// ErrConnect не удалось подключиться к брокеру
	ErrConnect = errors.New("events: failed to connect to broker")

	// ErrPublish не удалось опубликовать событие
	ErrPublish = errors.New("events: failed to publish event")
)

// MetricsRecorder интерфейс для метрик публикации
type MetricsRecorder interface {
	RecordEventPublished(eventType string, err error)
}

// Publisher публикует события встреч в topic exchange RabbitMQ
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	timeout  time.Duration
	metrics  MetricsRecorder
}

// NewPublisher подключается к брокеру и объявляет exchange. metrics может быть nil
func NewPublisher(url, exchange string, timeout time.Duration, metrics MetricsRecorder) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial: %v", ErrConnect, err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("%w: declare exchange %s: %v", ErrConnect, exchange, err)
	}
	return &Publisher{conn: conn, ch: ch, exchange: exchange, timeout: timeout, metrics: metrics}, nil
}

// Publish отправляет событие с routing key = тип события
func (p *Publisher) Publish(ctx context.Context, event BookingEvent) (err error) {
	defer func() {
		if p.metrics != nil {
			p.metrics.RecordEventPublished(event.Type, err)
		}
	}()

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", ErrPublish, event.Type, err)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	// amqp.Channel не рассчитан на конкурентную публикацию
	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, p.exchange, event.Type, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt,
		Type:         event.Type,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPublish, event.Type, err)
	}
	return nil
}

// Close закрывает канал и соединение
func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NoopPublisher используется, когда брокер выключен
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, BookingEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
