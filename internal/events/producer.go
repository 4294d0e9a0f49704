package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Publisher is the outbound event contract the application layer depends on.
type Publisher interface {
	PublishBookingEvent(ctx context.Context, eventType string, evt BookingEvent)
}

// Producer publishes CloudEvents to Kafka. Publishing is best-effort: a broker
// failure is logged and never fails the originating request.
type Producer struct {
	writer *kafkago.Writer
	source string
	logger *zap.Logger
}

// NewProducer creates a Producer for the given brokers.
func NewProducer(brokers []string, source string, logger *zap.Logger) *Producer {
	writer := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireOne,
		WriteTimeout: 10 * time.Second,
		// The topic may not exist yet on a fresh broker.
		AllowAutoTopicCreation: true,
	}
	return &Producer{writer: writer, source: source, logger: logger}
}

// PublishBookingEvent wraps the payload in a CloudEvent keyed by booking id
// and writes it to the booking event topic.
func (p *Producer) PublishBookingEvent(ctx context.Context, eventType string, evt BookingEvent) {
	ce, err := NewCloudEvent(p.source, eventType, evt)
	if err != nil {
		p.logger.Error("failed to build cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	value, err := json.Marshal(ce)
	if err != nil {
		p.logger.Error("failed to marshal cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	msg := kafkago.Message{
		Topic: TopicBookingEvents,
		Key:   []byte(strconv.FormatInt(evt.BookingID, 10)),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("failed to publish booking event",
			zap.String("event_type", eventType),
			zap.Int64("booking_id", evt.BookingID),
			zap.Error(err),
		)
	}
}

// Close flushes and closes the underlying writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}

// NopPublisher discards every event; used when Kafka is disabled.
type NopPublisher struct{}

// PublishBookingEvent implements Publisher by doing nothing.
func (NopPublisher) PublishBookingEvent(context.Context, string, BookingEvent) {}
