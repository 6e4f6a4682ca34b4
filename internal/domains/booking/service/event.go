package service

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=../mocks/event_mock.go -package=mocks

import (
	"context"
	"time"

	"clearance/config"
	"clearance/infras/kafka"
	"clearance/infras/otel"
	"clearance/internal/domains/booking/model"
	"clearance/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	EventBookingSaved     = "booking.saved"
	EventBookingDeleted   = "booking.deleted"
	EventJobCreated       = "job.created"
	EventJobDeleted       = "job.deleted"
	EventJobStatusChanged = "job.status_changed"

	headerEventType = "event_type"
)

// Event is the payload written to the booking events topic. Events of one
// booking share a message key and therefore a partition.
type Event struct {
	Type           string    `json:"type"`
	BookingID      string    `json:"booking_id"`
	BookingNumber  string    `json:"booking_number"`
	BookingStatus  string    `json:"booking_status"`
	Version        int64     `json:"version"`
	JobID          string    `json:"job_id,omitempty"`
	JobCode        string    `json:"job_code,omitempty"`
	JobStatus      string    `json:"job_status,omitempty"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func newEvent(eventType string, booking model.Booking, now time.Time) Event {
	return Event{
		Type:          eventType,
		BookingID:     booking.ID,
		BookingNumber: booking.BookingNumber,
		BookingStatus: string(booking.Status),
		Version:       booking.Version,
		OccurredAt:    now,
	}
}

func newJobEvent(eventType string, booking model.Booking, job model.Job, now time.Time) Event {
	event := newEvent(eventType, booking, now)
	event.JobID = job.ID
	event.JobCode = job.JobCode
	event.JobStatus = string(job.Status)

	return event
}

type Publisher interface {
	Publish(ctx context.Context, events ...Event)
}

type publisherImpl struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		topic:  cfg.Kafka.Topic,
		otel:   otel,
	}
}

// Publish writes the events in order. A failed write is logged and traced;
// the change that raised the events is already committed.
func (p *publisherImpl) Publish(ctx context.Context, events ...Event) {
	if len(events) == 0 {
		return
	}

	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()

	messages := make([]kafka.Message, len(events))
	for i, event := range events {
		messages[i] = kafka.Message{
			Key:     event.BookingID,
			Value:   event,
			Headers: map[string]string{headerEventType: event.Type},
		}
	}

	if err := p.client.SendMessages(ctx, p.topic, messages...); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("topic", p.topic).Int("count", len(events)).Msg("failed to publish booking events")
	}
}
