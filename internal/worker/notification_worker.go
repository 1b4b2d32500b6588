package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/aetheris/airline-platform/internal/domain"
	"github.com/aetheris/airline-platform/internal/events"
	"github.com/aetheris/airline-platform/internal/repository"
)

// QueueKey is the redis list carrying notification intake messages from the
// publishing services to the notifications service.
const QueueKey = "notifications:queue"

// IntakeMessage is the queued request to create a notification record.
type IntakeMessage struct {
	PersonID string `json:"person_id"`
	Email    string `json:"email"`
	Title    string `json:"title"`
	Message  string `json:"message"`
}

// QueuePublisher pushes notification intake messages for emitted domain
// events. It runs inside the reservations and payments services.
type QueuePublisher struct {
	client *redis.Client
	logger *zap.Logger
}

// NewQueuePublisher builds a publisher over the given redis client.
func NewQueuePublisher(client *redis.Client, logger *zap.Logger) *QueuePublisher {
	return &QueuePublisher{client: client, logger: logger}
}

// RegisterHandlers subscribes the publisher to the events that fan out into
// notifications.
func (p *QueuePublisher) RegisterHandlers(dispatcher events.Dispatcher) {
	dispatcher.Subscribe(events.EventReservationCreated, p.onReservationCreated)
	dispatcher.Subscribe(events.EventReservationCancelled, p.onReservationCancelled)
	dispatcher.Subscribe(events.EventPaymentRecorded, p.onPaymentRecorded)
}

func (p *QueuePublisher) onReservationCreated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ReservationCreatedPayload)
	if !ok {
		return nil
	}
	return p.enqueue(ctx, IntakeMessage{
		Title:   "Reservation confirmed",
		Message: fmt.Sprintf("Reservation %d for %s on flight %s, seat %s.", payload.ReservationID, payload.CustomerName, payload.FlightID, payload.SeatNumber),
	})
}

func (p *QueuePublisher) onReservationCancelled(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ReservationCancelledPayload)
	if !ok {
		return nil
	}
	return p.enqueue(ctx, IntakeMessage{
		Title:   "Reservation cancelled",
		Message: fmt.Sprintf("Reservation %d for %s has been cancelled.", payload.ReservationID, payload.CustomerName),
	})
}

func (p *QueuePublisher) onPaymentRecorded(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.PaymentRecordedPayload)
	if !ok {
		return nil
	}
	return p.enqueue(ctx, IntakeMessage{
		Title:   "Payment received",
		Message: fmt.Sprintf("Payment %s of %.2f recorded for reservation %d.", payload.Reference, payload.Amount, payload.ReservationID),
	})
}

func (p *QueuePublisher) enqueue(ctx context.Context, msg IntakeMessage) error {
	raw, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	if err := p.client.LPush(ctx, QueueKey, raw).Err(); err != nil {
		p.logger.Warn("failed to enqueue notification", zap.Error(err))
		return err
	}
	return nil
}

// Consumer drains the intake queue into the notification repository. It runs
// inside the notifications service.
type Consumer struct {
	client *redis.Client
	repo   repository.NotificationRepository
	logger *zap.Logger
}

// NewConsumer builds the queue consumer.
func NewConsumer(client *redis.Client, repo repository.NotificationRepository, logger *zap.Logger) *Consumer {
	return &Consumer{client: client, repo: repo, logger: logger}
}

// Run blocks on the queue until the context is cancelled.
func (c *Consumer) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		res, err := c.client.BRPop(ctx, 5*time.Second, QueueKey).Result()
		if err != nil {
			if err == redis.Nil || ctx.Err() != nil {
				continue
			}
			c.logger.Warn("queue read failed", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}
		if len(res) < 2 {
			continue
		}

		var msg IntakeMessage
		if err := json.Unmarshal([]byte(res[1]), &msg); err != nil {
			c.logger.Warn("malformed intake message", zap.Error(err))
			continue
		}

		notification := &domain.Notification{
			PersonID: msg.PersonID,
			Email:    msg.Email,
			Title:    msg.Title,
			Message:  msg.Message,
			Status:   domain.NotificationStatusPending,
		}
		if err := c.repo.Create(ctx, notification); err != nil {
			c.logger.Error("failed to store notification", zap.Error(err))
		}
	}
}
