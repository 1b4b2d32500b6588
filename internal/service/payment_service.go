package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aetheris/airline-platform/internal/domain"
	"github.com/aetheris/airline-platform/internal/events"
	"github.com/aetheris/airline-platform/internal/repository"
)

// PaymentService records payments and emits payment events.
type PaymentService struct {
	payments   repository.PaymentRepository
	dispatcher events.Dispatcher
}

// NewPaymentService builds the service.
func NewPaymentService(payments repository.PaymentRepository, dispatcher events.Dispatcher) *PaymentService {
	return &PaymentService{payments: payments, dispatcher: dispatcher}
}

// Record stores a payment with a fresh reference and publishes the event.
func (s *PaymentService) Record(ctx context.Context, payment *domain.Payment) error {
	payment.Reference = uuid.NewString()
	if payment.Status == "" {
		payment.Status = domain.PaymentStatusSettled
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventPaymentRecorded,
			Timestamp: time.Now(),
			Payload: events.PaymentRecordedPayload{
				PaymentID:     payment.ID,
				ReservationID: payment.ReservationID,
				Amount:        payment.Amount,
				Reference:     payment.Reference,
			},
		})
	}
	return nil
}

// Refund marks a payment refunded.
func (s *PaymentService) Refund(ctx context.Context, id int64) error {
	return s.payments.UpdateStatus(ctx, id, domain.PaymentStatusRefunded)
}

// Get returns a payment by id.
func (s *PaymentService) Get(ctx context.Context, id int64) (*domain.Payment, error) {
	return s.payments.GetByID(ctx, id)
}

// ListByReservation returns payments against one reservation.
func (s *PaymentService) ListByReservation(ctx context.Context, reservationID int64) ([]domain.Payment, error) {
	return s.payments.ListByReservation(ctx, reservationID)
}
