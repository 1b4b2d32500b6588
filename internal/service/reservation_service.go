package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aetheris/airline-platform/internal/domain"
	"github.com/aetheris/airline-platform/internal/events"
	"github.com/aetheris/airline-platform/internal/repository"
)

// ReservationService manages bookings and emits reservation events.
type ReservationService struct {
	reservations repository.ReservationRepository
	dispatcher   events.Dispatcher
}

// NewReservationService builds the service.
func NewReservationService(reservations repository.ReservationRepository, dispatcher events.Dispatcher) *ReservationService {
	return &ReservationService{reservations: reservations, dispatcher: dispatcher}
}

// Create stores a new reservation and publishes the created event.
func (s *ReservationService) Create(ctx context.Context, reservation *domain.Reservation) error {
	if reservation.Status == "" {
		reservation.Status = domain.ReservationStatusPending
	}
	if err := s.reservations.Create(ctx, reservation); err != nil {
		return err
	}

	s.publish(ctx, events.EventReservationCreated, events.ReservationCreatedPayload{
		ReservationID: reservation.ID,
		CustomerName:  reservation.CustomerName,
		FlightID:      reservation.FlightID,
		SeatNumber:    reservation.SeatNumber,
	})
	return nil
}

// Cancel marks a reservation cancelled and publishes the cancellation event.
func (s *ReservationService) Cancel(ctx context.Context, id int64) error {
	reservation, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.reservations.UpdateStatus(ctx, id, domain.ReservationStatusCancelled); err != nil {
		return err
	}

	s.publish(ctx, events.EventReservationCancelled, events.ReservationCancelledPayload{
		ReservationID: reservation.ID,
		CustomerName:  reservation.CustomerName,
	})
	return nil
}

// Delete removes a reservation record.
func (s *ReservationService) Delete(ctx context.Context, id int64) error {
	return s.reservations.Delete(ctx, id)
}

// Get returns a reservation by id.
func (s *ReservationService) Get(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.reservations.GetByID(ctx, id)
}

// List returns all reservations.
func (s *ReservationService) List(ctx context.Context) ([]domain.Reservation, error) {
	return s.reservations.List(ctx)
}

func (s *ReservationService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
