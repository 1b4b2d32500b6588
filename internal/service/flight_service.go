package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/aetheris/airline-platform/internal/domain"
	"github.com/aetheris/airline-platform/internal/repository"
)

// FlightService manages flight records.
type FlightService struct {
	flights repository.FlightRepository
}

// NewFlightService builds the service.
func NewFlightService(flights repository.FlightRepository) *FlightService {
	return &FlightService{flights: flights}
}

// Create stores a new flight, assigning an id and default status.
func (s *FlightService) Create(ctx context.Context, flight *domain.Flight) error {
	if flight.ID == "" {
		flight.ID = uuid.NewString()
	}
	if flight.Status == "" {
		flight.Status = domain.FlightStatusScheduled
	}
	return s.flights.Create(ctx, flight)
}

// Update replaces a flight record.
func (s *FlightService) Update(ctx context.Context, flight *domain.Flight) error {
	return s.flights.Update(ctx, flight)
}

// Delete removes a flight record.
func (s *FlightService) Delete(ctx context.Context, id string) error {
	return s.flights.Delete(ctx, id)
}

// Get returns a flight by id.
func (s *FlightService) Get(ctx context.Context, id string) (*domain.Flight, error) {
	return s.flights.GetByID(ctx, id)
}

// List returns all flights.
func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	return s.flights.List(ctx)
}
