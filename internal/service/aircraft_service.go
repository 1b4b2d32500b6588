package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/aetheris/airline-platform/internal/domain"
	"github.com/aetheris/airline-platform/internal/repository"
)

// AircraftService manages fleet records.
type AircraftService struct {
	fleet repository.AircraftRepository
}

// NewAircraftService builds the service.
func NewAircraftService(fleet repository.AircraftRepository) *AircraftService {
	return &AircraftService{fleet: fleet}
}

// Create stores a new aircraft, assigning an id and default status.
func (s *AircraftService) Create(ctx context.Context, aircraft *domain.Aircraft) error {
	if aircraft.ID == "" {
		aircraft.ID = uuid.NewString()
	}
	if aircraft.Status == "" {
		aircraft.Status = domain.AircraftStatusActive
	}
	return s.fleet.Create(ctx, aircraft)
}

// Update replaces an aircraft record.
func (s *AircraftService) Update(ctx context.Context, aircraft *domain.Aircraft) error {
	return s.fleet.Update(ctx, aircraft)
}

// Delete removes an aircraft record.
func (s *AircraftService) Delete(ctx context.Context, id string) error {
	return s.fleet.Delete(ctx, id)
}

// Get returns an aircraft by id.
func (s *AircraftService) Get(ctx context.Context, id string) (*domain.Aircraft, error) {
	return s.fleet.GetByID(ctx, id)
}

// List returns the whole fleet.
func (s *AircraftService) List(ctx context.Context) ([]domain.Aircraft, error) {
	return s.fleet.List(ctx)
}
