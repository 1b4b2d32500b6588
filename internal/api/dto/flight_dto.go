package dto

import (
	"time"

	"github.com/aetheris/airline-platform/internal/domain"
)

// FlightRequest payload for flight creation and update.
type FlightRequest struct {
	Code            string  `json:"code"`
	Origin          string  `json:"origin"`
	Destination     string  `json:"destination"`
	AircraftID      string  `json:"aircraft_id"`
	PilotID         string  `json:"pilot_id"`
	DepartureDate   string  `json:"departure_date"`
	DepartureTime   string  `json:"departure_time"`
	DurationMinutes int     `json:"duration_minutes"`
	Status          string  `json:"status"`
	BasePrice       float64 `json:"base_price"`
}

// ToFlight maps the request onto a domain flight.
func (r FlightRequest) ToFlight() (*domain.Flight, error) {
	date, err := time.Parse("2006-01-02", r.DepartureDate)
	if err != nil {
		return nil, err
	}
	return &domain.Flight{
		Code:            r.Code,
		Origin:          r.Origin,
		Destination:     r.Destination,
		AircraftID:      r.AircraftID,
		PilotID:         r.PilotID,
		DepartureDate:   date,
		DepartureTime:   r.DepartureTime,
		DurationMinutes: r.DurationMinutes,
		Status:          domain.FlightStatus(r.Status),
		BasePrice:       r.BasePrice,
	}, nil
}

// FlightResponse is the serialized flight record.
type FlightResponse struct {
	ID              string  `json:"id"`
	Code            string  `json:"code"`
	Origin          string  `json:"origin"`
	Destination     string  `json:"destination"`
	AircraftID      string  `json:"aircraft_id"`
	PilotID         string  `json:"pilot_id"`
	DepartureDate   string  `json:"departure_date"`
	DepartureTime   string  `json:"departure_time"`
	DurationMinutes int     `json:"duration_minutes"`
	Status          string  `json:"status"`
	BasePrice       float64 `json:"base_price"`
}

// FromFlight maps a domain flight onto its response shape.
func FromFlight(f *domain.Flight) FlightResponse {
	return FlightResponse{
		ID:              f.ID,
		Code:            f.Code,
		Origin:          f.Origin,
		Destination:     f.Destination,
		AircraftID:      f.AircraftID,
		PilotID:         f.PilotID,
		DepartureDate:   f.DepartureDate.Format("2006-01-02"),
		DepartureTime:   f.DepartureTime,
		DurationMinutes: f.DurationMinutes,
		Status:          string(f.Status),
		BasePrice:       f.BasePrice,
	}
}
