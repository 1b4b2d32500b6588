package domain

import "time"

// FlightStatus tracks a flight through its lifecycle.
type FlightStatus string

const (
	FlightStatusScheduled FlightStatus = "SCHEDULED"
	FlightStatusInFlight  FlightStatus = "IN_FLIGHT"
	FlightStatusLanded    FlightStatus = "LANDED"
	FlightStatusCancelled FlightStatus = "CANCELLED"
)

// Flight is a scheduled route segment flown by one aircraft.
type Flight struct {
	ID              string
	Code            string
	Origin          string
	Destination     string
	AircraftID      string
	PilotID         string
	DepartureDate   time.Time
	DepartureTime   string
	DurationMinutes int
	Status          FlightStatus
	BasePrice       float64
}
