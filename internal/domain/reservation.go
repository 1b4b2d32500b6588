package domain

// ReservationStatus tracks a booking through its lifecycle.
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

// Reservation binds a customer to a seat on a flight.
type Reservation struct {
	ID           int64
	CustomerName string
	FlightID     string
	Status       ReservationStatus
	SeatNumber   string
}
