package events

import (
	"time"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventReservationCreated   EventType = "reservation_created"
	EventReservationCancelled EventType = "reservation_cancelled"
	EventPaymentRecorded      EventType = "payment_recorded"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ReservationCreatedPayload payload.
type ReservationCreatedPayload struct {
	ReservationID int64  `json:"reservation_id"`
	CustomerName  string `json:"customer_name"`
	FlightID      string `json:"flight_id"`
	SeatNumber    string `json:"seat_number"`
}

// ReservationCancelledPayload payload.
type ReservationCancelledPayload struct {
	ReservationID int64  `json:"reservation_id"`
	CustomerName  string `json:"customer_name"`
}

// PaymentRecordedPayload payload.
type PaymentRecordedPayload struct {
	PaymentID     int64   `json:"payment_id"`
	ReservationID int64   `json:"reservation_id"`
	Amount        float64 `json:"amount"`
	Reference     string  `json:"reference"`
}
