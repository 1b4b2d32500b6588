package dto

import "github.com/aetheris/airline-platform/internal/domain"

// AircraftRequest payload for aircraft creation and update.
type AircraftRequest struct {
	Model           string `json:"model"`
	Capacity        int    `json:"capacity"`
	Airline         string `json:"airline"`
	ManufactureYear int    `json:"manufacture_year"`
	Status          string `json:"status"`
}

// ToAircraft maps the request onto a domain aircraft.
func (r AircraftRequest) ToAircraft() *domain.Aircraft {
	return &domain.Aircraft{
		Model:           r.Model,
		Capacity:        r.Capacity,
		Airline:         r.Airline,
		ManufactureYear: r.ManufactureYear,
		Status:          domain.AircraftStatus(r.Status),
	}
}

// ReservationRequest payload for reservation creation.
type ReservationRequest struct {
	CustomerName string `json:"customer_name"`
	FlightID     string `json:"flight_id"`
	SeatNumber   string `json:"seat_number"`
}

// ToReservation maps the request onto a domain reservation.
func (r ReservationRequest) ToReservation() *domain.Reservation {
	return &domain.Reservation{
		CustomerName: r.CustomerName,
		FlightID:     r.FlightID,
		SeatNumber:   r.SeatNumber,
	}
}

// PaymentRequest payload for recording a payment.
type PaymentRequest struct {
	ReservationID int64   `json:"reservation_id"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
}

// ToPayment maps the request onto a domain payment.
func (r PaymentRequest) ToPayment() *domain.Payment {
	return &domain.Payment{
		ReservationID: r.ReservationID,
		Amount:        r.Amount,
		Method:        domain.PaymentMethod(r.Method),
	}
}

// NotificationRequest payload for the notification intake endpoint.
type NotificationRequest struct {
	PersonID string `json:"person_id"`
	Email    string `json:"email"`
	Title    string `json:"title"`
	Message  string `json:"message"`
}

// ToNotification maps the request onto a domain notification.
func (r NotificationRequest) ToNotification() *domain.Notification {
	return &domain.Notification{
		PersonID: r.PersonID,
		Email:    r.Email,
		Title:    r.Title,
		Message:  r.Message,
	}
}
