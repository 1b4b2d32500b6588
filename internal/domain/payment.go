package domain

// PaymentStatus tracks payment settlement.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusSettled  PaymentStatus = "SETTLED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// PaymentMethod enumerates accepted payment instruments.
type PaymentMethod string

const (
	PaymentMethodCard     PaymentMethod = "CARD"
	PaymentMethodTransfer PaymentMethod = "TRANSFER"
	PaymentMethodCash     PaymentMethod = "CASH"
)

// Payment records money received against a reservation.
type Payment struct {
	ID            int64
	ReservationID int64
	Amount        float64
	Method        PaymentMethod
	Status        PaymentStatus
	Reference     string
}
