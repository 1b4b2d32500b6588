package domain

import "time"

// NotificationStatus tracks the read state of a notification record.
type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "PENDING"
	NotificationStatusRead    NotificationStatus = "READ"
)

// Notification is a stored message addressed to a person. Delivery is handled
// elsewhere; this service only manages the records.
type Notification struct {
	ID        int64
	PersonID  string
	Email     string
	Title     string
	Message   string
	Status    NotificationStatus
	CreatedAt time.Time
	ReadAt    *time.Time
}
