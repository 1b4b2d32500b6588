package service

import (
	"context"

	"github.com/aetheris/airline-platform/internal/domain"
	"github.com/aetheris/airline-platform/internal/repository"
)

// NotificationService manages stored notification records. Delivery is out of
// scope; records are created here and marked read later.
type NotificationService struct {
	notifications repository.NotificationRepository
}

// NewNotificationService builds the service.
func NewNotificationService(notifications repository.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

// Save stores a notification record.
func (s *NotificationService) Save(ctx context.Context, notification *domain.Notification) error {
	return s.notifications.Create(ctx, notification)
}

// MarkRead flags a notification as read.
func (s *NotificationService) MarkRead(ctx context.Context, id int64) error {
	return s.notifications.MarkRead(ctx, id)
}

// Get returns a notification by id.
func (s *NotificationService) Get(ctx context.Context, id int64) (*domain.Notification, error) {
	return s.notifications.GetByID(ctx, id)
}

// List returns all notifications, newest first.
func (s *NotificationService) List(ctx context.Context) ([]domain.Notification, error) {
	return s.notifications.List(ctx)
}
