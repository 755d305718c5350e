package service

import (
	"context"
	"time"

	"github.com/atinyakov/EduFeed/internal/models"
)

// NotificationRepository defines the persistence operations required by
// the notification service.
type NotificationRepository interface {
	// Notifications returns the full notification collection.
	Notifications(ctx context.Context) ([]models.Notification, error)
}

// NotificationService lists the persisted notifications.
type NotificationService struct {
	repo    NotificationRepository
	latency time.Duration
}

// NewNotificationService constructs a NotificationService using the
// provided repository and simulated latency.
func NewNotificationService(repo NotificationRepository, latency time.Duration) *NotificationService {
	return &NotificationService{repo: repo, latency: latency}
}

// List returns all notifications in storage order.
func (s *NotificationService) List(ctx context.Context) ([]models.Notification, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}
	return s.repo.Notifications(ctx)
}
