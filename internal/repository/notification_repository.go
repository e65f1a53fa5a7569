package repository

import (
	"context"

	"buildpro/internal/model"
)

// NotificationRepository defines notification lookup operations.
type NotificationRepository interface {
	ListByUser(ctx context.Context, userID string) ([]model.Notification, error)
	CountUnread(ctx context.Context, userID string) (int, error)
}

type notificationRepository struct {
	notifications []model.Notification
}

// NewNotificationRepository builds an in-memory notification repository.
func NewNotificationRepository(notifications []model.Notification) NotificationRepository {
	stored := make([]model.Notification, len(notifications))
	copy(stored, notifications)
	return &notificationRepository{notifications: stored}
}

// ListByUser returns the notifications addressed to a user, in seed order.
func (r *notificationRepository) ListByUser(ctx context.Context, userID string) ([]model.Notification, error) {
	out := []model.Notification{}
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

// CountUnread returns the number of unread notifications for a user.
func (r *notificationRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	count := 0
	for _, n := range r.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}
