package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leavedesk/leavedesk-client-go/api"
	"github.com/leavedesk/leavedesk-client-go/domain/notification"
)

// NotificationsStore caches the current user's notifications. Read
// status only moves UNREAD -> READ, triggered by the user viewing.
type NotificationsStore struct {
	state
	client        *api.Client
	logger        *slog.Logger
	notifications []notification.Notification
}

func NewNotificationsStore(client *api.Client, logger *slog.Logger) *NotificationsStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &NotificationsStore{client: client, logger: logger}
}

func (s *NotificationsStore) Notifications() []notification.Notification {
	var out []notification.Notification
	s.read(func() {
		out = append(out, s.notifications...)
	})
	return out
}

func (s *NotificationsStore) Snapshot() Snapshot {
	return s.snapshot()
}

// UnreadCount derives the badge count from the cached list
func (s *NotificationsStore) UnreadCount() int {
	count := 0
	s.read(func() {
		for _, n := range s.notifications {
			if n.Status == notification.StatusUnread {
				count++
			}
		}
	})
	return count
}

// Fetch replaces the cached notification list
func (s *NotificationsStore) Fetch(ctx context.Context) error {
	seq := s.begin()
	var notifications []notification.Notification
	if err := s.client.Get(ctx, "/api/notifications/user", &notifications); err != nil {
		s.reject(seq, err)
		return err
	}
	for i := range notifications {
		notifications[i].Status = notification.NormalizeReadStatus(string(notifications[i].Status))
	}
	s.fulfill(seq, func() {
		s.notifications = notifications
	})
	return nil
}

// MarkRead transitions one notification to READ and upserts the result
func (s *NotificationsStore) MarkRead(ctx context.Context, id string) error {
	seq := s.begin()
	var updated notification.Notification
	err := s.client.Put(ctx, "/api/notifications/"+id+"/read", nil, &updated)
	if err != nil {
		s.reject(seq, err)
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	updated.Status = notification.NormalizeReadStatus(string(updated.Status))
	s.fulfill(seq, func() {
		for i := range s.notifications {
			if s.notifications[i].ID == updated.ID {
				s.notifications[i] = updated
				return
			}
		}
		s.notifications = append(s.notifications, updated)
	})
	return nil
}
