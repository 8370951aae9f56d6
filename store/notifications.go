package store

import (
	"time"

	"github.com/YarKhan02/Workshop-sub003/models"
)

func (s *Store) AddNotification(t models.NotificationType, title, message string) models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	n := models.Notification{
		ID:        newID(),
		Type:      t,
		Title:     title,
		Message:   message,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.notifications = append(s.notifications, n)
	return n
}

func (s *Store) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

func (s *Store) UnreadNotifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Notification
	for i := range s.notifications {
		if !s.notifications[i].IsRead {
			out = append(out, s.notifications[i])
		}
	}
	return out
}

func (s *Store) MarkNotificationRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].IsRead = true
			s.notifications[i].UpdatedAt = time.Now()
			return true
		}
	}
	return false
}

func (s *Store) DeleteNotification(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return true
		}
	}
	return false
}
