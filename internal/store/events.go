package store

import (
	"context"

	"telehealth-server/internal/models"
)

// EventType names the slice of state that changed.
type EventType string

const (
	EventUser          EventType = "user"
	EventMessages      EventType = "messages"
	EventNotifications EventType = "notifications"
	EventFavorites     EventType = "favorites"
	EventAppointments  EventType = "appointments"
	EventUI            EventType = "ui"
)

// Event is delivered to subscribers after a state change.
type Event struct {
	Type EventType `json:"type"`
}

const subscriberBuffer = 32

// Subscribe registers for change events. Events are dropped for a
// subscriber whose buffer is full. The returned function unsubscribes
// and closes the channel.
func (s *Store) Subscribe() (<-chan Event, func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan Event, subscriberBuffer)
	s.subs[id] = ch

	return ch, func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
	}
}

// CloseSubscriptions ends every subscription.
func (s *Store) CloseSubscriptions() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for id, c := range s.subs {
		delete(s.subs, id)
		close(c)
	}
}

func (s *Store) publish(t EventType) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, c := range s.subs {
		select {
		case c <- Event{Type: t}:
		default:
		}
	}
}

// Snapshot is the full session state at one instant.
type Snapshot struct {
	User                     *models.User          `json:"user"`
	Messages                 []models.Message      `json:"chats"`
	Notifications            []models.Notification `json:"notifications"`
	UnreadNotificationsCount int                   `json:"unreadNotificationsCount"`
	FavoriteDoctors          []string              `json:"favoriteDoctors"`
	Appointments             []models.Appointment  `json:"appointments"`
	UI                       UIState               `json:"ui"`
}

func (s *Store) Snapshot(ctx context.Context) Snapshot {
	appointments := s.appointments.All(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		User:                     s.user.Clone(),
		Messages:                 append([]models.Message{}, s.messages...),
		Notifications:            append([]models.Notification{}, s.notifications...),
		UnreadNotificationsCount: s.unreadLocked(),
		FavoriteDoctors:          append([]string{}, s.favorites...),
		Appointments:             appointments,
		UI:                       s.uiLocked(),
	}
}
