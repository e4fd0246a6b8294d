// Package store holds the application state of one session: the signed-in
// user, chat log, notifications, favorites, UI flags and, through an
// injected repository, appointments.
package store

import (
	"context"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"telehealth-server/internal/models"
	"telehealth-server/internal/storage"
)

const (
	systemPreviewLength = 50

	FavoriteAddedTitle   = "Doctor Added to Favorites"
	FavoriteAddedContent = "You can easily find this doctor in your favorites list."
	SystemMessageTitle   = "System Message"
	NewAppointmentTitle  = "New Appointment"
)

// Options wires a Store to its persistence.
type Options struct {
	User         *storage.JSONAdapter[*models.User]
	Favorites    *storage.JSONAdapter[[]string]
	Appointments storage.AppointmentRepository
	Now          func() time.Time
}

// Store is safe for concurrent use.
type Store struct {
	mu            sync.RWMutex
	user          *models.User
	messages      []models.Message
	notifications []models.Notification
	favorites     []string
	ui            UIState

	userStore     *storage.JSONAdapter[*models.User]
	favoriteStore *storage.JSONAdapter[[]string]
	appointments  storage.AppointmentRepository
	now           func() time.Time

	subMu   sync.Mutex
	subs    map[int]chan Event
	nextSub int
}

// New creates a store and restores the persisted user and favorites.
func New(ctx context.Context, opts Options) *Store {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &Store{
		messages:      []models.Message{},
		notifications: []models.Notification{},
		favorites:     []string{},
		ui:            DefaultUIState(),
		userStore:     opts.User,
		favoriteStore: opts.Favorites,
		appointments:  opts.Appointments,
		now:           opts.Now,
		subs:          make(map[int]chan Event),
	}
	if u, ok := s.userStore.Load(ctx); ok {
		s.user = u
	}
	if favs, ok := s.favoriteStore.Load(ctx); ok && favs != nil {
		s.favorites = favs
	}
	return s
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(time.RFC3339Nano)
}

// User returns a copy of the active user, or nil.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.Clone()
}

// SetUser replaces the active user. A nil user signs out and clears the
// persisted record. Persistence happens before SetUser returns.
func (s *Store) SetUser(ctx context.Context, u *models.User) {
	s.mu.Lock()
	s.user = u.Clone()
	if u != nil {
		_ = s.userStore.Save(ctx, s.user)
	} else {
		_ = s.userStore.Clear(ctx)
	}
	s.mu.Unlock()
	s.publish(EventUser)
}

// AddMessage appends m to the chat log. A message from the system to the
// active user also raises a system notification with a preview of it.
func (s *Store) AddMessage(m models.Message) {
	s.mu.Lock()
	s.messages = append(s.messages, m)
	notify := s.user != nil && m.ReceiverID == s.user.ID &&
		m.SenderID != s.user.ID && m.SenderID == models.SystemSenderID
	if notify {
		s.prependNotificationLocked(models.Notification{
			ID:        uuid.New().String(),
			UserID:    s.user.ID,
			Title:     SystemMessageTitle,
			Content:   preview(m.Content),
			Timestamp: m.Timestamp,
			Type:      models.NotificationSystem,
		})
	}
	s.mu.Unlock()

	s.publish(EventMessages)
	if notify {
		s.publish(EventNotifications)
	}
}

func preview(content string) string {
	if utf8.RuneCountInString(content) <= systemPreviewLength {
		return content
	}
	return string([]rune(content)[:systemPreviewLength]) + "..."
}

// MarkMessageAsRead flags one message as read. Unknown ids are ignored.
func (s *Store) MarkMessageAsRead(id string) bool {
	s.mu.Lock()
	found := false
	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages[i].IsRead = true
			found = true
		}
	}
	s.mu.Unlock()
	if found {
		s.publish(EventMessages)
	}
	return found
}

// Messages returns a copy of the chat log in insertion order.
func (s *Store) Messages() []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Message(nil), s.messages...)
}

// Conversation returns the messages exchanged between userID and peerID,
// and marks the ones addressed to userID as read.
func (s *Store) Conversation(userID, peerID string) []models.Message {
	s.mu.Lock()
	out := []models.Message{}
	changed := false
	for i := range s.messages {
		m := &s.messages[i]
		toUser := m.SenderID == peerID && m.ReceiverID == userID
		if !toUser && !(m.SenderID == userID && m.ReceiverID == peerID) {
			continue
		}
		if toUser && !m.IsRead {
			m.IsRead = true
			changed = true
		}
		out = append(out, *m)
	}
	s.mu.Unlock()
	if changed {
		s.publish(EventMessages)
	}
	return out
}

// AddNotification puts n at the head of the list.
func (s *Store) AddNotification(n models.Notification) {
	s.mu.Lock()
	s.prependNotificationLocked(n)
	s.mu.Unlock()
	s.publish(EventNotifications)
}

func (s *Store) prependNotificationLocked(n models.Notification) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.Timestamp == "" {
		n.Timestamp = s.timestamp()
	}
	s.notifications = append([]models.Notification{n}, s.notifications...)
}

func (s *Store) MarkNotificationAsRead(id string) bool {
	s.mu.Lock()
	found := false
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].IsRead = true
			found = true
		}
	}
	s.mu.Unlock()
	if found {
		s.publish(EventNotifications)
	}
	return found
}

// MarkAllNotificationsRead marks every notification read. Nothing is removed.
func (s *Store) MarkAllNotificationsRead() {
	s.mu.Lock()
	for i := range s.notifications {
		s.notifications[i].IsRead = true
	}
	s.mu.Unlock()
	s.publish(EventNotifications)
}

// Notifications returns a copy of the notifications, newest first.
func (s *Store) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Notification(nil), s.notifications...)
}

// UnreadNotificationsCount counts unread notifications of the active user.
func (s *Store) UnreadNotificationsCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unreadLocked()
}

func (s *Store) unreadLocked() int {
	if s.user == nil {
		return 0
	}
	n := 0
	for _, notif := range s.notifications {
		if !notif.IsRead && notif.UserID == s.user.ID {
			n++
		}
	}
	return n
}

// AddToFavorites adds doctorID once. It reports whether it was added.
func (s *Store) AddToFavorites(ctx context.Context, doctorID string) bool {
	s.mu.Lock()
	if containsString(s.favorites, doctorID) {
		s.mu.Unlock()
		return false
	}
	s.favorites = append(s.favorites, doctorID)
	_ = s.favoriteStore.Save(ctx, s.favorites)
	notify := s.user != nil
	if notify {
		s.prependNotificationLocked(models.Notification{
			UserID:  s.user.ID,
			Title:   FavoriteAddedTitle,
			Content: FavoriteAddedContent,
			Type:    models.NotificationSystem,
		})
	}
	s.mu.Unlock()

	s.publish(EventFavorites)
	if notify {
		s.publish(EventNotifications)
	}
	return true
}

// RemoveFromFavorites removes doctorID. Absent ids are a no-op.
func (s *Store) RemoveFromFavorites(ctx context.Context, doctorID string) bool {
	s.mu.Lock()
	out := make([]string, 0, len(s.favorites))
	for _, id := range s.favorites {
		if id != doctorID {
			out = append(out, id)
		}
	}
	removed := len(out) != len(s.favorites)
	if removed {
		s.favorites = out
		_ = s.favoriteStore.Save(ctx, s.favorites)
	}
	s.mu.Unlock()
	if removed {
		s.publish(EventFavorites)
	}
	return removed
}

func (s *Store) IsFavorite(doctorID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return containsString(s.favorites, doctorID)
}

func (s *Store) Favorites() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.favorites...)
}

// AddAppointment stores a through the appointment repository and, with a
// user signed in, raises an appointment notification.
func (s *Store) AddAppointment(ctx context.Context, a models.Appointment) (models.Appointment, error) {
	saved, err := s.appointments.Add(ctx, a)
	if err != nil {
		return models.Appointment{}, fmt.Errorf("add appointment: %w", err)
	}

	s.mu.Lock()
	notify := s.user != nil
	if notify {
		s.prependNotificationLocked(models.Notification{
			UserID:   s.user.ID,
			Title:    NewAppointmentTitle,
			Content:  fmt.Sprintf("You have a new %s appointment on %s at %s.", saved.Status, saved.Date, saved.Time),
			Type:     models.NotificationAppointment,
			DoctorID: saved.DoctorID,
		})
	}
	s.mu.Unlock()

	s.publish(EventAppointments)
	if notify {
		s.publish(EventNotifications)
	}
	return saved, nil
}

// Appointments exposes the injected repository.
func (s *Store) Appointments() storage.AppointmentRepository {
	return s.appointments
}

// UpdateAppointmentStatus changes the status of one appointment.
func (s *Store) UpdateAppointmentStatus(ctx context.Context, id string, status models.AppointmentStatus) (models.Appointment, bool, error) {
	a, found, err := s.appointments.UpdateStatus(ctx, id, status)
	if err == nil && found {
		s.publish(EventAppointments)
	}
	return a, found, err
}

// RemoveAppointment deletes one appointment.
func (s *Store) RemoveAppointment(ctx context.Context, id string) (bool, error) {
	removed, err := s.appointments.Remove(ctx, id)
	if err == nil && removed {
		s.publish(EventAppointments)
	}
	return removed, err
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
