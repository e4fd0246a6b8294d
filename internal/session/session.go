// Package session keeps the live sessions of the server. Each session owns
// a state store and a scheduler for its delayed replies; ending a session
// cancels both.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"telehealth-server/internal/metrics"
	"telehealth-server/internal/models"
	"telehealth-server/internal/scheduler"
	"telehealth-server/internal/storage"
	"telehealth-server/internal/store"
	"telehealth-server/pkg/logging"
)

var ErrNotFound = errors.New("session: not found")

// Session is one client's live state.
type Session struct {
	ID        string
	ClientID  string
	Store     *store.Store
	Scheduler *scheduler.Scheduler

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) close() {
	s.Scheduler.Close()
	s.Store.CloseSubscriptions()
}

// Manager creates, looks up and expires sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	storage storage.Storage
	ttl     time.Duration
	logger  *logging.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewManager(backend storage.Storage, ttl time.Duration, logger *logging.Logger, m *metrics.Metrics) *Manager {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Manager{
		sessions: make(map[string]*Session),
		storage:  backend,
		ttl:      ttl,
		logger:   logger,
		metrics:  m,
		now:      time.Now,
	}
}

// Create starts a session for clientID, or for a new client when clientID
// is empty. State persisted under an existing client id is restored.
func (m *Manager) Create(ctx context.Context, clientID string) (*Session, bool) {
	restored := clientID != ""
	if !restored {
		clientID = uuid.New().String()
	}

	ns := storage.Namespace(m.storage, clientID)
	log := m.logger.With("client_id", clientID)
	st := store.New(ctx, store.Options{
		User:      storage.NewJSONAdapter[*models.User](ns, storage.KeyUser, log, m.metrics),
		Favorites: storage.NewJSONAdapter[[]string](ns, storage.KeyFavorites, log, m.metrics),
		Appointments: storage.NewStorageAppointments(
			storage.NewJSONAdapter[[]models.Appointment](ns, storage.KeyAppointments, log, m.metrics)),
	})

	sess := &Session{
		ID:        uuid.New().String(),
		ClientID:  clientID,
		Store:     st,
		Scheduler: scheduler.New(),
		lastSeen:  m.now(),
	}

	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()

	event := "created"
	if restored {
		event = "restored"
	}
	m.metrics.ObserveSession(event)
	log.Info("session started", "session_id", sess.ID, "restored", restored)
	return sess, restored
}

// Get returns a live session and marks it active.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	sess, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	sess.touch(m.now())
	return sess, nil
}

// End removes a session and cancels its pending work.
func (m *Manager) End(id string) error {
	m.mu.Lock()
	sess, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return ErrNotFound
	}
	sess.close()
	m.metrics.ObserveSession("ended")
	m.logger.Info("session ended", "session_id", id)
	return nil
}

// Sweep ends every session idle for longer than the TTL and returns how
// many were removed.
func (m *Manager) Sweep() int {
	cutoff := m.now().Add(-m.ttl)

	m.mu.Lock()
	var expired []*Session
	for id, sess := range m.sessions {
		if sess.idleSince().Before(cutoff) {
			expired = append(expired, sess)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, sess := range expired {
		sess.close()
		m.metrics.ObserveSession("expired")
		m.logger.Info("session expired", "session_id", sess.ID)
	}
	return len(expired)
}

// Run sweeps expired sessions every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}

// Close ends every session.
func (m *Manager) Close() {
	m.mu.Lock()
	all := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, sess := range all {
		sess.close()
		m.metrics.ObserveSession("ended")
	}
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
