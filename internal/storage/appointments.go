package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"telehealth-server/internal/models"
)

// AppointmentRepository is the single source of appointments for a client.
type AppointmentRepository interface {
	Add(ctx context.Context, a models.Appointment) (models.Appointment, error)
	All(ctx context.Context) []models.Appointment
	ByUser(ctx context.Context, userID string) []models.Appointment
	ByDoctor(ctx context.Context, doctorID string) []models.Appointment
	ByID(ctx context.Context, id string) (models.Appointment, bool)
	UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) (models.Appointment, bool, error)
	Remove(ctx context.Context, id string) (bool, error)
}

// StorageAppointments keeps the appointment collection as one JSON array.
// Every mutation re-reads the collection and saves it whole.
type StorageAppointments struct {
	mu      sync.Mutex
	adapter *JSONAdapter[[]models.Appointment]
	now     func() time.Time
}

func NewStorageAppointments(adapter *JSONAdapter[[]models.Appointment]) *StorageAppointments {
	return &StorageAppointments{adapter: adapter, now: time.Now}
}

// Add assigns an id and creation stamp when missing, appends and saves.
func (s *StorageAppointments) Add(ctx context.Context, a models.Appointment) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt == "" {
		a.CreatedAt = s.now().UTC().Format(time.RFC3339)
	}
	list, err := s.adapter.LoadForUpdate(ctx)
	if err != nil {
		return models.Appointment{}, err
	}
	list = append(list, a)
	if err := s.adapter.Save(ctx, list); err != nil {
		return models.Appointment{}, err
	}
	return a, nil
}

func (s *StorageAppointments) All(ctx context.Context) []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, _ := s.adapter.Load(ctx)
	if list == nil {
		return []models.Appointment{}
	}
	return list
}

func (s *StorageAppointments) ByUser(ctx context.Context, userID string) []models.Appointment {
	return s.filter(ctx, func(a models.Appointment) bool { return a.UserID == userID })
}

func (s *StorageAppointments) ByDoctor(ctx context.Context, doctorID string) []models.Appointment {
	return s.filter(ctx, func(a models.Appointment) bool { return a.DoctorID == doctorID })
}

func (s *StorageAppointments) ByID(ctx context.Context, id string) (models.Appointment, bool) {
	for _, a := range s.All(ctx) {
		if a.ID == id {
			return a, true
		}
	}
	return models.Appointment{}, false
}

func (s *StorageAppointments) UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) (models.Appointment, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.adapter.LoadForUpdate(ctx)
	if err != nil {
		return models.Appointment{}, false, err
	}
	for i := range list {
		if list[i].ID != id {
			continue
		}
		list[i].Status = status
		if err := s.adapter.Save(ctx, list); err != nil {
			return models.Appointment{}, true, err
		}
		return list[i], true, nil
	}
	return models.Appointment{}, false, nil
}

func (s *StorageAppointments) Remove(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.adapter.LoadForUpdate(ctx)
	if err != nil {
		return false, err
	}
	out := make([]models.Appointment, 0, len(list))
	for _, a := range list {
		if a.ID != id {
			out = append(out, a)
		}
	}
	if len(out) == len(list) {
		return false, nil
	}
	return true, s.adapter.Save(ctx, out)
}

func (s *StorageAppointments) filter(ctx context.Context, keep func(models.Appointment) bool) []models.Appointment {
	out := []models.Appointment{}
	for _, a := range s.All(ctx) {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}
