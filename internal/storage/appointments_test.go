package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telehealth-server/internal/models"
)

func newTestAppointments(s Storage) *StorageAppointments {
	return NewStorageAppointments(NewJSONAdapter[[]models.Appointment](s, KeyAppointments, nil, nil))
}

func TestAppointmentsRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()
	repo := newTestAppointments(s)

	assert.Empty(t, repo.All(ctx))

	a, err := repo.Add(ctx, models.Appointment{DoctorID: "d3", UserID: "u1", Date: "Monday",
		Time: "10:00 AM", Type: models.AppointmentVideo, Status: models.StatusPending})
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.NotEmpty(t, a.CreatedAt)

	// A second repository over the same storage sees the same collection.
	reloaded := newTestAppointments(s).All(ctx)
	require.Len(t, reloaded, 1)
	assert.Equal(t, a, reloaded[0])
}

func TestAppointmentsFilters(t *testing.T) {
	ctx := context.Background()
	repo := newTestAppointments(NewMemoryStorage())

	for _, a := range []models.Appointment{
		{ID: "a1", DoctorID: "d1", UserID: "u1"},
		{ID: "a2", DoctorID: "d2", UserID: "u1"},
		{ID: "a3", DoctorID: "d1", UserID: "u2"},
	} {
		_, err := repo.Add(ctx, a)
		require.NoError(t, err)
	}

	assert.Len(t, repo.ByUser(ctx, "u1"), 2)
	assert.Len(t, repo.ByDoctor(ctx, "d1"), 2)
	assert.Empty(t, repo.ByUser(ctx, "nobody"))

	got, ok := repo.ByID(ctx, "a2")
	require.True(t, ok)
	assert.Equal(t, "d2", got.DoctorID)
	_, ok = repo.ByID(ctx, "zz")
	assert.False(t, ok)
}

func TestAppointmentsUpdateStatusAndRemove(t *testing.T) {
	ctx := context.Background()
	repo := newTestAppointments(NewMemoryStorage())
	_, err := repo.Add(ctx, models.Appointment{ID: "a1", Status: models.StatusPending})
	require.NoError(t, err)
	_, err = repo.Add(ctx, models.Appointment{ID: "a2", Status: models.StatusPending})
	require.NoError(t, err)

	updated, found, err := repo.UpdateStatus(ctx, "a1", models.StatusConfirmed)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, models.StatusConfirmed, updated.Status)

	_, found, err = repo.UpdateStatus(ctx, "missing", models.StatusCancelled)
	require.NoError(t, err)
	assert.False(t, found)

	removed, err := repo.Remove(ctx, "a2")
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = repo.Remove(ctx, "a2")
	require.NoError(t, err)
	assert.False(t, removed)

	all := repo.All(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, models.StatusConfirmed, all[0].Status)
}

func TestAppointmentsSaveReplacesWholeCollection(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()
	adapter := NewJSONAdapter[[]models.Appointment](s, KeyAppointments, nil, nil)
	require.NoError(t, adapter.Save(ctx, []models.Appointment{{ID: "a1"}, {ID: "a2"}}))
	require.NoError(t, adapter.Save(ctx, []models.Appointment{{ID: "a3"}}))

	all := NewStorageAppointments(adapter).All(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "a3", all[0].ID)
}

// flakyGetStorage fails the next failGets reads and passes everything else
// through to the wrapped storage.
type flakyGetStorage struct {
	Storage
	failGets int
}

func (f *flakyGetStorage) Get(ctx context.Context, key string) (string, bool, error) {
	if f.failGets > 0 {
		f.failGets--
		return "", false, errors.New("connection reset")
	}
	return f.Storage.Get(ctx, key)
}

func TestAppointmentsMutationsAbortWhenLoadFails(t *testing.T) {
	ctx := context.Background()
	backend := &flakyGetStorage{Storage: NewMemoryStorage()}
	repo := newTestAppointments(backend)

	for _, id := range []string{"a1", "a2"} {
		_, err := repo.Add(ctx, models.Appointment{ID: id, Status: models.StatusPending})
		require.NoError(t, err)
	}

	backend.failGets = 1
	_, err := repo.Add(ctx, models.Appointment{ID: "a3", Status: models.StatusPending})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")

	backend.failGets = 1
	_, found, err := repo.UpdateStatus(ctx, "a1", models.StatusConfirmed)
	require.Error(t, err)
	assert.False(t, found)

	backend.failGets = 1
	removed, err := repo.Remove(ctx, "a1")
	require.Error(t, err)
	assert.False(t, removed)

	all := repo.All(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, "a1", all[0].ID)
	assert.Equal(t, models.StatusPending, all[0].Status)
	assert.Equal(t, "a2", all[1].ID)
}

func TestAppointmentsMutationsAbortOnUnreadableDocument(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()
	require.NoError(t, s.Set(ctx, KeyAppointments, `{"version":9,"data":[]}`))

	_, err := newTestAppointments(s).Add(ctx, models.Appointment{ID: "a1"})
	require.Error(t, err)

	raw, _, _ := s.Get(ctx, KeyAppointments)
	assert.Equal(t, `{"version":9,"data":[]}`, raw)
}
