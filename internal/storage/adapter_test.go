package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telehealth-server/internal/metrics"
	"telehealth-server/internal/models"
)

type failingStorage struct{ err error }

func (f failingStorage) Get(context.Context, string) (string, bool, error) { return "", false, f.err }
func (f failingStorage) Set(context.Context, string, string) error         { return f.err }
func (f failingStorage) Delete(context.Context, string) error              { return f.err }

func TestJSONAdapterRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()
	a := NewJSONAdapter[*models.User](s, KeyUser, nil, nil)

	_, ok := a.Load(ctx)
	assert.False(t, ok)

	u := &models.User{ID: "u1", Name: "Jane Doe", Email: "jane@example.com",
		Profile: &models.UserProfile{JoinedDate: "2026-01-01"}}
	require.NoError(t, a.Save(ctx, u))

	got, ok := a.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, u, got)

	raw, _, _ := s.Get(ctx, KeyUser)
	assert.Contains(t, raw, `"version":1`)

	require.NoError(t, a.Clear(ctx))
	_, ok = a.Load(ctx)
	assert.False(t, ok)
}

func TestJSONAdapterReadsLegacyDocuments(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()
	require.NoError(t, s.Set(ctx, KeyFavorites, `["d1","d3"]`))
	require.NoError(t, s.Set(ctx, KeyUser, `{"id":"u1","name":"Jane","email":"j@x.io"}`))

	favs, ok := NewJSONAdapter[[]string](s, KeyFavorites, nil, nil).Load(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"d1", "d3"}, favs)

	user, ok := NewJSONAdapter[*models.User](s, KeyUser, nil, nil).Load(ctx)
	require.True(t, ok)
	assert.Equal(t, "u1", user.ID)
}

func TestJSONAdapterMalformedFallsBackToZero(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()
	require.NoError(t, s.Set(ctx, KeyAppointments, `{not json`))

	m := metrics.New(prometheus.NewRegistry())
	list, ok := NewJSONAdapter[[]models.Appointment](s, KeyAppointments, nil, m).Load(ctx)
	assert.False(t, ok)
	assert.Nil(t, list)
}

func TestJSONAdapterRejectsFutureVersion(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()
	require.NoError(t, s.Set(ctx, KeyFavorites, `{"version":9,"data":["d1"]}`))

	_, ok := NewJSONAdapter[[]string](s, KeyFavorites, nil, nil).Load(ctx)
	assert.False(t, ok)
}

func TestJSONAdapterBackendFailure(t *testing.T) {
	ctx := context.Background()
	a := NewJSONAdapter[[]string](failingStorage{err: errors.New("quota exceeded")}, KeyFavorites, nil, nil)

	v, ok := a.Load(ctx)
	assert.False(t, ok)
	assert.Nil(t, v)
	assert.Error(t, a.Save(ctx, []string{"d1"}))
	assert.Error(t, a.Clear(ctx))
}

func TestJSONAdapterLoadForUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()
	a := NewJSONAdapter[[]string](s, KeyFavorites, nil, nil)

	v, err := a.LoadForUpdate(ctx)
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, a.Save(ctx, []string{"d1"}))
	v, err = a.LoadForUpdate(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"d1"}, v)

	require.NoError(t, s.Set(ctx, KeyFavorites, `{not json`))
	_, err = a.LoadForUpdate(ctx)
	assert.ErrorContains(t, err, "storage: decode favoriteDoctors")

	failing := NewJSONAdapter[[]string](failingStorage{err: errors.New("quota exceeded")}, KeyFavorites, nil, nil)
	_, err = failing.LoadForUpdate(ctx)
	assert.ErrorContains(t, err, "quota exceeded")
}
