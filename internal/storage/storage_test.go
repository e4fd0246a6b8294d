package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func exerciseStorage(t *testing.T, s Storage) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "k", "v1"))
	require.NoError(t, s.Set(ctx, "k", "v2"))
	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", v)

	require.NoError(t, s.Delete(ctx, "k"))
	_, ok, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStorage(t *testing.T) {
	exerciseStorage(t, NewMemoryStorage())
}

func TestRedisStorage(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	s := NewRedisStorage(client)
	exerciseStorage(t, s)

	require.NoError(t, s.Set(context.Background(), "c1:favoriteDoctors", `["d1"]`))
	assert.True(t, mr.Exists(redisKeyPrefix+"c1:favoriteDoctors"))
}

func TestRedisStorageUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	_, _, err := NewRedisStorage(client).Get(context.Background(), "k")
	require.Error(t, err)
}

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{Conn: db, SkipInitializeWithVersion: true}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

func TestGormStorageGet(t *testing.T) {
	gdb, mock := newMockGorm(t)
	s := NewGormStorage(gdb)

	mock.ExpectQuery("SELECT \\* FROM `storage_entries` WHERE storage_key = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"storage_key", "value", "updated_at"}).
			AddRow("c1:appointments", `[]`, time.Now()))

	v, ok, err := s.Get(context.Background(), "c1:appointments")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStorageGetMissing(t *testing.T) {
	gdb, mock := newMockGorm(t)
	s := NewGormStorage(gdb)

	mock.ExpectQuery("SELECT \\* FROM `storage_entries`").
		WillReturnRows(sqlmock.NewRows([]string{"storage_key", "value", "updated_at"}))

	_, ok, err := s.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGormStorageGetError(t *testing.T) {
	gdb, mock := newMockGorm(t)
	s := NewGormStorage(gdb)

	mock.ExpectQuery("SELECT \\* FROM `storage_entries`").WillReturnError(errors.New("connection reset"))

	_, ok, err := s.Get(context.Background(), "k")
	require.Error(t, err)
	assert.False(t, ok)
}

func TestGormStorageSetUpserts(t *testing.T) {
	gdb, mock := newMockGorm(t)
	s := NewGormStorage(gdb)

	mock.ExpectExec("INSERT INTO `storage_entries` .* ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Set(context.Background(), "c1:favoriteDoctors", `["d2"]`))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStorageDelete(t *testing.T) {
	gdb, mock := newMockGorm(t)
	s := NewGormStorage(gdb)

	mock.ExpectExec("DELETE FROM `storage_entries` WHERE storage_key = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Delete(context.Background(), "c1:wellnessConnectUser"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNamespaceIsolatesClients(t *testing.T) {
	ctx := context.Background()
	base := NewMemoryStorage()
	a := Namespace(base, "client-a")
	b := Namespace(base, "client-b")

	require.NoError(t, a.Set(ctx, KeyFavorites, `["d1"]`))

	_, ok, _ := b.Get(ctx, KeyFavorites)
	assert.False(t, ok)

	raw, ok, _ := base.Get(ctx, "client-a:"+KeyFavorites)
	assert.True(t, ok)
	assert.Equal(t, `["d1"]`, raw)
}
