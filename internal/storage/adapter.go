package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"telehealth-server/internal/metrics"
	"telehealth-server/pkg/logging"
)

// SchemaVersion is the envelope version written by Save.
const SchemaVersion = 1

type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// JSONAdapter reads and writes one value of type T under a fixed key.
type JSONAdapter[T any] struct {
	storage Storage
	key     string
	logger  *logging.Logger
	metrics *metrics.Metrics
}

// NewJSONAdapter binds key in s to values of type T. logger and m may be nil.
func NewJSONAdapter[T any](s Storage, key string, logger *logging.Logger, m *metrics.Metrics) *JSONAdapter[T] {
	if logger == nil {
		logger = logging.Discard()
	}
	return &JSONAdapter[T]{storage: s, key: key, logger: logger, metrics: m}
}

// Load returns the stored value. A missing key, a backend error or a
// malformed document yields the zero value of T and ok=false; failures are
// logged and counted, never returned.
func (a *JSONAdapter[T]) Load(ctx context.Context) (T, bool) {
	var zero T
	raw, found, err := a.storage.Get(ctx, a.key)
	if err != nil {
		a.fail("load", err)
		return zero, false
	}
	if !found {
		return zero, false
	}
	v, err := decode[T](raw)
	if err != nil {
		a.fail("decode", err)
		return zero, false
	}
	return v, true
}

// LoadForUpdate is Load for read-modify-write callers. A missing key yields
// the zero value and a nil error; a backend or decode failure is returned so
// the caller does not overwrite data it could not read.
func (a *JSONAdapter[T]) LoadForUpdate(ctx context.Context) (T, error) {
	var zero T
	raw, found, err := a.storage.Get(ctx, a.key)
	if err != nil {
		a.fail("load", err)
		return zero, fmt.Errorf("storage: load %s: %w", a.key, err)
	}
	if !found {
		return zero, nil
	}
	v, err := decode[T](raw)
	if err != nil {
		a.fail("decode", err)
		return zero, fmt.Errorf("storage: decode %s: %w", a.key, err)
	}
	return v, nil
}

// Save overwrites the stored value with v.
func (a *JSONAdapter[T]) Save(ctx context.Context, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: encode %s: %w", a.key, err)
	}
	doc, err := json.Marshal(envelope{Version: SchemaVersion, Data: data})
	if err != nil {
		return fmt.Errorf("storage: encode %s: %w", a.key, err)
	}
	if err := a.storage.Set(ctx, a.key, string(doc)); err != nil {
		a.fail("save", err)
		return err
	}
	return nil
}

// Clear removes the stored value.
func (a *JSONAdapter[T]) Clear(ctx context.Context) error {
	if err := a.storage.Delete(ctx, a.key); err != nil {
		a.fail("clear", err)
		return err
	}
	return nil
}

func (a *JSONAdapter[T]) fail(op string, err error) {
	a.logger.Warn("storage operation failed", "key", a.key, "op", op, "error", err)
	a.metrics.ObserveStorageFailure(a.key, op)
}

// decode accepts both the versioned envelope and a bare legacy document.
func decode[T any](raw string) (T, error) {
	var v T
	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err == nil && env.Version > 0 && env.Data != nil {
		if env.Version > SchemaVersion {
			return v, fmt.Errorf("unsupported schema version %d", env.Version)
		}
		err := json.Unmarshal(env.Data, &v)
		return v, err
	}
	err := json.Unmarshal([]byte(raw), &v)
	return v, err
}
