// Package scheduler runs delayed callbacks that belong to one owner and can
// all be cancelled when the owner goes away.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrClosed is returned when scheduling on a closed scheduler.
var ErrClosed = errors.New("scheduler: closed")

type task struct {
	id    string
	key   string
	timer *time.Timer
}

// Scheduler owns a set of pending timers.
type Scheduler struct {
	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	tasks  map[string]*task
	keyed  map[string]string
	wg     sync.WaitGroup
	closed bool
}

func New() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		ctx:    ctx,
		cancel: cancel,
		tasks:  make(map[string]*task),
		keyed:  make(map[string]string),
	}
}

// After runs fn once delay has elapsed and returns the task id.
func (s *Scheduler) After(delay time.Duration, fn func(ctx context.Context)) (string, error) {
	return s.schedule("", delay, fn)
}

// AfterKeyed is After, except that a pending task with the same key is
// cancelled first.
func (s *Scheduler) AfterKeyed(key string, delay time.Duration, fn func(ctx context.Context)) (string, error) {
	return s.schedule(key, delay, fn)
}

func (s *Scheduler) schedule(key string, delay time.Duration, fn func(ctx context.Context)) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return "", ErrClosed
	}
	if key != "" {
		if prev, ok := s.keyed[key]; ok {
			s.cancelLocked(prev)
		}
	}

	t := &task{id: uuid.New().String(), key: key}
	s.wg.Add(1)
	t.timer = time.AfterFunc(delay, func() {
		if !s.claim(t) {
			return
		}
		defer s.wg.Done()
		if s.ctx.Err() != nil {
			return
		}
		fn(s.ctx)
	})
	s.tasks[t.id] = t
	if key != "" {
		s.keyed[key] = t.id
	}
	return t.id, nil
}

// claim removes t from the pending set; false means it was already cancelled.
func (s *Scheduler) claim(t *task) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[t.id]; !ok {
		return false
	}
	s.forgetLocked(t)
	return true
}

// Cancel stops a pending task. It reports whether the task was pending.
func (s *Scheduler) Cancel(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancelLocked(id)
}

func (s *Scheduler) cancelLocked(id string) bool {
	t, ok := s.tasks[id]
	if !ok {
		return false
	}
	t.timer.Stop()
	s.forgetLocked(t)
	s.wg.Done()
	return true
}

func (s *Scheduler) forgetLocked(t *task) {
	delete(s.tasks, t.id)
	if t.key != "" && s.keyed[t.key] == t.id {
		delete(s.keyed, t.key)
	}
}

// Pending returns the number of tasks not yet started.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Close cancels every pending task, cancels the context handed to running
// callbacks and waits for them to return. Later scheduling fails.
func (s *Scheduler) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	for id := range s.tasks {
		s.cancelLocked(id)
	}
	s.cancel()
	s.mu.Unlock()

	s.wg.Wait()
}
