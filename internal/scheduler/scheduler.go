package scheduler

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/sipdeck/internal/common/clock"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_scheduler.go github.com/KirkDiggler/sipdeck/internal/scheduler Scheduler

// Scheduler runs delayed tasks addressed by key. Scheduling a key again
// supersedes the task that was pending for it.
type Scheduler interface {
	// Schedule runs fn once delay has elapsed unless it is cancelled or superseded first
	Schedule(key string, delay time.Duration, fn func())

	// Cancel drops the pending task for key, returning false if there was none
	Cancel(key string) bool

	// Pending reports whether a task is waiting for key
	Pending(key string) bool
}

// Config holds the dependencies of the timer scheduler
type Config struct {
	Clock  clock.Clock
	Logger *zap.Logger
}

type task struct {
	timer clock.Timer
	seq   uint64
}

// TimerScheduler schedules tasks on clock timers
type TimerScheduler struct {
	mu     sync.Mutex
	clock  clock.Clock
	logger *zap.Logger
	tasks  map[string]*task
	seq    uint64
}

// New creates a new scheduler
func New(cfg *Config) (*TimerScheduler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &TimerScheduler{
		clock:  cfg.Clock,
		logger: logger.Named("scheduler"),
		tasks:  make(map[string]*task),
	}, nil
}

// Schedule runs fn after delay, replacing any task pending for the key
func (s *TimerScheduler) Schedule(key string, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.tasks[key]; ok {
		existing.timer.Stop()
		s.logger.Debug("superseded pending task", zap.String("key", key))
	}

	s.seq++
	seq := s.seq
	t := &task{seq: seq}
	s.tasks[key] = t
	t.timer = s.clock.AfterFunc(delay, func() {
		if !s.release(key, seq) {
			return
		}
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("scheduled task panicked", zap.String("key", key), zap.Any("panic", r))
			}
		}()
		fn()
	})
}

// release removes the task if it is still the current one for key
func (s *TimerScheduler) release(key string, seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.tasks[key]
	if !ok || current.seq != seq {
		return false
	}
	delete(s.tasks, key)
	return true
}

// Cancel stops the task pending for key
func (s *TimerScheduler) Cancel(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[key]
	if !ok {
		return false
	}
	t.timer.Stop()
	delete(s.tasks, key)
	return true
}

// Pending reports whether a task is waiting for key
func (s *TimerScheduler) Pending(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.tasks[key]
	return ok
}
