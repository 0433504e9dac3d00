package reminder

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sandeepkv93/assignd/internal/model"
	"github.com/sandeepkv93/assignd/internal/notify"
)

// DefaultInterval matches the original sweep cadence of one minute.
const DefaultInterval = 60 * time.Second

// Policy controls whether an unchanged overdue set re-notifies on every
// sweep.
type Policy string

const (
	// PolicyEveryTick fires on every sweep while any task is overdue. This
	// is the level-triggered behavior and the default.
	PolicyEveryTick Policy = "every_tick"
	// PolicyOnChange fires only when the set of overdue task ids differs
	// from the last notified set.
	PolicyOnChange Policy = "on_change"
)

func (p Policy) IsValid() bool {
	switch p {
	case PolicyEveryTick, PolicyOnChange:
		return true
	default:
		return false
	}
}

// TaskLister is the read-only view of the task collection the sweeper needs.
type TaskLister interface {
	List() []model.Task
}

// Sweeper periodically scans for overdue tasks and emits one aggregate
// warning per sweep. It sweeps once on Start and then on every interval
// until Stop.
type Sweeper struct {
	tasks    TaskLister
	notifier notify.Notifier
	interval time.Duration
	policy   Policy
	now      func() time.Time

	mu        sync.Mutex
	started   bool
	stopped   bool
	lastFired string
	stopCh    chan struct{}
	doneCh    chan struct{}
}

func NewSweeper(tasks TaskLister, notifier notify.Notifier, interval time.Duration, policy Policy) *Sweeper {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if !policy.IsValid() {
		policy = PolicyEveryTick
	}
	return &Sweeper{
		tasks:    tasks,
		notifier: notifier,
		interval: interval,
		policy:   policy,
		now:      time.Now,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

func (s *Sweeper) Start() {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	s.Sweep(s.now())
	go s.loop()
}

// Stop cancels the periodic sweep and waits for the loop to exit. Safe to
// call more than once.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	if !s.started || s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	close(s.stopCh)
	s.mu.Unlock()
	<-s.doneCh
}

func (s *Sweeper) loop() {
	defer close(s.doneCh)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.Sweep(s.now())
		case <-s.stopCh:
			return
		}
	}
}

// Sweep runs a single pass against the given instant and notifies when any
// incomplete task has a deadline in the past.
func (s *Sweeper) Sweep(now time.Time) {
	overdueIDs := make([]string, 0)
	for _, task := range s.tasks.List() {
		if task.Completed {
			continue
		}
		if task.Deadline.Before(now) {
			overdueIDs = append(overdueIDs, task.ID)
		}
	}

	if len(overdueIDs) == 0 {
		s.mu.Lock()
		s.lastFired = ""
		s.mu.Unlock()
		return
	}

	fingerprint := overdueFingerprint(overdueIDs)
	s.mu.Lock()
	suppressed := s.policy == PolicyOnChange && fingerprint == s.lastFired
	if !suppressed {
		s.lastFired = fingerprint
	}
	s.mu.Unlock()
	if suppressed {
		return
	}

	s.notifier.Notify(OverdueMessage(len(overdueIDs)), notify.SeverityWarning)
}

// OverdueMessage renders the aggregate reminder text, pluralized by count.
func OverdueMessage(count int) string {
	unit := "assignments"
	if count == 1 {
		unit = "assignment"
	}
	return fmt.Sprintf("You have %d overdue %s!", count, unit)
}

func overdueFingerprint(ids []string) string {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)
	return strings.Join(sorted, "\n")
}
