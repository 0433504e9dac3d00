package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sandeepkv93/assignd/internal/model"
)

// BlobKey is the fixed name the task collection is persisted under.
const BlobKey = "tasks"

// SubjectAll is the sentinel that disables subject filtering.
const SubjectAll = "all"

// Store owns the live task collection. Every mutation is applied under the
// lock and then persisted as a whole; readers get copied snapshots.
type Store struct {
	mu    sync.Mutex
	blobs BlobStore
	tasks []model.Task

	now   func() time.Time
	newID func() string
}

func New(blobs BlobStore) *Store {
	return &Store{
		blobs: blobs,
		tasks: make([]model.Task, 0),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Load replaces the collection with the persisted blob. A missing or corrupt
// blob yields an empty collection instead of an error.
func (s *Store) Load(ctx context.Context) error {
	raw, err := s.blobs.Load(ctx, BlobKey)
	if err != nil {
		s.replace(nil)
		return nil
	}
	tasks, err := decodeTasks(raw)
	if err != nil {
		s.replace(nil)
		return nil
	}
	s.replace(tasks)
	return nil
}

// Create validates the draft, assigns id and creation time, appends the task
// and persists. On a persist failure the task stays in memory and the error
// wraps ErrPersist so callers can degrade to a warning.
func (s *Store) Create(ctx context.Context, draft model.Draft) (model.Task, error) {
	if err := draft.Validate(); err != nil {
		return model.Task{}, err
	}
	priority := draft.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	s.mu.Lock()
	task := model.Task{
		ID:          s.newID(),
		Title:       draft.Title,
		Subject:     draft.Subject,
		Description: draft.Description,
		Deadline:    draft.Deadline,
		Priority:    priority,
		Completed:   false,
		CreatedAt:   s.now(),
	}
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()

	if err := s.Save(ctx); err != nil {
		return task, err
	}
	return task, nil
}

// Delete removes the task with the given id. An absent id is a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	removed := false
	kept := s.tasks[:0]
	for _, task := range s.tasks {
		if task.ID == id {
			removed = true
			continue
		}
		kept = append(kept, task)
	}
	s.tasks = kept
	s.mu.Unlock()

	if !removed {
		return nil
	}
	return s.Save(ctx)
}

// Complete marks the task done. Completion is one-way; there is no reverse
// operation.
func (s *Store) Complete(ctx context.Context, id string) error {
	s.mu.Lock()
	found := false
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = true
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return ErrNotFound
	}
	return s.Save(ctx)
}

// Get resolves a task by id. Views hold ids, not task copies, and resolve
// them here at interaction time.
func (s *Store) Get(id string) (model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, task := range s.tasks {
		if task.ID == id {
			return task, true
		}
	}
	return model.Task{}, false
}

// List returns a snapshot sorted by deadline ascending. The sort is stable,
// so tasks sharing a deadline keep insertion order.
func (s *Store) List() []model.Task {
	s.mu.Lock()
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	s.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Deadline.Before(out[j].Deadline)
	})
	return out
}

// ListBySubject filters List by exact subject; SubjectAll returns everything.
func (s *Store) ListBySubject(subject string) []model.Task {
	all := s.List()
	if subject == SubjectAll {
		return all
	}
	out := make([]model.Task, 0, len(all))
	for _, task := range all {
		if task.Subject == subject {
			out = append(out, task)
		}
	}
	return out
}

// Subjects returns the distinct subjects in first-seen order.
func (s *Store) Subjects() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool, len(s.tasks))
	out := make([]string, 0, len(s.tasks))
	for _, task := range s.tasks {
		if seen[task.Subject] {
			continue
		}
		seen[task.Subject] = true
		out = append(out, task.Subject)
	}
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Save serializes the whole collection to the blob store.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	snapshot := make([]model.Task, len(s.tasks))
	copy(snapshot, s.tasks)
	s.mu.Unlock()

	raw, err := encodeTasks(snapshot)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrPersist, err)
	}
	if err := s.blobs.Save(ctx, BlobKey, raw); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}

func (s *Store) replace(tasks []model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tasks == nil {
		tasks = make([]model.Task, 0)
	}
	s.tasks = tasks
}
