package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sandeepkv93/assignd/internal/model"
)

type memoryBlobStore struct {
	blobs    map[string][]byte
	saves    int
	failSave error
}

func newMemoryBlobStore() *memoryBlobStore {
	return &memoryBlobStore{blobs: make(map[string][]byte)}
}

func (m *memoryBlobStore) Load(_ context.Context, key string) ([]byte, error) {
	raw, ok := m.blobs[key]
	if !ok {
		return nil, ErrNoBlob
	}
	return raw, nil
}

func (m *memoryBlobStore) Save(_ context.Context, key string, value []byte) error {
	m.saves++
	if m.failSave != nil {
		return m.failSave
	}
	m.blobs[key] = value
	return nil
}

func newTestStore(blobs BlobStore) *Store {
	s := New(blobs)
	s.now = func() time.Time { return time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC) }
	next := 0
	s.newID = func() string {
		next++
		return fmt.Sprintf("task-%d", next)
	}
	return s
}

func draftDue(title, subject string, deadline time.Time) model.Draft {
	return model.Draft{Title: title, Subject: subject, Deadline: deadline}
}

func TestCreateAssignsIdentityAndPersists(t *testing.T) {
	blobs := newMemoryBlobStore()
	s := newTestStore(blobs)
	ctx := context.Background()

	deadline := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	task, err := s.Create(ctx, draftDue("Research paper", "Environmental Science", deadline))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if task.ID != "task-1" || task.Completed || task.CreatedAt.IsZero() {
		t.Fatalf("unexpected created task: %#v", task)
	}
	if task.Priority != model.PriorityMedium {
		t.Fatalf("expected default priority medium, got %q", task.Priority)
	}
	if blobs.saves != 1 {
		t.Fatalf("expected 1 save, got %d", blobs.saves)
	}
}

func TestCreateValidatesDraft(t *testing.T) {
	s := newTestStore(newMemoryBlobStore())
	ctx := context.Background()

	_, err := s.Create(ctx, draftDue("", "Math", time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)))
	if !errors.Is(err, model.ErrMissingTitle) {
		t.Fatalf("expected ErrMissingTitle, got: %v", err)
	}
	_, err = s.Create(ctx, draftDue("Problem set", "Math", time.Time{}))
	if !errors.Is(err, model.ErrInvalidDeadline) {
		t.Fatalf("expected ErrInvalidDeadline, got: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("failed create must leave collection unchanged, len=%d", s.Len())
	}
}

func TestDeleteAbsentIsNoOp(t *testing.T) {
	blobs := newMemoryBlobStore()
	s := newTestStore(blobs)
	ctx := context.Background()

	if _, err := s.Create(ctx, draftDue("Essay", "English", time.Date(2026, 3, 5, 17, 0, 0, 0, time.UTC))); err != nil {
		t.Fatalf("create: %v", err)
	}
	savesBefore := blobs.saves

	if err := s.Delete(ctx, "missing"); err != nil {
		t.Fatalf("delete of absent id must not fail: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("collection changed by absent delete, len=%d", s.Len())
	}
	if blobs.saves != savesBefore {
		t.Fatalf("absent delete must not persist, saves=%d", blobs.saves)
	}

	if err := s.Delete(ctx, "task-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty collection after delete, len=%d", s.Len())
	}
}

func TestCompleteIsOneWayAndChecksExistence(t *testing.T) {
	s := newTestStore(newMemoryBlobStore())
	ctx := context.Background()

	task, err := s.Create(ctx, draftDue("Lab report", "Physics", time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := s.Complete(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
	if err := s.Complete(ctx, task.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	got, ok := s.Get(task.ID)
	if !ok || !got.Completed {
		t.Fatalf("expected completed task, got %#v ok=%v", got, ok)
	}
}

func TestListSortsByDeadlineStable(t *testing.T) {
	s := newTestStore(newMemoryBlobStore())
	ctx := context.Background()

	shared := time.Date(2026, 3, 6, 9, 0, 0, 0, time.UTC)
	if _, err := s.Create(ctx, draftDue("Later", "History", shared.Add(48*time.Hour))); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Create(ctx, draftDue("First at shared", "History", shared)); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Create(ctx, draftDue("Second at shared", "History", shared)); err != nil {
		t.Fatalf("create: %v", err)
	}

	list := s.List()
	if len(list) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(list))
	}
	if list[0].Title != "First at shared" || list[1].Title != "Second at shared" || list[2].Title != "Later" {
		t.Fatalf("unexpected order: %q, %q, %q", list[0].Title, list[1].Title, list[2].Title)
	}
}

func TestListBySubjectAndSentinel(t *testing.T) {
	s := newTestStore(newMemoryBlobStore())
	ctx := context.Background()
	due := time.Date(2026, 3, 6, 9, 0, 0, 0, time.UTC)

	for _, subject := range []string{"Math", "English", "Math"} {
		if _, err := s.Create(ctx, draftDue("Task for "+subject, subject, due)); err != nil {
			t.Fatalf("create: %v", err)
		}
		due = due.Add(time.Hour)
	}

	if got := len(s.ListBySubject("Math")); got != 2 {
		t.Fatalf("expected 2 Math tasks, got %d", got)
	}
	if got := len(s.ListBySubject(SubjectAll)); got != 3 {
		t.Fatalf("expected sentinel to return all 3 tasks, got %d", got)
	}
	if got := len(s.ListBySubject("Biology")); got != 0 {
		t.Fatalf("expected 0 Biology tasks, got %d", got)
	}
}

func TestSubjectsFirstSeenOrder(t *testing.T) {
	s := newTestStore(newMemoryBlobStore())
	ctx := context.Background()
	due := time.Date(2026, 3, 6, 9, 0, 0, 0, time.UTC)

	for _, subject := range []string{"Math", "English", "Math", "Biology"} {
		if _, err := s.Create(ctx, draftDue("t", subject, due)); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	subjects := s.Subjects()
	want := []string{"Math", "English", "Biology"}
	if len(subjects) != len(want) {
		t.Fatalf("expected %d subjects, got %v", len(want), subjects)
	}
	for i := range want {
		if subjects[i] != want[i] {
			t.Fatalf("subjects[%d] = %q, want %q", i, subjects[i], want[i])
		}
	}
}

func TestLoadMissingOrCorruptBlobYieldsEmpty(t *testing.T) {
	ctx := context.Background()

	s := newTestStore(newMemoryBlobStore())
	if err := s.Load(ctx); err != nil {
		t.Fatalf("load of missing blob must not fail: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty collection, len=%d", s.Len())
	}

	blobs := newMemoryBlobStore()
	blobs.blobs[BlobKey] = []byte("{not json")
	s = newTestStore(blobs)
	if err := s.Load(ctx); err != nil {
		t.Fatalf("load of corrupt blob must not fail: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty collection after corrupt load, len=%d", s.Len())
	}
}

func TestSaveFailureLeavesMemoryIntact(t *testing.T) {
	blobs := newMemoryBlobStore()
	blobs.failSave = errors.New("disk full")
	s := newTestStore(blobs)
	ctx := context.Background()

	task, err := s.Create(ctx, draftDue("Essay", "English", time.Date(2026, 3, 5, 17, 0, 0, 0, time.UTC)))
	if !errors.Is(err, ErrPersist) {
		t.Fatalf("expected ErrPersist, got: %v", err)
	}
	if task.ID == "" {
		t.Fatal("create must still return the task on persist failure")
	}
	if s.Len() != 1 {
		t.Fatalf("in-memory collection must keep the task, len=%d", s.Len())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	blobs := newMemoryBlobStore()
	s := newTestStore(blobs)
	ctx := context.Background()

	deadline := time.Date(2026, 3, 9, 9, 30, 0, 0, time.UTC)
	created, err := s.Create(ctx, model.Draft{
		Title:       "Quiz prep",
		Subject:     "History",
		Description: "Chapters 4-6",
		Deadline:    deadline,
		Priority:    model.PriorityHigh,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Complete(ctx, created.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	reloaded := newTestStore(blobs)
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	got, ok := reloaded.Get(created.ID)
	if !ok {
		t.Fatal("task missing after reload")
	}
	if got.Title != "Quiz prep" || got.Subject != "History" || got.Description != "Chapters 4-6" {
		t.Fatalf("unexpected reloaded task: %#v", got)
	}
	if !got.Deadline.Equal(deadline) || !got.Completed || got.Priority != model.PriorityHigh {
		t.Fatalf("reload lost fields: %#v", got)
	}
}
