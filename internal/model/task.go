package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrMissingTitle    = errors.New("model: task title is required")
	ErrMissingSubject  = errors.New("model: task subject is required")
	ErrInvalidDeadline = errors.New("model: invalid task deadline")
	ErrInvalidPriority = errors.New("model: invalid task priority")
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// ParsePriority normalizes free-form input; empty input falls back to medium.
func ParsePriority(raw string) (Priority, error) {
	normalized := Priority(strings.ToLower(strings.TrimSpace(raw)))
	if normalized == "" {
		return PriorityMedium, nil
	}
	if !normalized.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, raw)
	}
	return normalized, nil
}

// Task is an assignment with a deadline. ID and CreatedAt are assigned at
// creation and never change afterwards.
type Task struct {
	ID          string
	Title       string
	Subject     string
	Description string
	Deadline    time.Time
	Priority    Priority
	Completed   bool
	CreatedAt   time.Time
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return ErrMissingTitle
	}
	if strings.TrimSpace(t.Subject) == "" {
		return ErrMissingSubject
	}
	if t.Deadline.IsZero() {
		return ErrInvalidDeadline
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	return nil
}

// Draft carries user input for a new task before an ID is assigned.
type Draft struct {
	Title       string
	Subject     string
	Description string
	Deadline    time.Time
	Priority    Priority
}

func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrMissingTitle
	}
	if strings.TrimSpace(d.Subject) == "" {
		return ErrMissingSubject
	}
	if d.Deadline.IsZero() {
		return ErrInvalidDeadline
	}
	if d.Priority != "" && !d.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, d.Priority)
	}
	return nil
}
