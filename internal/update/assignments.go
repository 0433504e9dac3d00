package update

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/assignd/internal/model"
	"github.com/sandeepkv93/assignd/internal/notify"
	"github.com/sandeepkv93/assignd/internal/store"
	"github.com/sandeepkv93/assignd/internal/temporal"
	"github.com/sandeepkv93/assignd/internal/views"
)

func (m Model) visibleTasks() []model.Task {
	return m.Store.ListBySubject(m.SubjectFilter)
}

func (m Model) handleAssignmentsKey(msg tea.KeyMsg) Model {
	tasks := m.visibleTasks()
	switch msg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(tasks)-1 {
			m.Cursor++
		}
	case "enter":
		if task, ok := m.cursorTask(tasks); ok {
			if m.SelectedTaskID == task.ID && m.DetailVisible {
				m.DetailVisible = false
				m.SelectedTaskID = ""
			} else {
				m.SelectedTaskID = task.ID
				m.DetailVisible = true
			}
		}
	case "c":
		if task, ok := m.cursorTask(tasks); ok {
			m = m.completeTask(task.ID)
		}
	case "d":
		if task, ok := m.cursorTask(tasks); ok {
			m = m.deleteTask(task.ID)
		}
	case "s":
		m.SubjectFilter = nextSubjectFilter(m.SubjectFilter, m.Store.Subjects())
		m.Cursor = 0
		m.Status = StatusBar{Text: fmt.Sprintf("subject filter: %s", m.SubjectFilter)}
	}
	return m
}

func (m Model) cursorTask(tasks []model.Task) (model.Task, bool) {
	if m.Cursor < 0 || m.Cursor >= len(tasks) {
		return model.Task{}, false
	}
	return tasks[m.Cursor], true
}

func (m Model) completeTask(id string) Model {
	err := m.Store.Complete(context.Background(), id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		m.Status = StatusBar{Text: "assignment no longer exists", IsError: true}
	case errors.Is(err, store.ErrPersist):
		m.pushNotification(Notification{Message: err.Error(), Severity: notify.SeverityWarning, At: m.now()})
		m.Status = StatusBar{Text: "assignment marked as complete (save failed)"}
	case err != nil:
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	default:
		m.Status = StatusBar{Text: "Assignment marked as complete!"}
		m.pushNotification(Notification{Message: "Assignment marked as complete!", Severity: notify.SeveritySuccess, At: m.now()})
	}
	return m
}

func (m Model) deleteTask(id string) Model {
	err := m.Store.Delete(context.Background(), id)
	switch {
	case errors.Is(err, store.ErrPersist):
		m.pushNotification(Notification{Message: err.Error(), Severity: notify.SeverityWarning, At: m.now()})
		m.Status = StatusBar{Text: "assignment deleted (save failed)"}
	case err != nil:
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	default:
		m.Status = StatusBar{Text: "Assignment deleted successfully!"}
		m.pushNotification(Notification{Message: "Assignment deleted successfully!", Severity: notify.SeveritySuccess, At: m.now()})
	}
	// The deleted id must not survive as a dangling detail reference.
	if m.SelectedTaskID == id {
		m.SelectedTaskID = ""
		m.DetailVisible = false
	}
	if count := len(m.visibleTasks()); m.Cursor >= count && count > 0 {
		m.Cursor = count - 1
	}
	return m
}

func nextSubjectFilter(current string, subjects []string) string {
	options := append([]string{store.SubjectAll}, subjects...)
	for i, s := range options {
		if s == current {
			return options[(i+1)%len(options)]
		}
	}
	return store.SubjectAll
}

func (m Model) renderAssignmentsView() string {
	tasks := m.visibleTasks()
	if len(tasks) == 0 {
		return "No assignments yet\nUse the palette (/) to add one."
	}

	now := m.now()
	lines := make([]string, 0, len(tasks)+1)
	lines = append(lines, fmt.Sprintf("assignments (%d)", len(tasks)))
	for i, task := range tasks {
		marker := "  "
		if i == m.Cursor {
			marker = "> "
		}
		c := temporal.Classify(task, now)
		title := task.Title
		label := c.TimeRemaining
		switch {
		case task.Completed:
			title = views.StyleDone(title)
		case c.Overdue:
			label = views.StyleOverdue(label)
		case c.Urgent:
			label = views.StyleUrgent(label)
		}
		badge := views.StylePriority(string(task.Priority), string(task.Priority))
		lines = append(lines, fmt.Sprintf("%s%s [%s] %s - %s", marker, title, badge, task.Subject, label))
	}
	return strings.Join(lines, "\n")
}

// renderDetailPane resolves the selected id against the store at render
// time, so a mutation between render and interaction can never show a stale
// copy.
func (m Model) renderDetailPane() string {
	if !m.DetailVisible || m.SelectedTaskID == "" {
		return "enter: open detail"
	}
	task, ok := m.Store.Get(m.SelectedTaskID)
	if !ok {
		return "assignment no longer exists"
	}

	status := "Pending"
	if task.Completed {
		status = "Completed"
	}
	description := "No description provided"
	if strings.TrimSpace(task.Description) != "" {
		description = views.RenderMarkdown(task.Description)
	}
	return strings.Join([]string{
		task.Title,
		"",
		"Subject:  " + task.Subject,
		"Deadline: " + formatDateTime(task.Deadline),
		"Priority: " + views.StylePriority(string(task.Priority), strings.ToUpper(string(task.Priority))),
		"Status:   " + status,
		"",
		description,
	}, "\n")
}
