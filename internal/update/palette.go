package update

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/assignd/internal/commands"
	"github.com/sandeepkv93/assignd/internal/model"
	"github.com/sandeepkv93/assignd/internal/notify"
	"github.com/sandeepkv93/assignd/internal/store"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed"}
		return m, nil
	case "enter":
		input := m.commandInput.Value()
		m.Palette.Active = false
		m.commandInput.Blur()
		m.commandInput.SetValue("")
		return m.executePalette(input), nil
	}

	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	return m, cmd
}

func (m Model) executePalette(input string) Model {
	cmd, err := commands.Parse(input)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}

	result, err := commands.Execute(cmd, commands.Handlers{
		Add:  m.handleAddCommand,
		Show: m.handleShowCommand,
		Done: m.handleDoneCommand,
		Rm:   m.handleRmCommand,
	})
	if err != nil {
		if errors.Is(err, store.ErrPersist) {
			m.pushNotification(Notification{Message: err.Error(), Severity: notify.SeverityWarning, At: m.now()})
			m.Status = StatusBar{Text: "saved in memory only (persist failed)"}
			return m
		}
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}

	// Command side effects apply to shared store state, so only the
	// filter-changing command mutates the model itself.
	if cmd.Type == commands.TypeShow {
		m.SubjectFilter = normalizeSubjectFilter(cmd.Show.Subject, m.Store.Subjects())
		m.CurrentView = ViewAssignments
		m.Cursor = 0
	}
	m.Status = StatusBar{Text: result.Message}
	m.pushNotification(Notification{Message: result.Message, Severity: notify.SeveritySuccess, At: m.now()})
	return m
}

func (m Model) handleAddCommand(args commands.AddArgs) (commands.Result, error) {
	deadline, err := parseWhen(args.Due, m.now())
	if err != nil {
		return commands.Result{}, err
	}
	priority, err := model.ParsePriority(args.Priority)
	if err != nil {
		return commands.Result{}, err
	}
	_, err = m.Store.Create(context.Background(), model.Draft{
		Title:    args.Title,
		Subject:  args.Subject,
		Deadline: deadline,
		Priority: priority,
	})
	if err != nil {
		return commands.Result{}, err
	}
	return commands.Result{Message: "Assignment added successfully!"}, nil
}

func (m Model) handleShowCommand(args commands.ShowArgs) (commands.Result, error) {
	subject := normalizeSubjectFilter(args.Subject, m.Store.Subjects())
	return commands.Result{Message: fmt.Sprintf("showing subject: %s", subject)}, nil
}

func (m Model) handleDoneCommand(args commands.DoneArgs) (commands.Result, error) {
	id, err := m.resolveTaskID(args.Target)
	if err != nil {
		return commands.Result{}, err
	}
	if err := m.Store.Complete(context.Background(), id); err != nil {
		return commands.Result{}, err
	}
	return commands.Result{Message: "Assignment marked as complete!"}, nil
}

func (m Model) handleRmCommand(args commands.RmArgs) (commands.Result, error) {
	id, err := m.resolveTaskID(args.Target)
	if err != nil {
		return commands.Result{}, err
	}
	if err := m.Store.Delete(context.Background(), id); err != nil {
		return commands.Result{}, err
	}
	return commands.Result{Message: "Assignment deleted successfully!"}, nil
}

// resolveTaskID accepts a full id or an unambiguous prefix.
func (m Model) resolveTaskID(target string) (string, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return "", store.ErrNotFound
	}
	match := ""
	for _, task := range m.Store.List() {
		if task.ID == target {
			return task.ID, nil
		}
		if strings.HasPrefix(task.ID, target) {
			if match != "" {
				return "", fmt.Errorf("update: ambiguous task id %q", target)
			}
			match = task.ID
		}
	}
	if match == "" {
		return "", store.ErrNotFound
	}
	return match, nil
}

func normalizeSubjectFilter(raw string, subjects []string) string {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, store.SubjectAll) || raw == "" {
		return store.SubjectAll
	}
	for _, s := range subjects {
		if strings.EqualFold(s, raw) {
			return s
		}
	}
	return raw
}

func (m Model) renderPaletteIfActive() string {
	if !m.Palette.Active {
		return ""
	}
	return "\n/ " + m.commandInput.View()
}
