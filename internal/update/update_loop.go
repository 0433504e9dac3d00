package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/assignd/internal/notify"
	"github.com/sandeepkv93/assignd/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.reminderCh != nil {
		return waitForNotificationCmd(m.reminderCh)
	}
	return nil
}

func waitForNotificationCmd(ch <-chan Notification) tea.Cmd {
	return func() tea.Msg {
		n, ok := <-ch
		if !ok {
			return nil
		}
		return NotificationMsg{Notification: n}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active"}
			return m, nil
		case m.Keys.Assignments:
			m.CurrentView = ViewAssignments
			return m, nil
		case m.Keys.Calendar:
			m.CurrentView = ViewCalendar
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		if m.CurrentView == ViewAssignments {
			return m.handleAssignmentsKey(typed), nil
		}
		return m.handleCalendarKey(typed), nil

	case SwitchViewMsg:
		if typed.View == ViewAssignments || typed.View == ViewCalendar {
			m.CurrentView = typed.View
		}
		return m, nil

	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil

	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil

	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.pushNotification(Notification{Message: typed.Err.Error(), Severity: notify.SeverityError, At: m.now()})
		}
		return m, nil

	case NotificationMsg:
		m.pushNotification(typed.Notification)
		m.Status = StatusBar{
			Text:    typed.Notification.Message,
			IsError: typed.Notification.Severity == notify.SeverityError,
		}
		if m.reminderCh != nil {
			return m, waitForNotificationCmd(m.reminderCh)
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) pushNotification(n Notification) {
	m.Notifications = append(m.Notifications, n)
	if len(m.Notifications) > 20 {
		m.Notifications = m.Notifications[len(m.Notifications)-20:]
	}
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewAssignments:
		leftPane = m.renderAssignmentsView()
		rightPane = m.renderDetailPane() + m.renderPaletteIfActive() + m.renderHelpIfVisible()
	case ViewCalendar:
		leftPane = m.renderCalendarView()
		rightPane = m.renderDayPane() + m.renderPaletteIfActive() + m.renderHelpIfVisible()
	}

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("assignd | view: %s | filter: %s", m.CurrentView, m.SubjectFilter),
		LeftPane:     leftPane,
		RightPane:    rightPane,
		StatusLine:   status,
		Notification: strings.TrimSpace(m.renderNotificationsView()),
		Footer: fmt.Sprintf("keys: %s assignments | %s calendar | / cmd | %s help | %s quit",
			m.Keys.Assignments, m.Keys.Calendar, m.Keys.Help, m.Keys.Quit),
	})
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	start := len(m.Notifications) - 3
	if start < 0 {
		start = 0
	}
	lines := make([]string, 0, 3)
	for _, n := range m.Notifications[start:] {
		lines = append(lines, fmt.Sprintf("[%s] %s %s", n.Severity, n.At.Format("15:04"), n.Message))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return strings.Join([]string{
		"",
		"help:",
		"  j/k move | enter detail | c complete | d delete | s cycle subject",
		"  calendar: h/l month | arrows day | t today | enter day tasks",
		"  palette: add <title> subject:<s> due:<when> priority:<p>",
		"           show <subject> | done <id> | rm <id>",
	}, "\n")
}
