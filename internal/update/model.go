package update

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/assignd/internal/calendar"
	"github.com/sandeepkv93/assignd/internal/notify"
	"github.com/sandeepkv93/assignd/internal/store"
)

type View string

const (
	ViewAssignments View = "Assignments"
	ViewCalendar    View = "Calendar"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Assignments string
	Calendar    string
	Help        string
	Quit        string
}

type CommandPaletteState struct {
	Active bool
}

// Notification is a banner entry shown inside the app frame.
type Notification struct {
	Message  string
	Severity notify.Severity
	At       time.Time
}

type Model struct {
	Store          *store.Store
	CurrentView    View
	SubjectFilter  string
	Cursor         int
	SelectedTaskID string
	DetailVisible  bool
	Page           calendar.Page
	DayCursor      int
	Palette        CommandPaletteState
	HelpVisible    bool
	Notifications  []Notification
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error

	reminderCh   <-chan Notification
	commandInput textinput.Model
	now          func() time.Time
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type NotificationMsg struct {
	Notification Notification
}

func NewModel(s *store.Store) Model {
	input := textinput.New()
	input.Placeholder = "add <title> subject:<s> due:<when> priority:<p>"
	input.CharLimit = 200

	now := time.Now
	m := Model{
		Store:         s,
		CurrentView:   ViewAssignments,
		SubjectFilter: store.SubjectAll,
		Page:          calendar.PageOf(now()),
		Keys: GlobalKeyMap{
			Assignments: "1",
			Calendar:    "2",
			Help:        "?",
			Quit:        "q",
		},
		commandInput: input,
		now:          now,
	}
	m.DayCursor = m.todayCursorIndex()
	return m
}

// NewModelWithFeed wires the model to a reminder feed so sweeper
// notifications arrive as messages in the program loop.
func NewModelWithFeed(s *store.Store, feed <-chan Notification) Model {
	m := NewModel(s)
	m.reminderCh = feed
	return m
}

// NewReminderFeed returns a channel and a Notifier writing into it. The write
// is non-blocking so a stalled UI never blocks the sweeper.
func NewReminderFeed(buffer int) (chan Notification, notify.Notifier) {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Notification, buffer)
	notifier := notify.Func(func(message string, severity notify.Severity) {
		n := Notification{Message: message, Severity: severity, At: time.Now()}
		select {
		case ch <- n:
		default:
		}
	})
	return ch, notifier
}

func (m Model) todayCursorIndex() int {
	today := m.now()
	cells := calendar.BuildGrid(m.Page, nil, today)
	for i, cell := range cells {
		if cell.IsToday {
			return i
		}
	}
	return 0
}
