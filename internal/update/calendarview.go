package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/assignd/internal/calendar"
	"github.com/sandeepkv93/assignd/internal/views"
)

func (m Model) handleCalendarKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "h":
		m.Page = m.Page.Prev()
		m.Status = StatusBar{Text: "calendar: " + m.Page.Label()}
	case "l":
		m.Page = m.Page.Next()
		m.Status = StatusBar{Text: "calendar: " + m.Page.Label()}
	case "left":
		if m.DayCursor > 0 {
			m.DayCursor--
		}
	case "right":
		if m.DayCursor < calendar.GridSize-1 {
			m.DayCursor++
		}
	case "up":
		if m.DayCursor >= 7 {
			m.DayCursor -= 7
		}
	case "down":
		if m.DayCursor < calendar.GridSize-7 {
			m.DayCursor += 7
		}
	case "t":
		m.Page = calendar.PageOf(m.now())
		m.DayCursor = m.todayCursorIndex()
		m.Status = StatusBar{Text: "calendar: " + m.Page.Label()}
	case "enter":
		m = m.announceDayTasks()
	}
	return m
}

func (m Model) announceDayTasks() Model {
	cells := calendar.BuildGrid(m.Page, m.Store.List(), m.now())
	if m.DayCursor < 0 || m.DayCursor >= len(cells) {
		return m
	}
	date := cells[m.DayCursor].Date
	tasks := calendar.TasksOnDate(m.Store.List(), date)
	if len(tasks) == 0 {
		m.Status = StatusBar{Text: fmt.Sprintf("No assignments for %s", date.Format("Jan 2, 2006"))}
		return m
	}
	titles := make([]string, 0, len(tasks))
	for _, task := range tasks {
		titles = append(titles, task.Title)
	}
	m.Status = StatusBar{Text: fmt.Sprintf("%s: %s", date.Format("Jan 2, 2006"), strings.Join(titles, ", "))}
	return m
}

func (m Model) renderCalendarView() string {
	cells := calendar.BuildGrid(m.Page, m.Store.List(), m.now())

	lines := make([]string, 0, 9)
	lines = append(lines, m.Page.Label())
	lines = append(lines, "Su Mo Tu We Th Fr Sa")
	for row := 0; row < calendar.GridSize/7; row++ {
		cols := make([]string, 0, 7)
		for col := 0; col < 7; col++ {
			i := row*7 + col
			cell := cells[i]
			day := fmt.Sprintf("%2d", cell.Date.Day())
			switch {
			case i == m.DayCursor:
				day = "[" + strings.TrimSpace(day) + "]"
			case cell.IsToday:
				day = views.StyleToday(day)
			case !cell.InMonth:
				day = views.StyleDimDay(day)
			}
			if cell.TaskCount > 0 {
				day += "*"
			}
			cols = append(cols, day)
		}
		lines = append(lines, strings.Join(cols, " "))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderDayPane() string {
	cells := calendar.BuildGrid(m.Page, m.Store.List(), m.now())
	if m.DayCursor < 0 || m.DayCursor >= len(cells) {
		return ""
	}
	date := cells[m.DayCursor].Date
	tasks := calendar.TasksOnDate(m.Store.List(), date)
	if len(tasks) == 0 {
		return fmt.Sprintf("No assignments for %s", date.Format("Jan 2, 2006"))
	}
	lines := make([]string, 0, len(tasks)+1)
	plural := "s"
	if len(tasks) == 1 {
		plural = ""
	}
	lines = append(lines, fmt.Sprintf("%s - %d task%s", date.Format("Jan 2, 2006"), len(tasks), plural))
	for _, task := range tasks {
		lines = append(lines, fmt.Sprintf("- %s (%s)", task.Title, task.Subject))
	}
	return strings.Join(lines, "\n")
}
