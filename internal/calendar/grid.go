package calendar

import (
	"time"

	"github.com/sandeepkv93/assignd/internal/model"
)

// GridSize is the fixed cell count of the month view: 6 weeks of 7 days.
// Starting the grid on the Sunday on or before the 1st keeps every month
// inside 42 cells no matter which weekday it starts on.
const GridSize = 42

type Cell struct {
	Date      time.Time
	InMonth   bool
	IsToday   bool
	TaskCount int
}

// Page identifies the displayed month. Month is 1-12 as in the time package.
type Page struct {
	Year  int
	Month time.Month
}

func PageOf(t time.Time) Page {
	return Page{Year: t.Year(), Month: t.Month()}
}

func (p Page) Prev() Page {
	if p.Month == time.January {
		return Page{Year: p.Year - 1, Month: time.December}
	}
	return Page{Year: p.Year, Month: p.Month - 1}
}

func (p Page) Next() Page {
	if p.Month == time.December {
		return Page{Year: p.Year + 1, Month: time.January}
	}
	return Page{Year: p.Year, Month: p.Month + 1}
}

// Label renders the month header, e.g. "March 2026".
func (p Page) Label() string {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}

// BuildGrid lays out the 42-cell month view for page and buckets tasks into
// cells by the calendar date of their deadline, ignoring time of day and
// completion state. The grid is recomputed from scratch on every call.
func BuildGrid(page Page, tasks []model.Task, today time.Time) []Cell {
	first := time.Date(page.Year, page.Month, 1, 0, 0, 0, 0, today.Location())
	start := first.AddDate(0, 0, -int(first.Weekday()))

	counts := make(map[string]int, len(tasks))
	for _, task := range tasks {
		counts[dayKey(task.Deadline)]++
	}

	cells := make([]Cell, 0, GridSize)
	for i := 0; i < GridSize; i++ {
		date := start.AddDate(0, 0, i)
		cells = append(cells, Cell{
			Date:      date,
			InMonth:   date.Month() == page.Month,
			IsToday:   SameDate(date, today),
			TaskCount: counts[dayKey(date)],
		})
	}
	return cells
}

// TasksOnDate returns the tasks whose deadline falls on the same calendar
// date, regardless of time of day or completion.
func TasksOnDate(tasks []model.Task, date time.Time) []model.Task {
	out := make([]model.Task, 0)
	for _, task := range tasks {
		if SameDate(task.Deadline, date) {
			out = append(out, task)
		}
	}
	return out
}

func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
