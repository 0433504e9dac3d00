package calendar

import (
	"testing"
	"time"

	"github.com/sandeepkv93/assignd/internal/model"
)

func TestBuildGridAlwaysFortyTwoCellsStartingSunday(t *testing.T) {
	today := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	pages := []Page{
		{Year: 2026, Month: time.March},
		{Year: 2026, Month: time.February}, // starts on a Sunday
		{Year: 2025, Month: time.December}, // year boundary
		{Year: 2026, Month: time.January},
		{Year: 2024, Month: time.February}, // leap month
	}
	for _, page := range pages {
		cells := BuildGrid(page, nil, today)
		if len(cells) != GridSize {
			t.Fatalf("%s: expected %d cells, got %d", page.Label(), GridSize, len(cells))
		}
		if cells[0].Date.Weekday() != time.Sunday {
			t.Fatalf("%s: first cell is %s, want Sunday", page.Label(), cells[0].Date.Weekday())
		}
		for i := 1; i < len(cells); i++ {
			if !cells[i].Date.Equal(cells[i-1].Date.AddDate(0, 0, 1)) {
				t.Fatalf("%s: cell %d is not consecutive", page.Label(), i)
			}
		}
	}
}

func TestBuildGridMarksTodayAndMonth(t *testing.T) {
	today := time.Date(2026, 3, 2, 23, 30, 0, 0, time.UTC)
	cells := BuildGrid(Page{Year: 2026, Month: time.March}, nil, today)

	todayCount := 0
	inMonth := 0
	for _, cell := range cells {
		if cell.IsToday {
			todayCount++
			if !SameDate(cell.Date, today) {
				t.Fatalf("cell marked today has date %s", cell.Date)
			}
		}
		if cell.InMonth {
			inMonth++
		}
	}
	if todayCount != 1 {
		t.Fatalf("expected exactly one today cell, got %d", todayCount)
	}
	if inMonth != 31 {
		t.Fatalf("expected 31 in-month cells for March, got %d", inMonth)
	}
}

func TestBuildGridBucketsByCalendarDate(t *testing.T) {
	today := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	due := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{ID: "a", Title: "Essay", Subject: "English", Deadline: due.Add(9 * time.Hour), Priority: model.PriorityLow, CreatedAt: today},
		{ID: "b", Title: "Lab report", Subject: "Physics", Deadline: due.Add(21 * time.Hour), Priority: model.PriorityHigh, CreatedAt: today, Completed: true},
		{ID: "c", Title: "Quiz prep", Subject: "History", Deadline: due.AddDate(0, 0, 1), Priority: model.PriorityMedium, CreatedAt: today},
	}

	cells := BuildGrid(Page{Year: 2026, Month: time.March}, tasks, today)
	for _, cell := range cells {
		switch {
		case SameDate(cell.Date, due):
			if cell.TaskCount != 2 {
				t.Fatalf("expected 2 tasks on %s, got %d", due, cell.TaskCount)
			}
		case SameDate(cell.Date, due.AddDate(0, 0, 1)):
			if cell.TaskCount != 1 {
				t.Fatalf("expected 1 task on %s, got %d", cell.Date, cell.TaskCount)
			}
		default:
			if cell.TaskCount != 0 {
				t.Fatalf("unexpected task count on %s: %d", cell.Date, cell.TaskCount)
			}
		}
	}

	onDate := TasksOnDate(tasks, due)
	if len(onDate) != 2 {
		t.Fatalf("expected 2 tasks on date, got %d", len(onDate))
	}
}

func TestPageNavigationRollover(t *testing.T) {
	dec := Page{Year: 2025, Month: time.December}
	jan := dec.Next()
	if jan.Year != 2026 || jan.Month != time.January {
		t.Fatalf("Next from December 2025: got %+v", jan)
	}
	if back := jan.Prev(); back != dec {
		t.Fatalf("Prev after Next did not round-trip: got %+v", back)
	}

	for _, page := range []Page{{2026, time.June}, {2026, time.January}, {2025, time.December}} {
		if rt := page.Next().Prev(); rt != page {
			t.Fatalf("Next then Prev from %+v: got %+v", page, rt)
		}
		if rt := page.Prev().Next(); rt != page {
			t.Fatalf("Prev then Next from %+v: got %+v", page, rt)
		}
	}
}

func TestPageLabel(t *testing.T) {
	page := Page{Year: 2026, Month: time.March}
	if page.Label() != "March 2026" {
		t.Fatalf("unexpected label: %q", page.Label())
	}
}
