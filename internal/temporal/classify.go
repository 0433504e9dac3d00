package temporal

import (
	"fmt"
	"time"

	"github.com/sandeepkv93/assignd/internal/model"
)

// UrgentWindow is the span before a deadline in which a task counts as
// urgent. A deadline already in the past also falls inside the window, so an
// overdue task is always urgent as well.
const UrgentWindow = 24 * time.Hour

type Classification struct {
	Overdue       bool
	Urgent        bool
	TimeRemaining string
}

// Classify computes the temporal state of a task relative to now. Completed
// tasks are neither overdue nor urgent.
func Classify(task model.Task, now time.Time) Classification {
	if task.Completed {
		return Classification{TimeRemaining: "Completed"}
	}
	overdue := task.Deadline.Before(now)
	urgent := task.Deadline.Sub(now) < UrgentWindow
	label := "Overdue"
	if !overdue {
		label = TimeRemainingLabel(task.Deadline, now)
	}
	return Classification{Overdue: overdue, Urgent: urgent, TimeRemaining: label}
}

// TimeRemainingLabel renders the span until deadline as whole days, then
// whole hours, then "Due soon" under an hour. Callers should prefer an
// overdue label when the deadline has already passed.
func TimeRemainingLabel(deadline, now time.Time) string {
	diff := deadline.Sub(now)
	days := int(diff / (24 * time.Hour))
	hours := int((diff % (24 * time.Hour)) / time.Hour)
	if days > 0 {
		return fmt.Sprintf("%d %s left", days, pluralize("day", days))
	}
	if hours > 0 {
		return fmt.Sprintf("%d %s left", hours, pluralize("hour", hours))
	}
	return "Due soon"
}

func pluralize(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
