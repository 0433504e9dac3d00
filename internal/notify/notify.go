package notify

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notifier is the notification sink the core emits into. Rendering is the
// consumer's concern.
type Notifier interface {
	Notify(message string, severity Severity)
}

// Func adapts a plain function to the Notifier interface.
type Func func(message string, severity Severity)

func (f Func) Notify(message string, severity Severity) {
	f(message, severity)
}

type Noop struct{}

func (Noop) Notify(string, Severity) {}

// Desktop forwards warning-severity messages to the OS notification service.
// Anything below warning is dropped, and nothing is sent unless the user
// enabled desktop notifications.
type Desktop struct {
	Enabled bool
	Title   string
}

func (d Desktop) Notify(message string, severity Severity) {
	if !d.Enabled || severity != SeverityWarning {
		return
	}
	title := d.Title
	if title == "" {
		title = "assignd"
	}
	_ = sendDesktop(title, message)
}

func sendDesktop(title, body string) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", title, body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(body), escapeAppleScript(title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// Fanout delivers every message to all wrapped notifiers.
type Fanout []Notifier

func (f Fanout) Notify(message string, severity Severity) {
	for _, n := range f {
		n.Notify(message, severity)
	}
}
