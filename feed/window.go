package feed

import (
	"fmt"
	"time"
)

// Window bounds how old a returned entry may be, relative to now.
type Window string

const (
	WindowDay   Window = "day"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
	WindowYear  Window = "year"
)

// ParseWindow validates a client-supplied window value. Empty input selects
// the week window.
func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case "":
		return WindowWeek, nil
	case WindowDay, WindowWeek, WindowMonth, WindowYear:
		return Window(s), nil
	}
	return "", fmt.Errorf("invalid window %q", s)
}

// Duration returns the fixed width of the window. Buckets are not
// calendar-aware: a month is 28 days and a year 364.
func (w Window) Duration() time.Duration {
	switch w {
	case WindowDay:
		return 24 * time.Hour
	case WindowMonth:
		return 28 * 24 * time.Hour
	case WindowYear:
		return 364 * 24 * time.Hour
	default:
		return 7 * 24 * time.Hour
	}
}
