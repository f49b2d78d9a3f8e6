// Package clock is the single seam for wall-clock reads, so decay math and
// "today" boundaries can be driven deterministically in tests.
package clock

import "time"

// DateLayout is the calendar-day key format used for plan dates.
const DateLayout = "2006-01-02"

// Clock provides the current time and the current calendar day.
type Clock interface {
	Now() time.Time

	// Today returns the current calendar day in the clock's locale,
	// formatted as DateLayout.
	Today() string
}

// System is a Clock backed by time.Now.
type System struct{}

func (System) Now() time.Time { return time.Now() }

func (System) Today() string { return time.Now().Format(DateLayout) }

// Fixed is a Clock pinned to a settable instant, for tests.
type Fixed struct {
	Current time.Time
}

// NewFixed returns a Fixed clock starting at t.
func NewFixed(t time.Time) *Fixed {
	return &Fixed{Current: t}
}

func (f *Fixed) Now() time.Time { return f.Current }

func (f *Fixed) Today() string { return f.Current.Format(DateLayout) }

// Advance moves the fixed clock forward by d.
func (f *Fixed) Advance(d time.Duration) {
	f.Current = f.Current.Add(d)
}
