// Package tardiness derives a late-arrival signal from a committed
// check-in. It looks at wall-clock time, not the stated punch time: the
// point is "this person is checking in late right now", so backdated and
// future-dated punches never fire it.
package tardiness

import (
	"time"

	"tabel-backend/internal/timeclock"
)

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Alert is the payload handed to the external notification collaborator.
type Alert struct {
	FullName     string `json:"full_name"`
	SelectedDate string `json:"selected_date"`
	ActualTime   string `json:"actual_time"` // wall clock at commit
	StatedTime   string `json:"stated_time"` // what the user typed
}

// Notifier delivers alerts out of band (group chat, admin broadcast).
type Notifier interface {
	Notify(Alert) error
}

type Detector struct {
	loc    *time.Location
	cutoff timeclock.Clock
	until  timeclock.Clock
	clock  Clock
}

// New builds a detector for one configured zone and late window. "Late"
// means strictly after cutoff but before until; the upper bound keeps a
// mid-afternoon check-in from producing morning-tardiness noise.
func New(tz, cutoff, until string) (*Detector, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, err
	}
	lo, err := timeclock.Parse(cutoff)
	if err != nil {
		return nil, err
	}
	hi, err := timeclock.Parse(until)
	if err != nil {
		return nil, err
	}
	return &Detector{loc: loc, cutoff: lo, until: hi, clock: realClock{}}, nil
}

// WithClock replaces the wall clock. Tests only.
func (d *Detector) WithClock(c Clock) *Detector {
	d.clock = c
	return d
}

// Detect returns the alert for a late same-day check-in, or nil. It never
// fails: an unparsable input simply yields no alert.
func (d *Detector) Detect(fullName, selectedDate, statedTime string) *Alert {
	now := d.clock.Now().In(d.loc)
	if selectedDate != now.Format("2006-01-02") {
		return nil
	}
	actual := timeclock.Clock(now.Hour()*60 + now.Minute())
	if !actual.After(d.cutoff) || !actual.Before(d.until) {
		return nil
	}
	return &Alert{
		FullName:     fullName,
		SelectedDate: selectedDate,
		ActualTime:   actual.String(),
		StatedTime:   statedTime,
	}
}
