// Package timeclock parses and compares the wall-clock values employees
// type into the dialog ("HH:MM", 24-hour, zero-padded). The same format is
// what gets stored on attendance records, so the timesheet compiler parses
// with it too.
package timeclock

import "fmt"

const Layout = "HH:MM"

// Clock is a time of day, stored as minutes since midnight (0..1439).
type Clock int

// Parse accepts exactly two zero-padded digit pairs separated by a colon,
// hours 00-23 and minutes 00-59. Anything else is rejected, including
// otherwise valid spellings like "9:00".
func Parse(text string) (Clock, error) {
	if len(text) != 5 || text[2] != ':' {
		return 0, fmt.Errorf("time must be %s, got %q", Layout, text)
	}
	h, ok1 := digits2(text[0], text[1])
	m, ok2 := digits2(text[3], text[4])
	if !ok1 || !ok2 || h > 23 || m > 59 {
		return 0, fmt.Errorf("time must be %s, got %q", Layout, text)
	}
	return Clock(h*60 + m), nil
}

// Valid reports whether text is an acceptable clock value.
func Valid(text string) bool {
	_, err := Parse(text)
	return err == nil
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// After reports whether c is strictly later in the day than other.
func (c Clock) After(other Clock) bool { return c > other }

// Before reports whether c is strictly earlier in the day than other.
func (c Clock) Before(other Clock) bool { return c < other }

func digits2(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}
