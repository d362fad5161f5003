package tardiness

import (
	"testing"
	"time"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func newTestDetector(t *testing.T, at string) *Detector {
	t.Helper()
	d, err := New("Europe/Moscow", "09:00", "14:00")
	if err != nil {
		t.Fatal(err)
	}
	loc, _ := time.LoadLocation("Europe/Moscow")
	now, err := time.ParseInLocation("2006-01-02 15:04", at, loc)
	if err != nil {
		t.Fatal(err)
	}
	return d.WithClock(fixedClock{now})
}

func TestFiresInsideWindow(t *testing.T) {
	d := newTestDetector(t, "2024-03-15 09:30")
	a := d.Detect("Иванов Иван", "2024-03-15", "09:00")
	if a == nil {
		t.Fatal("expected an alert for a 09:30 check-in")
	}
	if a.ActualTime != "09:30" || a.StatedTime != "09:00" || a.SelectedDate != "2024-03-15" {
		t.Fatalf("unexpected payload: %+v", a)
	}
}

func TestQuietOnTimeAndAtCutoff(t *testing.T) {
	for _, at := range []string{"2024-03-15 08:59", "2024-03-15 09:00"} {
		if a := newTestDetector(t, at).Detect("x", "2024-03-15", "09:00"); a != nil {
			t.Errorf("at %s: unexpected alert %+v (cutoff is strict)", at, a)
		}
	}
}

func TestQuietOutsideUpperBound(t *testing.T) {
	for _, at := range []string{"2024-03-15 14:00", "2024-03-15 22:15"} {
		if a := newTestDetector(t, at).Detect("x", "2024-03-15", "09:00"); a != nil {
			t.Errorf("at %s: unexpected alert %+v", at, a)
		}
	}
}

func TestBackdatedNeverFires(t *testing.T) {
	d := newTestDetector(t, "2024-03-15 10:00")
	if a := d.Detect("x", "2024-03-14", "09:00"); a != nil {
		t.Fatalf("backdated punch fired an alert: %+v", a)
	}
	if a := d.Detect("x", "2024-03-16", "09:00"); a != nil {
		t.Fatalf("future-dated punch fired an alert: %+v", a)
	}
}

func TestDateComparedInConfiguredZone(t *testing.T) {
	// 01:30 Moscow on the 16th is still the 15th in UTC; the detector
	// must use the configured zone, not UTC.
	d := newTestDetector(t, "2024-03-16 01:30")
	if a := d.Detect("x", "2024-03-15", "22:00"); a != nil {
		t.Fatalf("previous-day punch fired: %+v", a)
	}
}
