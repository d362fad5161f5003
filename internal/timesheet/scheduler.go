package timesheet

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"time"

	"tabel-backend/internal/timeclock"
)

// Deliverer hands a finished artifact to the external sender.
type Deliverer interface {
	Deliver(*Artifact) error
}

// SpoolDeliverer drops artifacts into a directory the sending process
// watches.
type SpoolDeliverer struct{ Dir string }

func (d SpoolDeliverer) Deliver(a *Artifact) error {
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(d.Dir, a.Filename), a.Data, 0o644)
}

// Scheduler runs the report job once a week at a fixed local time
// (default cadence of the original deployment: Sunday 23:00).
type Scheduler struct {
	svc     *Service
	deliver Deliverer
	weekday time.Weekday
	at      timeclock.Clock
	loc     *time.Location
}

func NewScheduler(svc *Service, deliver Deliverer, weekday time.Weekday, at string, loc *time.Location) (*Scheduler, error) {
	c, err := timeclock.Parse(at)
	if err != nil {
		return nil, err
	}
	return &Scheduler{svc: svc, deliver: deliver, weekday: weekday, at: c, loc: loc}, nil
}

// Run blocks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	for {
		next := s.nextRun(time.Now().In(s.loc))
		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
		s.runOnce(ctx)
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	art, err := s.svc.Generate(ctx)
	if errors.Is(err, ErrNoData) {
		log.Println("[INFO] weekly timesheet: no data, skipping")
		return
	}
	if err != nil {
		log.Printf("[ERROR] weekly timesheet: %v", err)
		return
	}
	if err := s.deliver.Deliver(art); err != nil {
		log.Printf("[ERROR] weekly timesheet delivery: %v", err)
		return
	}
	log.Printf("[INFO] weekly timesheet delivered: %s (%s)", art.Filename, art.ID)
}

func (s *Scheduler) nextRun(now time.Time) time.Time {
	day := now.AddDate(0, 0, (int(s.weekday)-int(now.Weekday())+7)%7)
	next := time.Date(day.Year(), day.Month(), day.Day(), s.at.Hour(), s.at.Minute(), 0, 0, s.loc)
	if !next.After(now) {
		next = next.AddDate(0, 0, 7)
	}
	return next
}
