package dialog

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"tabel-backend/internal/attendance"
	"tabel-backend/internal/department"
	"tabel-backend/internal/tardiness"
	"tabel-backend/internal/timeclock"
)

const minNameLength = 3

// Records is the narrow slice of the attendance service the dialogs
// consume. Implemented by *attendance.Service.
type Records interface {
	Profile(ctx context.Context, userID int64) (*attendance.Profile, error)
	RegisterProfile(ctx context.Context, userID int64, fullName string) error
	CheckIn(ctx context.Context, userID int64, date, deptCode, clock string) (attendance.CheckInStatus, error)
	CheckOut(ctx context.Context, userID int64, date, clock string) (string, error)
}

// LateDetector yields an alert for a late same-day check-in, or nil.
type LateDetector interface {
	Detect(fullName, selectedDate, statedTime string) *tardiness.Alert
}

// Engine drives the registration and punch dialogs. One instance serves
// all users; per-user state lives in the session map.
type Engine struct {
	records  Records
	detector LateDetector
	notifier tardiness.Notifier
	sessions *sessionMap
}

func NewEngine(records Records, detector LateDetector, notifier tardiness.Notifier) *Engine {
	return &Engine{
		records:  records,
		detector: detector,
		notifier: notifier,
		sessions: newSessionMap(),
	}
}

// Handle processes one inbound event. A returned error means storage was
// unreachable; the session is left exactly as it was so the user can
// repeat the same step.
func (e *Engine) Handle(ctx context.Context, userID int64, ev Event) (Reply, error) {
	// Entry events reset whatever a prior abandoned flow left behind.
	switch ev.Kind {
	case EvStart:
		return e.onStart(ctx, userID)
	case EvCheckIn:
		return e.enterPunch(ctx, userID, ActionCheckIn)
	case EvCheckOut:
		return e.enterPunch(ctx, userID, ActionCheckOut)
	case EvCancel:
		e.sessions.drop(userID)
		return reply(TplCancelled), nil
	case EvWhoAmI:
		return e.onWhoAmI(ctx, userID)
	}

	s := e.sessions.get(userID)
	fx, ok := transitions[s.State][ev.Kind]
	if !ok {
		return reply(TplUnknown), nil
	}
	next, rep, err := fx(ctx, e, userID, &s, ev)
	if err != nil {
		return Reply{}, err
	}
	s.State = next
	e.sessions.put(userID, s)
	return rep, nil
}

// /start: returning users go straight to the menu, new users into the
// one-step registration flow.
func (e *Engine) onStart(ctx context.Context, userID int64) (Reply, error) {
	p, err := e.records.Profile(ctx, userID)
	if err != nil {
		return Reply{}, err
	}
	if p != nil {
		e.sessions.drop(userID)
		return reply(TplMainMenu), nil
	}
	e.sessions.put(userID, Session{State: StateAwaitingName})
	return reply(TplAskName), nil
}

// Punch entry: refused without a profile, otherwise a fresh session
// pointed at the calendar.
func (e *Engine) enterPunch(ctx context.Context, userID int64, action Action) (Reply, error) {
	p, err := e.records.Profile(ctx, userID)
	if err != nil {
		return Reply{}, err
	}
	if p == nil {
		e.sessions.drop(userID)
		return reply(TplNotRegistered), nil
	}
	e.sessions.put(userID, Session{State: StateSelectDate, Action: action})
	return Reply{Template: TplAskDate, Action: action, Calendar: true}, nil
}

func (e *Engine) onWhoAmI(ctx context.Context, userID int64) (Reply, error) {
	p, err := e.records.Profile(ctx, userID)
	if err != nil {
		return Reply{}, err
	}
	if p == nil {
		return reply(TplNotRegistered), nil
	}
	return Reply{Template: TplWhoAmI, FullName: p.FullName}, nil
}

// ===== transition effects =====

func onRegistrationName(ctx context.Context, e *Engine, userID int64, s *Session, ev Event) (State, Reply, error) {
	name := strings.TrimSpace(ev.Text)
	if utf8.RuneCountInString(name) < minNameLength {
		return s.State, reply(TplNameTooShort), nil
	}
	if err := e.records.RegisterProfile(ctx, userID, name); err != nil {
		return s.State, Reply{}, err
	}
	return StateIdle, Reply{Template: TplRegistered, FullName: name}, nil
}

func onCalendar(ctx context.Context, e *Engine, userID int64, s *Session, ev Event) (State, Reply, error) {
	if ev.Date == "" {
		// Partial picker navigation (year/month step): not a failure,
		// just re-render and stay put.
		return s.State, Reply{Template: TplCalendarNav, Action: s.Action, Calendar: true}, nil
	}
	if _, err := time.Parse(attendance.DateLayout, ev.Date); err != nil {
		return s.State, Reply{Template: TplCalendarNav, Action: s.Action, Calendar: true}, nil
	}
	s.Date = ev.Date
	if s.Action == ActionCheckIn {
		return StateDepartment, Reply{Template: TplAskDepartment, Date: s.Date, Departments: department.Labels()}, nil
	}
	return StateTimeInput, Reply{Template: TplAskTime, Action: s.Action, Date: s.Date}, nil
}

func onDepartment(ctx context.Context, e *Engine, userID int64, s *Session, ev Event) (State, Reply, error) {
	code, ok := department.FromLabel(strings.TrimSpace(ev.Text))
	if !ok {
		return s.State, Reply{Template: TplBadDepartment, Departments: department.Labels()}, nil
	}
	s.Dept = code
	return StateTimeInput, Reply{Template: TplAskTime, Action: s.Action, Date: s.Date}, nil
}

func onTimeInput(ctx context.Context, e *Engine, userID int64, s *Session, ev Event) (State, Reply, error) {
	clock := strings.TrimSpace(ev.Text)
	if !timeclock.Valid(clock) {
		return s.State, reply(TplBadTime), nil
	}

	if s.Action == ActionCheckIn {
		return e.commitCheckIn(ctx, userID, s, clock)
	}
	return e.commitCheckOut(ctx, userID, s, clock)
}

func (e *Engine) commitCheckIn(ctx context.Context, userID int64, s *Session, clock string) (State, Reply, error) {
	p, err := e.records.Profile(ctx, userID)
	if err != nil {
		return s.State, Reply{}, err
	}
	if p == nil {
		// Profile vanished mid-flow (admin intervention); restart.
		return StateIdle, reply(TplNotRegistered), nil
	}

	// Evaluate tardiness against the wall clock at commit time; the
	// alert itself only goes out once the punch is durable.
	alert := e.detector.Detect(p.FullName, s.Date, clock)

	status, err := e.records.CheckIn(ctx, userID, s.Date, s.Dept, clock)
	if err != nil {
		return s.State, Reply{}, err
	}

	if alert != nil {
		// Side channel only. A broken notifier must not fail the punch.
		if err := e.notifier.Notify(*alert); err != nil {
			log.Printf("[WARN] late-arrival alert not delivered: %v", err)
		}
	}

	tpl := TplCheckInCreated
	if status == attendance.CheckInUpdated {
		tpl = TplCheckInUpdated
	}
	return StateIdle, Reply{
		Template:   tpl,
		Action:     s.Action,
		Date:       s.Date,
		Department: department.Label(s.Dept),
		Time:       clock,
	}, nil
}

func (e *Engine) commitCheckOut(ctx context.Context, userID int64, s *Session, clock string) (State, Reply, error) {
	closed, err := e.records.CheckOut(ctx, userID, s.Date, clock)
	if err != nil {
		if errors.Is(err, attendance.ErrNoOpenShift) {
			// Terminal for this conversation, not retried.
			return StateIdle, reply(TplNoOpenShift), nil
		}
		return s.State, Reply{}, err
	}

	tpl := TplCheckOutClosed
	if closed != s.Date {
		tpl = TplCheckOutClosedPrev
	}
	return StateIdle, Reply{
		Template:   tpl,
		Action:     s.Action,
		Date:       s.Date,
		ClosedDate: closed,
		Time:       clock,
	}, nil
}
