package dialog

import "context"

// State is the explicit dialog position. Terminal outcomes (committed,
// cancelled) are not states; the session is simply discarded.
type State int

const (
	StateIdle State = iota
	StateAwaitingName
	StateSelectDate
	StateDepartment
	StateTimeInput
)

func (s State) String() string {
	switch s {
	case StateAwaitingName:
		return "awaiting_name"
	case StateSelectDate:
		return "select_date"
	case StateDepartment:
		return "department"
	case StateTimeInput:
		return "time_input"
	default:
		return "idle"
	}
}

// Action distinguishes the two punch flows.
type Action string

const (
	ActionCheckIn  Action = "in"
	ActionCheckOut Action = "out"
)

type EventKind string

const (
	// Entry events: valid from any state, always reset the session.
	EvStart    EventKind = "start"
	EvCheckIn  EventKind = "check_in"
	EvCheckOut EventKind = "check_out"
	EvCancel   EventKind = "cancel"
	EvWhoAmI   EventKind = "who_am_i"

	// In-flow events, dispatched through the transition table.
	EvCalendar EventKind = "calendar"
	EvText     EventKind = "text"
)

// Event is one inbound interaction as the messaging gateway reports it.
// Text carries free-form input; Date carries a terminal calendar pick
// ("YYYY-MM-DD") and stays empty for partial picker navigation.
type Event struct {
	Kind EventKind
	Text string
	Date string
}

// effect computes the next state and reply for one (state, event) cell.
// It must not mutate the session until any storage call has succeeded, so
// a failed commit leaves the user on the same step for a retry.
type effect func(ctx context.Context, e *Engine, userID int64, s *Session, ev Event) (State, Reply, error)

// transitions is the immutable (state, event) dispatch table. Cells absent
// here mean "input not understood in this state": the engine re-prompts
// without touching the session.
var transitions = map[State]map[EventKind]effect{
	StateAwaitingName: {
		EvText: onRegistrationName,
	},
	StateSelectDate: {
		EvCalendar: onCalendar,
	},
	StateDepartment: {
		EvText: onDepartment,
	},
	StateTimeInput: {
		EvText: onTimeInput,
	},
}
