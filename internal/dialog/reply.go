package dialog

// Template identifies the message the gateway should render. The engine
// never formats user-facing text; it hands back an id plus the data the
// template needs.
type Template string

const (
	TplMainMenu           Template = "main_menu"
	TplAskName            Template = "ask_name"
	TplNameTooShort       Template = "name_too_short"
	TplRegistered         Template = "registered"
	TplNotRegistered      Template = "not_registered"
	TplWhoAmI             Template = "who_am_i"
	TplAskDate            Template = "ask_date"
	TplCalendarNav        Template = "calendar_nav"
	TplAskDepartment      Template = "ask_department"
	TplBadDepartment      Template = "bad_department"
	TplAskTime            Template = "ask_time"
	TplBadTime            Template = "bad_time"
	TplCheckInCreated     Template = "check_in_created"
	TplCheckInUpdated     Template = "check_in_updated"
	TplCheckOutClosed     Template = "check_out_closed"
	TplCheckOutClosedPrev Template = "check_out_closed_prev"
	TplNoOpenShift        Template = "no_open_shift"
	TplCancelled          Template = "cancelled"
	TplUnknown            Template = "unknown"
)

type Reply struct {
	Template Template `json:"template"`
	Action   Action   `json:"action,omitempty"`

	FullName   string `json:"full_name,omitempty"`
	Date       string `json:"date,omitempty"`
	Department string `json:"department,omitempty"` // display label
	Time       string `json:"time,omitempty"`
	ClosedDate string `json:"closed_date,omitempty"`

	// Calendar asks the gateway to render (or re-render) its date picker.
	Calendar bool `json:"calendar,omitempty"`
	// Departments carries keyboard labels alongside ask/bad department.
	Departments []string `json:"departments,omitempty"`
}

func reply(t Template) Reply { return Reply{Template: t} }
