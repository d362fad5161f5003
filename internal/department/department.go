// Package department holds the static department directory: raw codes as
// stored on records, and the display labels shown on keyboards and in the
// timesheet. Both lookup directions are built once at init.
package department

const (
	Rescue  = "rescue"
	Lockers = "lockers"
	Admin   = "admin"
	Tech    = "tech"
)

var byCode = map[string]string{
	Rescue:  "🆘 Спасатели",
	Lockers: "🔐 Локеры",
	Admin:   "👨‍💻 Админ.",
	Tech:    "🔧 Тех. отдел",
}

var byLabel = reverse(byCode)

// codes in keyboard order
var ordered = []string{Rescue, Lockers, Admin, Tech}

func reverse(m map[string]string) map[string]string {
	r := make(map[string]string, len(m))
	for k, v := range m {
		r[v] = k
	}
	return r
}

// Label returns the display label for a raw code. Unknown codes pass
// through unchanged so a new code never breaks report generation.
func Label(code string) string {
	if l, ok := byCode[code]; ok {
		return l
	}
	return code
}

// FromLabel resolves a display label back to its code; ok is false for any
// text that is not exactly one of the labels.
func FromLabel(label string) (code string, ok bool) {
	code, ok = byLabel[label]
	return code, ok
}

// Labels returns the display labels in keyboard order.
func Labels() []string {
	out := make([]string, 0, len(ordered))
	for _, c := range ordered {
		out = append(out, byCode[c])
	}
	return out
}
