package timesheet

import (
	"math"
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"tabel-backend/internal/attendance"
	"tabel-backend/internal/department"
	"tabel-backend/internal/timeclock"
)

// LunchHours is the flat deduction applied to every closed shift.
const LunchHours = 1.0

// Date layouts accepted on stored records. ISO is what the dialog writes;
// the day-first forms recover rows imported from older spreadsheets.
var dateLayouts = []string{
	attendance.DateLayout, // 2006-01-02, tried first
	"02/01/2006",
	"02.01.2006",
}

// Row is one (department, employee) line of the pivot. Hours only holds
// days that had records; missing days read as 0 through HoursOn.
type Row struct {
	Department string
	FullName   string
	Hours      map[int]float64
	Total      float64
}

func (r Row) HoursOn(day int) float64 { return r.Hours[day] }

// Matrix is the department × person × day-of-month worked-hours pivot.
type Matrix struct {
	Days []int // sorted distinct days-of-month present in the data
	Rows []Row // sorted by (department, name)
}

// rowResult is the per-record outcome: either a usable (day, hours) pair
// or a dropped row. Hour anomalies zero the contribution but keep the
// row; a date that parses with no layout drops it.
type rowResult struct {
	day   int
	hours float64
	ok    bool
}

func evaluate(rec attendance.Record) rowResult {
	day, ok := parseDay(rec.Date)
	if !ok {
		return rowResult{}
	}
	return rowResult{day: day, hours: workedHours(rec.CheckIn, rec.CheckOut), ok: true}
}

func parseDay(date string) (int, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Day(), true
		}
	}
	return 0, false
}

// workedHours computes the net duration of one shift. An open shift (either
// punch absent) and any unparsable punch contribute nothing; a check-out
// earlier than the check-in is taken to be on the next day.
func workedHours(checkIn, checkOut string) float64 {
	if checkIn == "" || checkOut == "" {
		return 0
	}
	in, err := timeclock.Parse(checkIn)
	if err != nil {
		return 0
	}
	out, err := timeclock.Parse(checkOut)
	if err != nil {
		return 0
	}

	minutes := int(out) - int(in)
	if minutes < 0 {
		minutes += 24 * 60 // night shift rolled past midnight
	}
	net := float64(minutes)/60 - LunchHours
	if net < 0 {
		net = 0
	}
	return math.Round(net*100) / 100
}

// Compile turns the raw record snapshot into the aggregated matrix.
// Returns nil when there is nothing to report; that is a valid outcome,
// not an error. Identical input always yields an identical matrix.
func Compile(records []attendance.Record) *Matrix {
	if len(records) == 0 {
		return nil
	}

	type key struct{ dept, name string }
	groups := make(map[key]map[int]float64)
	daySet := make(map[int]struct{})

	for _, rec := range records {
		res := evaluate(rec)
		if !res.ok {
			continue
		}
		k := key{dept: department.Label(rec.Department), name: rec.FullName}
		if groups[k] == nil {
			groups[k] = make(map[int]float64)
		}
		// += handles duplicate rows sharing a group and day
		groups[k][res.day] += res.hours
		daySet[res.day] = struct{}{}
	}
	if len(groups) == 0 {
		return nil
	}

	m := &Matrix{
		Days: make([]int, 0, len(daySet)),
		Rows: make([]Row, 0, len(groups)),
	}
	for d := range daySet {
		m.Days = append(m.Days, d)
	}
	sort.Ints(m.Days)

	for k, hours := range groups {
		row := Row{Department: k.dept, FullName: k.name, Hours: hours}
		for _, h := range hours {
			row.Total += h
		}
		row.Total = math.Round(row.Total*100) / 100
		m.Rows = append(m.Rows, row)
	}

	coll := collate.New(language.Russian)
	sort.Slice(m.Rows, func(i, j int) bool {
		if c := coll.CompareString(m.Rows[i].Department, m.Rows[j].Department); c != 0 {
			return c < 0
		}
		return coll.CompareString(m.Rows[i].FullName, m.Rows[j].FullName) < 0
	})
	return m
}
