package timesheet

import (
	"reflect"
	"testing"

	"tabel-backend/internal/attendance"
)

func rec(name, date, dept, in, out string) attendance.Record {
	return attendance.Record{
		FullName:   name,
		Date:       date,
		Department: dept,
		CheckIn:    in,
		CheckOut:   out,
	}
}

func TestWorkedHours(t *testing.T) {
	cases := []struct {
		name    string
		in, out string
		want    float64
	}{
		{"regular day", "09:00", "18:00", 8.00},
		{"night shift crosses midnight", "22:00", "06:00", 7.00},
		{"lunch floor never negative", "09:00", "09:30", 0.00},
		{"exactly lunch length", "09:00", "10:00", 0.00},
		{"open shift", "09:00", "", 0.00},
		{"never checked in", "", "18:00", 0.00},
		{"garbage check-in", "9am", "18:00", 0.00},
		{"fractional", "08:15", "16:45", 7.50},
	}
	for _, tc := range cases {
		if got := workedHours(tc.in, tc.out); got != tc.want {
			t.Errorf("%s: workedHours(%q, %q) = %v, want %v", tc.name, tc.in, tc.out, got, tc.want)
		}
	}
}

func TestCompileEmptyIsNoReport(t *testing.T) {
	if m := Compile(nil); m != nil {
		t.Fatalf("empty record set must yield no matrix, got %+v", m)
	}
}

func TestCompileDropsUnparsableDatesOnly(t *testing.T) {
	m := Compile([]attendance.Record{
		rec("A", "2024-03-15", "tech", "09:00", "18:00"),
		rec("B", "not-a-date", "tech", "09:00", "18:00"),
	})
	if m == nil || len(m.Rows) != 1 || m.Rows[0].FullName != "A" {
		t.Fatalf("want only row A, got %+v", m)
	}
	// All rows unparsable degenerates to "no report".
	if m := Compile([]attendance.Record{rec("B", "nope", "tech", "09:00", "18:00")}); m != nil {
		t.Fatalf("want nil matrix, got %+v", m)
	}
}

func TestCompileDayFirstFallback(t *testing.T) {
	m := Compile([]attendance.Record{
		rec("A", "15/03/2024", "tech", "09:00", "18:00"),
	})
	if m == nil || len(m.Days) != 1 || m.Days[0] != 15 {
		t.Fatalf("day-first date not recovered: %+v", m)
	}
	if m.Rows[0].HoursOn(15) != 8.00 {
		t.Fatalf("want 8h on day 15, got %v", m.Rows[0].HoursOn(15))
	}
}

func TestCompileDepartmentLabels(t *testing.T) {
	m := Compile([]attendance.Record{
		rec("A", "2024-03-15", "tech", "09:00", "18:00"),
		rec("B", "2024-03-15", "mystery", "09:00", "18:00"),
	})
	var depts []string
	for _, r := range m.Rows {
		depts = append(depts, r.Department)
	}
	found := map[string]bool{}
	for _, d := range depts {
		found[d] = true
	}
	if !found["🔧 Тех. отдел"] {
		t.Fatalf("known code not mapped to label: %v", depts)
	}
	if !found["mystery"] {
		t.Fatalf("unknown code must pass through unchanged: %v", depts)
	}
}

func TestCompilePivotAndTotals(t *testing.T) {
	m := Compile([]attendance.Record{
		rec("Иванов", "2024-03-15", "tech", "09:00", "18:00"), // 8h
		rec("Иванов", "2024-03-16", "tech", "22:00", "06:00"), // 7h night shift
		rec("Петров", "2024-03-15", "tech", "09:00", "14:00"), // 4h
	})
	if len(m.Days) != 2 || m.Days[0] != 15 || m.Days[1] != 16 {
		t.Fatalf("days = %v", m.Days)
	}
	if len(m.Rows) != 2 {
		t.Fatalf("rows = %+v", m.Rows)
	}
	var ivanov, petrov Row
	for _, r := range m.Rows {
		switch r.FullName {
		case "Иванов":
			ivanov = r
		case "Петров":
			petrov = r
		}
	}
	if ivanov.HoursOn(15) != 8 || ivanov.HoursOn(16) != 7 || ivanov.Total != 15 {
		t.Fatalf("ivanov: %+v", ivanov)
	}
	// Day 16 missing for Петров reads as zero.
	if petrov.HoursOn(16) != 0 || petrov.Total != 4 {
		t.Fatalf("petrov: %+v", petrov)
	}
}

func TestCompileSumsDuplicateRows(t *testing.T) {
	// Two rows for the same group and day (defensive, duplicated data).
	m := Compile([]attendance.Record{
		rec("A", "2024-03-15", "tech", "09:00", "13:00"), // 3h
		rec("A", "15.03.2024", "tech", "14:00", "18:00"), // 3h, same day via day-first dots
	})
	if len(m.Rows) != 1 || m.Rows[0].HoursOn(15) != 6 {
		t.Fatalf("duplicates not summed: %+v", m)
	}
}

func TestCompileDeterministic(t *testing.T) {
	records := []attendance.Record{
		rec("Яшин", "2024-03-15", "rescue", "09:00", "18:00"),
		rec("Иванов", "2024-03-15", "tech", "10:00", "19:00"),
		rec("Антонов", "2024-03-16", "admin", "08:00", "17:00"),
		rec("Иванов", "2024-03-14", "tech", "22:00", "06:00"),
	}
	a, b := Compile(records), Compile(records)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same input, different matrices:\n%+v\n%+v", a, b)
	}
	// Map iteration order would randomize an unsorted Rows slice; equal
	// slices across compiles means the ordering is real.
	shuffled := []attendance.Record{records[3], records[1], records[0], records[2]}
	c := Compile(shuffled)
	if !reflect.DeepEqual(a, c) {
		t.Fatalf("input order leaked into the matrix:\n%+v\n%+v", a, c)
	}
}
