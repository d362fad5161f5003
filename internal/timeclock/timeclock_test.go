package timeclock

import "testing"

func TestParseAccepts(t *testing.T) {
	cases := []struct {
		in      string
		minutes int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"12:34", 754},
		{"22:00", 1320},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		c, err := Parse(tc.in)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", tc.in, err)
			continue
		}
		if int(c) != tc.minutes {
			t.Errorf("Parse(%q) = %d minutes, want %d", tc.in, c, tc.minutes)
		}
		if c.String() != tc.in {
			t.Errorf("Parse(%q).String() = %q", tc.in, c.String())
		}
	}
}

func TestParseRejects(t *testing.T) {
	bad := []string{
		"", "9:00", "24:00", "09:60", "09-00", "0900",
		"9:0", "099:00", " 09:00", "09:00 ", "ab:cd",
		"09:0a", "-1:00", "09:00:00",
	}
	for _, in := range bad {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q): want error, got none", in)
		}
		if Valid(in) {
			t.Errorf("Valid(%q) = true", in)
		}
	}
}

func TestOrdering(t *testing.T) {
	early, _ := Parse("08:59")
	late, _ := Parse("09:01")
	if !late.After(early) || late.Before(early) {
		t.Fatal("09:01 must come after 08:59")
	}
	if early.After(early) {
		t.Fatal("After must be strict")
	}
}
