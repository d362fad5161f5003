package attendance

import (
	"context"
	"errors"
	"testing"
)

// fakeCheckOutStore mirrors the mysql driver's RowsAffected contract:
// an UPDATE that writes the value already stored counts zero rows.
type fakeCheckOutStore struct {
	// checkOut[date] holds the stored check_out; "" means still open.
	checkOut map[string]string
}

func newFakeCheckOutStore() *fakeCheckOutStore {
	return &fakeCheckOutStore{checkOut: map[string]string{}}
}

func (f *fakeCheckOutStore) Exists(_ context.Context, _ int64, date string) (bool, error) {
	_, ok := f.checkOut[date]
	return ok, nil
}

func (f *fakeCheckOutStore) SetCheckOut(_ context.Context, _ int64, date, clock string) (int64, error) {
	prev, ok := f.checkOut[date]
	if !ok {
		return 0, nil
	}
	if prev == clock {
		return 0, nil
	}
	f.checkOut[date] = clock
	return 1, nil
}

func (f *fakeCheckOutStore) SetCheckOutIfOpen(_ context.Context, _ int64, date, clock string) (int64, error) {
	prev, ok := f.checkOut[date]
	if !ok || prev != "" {
		return 0, nil
	}
	f.checkOut[date] = clock
	return 1, nil
}

const uid = int64(42)

func TestResolveCheckOutSameDay(t *testing.T) {
	st := newFakeCheckOutStore()
	st.checkOut["2024-03-15"] = ""

	closed, err := resolveCheckOut(context.Background(), st, uid, "2024-03-15", "2024-03-14", "18:00")
	if err != nil {
		t.Fatalf("resolveCheckOut: %v", err)
	}
	if closed != "2024-03-15" {
		t.Fatalf("closed = %q, want 2024-03-15", closed)
	}
	if st.checkOut["2024-03-15"] != "18:00" {
		t.Fatalf("check_out = %q, want 18:00", st.checkOut["2024-03-15"])
	}
}

// Re-submitting the stored time must still count as a same-day match.
// The driver reports zero changed rows for that UPDATE, so deciding on
// RowsAffected would spill the punch onto the previous day's open row.
func TestResolveCheckOutRepeatSameTime(t *testing.T) {
	st := newFakeCheckOutStore()
	st.checkOut["2024-03-15"] = "18:00"
	st.checkOut["2024-03-14"] = ""

	closed, err := resolveCheckOut(context.Background(), st, uid, "2024-03-15", "2024-03-14", "18:00")
	if err != nil {
		t.Fatalf("resolveCheckOut: %v", err)
	}
	if closed != "2024-03-15" {
		t.Fatalf("closed = %q, want 2024-03-15", closed)
	}
	if st.checkOut["2024-03-14"] != "" {
		t.Fatalf("previous day's shift closed to %q, want still open", st.checkOut["2024-03-14"])
	}
}

func TestResolveCheckOutPreviousDayFallback(t *testing.T) {
	st := newFakeCheckOutStore()
	st.checkOut["2024-03-14"] = ""

	closed, err := resolveCheckOut(context.Background(), st, uid, "2024-03-15", "2024-03-14", "06:00")
	if err != nil {
		t.Fatalf("resolveCheckOut: %v", err)
	}
	if closed != "2024-03-14" {
		t.Fatalf("closed = %q, want 2024-03-14", closed)
	}
	if st.checkOut["2024-03-14"] != "06:00" {
		t.Fatalf("check_out = %q, want 06:00", st.checkOut["2024-03-14"])
	}
}

func TestResolveCheckOutPreviousDayAlreadyClosed(t *testing.T) {
	st := newFakeCheckOutStore()
	st.checkOut["2024-03-14"] = "18:00"

	_, err := resolveCheckOut(context.Background(), st, uid, "2024-03-15", "2024-03-14", "06:00")
	if !errors.Is(err, ErrNoOpenShift) {
		t.Fatalf("err = %v, want ErrNoOpenShift", err)
	}
	if st.checkOut["2024-03-14"] != "18:00" {
		t.Fatalf("closed shift overwritten to %q", st.checkOut["2024-03-14"])
	}
}

func TestResolveCheckOutNoRows(t *testing.T) {
	st := newFakeCheckOutStore()

	_, err := resolveCheckOut(context.Background(), st, uid, "2024-03-15", "2024-03-14", "18:00")
	if !errors.Is(err, ErrNoOpenShift) {
		t.Fatalf("err = %v, want ErrNoOpenShift", err)
	}
}

func TestToHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrInvalid("bad"), 400},
		{ErrNoOpenShift, 404},
		{ErrInternal("failed to read records snapshot"), 500},
		{errors.New("plain"), 500},
	}
	for _, c := range cases {
		if got := ToHTTPStatus(c.err); got != c.want {
			t.Errorf("ToHTTPStatus(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}
