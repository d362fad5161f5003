package attendance

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	platformdb "tabel-backend/internal/platform/db"
)

// ===== Error model =====

type Code string

const (
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeConflict        Code = "CONFLICT"
	CodeInternal        Code = "INTERNAL"
)

type APIError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string      { return fmt.Sprintf("%s: %s", e.Code, e.Message) }
func ErrInvalid(msg string) *APIError  { return &APIError{Code: CodeInvalidArgument, Message: msg} }
func ErrNotFound(msg string) *APIError { return &APIError{Code: CodeNotFound, Message: msg} }
func ErrInternal(msg string) *APIError { return &APIError{Code: CodeInternal, Message: msg} }

// ErrNoOpenShift: a check-out found no row for the selected date and no
// still-open row for the previous day.
var ErrNoOpenShift = ErrNotFound("no open shift")

func ToHTTPStatus(err error) int {
	var api *APIError
	if errors.As(err, &api) {
		switch api.Code {
		case CodeInvalidArgument:
			return 400
		case CodeNotFound:
			return 404
		case CodeConflict:
			return 409
		default:
			return 500
		}
	}
	return 500
}

// ===== Service =====

type Service struct {
	db    *sql.DB
	store *Store
}

func NewService(db *sql.DB) *Service {
	return &Service{db: db, store: NewStore(db)}
}

func (s *Service) Profile(ctx context.Context, userID int64) (*Profile, error) {
	return s.store.GetProfile(ctx, userID)
}

// RegisterProfile upserts the identity row. The minimum-length rule lives
// in the dialog; here only emptiness is rejected.
func (s *Service) RegisterProfile(ctx context.Context, userID int64, fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return ErrInvalid("full name is required")
	}
	return s.store.UpsertProfile(ctx, userID, fullName)
}

// CheckIn commits a check-in punch for the selected date, snapshotting the
// profile name at commit time. Returns whether the row was created or an
// existing one overwritten.
func (s *Service) CheckIn(ctx context.Context, userID int64, date, deptCode, clock string) (CheckInStatus, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return "", ErrInvalid("date must be YYYY-MM-DD")
	}
	p, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		return "", err
	}
	if p == nil {
		return "", ErrNotFound("user is not registered")
	}

	created, err := s.store.UpsertCheckIn(ctx, userID, date, deptCode, p.FullName, clock)
	if err != nil {
		return "", err
	}
	if created {
		return CheckInCreated, nil
	}
	return CheckInUpdated, nil
}

// checkOutStore is the slice of Store the check-out resolution needs,
// split out so the fallback rule can be exercised without a database.
type checkOutStore interface {
	Exists(ctx context.Context, userID int64, date string) (bool, error)
	SetCheckOut(ctx context.Context, userID int64, date, clock string) (int64, error)
	SetCheckOutIfOpen(ctx context.Context, userID int64, date, clock string) (int64, error)
}

// resolveCheckOut applies the same-day-then-previous-day rule. The
// same-day branch keys on row existence, not on the UPDATE's
// RowsAffected: the mysql driver counts changed rows, so re-submitting
// a check-out with the already-stored time would otherwise look like
// "no match" and leak into the previous-day fallback. The fallback
// branch may trust RowsAffected because it only ever flips check_out
// from NULL, which is always a change.
func resolveCheckOut(ctx context.Context, st checkOutStore, userID int64, date, prev, clock string) (string, error) {
	ok, err := st.Exists(ctx, userID, date)
	if err != nil {
		return "", err
	}
	if ok {
		if _, err := st.SetCheckOut(ctx, userID, date, clock); err != nil {
			return "", err
		}
		return date, nil
	}
	n, err := st.SetCheckOutIfOpen(ctx, userID, prev, clock)
	if err != nil {
		return "", err
	}
	if n > 0 {
		return prev, nil
	}
	return "", ErrNoOpenShift
}

// CheckOut resolves the punch against the selected date first; when no row
// matches it falls back to the previous calendar day, but only onto a row
// whose check_out is still unset. Both steps run in one transaction so a
// concurrent punch cannot close two rows. Returns the date actually closed.
func (s *Service) CheckOut(ctx context.Context, userID int64, date, clock string) (string, error) {
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", ErrInvalid("date must be YYYY-MM-DD")
	}
	prev := day.AddDate(0, 0, -1).Format(DateLayout)

	closed := ""
	err = platformdb.RunInTx(ctx, s.db, nil, func(ctx context.Context, tx platformdb.DBTX) error {
		var err error
		closed, err = resolveCheckOut(ctx, NewStore(tx), userID, date, prev, clock)
		return err
	})
	if err != nil {
		return "", err
	}
	return closed, nil
}

func (s *Service) ClearRecords(ctx context.Context) error {
	if err := s.store.ClearAll(ctx); err != nil {
		return ErrInternal("failed to clear records")
	}
	return nil
}

// Records takes a read-only snapshot for the compiler. In-flight punches
// may or may not be included; the report is not a transactional ledger.
func (s *Service) Records(ctx context.Context) ([]Record, error) {
	var out []Record
	err := platformdb.ReadOnly(ctx, s.db, func(ctx context.Context, tx platformdb.DBTX) error {
		var err error
		out, err = NewStore(tx).AllRecords(ctx)
		return err
	})
	if err != nil {
		return nil, ErrInternal("failed to read records snapshot")
	}
	return out, nil
}
