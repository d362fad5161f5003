package attendance

import (
	"database/sql"
	"time"
)

// DB row for scanning (nullable punch columns).
type recordRow struct {
	ID         uint64
	UserID     int64
	FullName   string
	Date       string
	Department string
	CheckIn    sql.NullString
	CheckOut   sql.NullString
	CreatedAt  time.Time
}

// Record is the model passed between Store, Service and the compiler.
// CheckIn/CheckOut are "HH:MM" or empty when the punch is absent.
type Record struct {
	ID         uint64
	UserID     int64
	FullName   string
	Date       string
	Department string
	CheckIn    string
	CheckOut   string
	CreatedAt  time.Time
}

// Profile is the registered identity a punch snapshot is taken from.
type Profile struct {
	UserID   int64
	FullName string
}

func (r recordRow) toModel() Record {
	return Record{
		ID:         r.ID,
		UserID:     r.UserID,
		FullName:   r.FullName,
		Date:       r.Date,
		Department: r.Department,
		CheckIn:    r.CheckIn.String,
		CheckOut:   r.CheckOut.String,
		CreatedAt:  r.CreatedAt.UTC(),
	}
}

func (r Record) toDTO() RecordResponse {
	return RecordResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		FullName:   r.FullName,
		Date:       r.Date,
		Department: r.Department,
		CheckIn:    emptyToNil(r.CheckIn),
		CheckOut:   emptyToNil(r.CheckOut),
		CreatedAt:  r.CreatedAt,
	}
}

func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
