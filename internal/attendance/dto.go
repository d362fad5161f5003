package attendance

import "time"

const DateLayout = "2006-01-02"

// CheckInStatus distinguishes a fresh record from an overwrite of the same
// (user, date) row. Informational only, the confirmation message differs.
type CheckInStatus string

const (
	CheckInCreated CheckInStatus = "created"
	CheckInUpdated CheckInStatus = "updated"
)

type RecordResponse struct {
	ID         uint64    `json:"id"`
	UserID     int64     `json:"user_id"`
	FullName   string    `json:"full_name"`
	Date       string    `json:"date"` // YYYY-MM-DD
	Department string    `json:"department"`
	CheckIn    *string   `json:"check_in,omitempty"`
	CheckOut   *string   `json:"check_out,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type ListResponse struct {
	Records []RecordResponse `json:"records"`
	Total   int              `json:"total"`
}
