package attendance

import (
	"context"
	"database/sql"
	"errors"

	platformdb "tabel-backend/internal/platform/db"
)

type Store struct{ db platformdb.DBTX }

func NewStore(db platformdb.DBTX) *Store { return &Store{db: db} }

// GetProfile returns nil when the user has never registered.
func (s *Store) GetProfile(ctx context.Context, userID int64) (*Profile, error) {
	var p Profile
	err := s.db.QueryRowContext(ctx,
		`SELECT user_id, real_name FROM users WHERE user_id = ?`, userID,
	).Scan(&p.UserID, &p.FullName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpsertProfile inserts or replaces the stored name for the user.
func (s *Store) UpsertProfile(ctx context.Context, userID int64, fullName string) error {
	_, err := s.db.ExecContext(ctx, `
	INSERT INTO users (user_id, real_name)
	VALUES (?, ?)
	ON DUPLICATE KEY UPDATE real_name = VALUES(real_name)`,
		userID, fullName)
	return err
}

// UpsertCheckIn writes the check-in punch for (user, date) as one atomic
// statement against the UNIQUE(user_id, date) key. A repeated check-in for
// the same day overwrites check_in, department and the name snapshot on
// the existing row.
//
// RowsAffected: 1 = inserted, 2 = existing row updated.
func (s *Store) UpsertCheckIn(ctx context.Context, userID int64, date, deptCode, fullName, clock string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
	INSERT INTO records (user_id, full_name, date, department, check_in)
	VALUES (?, ?, ?, ?, ?)
	ON DUPLICATE KEY UPDATE
	check_in   = VALUES(check_in),
	department = VALUES(department),
	full_name  = VALUES(full_name)`,
		userID, fullName, date, deptCode, clock)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff == 1, nil
}

// Exists reports whether a record row exists for (user, date).
func (s *Store) Exists(ctx context.Context, userID int64, date string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `
	SELECT 1 FROM records
	WHERE user_id = ? AND date = ? LIMIT 1`,
		userID, date,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// SetCheckOut closes (user, date) unconditionally. Returns RowsAffected,
// which with this driver counts *changed* rows, not matched ones — a
// no-op update of an identical value reports 0. Callers deciding "did
// the day match" must use Exists, not this count.
func (s *Store) SetCheckOut(ctx context.Context, userID int64, date, clock string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
	UPDATE records SET check_out = ?
	WHERE user_id = ? AND date = ?`,
		clock, userID, date)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// SetCheckOutIfOpen closes (user, date) only while its check_out is still
// unset. Used for the previous-day fallback so an already-closed shift is
// never overwritten.
func (s *Store) SetCheckOutIfOpen(ctx context.Context, userID int64, date, clock string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
	UPDATE records SET check_out = ?
	WHERE user_id = ? AND date = ? AND check_out IS NULL`,
		clock, userID, date)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ClearAll wipes records only; profiles survive an administrative reset.
func (s *Store) ClearAll(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM records`)
	return err
}

// AllRecords returns every record, oldest first, for the compiler snapshot.
func (s *Store) AllRecords(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT id, user_id, full_name, date, department, check_in, check_out, created_at
	FROM records
	ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r recordRow
		if err := rows.Scan(&r.ID, &r.UserID, &r.FullName, &r.Date, &r.Department, &r.CheckIn, &r.CheckOut, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r.toModel())
	}
	return out, rows.Err()
}
