package timesheet

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"tabel-backend/internal/attendance"
)

// ErrNoData signals an empty reporting period. Callers treat it as "no
// report", never as a failure.
var ErrNoData = errors.New("no attendance data to report")

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

type IDGen interface {
	New() (string, error)
}

type ulidGen struct{}

func (ulidGen) New() (string, error) {
	t := time.Now().UTC()
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(t), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// RecordSource is the snapshot read the compiler consumes. Implemented by
// *attendance.Service.
type RecordSource interface {
	Records(ctx context.Context) ([]attendance.Record, error)
}

// Artifact is the compiled report handed to the external sender.
type Artifact struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	GeneratedAt time.Time `json:"generated_at"`
	Data        []byte    `json:"-"`
}

type Service struct {
	records RecordSource
	clock   Clock
	id      IDGen
}

func NewService(records RecordSource) *Service {
	return &Service{records: records, clock: realClock{}, id: ulidGen{}}
}

// Generate compiles the full record snapshot into an xlsx artifact.
// Returns ErrNoData when there is nothing to report.
func (s *Service) Generate(ctx context.Context) (*Artifact, error) {
	recs, err := s.records.Records(ctx)
	if err != nil {
		return nil, err
	}
	m := Compile(recs)
	if m == nil {
		return nil, ErrNoData
	}

	data, err := WriteXLSX(m)
	if err != nil {
		return nil, err
	}
	id, err := s.id.New()
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	return &Artifact{
		ID:          id,
		Filename:    fmt.Sprintf("Tabel_%s.xlsx", now.Format("2006-01-02")),
		GeneratedAt: now,
		Data:        data,
	}, nil
}
