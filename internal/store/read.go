package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/roach88/enumconform/enum"
	"github.com/roach88/enumconform/enumtest"
)

// ErrRunNotFound is returned by ReadRun for an unknown run ID.
var ErrRunNotFound = errors.New("run not found")

// Run is the stored summary of one conformance run.
type Run struct {
	ID     string
	Seq    int64
	Enum   string
	Kind   enum.Kind
	Source string
	Seed   uint64
	Pass   bool
	Checks int
	Failed int

	// Report is the canonical JSON form of the full report.
	Report string
}

// RecordedAt returns the time embedded in the run's UUIDv7.
// It returns the zero time for IDs that are not version 7.
func (r Run) RecordedAt() time.Time {
	id, err := uuid.Parse(r.ID)
	if err != nil || id.Version() != 7 {
		return time.Time{}
	}
	sec, nsec := id.Time().UnixTime()
	return time.Unix(sec, nsec).UTC()
}

const runColumns = `id, seq, enum, kind, source, seed, pass, checks, failed, report`

// ListRuns returns recorded runs in seq order. An empty enumName lists
// every enumeration.
//
// Returns an empty slice (not nil) if nothing was recorded.
func (s *Store) ListRuns(ctx context.Context, enumName string) ([]Run, error) {
	query := `SELECT ` + runColumns + ` FROM runs`
	var args []any
	if enumName != "" {
		query += ` WHERE enum = ?`
		args = append(args, enumName)
	}
	query += ` ORDER BY seq ASC, id COLLATE BINARY ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// ReadRun returns the run with the given ID.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return run, err
}

// ReadChecks returns the check results of a run in the order they ran.
func (s *Store) ReadChecks(ctx context.Context, runID string) ([]enumtest.CheckResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT family, case_name, value, pass, error
		FROM check_results
		WHERE run_id = ?
		ORDER BY ordinal ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query check results: %w", err)
	}
	defer rows.Close()

	results := []enumtest.CheckResult{}
	for rows.Next() {
		var (
			res    enumtest.CheckResult
			family string
			pass   int
		)
		if err := rows.Scan(&family, &res.Case, &res.Value, &pass, &res.Error); err != nil {
			return nil, fmt.Errorf("scan check result: %w", err)
		}
		res.Family = enumtest.Family(family)
		res.Pass = pass == 1
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate check results: %w", err)
	}
	return results, nil
}

// FailingRuns returns runs that had at least one failed check in family.
func (s *Store) FailingRuns(ctx context.Context, family enumtest.Family) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.seq, r.enum, r.kind, r.source, r.seed, r.pass, r.checks, r.failed, r.report
		FROM runs r
		WHERE EXISTS (
			SELECT 1 FROM check_results c
			WHERE c.run_id = r.id AND c.family = ? AND c.pass = 0
		)
		ORDER BY r.seq ASC, r.id COLLATE BINARY ASC
	`, string(family))
	if err != nil {
		return nil, fmt.Errorf("query failing runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate failing runs: %w", err)
	}
	return runs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var (
		run  Run
		kind string
		seed string
		pass int
	)
	err := row.Scan(&run.ID, &run.Seq, &run.Enum, &kind, &run.Source, &seed, &pass, &run.Checks, &run.Failed, &run.Report)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, err
	}
	if err != nil {
		return Run{}, fmt.Errorf("scan run: %w", err)
	}
	run.Kind = enum.Kind(kind)
	run.Pass = pass == 1
	if run.Seed, err = parseSeed(seed); err != nil {
		return Run{}, err
	}
	return run, nil
}
