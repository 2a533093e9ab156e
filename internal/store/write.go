package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/roach88/enumconform/enumtest"
)

// WriteRun records a report as a new run and returns the stored summary.
// The run and all its check results are written in one transaction.
//
// source names where the enumeration came from, usually a manifest path.
func (s *Store) WriteRun(ctx context.Context, source string, r *enumtest.Report) (Run, error) {
	reportJSON, err := marshalReport(r)
	if err != nil {
		return Run{}, fmt.Errorf("write run: %w", err)
	}

	run := Run{
		ID:     uuid.Must(uuid.NewV7()).String(),
		Enum:   r.Enum,
		Kind:   r.Kind,
		Source: source,
		Seed:   r.Seed,
		Pass:   r.Pass,
		Checks: len(r.Results),
		Failed: len(r.Failures()),
		Report: reportJSON,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Run{}, fmt.Errorf("write run: begin: %w", err)
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM runs`).Scan(&run.Seq); err != nil {
		return Run{}, fmt.Errorf("write run: next seq: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs
		(id, seq, enum, kind, source, seed, pass, checks, failed, report)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.ID,
		run.Seq,
		run.Enum,
		string(run.Kind),
		run.Source,
		formatSeed(run.Seed),
		boolToInt(run.Pass),
		run.Checks,
		run.Failed,
		run.Report,
	)
	if err != nil {
		return Run{}, fmt.Errorf("write run: %w", err)
	}

	for i, res := range r.Results {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO check_results
			(run_id, ordinal, family, case_name, value, pass, error)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`,
			run.ID,
			i,
			string(res.Family),
			res.Case,
			res.Value,
			boolToInt(res.Pass),
			res.Error,
		)
		if err != nil {
			return Run{}, fmt.Errorf("write check result %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("write run: commit: %w", err)
	}
	return run, nil
}
