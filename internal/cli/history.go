package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/enumconform/enumtest"
	"github.com/roach88/enumconform/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	DB     string // history database path
	Run    string // show the checks of one run
	Family string // only runs failing this family
}

// RunSummary is one recorded run as printed by history.
type RunSummary struct {
	ID         string `json:"id"`
	Seq        int64  `json:"seq"`
	Enum       string `json:"enum"`
	Kind       string `json:"kind"`
	Source     string `json:"source"`
	Seed       string `json:"seed"`
	Pass       bool   `json:"pass"`
	Checks     int    `json:"checks"`
	Failed     int    `json:"failed"`
	RecordedAt string `json:"recorded_at,omitempty"`
}

// RunDetail is a recorded run with its check results.
type RunDetail struct {
	Run    RunSummary             `json:"run"`
	Checks []enumtest.CheckResult `json:"checks"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history [enum]",
		Short: "List conformance runs recorded by check --db",
		Long: `List the conformance runs recorded in a history database, oldest first.

Examples:
  enumconform history --db history.db
  enumconform history --db history.db Status
  enumconform history --db history.db --family from_invalid
  enumconform history --db history.db --run 0190f6c2-...`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			enumName := ""
			if len(args) == 1 {
				enumName = args[0]
			}
			return opts.formatter(cmd).CommandError(runHistory(cmd.Context(), opts, enumName, cmd))
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "history database (required)")
	cmd.Flags().StringVar(&opts.Run, "run", "", "show the checks of one run")
	cmd.Flags().StringVar(&opts.Family, "family", "", "only runs that failed this check family")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(ctx context.Context, opts *HistoryOptions, enumName string, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := store.Open(opts.DB)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("[%s] failed to open history database", ErrCodeStoreFailed), err)
	}
	defer st.Close()

	if opts.Run != "" {
		return showRun(ctx, opts, st, cmd)
	}

	var runs []store.Run
	if opts.Family != "" {
		if !isFamily(opts.Family) {
			return NewExitError(ExitCommandError, fmt.Sprintf("[%s] unknown check family %q", ErrCodeGeneric, opts.Family))
		}
		runs, err = st.FailingRuns(ctx, enumtest.Family(opts.Family))
	} else {
		runs, err = st.ListRuns(ctx, enumName)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("[%s] failed to read history", ErrCodeStoreFailed), err)
	}

	summaries := make([]RunSummary, 0, len(runs))
	for _, run := range runs {
		if enumName != "" && run.Enum != enumName {
			continue
		}
		summaries = append(summaries, summarize(run))
	}

	out := opts.formatter(cmd)
	if opts.Format == "json" {
		return out.Success(summaries)
	}

	w := cmd.OutOrStdout()
	if len(summaries) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}
	for _, s := range summaries {
		mark := "✓"
		if !s.Pass {
			mark = "✗"
		}
		fmt.Fprintf(w, "%s #%d %s %s %d/%d failed seed=%s %s\n",
			mark, s.Seq, s.Enum, s.ID, s.Failed, s.Checks, s.Seed, s.RecordedAt)
	}
	return nil
}

func showRun(ctx context.Context, opts *HistoryOptions, st *store.Store, cmd *cobra.Command) error {
	run, err := st.ReadRun(ctx, opts.Run)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("[%s] failed to read run", ErrCodeNotFound), err)
	}
	checks, err := st.ReadChecks(ctx, run.ID)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("[%s] failed to read checks", ErrCodeStoreFailed), err)
	}

	detail := RunDetail{Run: summarize(run), Checks: checks}
	out := opts.formatter(cmd)
	if opts.Format == "json" {
		return out.Success(detail)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Run %s (#%d) %s from %s, seed %s\n", run.ID, run.Seq, run.Enum, run.Source, detail.Run.Seed)
	for _, c := range checks {
		mark := "✓"
		if !c.Pass {
			mark = "✗"
		}
		label := string(c.Family)
		if c.Case != "" {
			label += " " + c.Case
		}
		if c.Value != "" {
			label += " = " + c.Value
		}
		fmt.Fprintf(w, "%s %s\n", mark, label)
	}
	return nil
}

func summarize(run store.Run) RunSummary {
	s := RunSummary{
		ID:     run.ID,
		Seq:    run.Seq,
		Enum:   run.Enum,
		Kind:   string(run.Kind),
		Source: run.Source,
		Seed:   strconv.FormatUint(run.Seed, 10),
		Pass:   run.Pass,
		Checks: run.Checks,
		Failed: run.Failed,
	}
	if at := run.RecordedAt(); !at.IsZero() {
		s.RecordedAt = at.Format(time.RFC3339)
	}
	return s
}

func isFamily(name string) bool {
	for _, f := range enumtest.Families {
		if string(f) == name {
			return true
		}
	}
	return false
}
