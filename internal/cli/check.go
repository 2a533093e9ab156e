package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/enumconform/enumtest"
	"github.com/roach88/enumconform/internal/store"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Seed   uint64 // invalid-value seed
	DB     string // history database; empty disables recording
	Filter string // enumeration filter (glob pattern)
}

// EnumResult holds the outcome for one enumeration.
type EnumResult struct {
	Name     string   `json:"name"`
	Source   string   `json:"source"`
	Pass     bool     `json:"pass"`
	Checks   int      `json:"checks"`
	Failed   int      `json:"failed"`
	Failures []string `json:"failures,omitempty"`
	RunID    string   `json:"run_id,omitempty"`
}

// CheckResult holds the overall check result.
type CheckResult struct {
	Enums  []EnumResult `json:"enums"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
	Total  int          `json:"total"`
	Seed   string       `json:"seed"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <path>...",
		Short: "Run the conformance battery against manifest enumerations",
		Long: `Run the conformance battery against every enumeration declared in the
given manifests. Directories are searched for .yaml, .yml and .cue files.

Invalid values are synthesized from one seed per invocation. The seed is
printed so a failing run can be replayed with --seed or ENUMCONFORM_SEED.

Exit codes:
  0 - All enumerations conform
  1 - One or more checks failed
  2 - Command error (invalid paths, unreadable manifests, etc.)

Examples:
  enumconform check ./enums
  enumconform check ./enums/status.yaml --seed 42
  enumconform check ./enums --filter "Status*" --db history.db
  enumconform check ./enums --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.formatter(cmd).CommandError(runCheck(cmd.Context(), opts, args, cmd))
		},
	}

	addSeedFlag(cmd, &opts.Seed)
	cmd.Flags().StringVar(&opts.DB, "db", "", "record results in this history database")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter enumerations by glob pattern")

	return cmd
}

func runCheck(ctx context.Context, opts *CheckOptions, paths []string, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	out := opts.formatter(cmd)
	logger := opts.Logger(out.GetErrWriter())

	enums, err := LoadEnums(paths, opts.Filter)
	if err != nil {
		return err
	}

	seed, err := resolveSeed(cmd, opts.Seed)
	if err != nil {
		return err
	}
	out.VerboseLog("Checking %d enumeration(s) with seed %d", len(enums), seed)

	var st *store.Store
	if opts.DB != "" {
		st, err = store.Open(opts.DB)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("[%s] failed to open history database", ErrCodeStoreFailed), err)
		}
		defer st.Close()
	}

	result := CheckResult{
		Enums: make([]EnumResult, 0, len(enums)),
		Total: len(enums),
		Seed:  strconv.FormatUint(seed, 10),
	}

	for _, loaded := range enums {
		b, err := bind(loaded.Enum)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("[%s] %s", ErrCodeLoadFailed, loaded.Source), err)
		}

		report, err := b.evaluate(enumtest.WithSeed(seed), enumtest.WithLogger(logger))
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("[%s] %s", ErrCodeGeneric, loaded.Enum.Name), err)
		}

		er := EnumResult{
			Name:   report.Enum,
			Source: loaded.Source,
			Pass:   report.Pass,
			Checks: len(report.Results),
		}
		for _, f := range report.Failures() {
			er.Failures = append(er.Failures, f.Error)
		}
		er.Failed = len(er.Failures)

		if st != nil {
			run, err := st.WriteRun(ctx, loaded.Source, report)
			if err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("[%s] failed to record run", ErrCodeStoreFailed), err)
			}
			er.RunID = run.ID
			logger.Debug("recorded run", "enum", run.Enum, "run_id", run.ID, "seq", run.Seq)
		}

		if er.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
		result.Enums = append(result.Enums, er)
	}

	if opts.Format == "json" {
		return outputCheckJSON(cmd, result)
	}
	return outputCheckText(cmd, result)
}

// outputCheckJSON outputs the check result as JSON.
func outputCheckJSON(cmd *cobra.Command, result CheckResult) error {
	status := "ok"
	if result.Failed > 0 {
		status = "error"
	}

	response := CLIResponse{
		Status: status,
		Data:   result,
		Seed:   result.Seed,
	}
	if result.Failed > 0 {
		response.Error = &CLIError{
			Code:    ErrCodeCheckFailed,
			Message: fmt.Sprintf("%d enumeration(s) failed", result.Failed),
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(response); err != nil {
		return err
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d enumeration(s) failed", result.Failed))
	}
	return nil
}

// outputCheckText outputs the check result as text.
func outputCheckText(cmd *cobra.Command, result CheckResult) error {
	w := cmd.OutOrStdout()

	if result.Total == 0 {
		fmt.Fprintln(w, "No enumerations found.")
		return nil
	}

	for _, er := range result.Enums {
		if er.Pass {
			fmt.Fprintf(w, "✓ %s (%d checks)\n", er.Name, er.Checks)
			continue
		}
		fmt.Fprintf(w, "✗ %s (%d of %d checks failed)\n", er.Name, er.Failed, er.Checks)
		for _, f := range er.Failures {
			fmt.Fprintf(w, "  %s\n", strings.ReplaceAll(f, "\n", "\n  "))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Check Summary: %d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)
	fmt.Fprintf(w, "Seed: %s (replay with --seed %s)\n", result.Seed, result.Seed)

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d enumeration(s) failed", result.Failed))
	}

	fmt.Fprintln(w, "✓ All enumerations conform")
	return nil
}
