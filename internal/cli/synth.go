package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/enumconform/synth"
)

// SynthOptions holds flags for the synth command.
type SynthOptions struct {
	*RootOptions
	Seed   uint64
	Filter string
}

// SynthEnum lists the invalid values synthesized for one enumeration.
type SynthEnum struct {
	Name    string         `json:"name"`
	Kind    string         `json:"kind"`
	Invalid []InvalidValue `json:"invalid"`
}

// SynthResult holds the synth command output.
type SynthResult struct {
	Enums []SynthEnum `json:"enums"`
	Seed  string      `json:"seed"`
}

// NewSynthCommand creates the synth command.
func NewSynthCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SynthOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "synth <path>...",
		Short: "Print the invalid values the battery would use",
		Long: `Print, for every case of every manifest enumeration, the synthesized
backing value that the from_invalid check would use.

With the same seed the output matches what check exercises.

Examples:
  enumconform synth ./enums --seed 42
  enumconform synth ./enums/priority.cue --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.formatter(cmd).CommandError(runSynth(opts, args, cmd))
		},
	}

	addSeedFlag(cmd, &opts.Seed)
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter enumerations by glob pattern")

	return cmd
}

func runSynth(opts *SynthOptions, paths []string, cmd *cobra.Command) error {
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
	result := SynthResult{
		Enums: make([]SynthEnum, 0, len(enums)),
		Seed:  strconv.FormatUint(seed, 10),
	}

	for _, loaded := range enums {
		b, err := bind(loaded.Enum)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("[%s] %s", ErrCodeLoadFailed, loaded.Source), err)
		}

		// Each enumeration gets a fresh synthesizer so its values match
		// the ones check draws for it.
		s := synth.New(synth.WithSeed(seed), synth.WithLogger(logger))
		invalid := b.invalid(s)
		if invalid == nil {
			invalid = []InvalidValue{}
		}
		result.Enums = append(result.Enums, SynthEnum{
			Name:    loaded.Enum.Name,
			Kind:    string(loaded.Enum.Kind),
			Invalid: invalid,
		})
	}

	if opts.Format == "json" {
		return out.Success(result)
	}

	w := cmd.OutOrStdout()
	for _, e := range result.Enums {
		fmt.Fprintf(w, "%s (%s)\n", e.Name, e.Kind)
		for _, v := range e.Invalid {
			fmt.Fprintf(w, "  %-20s %-20s -> %s\n", v.Case, v.Valid, v.Invalid)
		}
	}
	fmt.Fprintf(w, "Seed: %s\n", result.Seed)
	return nil
}
