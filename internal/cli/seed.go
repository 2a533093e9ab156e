package cli

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/enumconform/enumtest"
)

// addSeedFlag registers --seed on cmd.
func addSeedFlag(cmd *cobra.Command, seed *uint64) {
	cmd.Flags().Uint64Var(seed, "seed", 0, "seed for invalid values (default: $"+enumtest.SeedEnv+", else random)")
}

// resolveSeed picks --seed, then ENUMCONFORM_SEED, then a random seed.
// Every enumeration of one invocation shares the seed, so a single value
// replays the whole run. A malformed ENUMCONFORM_SEED is a command error.
func resolveSeed(cmd *cobra.Command, flagSeed uint64) (uint64, error) {
	if cmd.Flags().Changed("seed") {
		return flagSeed, nil
	}
	if raw := os.Getenv(enumtest.SeedEnv); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return 0, WrapExitError(ExitCommandError, fmt.Sprintf("[%s] %s=%q is not an unsigned integer", ErrCodeBadSeed, enumtest.SeedEnv, raw), err)
		}
		return seed, nil
	}
	return rand.Uint64(), nil
}
