package store

import (
	"fmt"
	"strconv"

	"github.com/roach88/enumconform/enumtest"
	"github.com/roach88/enumconform/internal/canon"
)

// marshalReport converts a report to canonical JSON TEXT for storage.
// The seed is a decimal string so the column survives JSON readers that
// parse numbers as float64.
func marshalReport(r *enumtest.Report) (string, error) {
	results := make([]any, 0, len(r.Results))
	for _, res := range r.Results {
		entry := map[string]any{
			"family": string(res.Family),
			"pass":   res.Pass,
		}
		if res.Case != "" {
			entry["case"] = res.Case
		}
		if res.Value != "" {
			entry["value"] = res.Value
		}
		if res.Error != "" {
			entry["error"] = res.Error
		}
		results = append(results, entry)
	}

	families := make(map[string]any, len(enumtest.Families))
	for family, count := range r.Counts() {
		families[string(family)] = map[string]any{
			"checks": count.Checks,
			"failed": count.Failed,
		}
	}

	data, err := canon.Marshal(map[string]any{
		"enum":     r.Enum,
		"kind":     string(r.Kind),
		"seed":     formatSeed(r.Seed),
		"pass":     r.Pass,
		"families": families,
		"results":  results,
	})
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	return string(data), nil
}

func formatSeed(seed uint64) string {
	return strconv.FormatUint(seed, 10)
}

func parseSeed(s string) (uint64, error) {
	seed, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse seed %q: %w", s, err)
	}
	return seed, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
