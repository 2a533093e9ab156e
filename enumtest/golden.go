package enumtest

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/roach88/enumconform/enum"
	"github.com/roach88/enumconform/internal/canon"
)

// Snapshot describes an enumeration and the per-family tallies of a report
// in a form that does not depend on the seed: synthesized values are left out.
func Snapshot[E enum.Backed[V], V enum.Value](e enum.Enumeration[E, V], report *Report) map[string]any {
	cases := make([]any, 0)
	for _, c := range e.Cases() {
		entry := map[string]any{
			"name":  enum.CaseName[E, V](c),
			"value": c.Value(),
		}
		if l, ok := any(c).(enum.Labeler); ok {
			entry["label"] = l.Label()
		}
		if si, ok := any(c).(enum.SelectItemer); ok {
			if item := si.SelectItem(); item != nil {
				entry["select_item"] = map[string]any(item)
			}
		}
		cases = append(cases, entry)
	}

	families := make(map[string]any, len(Families))
	for family, count := range report.Counts() {
		families[string(family)] = map[string]any{
			"checks": count.Checks,
			"failed": count.Failed,
		}
	}

	return map[string]any{
		"enum":     report.Enum,
		"kind":     string(report.Kind),
		"pass":     report.Pass,
		"cases":    cases,
		"families": families,
	}
}

// AssertGolden compares a snapshot against testdata/golden/<name>.golden.
//
// To regenerate golden files, run:
//
//	go test ./... -update
func AssertGolden(t *testing.T, name string, snapshot map[string]any) {
	t.Helper()

	data, err := canon.Marshal(snapshot)
	require.NoError(t, err, "snapshot %s is not serializable", name)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
}

// RunWithGolden evaluates the enumeration testCase covers, requires every
// check to pass and compares its snapshot against the golden file name.
func RunWithGolden[E enum.Backed[V], V enum.Value](t *testing.T, testCase any, name string, opts ...Option) {
	t.Helper()

	e, err := enum.Resolve[E, V](testCase)
	require.NoError(t, err)

	report, err := Evaluate[E, V](testCase, opts...)
	require.NoError(t, err)
	require.Empty(t, report.Failures(), "conformance failures for %s", report.Enum)

	AssertGolden(t, name, Snapshot(e, report))
}
