package enumtest

import (
	"github.com/roach88/enumconform/enum"
)

// Family names a group of conformance checks.
type Family string

// Check families, in the order they run.
const (
	FamilyIsolation      Family = "process_isolation"
	FamilyEnumeration    Family = "enumeration"
	FamilyValidValue     Family = "valid_value"
	FamilyFromValid      Family = "from_valid"
	FamilyTryFromValid   Family = "try_from_valid"
	FamilyLabel          Family = "label"
	FamilyFromInvalid    Family = "from_invalid"
	FamilyTryFromInvalid Family = "try_from_invalid"
	FamilySelectItem     Family = "select_item"
)

// Families lists every family in run order.
var Families = []Family{
	FamilyIsolation,
	FamilyEnumeration,
	FamilyValidValue,
	FamilyFromValid,
	FamilyTryFromValid,
	FamilyLabel,
	FamilyFromInvalid,
	FamilyTryFromInvalid,
	FamilySelectItem,
}

// ProcessIsolator is implemented by test cases that can ask for every
// check to run in its own process. Enumeration checks have no side
// effects, so a conforming test case never does.
type ProcessIsolator interface {
	RunsInSeparateProcesses() bool
}

// CheckResult is the outcome of one check.
type CheckResult struct {
	Family Family `json:"family"`

	// Case names the case the check was run for. Empty for checks that
	// cover the whole enumeration.
	Case string `json:"case,omitempty"`

	// Value is the backing value or label the check used.
	Value string `json:"value,omitempty"`

	Pass  bool   `json:"pass"`
	Error string `json:"error,omitempty"`
}

// FamilyCount summarizes the results of one family.
type FamilyCount struct {
	Checks int `json:"checks"`
	Failed int `json:"failed"`
}

// Report is the outcome of evaluating one enumeration.
type Report struct {
	Enum    string        `json:"enum"`
	Kind    enum.Kind     `json:"kind"`
	Seed    uint64        `json:"seed"`
	Pass    bool          `json:"pass"`
	Results []CheckResult `json:"results"`
}

// NewReport creates a passing report with no results.
func NewReport(name string, kind enum.Kind, seed uint64) *Report {
	return &Report{
		Enum:    name,
		Kind:    kind,
		Seed:    seed,
		Pass:    true,
		Results: []CheckResult{},
	}
}

// Add records a result and marks the report failed if the result failed.
func (r *Report) Add(res CheckResult) {
	r.Results = append(r.Results, res)
	if !res.Pass {
		r.Pass = false
	}
}

// Failures returns the failed results in run order.
func (r *Report) Failures() []CheckResult {
	var failed []CheckResult
	for _, res := range r.Results {
		if !res.Pass {
			failed = append(failed, res)
		}
	}
	return failed
}

// Counts tallies results per family. Every family is present.
func (r *Report) Counts() map[Family]FamilyCount {
	counts := make(map[Family]FamilyCount, len(Families))
	for _, f := range Families {
		counts[f] = FamilyCount{}
	}
	for _, res := range r.Results {
		c := counts[res.Family]
		c.Checks++
		if !res.Pass {
			c.Failed++
		}
		counts[res.Family] = c
	}
	return counts
}
