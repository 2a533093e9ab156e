// Package enumtest runs a conformance battery against a backed enumeration.
//
// A test declares which enumeration it covers and hands itself to Run:
//
//	func TestStatus(t *testing.T) {
//	    enumtest.Suite[Status, string]{Enum: Statuses}.Run(t)
//	}
//
// Any type implementing enum.Coverer can stand in for Suite:
//
//	type statusCase struct{}
//
//	func (statusCase) Covers() any { return Statuses }
//
//	func TestStatus(t *testing.T) {
//	    enumtest.Run[Status, string](t, statusCase{})
//	}
//
// A missing association, or one that does not resolve to an
// enum.Enumeration of the given case and value types, fails the whole test
// before any check runs.
//
// # Families
//
// Run registers one subtest per family and one nested subtest per data tuple:
//
//   - process_isolation: the test case does not ask for separate processes
//   - enumeration: the target is a closed set of uniquely backed cases
//   - valid_value: each case reports the backing value it was listed with
//   - from_valid: From(value) returns the very same case
//   - try_from_valid: TryFrom(value) returns the very same case
//   - label: each Labeler case reports the label it was listed with
//   - from_invalid: From(invalid) fails with enum.ErrNotInRange
//   - try_from_invalid: TryFrom(invalid) reports no match without panicking
//   - select_item: every case implements enum.SelectItemer with a non-nil map
//
// # Invalid values
//
// Invalid values come from a synth.Synthesizer. Its seed is logged with
// t.Logf; exporting ENUMCONFORM_SEED replays the same values.
//
// Evaluate runs the same checks without a testing.T and returns a Report,
// which is what the enumconform CLI uses.
package enumtest
