package enumtest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/enumconform/enum"
	"github.com/roach88/enumconform/synth"
)

// AssertionError is returned when a check fails.
type AssertionError struct {
	Family   Family
	Case     string // empty for whole-enumeration checks
	Expected string
	Actual   string

	// Seed and Seeded are set for checks driven by synthesized values.
	Seed   uint64
	Seeded bool
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	if e.Case != "" {
		fmt.Fprintf(&buf, "Assertion failed: %s (%s)\n", e.Family, e.Case)
	} else {
		fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Family)
	}
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s", e.Actual)
	if e.Seeded {
		fmt.Fprintf(&buf, "\n  Replay: %s=%d", SeedEnv, e.Seed)
	}
	return buf.String()
}

// guard converts a panic raised by the enumeration under test into a failure.
func guard(family Family, caseName string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &AssertionError{
				Family:   family,
				Case:     caseName,
				Expected: "no panic",
				Actual:   fmt.Sprintf("panic: %v", r),
			}
		}
	}()
	return fn()
}

func checkIsolation(testCase any) error {
	if pi, ok := testCase.(ProcessIsolator); ok && pi.RunsInSeparateProcesses() {
		return &AssertionError{
			Family:   FamilyIsolation,
			Expected: "checks share the test process",
			Actual:   fmt.Sprintf("%T asks for separate processes", testCase),
		}
	}
	return nil
}

func checkEnumeration[E enum.Backed[V], V enum.Value](e enum.Enumeration[E, V]) error {
	if err := enum.Validate(e); err != nil {
		return &AssertionError{
			Family:   FamilyEnumeration,
			Expected: "a closed set of uniquely backed cases",
			Actual:   err.Error(),
		}
	}
	return nil
}

func checkValidValue[E enum.Backed[V], V enum.Value](c E, value V) error {
	if got := c.Value(); got != value {
		return &AssertionError{
			Family:   FamilyValidValue,
			Case:     enum.CaseName[E, V](c),
			Expected: fmt.Sprintf("Value() = %v", value),
			Actual:   fmt.Sprintf("Value() = %v", got),
		}
	}
	return nil
}

func checkFromValid[E enum.Backed[V], V enum.Value](e enum.Enumeration[E, V], c E, value V) error {
	name := enum.CaseName[E, V](c)
	got, err := e.From(value)
	if err != nil {
		return &AssertionError{
			Family:   FamilyFromValid,
			Case:     name,
			Expected: fmt.Sprintf("From(%v) = %s", value, name),
			Actual:   fmt.Sprintf("error: %v", err),
		}
	}
	if got != c {
		return &AssertionError{
			Family:   FamilyFromValid,
			Case:     name,
			Expected: fmt.Sprintf("From(%v) = %s", value, name),
			Actual:   fmt.Sprintf("From(%v) = %s", value, enum.CaseName[E, V](got)),
		}
	}
	return nil
}

func checkTryFromValid[E enum.Backed[V], V enum.Value](e enum.Enumeration[E, V], c E, value V) error {
	name := enum.CaseName[E, V](c)
	got, ok := e.TryFrom(value)
	if !ok {
		return &AssertionError{
			Family:   FamilyTryFromValid,
			Case:     name,
			Expected: fmt.Sprintf("TryFrom(%v) = %s", value, name),
			Actual:   "no match",
		}
	}
	if got != c {
		return &AssertionError{
			Family:   FamilyTryFromValid,
			Case:     name,
			Expected: fmt.Sprintf("TryFrom(%v) = %s", value, name),
			Actual:   fmt.Sprintf("TryFrom(%v) = %s", value, enum.CaseName[E, V](got)),
		}
	}
	return nil
}

func checkLabel[E enum.Backed[V], V enum.Value](c E, label string) error {
	name := enum.CaseName[E, V](c)
	l, ok := any(c).(enum.Labeler)
	if !ok {
		return &AssertionError{
			Family:   FamilyLabel,
			Case:     name,
			Expected: "case implements Label()",
			Actual:   fmt.Sprintf("%T has no Label method", c),
		}
	}
	if got := l.Label(); got != label {
		return &AssertionError{
			Family:   FamilyLabel,
			Case:     name,
			Expected: fmt.Sprintf("Label() = %q", label),
			Actual:   fmt.Sprintf("Label() = %q", got),
		}
	}
	return nil
}

func checkFromInvalid[E enum.Backed[V], V enum.Value](e enum.Enumeration[E, V], c E, value V, s *synth.Synthesizer) error {
	name := enum.CaseName[E, V](c)
	got, err := e.From(value)
	if err == nil {
		return &AssertionError{
			Family:   FamilyFromInvalid,
			Case:     name,
			Expected: fmt.Sprintf("From(%v) fails with ErrNotInRange", value),
			Actual:   fmt.Sprintf("From(%v) = %s", value, enum.CaseName[E, V](got)),
			Seed:     s.Seed(),
			Seeded:   s.Seeded(),
		}
	}
	if !errors.Is(err, enum.ErrNotInRange) {
		return &AssertionError{
			Family:   FamilyFromInvalid,
			Case:     name,
			Expected: fmt.Sprintf("From(%v) fails with ErrNotInRange", value),
			Actual:   fmt.Sprintf("unrelated error: %v", err),
			Seed:     s.Seed(),
			Seeded:   s.Seeded(),
		}
	}
	return nil
}

func checkTryFromInvalid[E enum.Backed[V], V enum.Value](e enum.Enumeration[E, V], c E, value V, s *synth.Synthesizer) error {
	if got, ok := e.TryFrom(value); ok {
		return &AssertionError{
			Family:   FamilyTryFromInvalid,
			Case:     enum.CaseName[E, V](c),
			Expected: fmt.Sprintf("TryFrom(%v) reports no match", value),
			Actual:   fmt.Sprintf("TryFrom(%v) = %s", value, enum.CaseName[E, V](got)),
			Seed:     s.Seed(),
			Seeded:   s.Seeded(),
		}
	}
	return nil
}

func checkSelectItems[E enum.Backed[V], V enum.Value](e enum.Enumeration[E, V]) error {
	for _, c := range e.Cases() {
		name := enum.CaseName[E, V](c)
		si, ok := any(c).(enum.SelectItemer)
		if !ok {
			return &AssertionError{
				Family:   FamilySelectItem,
				Case:     name,
				Expected: "case implements SelectItem()",
				Actual:   fmt.Sprintf("%T has no SelectItem method", c),
			}
		}
		if si.SelectItem() == nil {
			return &AssertionError{
				Family:   FamilySelectItem,
				Case:     name,
				Expected: "SelectItem() returns a mapping",
				Actual:   "SelectItem() = nil",
			}
		}
	}
	return nil
}
