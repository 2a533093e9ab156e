package enum

import (
	"fmt"
	"reflect"
	"slices"
)

// Resolve reads the enumeration a test case covers.
//
// The test case must implement Coverer and cover a non-nil value that
// implements Enumeration[E, V]. Anything else is a *ConfigError.
func Resolve[E Backed[V], V Value](testCase any) (Enumeration[E, V], error) {
	if testCase == nil {
		return nil, &ConfigError{
			Code:    ErrCodeNoAssociation,
			Message: "test case is nil",
		}
	}

	coverer, ok := testCase.(Coverer)
	if !ok {
		return nil, &ConfigError{
			Code:    ErrCodeNoAssociation,
			Type:    fmt.Sprintf("%T", testCase),
			Message: "test case does not declare the enumeration it covers; implement Covers() or use enumtest.Suite",
		}
	}

	target := coverer.Covers()
	if target == nil || isNilPointer(target) {
		return nil, &ConfigError{
			Code:    ErrCodeNoAssociation,
			Type:    fmt.Sprintf("%T", testCase),
			Message: "Covers() returned nil",
		}
	}

	e, ok := target.(Enumeration[E, V])
	if !ok {
		return nil, &ConfigError{
			Code: ErrCodeNotAnEnumeration,
			Type: fmt.Sprintf("%T", target),
			Message: fmt.Sprintf("covered value is not an enumeration of %s backed by %s",
				reflect.TypeFor[E](), reflect.TypeFor[V]()),
		}
	}
	return e, nil
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// ListCases returns the cases of e in declaration order.
// Every call re-reads the enumeration.
func ListCases[E Backed[V], V Value](e Enumeration[E, V]) []E {
	return slices.Clone(e.Cases())
}

// ListValidPairs returns one (case, backing value) pair per case.
func ListValidPairs[E Backed[V], V Value](e Enumeration[E, V]) []Pair[E, V] {
	cases := e.Cases()
	pairs := make([]Pair[E, V], 0, len(cases))
	for _, c := range cases {
		pairs = append(pairs, Pair[E, V]{Case: c, Value: c.Value()})
	}
	return pairs
}

// ListLabelPairs returns a (case, label) pair for every case implementing Labeler.
func ListLabelPairs[E Backed[V], V Value](e Enumeration[E, V]) []LabelPair[E] {
	var pairs []LabelPair[E]
	for _, c := range e.Cases() {
		if l, ok := any(c).(Labeler); ok {
			pairs = append(pairs, LabelPair[E]{Case: c, Label: l.Label()})
		}
	}
	return pairs
}

// Values returns the backing values of e in declaration order.
func Values[E Backed[V], V Value](e Enumeration[E, V]) []V {
	cases := e.Cases()
	values := make([]V, len(cases))
	for i, c := range cases {
		values[i] = c.Value()
	}
	return values
}

// Validate checks that e behaves as a closed set of uniquely backed cases:
// no case appears twice, no two cases share a backing value, and Cases
// returns the same sequence on repeated calls.
func Validate[E Backed[V], V Value](e Enumeration[E, V]) error {
	name := Name(e)
	cases := e.Cases()

	seenCase := make(map[E]int, len(cases))
	seenValue := make(map[V]int, len(cases))
	for i, c := range cases {
		if j, dup := seenCase[c]; dup {
			return &ConfigError{
				Code:    ErrCodeNotAnEnumeration,
				Type:    name,
				Message: fmt.Sprintf("case %s declared twice (positions %d and %d)", CaseName[E, V](c), j, i),
			}
		}
		seenCase[c] = i

		v := c.Value()
		if j, dup := seenValue[v]; dup {
			return &ConfigError{
				Code:    ErrCodeNotAnEnumeration,
				Type:    name,
				Message: fmt.Sprintf("backing value %v shared by %s and %s", v, CaseName[E, V](cases[j]), CaseName[E, V](c)),
			}
		}
		seenValue[v] = i
	}

	if again := e.Cases(); !slices.Equal(cases, again) {
		return &ConfigError{
			Code:    ErrCodeNotAnEnumeration,
			Type:    name,
			Message: "Cases() is not stable across calls",
		}
	}
	return nil
}
