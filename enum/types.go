package enum

import (
	"fmt"
	"reflect"
)

// Value is the set of primitive kinds a case can be backed by.
type Value interface {
	~string | ~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Kind is the primitive kind of an enumeration's backing values.
type Kind string

const (
	KindString Kind = "string"
	KindInt    Kind = "int"
)

// KindOf reports the kind of V.
func KindOf[V Value]() Kind {
	if reflect.TypeFor[V]().Kind() == reflect.String {
		return KindString
	}
	return KindInt
}

// Backed is implemented by every case of a backed enumeration.
type Backed[V Value] interface {
	comparable
	Value() V
}

// Enumeration is the contract a backed enumeration satisfies.
type Enumeration[E Backed[V], V Value] interface {
	// Cases returns every case in declaration order.
	Cases() []E

	// From decodes a backing value. On no match it returns an error
	// for which errors.Is(err, ErrNotInRange) holds.
	From(v V) (E, error)

	// TryFrom decodes a backing value, reporting false on no match.
	TryFrom(v V) (E, bool)
}

// Labeler is the optional label capability of a case.
type Labeler interface {
	Label() string
}

// SelectItem is a key/value structure suitable for UI option lists.
// By convention it carries "value" and "label" entries.
type SelectItem map[string]any

// SelectItemer is the optional select-item capability of a case.
type SelectItemer interface {
	SelectItem() SelectItem
}

// Namer is optionally implemented by an enumeration to name itself in reports.
type Namer interface {
	Name() string
}

// Coverer associates a test case with the enumeration it exercises.
type Coverer interface {
	Covers() any
}

// Pair is a case together with its backing value.
type Pair[E any, V Value] struct {
	Case  E
	Value V
}

// LabelPair is a case together with the label it reports.
type LabelPair[E any] struct {
	Case  E
	Label string
}

// HasLabel reports whether c implements Labeler.
func HasLabel(c any) bool {
	_, ok := c.(Labeler)
	return ok
}

// HasSelectItem reports whether c implements SelectItemer.
func HasSelectItem(c any) bool {
	_, ok := c.(SelectItemer)
	return ok
}

// CaseName returns a printable name for a case.
// fmt.Stringer wins; otherwise the backing value is formatted.
func CaseName[E Backed[V], V Value](c E) string {
	if s, ok := any(c).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(c.Value())
}

// Name returns the name of an enumeration, falling back to the case type's name.
func Name[E Backed[V], V Value](e Enumeration[E, V]) string {
	if n, ok := e.(Namer); ok && n.Name() != "" {
		return n.Name()
	}
	return reflect.TypeFor[E]().Name()
}
