package manifest

import (
	"fmt"

	"github.com/roach88/enumconform/enum"
)

// Backing is the set of backing types a manifest can declare.
type Backing interface {
	~string | ~int64
}

// CaseOf is a manifest case without a label.
type CaseOf[V Backing] struct {
	name  string
	value V
}

// Value implements enum.Backed.
func (c CaseOf[V]) Value() V { return c.value }

// String returns the case name.
func (c CaseOf[V]) String() string { return c.name }

// SelectItem implements enum.SelectItemer.
func (c CaseOf[V]) SelectItem() enum.SelectItem {
	return enum.SelectItem{"value": c.value}
}

// LabeledCase is a manifest case that carries a label and a select item.
type LabeledCase[V Backing] struct {
	CaseOf[V]
	label string
}

// Label implements enum.Labeler.
func (c LabeledCase[V]) Label() string { return c.label }

// SelectItem implements enum.SelectItemer.
func (c LabeledCase[V]) SelectItem() enum.SelectItem {
	return enum.SelectItem{"value": c.value, "label": c.label}
}

// Unlabeled builds a registry of unlabeled cases for e.
func Unlabeled[V Backing](e Enum) (*enum.Registry[CaseOf[V], V], error) {
	cs := make([]CaseOf[V], 0, len(e.Cases))
	for _, c := range e.Cases {
		v, err := valueOf[V](e, c)
		if err != nil {
			return nil, err
		}
		cs = append(cs, CaseOf[V]{name: c.Name, value: v})
	}
	return enum.New[CaseOf[V], V](e.Name, cs...), nil
}

// Labeled builds a registry of labeled cases for e.
func Labeled[V Backing](e Enum) (*enum.Registry[LabeledCase[V], V], error) {
	cs := make([]LabeledCase[V], 0, len(e.Cases))
	for _, c := range e.Cases {
		v, err := valueOf[V](e, c)
		if err != nil {
			return nil, err
		}
		cs = append(cs, LabeledCase[V]{CaseOf: CaseOf[V]{name: c.Name, value: v}, label: c.Label})
	}
	return enum.New[LabeledCase[V], V](e.Name, cs...), nil
}

func valueOf[V Backing](e Enum, c Case) (V, error) {
	v, ok := c.Value.(V)
	if !ok {
		var zero V
		return zero, &Error{
			Code:    ErrCodeInvalidCase,
			Message: fmt.Sprintf("enum %s case %s: value %v (%T) is not a %T", e.Name, c.Name, c.Value, c.Value, zero),
		}
	}
	return v, nil
}
