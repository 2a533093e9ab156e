package enum

import "slices"

// Registry is a static, ordered list of cases for one enumeration.
// It is built once, usually in a package-level var, and never mutated.
type Registry[E Backed[V], V Value] struct {
	name  string
	cases []E
	index map[V]E
}

// New builds a registry from cases in declaration order.
// When two cases share a backing value the first one wins the index;
// Validate reports the duplicate.
func New[E Backed[V], V Value](name string, cases ...E) *Registry[E, V] {
	r := &Registry[E, V]{
		name:  name,
		cases: slices.Clone(cases),
		index: make(map[V]E, len(cases)),
	}
	for _, c := range cases {
		if _, exists := r.index[c.Value()]; !exists {
			r.index[c.Value()] = c
		}
	}
	return r
}

// Name returns the enumeration name given to New.
func (r *Registry[E, V]) Name() string {
	return r.name
}

// Cases returns a copy of the cases in declaration order.
func (r *Registry[E, V]) Cases() []E {
	return slices.Clone(r.cases)
}

// From returns the case backed by v or a *ValueError.
func (r *Registry[E, V]) From(v V) (E, error) {
	c, ok := r.index[v]
	if !ok {
		var zero E
		return zero, &ValueError{Enum: r.name, Value: v}
	}
	return c, nil
}

// TryFrom returns the case backed by v, or false.
func (r *Registry[E, V]) TryFrom(v V) (E, bool) {
	c, ok := r.index[v]
	return c, ok
}

// Len returns the number of cases.
func (r *Registry[E, V]) Len() int {
	return len(r.cases)
}
