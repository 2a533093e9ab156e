package enumtest

import (
	"iter"

	"github.com/roach88/enumconform/enum"
	"github.com/roach88/enumconform/synth"
)

// ValidValueProvider yields every case with its own backing value.
// Each range re-reads the enumeration.
func ValidValueProvider[E enum.Backed[V], V enum.Value](e enum.Enumeration[E, V]) iter.Seq2[E, V] {
	return func(yield func(E, V) bool) {
		for _, p := range enum.ListValidPairs(e) {
			if !yield(p.Case, p.Value) {
				return
			}
		}
	}
}

// ValidLabelProvider yields every Labeler case with the label it reports.
func ValidLabelProvider[E enum.Backed[V], V enum.Value](e enum.Enumeration[E, V]) iter.Seq2[E, string] {
	return func(yield func(E, string) bool) {
		for _, p := range enum.ListLabelPairs(e) {
			if !yield(p.Case, p.Label) {
				return
			}
		}
	}
}

// InvalidValueProvider yields every case with a synthesized value of the
// same kind that no case is backed by. Values are drawn from s as the
// sequence is ranged over. An enumeration whose cases cover every value of
// its backing type yields nothing.
func InvalidValueProvider[E enum.Backed[V], V enum.Value](e enum.Enumeration[E, V], s *synth.Synthesizer) iter.Seq2[E, V] {
	return func(yield func(E, V) bool) {
		valid := enum.Values(e)
		for _, c := range e.Cases() {
			v, ok := synth.Invalid(s, c.Value(), valid)
			if !ok {
				return
			}
			if !yield(c, v) {
				return
			}
		}
	}
}
