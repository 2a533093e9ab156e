package cli

import (
	"fmt"

	"github.com/roach88/enumconform/enum"
	"github.com/roach88/enumconform/enumtest"
	"github.com/roach88/enumconform/internal/manifest"
	"github.com/roach88/enumconform/synth"
)

// InvalidValue is one synthesized value that no case of an enumeration
// accepts.
type InvalidValue struct {
	Case    string `json:"case"`
	Valid   string `json:"valid"`
	Invalid string `json:"invalid"`
}

// bound is a manifest enumeration bound to its Go case type.
type bound struct {
	evaluate func(opts ...enumtest.Option) (*enumtest.Report, error)
	invalid  func(s *synth.Synthesizer) []InvalidValue
}

// bind picks the case type for e from its kind and whether it is labeled.
func bind(e manifest.Enum) (*bound, error) {
	switch e.Kind {
	case enum.KindString:
		if e.Labeled() {
			return bindRegistry(manifest.Labeled[string](e))
		}
		return bindRegistry(manifest.Unlabeled[string](e))
	case enum.KindInt:
		if e.Labeled() {
			return bindRegistry(manifest.Labeled[int64](e))
		}
		return bindRegistry(manifest.Unlabeled[int64](e))
	}
	return nil, fmt.Errorf("enum %s: unknown kind %q", e.Name, e.Kind)
}

func bindRegistry[E enum.Backed[V], V enum.Value](reg *enum.Registry[E, V], err error) (*bound, error) {
	if err != nil {
		return nil, err
	}

	suite := enumtest.Suite[E, V]{Enum: reg}
	return &bound{
		evaluate: suite.Evaluate,
		invalid: func(s *synth.Synthesizer) []InvalidValue {
			var out []InvalidValue
			for c, v := range enumtest.InvalidValueProvider[E, V](reg, s) {
				out = append(out, InvalidValue{
					Case:    enum.CaseName[E, V](c),
					Valid:   fmt.Sprint(c.Value()),
					Invalid: fmt.Sprint(v),
				})
			}
			return out
		},
	}, nil
}
