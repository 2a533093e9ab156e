package synth

import (
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"reflect"
	"slices"
	"strconv"

	"github.com/roach88/enumconform/enum"
)

const (
	// DefaultMaxAttempts bounds rejection sampling for sparse integer ranges.
	DefaultMaxAttempts = 1000

	// denseRange is the span below which integer enumerations are probed at their boundary.
	denseRange = 200

	// samplingMargin widens the sampling band on each side of a sparse range.
	samplingMargin = 100

	stringPrefix  = "invalid_"
	stringSuffixN = 1000
)

// Synthesizer produces backing values absent from an enumeration.
// It is not safe for concurrent use; give each goroutine its own.
type Synthesizer struct {
	rng         *rand.Rand
	seed        uint64
	seeded      bool
	maxAttempts int
	logger      *slog.Logger
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithSeed seeds the PCG source.
func WithSeed(seed uint64) Option {
	return func(s *Synthesizer) {
		s.seed = seed
		s.seeded = true
		s.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRand uses r as the random source. The synthesizer is then unseeded.
func WithRand(r *rand.Rand) Option {
	return func(s *Synthesizer) {
		s.seed = 0
		s.seeded = false
		s.rng = r
	}
}

// WithMaxAttempts bounds rejection sampling. Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(s *Synthesizer) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// WithLogger sets the logger used to report sampling fallbacks.
func WithLogger(l *slog.Logger) Option {
	return func(s *Synthesizer) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Synthesizer. Without WithSeed or WithRand it is seeded randomly.
func New(opts ...Option) *Synthesizer {
	s := &Synthesizer{
		maxAttempts: DefaultMaxAttempts,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		WithSeed(rand.Uint64())(s)
	}
	return s
}

// Seed returns the seed of the PCG source, or 0 for a caller-supplied source.
func (s *Synthesizer) Seed() uint64 {
	return s.seed
}

// Seeded reports whether Seed reproduces the values drawn. Zero is a valid seed.
func (s *Synthesizer) Seeded() bool {
	return s.seeded
}

// Invalid returns a value of the same kind as original that is not in valid.
// ok is false only when valid covers every value of an integer type.
func Invalid[V enum.Value](s *Synthesizer, original V, valid []V) (_ V, ok bool) {
	var out V
	rv := reflect.ValueOf(&out).Elem()

	if rv.Kind() == reflect.String {
		strs := make([]string, len(valid))
		for i, v := range valid {
			strs[i] = reflect.ValueOf(v).String()
		}
		rv.SetString(s.String(reflect.ValueOf(original).String(), strs))
		return out, true
	}

	ints := make([]int64, len(valid))
	for i, v := range valid {
		ints[i] = reflect.ValueOf(v).Int()
	}
	lo, hi := bounds(rv.Type())
	v, ok := s.Int(ints, lo, hi)
	if !ok {
		return out, false
	}
	rv.SetInt(v)
	return out, true
}

// String perturbs original into "invalid_<original>_<n>" with n in [1, 1000].
// If that happens to be a valid value, "_<n>" is appended until it is not.
func (s *Synthesizer) String(original string, valid []string) string {
	suffix := "_" + strconv.Itoa(s.rng.IntN(stringSuffixN)+1)
	candidate := stringPrefix + original + suffix
	for slices.Contains(valid, candidate) {
		candidate += suffix
	}
	return candidate
}

// Int returns an integer in [lo, hi] that is not in valid.
//
// An empty set yields -1. A set spanning less than 200 yields max+1, or
// min-1 when max+1 is not representable. A wider set is sampled uniformly
// from [min-100, max+100] up to the attempt bound, then falls back to
// max+101, min-101 and finally the first free value above lo. ok is false
// when valid holds every value in [lo, hi].
func (s *Synthesizer) Int(valid []int64, lo, hi int64) (int64, bool) {
	if len(valid) == 0 {
		return -1, true
	}

	set := make(map[int64]struct{}, len(valid))
	for _, v := range valid {
		set[v] = struct{}{}
	}
	free := func(v int64) bool {
		_, taken := set[v]
		return !taken
	}

	vmin, vmax := slices.Min(valid), slices.Max(valid)

	// Unsigned difference cannot overflow for any pair of int64.
	if uint64(vmax-vmin) < denseRange {
		if vmax < hi && free(vmax+1) {
			return vmax + 1, true
		}
		if vmin > lo && free(vmin-1) {
			return vmin - 1, true
		}
		return s.firstFree(free, lo, hi)
	}

	bandLo := saturatingAdd(vmin, -samplingMargin, lo, hi)
	bandHi := saturatingAdd(vmax, samplingMargin, lo, hi)
	for range s.maxAttempts {
		v := s.between(bandLo, bandHi)
		if free(v) {
			return v, true
		}
	}

	s.logger.Debug("sampling exhausted, using fallback",
		"attempts", s.maxAttempts,
		"min", vmin,
		"max", vmax,
		"valid", len(valid),
	)

	if vmax <= hi-(samplingMargin+1) {
		return vmax + samplingMargin + 1, true
	}
	if vmin >= lo+(samplingMargin+1) {
		return vmin - samplingMargin - 1, true
	}
	return s.firstFree(free, lo, hi)
}

// between draws uniformly from [lo, hi].
func (s *Synthesizer) between(lo, hi int64) int64 {
	width := uint64(hi - lo)
	if width == math.MaxUint64 {
		return int64(s.rng.Uint64())
	}
	return lo + int64(s.rng.Uint64N(width+1))
}

// firstFree scans upward from lo. A finite valid set leaves a gap within
// len(valid)+1 steps unless it covers all of [lo, hi].
func (s *Synthesizer) firstFree(free func(int64) bool, lo, hi int64) (int64, bool) {
	for v := lo; ; v++ {
		if free(v) {
			return v, true
		}
		if v == hi {
			return 0, false
		}
	}
}

func saturatingAdd(v, delta, lo, hi int64) int64 {
	if delta < 0 && v < lo-delta {
		return lo
	}
	if delta > 0 && v > hi-delta {
		return hi
	}
	return v + delta
}

// bounds returns the representable range of a signed integer type.
func bounds(t reflect.Type) (int64, int64) {
	bits := t.Bits()
	if bits >= 64 {
		return math.MinInt64, math.MaxInt64
	}
	return -1 << (bits - 1), 1<<(bits-1) - 1
}
