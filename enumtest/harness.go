package enumtest

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/enumconform/enum"
	"github.com/roach88/enumconform/synth"
)

// SeedEnv names the environment variable that fixes the invalid-value seed.
const SeedEnv = "ENUMCONFORM_SEED"

// Suite associates a conformance run with the enumeration it covers.
type Suite[E enum.Backed[V], V enum.Value] struct {
	// Enum is the enumeration under test, usually an *enum.Registry[E, V].
	Enum any

	// SeparateProcesses asks for process-per-check isolation.
	// Enumeration checks never need it; setting it fails process_isolation.
	SeparateProcesses bool
}

// Covers implements enum.Coverer.
func (s Suite[E, V]) Covers() any {
	return s.Enum
}

// RunsInSeparateProcesses implements ProcessIsolator.
func (s Suite[E, V]) RunsInSeparateProcesses() bool {
	return s.SeparateProcesses
}

// Run runs the conformance battery for the suite's enumeration.
func (s Suite[E, V]) Run(t *testing.T, opts ...Option) {
	t.Helper()
	Run[E, V](t, s, opts...)
}

// Evaluate runs the conformance battery without a testing.T.
func (s Suite[E, V]) Evaluate(opts ...Option) (*Report, error) {
	return Evaluate[E, V](s, opts...)
}

// Option configures a conformance run.
type Option func(*config)

type config struct {
	seed   *uint64
	synth  *synth.Synthesizer
	logger *slog.Logger
}

// WithSeed fixes the seed used to synthesize invalid values.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = &seed
	}
}

// WithSynthesizer supplies the synthesizer directly. It takes precedence over WithSeed.
func WithSynthesizer(s *synth.Synthesizer) Option {
	return func(c *config) {
		c.synth = s
	}
}

// WithLogger sets the structured logger. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// synthesizer picks the explicit synthesizer, then WithSeed, then
// ENUMCONFORM_SEED, then a random seed.
func (c *config) synthesizer() *synth.Synthesizer {
	if c.synth != nil {
		return c.synth
	}
	if c.seed != nil {
		return synth.New(synth.WithSeed(*c.seed), synth.WithLogger(c.logger))
	}
	if raw := os.Getenv(SeedEnv); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err == nil {
			return synth.New(synth.WithSeed(seed), synth.WithLogger(c.logger))
		}
		c.logger.Warn("ignoring malformed seed", "env", SeedEnv, "value", raw, "error", err)
	}
	return synth.New(synth.WithLogger(c.logger))
}

// check is one planned assertion.
type check struct {
	family Family
	name   string // subtest name; empty for whole-enumeration checks
	value  string
	run    func() error
}

// plan derives every check for e. Providers are ranged over once per
// family, so each family sees freshly derived data.
func plan[E enum.Backed[V], V enum.Value](testCase any, e enum.Enumeration[E, V], s *synth.Synthesizer) []check {
	var checks []check
	add := func(family Family, name, value string, fn func() error) {
		checks = append(checks, check{
			family: family,
			name:   name,
			value:  value,
			run:    func() error { return guard(family, name, fn) },
		})
	}

	add(FamilyIsolation, "", "", func() error { return checkIsolation(testCase) })
	add(FamilyEnumeration, "", "", func() error { return checkEnumeration(e) })

	for c, v := range ValidValueProvider(e) {
		add(FamilyValidValue, enum.CaseName[E, V](c), fmt.Sprint(v), func() error { return checkValidValue(c, v) })
	}
	for c, v := range ValidValueProvider(e) {
		add(FamilyFromValid, enum.CaseName[E, V](c), fmt.Sprint(v), func() error { return checkFromValid(e, c, v) })
	}
	for c, v := range ValidValueProvider(e) {
		add(FamilyTryFromValid, enum.CaseName[E, V](c), fmt.Sprint(v), func() error { return checkTryFromValid(e, c, v) })
	}
	for c, label := range ValidLabelProvider(e) {
		add(FamilyLabel, enum.CaseName[E, V](c), label, func() error { return checkLabel[E, V](c, label) })
	}

	for c, v := range InvalidValueProvider(e, s) {
		add(FamilyFromInvalid, enum.CaseName[E, V](c), fmt.Sprint(v), func() error { return checkFromInvalid(e, c, v, s) })
	}
	for c, v := range InvalidValueProvider(e, s) {
		add(FamilyTryFromInvalid, enum.CaseName[E, V](c), fmt.Sprint(v), func() error { return checkTryFromInvalid(e, c, v, s) })
	}

	add(FamilySelectItem, "", "", func() error { return checkSelectItems(e) })
	return checks
}

// Run resolves the enumeration testCase covers and runs every check as a
// subtest of t. An unresolvable association fails t immediately.
func Run[E enum.Backed[V], V enum.Value](t *testing.T, testCase any, opts ...Option) {
	t.Helper()

	e, err := enum.Resolve[E, V](testCase)
	require.NoError(t, err, "enumtest: %T cannot be run", testCase)

	cfg := newConfig(opts)
	s := cfg.synthesizer()
	name := enum.Name(e)
	if s.Seeded() {
		seed := s.Seed()
		t.Logf("%s: invalid values seeded with %d (%s=%d reproduces)", name, seed, SeedEnv, seed)
	}

	byFamily := make(map[Family][]check)
	for _, c := range plan(testCase, e, s) {
		byFamily[c.family] = append(byFamily[c.family], c)
	}

	for _, family := range Families {
		checks := byFamily[family]
		t.Run(string(family), func(t *testing.T) {
			if len(checks) == 0 {
				t.Skipf("%s has no data for %s", name, family)
			}
			for _, c := range checks {
				if c.name == "" {
					require.NoError(t, c.run())
					continue
				}
				t.Run(subtestName(c), func(t *testing.T) {
					require.NoError(t, c.run())
				})
			}
		})
	}

	cfg.logger.Info("conformance suite registered",
		"enum", name,
		"kind", enum.KindOf[V](),
		"seed", s.Seed(),
	)
}

func subtestName(c check) string {
	switch c.family {
	case FamilyFromInvalid, FamilyTryFromInvalid:
		return fmt.Sprintf("%s(%s)", c.name, c.value)
	}
	return c.name
}

// Evaluate resolves the enumeration testCase covers and runs every check,
// collecting results instead of failing a test. The error is non-nil only
// for an unresolvable association.
func Evaluate[E enum.Backed[V], V enum.Value](testCase any, opts ...Option) (*Report, error) {
	e, err := enum.Resolve[E, V](testCase)
	if err != nil {
		return nil, err
	}

	cfg := newConfig(opts)
	s := cfg.synthesizer()
	report := NewReport(enum.Name(e), enum.KindOf[V](), s.Seed())

	for _, c := range plan(testCase, e, s) {
		res := CheckResult{
			Family: c.family,
			Case:   c.name,
			Value:  c.value,
			Pass:   true,
		}
		if err := c.run(); err != nil {
			res.Pass = false
			res.Error = err.Error()
			cfg.logger.Warn("conformance check failed",
				"enum", report.Enum,
				"family", c.family,
				"case", c.name,
				"value", c.value,
			)
		}
		report.Add(res)
	}

	cfg.logger.Info("conformance evaluated",
		"enum", report.Enum,
		"kind", report.Kind,
		"seed", report.Seed,
		"checks", len(report.Results),
		"pass", report.Pass,
	)
	return report, nil
}
