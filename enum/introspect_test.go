package enum_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/enumconform/enum"
	"github.com/roach88/enumconform/internal/testutil"
)

type covers struct{ target any }

func (c covers) Covers() any { return c.target }

type uncovered struct{}

func TestResolve(t *testing.T) {
	e, err := enum.Resolve[testutil.Status, string](covers{testutil.Statuses})
	require.NoError(t, err)
	assert.Same(t, testutil.Statuses, e)
}

func TestResolve_NoAssociation(t *testing.T) {
	var nilRegistry *enum.Registry[testutil.Status, string]

	tests := []struct {
		name     string
		testCase any
	}{
		{"nil test case", nil},
		{"no Covers method", uncovered{}},
		{"covers nil", covers{nil}},
		{"covers nil pointer", covers{nilRegistry}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := enum.Resolve[testutil.Status, string](tt.testCase)
			require.Error(t, err)
			assert.ErrorIs(t, err, enum.ErrNoAssociationDeclared)
			assert.NotErrorIs(t, err, enum.ErrNotAnEnumeration)

			var cfgErr *enum.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, enum.ErrCodeNoAssociation, cfgErr.Code)
		})
	}
}

func TestResolve_NotAnEnumeration(t *testing.T) {
	tests := []struct {
		name   string
		target any
	}{
		{"plain string", "active"},
		{"single case", testutil.HTTPOK},
		{"string enumeration", testutil.Statuses},
		{"int enumeration", testutil.Priorities},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := enum.Resolve[testutil.HTTPCode, int64](covers{tt.target})
			require.Error(t, err)
			assert.ErrorIs(t, err, enum.ErrNotAnEnumeration)
			assert.Contains(t, err.Error(), "NOT_AN_ENUMERATION")
		})
	}
}

func TestListCases_DeclarationOrder(t *testing.T) {
	cases := enum.ListCases(testutil.Statuses)
	assert.Equal(t, []testutil.Status{
		testutil.StatusActive,
		testutil.StatusInactive,
		testutil.StatusPending,
	}, cases)

	// Mutating the result does not leak into the registry.
	cases[0] = testutil.StatusPending
	assert.Equal(t, testutil.StatusActive, enum.ListCases(testutil.Statuses)[0])
}

func TestListValidPairs(t *testing.T) {
	pairs := enum.ListValidPairs(testutil.Priorities)
	require.Len(t, pairs, 3)
	for _, p := range pairs {
		assert.Equal(t, p.Case.Value(), p.Value)
	}
	assert.Equal(t, testutil.PriorityLow, pairs[0].Case)
	assert.Equal(t, 1, pairs[0].Value)
}

func TestListValidPairs_Idempotent(t *testing.T) {
	assert.Equal(t, enum.ListValidPairs(testutil.Statuses), enum.ListValidPairs(testutil.Statuses))
}

func TestListLabelPairs(t *testing.T) {
	pairs := enum.ListLabelPairs(testutil.Statuses)
	require.Len(t, pairs, 3)
	assert.Equal(t, "Active Status", pairs[0].Label)
	assert.Equal(t, "Pending Status", pairs[2].Label)

	assert.Empty(t, enum.ListLabelPairs(testutil.Colors))
	assert.Empty(t, enum.ListLabelPairs(testutil.HTTPCodes))
}

func TestEmptyEnumeration(t *testing.T) {
	assert.Empty(t, enum.ListCases(testutil.Voids))
	assert.Empty(t, enum.ListValidPairs(testutil.Voids))
	assert.Empty(t, enum.ListLabelPairs(testutil.Voids))
	assert.Empty(t, enum.Values(testutil.Voids))
	assert.NoError(t, enum.Validate(testutil.Voids))
}

func TestValues(t *testing.T) {
	assert.Equal(t, []int64{100, 200, 404, 500}, enum.Values(testutil.HTTPCodes))
}

func TestCapabilities(t *testing.T) {
	assert.True(t, enum.HasLabel(testutil.StatusActive))
	assert.True(t, enum.HasSelectItem(testutil.StatusActive))
	assert.False(t, enum.HasLabel(testutil.ColorRed))
	assert.False(t, enum.HasSelectItem(testutil.ColorRed))
	assert.False(t, enum.HasLabel(testutil.HTTPOK))
	assert.True(t, enum.HasSelectItem(testutil.HTTPOK))
}

func TestSelectItemCarriesValueAndLabel(t *testing.T) {
	for _, c := range enum.ListCases(testutil.Statuses) {
		item := c.SelectItem()
		assert.Equal(t, c.Value(), item["value"])
		assert.Equal(t, c.Label(), item["label"])
	}
	for _, c := range enum.ListCases(testutil.Priorities) {
		item := c.SelectItem()
		assert.Equal(t, c.Value(), item["value"])
		assert.Equal(t, c.Label(), item["label"])
	}
}

func TestCaseNameAndName(t *testing.T) {
	assert.Equal(t, "ACTIVE", enum.CaseName[testutil.Status, string](testutil.StatusActive))
	assert.Equal(t, "404", enum.CaseName[testutil.HTTPCode, int64](testutil.HTTPNotFound))

	assert.Equal(t, "Status", enum.Name(testutil.Statuses))
	assert.Equal(t, "Color", enum.Name[testutil.Color, string](unnamed[testutil.Color, string]{testutil.Colors}))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, enum.KindString, enum.KindOf[string]())
	assert.Equal(t, enum.KindString, enum.KindOf[testutil.Status]())
	assert.Equal(t, enum.KindInt, enum.KindOf[int]())
	assert.Equal(t, enum.KindInt, enum.KindOf[int8]())
}

// unnamed hides the registry's Name method.
type unnamed[E enum.Backed[V], V enum.Value] struct {
	r *enum.Registry[E, V]
}

func (u unnamed[E, V]) Cases() []E            { return u.r.Cases() }
func (u unnamed[E, V]) From(v V) (E, error)   { return u.r.From(v) }
func (u unnamed[E, V]) TryFrom(v V) (E, bool) { return u.r.TryFrom(v) }

type flag struct {
	name  string
	value int
}

func (f flag) Value() int { return f.value }

// shuffling returns its cases in a different order on every call.
type shuffling struct {
	calls *int
}

func (s shuffling) Cases() []testutil.Color {
	*s.calls++
	if *s.calls%2 == 0 {
		return []testutil.Color{testutil.ColorGreen, testutil.ColorRed}
	}
	return []testutil.Color{testutil.ColorRed, testutil.ColorGreen}
}

func (s shuffling) From(v string) (testutil.Color, error) { return testutil.Colors.From(v) }

func (s shuffling) TryFrom(v string) (testutil.Color, bool) { return testutil.Colors.TryFrom(v) }

func TestValidate(t *testing.T) {
	require.NoError(t, enum.Validate(testutil.Statuses))
	require.NoError(t, enum.Validate(testutil.Priorities))

	t.Run("duplicate case", func(t *testing.T) {
		dup := enum.New[testutil.Status, string]("Dup", testutil.StatusActive, testutil.StatusActive)
		err := enum.Validate(dup)
		require.ErrorIs(t, err, enum.ErrNotAnEnumeration)
		assert.Contains(t, err.Error(), "ACTIVE declared twice")
	})

	t.Run("shared backing value", func(t *testing.T) {
		shared := enum.New[flag, int]("Flags", flag{"a", 1}, flag{"b", 2}, flag{"c", 1})
		err := enum.Validate(shared)
		require.ErrorIs(t, err, enum.ErrNotAnEnumeration)
		assert.Contains(t, err.Error(), "backing value 1 shared")
	})

	t.Run("unstable order", func(t *testing.T) {
		calls := 0
		err := enum.Validate[testutil.Color, string](shuffling{calls: &calls})
		require.ErrorIs(t, err, enum.ErrNotAnEnumeration)
		assert.Contains(t, err.Error(), "not stable")
	})
}

func TestConfigError_Is(t *testing.T) {
	err := error(&enum.ConfigError{Code: enum.ErrCodeNotAnEnumeration, Message: "x"})
	assert.True(t, errors.Is(err, enum.ErrNotAnEnumeration))
	assert.False(t, errors.Is(err, enum.ErrNoAssociationDeclared))
	assert.False(t, errors.Is(err, enum.ErrNotInRange))
	assert.Equal(t, "NOT_AN_ENUMERATION: x", err.Error())
}
