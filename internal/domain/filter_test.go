package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  Filter
		expectErr bool
	}{
		{name: "simple pair", input: "Décoration:Cosy", expected: Filter{Key: "Décoration", Value: "Cosy"}},
		{name: "value with spaces", input: "Type de lieu:Bar d'hôtel", expected: Filter{Key: "Type de lieu", Value: "Bar d'hôtel"}},
		{name: "split on first colon", input: "a:b:c", expected: Filter{Key: "a", Value: "b:c"}},
		{name: "missing colon", input: "Cosy", expectErr: true},
		{name: "empty key", input: ":Cosy", expectErr: true},
		{name: "empty value", input: "Décoration:", expectErr: true},
		{name: "empty string", input: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFilter(tt.input)
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrMalformedFilter)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f)
		})
	}
}

func TestFilter_RoundTrip(t *testing.T) {
	for _, group := range FilterCatalog {
		for _, option := range group.Options {
			f, err := NewFilter(group.Key, option)
			require.NoError(t, err)

			parsed, err := ParseFilter(f.String())
			require.NoError(t, err)
			assert.Equal(t, f, parsed)
		}
	}
}

func TestFilterBundle_Query(t *testing.T) {
	t.Run("nil bundle has no parameters", func(t *testing.T) {
		var b *FilterBundle
		assert.Empty(t, b.Query().Encode())
	})

	t.Run("quick filter", func(t *testing.T) {
		b := QuickFilterBundle(Filter{Key: "Décoration", Value: "Cosy"})
		assert.Equal(t, "Décoration:Cosy", b.Query().Get("filters"))
		assert.Empty(t, b.Query().Get("address"))
	})

	t.Run("nearby merges over filters", func(t *testing.T) {
		b := QuickFilterBundle(Filter{Key: "Décoration", Value: "Cosy"}).
			WithNearby("10 rue de Rivoli", PlaceCategoryDrink)

		q := b.Query()
		assert.Equal(t, "Décoration:Cosy", q.Get("filters"))
		assert.Equal(t, "10 rue de Rivoli", q.Get("address"))
		assert.Equal(t, "100", q.Get("maxDistance"))
		assert.Equal(t, "prendre_un_verre", q.Get("placeCategory"))
	})

	t.Run("empty place category is omitted", func(t *testing.T) {
		var b *FilterBundle
		q := b.WithNearby("10 rue de Rivoli", "").Query()
		assert.False(t, q.Has("placeCategory"))
	})
}

func TestFilterBundle_Equal(t *testing.T) {
	a := QuickFilterBundle(Filter{Key: "k", Value: "v"})
	assert.True(t, a.Equal(a.Clone()))
	assert.False(t, a.Equal(nil))
	assert.True(t, (*FilterBundle)(nil).Equal(nil))
	assert.False(t, a.Equal(a.WithNearby("addr", PlaceCategoryEat)))
}

func TestFilterBundle_CloneIsIndependent(t *testing.T) {
	a := QuickFilterBundle(Filter{Key: "k", Value: "v"})
	b := a.Clone()
	b.Filters[0] = "x:y"
	assert.Equal(t, "k:v", a.Filters[0])
}
