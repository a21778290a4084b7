package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOptionSpace(t *testing.T) {
	options := []Option{
		{Name: "zeta", Values: []string{"1", "2", "1"}},
		{Name: "alpha", Values: []string{"true", "false"}},
	}
	presets := []Preset{
		{Name: "second", Settings: Configuration{"alpha": "true"}},
		{Name: "first", Settings: Configuration{"alpha": "false"}, Pinned: []string{"zeta"}},
	}

	t.Run("settings are sorted and domains deduplicated", func(t *testing.T) {
		space, err := NewOptionSpace(options, presets)
		require.NoError(t, err)

		assert.Equal(t, []string{"alpha", "zeta"}, space.Settings())
		assert.Equal(t, []string{"1", "2"}, space.Domain("zeta"))
		assert.Nil(t, space.Domain("missing"))
	})

	t.Run("presets keep declaration order", func(t *testing.T) {
		space, err := NewOptionSpace(options, presets)
		require.NoError(t, err)

		got := space.Presets()
		require.Len(t, got, 2)
		assert.Equal(t, "second", got[0].Name)
		assert.True(t, got[1].IsPinned("zeta"))
		assert.False(t, got[1].IsPinned("alpha"))
	})

	t.Run("returned presets are copies", func(t *testing.T) {
		space, err := NewOptionSpace(options, presets)
		require.NoError(t, err)

		space.Presets()[0].Settings["alpha"] = "changed"
		assert.Equal(t, "true", space.Presets()[0].Settings["alpha"])
	})

	t.Run("preset lookup", func(t *testing.T) {
		space, err := NewOptionSpace(options, presets)
		require.NoError(t, err)

		p, err := space.Preset("first")
		require.NoError(t, err)
		assert.Equal(t, "false", p.Settings["alpha"])

		_, err = space.Preset("nope")
		require.ErrorIs(t, err, ErrUnknownPreset)
	})

	t.Run("empty domain is rejected", func(t *testing.T) {
		_, err := NewOptionSpace([]Option{{Name: "x"}}, nil)
		require.ErrorIs(t, err, ErrEmptyDomain)
	})

	t.Run("duplicates are rejected", func(t *testing.T) {
		_, err := NewOptionSpace([]Option{{Name: "x", Values: []string{"a"}}, {Name: "x", Values: []string{"b"}}}, nil)
		require.ErrorIs(t, err, ErrDuplicateOption)

		_, err = NewOptionSpace(nil, []Preset{{Name: "p"}, {Name: "p"}})
		require.ErrorIs(t, err, ErrDuplicatePreset)
	})
}

func TestScoredConfigurationLess(t *testing.T) {
	low := ScoredConfiguration{Score: NewScore([]Cost{1}), Overrides: 3, Discovery: 9}
	high := ScoredConfiguration{Score: NewScore([]Cost{2}), Overrides: 0, Discovery: 0}

	assert.True(t, low.Less(high))
	assert.False(t, high.Less(low))

	fewer := ScoredConfiguration{Score: NewScore([]Cost{1}), Overrides: 1, Discovery: 5}
	assert.True(t, fewer.Less(low))

	earlier := ScoredConfiguration{Score: NewScore([]Cost{1}), Overrides: 1, Discovery: 2}
	assert.True(t, earlier.Less(fewer))
	assert.False(t, fewer.Less(earlier))
}
