package adapter

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "stylefit.dev/pkg/stylefit/internal/model"
)

func TestLocalOptionStore_Default(t *testing.T) {
	store := NewLocalOptionStore(NewLocalSourceFSAdapter())

	space, err := store.Default(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		SettingIndentStyle,
		SettingIndentWidth,
		SettingInsertFinalNewline,
		SettingMaxBlankLines,
		SettingSpaceAfterComment,
		SettingSpaceAfterKeyword,
		SettingSpaceBeforeBrace,
		SettingTrimTrailingWhitespace,
	}, space.Settings())
	assert.Equal(t, []string{"4", "2", "8"}, space.Domain(SettingIndentWidth))

	presets := space.Presets()
	require.Len(t, presets, 3)
	assert.Equal(t, "default", presets[0].Name)
	assert.Equal(t, "true", presets[0].Settings[SettingSpaceAfterKeyword])

	kernel, err := space.Preset("kernel")
	require.NoError(t, err)
	assert.True(t, kernel.IsPinned(SettingIndentStyle))
}

func TestLocalOptionStore_DefaultPresetsAreAccepted(t *testing.T) {
	store := NewLocalOptionStore(NewLocalSourceFSAdapter())
	formatter := NewTextFormatter()

	space, err := store.Default(context.Background())
	require.NoError(t, err)

	for _, preset := range space.Presets() {
		got, err := formatter.Format(context.Background(), preset.Settings, "f() {\nx;\n}\n")
		require.NoError(t, err)
		assert.False(t, got.Rejected, "preset %s: %s", preset.Name, got.Reason)
	}
}

func TestLocalOptionStore_Load(t *testing.T) {
	store := NewLocalOptionStore(NewLocalSourceFSAdapter())
	dir := t.TempDir()

	t.Run("valid catalogue", func(t *testing.T) {
		path := filepath.Join(dir, "valid.yaml")
		writeTestFile(t, path, `options:
  - name: wrap
    values: [true, false, true]
  - name: column_limit
    values: [80, 100]
presets:
  - name: house
    settings:
      column_limit: 100
      unknown_key: x
`)

		space, err := store.Load(context.Background(), m.Path(path))
		require.NoError(t, err)
		assert.Equal(t, []string{"column_limit", "wrap"}, space.Settings())
		assert.Equal(t, []string{"true", "false"}, space.Domain("wrap"))

		house, err := space.Preset("house")
		require.NoError(t, err)
		assert.Equal(t, m.Configuration{"column_limit": "100", "unknown_key": "x"}, house.Settings)
	})

	t.Run("empty domain", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yaml")
		writeTestFile(t, path, "options:\n  - name: wrap\n    values: []\n")

		_, err := store.Load(context.Background(), m.Path(path))
		require.ErrorIs(t, err, m.ErrEmptyDomain)
	})

	t.Run("duplicate preset", func(t *testing.T) {
		path := filepath.Join(dir, "dup.yaml")
		writeTestFile(t, path, "presets:\n  - name: a\n  - name: a\n")

		_, err := store.Load(context.Background(), m.Path(path))
		require.ErrorIs(t, err, m.ErrDuplicatePreset)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := store.Load(context.Background(), m.Path(filepath.Join(dir, "missing.yaml")))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		writeTestFile(t, path, "options: [\n")

		_, err := store.Load(context.Background(), m.Path(path))
		require.Error(t, err)
	})
}
