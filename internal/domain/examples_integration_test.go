package domain_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stylefit.dev/pkg/stylefit/internal/adapter"
	"stylefit.dev/pkg/stylefit/internal/domain"
	m "stylefit.dev/pkg/stylefit/internal/model"
)

func loadExample(t *testing.T, name string) m.Corpus {
	t.Helper()

	dir := filepath.Join("..", "..", "examples", name)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	contents := make(map[m.Path]string, len(entries))

	for _, entry := range entries {
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		require.NoError(t, err)

		contents[m.Path(entry.Name())] = string(data)
	}

	return m.NewCorpus(contents)
}

func TestExamplesIntegration(t *testing.T) {
	space, err := adapter.NewLocalOptionStore(adapter.NewLocalSourceFSAdapter()).Default(context.Background())
	require.NoError(t, err)

	tests := []struct {
		example   string
		baseline  string
		overrides m.Configuration
	}{
		{example: "kernel", baseline: "kernel"},
		{example: "compact", baseline: "compact"},
		{
			example:  "tight",
			baseline: "default",
			overrides: m.Configuration{
				adapter.SettingSpaceAfterComment: "false",
				adapter.SettingSpaceAfterKeyword: "false",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.example, func(t *testing.T) {
			corpus := loadExample(t, tt.example)
			engine := domain.NewEngine(adapter.NewTextFormatter(), domain.WithThreads(2))

			got, err := engine.Search(context.Background(), corpus, space, farDeadline())
			require.NoError(t, err)

			assert.Equal(t, tt.baseline, got.Baseline)
			assert.Equal(t, m.Cost(0), got.Score.Total)
			assert.Zero(t, got.Score.Rejected)
			assert.Equal(t, len(tt.overrides), got.Overrides)

			for setting, value := range tt.overrides {
				assert.Equal(t, value, got.Configuration[setting], setting)
			}
		})
	}
}
