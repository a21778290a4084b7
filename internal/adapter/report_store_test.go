package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "stylefit.dev/pkg/stylefit/internal/model"
)

func TestLocalReportStore_RoundTrip(t *testing.T) {
	store := NewLocalReportStore(NewLocalSourceFSAdapter())
	path := m.Path(filepath.Join(t.TempDir(), "out", "stylefit.result.yaml"))

	report := m.Report{
		RunID:       "run-1",
		GeneratedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Result: m.ScoredConfiguration{
			Configuration: m.Configuration{"indent_width": "2", "indent_style": "space"},
			Score:         m.NewScore([]m.Cost{3, m.RejectCost}),
			Baseline:      "compact",
			Overrides:     1,
		},
		Files: []m.Path{"a.c", "b.c"},
		Changes: []m.Trial{
			{Pass: 1, Setting: "indent_width", Value: "2", Total: m.RejectCost, Accepted: true},
		},
		Stats: m.SearchStats{PresetsScored: 3, TrialsEvaluated: 7, TrialsAccepted: 1, Passes: 2, Converged: true, Elapsed: 1500 * time.Millisecond},
	}

	require.NoError(t, store.SaveReport(context.Background(), path, report))

	loaded, err := store.LoadReport(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, report.RunID, loaded.RunID)
	assert.True(t, report.GeneratedAt.Equal(loaded.GeneratedAt))
	assert.Equal(t, report.Result.Configuration, loaded.Result.Configuration)
	assert.Equal(t, report.Result.Score, loaded.Result.Score)
	assert.Equal(t, "compact", loaded.Result.Baseline)
	assert.Equal(t, 1, loaded.Result.Overrides)
	assert.Equal(t, report.Files, loaded.Files)
	assert.Equal(t, report.Changes, loaded.Changes)
	assert.Equal(t, report.Stats, loaded.Stats)
}

func TestLocalReportStore_SaveConfiguration(t *testing.T) {
	store := NewLocalReportStore(NewLocalSourceFSAdapter())
	path := filepath.Join(t.TempDir(), "style.yaml")

	cfg := m.Configuration{"indent_width": "4", "trim_trailing_whitespace": "false", "indent_style": "tab"}
	require.NoError(t, store.SaveConfiguration(context.Background(), m.Path(path), cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, map[string]any{"indent_width": 4, "trim_trailing_whitespace": false, "indent_style": "tab"}, decoded)
}

func TestLocalReportStore_LoadErrors(t *testing.T) {
	store := NewLocalReportStore(NewLocalSourceFSAdapter())
	dir := t.TempDir()

	_, err := store.LoadReport(context.Background(), m.Path(filepath.Join(dir, "missing.yaml")))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	writeTestFile(t, bad, "files:\n  - path: a.c\n    cost: lots\n")

	_, err = store.LoadReport(context.Background(), m.Path(bad))
	require.Error(t, err)
}
