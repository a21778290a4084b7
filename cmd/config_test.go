package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stylefit.dev/pkg/stylefit/internal/adapter"
	"stylefit.dev/pkg/stylefit/internal/domain"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "stylefit", configBaseName)
	assert.Equal(t, "stylefit.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "exclude", excludeFlagName)
	assert.Equal(t, "parallel", parallelFlagName)
	assert.Equal(t, "search.parallel", parallelConfigKey)
	assert.Equal(t, "search.timeout", timeoutConfigKey)
	assert.Equal(t, "paths.exclude", excludeConfigKey)
	assert.Equal(t, "stylefit-report.yaml", defaultOutput)
	assert.Equal(t, "STYLEFIT", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestFormatterSpec_Defaults(t *testing.T) {
	spec := formatterSpec()

	assert.Equal(t, adapter.FormatterBuiltin, spec.Kind)
	assert.Empty(t, spec.Command)
	assert.Equal(t, adapter.DefaultCommandTimeout, spec.Timeout)
	assert.Equal(t, adapter.DefaultConfigFileEntries, spec.CacheSize)
}

func TestFormatterSpec_FromEnvironment(t *testing.T) {
	t.Setenv("STYLEFIT_FORMATTER_KIND", "command")
	t.Setenv("STYLEFIT_FORMATTER_COMMAND", "clang-format --style=file")

	spec := formatterSpec()

	assert.Equal(t, adapter.FormatterCommand, spec.Kind)
	assert.Equal(t, []string{"clang-format", "--style=file"}, spec.Command)
}

func TestSearchDefaults(t *testing.T) {
	assert.Equal(t, domain.DefaultMaxPasses, viper.GetInt(passesConfigKey))
	assert.Equal(t, domain.DefaultCostCacheSize, viper.GetInt(cacheSizeConfigKey))
	assert.Equal(t, defaultSearchTimeout, viper.GetDuration(timeoutConfigKey))
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"empty uses default", "", slog.LevelWarn},
		{"debug", "debug", slog.LevelDebug},
		{"upper case", "INFO", slog.LevelInfo},
		{"warning alias", "warning", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"numeric", "-4", slog.LevelDebug},
		{"unknown uses default", "loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestConfigureLogger_WritesToFile(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logPath := filepath.Join(t.TempDir(), "stylefit.log")
	configureLogger(logPath, true)

	require.NotNil(t, globalLogger)
	slog.Debug("debug line", "key", "value")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "debug line")
	assert.Contains(t, string(data), "key=value")
}
