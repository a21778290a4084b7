package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"stylefit.dev/pkg/stylefit/internal/adapter"
	"stylefit.dev/pkg/stylefit/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "stylefit"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName           = "output"
	styleOutputFlagName      = "style-output"
	excludeFlagName          = "exclude"
	extensionsFlagName       = "ext"
	optionsFlagName          = "options"
	timeoutFlagName          = "timeout"
	parallelFlagName         = "parallel"
	passesFlagName           = "passes"
	cacheSizeFlagName        = "cache-size"
	formatterFlagName        = "formatter"
	formatterCommandFlagName = "formatter-command"
	formatterTimeoutFlagName = "formatter-timeout"
	logFileFlagName          = "log-file"
	verboseFlagName          = "verbose"

	outputConfigKey           = "output"
	styleOutputConfigKey      = "style_output"
	excludeConfigKey          = "paths.exclude"
	extensionsConfigKey       = "paths.extensions"
	optionsConfigKey          = "options.file"
	timeoutConfigKey          = "search.timeout"
	parallelConfigKey         = "search.parallel"
	passesConfigKey           = "search.passes"
	cacheSizeConfigKey        = "search.cache_size"
	journalDirConfigKey       = "search.journal_dir"
	formatterKindConfigKey    = "formatter.kind"
	formatterCommandConfigKey = "formatter.command"
	formatterTimeoutConfigKey = "formatter.timeout"
	formatterCacheConfigKey   = "formatter.cache_size"

	defaultOutput        = "stylefit-report.yaml"
	defaultSearchTimeout = time.Minute
	defaultParallel      = 0

	envPrefix = "STYLEFIT"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".stylefit.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputConfigKey, defaultOutput)
	viper.SetDefault(styleOutputConfigKey, "")
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(extensionsConfigKey, []string{})
	viper.SetDefault(optionsConfigKey, "")

	viper.SetDefault(timeoutConfigKey, defaultSearchTimeout.String())
	viper.SetDefault(parallelConfigKey, defaultParallel)
	viper.SetDefault(passesConfigKey, domain.DefaultMaxPasses)
	viper.SetDefault(cacheSizeConfigKey, domain.DefaultCostCacheSize)
	viper.SetDefault(journalDirConfigKey, "")

	viper.SetDefault(formatterKindConfigKey, adapter.FormatterBuiltin)
	viper.SetDefault(formatterCommandConfigKey, []string{})
	viper.SetDefault(formatterTimeoutConfigKey, adapter.DefaultCommandTimeout.String())
	viper.SetDefault(formatterCacheConfigKey, adapter.DefaultConfigFileEntries)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			slog.Debug("Config file not loaded", "error", err)
		}
	}
}

func formatterSpec() adapter.FormatterSpec {
	return adapter.FormatterSpec{
		Kind:      viper.GetString(formatterKindConfigKey),
		Command:   viper.GetStringSlice(formatterCommandConfigKey),
		Timeout:   viper.GetDuration(formatterTimeoutConfigKey),
		CacheSize: viper.GetInt(formatterCacheConfigKey),
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Numeric slog levels, e.g. -4 for debug.
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger points the global slog logger at a rotating log file.
// It logs at the configured level, or at Debug when verbose is set.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	logLevel := parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	if verbose {
		logLevel = slog.LevelDebug
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
