package adapter

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	m "stylefit.dev/pkg/stylefit/internal/model"
	pkg "stylefit.dev/pkg/stylefit/pkg"
)

// Formatter is the oracle being tuned. Given a configuration and a text it
// returns the formatted text or a rejection. Implementations must be
// deterministic and safe for concurrent use. A non-nil error means the
// formatter itself is unusable, which is different from rejecting a text.
type Formatter interface {
	Format(ctx context.Context, cfg m.Configuration, text string) (m.FormatResult, error)
}

// Formatter kinds accepted by NewFormatter.
const (
	FormatterBuiltin = "builtin"
	FormatterCommand = "command"
)

// ConfigPlaceholder is replaced in command arguments by the path of a YAML
// file holding the configuration under test.
const ConfigPlaceholder = "{config}"

// ErrFormatterNotConfigured is returned when a formatter cannot be built from
// the provided settings.
var ErrFormatterNotConfigured = errors.New("formatter not configured")

// FormatterSpec selects and configures a Formatter.
type FormatterSpec struct {
	Kind      string
	Command   []string
	Timeout   time.Duration
	CacheSize int
}

// NewFormatter builds the formatter described by spec.
func NewFormatter(fsAdapter SourceFSAdapter, spec FormatterSpec) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(spec.Kind)) {
	case "", FormatterBuiltin:
		return NewTextFormatter(), nil
	case FormatterCommand:
		return NewCommandFormatter(fsAdapter, spec.Command, spec.Timeout, spec.CacheSize)
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrFormatterNotConfigured, spec.Kind)
	}
}

// Defaults applied when a CommandFormatter is built with a zero timeout or
// cache size.
const (
	DefaultCommandTimeout    = 10 * time.Second
	DefaultConfigFileEntries = 64
)

// CommandFormatter runs an external formatter process for every call. The
// text is written to stdin and the formatted text read from stdout. A
// non-zero exit status or a timeout is a rejection.
type CommandFormatter struct {
	fs      SourceFSAdapter
	command []string
	timeout time.Duration
	dir     m.Path

	mu      sync.Mutex
	configs *pkg.LRU[string, m.Path]
}

// NewCommandFormatter prepares a CommandFormatter. Materialized configuration
// files live in a private temporary directory; at most cacheSize of them are
// kept and evicted files are deleted.
func NewCommandFormatter(fsAdapter SourceFSAdapter, command []string, timeout time.Duration, cacheSize int) (*CommandFormatter, error) {
	if len(command) == 0 || strings.TrimSpace(command[0]) == "" {
		return nil, fmt.Errorf("%w: empty command", ErrFormatterNotConfigured)
	}

	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}

	if cacheSize <= 0 {
		cacheSize = DefaultConfigFileEntries
	}

	dir, err := fsAdapter.CreateTempDir("stylefit-config-*")
	if err != nil {
		slog.Error("Failed to create config dir", "error", err)
		return nil, fmt.Errorf("failed to create config dir: %w", err)
	}

	f := &CommandFormatter{
		fs:      fsAdapter,
		command: append([]string(nil), command...),
		timeout: timeout,
		dir:     dir,
	}

	f.configs = pkg.NewLRU[string, m.Path](cacheSize).OnEvict(func(_ string, path m.Path) {
		if err := fsAdapter.RemoveAll(path); err != nil {
			slog.Warn("Failed to remove config file", "path", path, "error", err)
		}
	})

	return f, nil
}

// Format implements Formatter.
func (f *CommandFormatter) Format(ctx context.Context, cfg m.Configuration, text string) (m.FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return m.FormatResult{}, err
	}

	configPath, err := f.configFile(cfg)
	if err != nil {
		return m.FormatResult{}, err
	}

	args := make([]string, 0, len(f.command))
	for _, arg := range f.command {
		args = append(args, strings.ReplaceAll(arg, ConfigPlaceholder, string(configPath)))
	}

	callCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	// #nosec G204 - the command is provided by the user's own configuration
	cmd := exec.CommandContext(callCtx, args[0], args[1:]...)
	cmd.Stdin = strings.NewReader(text)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if runErr == nil {
		return m.Formatted(stdout.String()), nil
	}

	if ctx.Err() != nil {
		return m.FormatResult{}, ctx.Err()
	}

	if callCtx.Err() != nil {
		slog.Warn("Formatter timed out", "command", args[0], "timeout", f.timeout)
		return m.Rejected("timeout after " + f.timeout.String()), nil
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		reason := strings.TrimSpace(stderr.String())
		if reason == "" {
			reason = exitErr.Error()
		}

		slog.Debug("Formatter rejected text", "command", args[0], "reason", reason)

		return m.Rejected(reason), nil
	}

	slog.Error("Failed to run formatter", "command", args[0], "error", runErr)

	return m.FormatResult{}, fmt.Errorf("failed to run formatter: %w", runErr)
}

// configFile returns the path of a YAML file holding cfg, writing it on first use.
func (f *CommandFormatter) configFile(cfg m.Configuration) (m.Path, error) {
	key := cfg.Key()

	f.mu.Lock()
	defer f.mu.Unlock()

	if path, ok := f.configs.Get(key); ok {
		return path, nil
	}

	content, err := yaml.Marshal(typedValues(cfg))
	if err != nil {
		return "", fmt.Errorf("failed to encode configuration: %w", err)
	}

	sum := sha256.Sum256([]byte(key))
	path := f.fs.JoinPath(string(f.dir), hex.EncodeToString(sum[:8])+".yaml")

	if err := f.fs.WriteFile(path, content, 0o600); err != nil {
		slog.Error("Failed to write config file", "path", path, "error", err)
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	f.configs.Set(key, path)

	return path, nil
}

// typedValues restores booleans and integers so the emitted YAML is typed.
func typedValues(cfg m.Configuration) map[string]any {
	out := make(map[string]any, len(cfg))

	for k, v := range cfg {
		if b, err := strconv.ParseBool(v); err == nil && (v == "true" || v == "false") {
			out[k] = b
			continue
		}

		if n, err := strconv.Atoi(v); err == nil {
			out[k] = n
			continue
		}

		out[k] = v
	}

	return out
}

// Close deletes every materialized configuration file.
func (f *CommandFormatter) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.configs.Purge()

	return f.fs.RemoveAll(f.dir)
}
