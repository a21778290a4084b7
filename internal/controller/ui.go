// Package controller renders stylefit runs to the terminal.
package controller

import (
	"context"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "stylefit.dev/pkg/stylefit/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeSearch StartMode = iota
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode      StartMode
	interrupt func()
}

// WithSearchMode shows live search progress.
func WithSearchMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeSearch
	}
}

// WithViewMode only renders static output.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// WithInterrupt registers the function called when the user asks to stop
// the search early.
func WithInterrupt(interrupt func()) StartOption {
	return func(c *StartConfig) {
		c.interrupt = interrupt
	}
}

// InterruptOf returns the interrupt function registered in options, or nil.
func InterruptOf(options ...StartOption) func() {
	return newStartConfig(options...).interrupt
}

func newStartConfig(options ...StartOption) StartConfig {
	var cfg StartConfig
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// SearchInfo describes a search about to start.
type SearchInfo struct {
	Files    int
	Settings int
	Presets  int
	Threads  int
	Deadline time.Time
}

// UI defines how runs are presented.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish
	DisplaySearchStart(ctx context.Context, info SearchInfo)
	DisplayEvent(ctx context.Context, event m.SearchEvent)
	DisplayReport(ctx context.Context, report m.Report) error
	DisplayPresets(ctx context.Context, space m.OptionSpace) error
	DisplayCost(ctx context.Context, original m.Path, formatted m.Path, cost m.Cost) error
}

// NewUI picks the interactive TUI on terminals and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout(), cmd.InOrStdin())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
