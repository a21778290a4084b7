package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	m "stylefit.dev/pkg/stylefit/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait returns immediately; SimpleUI never blocks.
func (s *SimpleUI) Wait(_ context.Context) {}

// DisplaySearchStart prints the size of the search.
func (s *SimpleUI) DisplaySearchStart(ctx context.Context, info SearchInfo) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Searching %d files: %d settings, %d presets, %d worker(s)", info.Files, info.Settings, info.Presets, info.Threads)

	if !info.Deadline.IsZero() {
		s.printf(", deadline %s", info.Deadline.Format(time.TimeOnly))
	}

	s.printf("\n")
}

// DisplayEvent prints presets and adopted changes; rejected trials are silent.
func (s *SimpleUI) DisplayEvent(ctx context.Context, event m.SearchEvent) {
	if err := ctx.Err(); err != nil {
		return
	}

	switch event.Kind {
	case m.EventPresetScored:
		s.printf("preset %s: %s\n", event.Preset, event.Score)
	case m.EventTrialEvaluated:
		if event.Accepted {
			s.printf("pass %d: %s=%s -> %s\n", event.Pass, event.Setting, event.Value, event.Score)
		}
	case m.EventPassCompleted:
		s.printf("pass %d complete, best %s\n", event.Pass, event.Best)
	case m.EventDeadlineReached:
		s.printf("deadline reached, keeping the best configuration so far\n")
	case m.EventFinished:
	}
}

// DisplayReport prints the final report.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderReport(report))

	return nil
}

// DisplayPresets prints the option catalogue.
func (s *SimpleUI) DisplayPresets(ctx context.Context, space m.OptionSpace) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderPresets(space))

	return nil
}

// DisplayCost prints the cost between two files.
func (s *SimpleUI) DisplayCost(ctx context.Context, original, formatted m.Path, cost m.Cost) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderCost(original, formatted, cost))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
