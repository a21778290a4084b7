package cmd

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stylefit.dev/pkg/stylefit/internal/adapter"
	"stylefit.dev/pkg/stylefit/internal/domain"
	domainmocks "stylefit.dev/pkg/stylefit/internal/domain/mocks"
	m "stylefit.dev/pkg/stylefit/internal/model"
)

func newTestInferCmd(t *testing.T) (*domainmocks.MockWorkflow, func(args ...string) error) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newInferCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow, func(args ...string) error {
		cmd.SetArgs(append([]string{"infer", "--log-file", logFileFor(t)}, args...))
		return cmd.Execute()
	}
}

func TestInferCmd_Defaults(t *testing.T) {
	mockWorkflow, run := newTestInferCmd(t)

	mockWorkflow.On("Infer", mock.Anything, mock.MatchedBy(func(args domain.InferArgs) bool {
		return len(args.Paths) == 1 &&
			args.Paths[0] == m.Path("./...") &&
			args.Output == m.Path(defaultOutput) &&
			args.StyleOutput == "" &&
			args.OptionsFile == "" &&
			args.Timeout == defaultSearchTimeout &&
			args.Threads == defaultParallel &&
			args.MaxPasses == domain.DefaultMaxPasses &&
			args.CacheSize == domain.DefaultCostCacheSize &&
			args.Formatter.Kind == adapter.FormatterBuiltin
	})).Return(nil)

	require.NoError(t, run())
	mockWorkflow.AssertExpectations(t)
}

func TestInferCmd_MultiplePaths(t *testing.T) {
	mockWorkflow, run := newTestInferCmd(t)

	mockWorkflow.On("Infer", mock.Anything, mock.MatchedBy(func(args domain.InferArgs) bool {
		return len(args.Paths) == 3 &&
			args.Paths[0] == m.Path("./src/...") &&
			args.Paths[1] == m.Path("./include") &&
			args.Paths[2] == m.Path("main.c")
	})).Return(nil)

	require.NoError(t, run("./src/...", "./include", "main.c"))
}

func TestInferCmd_SearchFlags(t *testing.T) {
	mockWorkflow, run := newTestInferCmd(t)

	mockWorkflow.On("Infer", mock.Anything, mock.MatchedBy(func(args domain.InferArgs) bool {
		return args.Timeout == 30*time.Second &&
			args.Threads == 4 &&
			args.MaxPasses == 0 &&
			args.CacheSize == 500 &&
			args.StyleOutput == m.Path(".style.yaml") &&
			args.Output == m.Path("out.yaml") &&
			assert.ObjectsAreEqual([]string{"c", "h"}, args.Extensions) &&
			assert.ObjectsAreEqual([]string{"_test", "vendor/"}, args.Exclude)
	})).Return(nil)

	require.NoError(t, run(
		"--timeout", "30s",
		"-p", "4",
		"--passes", "0",
		"--cache-size", "500",
		"--style-output", ".style.yaml",
		"-o", "out.yaml",
		"--ext", "c,h",
		"-x", "_test",
		"-x", "vendor/",
	))
}

func TestInferCmd_CommandFormatter(t *testing.T) {
	mockWorkflow, run := newTestInferCmd(t)

	mockWorkflow.On("Infer", mock.Anything, mock.MatchedBy(func(args domain.InferArgs) bool {
		return args.Formatter.Kind == adapter.FormatterCommand &&
			assert.ObjectsAreEqual([]string{"astyle", "--options={config}"}, args.Formatter.Command) &&
			args.Formatter.Timeout == 2*time.Second &&
			args.OptionsFile == m.Path("astyle-options.yaml")
	})).Return(nil)

	require.NoError(t, run(
		"-f", "command",
		"--formatter-command", "astyle --options={config}",
		"--formatter-timeout", "2s",
		"--options", "astyle-options.yaml",
	))
}

func TestInferCmd_PropagatesWorkflowError(t *testing.T) {
	mockWorkflow, run := newTestInferCmd(t)

	inferErr := errors.New("no source files found")
	mockWorkflow.On("Infer", mock.Anything, mock.Anything).Return(inferErr)

	err := run("./missing")
	require.ErrorIs(t, err, inferErr)
}

func TestInferCmd_InvalidTimeout(t *testing.T) {
	_, run := newTestInferCmd(t)

	require.Error(t, run("--timeout", "soon"))
}
