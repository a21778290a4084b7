package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "stylefit.dev/pkg/stylefit/internal/model"
)

const maxRecentChanges = 8

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	acceptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
)

// TUI implements UI using Bubble Tea for live search progress.
type TUI struct {
	output io.Writer
	input  io.Reader

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, input io.Reader) *TUI {
	return &TUI{output: output, input: input}
}

// Start launches the progress program in search mode. View mode renders
// statically and starts nothing.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options...)
	if cfg.mode != ModeSearch {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return nil
	}

	t.program = tea.NewProgram(newSearchModel(cfg.interrupt), tea.WithOutput(t.output), tea.WithInput(t.input))
	t.done = make(chan struct{})

	go func(program *tea.Program, done chan struct{}) {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Error("TUI stopped", "error", err)
		}
	}(t.program, t.done)

	return nil
}

// Close stops the program if it is still running.
func (t *TUI) Close(_ context.Context) {
	program, done := t.running()
	if program == nil {
		return
	}

	program.Quit()
	<-done

	t.mu.Lock()
	t.program = nil
	t.mu.Unlock()
}

// Wait blocks until the program exits.
func (t *TUI) Wait(ctx context.Context) {
	_, done := t.running()
	if done == nil {
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
	}
}

// DisplaySearchStart forwards the search size to the program.
func (t *TUI) DisplaySearchStart(_ context.Context, info SearchInfo) {
	t.send(searchStartMsg(info))
}

// DisplayEvent forwards a search event to the program.
func (t *TUI) DisplayEvent(_ context.Context, event m.SearchEvent) {
	t.send(searchEventMsg(event))
}

// DisplayReport hands the report to the running program, which renders it
// and exits. Without a program it prints the report directly.
func (t *TUI) DisplayReport(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if t.send(reportMsg(report)) {
		return nil
	}

	_, err := fmt.Fprint(t.output, styledReport(report))

	return err
}

// DisplayPresets prints the option catalogue.
func (t *TUI) DisplayPresets(ctx context.Context, space m.OptionSpace) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprint(t.output, titleStyle.Render("stylefit presets")+"\n\n"+renderPresets(space))

	return err
}

// DisplayCost prints the cost between two files.
func (t *TUI) DisplayCost(ctx context.Context, original, formatted m.Path, cost m.Cost) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprint(t.output, renderCost(original, formatted, cost))

	return err
}

func (t *TUI) running() (*tea.Program, chan struct{}) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.program, t.done
}

// send delivers msg to a live program and reports whether it could.
func (t *TUI) send(msg tea.Msg) bool {
	program, done := t.running()
	if program == nil {
		return false
	}

	select {
	case <-done:
		return false
	default:
	}

	program.Send(msg)

	return true
}

type (
	searchStartMsg SearchInfo
	searchEventMsg m.SearchEvent
	reportMsg      m.Report
)

// searchModel is the Bubble Tea model showing search progress.
type searchModel struct {
	spinner   spinner.Model
	interrupt func()

	info     SearchInfo
	presets  int
	trials   int
	accepted int
	pass     int
	best     m.Score
	recent   []string
	deadline bool

	stopping bool
	report   *m.Report
	quitting bool
}

func newSearchModel(interrupt func()) searchModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle))

	return searchModel{spinner: s, interrupt: interrupt, best: m.UnknownScore()}
}

func (sm searchModel) Init() tea.Cmd {
	return sm.spinner.Tick
}

func (sm searchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return sm.handleKeyPress(msg)

	case searchStartMsg:
		sm.info = SearchInfo(msg)
		return sm, nil

	case searchEventMsg:
		sm = sm.applyEvent(m.SearchEvent(msg))
		return sm, nil

	case reportMsg:
		report := m.Report(msg)
		sm.report = &report
		sm.quitting = true

		return sm, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		sm.spinner, cmd = sm.spinner.Update(msg)

		return sm, cmd
	}

	return sm, nil
}

// handleKeyPress asks the search to stop on the first ctrl+c or q and quits
// on the second.
//
//nolint:exhaustive // Only quit keys are handled.
func (sm searchModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
	default:
		if msg.String() != "q" {
			return sm, nil
		}
	}

	if sm.stopping || sm.interrupt == nil {
		sm.quitting = true
		return sm, tea.Quit
	}

	sm.stopping = true
	sm.interrupt()

	return sm, nil
}

func (sm searchModel) applyEvent(event m.SearchEvent) searchModel {
	switch event.Kind {
	case m.EventPresetScored:
		sm.presets++

		if event.Score.Better(sm.best) {
			sm.best = event.Score
		}
	case m.EventTrialEvaluated:
		sm.trials++
		sm.pass = event.Pass

		if event.Accepted {
			sm.accepted++
			sm.best = event.Score
			sm.recent = append(sm.recent, fmt.Sprintf("pass %d: %s=%s -> %s", event.Pass, event.Setting, event.Value, event.Score))

			if len(sm.recent) > maxRecentChanges {
				sm.recent = sm.recent[len(sm.recent)-maxRecentChanges:]
			}
		}
	case m.EventPassCompleted:
		sm.pass = event.Pass
		sm.best = event.Best
	case m.EventDeadlineReached:
		sm.deadline = true
	case m.EventFinished:
		sm.best = event.Best
	}

	return sm
}

func (sm searchModel) View() string {
	if sm.report != nil {
		return styledReport(*sm.report)
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("stylefit") + "\n\n")

	fmt.Fprintf(&b, "%s Searching %d files (%d settings, %d presets, %d workers)\n\n",
		sm.spinner.View(), sm.info.Files, sm.info.Settings, sm.info.Presets, sm.info.Threads)

	fmt.Fprintf(&b, "  %s %d/%d\n", labelStyle.Render("presets scored"), sm.presets, sm.info.Presets)
	fmt.Fprintf(&b, "  %s %d (%d accepted)\n", labelStyle.Render("trials"), sm.trials, sm.accepted)
	fmt.Fprintf(&b, "  %s %d\n", labelStyle.Render("pass"), sm.pass)
	fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("best score"), sm.best)

	if len(sm.recent) > 0 {
		b.WriteString("\n")

		for _, line := range sm.recent {
			b.WriteString("  " + acceptStyle.Render(line) + "\n")
		}
	}

	switch {
	case sm.deadline:
		b.WriteString("\n  " + warnStyle.Render("deadline reached, finishing") + "\n")
	case sm.stopping:
		b.WriteString("\n  " + warnStyle.Render("stopping, keeping the best configuration so far") + "\n")
	default:
		b.WriteString("\n  " + labelStyle.Render("ctrl+c: stop early") + "\n")
	}

	return b.String()
}

func styledReport(report m.Report) string {
	return titleStyle.Render("stylefit result") + "\n\n" + renderReport(report)
}
