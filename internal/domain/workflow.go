package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"stylefit.dev/pkg/stylefit/internal/adapter"
	"stylefit.dev/pkg/stylefit/internal/controller"
	m "stylefit.dev/pkg/stylefit/internal/model"
	pkg "stylefit.dev/pkg/stylefit/pkg"
)

// recursiveSuffix marks a path whose subdirectories are walked too.
const recursiveSuffix = "/..."

// ErrNoSources is returned when the given paths hold no matching file.
var ErrNoSources = errors.New("no source files found")

// InferArgs contains the arguments of an inference run.
type InferArgs struct {
	Paths       []m.Path
	Exclude     []string
	Extensions  []string
	Output      m.Path
	StyleOutput m.Path
	OptionsFile m.Path
	Formatter   adapter.FormatterSpec
	Timeout     time.Duration
	Threads     int
	MaxPasses   int
	CacheSize   int
	JournalDir  string
}

// PresetsArgs contains the arguments for listing the option catalogue.
type PresetsArgs struct {
	OptionsFile m.Path
}

// CostArgs contains the arguments for scoring two files against each other.
type CostArgs struct {
	Original  m.Path
	Formatted m.Path
}

// ViewArgs contains the arguments for showing a saved report.
type ViewArgs struct {
	Report m.Path
}

// Workflow wires the stylefit commands.
type Workflow interface {
	Infer(ctx context.Context, args InferArgs) error
	Presets(ctx context.Context, args PresetsArgs) error
	Cost(ctx context.Context, args CostArgs) error
	View(ctx context.Context, args ViewArgs) error
}

// FormatterFactory builds the formatter of a run.
type FormatterFactory func(spec adapter.FormatterSpec) (adapter.Formatter, error)

type workflow struct {
	adapter.SourceFSAdapter
	adapter.OptionStore
	adapter.ReportStore
	controller.UI

	newFormatter FormatterFactory
	now          func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	optionStore adapter.OptionStore,
	reportStore adapter.ReportStore,
	ui controller.UI,
	newFormatter FormatterFactory,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		OptionStore:     optionStore,
		ReportStore:     reportStore,
		UI:              ui,
		newFormatter:    newFormatter,
		now:             time.Now,
	}
}

// Infer loads the corpus and the option space, searches for the best
// configuration and saves the report.
func (w *workflow) Infer(ctx context.Context, args InferArgs) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	corpus, err := w.loadCorpus(ctx, args.Paths, args.Exclude, args.Extensions)
	if err != nil {
		slog.Error("Failed to load sources", "error", err)
		return fmt.Errorf("load sources: %w", err)
	}

	space, err := w.loadSpace(ctx, args.OptionsFile)
	if err != nil {
		return fmt.Errorf("load options: %w", err)
	}

	formatter, err := w.newFormatter(args.Formatter)
	if err != nil {
		slog.Error("Failed to create formatter", "error", err)
		return fmt.Errorf("create formatter: %w", err)
	}

	if closer, ok := formatter.(io.Closer); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				slog.Warn("Failed to close formatter", "error", err)
			}
		}()
	}

	journal, err := pkg.NewJournal[m.Trial](args.JournalDir)
	if err != nil {
		return fmt.Errorf("create journal: %w", err)
	}

	defer func() {
		if err := journal.Remove(); err != nil {
			slog.Warn("Failed to remove journal", "path", journal.Path(), "error", err)
		}
	}()

	if err := w.Start(ctx, controller.WithSearchMode(), controller.WithInterrupt(cancel)); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}
	defer w.Close(context.WithoutCancel(ctx))

	report, err := w.search(ctx, args, corpus, space, formatter, journal)
	if err != nil {
		return err
	}

	// The search may have been interrupted; persisting and displaying the
	// best result must still happen.
	outCtx := context.WithoutCancel(ctx)

	if err := w.SaveReport(outCtx, args.Output, report); err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	if args.StyleOutput != "" {
		if err := w.SaveConfiguration(outCtx, args.StyleOutput, report.Result.Configuration); err != nil {
			return fmt.Errorf("save configuration: %w", err)
		}
	}

	if err := w.DisplayReport(outCtx, report); err != nil {
		slog.Error("Failed to display report", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(outCtx)

	return nil
}

func (w *workflow) search(
	ctx context.Context,
	args InferArgs,
	corpus m.Corpus,
	space m.OptionSpace,
	formatter adapter.Formatter,
	journal pkg.Journal[m.Trial],
) (m.Report, error) {
	started := w.now()

	var deadline time.Time
	if args.Timeout > 0 {
		deadline = started.Add(args.Timeout)
	}

	w.DisplaySearchStart(ctx, controller.SearchInfo{
		Files:    corpus.Len(),
		Settings: len(space.Settings()),
		Presets:  len(space.Presets()),
		Threads:  args.Threads,
		Deadline: deadline,
	})

	var (
		stats      m.SearchStats
		journalErr error
	)

	observer := func(event m.SearchEvent) {
		w.DisplayEvent(ctx, event)

		switch event.Kind {
		case m.EventTrialEvaluated:
			if journalErr != nil {
				return
			}

			journalErr = journal.Append(m.Trial{
				Pass:     event.Pass,
				Setting:  event.Setting,
				Value:    event.Value,
				Total:    event.Score.Total,
				Rejected: event.Score.Rejected,
				Accepted: event.Accepted,
			})
		case m.EventFinished:
			stats = event.Stats
		}
	}

	engine := NewEngine(formatter,
		WithThreads(args.Threads),
		WithMaxPasses(args.MaxPasses),
		WithCostCacheSize(args.CacheSize),
		WithObserver(observer))

	result, err := engine.Search(ctx, corpus, space, deadline)
	if err != nil {
		return m.Report{}, fmt.Errorf("search: %w", err)
	}

	if journalErr != nil {
		slog.Error("Failed to record trials", "error", journalErr)
		return m.Report{}, fmt.Errorf("record trials: %w", journalErr)
	}

	changes, err := acceptedTrials(journal)
	if err != nil {
		return m.Report{}, err
	}

	slog.Info("Recorded trials", "count", journal.Len(), "accepted", len(changes))

	return m.Report{
		RunID:       uuid.NewString(),
		GeneratedAt: w.now(),
		Result:      result,
		Files:       corpus.Paths(),
		Changes:     changes,
		Stats:       stats,
	}, nil
}

func acceptedTrials(journal pkg.Journal[m.Trial]) ([]m.Trial, error) {
	var changes []m.Trial

	err := journal.Range(func(_ uint64, trial m.Trial) error {
		if trial.Accepted {
			changes = append(changes, trial)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}

	return changes, nil
}

func (w *workflow) loadSpace(ctx context.Context, path m.Path) (m.OptionSpace, error) {
	if path == "" {
		return w.Default(ctx)
	}

	return w.Load(ctx, path)
}

// loadCorpus reads every file under paths. A path ending in "/..." is walked
// recursively, a directory only one level deep.
func (w *workflow) loadCorpus(ctx context.Context, paths []m.Path, exclude []string, extensions []string) (m.Corpus, error) {
	excludes := make([]*regexp.Regexp, 0, len(exclude))

	for _, pattern := range exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return m.Corpus{}, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, re)
	}

	allowed := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		if ext = strings.TrimSpace(ext); ext != "" {
			allowed["."+strings.TrimPrefix(ext, ".")] = struct{}{}
		}
	}

	// Exclude patterns match either the full path or the path relative to
	// the scanned root, so "^gen/" works regardless of where root lives.
	keep := func(path, rel string) bool {
		if len(allowed) > 0 {
			if _, ok := allowed[filepath.Ext(path)]; !ok {
				return false
			}
		}

		for _, re := range excludes {
			if re.MatchString(path) || re.MatchString(rel) {
				return false
			}
		}

		return true
	}

	contents := make(map[m.Path]string)

	for _, root := range paths {
		if err := ctx.Err(); err != nil {
			return m.Corpus{}, err
		}

		if err := w.collect(root, keep, contents); err != nil {
			return m.Corpus{}, err
		}
	}

	if len(contents) == 0 {
		return m.Corpus{}, fmt.Errorf("%w in %v", ErrNoSources, paths)
	}

	slog.Debug("Loaded corpus", "files", len(contents))

	return m.NewCorpus(contents), nil
}

func (w *workflow) collect(root m.Path, keep func(path, rel string) bool, contents map[m.Path]string) error {
	rootStr := string(root)
	recursive := strings.HasSuffix(rootStr, recursiveSuffix)

	if recursive {
		rootStr = strings.TrimSuffix(rootStr, recursiveSuffix)
		if rootStr == "" {
			rootStr = "."
		}
	}

	info, err := w.FileInfo(m.Path(rootStr))
	if err != nil {
		return fmt.Errorf("stat %s: %w", rootStr, err)
	}

	if !info.IsDir() {
		return w.readSource(rootStr, contents)
	}

	return w.Walk(m.Path(rootStr), recursive, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		rel, err := w.RelPath(m.Path(rootStr), m.Path(path))
		if err != nil {
			return fmt.Errorf("relative path of %s: %w", path, err)
		}

		if !keep(path, filepath.ToSlash(string(rel))) {
			return nil
		}

		return w.readSource(path, contents)
	})
}

func (w *workflow) readSource(path string, contents map[m.Path]string) error {
	data, err := w.ReadFile(m.Path(path))
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	contents[m.Path(filepath.Clean(path))] = string(data)

	return nil
}

// Presets shows the option catalogue.
func (w *workflow) Presets(ctx context.Context, args PresetsArgs) error {
	space, err := w.loadSpace(ctx, args.OptionsFile)
	if err != nil {
		return fmt.Errorf("load options: %w", err)
	}

	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	if err := w.DisplayPresets(ctx, space); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// Cost shows the diff cost between an original file and a formatted one.
func (w *workflow) Cost(ctx context.Context, args CostArgs) error {
	original, err := w.ReadFile(args.Original)
	if err != nil {
		return fmt.Errorf("read %s: %w", args.Original, err)
	}

	formatted, err := w.ReadFile(args.Formatted)
	if err != nil {
		return fmt.Errorf("read %s: %w", args.Formatted, err)
	}

	cost, err := NewCostModel(1).Cost(string(original), m.Formatted(string(formatted)))
	if err != nil {
		return fmt.Errorf("cost: %w", err)
	}

	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	if err := w.DisplayCost(ctx, args.Original, args.Formatted, cost); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// View shows a previously saved report.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.LoadReport(ctx, args.Report)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	if err := w.DisplayReport(ctx, report); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return nil
}
