package domain

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"stylefit.dev/pkg/stylefit/internal/adapter"
	m "stylefit.dev/pkg/stylefit/internal/model"
	pkg "stylefit.dev/pkg/stylefit/pkg"
)

// DefaultPresetName names the empty configuration used when the option space
// declares no preset.
const DefaultPresetName = "default"

// Search defaults.
const (
	DefaultMaxPasses           = 5
	DefaultEvaluationCacheSize = 4096
)

// Observer receives search progress events. It is called synchronously from
// the search loop.
type Observer func(m.SearchEvent)

// Engine infers the configuration that best reproduces a corpus.
type Engine interface {
	// Search scores the presets, then improves the best one setting by
	// setting until convergence or until deadline. A zero deadline never
	// expires. Cancelling ctx stops the search like an expired deadline.
	// The error is non-nil only when the formatter fails or the cost model
	// detects a broken diff.
	Search(ctx context.Context, corpus m.Corpus, space m.OptionSpace, deadline time.Time) (m.ScoredConfiguration, error)
}

// EngineOption configures an Engine.
type EngineOption func(*engine)

// WithThreads bounds the number of files scored concurrently.
func WithThreads(threads int) EngineOption {
	return func(e *engine) {
		e.threads = threads
	}
}

// WithMaxPasses bounds the number of local search passes. Zero or less
// repeats passes until one yields no improvement.
func WithMaxPasses(passes int) EngineOption {
	return func(e *engine) {
		e.maxPasses = passes
	}
}

// WithCostCacheSize bounds the per-run diff cost cache.
func WithCostCacheSize(size int) EngineOption {
	return func(e *engine) {
		e.costCacheSize = size
	}
}

// WithEvaluationCacheSize bounds the per-run cache of scored configurations.
func WithEvaluationCacheSize(size int) EngineOption {
	return func(e *engine) {
		e.evaluationCacheSize = size
	}
}

// WithCostModel replaces the constructor of the per-run cost model. It is
// called once per Search with the configured cost cache size.
func WithCostModel(newCostModel func(cacheSize int) CostModel) EngineOption {
	return func(e *engine) {
		e.newCostModel = newCostModel
	}
}

// WithClock replaces time.Now for deadline checks.
func WithClock(now func() time.Time) EngineOption {
	return func(e *engine) {
		e.now = now
	}
}

// WithObserver registers a progress observer.
func WithObserver(observer Observer) EngineOption {
	return func(e *engine) {
		e.observer = observer
	}
}

type engine struct {
	formatter           adapter.Formatter
	threads             int
	maxPasses           int
	costCacheSize       int
	evaluationCacheSize int
	newCostModel        func(cacheSize int) CostModel
	now                 func() time.Time
	observer            Observer
}

// NewEngine creates an Engine that queries formatter.
func NewEngine(formatter adapter.Formatter, opts ...EngineOption) Engine {
	e := &engine{
		formatter:           formatter,
		maxPasses:           DefaultMaxPasses,
		costCacheSize:       DefaultCostCacheSize,
		evaluationCacheSize: DefaultEvaluationCacheSize,
		newCostModel:        NewCostModel,
		now:                 time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// searchRun holds the state of one Search call. Caches never outlive it.
type searchRun struct {
	*engine
	Scorer

	corpus      m.Corpus
	space       m.OptionSpace
	deadline    time.Time
	costs       CostModel
	evaluations *pkg.LRU[string, m.Score]
	discovered  int
	started     time.Time
	stats       m.SearchStats
}

func (e *engine) Search(ctx context.Context, corpus m.Corpus, space m.OptionSpace, deadline time.Time) (m.ScoredConfiguration, error) {
	costs := e.newCostModel(e.costCacheSize)
	run := &searchRun{
		engine:      e,
		Scorer:      NewScorer(e.formatter, costs, e.threads),
		corpus:      corpus,
		space:       space,
		deadline:    deadline,
		costs:       costs,
		evaluations: pkg.NewLRU[string, m.Score](e.evaluationCacheSize),
		started:     e.now(),
	}

	slog.Info("Starting style search", "files", corpus.Len(), "settings", len(space.Settings()), "presets", len(space.Presets()), "deadline", deadline)

	best, err := run.search(ctx)
	if err != nil {
		slog.Error("Style search failed", "error", err)
		return m.ScoredConfiguration{}, err
	}

	run.finish(best)

	return best, nil
}

func (r *searchRun) search(ctx context.Context) (m.ScoredConfiguration, error) {
	presets := r.space.Presets()
	if len(presets) == 0 {
		presets = []m.Preset{{Name: DefaultPresetName, Settings: m.Configuration{}}}
	}

	if r.corpus.Empty() {
		r.stats.Converged = true

		return m.ScoredConfiguration{
			Configuration: presets[0].Settings,
			Score:         m.NewScore(nil),
			Baseline:      presets[0].Name,
		}, nil
	}

	best, baseline, ok, err := r.selectBaseline(ctx, presets)
	if err != nil || !ok {
		return best, err
	}

	for pass := 1; r.maxPasses <= 0 || pass <= r.maxPasses; pass++ {
		improved, done, err := r.improve(ctx, pass, baseline, &best)
		if err != nil {
			return m.ScoredConfiguration{}, err
		}

		if done {
			return best, nil
		}

		r.stats.Passes = pass
		r.emit(m.SearchEvent{Kind: m.EventPassCompleted, Pass: pass, Best: best.Score})

		if !improved {
			r.stats.Converged = true
			break
		}
	}

	return best, nil
}

// selectBaseline scores every preset and returns the best one. ok is false
// when the search must stop after this phase.
func (r *searchRun) selectBaseline(ctx context.Context, presets []m.Preset) (m.ScoredConfiguration, m.Preset, bool, error) {
	baseline := presets[0]
	best := m.ScoredConfiguration{
		Configuration: baseline.Settings,
		Score:         m.UnknownScore(),
		Baseline:      baseline.Name,
	}

	for _, preset := range presets {
		if r.expired(ctx) {
			r.stop()
			return best, baseline, false, nil
		}

		score, ok, err := r.evaluate(ctx, preset.Settings)
		if err != nil {
			return m.ScoredConfiguration{}, baseline, false, err
		}

		if !ok {
			r.stop()
			return best, baseline, false, nil
		}

		r.stats.PresetsScored++

		candidate := m.ScoredConfiguration{
			Configuration: preset.Settings,
			Score:         score,
			Baseline:      preset.Name,
			Discovery:     r.next(),
		}

		r.emit(m.SearchEvent{Kind: m.EventPresetScored, Preset: preset.Name, Score: score, Best: best.Score})

		slog.Debug("Scored preset", "preset", preset.Name, "score", score.String())

		if candidate.Less(best) {
			best = candidate
			baseline = preset
		}
	}

	slog.Info("Selected baseline", "preset", baseline.Name, "score", best.Score.String())

	return best, baseline, true, nil
}

// improve runs one greedy pass over every unpinned setting. Any strictly
// better trial is adopted at once. done is true when the deadline stopped
// the pass.
func (r *searchRun) improve(ctx context.Context, pass int, baseline m.Preset, best *m.ScoredConfiguration) (bool, bool, error) {
	improved := false

	for _, setting := range r.space.Settings() {
		if baseline.IsPinned(setting) {
			continue
		}

		for _, value := range r.space.Domain(setting) {
			if current, ok := best.Configuration.Get(setting); ok && current == value {
				continue
			}

			if r.expired(ctx) {
				r.stop()
				return improved, true, nil
			}

			trial := best.Configuration.With(setting, value)

			score, ok, err := r.evaluate(ctx, trial)
			if err != nil {
				return improved, true, err
			}

			if !ok {
				r.stop()
				return improved, true, nil
			}

			r.stats.TrialsEvaluated++

			accepted := score.Better(best.Score)
			r.emit(m.SearchEvent{
				Kind:     m.EventTrialEvaluated,
				Preset:   baseline.Name,
				Setting:  setting,
				Value:    value,
				Score:    score,
				Best:     best.Score,
				Accepted: accepted,
				Pass:     pass,
			})

			discovery := r.next()
			if !accepted {
				continue
			}

			slog.Debug("Adopted trial", "setting", setting, "value", value, "score", score.String(), "pass", pass)

			*best = m.ScoredConfiguration{
				Configuration: trial,
				Score:         score,
				Baseline:      baseline.Name,
				Overrides:     trial.Overrides(baseline.Settings),
				Discovery:     discovery,
			}
			r.stats.TrialsAccepted++
			improved = true
		}
	}

	return improved, false, nil
}

// evaluate scores cfg, reusing earlier evaluations of the same
// configuration. ok is false when the evaluation was interrupted by
// cancellation and has been discarded.
func (r *searchRun) evaluate(ctx context.Context, cfg m.Configuration) (m.Score, bool, error) {
	key := cfg.Key()
	if score, ok := r.evaluations.Get(key); ok {
		r.stats.EvaluationHits++
		return score, true, nil
	}

	score, err := r.Score(ctx, r.corpus, cfg)
	if err != nil {
		if ctx.Err() != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
			slog.Warn("Discarding interrupted evaluation", "error", err)
			return m.Score{}, false, nil
		}

		return m.Score{}, false, err
	}

	r.evaluations.Set(key, score)

	return score, true, nil
}

func (r *searchRun) expired(ctx context.Context) bool {
	if ctx.Err() != nil {
		return true
	}

	return !r.deadline.IsZero() && !r.now().Before(r.deadline)
}

func (r *searchRun) stop() {
	if r.stats.DeadlineReached {
		return
	}

	r.stats.DeadlineReached = true
	slog.Warn("Search deadline reached", "elapsed", r.now().Sub(r.started))
	r.emit(m.SearchEvent{Kind: m.EventDeadlineReached})
}

func (r *searchRun) next() int {
	n := r.discovered
	r.discovered++

	return n
}

func (r *searchRun) finish(best m.ScoredConfiguration) {
	cacheStats := r.costs.CacheStats()
	r.stats.CostCacheHits = cacheStats.Hits
	r.stats.CostCacheMisses = cacheStats.Misses
	r.stats.Elapsed = r.now().Sub(r.started)

	slog.Info("Style search finished",
		"baseline", best.Baseline,
		"score", best.Score.String(),
		"overrides", best.Overrides,
		"trials", r.stats.TrialsEvaluated,
		"accepted", r.stats.TrialsAccepted,
		"elapsed", r.stats.Elapsed)

	r.emit(m.SearchEvent{Kind: m.EventFinished, Best: best.Score, Stats: r.stats})
}

func (r *searchRun) emit(event m.SearchEvent) {
	if r.observer != nil {
		r.observer(event)
	}
}
