package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	m "stylefit.dev/pkg/stylefit/internal/model"
)

// ReportStore persists inference reports as YAML.
type ReportStore interface {
	// SaveReport writes the full report, settings included.
	SaveReport(ctx context.Context, path m.Path, report m.Report) error

	// LoadReport reads a report written by SaveReport.
	LoadReport(ctx context.Context, path m.Path) (m.Report, error)

	// SaveConfiguration writes only the settings, typed, as a formatter
	// configuration file.
	SaveConfiguration(ctx context.Context, path m.Path, cfg m.Configuration) error
}

const rejectedCost = "rejected"

type reportFile struct {
	RunID       string         `yaml:"run_id"`
	GeneratedAt time.Time      `yaml:"generated_at"`
	Baseline    string         `yaml:"baseline"`
	Score       string         `yaml:"score"`
	Rejected    int            `yaml:"rejected_files"`
	Overrides   int            `yaml:"overrides"`
	Settings    map[string]any `yaml:"settings"`
	Files       []fileCost     `yaml:"files,omitempty"`
	Changes     []change       `yaml:"changes,omitempty"`
	Stats       statsEntry     `yaml:"stats"`
}

type fileCost struct {
	Path string `yaml:"path"`
	Cost string `yaml:"cost"`
}

type change struct {
	Pass    int    `yaml:"pass"`
	Setting string `yaml:"setting"`
	Value   string `yaml:"value"`
	Score   string `yaml:"score"`
}

type statsEntry struct {
	PresetsScored   int           `yaml:"presets_scored"`
	TrialsEvaluated int           `yaml:"trials_evaluated"`
	TrialsAccepted  int           `yaml:"trials_accepted"`
	Passes          int           `yaml:"passes"`
	DeadlineReached bool          `yaml:"deadline_reached"`
	Converged       bool          `yaml:"converged"`
	Elapsed         time.Duration `yaml:"elapsed"`
}

// LocalReportStore stores reports through a SourceFSAdapter.
type LocalReportStore struct {
	fs SourceFSAdapter
}

// NewLocalReportStore constructs a LocalReportStore.
func NewLocalReportStore(fsAdapter SourceFSAdapter) *LocalReportStore {
	return &LocalReportStore{fs: fsAdapter}
}

// SaveReport implements ReportStore.
func (s *LocalReportStore) SaveReport(ctx context.Context, path m.Path, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	result := report.Result
	file := reportFile{
		RunID:       report.RunID,
		GeneratedAt: report.GeneratedAt.UTC(),
		Baseline:    result.Baseline,
		Score:       formatCost(result.Score.Total),
		Rejected:    result.Score.Rejected,
		Overrides:   result.Overrides,
		Settings:    typedValues(result.Configuration),
		Stats: statsEntry{
			PresetsScored:   report.Stats.PresetsScored,
			TrialsEvaluated: report.Stats.TrialsEvaluated,
			TrialsAccepted:  report.Stats.TrialsAccepted,
			Passes:          report.Stats.Passes,
			DeadlineReached: report.Stats.DeadlineReached,
			Converged:       report.Stats.Converged,
			Elapsed:         report.Stats.Elapsed,
		},
	}

	if result.Score.Unknown {
		file.Score = "unknown"
	}

	for i, p := range report.Files {
		cost := rejectedCost
		if i < len(result.Score.Files) {
			cost = formatCost(result.Score.Files[i])
		}

		file.Files = append(file.Files, fileCost{Path: string(p), Cost: cost})
	}

	for _, t := range report.Changes {
		file.Changes = append(file.Changes, change{
			Pass:    t.Pass,
			Setting: t.Setting,
			Value:   t.Value,
			Score:   formatCost(t.Total),
		})
	}

	return s.write(path, file)
}

// SaveConfiguration implements ReportStore.
func (s *LocalReportStore) SaveConfiguration(ctx context.Context, path m.Path, cfg m.Configuration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.write(path, typedValues(cfg))
}

func (s *LocalReportStore) write(path m.Path, v any) error {
	content, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	if err := s.fs.WriteFile(path, content, 0o644); err != nil {
		slog.Error("Failed to write report", "path", path, "error", err)
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

// LoadReport implements ReportStore.
func (s *LocalReportStore) LoadReport(ctx context.Context, path m.Path) (m.Report, error) {
	if err := ctx.Err(); err != nil {
		return m.Report{}, err
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		slog.Error("Failed to read report", "path", path, "error", err)
		return m.Report{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var file reportFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return m.Report{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	report := m.Report{
		RunID:       file.RunID,
		GeneratedAt: file.GeneratedAt,
		Stats: m.SearchStats{
			PresetsScored:   file.Stats.PresetsScored,
			TrialsEvaluated: file.Stats.TrialsEvaluated,
			TrialsAccepted:  file.Stats.TrialsAccepted,
			Passes:          file.Stats.Passes,
			DeadlineReached: file.Stats.DeadlineReached,
			Converged:       file.Stats.Converged,
			Elapsed:         file.Stats.Elapsed,
		},
	}

	cfg := make(m.Configuration, len(file.Settings))
	for k, v := range file.Settings {
		cfg[k] = scalarString(v)
	}

	costs := make([]m.Cost, 0, len(file.Files))
	for _, f := range file.Files {
		cost, err := parseCost(f.Cost)
		if err != nil {
			return m.Report{}, fmt.Errorf("parsing %s: file %s: %w", path, f.Path, err)
		}

		report.Files = append(report.Files, m.Path(f.Path))
		costs = append(costs, cost)
	}

	score := m.NewScore(costs)
	if file.Score == "unknown" {
		score = m.UnknownScore()
	}

	report.Result = m.ScoredConfiguration{
		Configuration: cfg,
		Score:         score,
		Baseline:      file.Baseline,
		Overrides:     file.Overrides,
	}

	for _, c := range file.Changes {
		total, err := parseCost(c.Score)
		if err != nil {
			return m.Report{}, fmt.Errorf("parsing %s: change %s: %w", path, c.Setting, err)
		}

		report.Changes = append(report.Changes, m.Trial{
			Pass:     c.Pass,
			Setting:  c.Setting,
			Value:    c.Value,
			Total:    total,
			Accepted: true,
		})
	}

	return report, nil
}

func formatCost(c m.Cost) string {
	if c.IsReject() {
		return rejectedCost
	}

	return strconv.FormatUint(uint64(c), 10)
}

func parseCost(s string) (m.Cost, error) {
	if s == rejectedCost {
		return m.RejectCost, nil
	}

	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid cost %q", s)
	}

	return m.Cost(n), nil
}
