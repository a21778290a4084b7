package model

import "time"

// EventKind identifies a search progress event.
type EventKind int

const (
	// EventPresetScored is emitted after a baseline preset was scored.
	EventPresetScored EventKind = iota
	// EventTrialEvaluated is emitted after a single-setting trial was scored.
	EventTrialEvaluated
	// EventPassCompleted is emitted at the end of every local search pass.
	EventPassCompleted
	// EventDeadlineReached is emitted once when the search stops early.
	EventDeadlineReached
	// EventFinished is emitted last and carries the run statistics.
	EventFinished
)

func (k EventKind) String() string {
	switch k {
	case EventPresetScored:
		return "preset"
	case EventTrialEvaluated:
		return "trial"
	case EventPassCompleted:
		return "pass"
	case EventDeadlineReached:
		return "deadline"
	case EventFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// SearchEvent reports search progress to an observer.
type SearchEvent struct {
	Kind     EventKind
	Preset   string
	Setting  string
	Value    string
	Score    Score
	Best     Score
	Accepted bool
	Pass     int
	Stats    SearchStats
}

// SearchStats summarizes one search run.
type SearchStats struct {
	PresetsScored   int
	TrialsEvaluated int
	TrialsAccepted  int
	Passes          int
	EvaluationHits  int
	CostCacheHits   int64
	CostCacheMisses int64
	DeadlineReached bool
	Converged       bool
	Elapsed         time.Duration
}

// Trial is one recorded single-setting change attempted by the search.
type Trial struct {
	Pass     int
	Setting  string
	Value    string
	Total    Cost
	Rejected int
	Accepted bool
}

// Report is the outcome of an inference run as shown to users and persisted.
type Report struct {
	RunID       string
	GeneratedAt time.Time
	Result      ScoredConfiguration
	Files       []Path
	Changes     []Trial
	Stats       SearchStats
}
