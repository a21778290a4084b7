package model

// ScoredConfiguration pairs a configuration with its aggregate score.
type ScoredConfiguration struct {
	Configuration Configuration
	Score         Score
	// Baseline is the name of the preset the configuration was derived from.
	Baseline string
	// Overrides counts settings that differ from the baseline preset.
	Overrides int
	// Discovery is the position at which the configuration was first evaluated.
	Discovery int
}

// Less orders by score, then by fewer overrides from the baseline, then by
// earlier discovery.
func (s ScoredConfiguration) Less(o ScoredConfiguration) bool {
	if c := s.Score.Compare(o.Score); c != 0 {
		return c < 0
	}

	if s.Overrides != o.Overrides {
		return s.Overrides < o.Overrides
	}

	return s.Discovery < o.Discovery
}
