package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/pmezard/go-difflib/difflib"

	m "stylefit.dev/pkg/stylefit/internal/model"
	pkg "stylefit.dev/pkg/stylefit/pkg"
)

// ErrDiffReconstruction means a computed line diff did not reproduce the
// formatted text. It indicates a bug in the cost model and is never recovered.
var ErrDiffReconstruction = errors.New("diff does not reconstruct the formatted text")

// DefaultCostCacheSize bounds the number of memoized (original, formatted) pairs.
const DefaultCostCacheSize = 100_000

// CostModel scores how much a formatter changed a text.
type CostModel interface {
	// Cost returns the distance between original and the formatter output.
	// A rejection costs m.RejectCost.
	Cost(original string, formatted m.FormatResult) (m.Cost, error)
	// Aggregate sums per-file costs, saturating at m.RejectCost.
	Aggregate(costs []m.Cost) m.Cost
	// CacheStats reports memoization counters.
	CacheStats() pkg.CacheStats
}

type costKey struct {
	original  string
	formatted string
}

type costModel struct {
	cache *pkg.LRU[costKey, m.Cost]
}

// NewCostModel creates a CostModel memoizing up to cacheSize pairs.
// A non-positive size uses DefaultCostCacheSize.
func NewCostModel(cacheSize int) CostModel {
	if cacheSize <= 0 {
		cacheSize = DefaultCostCacheSize
	}

	return &costModel{cache: pkg.NewLRU[costKey, m.Cost](cacheSize)}
}

func (cm *costModel) Cost(original string, formatted m.FormatResult) (m.Cost, error) {
	if formatted.Rejected {
		return m.RejectCost, nil
	}

	if original == formatted.Text {
		return 0, nil
	}

	key := costKey{original: original, formatted: formatted.Text}
	if cost, ok := cm.cache.Get(key); ok {
		return cost, nil
	}

	cost, err := diffCost(original, formatted.Text)
	if err != nil {
		return 0, err
	}

	cm.cache.Set(key, cost)

	return cost, nil
}

func (cm *costModel) Aggregate(costs []m.Cost) m.Cost {
	return m.Aggregate(costs)
}

func (cm *costModel) CacheStats() pkg.CacheStats {
	return cm.cache.Stats()
}

var lineBreaks = regexp.MustCompile(`[\r\n]+`)

// splitLines splits on any run of line break characters. Trailing empty
// fields are dropped, so blank lines and line endings never cost anything.
func splitLines(text string) []string {
	lines := lineBreaks.Split(text, -1)
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

func diffCost(original, formatted string) (m.Cost, error) {
	source := splitLines(original)
	target := splitLines(formatted)

	matcher := difflib.NewMatcherWithJunk(source, target, false, nil)
	opCodes := matcher.GetOpCodes()

	if patched := applyOpCodes(source, target, opCodes); !slices.Equal(patched, target) {
		slog.Error("line diff failed to reconstruct formatted text",
			"sourceLines", len(source), "targetLines", len(target), "patchedLines", len(patched))

		return 0, fmt.Errorf("%w: %d lines expected, %d produced", ErrDiffReconstruction, len(target), len(patched))
	}

	total := m.Cost(0)

	for _, op := range opCodes {
		if op.Tag == 'e' {
			continue
		}

		total = total.Add(hunkCost(source[op.I1:op.I2], target[op.J1:op.J2]))
	}

	return total, nil
}

// applyOpCodes replays the diff over source: equal runs come from source,
// everything else from target.
func applyOpCodes(source, target []string, opCodes []difflib.OpCode) []string {
	patched := make([]string, 0, len(target))

	for _, op := range opCodes {
		switch op.Tag {
		case 'e':
			patched = append(patched, source[op.I1:op.I2]...)
		case 'r', 'i':
			patched = append(patched, target[op.J1:op.J2]...)
		case 'd':
		}
	}

	return patched
}

func hunkCost(from, to []string) m.Cost {
	if len(from) == 1 && len(to) == 1 {
		return m.Cost(levenshtein.ComputeDistance(from[0], to[0]))
	}

	return m.Cost(max(runeCount(from), runeCount(to)))
}

func runeCount(lines []string) int {
	n := 0
	for _, line := range lines {
		n += utf8.RuneCountInString(line)
	}

	return n
}
