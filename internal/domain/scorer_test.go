package domain_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "stylefit.dev/pkg/stylefit/internal/adapter/mocks"
	"stylefit.dev/pkg/stylefit/internal/domain"
	m "stylefit.dev/pkg/stylefit/internal/model"
)

func TestScorer_Score(t *testing.T) {
	ctx := context.Background()
	formatter := adaptermocks.NewMockFormatter(t)

	corpus := m.NewCorpus(map[m.Path]string{
		"b.c": "bb",
		"a.c": "a",
		"c.c": "bad",
	})
	cfg := m.Configuration{"indent_width": "2"}

	formatter.EXPECT().Format(mock.Anything, cfg, mock.Anything).RunAndReturn(
		func(_ context.Context, _ m.Configuration, text string) (m.FormatResult, error) {
			if text == "bad" {
				return m.Rejected("syntax error"), nil
			}

			return m.Formatted(strings.ToUpper(text)), nil
		})

	scorer := domain.NewScorer(formatter, domain.NewCostModel(0), 2)

	score, err := scorer.Score(ctx, corpus, cfg)
	require.NoError(t, err)

	assert.Equal(t, []m.Cost{1, 2, m.RejectCost}, score.Files)
	assert.Equal(t, m.RejectCost, score.Total)
	assert.Equal(t, m.Cost(3), score.Accepted)
	assert.Equal(t, 1, score.Rejected)
}

func TestScorer_FormatterError(t *testing.T) {
	formatter := adaptermocks.NewMockFormatter(t)
	boom := errors.New("formatter crashed")

	formatter.EXPECT().Format(mock.Anything, mock.Anything, mock.Anything).Return(m.FormatResult{}, boom)

	scorer := domain.NewScorer(formatter, domain.NewCostModel(0), 1)

	_, err := scorer.Score(context.Background(), m.NewCorpus(map[m.Path]string{"a.c": "a"}), m.Configuration{})
	require.ErrorIs(t, err, boom)
}

func TestScorer_CancelledContext(t *testing.T) {
	formatter := adaptermocks.NewMockFormatter(t)
	scorer := domain.NewScorer(formatter, domain.NewCostModel(0), 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := scorer.Score(ctx, m.NewCorpus(map[m.Path]string{"a.c": "a"}), m.Configuration{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestScorer_EmptyCorpus(t *testing.T) {
	formatter := adaptermocks.NewMockFormatter(t)
	scorer := domain.NewScorer(formatter, domain.NewCostModel(0), 0)

	score, err := scorer.Score(context.Background(), m.NewCorpus(nil), m.Configuration{})
	require.NoError(t, err)
	assert.Zero(t, score.Total)
	assert.False(t, score.Unknown)
}

// brokenDiffCosts reports a diff that fails to reconstruct for every
// accepted text.
type brokenDiffCosts struct {
	domain.CostModel
}

func (brokenDiffCosts) Cost(_ string, formatted m.FormatResult) (m.Cost, error) {
	if formatted.Rejected {
		return m.RejectCost, nil
	}

	return 0, fmt.Errorf("%w: 1 lines expected, 0 produced", domain.ErrDiffReconstruction)
}

func TestScorer_DiffReconstructionError(t *testing.T) {
	formatter := adaptermocks.NewMockFormatter(t)
	formatter.EXPECT().Format(mock.Anything, mock.Anything, mock.Anything).Return(m.Formatted("a"), nil)

	scorer := domain.NewScorer(formatter, brokenDiffCosts{CostModel: domain.NewCostModel(0)}, 2)

	_, err := scorer.Score(context.Background(), m.NewCorpus(map[m.Path]string{"a.c": "a", "b.c": "b"}), m.Configuration{})
	require.ErrorIs(t, err, domain.ErrDiffReconstruction)
}

func TestEngine_DiffReconstructionAborts(t *testing.T) {
	formatter := adaptermocks.NewMockFormatter(t)
	formatter.EXPECT().Format(mock.Anything, mock.Anything, mock.Anything).Return(m.Formatted("a"), nil)

	engine := domain.NewEngine(formatter, domain.WithCostModel(func(size int) domain.CostModel {
		return brokenDiffCosts{CostModel: domain.NewCostModel(size)}
	}))

	space := mustSpace(t, nil, []m.Preset{{Name: "only"}})

	_, err := engine.Search(context.Background(), m.NewCorpus(map[m.Path]string{"a.c": "a"}), space, farDeadline())
	require.ErrorIs(t, err, domain.ErrDiffReconstruction)
}
