package domain

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"stylefit.dev/pkg/stylefit/internal/adapter"
	m "stylefit.dev/pkg/stylefit/internal/model"
)

// Scorer evaluates one configuration against a whole corpus.
type Scorer interface {
	Score(ctx context.Context, corpus m.Corpus, cfg m.Configuration) (m.Score, error)
}

type scorer struct {
	adapter.Formatter
	CostModel
	threads int
}

// NewScorer creates a Scorer that formats and costs up to threads files at
// once. A non-positive threads uses the number of CPUs.
func NewScorer(formatter adapter.Formatter, costs CostModel, threads int) Scorer {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	return &scorer{Formatter: formatter, CostModel: costs, threads: threads}
}

// Score formats every file with cfg and returns the per-file costs in corpus
// order. Each worker writes only its own slot, so the result does not depend
// on completion order.
func (s *scorer) Score(ctx context.Context, corpus m.Corpus, cfg m.Configuration) (m.Score, error) {
	if err := ctx.Err(); err != nil {
		return m.Score{}, err
	}

	costs := make([]m.Cost, corpus.Len())

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.threads)

	for i := range costs {
		file := corpus.File(i)

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			result, err := s.Format(groupCtx, cfg, file.Content)
			if err != nil {
				return fmt.Errorf("format %s: %w", file.Path, err)
			}

			cost, err := s.Cost(file.Content, result)
			if err != nil {
				return fmt.Errorf("cost %s: %w", file.Path, err)
			}

			costs[i] = cost

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return m.Score{}, err
	}

	return m.NewScore(costs), nil
}
