package run

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"copycat/internal/statistics"
)

// Problem is one puzzle to solve repeatedly: initial:modified::target:?
type Problem struct {
	Initial    string `yaml:"initial"`
	Modified   string `yaml:"modified"`
	Target     string `yaml:"target"`
	Iterations int    `yaml:"iterations"`
}

// BatchResult aggregates a problem's trials into an answer distribution
// with per-answer average temperature and model time.
type BatchResult struct {
	Problem      Problem
	Counts       statistics.Counts
	AverageTemp  map[string]float64
	AverageTicks map[string]float64
	Failures     int
}

type answerTotals struct {
	count     int
	sumTemp   float64
	sumTicks  float64
}

// Batch runs trials of one or more problems across worker goroutines.
type Batch struct {
	logger  *zap.Logger
	seed    int64
	workers int
}

// NewBatch builds a batch runner. Workers below 1 are raised to 1.
func NewBatch(logger *zap.Logger, seed int64, workers int) *Batch {
	if workers < 1 {
		workers = 1
	}
	return &Batch{
		logger:  logger,
		seed:    seed,
		workers: workers,
	}
}

// Run solves every problem for its configured number of iterations, one
// session per trial, and aggregates the answers. Trials that cannot
// produce an answer are counted as failures, not errors; only a cancelled
// context aborts the batch.
func (b *Batch) Run(ctx context.Context, problems []Problem) ([]BatchResult, error) {
	results := make([]BatchResult, len(problems))
	for i, problem := range problems {
		result, err := b.runProblem(ctx, problem)
		if err != nil {
			return nil, err
		}
		results[i] = result
	}
	return results, nil
}

func (b *Batch) runProblem(ctx context.Context, problem Problem) (BatchResult, error) {
	batchID := uuid.NewString()
	logger := b.logger.With(
		zap.String("batch_id", batchID),
		zap.String("initial", problem.Initial),
		zap.String("modified", problem.Modified),
		zap.String("target", problem.Target),
	)
	logger.Info("starting batch", zap.Int("iterations", problem.Iterations))

	var mu sync.Mutex
	totals := make(map[string]*answerTotals)
	failures := 0

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(b.workers)
	for i := 0; i < problem.Iterations; i++ {
		seed := b.seed + int64(i)
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			trialID := uuid.NewString()
			session := NewSession(seed)
			answer, err := session.RunTrial(problem.Initial, problem.Modified, problem.Target)
			if err != nil {
				logger.Debug("trial failed",
					zap.String("trial_id", trialID),
					zap.Error(err))
				mu.Lock()
				failures++
				mu.Unlock()
				return nil
			}
			logger.Debug("trial complete",
				zap.String("trial_id", trialID),
				zap.String("answer", answer.Text),
				zap.Float64("temperature", answer.Temperature),
				zap.Int("ticks", answer.Ticks))
			mu.Lock()
			t := totals[answer.Text]
			if t == nil {
				t = &answerTotals{}
				totals[answer.Text] = t
			}
			t.count++
			t.sumTemp += answer.Temperature
			t.sumTicks += float64(answer.Ticks)
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return BatchResult{}, err
	}

	result := BatchResult{
		Problem:      problem,
		Counts:       make(statistics.Counts),
		AverageTemp:  make(map[string]float64),
		AverageTicks: make(map[string]float64),
		Failures:     failures,
	}
	for answer, t := range totals {
		result.Counts[answer] = t.count
		result.AverageTemp[answer] = t.sumTemp / float64(t.count)
		result.AverageTicks[answer] = t.sumTicks / float64(t.count)
	}
	logger.Info("batch finished",
		zap.Int("answers", len(result.Counts)),
		zap.Int("failures", failures))
	return result, nil
}
