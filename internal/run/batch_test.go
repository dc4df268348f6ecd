package run

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestBatchRun(t *testing.T) {
	batch := NewBatch(zap.NewNop(), 42, 4)
	problems := []Problem{
		{Initial: "abc", Modified: "abd", Target: "ijk", Iterations: 20},
	}

	results, err := batch.Run(context.Background(), problems)
	require.NoError(t, err)
	require.Len(t, results, 1)

	result := results[0]
	assert.Equal(t, 0, result.Failures)
	total := 0
	for answer, count := range result.Counts {
		total += count
		assert.Contains(t, []string{"ijl", "jjk"}, answer)
		assert.GreaterOrEqual(t, result.AverageTemp[answer], 0.0)
		assert.Equal(t, 60.0, result.AverageTicks[answer])
	}
	assert.Equal(t, 20, total)
}

func TestBatchCountsFailures(t *testing.T) {
	batch := NewBatch(zap.NewNop(), 1, 2)
	problems := []Problem{
		// the successor of z does not exist, so every trial fails
		{Initial: "abc", Modified: "abd", Target: "zzz", Iterations: 5},
	}

	results, err := batch.Run(context.Background(), problems)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 5, results[0].Failures)
	assert.Empty(t, results[0].Counts)
}

func TestBatchIsDeterministicPerSeed(t *testing.T) {
	problems := []Problem{
		{Initial: "abc", Modified: "abd", Target: "ijk", Iterations: 10},
	}
	first, err := NewBatch(zap.NewNop(), 7, 3).Run(context.Background(), problems)
	require.NoError(t, err)
	second, err := NewBatch(zap.NewNop(), 7, 1).Run(context.Background(), problems)
	require.NoError(t, err)
	assert.Equal(t, first[0].Counts, second[0].Counts)
}

func TestBatchRespectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	batch := NewBatch(zap.NewNop(), 1, 2)
	problems := []Problem{
		{Initial: "abc", Modified: "abd", Target: "ijk", Iterations: 5},
	}
	_, err := batch.Run(ctx, problems)
	assert.Error(t, err)
}
