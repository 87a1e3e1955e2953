package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreSaveGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "right")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Save(ctx, Result{Answer: "right", Rounds: 3, Solved: true}))
	require.NoError(t, s.Save(ctx, Result{Answer: "trace", Rounds: 1, Solved: true}))
	require.NoError(t, s.Save(ctx, Result{Answer: "right", Rounds: 4, Solved: true}))

	r, err := s.Get(ctx, "right")
	require.NoError(t, err)
	assert.Equal(t, 4, r.Rounds)

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "right", all[0].Answer)
	assert.Equal(t, "trace", all[1].Answer)
}

func TestMemoryStoreCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, NewMemoryStore().Save(ctx, Result{Answer: "right"}), context.Canceled)
}

func TestMemoryStoreConcurrent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Save(ctx, Result{Answer: fmt.Sprintf("w%04d", i), Rounds: i%6 + 1, Solved: true})
			_, _ = s.List(ctx)
		}(i)
	}
	wg.Wait()
	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 50)
}

func TestSummarize(t *testing.T) {
	s := Summarize([]Result{
		{Answer: "right", Rounds: 3, Solved: true, Elapsed: time.Millisecond},
		{Answer: "trace", Rounds: 1, Solved: true, Elapsed: time.Millisecond},
		{Answer: "light", Rounds: 3, Solved: true},
		{Answer: "sight", Solved: false},
		{Answer: "eight", Rounds: 5, Solved: true},
	})
	assert.Equal(t, 5, s.Games)
	assert.Equal(t, 4, s.Solved)
	assert.Equal(t, 1, s.Failed)
	assert.InDelta(t, 3.0, s.MeanRounds, 1e-9)
	assert.Equal(t, 5, s.MaxRounds)
	assert.Equal(t, []Bucket{{1, 1}, {3, 2}, {5, 1}}, s.Histogram)
	assert.Equal(t, []string{"sight"}, s.Failures)
	assert.Equal(t, 2*time.Millisecond, s.Elapsed)

	empty := Summarize(nil)
	assert.Zero(t, empty.Games)
	assert.Zero(t, empty.MeanRounds)
}
