package routing_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docket/internal/domain"
	"docket/internal/services/routing"
	"docket/internal/store"
)

func newRouter() (*routing.Service, *store.MemoryResultLog) {
	results := store.NewMemoryResultLog()
	return routing.New(results, routing.Config{}), results
}

func TestSelectModel_ByPriority(t *testing.T) {
	r, _ := newRouter()

	cases := []struct {
		task     domain.TaskType
		ctxSize  int
		priority domain.Priority
		want     domain.ModelID
	}{
		{domain.LegalResearch, 0, domain.PriorityCost, domain.Perplexity},
		{domain.LegalResearch, 0, domain.PriorityQuality, domain.GPT4},
		{domain.LegalResearch, 0, domain.PrioritySpeed, domain.Perplexity},
		{domain.DocumentGeneration, 150000, domain.PriorityQuality, domain.Claude3Opus},
		{domain.DocumentGeneration, 0, domain.PriorityQuality, domain.GPT4},
		{domain.EvidenceReview, 0, domain.PriorityCost, domain.LocalLlama},
		{domain.CitationChecking, 0, domain.PrioritySpeed, domain.Claude3Sonnet},
		{domain.LegalAnalysis, 500000, domain.PriorityQuality, domain.GPT4},
		{"unheard_of", 0, domain.PriorityCost, domain.Claude3Sonnet},
		{domain.LegalAnalysis, 0, "", domain.GPT4},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s/%d/%s", tc.task, tc.ctxSize, tc.priority), func(t *testing.T) {
			assert.Equal(t, tc.want, r.SelectModel(tc.task, tc.ctxSize, tc.priority))
		})
	}
}

func TestExecute_FirstModelSucceeds(t *testing.T) {
	r, results := newRouter()

	res, err := r.Execute(context.Background(), domain.LegalAnalysis,
		func(_ context.Context, m domain.ModelID) (string, error) {
			return "response from " + m.String(), nil
		})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, domain.GPT4, res.Model)
	assert.Equal(t, "response from gpt-4", res.Output)
	assert.NotEmpty(t, res.ID)

	logged, err := results.ListResults(context.Background())
	require.NoError(t, err)
	assert.Len(t, logged, 1)
}

func TestExecute_FallsBack(t *testing.T) {
	r, results := newRouter()

	var tried []domain.ModelID
	res, err := r.Execute(context.Background(), domain.EvidenceReview,
		func(_ context.Context, m domain.ModelID) (string, error) {
			tried = append(tried, m)
			if m == domain.LocalLlama {
				return "ok", nil
			}
			return "", errors.New("rate limited")
		})
	require.NoError(t, err)
	assert.Equal(t, domain.LocalLlama, res.Model)
	assert.Equal(t, []domain.ModelID{domain.Claude3Sonnet, domain.GPT4, domain.LocalLlama}, tried)

	stats, err := r.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalTasks)
	assert.InDelta(t, 1.0/3.0, stats.SuccessRate, 1e-9)
	assert.Equal(t, map[domain.ModelID]int{
		domain.Claude3Sonnet: 1,
		domain.GPT4:          1,
		domain.LocalLlama:    1,
	}, stats.ModelUsage)

	logged, _ := results.ListResults(context.Background())
	assert.Equal(t, "rate limited", logged[0].Error)
}

func TestExecute_AllFail(t *testing.T) {
	r, _ := newRouter()

	res, err := r.Execute(context.Background(), domain.LegalResearch,
		func(_ context.Context, m domain.ModelID) (string, error) {
			return "", fmt.Errorf("%s down", m)
		})
	require.ErrorIs(t, err, routing.ErrAllModelsFailed)
	assert.False(t, res.Success)
	assert.Equal(t, domain.GPT4, res.Model)
	assert.Equal(t, "gpt-4 down", res.Error)
}

func TestExecute_UnknownTaskUsesGPT4(t *testing.T) {
	r, _ := newRouter()
	res, err := r.Execute(context.Background(), "mystery",
		func(_ context.Context, m domain.ModelID) (string, error) { return "x", nil })
	require.NoError(t, err)
	assert.Equal(t, domain.GPT4, res.Model)
}

func TestExecute_PanicBecomesFailure(t *testing.T) {
	r, _ := newRouter()
	calls := 0
	res, err := r.Execute(context.Background(), domain.CitationChecking,
		func(_ context.Context, m domain.ModelID) (string, error) {
			calls++
			if calls == 1 {
				panic("boom")
			}
			return "recovered", nil
		})
	require.NoError(t, err)
	assert.Equal(t, domain.LocalLlama, res.Model)
	assert.Equal(t, 2, calls)
}

func TestExecute_StopsOnCancel(t *testing.T) {
	r, _ := newRouter()
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	_, err := r.Execute(ctx, domain.LegalAnalysis,
		func(_ context.Context, m domain.ModelID) (string, error) {
			calls++
			cancel()
			return "", errors.New("interrupted")
		})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestStats_Empty(t *testing.T) {
	r, _ := newRouter()
	stats, err := r.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalTasks)
	assert.Zero(t, stats.SuccessRate)
	assert.Empty(t, stats.ModelUsage)
}

func TestExecute_Concurrent(t *testing.T) {
	results := store.NewMemoryResultLog()
	r := routing.New(results, routing.Config{RatePerSecond: 1000, Burst: 8})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Execute(context.Background(), domain.LegalResearch,
				func(_ context.Context, m domain.ModelID) (string, error) { return "ok", nil })
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stats, err := r.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 16, stats.TotalTasks)
	assert.Equal(t, 16, stats.ModelUsage[domain.Perplexity])
}
