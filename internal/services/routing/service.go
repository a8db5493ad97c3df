package routing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"docket/internal/domain"
	"docket/internal/log"
	"docket/internal/metrics"
)

// ErrAllModelsFailed is returned when every model in a fallback chain failed.
var ErrAllModelsFailed = errors.New("all models failed")

// Config tunes the router.
type Config struct {
	// RatePerSecond limits attempts per model; zero or negative means unlimited.
	RatePerSecond float64
	// Burst is the limiter burst size; values below 1 are treated as 1.
	Burst int
}

// Service routes tasks to models. It is safe for concurrent use.
type Service struct {
	profiles map[domain.ModelID]domain.ModelProfile
	chains   map[domain.TaskType][]domain.ModelID
	results  domain.ResultLog
	limiters map[domain.ModelID]*rate.Limiter
	logger   zerolog.Logger
	now      func() time.Time

	mu  sync.Mutex // guards limiters
	cfg Config
}

// New returns a router with the built-in profiles and chains, logging
// attempts to results.
func New(results domain.ResultLog, cfg Config) *Service {
	if cfg.Burst < 1 {
		cfg.Burst = 1
	}
	return &Service{
		profiles: DefaultProfiles(),
		chains:   DefaultChains(),
		results:  results,
		limiters: make(map[domain.ModelID]*rate.Limiter),
		logger:   log.WithComponent("routing"),
		now:      time.Now,
		cfg:      cfg,
	}
}

// Profile returns the capability profile of model.
func (s *Service) Profile(model domain.ModelID) (domain.ModelProfile, bool) {
	p, ok := s.profiles[model]
	return p, ok
}

// Chain returns the fallback chain for task; unknown tasks fall back to GPT-4 alone.
func (s *Service) Chain(task domain.TaskType) []domain.ModelID {
	if chain, ok := s.chains[task]; ok {
		return append([]domain.ModelID(nil), chain...)
	}
	return []domain.ModelID{domain.GPT4}
}

// SelectModel picks the best model in task's chain for the given priority.
//
// Unknown task types are treated as legal analysis. When contextSize is
// positive, models with a smaller context window are skipped; if none
// remain, GPT-4 is returned. Ties keep chain order.
func (s *Service) SelectModel(
	task domain.TaskType,
	contextSize int,
	priority domain.Priority,
) domain.ModelID {
	chain, ok := s.chains[task]
	if !ok {
		chain = s.chains[domain.LegalAnalysis]
	}

	candidates := make([]domain.ModelProfile, 0, len(chain))
	for _, m := range chain {
		p := s.profiles[m]
		if contextSize > 0 && p.MaxContext < contextSize {
			continue
		}
		candidates = append(candidates, p)
	}
	if len(candidates) == 0 {
		return domain.GPT4
	}

	best := candidates[0]
	for _, p := range candidates[1:] {
		switch priority {
		case domain.PriorityCost:
			if p.CostPer1K < best.CostPer1K {
				best = p
			}
		case domain.PrioritySpeed:
			if p.AvgLatency < best.AvgLatency {
				best = p
			}
		default:
			if p.Reliability > best.Reliability {
				best = p
			}
		}
	}
	return best.Model
}

// Execute runs fn on each model of task's chain until one succeeds.
//
// Every attempt is recorded. If all attempts fail the last failed result is
// returned together with ErrAllModelsFailed. Cancelling ctx stops the walk
// and returns ctx's error.
func (s *Service) Execute(
	ctx context.Context,
	task domain.TaskType,
	fn domain.TaskFunc,
) (domain.TaskResult, error) {
	chain := s.Chain(task)

	var last domain.TaskResult
	for _, model := range chain {
		if err := s.limiter(model).Wait(ctx); err != nil {
			return last, err
		}

		result := s.attempt(ctx, task, model, fn)
		s.record(ctx, result)
		if result.Success {
			return result, nil
		}
		last = result

		if err := ctx.Err(); err != nil {
			return last, err
		}
		s.logger.Warn().
			Str("task", task.String()).
			Str("model", model.String()).
			Str("error", result.Error).
			Msg("model attempt failed, falling back")
	}
	return last, fmt.Errorf("%w for %s: %s", ErrAllModelsFailed, task, last.Error)
}

func (s *Service) attempt(
	ctx context.Context,
	task domain.TaskType,
	model domain.ModelID,
	fn domain.TaskFunc,
) (result domain.TaskResult) {
	start := s.now()
	result = domain.TaskResult{
		ID:         uuid.NewString(),
		Task:       task,
		Model:      model,
		StartedUTC: start.UTC().Unix(),
	}
	defer func() {
		if p := recover(); p != nil {
			result.Success = false
			result.Output = ""
			result.Error = fmt.Sprintf("task panicked: %v", p)
		}
		result.Duration = s.now().Sub(start)
	}()

	out, err := fn(ctx, model)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Success = true
	result.Output = out
	return result
}

func (s *Service) record(ctx context.Context, r domain.TaskResult) {
	outcome := metrics.OutcomeSuccess
	if !r.Success {
		outcome = metrics.OutcomeFailure
	}
	metrics.RoutingAttemptsTotal.WithLabelValues(r.Task.String(), r.Model.String(), outcome).Inc()
	metrics.RoutingAttemptSeconds.WithLabelValues(r.Model.String()).Observe(r.Duration.Seconds())

	// The log write must survive a cancelled task context.
	if err := s.results.AppendResult(context.WithoutCancel(ctx), r); err != nil {
		s.logger.Error().Err(err).Str("result_id", r.ID).Msg("recording task result")
	}
}

func (s *Service) limiter(model domain.ModelID) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.limiters[model]
	if !ok {
		limit := rate.Inf
		if s.cfg.RatePerSecond > 0 {
			limit = rate.Limit(s.cfg.RatePerSecond)
		}
		l = rate.NewLimiter(limit, s.cfg.Burst)
		s.limiters[model] = l
	}
	return l
}

// Stats summarises the performance log. An empty log yields zero stats.
func (s *Service) Stats(ctx context.Context) (domain.RouterStats, error) {
	results, err := s.results.ListResults(ctx)
	if err != nil {
		return domain.RouterStats{}, err
	}
	stats := domain.RouterStats{ModelUsage: map[domain.ModelID]int{}}
	if len(results) == 0 {
		return stats, nil
	}

	var ok int
	var total time.Duration
	for _, r := range results {
		if r.Success {
			ok++
		}
		stats.ModelUsage[r.Model]++
		total += r.Duration
	}
	stats.TotalTasks = len(results)
	stats.SuccessRate = float64(ok) / float64(len(results))
	stats.AvgDuration = total / time.Duration(len(results))
	return stats, nil
}

// Compile-time assertion that Service implements domain.RoutingService.
var _ domain.RoutingService = (*Service)(nil)
