package routing

import (
	"time"

	"docket/internal/domain"
)

// DefaultProfiles returns the built-in model capability profiles.
func DefaultProfiles() map[domain.ModelID]domain.ModelProfile {
	return map[domain.ModelID]domain.ModelProfile{
		domain.GPT4: {
			Model:       domain.GPT4,
			Strengths:   []domain.TaskType{domain.LegalAnalysis, domain.DocumentGeneration, domain.CitationChecking},
			MaxContext:  128000,
			CostPer1K:   0.03,
			AvgLatency:  2500 * time.Millisecond,
			Reliability: 0.95,
		},
		domain.Claude3Opus: {
			Model:       domain.Claude3Opus,
			Strengths:   []domain.TaskType{domain.LegalResearch, domain.DocumentGeneration, domain.LegalAnalysis},
			MaxContext:  200000,
			CostPer1K:   0.015,
			AvgLatency:  3 * time.Second,
			Reliability: 0.93,
		},
		domain.Claude3Sonnet: {
			Model:       domain.Claude3Sonnet,
			Strengths:   []domain.TaskType{domain.EvidenceReview, domain.CitationChecking},
			MaxContext:  200000,
			CostPer1K:   0.003,
			AvgLatency:  1500 * time.Millisecond,
			Reliability: 0.90,
		},
		domain.Perplexity: {
			Model:       domain.Perplexity,
			Strengths:   []domain.TaskType{domain.LegalResearch},
			MaxContext:  16000,
			CostPer1K:   0.001,
			AvgLatency:  2 * time.Second,
			Reliability: 0.88,
		},
		domain.LocalLlama: {
			Model:       domain.LocalLlama,
			Strengths:   []domain.TaskType{domain.CitationChecking, domain.EvidenceReview},
			MaxContext:  32000,
			CostPer1K:   0, // runs locally
			AvgLatency:  5 * time.Second,
			Reliability: 0.75,
		},
	}
}

// DefaultChains returns the built-in fallback chain for each task type.
func DefaultChains() map[domain.TaskType][]domain.ModelID {
	return map[domain.TaskType][]domain.ModelID{
		domain.LegalResearch:      {domain.Perplexity, domain.Claude3Opus, domain.GPT4},
		domain.DocumentGeneration: {domain.Claude3Opus, domain.GPT4, domain.Claude3Sonnet},
		domain.LegalAnalysis:      {domain.GPT4, domain.Claude3Opus, domain.Claude3Sonnet},
		domain.EvidenceReview:     {domain.Claude3Sonnet, domain.GPT4, domain.LocalLlama},
		domain.CitationChecking:   {domain.Claude3Sonnet, domain.LocalLlama, domain.GPT4},
	}
}
