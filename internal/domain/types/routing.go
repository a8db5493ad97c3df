package types

import "time"

// ModelID names an AI model docket can route a task to.
type ModelID string

const (
	GPT4          ModelID = "gpt-4"
	Claude3Opus   ModelID = "claude-3-opus"
	Claude3Sonnet ModelID = "claude-3-sonnet"
	Perplexity    ModelID = "perplexity"
	LocalLlama    ModelID = "local-llama"
)

// String returns the string form of the model identifier.
func (m ModelID) String() string { return string(m) }

// TaskType is a category of legal work.
type TaskType string

const (
	LegalResearch      TaskType = "legal_research"
	DocumentGeneration TaskType = "document_generation"
	LegalAnalysis      TaskType = "legal_analysis"
	EvidenceReview     TaskType = "evidence_review"
	CitationChecking   TaskType = "citation_checking"
)

// String returns the string form of the task type.
func (t TaskType) String() string { return string(t) }

// Priority steers model selection.
type Priority string

const (
	PriorityQuality Priority = "quality"
	PriorityCost    Priority = "cost"
	PrioritySpeed   Priority = "speed"
)

// ModelProfile describes what a model is good at and what it costs.
type ModelProfile struct {
	Model       ModelID       `json:"model"`
	Strengths   []TaskType    `json:"strengths"`
	MaxContext  int           `json:"max_context"`
	CostPer1K   float64       `json:"cost_per_1k"`
	AvgLatency  time.Duration `json:"avg_latency"`
	Reliability float64       `json:"reliability"`
}

// TaskResult is one attempt to run a task on a model.
type TaskResult struct {
	ID         string        `json:"id"`
	Task       TaskType      `json:"task"`
	Model      ModelID       `json:"model"`
	Success    bool          `json:"success"`
	Output     string        `json:"output,omitempty"`
	Error      string        `json:"error,omitempty"`
	Duration   time.Duration `json:"duration"`
	TokensUsed int           `json:"tokens_used"`
	StartedUTC int64         `json:"started_utc"`
}

// RouterStats summarises the performance log.
type RouterStats struct {
	TotalTasks  int             `json:"total_tasks"`
	SuccessRate float64         `json:"success_rate"`
	ModelUsage  map[ModelID]int `json:"model_usage"`
	AvgDuration time.Duration   `json:"avg_duration"`
}
