package interfaces

import (
	"context"

	domaintypes "docket/internal/domain/types"
)

// EvidenceService manages the evidence that drafted text may cite.
type EvidenceService interface {
	RegisterEvidence(src domaintypes.EvidenceSource) (domaintypes.EvidenceSource, error)
	GetEvidence(id domaintypes.EvidenceID) (domaintypes.EvidenceSource, bool, error)
	ListEvidence() ([]domaintypes.EvidenceSource, error)
	ValidateCitations(ids []domaintypes.EvidenceID) (bool, []domaintypes.EvidenceID, error)
	VerifyEvidence(id domaintypes.EvidenceID) (bool, error)
}

// DraftingService drafts paragraphs that must cite registered evidence.
type DraftingService interface {
	DraftParagraph(
		session domaintypes.SessionName,
		content string,
		evidenceIDs []domaintypes.EvidenceID,
		requireCitation bool,
	) (string, error)
	ValidateDocument(
		session domaintypes.SessionName,
		document string,
	) ([]domaintypes.UncitedClaim, error)
	ExhibitList(session domaintypes.SessionName) (string, error)
	ResetSession(session domaintypes.SessionName) error
}

// ComplianceChecker validates document text against a court profile.
type ComplianceChecker interface {
	Validate(
		ctx context.Context,
		court domaintypes.CourtID,
		text string,
	) (domaintypes.ComplianceReport, error)
}

// JurisdictionService is the court profile registry.
type JurisdictionService interface {
	ComplianceChecker
	RegisterCourt(profile domaintypes.CourtProfile) error
	GetCourt(id domaintypes.CourtID) (domaintypes.CourtProfile, bool)
	ListCourts() []domaintypes.CourtID
}

// TaskFunc runs a task on the given model and returns its output.
type TaskFunc func(ctx context.Context, model domaintypes.ModelID) (string, error)

// RoutingService picks models for tasks and runs tasks with fallback.
type RoutingService interface {
	SelectModel(
		task domaintypes.TaskType,
		contextSize int,
		priority domaintypes.Priority,
	) domaintypes.ModelID
	Execute(
		ctx context.Context,
		task domaintypes.TaskType,
		fn TaskFunc,
	) (domaintypes.TaskResult, error)
	Stats(ctx context.Context) (domaintypes.RouterStats, error)
}

// ReadmeService runs documentation QA over a repository.
type ReadmeService interface {
	Scan(ctx context.Context, root string) (domaintypes.ReadmeReport, error)
}
