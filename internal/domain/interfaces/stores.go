package interfaces

import (
	"context"

	domaintypes "docket/internal/domain/types"
)

// EvidenceStore persists the evidence registry.
type EvidenceStore interface {
	SaveEvidence(src domaintypes.EvidenceSource) error
	LoadEvidence(id domaintypes.EvidenceID) (domaintypes.EvidenceSource, bool, error)
	ListEvidence() ([]domaintypes.EvidenceSource, error)
}

// DraftStore persists drafting sessions and their citations.
type DraftStore interface {
	SaveDraftSession(session domaintypes.DraftSession) error
	LoadDraftSession(name domaintypes.SessionName) (domaintypes.DraftSession, bool, error)
	DeleteDraftSession(name domaintypes.SessionName) error
}

// CourtProfileStore loads and saves user-supplied court profiles.
type CourtProfileStore interface {
	LoadCourtProfiles() ([]domaintypes.CourtProfile, error)
	SaveCourtProfile(profile domaintypes.CourtProfile) error
}

// ResultLog keeps the routing performance log.
type ResultLog interface {
	AppendResult(ctx context.Context, result domaintypes.TaskResult) error
	ListResults(ctx context.Context) ([]domaintypes.TaskResult, error)
}
