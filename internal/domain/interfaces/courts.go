package interfaces

import (
	"context"

	domaintypes "docket/internal/domain/types"
)

// CourtClient talks to a remote docketd, all with context.
type CourtClient interface {
	ComplianceChecker
	ListCourts(ctx context.Context) ([]domaintypes.CourtID, error)
	FetchCourt(ctx context.Context, id domaintypes.CourtID) (domaintypes.CourtProfile, error)
}
