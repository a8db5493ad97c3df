package domain

import (
	interfaces "docket/internal/domain/interfaces"
	types "docket/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	EvidenceID       = types.EvidenceID
	CourtID          = types.CourtID
	SessionName      = types.SessionName
	Digest           = types.Digest
	EvidenceSource   = types.EvidenceSource
	Citation         = types.Citation
	DraftSession     = types.DraftSession
	UncitedClaim     = types.UncitedClaim
	CourtLevel       = types.CourtLevel
	Margins          = types.Margins
	FormattingRules  = types.FormattingRules
	CitationRules    = types.CitationRules
	FilingRules      = types.FilingRules
	CourtProfile     = types.CourtProfile
	Violation        = types.Violation
	ComplianceReport = types.ComplianceReport
	ModelID          = types.ModelID
	TaskType         = types.TaskType
	Priority         = types.Priority
	ModelProfile     = types.ModelProfile
	TaskResult       = types.TaskResult
	RouterStats      = types.RouterStats
	FindingKind      = types.FindingKind
	Finding          = types.Finding
	ReadmeFile       = types.ReadmeFile
	DuplicatePair    = types.DuplicatePair
	FileReference    = types.FileReference
	CodeFence        = types.CodeFence
	ReadmeReport     = types.ReadmeReport
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	EvidenceStore       = interfaces.EvidenceStore
	DraftStore          = interfaces.DraftStore
	CourtProfileStore   = interfaces.CourtProfileStore
	ResultLog           = interfaces.ResultLog
	EvidenceService     = interfaces.EvidenceService
	DraftingService     = interfaces.DraftingService
	ComplianceChecker   = interfaces.ComplianceChecker
	JurisdictionService = interfaces.JurisdictionService
	TaskFunc            = interfaces.TaskFunc
	RoutingService      = interfaces.RoutingService
	ReadmeService       = interfaces.ReadmeService
	CourtClient         = interfaces.CourtClient
)

// Constants re-exported for callers that only import domain.
const (
	StateFamily     = types.StateFamily
	StateDistrict   = types.StateDistrict
	StateSupreme    = types.StateSupreme
	FederalDistrict = types.FederalDistrict
	FederalCircuit  = types.FederalCircuit
	FederalSupreme  = types.FederalSupreme

	GPT4          = types.GPT4
	Claude3Opus   = types.Claude3Opus
	Claude3Sonnet = types.Claude3Sonnet
	Perplexity    = types.Perplexity
	LocalLlama    = types.LocalLlama

	LegalResearch      = types.LegalResearch
	DocumentGeneration = types.DocumentGeneration
	LegalAnalysis      = types.LegalAnalysis
	EvidenceReview     = types.EvidenceReview
	CitationChecking   = types.CitationChecking

	PriorityQuality = types.PriorityQuality
	PriorityCost    = types.PriorityCost
	PrioritySpeed   = types.PrioritySpeed

	FindingUnclosedFence = types.FindingUnclosedFence
	FindingInvalidUTF8   = types.FindingInvalidUTF8
	FindingMojibake      = types.FindingMojibake
	FindingDuplicate     = types.FindingDuplicate
	FindingIllustrative  = types.FindingIllustrative
)

// DefaultCourtProfile returns the rules a court has unless its profile says otherwise.
func DefaultCourtProfile() CourtProfile { return types.DefaultCourtProfile() }
