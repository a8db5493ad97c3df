package app

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"docket/internal/client"
	"docket/internal/domain"
	"docket/internal/services/docqa"
	"docket/internal/services/drafting"
	"docket/internal/services/evidence"
	"docket/internal/services/jurisdiction"
	"docket/internal/services/routing"
	"docket/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Evidence domain.EvidenceService
	Drafting domain.DraftingService
	Courts   *jurisdiction.Registry
	// Checker validates documents: the remote docketd when ServerURL is set,
	// otherwise the local registry.
	Checker domain.ComplianceChecker
	Remote  domain.CourtClient // nil without ServerURL
	Router  domain.RoutingService
	Readme  domain.ReadmeService

	results *store.SQLiteResultLog
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	cfg.resolve()
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, fmt.Errorf("create home: %w", err)
	}

	// File-based stores
	evidenceStore := store.NewEvidenceFileStore(cfg.Home)
	draftStore := store.NewDraftFileStore(cfg.Home)

	results, err := store.NewSQLiteResultLog(cfg.DBPath, store.DefaultSQLiteConfig())
	if err != nil {
		return nil, fmt.Errorf("open routing log: %w", err)
	}

	courts, err := NewCourts(cfg)
	if err != nil {
		_ = results.Close()
		return nil, err
	}

	// High-level services
	evidenceSvc := evidence.New(evidenceStore)
	w := &Wire{
		Evidence: evidenceSvc,
		Drafting: drafting.New(evidenceSvc, draftStore),
		Courts:   courts,
		Checker:  courts,
		Router: routing.New(results, routing.Config{
			RatePerSecond: cfg.Router.RatePerSecond,
			Burst:         cfg.Router.Burst,
		}),
		Readme:  docqa.New(docqa.Config{Threshold: cfg.ReadmeThreshold}),
		results: results,
	}

	if cfg.ServerURL != "" {
		rc := client.NewHTTP(cfg.ServerURL)
		rc.HTTP = &http.Client{Timeout: 30 * time.Second}
		w.Remote = rc
		w.Checker = rc
	}
	return w, nil
}

// NewCourts builds the court registry from the built-in profiles and those
// in cfg.CourtsDir.
func NewCourts(cfg Config) (*jurisdiction.Registry, error) {
	cfg.resolve()
	return jurisdiction.New(store.NewCourtProfileDirStore(cfg.CourtsDir))
}

// Close releases the routing log.
func (w *Wire) Close() error {
	if w.results == nil {
		return nil
	}
	return w.results.Close()
}
