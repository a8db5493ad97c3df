package jurisdiction

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"docket/internal/domain"
	"docket/internal/log"
	"docket/internal/metrics"
)

//go:embed defaults.yaml
var defaultProfilesYAML []byte

var (
	// ErrUnknownCourt is returned when a court ID is not registered.
	ErrUnknownCourt = errors.New("unknown court")
	// ErrInvalidProfile is returned for profiles missing an ID or with an unknown level.
	ErrInvalidProfile = errors.New("invalid court profile")
)

// Registry holds court profiles and validates documents against them.
// It is safe for concurrent use.
type Registry struct {
	store  domain.CourtProfileStore
	logger zerolog.Logger

	mu       sync.RWMutex
	profiles map[domain.CourtID]domain.CourtProfile
}

// New builds a registry from the built-in profiles overlaid with those in
// store. store may be nil.
func New(store domain.CourtProfileStore) (*Registry, error) {
	r := &Registry{
		store:  store,
		logger: log.WithComponent("jurisdiction"),
	}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// DefaultProfiles returns the built-in court profiles, each decoded over
// domain.DefaultCourtProfile.
func DefaultProfiles() ([]domain.CourtProfile, error) {
	var docs []yaml.Node
	if err := yaml.Unmarshal(defaultProfilesYAML, &docs); err != nil {
		return nil, fmt.Errorf("parsing built-in court profiles: %w", err)
	}
	out := make([]domain.CourtProfile, 0, len(docs))
	for i := range docs {
		p := domain.DefaultCourtProfile()
		if err := docs[i].Decode(&p); err != nil {
			return nil, fmt.Errorf("parsing built-in court profile %d: %w", i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// Reload rebuilds the registry from the built-in profiles and the store. On
// error the current profiles are kept.
func (r *Registry) Reload() error {
	profiles, err := DefaultProfiles()
	if err != nil {
		return err
	}
	if r.store != nil {
		extra, err := r.store.LoadCourtProfiles()
		if err != nil {
			return fmt.Errorf("loading court profiles: %w", err)
		}
		profiles = append(profiles, extra...)
	}

	next := make(map[domain.CourtID]domain.CourtProfile, len(profiles))
	for _, p := range profiles {
		if err := checkProfile(p); err != nil {
			return err
		}
		next[p.ID] = p
	}

	r.mu.Lock()
	r.profiles = next
	r.mu.Unlock()

	metrics.CourtProfiles.Set(float64(len(next)))
	r.logger.Debug().Int("courts", len(next)).Msg("court profiles loaded")
	return nil
}

// RegisterCourt adds or replaces a profile in memory and, when a store is
// configured, persists it.
func (r *Registry) RegisterCourt(profile domain.CourtProfile) error {
	if err := checkProfile(profile); err != nil {
		return err
	}
	if r.store != nil {
		if err := r.store.SaveCourtProfile(profile); err != nil {
			return fmt.Errorf("saving court profile %s: %w", profile.ID, err)
		}
	}
	r.mu.Lock()
	r.profiles[profile.ID] = profile
	n := len(r.profiles)
	r.mu.Unlock()

	metrics.CourtProfiles.Set(float64(n))
	return nil
}

// GetCourt retrieves a profile by ID.
func (r *Registry) GetCourt(id domain.CourtID) (domain.CourtProfile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[id]
	return p, ok
}

// ListCourts returns registered court IDs in sorted order.
func (r *Registry) ListCourts() []domain.CourtID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]domain.CourtID, 0, len(r.profiles))
	for id := range r.profiles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func checkProfile(p domain.CourtProfile) error {
	if p.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidProfile)
	}
	if p.Level != "" && !p.Level.Valid() {
		return fmt.Errorf("%w: %s has unknown level %q", ErrInvalidProfile, p.ID, p.Level)
	}
	return nil
}
