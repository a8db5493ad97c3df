package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docket/internal/client"
	"docket/internal/domain"
	"docket/internal/services/jurisdiction"
	"docket/internal/store"
)

func newRegistry(t *testing.T) *jurisdiction.Registry {
	t.Helper()
	reg, err := jurisdiction.New(nil)
	require.NoError(t, err)
	return reg
}

func TestRoutes(t *testing.T) {
	h := New(newRegistry(t), Config{}).Handler()

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		status   int
		contains string
	}{
		{"healthz", http.MethodGet, "/healthz", "", http.StatusOK, `"ok"`},
		{"list", http.MethodGet, "/courts", "", http.StatusOK, `"hi_family"`},
		{"show", http.MethodGet, "/courts/ca9", "", http.StatusOK, `"ca9"`},
		{"show unknown", http.MethodGet, "/courts/nope", "", http.StatusNotFound, "unknown court"},
		{"validate unknown", http.MethodPost, "/courts/nope/validate", "x", http.StatusOK, jurisdiction.RuleUnknownCourt},
		{"metrics", http.MethodGet, "/metrics", "", http.StatusOK, "docket_"},
		{"wrong method", http.MethodDelete, "/courts/ca9", "", http.StatusMethodNotAllowed, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tc.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.contains)
		})
	}
}

func TestValidateReport(t *testing.T) {
	h := New(newRegistry(t), Config{}).Handler()

	req := httptest.NewRequest(http.MethodPost, "/courts/hi_family/validate", strings.NewReader("\\documentclass{article}"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var report domain.ComplianceReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&report))
	assert.Equal(t, domain.CourtID("hi_family"), report.CourtID)
	assert.False(t, report.Compliant)
	assert.NotEmpty(t, report.Violations)
}

func TestValidateLimits(t *testing.T) {
	h := New(newRegistry(t), Config{ValidateLimit: 2, ValidateWindow: time.Minute, MaxBodyBytes: 16}).Handler()

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/courts/ca9/validate", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusRequestEntityTooLarge, post(strings.Repeat("x", 64)).Code)
	assert.Equal(t, http.StatusOK, post("short").Code)
	rec := post("short")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	// Other endpoints are not limited.
	req := httptest.NewRequest(http.MethodGet, "/courts", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClientAgainstServer(t *testing.T) {
	srv := httptest.NewServer(New(newRegistry(t), Config{}).Handler())
	t.Cleanup(srv.Close)

	c := client.NewHTTP(srv.URL)
	ctx := context.Background()

	ids, err := c.ListCourts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.CourtID{"ca9", "cand", "hi_family"}, ids)

	p, err := c.FetchCourt(ctx, "cand")
	require.NoError(t, err)
	assert.Equal(t, domain.FederalDistrict, p.Level)

	_, err = c.FetchCourt(ctx, "nope")
	require.ErrorIs(t, err, client.ErrNotFound)

	report, err := c.Validate(ctx, "nope", "text")
	require.NoError(t, err)
	assert.False(t, report.Compliant)
}

func TestProfileWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	reg, err := jurisdiction.New(store.NewCourtProfileDirStore(dir))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	w := NewProfileWatcher(dir, reg.Reload, 20*time.Millisecond)
	require.NoError(t, w.Start(ctx))

	profile := "name: Texas Family Court\nlevel: state_family\njurisdiction: Texas\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tx_family.yaml"), []byte(profile), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))

	require.Eventually(t, func() bool {
		_, ok := reg.GetCourt("tx_family")
		return ok
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-w.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestProfileWatcherMissingDir(t *testing.T) {
	w := NewProfileWatcher(filepath.Join(t.TempDir(), "missing"), func() error { return nil }, 0)
	require.Error(t, w.Start(context.Background()))
}

func TestRunShutsDown(t *testing.T) {
	s := New(newRegistry(t), Config{Addr: "127.0.0.1:0", ShutdownTimeout: time.Second})
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-errc:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
