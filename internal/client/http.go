package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"docket/internal/domain"
)

// ErrNotFound is returned when the server has no such court.
var ErrNotFound = errors.New("not found")

// HTTP is a docketd client. Base is the server URL without a trailing slash.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for the docketd at base using http.DefaultClient.
func NewHTTP(base string) *HTTP {
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: http.DefaultClient}
}

var _ domain.CourtClient = (*HTTP)(nil)

// ListCourts returns the court IDs the server knows, sorted.
func (c *HTTP) ListCourts(ctx context.Context) ([]domain.CourtID, error) {
	var out []domain.CourtID
	if err := c.do(ctx, http.MethodGet, "/courts", nil, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchCourt returns one court profile; unknown courts yield ErrNotFound.
func (c *HTTP) FetchCourt(ctx context.Context, id domain.CourtID) (domain.CourtProfile, error) {
	var out domain.CourtProfile
	if err := c.do(ctx, http.MethodGet, "/courts/"+url.PathEscape(string(id)), nil, "", &out); err != nil {
		return domain.CourtProfile{}, err
	}
	return out, nil
}

// Validate posts the document text as the request body.
func (c *HTTP) Validate(ctx context.Context, court domain.CourtID, text string) (domain.ComplianceReport, error) {
	var out domain.ComplianceReport
	path := "/courts/" + url.PathEscape(string(court)) + "/validate"
	if err := c.do(ctx, http.MethodPost, path, strings.NewReader(text), "text/plain; charset=utf-8", &out); err != nil {
		return domain.ComplianceReport{}, err
	}
	return out, nil
}

func (c *HTTP) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	u := c.Base + path
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("docketd %s %s: %s: %w", strings.ToLower(method), u, resp.Status, ErrNotFound)
	}
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("docketd %s %s: %s", strings.ToLower(method), u, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
