package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docket/internal/domain"
	"docket/internal/store"
)

func TestCourtProfiles_MissingDir(t *testing.T) {
	cs := store.NewCourtProfileDirStore(filepath.Join(t.TempDir(), "absent"))
	got, err := cs.LoadCourtProfiles()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCourtProfiles_SaveLoad(t *testing.T) {
	dir := t.TempDir()
	cs := store.NewCourtProfileDirStore(dir)

	limit := 7000
	p := domain.CourtProfile{
		ID:    "hi_ica",
		Name:  "Hawaii Intermediate Court of Appeals",
		Level: domain.StateDistrict,
		Formatting: domain.FormattingRules{
			FontFamily:  "Times New Roman",
			FontSize:    12,
			LineSpacing: 2.0,
		},
		Filing:  domain.FilingRules{WordLimit: &limit, CertificateOfServiceRequired: true},
		Special: map[string]any{"pro_se_notice_required": true},
	}
	require.NoError(t, cs.SaveCourtProfile(p))
	require.FileExists(t, filepath.Join(dir, "hi_ica.yaml"))

	got, err := cs.LoadCourtProfiles()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, p.Name, got[0].Name)
	require.NotNil(t, got[0].Filing.WordLimit)
	assert.Equal(t, 7000, *got[0].Filing.WordLimit)
	assert.Equal(t, true, got[0].Special["pro_se_notice_required"])
	assert.Nil(t, got[0].Filing.TOCRequiredPages, "nil limit must survive a round trip")
}

func TestCourtProfiles_IDFromFileName(t *testing.T) {
	dir := t.TempDir()
	body := "name: Example Court\nlevel: state_district\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ex.yml"), []byte(body), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o600))

	got, err := store.NewCourtProfileDirStore(dir).LoadCourtProfiles()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.CourtID("ex"), got[0].ID)
}

func TestCourtProfiles_BadYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("name: [unterminated"), 0o600))
	_, err := store.NewCourtProfileDirStore(dir).LoadCourtProfiles()
	assert.Error(t, err)
}

func TestCourtProfiles_PartialFileDecodesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	body := "name: Small Court\nlevel: state_district\nformatting:\n  font_size: 14\nfiling:\n  certificate_of_service_required: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "small.yaml"), []byte(body), 0o600))

	got, err := store.NewCourtProfileDirStore(dir).LoadCourtProfiles()
	require.NoError(t, err)
	require.Len(t, got, 1)

	p := got[0]
	assert.Equal(t, 14, p.Formatting.FontSize)
	assert.Equal(t, "Times New Roman", p.Formatting.FontFamily)
	assert.Equal(t, 1.0, p.Formatting.Margins.Left)
	assert.Equal(t, "bottom center", p.Formatting.PageNumberLocation)
	assert.False(t, p.Filing.CertificateOfServiceRequired)
	assert.True(t, p.Filing.ExhibitsMustBeLabeled)
}
