package jurisdiction_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docket/internal/domain"
	"docket/internal/services/jurisdiction"
	"docket/internal/store"
)

func TestDefaults_AllRequiredCourtsPresent(t *testing.T) {
	reg, err := jurisdiction.New(nil)
	require.NoError(t, err)

	for _, id := range []domain.CourtID{"hi_family", "cand", "ca9"} {
		_, ok := reg.GetCourt(id)
		assert.True(t, ok, "missing profile for %s", id)
	}
	assert.Equal(t, []domain.CourtID{"ca9", "cand", "hi_family"}, reg.ListCourts())
}

func TestDefaults_HawaiiFamilyCourt(t *testing.T) {
	reg, err := jurisdiction.New(nil)
	require.NoError(t, err)

	p, ok := reg.GetCourt("hi_family")
	require.True(t, ok)
	assert.Equal(t, "Hawaii Family Court", p.Name)
	assert.Equal(t, domain.StateFamily, p.Level)
	assert.Equal(t, "Times New Roman", p.Formatting.FontFamily)
	assert.Equal(t, 12, p.Formatting.FontSize)
	assert.Equal(t, 2.0, p.Formatting.LineSpacing)
	assert.True(t, p.Filing.VerificationRequired)
	assert.Equal(t, "Hawaii Revised Statutes", p.Citations.StatuteFormat)

	ca9, _ := reg.GetCourt("ca9")
	require.NotNil(t, ca9.Filing.WordLimit)
	assert.Equal(t, 14000, *ca9.Filing.WordLimit)
	assert.Equal(t, "Century Schoolbook", ca9.Formatting.FontFamily)
}

func TestStoreProfilesOverrideDefaults(t *testing.T) {
	dir := t.TempDir()
	body := "id: cand\nname: Custom CAND\nlevel: federal_district\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cand.yaml"), []byte(body), 0o600))

	reg, err := jurisdiction.New(store.NewCourtProfileDirStore(dir))
	require.NoError(t, err)

	p, ok := reg.GetCourt("cand")
	require.True(t, ok)
	assert.Equal(t, "Custom CAND", p.Name)
}

func TestPartialOverlayProfileKeepsDefaultRules(t *testing.T) {
	dir := t.TempDir()
	body := "id: hi_circuit\nname: Hawaii Circuit Court\nlevel: state_district\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hi_circuit.yaml"), []byte(body), 0o600))

	reg, err := jurisdiction.New(store.NewCourtProfileDirStore(dir))
	require.NoError(t, err)

	p, ok := reg.GetCourt("hi_circuit")
	require.True(t, ok)
	assert.Equal(t, "Times New Roman", p.Formatting.FontFamily)
	assert.Equal(t, 12, p.Formatting.FontSize)
	assert.Equal(t, 2.0, p.Formatting.LineSpacing)
	assert.True(t, p.Filing.CertificateOfServiceRequired)
	assert.True(t, p.Filing.ExhibitsMustBeLabeled)
	require.NotNil(t, p.Filing.TOCRequiredPages)
	assert.Equal(t, 25, *p.Filing.TOCRequiredPages)
	assert.Equal(t, "Bluebook", p.Citations.CaseFormat)
	assert.True(t, p.Citations.PinCiteRequired)

	report, err := reg.Validate(context.Background(), "hi_circuit", "")
	require.NoError(t, err)
	assert.False(t, report.Compliant)
	assert.ElementsMatch(t, []string{
		jurisdiction.RuleFontFamily,
		jurisdiction.RuleLineSpacing,
		jurisdiction.RuleCertificateOfService,
	}, rules(report))
}

func TestReload_PicksUpNewProfiles(t *testing.T) {
	dir := t.TempDir()
	reg, err := jurisdiction.New(store.NewCourtProfileDirStore(dir))
	require.NoError(t, err)
	_, ok := reg.GetCourt("dhi")
	require.False(t, ok)

	body := "id: dhi\nname: District of Hawaii\nlevel: federal_district\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dhi.yaml"), []byte(body), 0o600))
	require.NoError(t, reg.Reload())

	_, ok = reg.GetCourt("dhi")
	assert.True(t, ok)
}

func TestReload_KeepsProfilesOnError(t *testing.T) {
	dir := t.TempDir()
	reg, err := jurisdiction.New(store.NewCourtProfileDirStore(dir))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("id: bad\nlevel: imaginary\n"), 0o600))
	err = reg.Reload()
	require.Error(t, err)
	assert.True(t, errors.Is(err, jurisdiction.ErrInvalidProfile))

	_, ok := reg.GetCourt("hi_family")
	assert.True(t, ok)
}

func TestRegisterCourt_Persists(t *testing.T) {
	dir := t.TempDir()
	reg, err := jurisdiction.New(store.NewCourtProfileDirStore(dir))
	require.NoError(t, err)

	require.NoError(t, reg.RegisterCourt(domain.CourtProfile{ID: "hi_ica", Name: "ICA", Level: domain.StateDistrict}))
	assert.FileExists(t, filepath.Join(dir, "hi_ica.yaml"))

	require.ErrorIs(t, reg.RegisterCourt(domain.CourtProfile{Name: "no id"}), jurisdiction.ErrInvalidProfile)

	again, err := jurisdiction.New(store.NewCourtProfileDirStore(dir))
	require.NoError(t, err)
	_, ok := again.GetCourt("hi_ica")
	assert.True(t, ok)
}
