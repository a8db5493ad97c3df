package drafting_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docket/internal/domain"
	"docket/internal/services/drafting"
	"docket/internal/services/evidence"
	"docket/internal/store"
)

func setup(t *testing.T, sources ...domain.EvidenceSource) *drafting.Service {
	t.Helper()
	home := t.TempDir()
	ev := evidence.New(store.NewEvidenceFileStore(home))
	for _, src := range sources {
		_, err := ev.RegisterEvidence(src)
		require.NoError(t, err)
	}
	return drafting.New(ev, store.NewDraftFileStore(home))
}

func TestDraftParagraph_CitesExhibitAndPages(t *testing.T) {
	svc := setup(t, domain.EvidenceSource{ID: "test", Description: "Test", Exhibit: "A", Pages: []int{1, 2, 3}})

	got, err := svc.DraftParagraph("s", "Test", []domain.EvidenceID{"test"}, true)
	require.NoError(t, err)
	assert.Equal(t, "Test (Ex. A, pp. 1-3)", got)
}

func TestDraftParagraph_MultipleSources(t *testing.T) {
	svc := setup(t,
		domain.EvidenceSource{ID: "email", Exhibit: "A", Pages: []int{1, 2}},
		domain.EvidenceSource{ID: "text", Exhibit: "B", Pages: []int{5}},
		domain.EvidenceSource{ID: "note"},
	)

	got, err := svc.DraftParagraph("s", "Claim.", []domain.EvidenceID{"email", "text", "note"}, true)
	require.NoError(t, err)
	assert.Equal(t, "Claim. (Ex. A, pp. 1-2; Ex. B, p. 5; note)", got)
}

func TestDraftParagraph_RequiresEvidence(t *testing.T) {
	svc := setup(t)

	_, err := svc.DraftParagraph("s", "Respondent did something on January 1, 2024.", nil, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, drafting.ErrEvidenceRequired))
}

func TestDraftParagraph_RejectsUnknownEvidence(t *testing.T) {
	svc := setup(t, domain.EvidenceSource{ID: "known", Exhibit: "A"})

	_, err := svc.DraftParagraph("s", "Claim.", []domain.EvidenceID{"known", "ghost"}, true)
	require.ErrorIs(t, err, drafting.ErrUnknownEvidence)
	assert.Contains(t, err.Error(), "ghost")
}

func TestDraftParagraph_UncitedWhenNotRequired(t *testing.T) {
	svc := setup(t)

	got, err := svc.DraftParagraph("s", "Procedural history follows.", nil, false)
	require.NoError(t, err)
	assert.Equal(t, "Procedural history follows.", got)
}

func TestExhibitList_SortedAndDeduplicated(t *testing.T) {
	var sources []domain.EvidenceSource
	for i, letter := range []string{"C", "A", "B"} {
		sources = append(sources, domain.EvidenceSource{
			ID:          domain.EvidenceID("evidence_" + string(rune('0'+i))),
			Description: "Test evidence " + letter,
			Exhibit:     letter,
		})
	}
	svc := setup(t, sources...)

	_, err := svc.DraftParagraph("s", "Claim 1", []domain.EvidenceID{"evidence_0"}, true)
	require.NoError(t, err)
	_, err = svc.DraftParagraph("s", "Claim 2", []domain.EvidenceID{"evidence_1", "evidence_2", "evidence_0"}, true)
	require.NoError(t, err)

	list, err := svc.ExhibitList("s")
	require.NoError(t, err)

	want := strings.Join([]string{
		`\section*{Exhibits}`,
		`\begin{enumerate}`,
		`  \item Exhibit A: Test evidence A`,
		`  \item Exhibit B: Test evidence B`,
		`  \item Exhibit C: Test evidence C`,
		`\end{enumerate}`,
	}, "\n")
	assert.Equal(t, want, list)
}

func TestExhibitList_EmptySession(t *testing.T) {
	svc := setup(t)
	list, err := svc.ExhibitList("nothing")
	require.NoError(t, err)
	assert.Equal(t, "\\section*{Exhibits}\n\\begin{enumerate}\n\\end{enumerate}", list)
}

func TestValidateDocument_FlagsOnlyFarClaims(t *testing.T) {
	svc := setup(t, domain.EvidenceSource{ID: "email", Exhibit: "A"})

	first := "On October 15, 2023, Respondent sent an email."
	p1, err := svc.DraftParagraph("s", first, []domain.EvidenceID{"email"}, true)
	require.NoError(t, err)

	filler := strings.Repeat("Background without facts. ", 20)
	p2, err := svc.DraftParagraph("s", filler, nil, false)
	require.NoError(t, err)

	tail := "Respondent then refused to pay $1,200 on 3 occasions."
	p3, err := svc.DraftParagraph("s", tail, nil, false)
	require.NoError(t, err)

	doc := p1 + "\n\n" + p2 + "\n\n" + p3
	claims, err := svc.ValidateDocument("s", doc)
	require.NoError(t, err)

	var texts []string
	for _, c := range claims {
		texts = append(texts, c.Text)
	}
	assert.Equal(t, []string{"Respondent then refused to", "$1,200", "3 occasions"}, texts)
	for _, c := range claims {
		assert.Equal(t, c.Text, doc[c.Offset:c.Offset+len(c.Text)])
	}
}

func TestValidateDocument_NoCitationsFlagsEverything(t *testing.T) {
	svc := setup(t)
	claims, err := svc.ValidateDocument("empty", "Respondent repeatedly failed to appear on 4 times. On March 3, 2024 it recurred.")
	require.NoError(t, err)
	require.Len(t, claims, 3)
	assert.Equal(t, "conduct", claims[0].Pattern)
	assert.Equal(t, "count", claims[1].Pattern)
	assert.Equal(t, "date", claims[2].Pattern)
}

func TestResetSession(t *testing.T) {
	svc := setup(t, domain.EvidenceSource{ID: "a", Exhibit: "A", Description: "x"})
	_, err := svc.DraftParagraph("s", "Claim", []domain.EvidenceID{"a"}, true)
	require.NoError(t, err)

	require.NoError(t, svc.ResetSession("s"))
	list, err := svc.ExhibitList("s")
	require.NoError(t, err)
	assert.NotContains(t, list, "Exhibit A")
}
