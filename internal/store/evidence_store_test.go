package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"docket/internal/domain"
	"docket/internal/store"
)

func TestEvidence_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()
	var es domain.EvidenceStore = store.NewEvidenceFileStore(home)

	src := domain.EvidenceSource{
		ID:          "email_20231015",
		Description: "Email dated October 15, 2023",
		Pages:       []int{1, 2},
		Exhibit:     "A",
	}
	if err := es.SaveEvidence(src); err != nil {
		t.Fatalf("save evidence: %v", err)
	}

	got, ok, err := es.LoadEvidence(src.ID)
	if err != nil {
		t.Fatalf("load evidence: %v", err)
	}
	if !ok {
		t.Fatal("evidence not found after save")
	}
	if got.Exhibit != "A" || len(got.Pages) != 2 {
		t.Fatalf("mismatch after load: %+v", got)
	}

	info, err := os.Stat(filepath.Join(home, "evidence.json"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode %v, want 0600", info.Mode().Perm())
	}
}

func TestEvidence_List_SortedByID(t *testing.T) {
	es := store.NewEvidenceFileStore(t.TempDir())
	for _, id := range []domain.EvidenceID{"c", "a", "b"} {
		if err := es.SaveEvidence(domain.EvidenceSource{ID: id}); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}
	all, err := es.ListEvidence()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 || all[0].ID != "a" || all[2].ID != "c" {
		t.Fatalf("unexpected order: %+v", all)
	}
}

func TestEvidence_CorruptFile_Fails(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, "evidence.json"), []byte("{"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	es := store.NewEvidenceFileStore(home)
	if err := es.SaveEvidence(domain.EvidenceSource{ID: "x"}); err == nil {
		t.Fatal("expected error when registry file is corrupt")
	}
}
