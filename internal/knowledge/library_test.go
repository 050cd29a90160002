package knowledge

import (
	"os"
	"path/filepath"
	"testing"
)

func writeLibrary(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"index.yaml": `documents:
  - file: pto_policy.md
    title: PTO Policy
  - file: benefits_guide.md
    title: Benefits Guide
  - file: missing.md
    title: Gone
`,
		"pto_policy.md": "# PTO Policy\nVacation requests require 2 weeks advance notice.\nSick leave accrues monthly.\nPTO carries over up to 5 days.\nPTO balance shows in Workday.\n",
		"benefits_guide.md": "# Benefits\nOpen Enrollment runs November 1-15.\n401k match is 50% of the first 6%.\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestLoadSkipsMissingDocuments(t *testing.T) {
	lib, err := Load(writeLibrary(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if lib.Len() != 2 {
		t.Fatalf("expected 2 documents, got %d", lib.Len())
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	lib, err := Load(writeLibrary(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	results := lib.Search("VACATION")
	if len(results) != 1 || results[0].File != "pto_policy.md" {
		t.Fatalf("unexpected results: %+v", results)
	}
	if len(results[0].Snippets) != 1 {
		t.Fatalf("expected 1 snippet, got %v", results[0].Snippets)
	}
}

func TestSearchCapsSnippets(t *testing.T) {
	lib, err := Load(writeLibrary(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	results := lib.Search("pto")
	if len(results) != 1 {
		t.Fatalf("expected 1 document, got %d", len(results))
	}
	if len(results[0].Snippets) != maxSnippets {
		t.Fatalf("expected %d snippets, got %d", maxSnippets, len(results[0].Snippets))
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	lib, err := Load(writeLibrary(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if results := lib.Search("   "); results != nil {
		t.Fatalf("empty query must match nothing, got %+v", results)
	}
}
