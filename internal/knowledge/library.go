// Package knowledge serves the self-service policy library behind the
// portal's "browse common topics" search.
package knowledge

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// maxSnippets caps matching lines returned per document.
const maxSnippets = 3

// Document is one indexed knowledge-base entry.
type Document struct {
	File  string `yaml:"file"`
	Title string `yaml:"title"`
}

type index struct {
	Documents []Document `yaml:"documents"`
}

// SearchResult is one document matching a query.
type SearchResult struct {
	File     string   `json:"file"`
	Title    string   `json:"title"`
	Snippets []string `json:"snippets"`
}

// Library holds the loaded knowledge-base documents.
type Library struct {
	docs    []Document
	content map[string]string
}

// Load reads index.yaml from dir and the documents it lists. Missing
// documents are skipped so a partial library still serves.
func Load(dir string) (*Library, error) {
	raw, err := os.ReadFile(filepath.Join(dir, "index.yaml"))
	if err != nil {
		return nil, fmt.Errorf("read knowledge index: %w", err)
	}
	var idx index
	if err := yaml.Unmarshal(raw, &idx); err != nil {
		return nil, fmt.Errorf("parse knowledge index: %w", err)
	}

	lib := &Library{content: make(map[string]string, len(idx.Documents))}
	for _, doc := range idx.Documents {
		body, err := os.ReadFile(filepath.Join(dir, doc.File))
		if err != nil {
			continue
		}
		lib.docs = append(lib.docs, doc)
		lib.content[doc.File] = string(body)
	}
	return lib, nil
}

// Len returns the number of loaded documents.
func (l *Library) Len() int {
	return len(l.docs)
}

// Search returns documents containing the query, with up to three matching
// lines each. Matching is case-insensitive; an empty query matches nothing.
func (l *Library) Search(query string) []SearchResult {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil
	}
	var results []SearchResult
	for _, doc := range l.docs {
		body := l.content[doc.File]
		if !strings.Contains(strings.ToLower(body), needle) {
			continue
		}
		var snippets []string
		for _, line := range strings.Split(body, "\n") {
			if strings.Contains(strings.ToLower(line), needle) {
				snippets = append(snippets, strings.TrimSpace(line))
				if len(snippets) == maxSnippets {
					break
				}
			}
		}
		results = append(results, SearchResult{
			File:     doc.File,
			Title:    doc.Title,
			Snippets: snippets,
		})
	}
	return results
}
