package indexer

import (
	"strings"

	"docindex/internal/config"
)

// FilterDocs narrows staged paths to the docs-relative paths eligible for
// indexing: those under the docs directory and not excluded. Input order
// is preserved; duplicates pass through.
func FilterDocs(paths []string, cfg config.Config) []string {
	prefix := cfg.DocsDir + "/"
	var docs []string
	for _, p := range paths {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		rel := strings.TrimPrefix(p, prefix)
		if excluded(rel, cfg.Exclude) {
			continue
		}
		docs = append(docs, rel)
	}
	return docs
}

// excluded reports whether rel equals an exclude entry or starts with one.
// The prefix test is a raw string match, not directory-boundary aware:
// excluding "arch" also excludes "archive/x.md". Existing configurations
// rely on this, so it stays.
func excluded(rel string, exclude []string) bool {
	for _, e := range exclude {
		if e == "" {
			continue
		}
		if rel == e || strings.HasPrefix(rel, e) {
			return true
		}
	}
	return false
}
