package indexer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"docindex/internal/config"
	"docindex/internal/logger"
)

// SeedCandidates lists every Markdown file already present under the docs
// directory, docs-relative and in lexical order, with excluded entries and
// the index file itself filtered out. A missing docs directory yields an
// empty list.
func SeedCandidates(root string, cfg config.Config) ([]string, error) {
	docsRoot := filepath.Join(root, cfg.DocsDir)
	if _, err := os.Stat(docsRoot); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat %s: %w", docsRoot, err)
	}

	matches, err := doublestar.Glob(os.DirFS(docsRoot), "**/*.md")
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", docsRoot, err)
	}
	sort.Strings(matches)

	// The index must never list itself, even when a custom config forgot
	// to exclude it.
	indexRel := strings.TrimPrefix(filepath.ToSlash(cfg.IndexFile), cfg.DocsDir+"/")

	var docs []string
	for _, rel := range matches {
		if rel == indexRel || excluded(rel, cfg.Exclude) {
			continue
		}
		docs = append(docs, rel)
	}
	return docs, nil
}

// Seed backfills the index with rows for pre-existing docs that it does
// not list yet. Used by init on repositories that predate the hook. Like
// Update, a missing index file is a no-op.
func Seed(root string, cfg config.Config) (Result, error) {
	docs, err := SeedCandidates(root, cfg)
	if err != nil {
		return Result{}, err
	}
	if len(docs) == 0 {
		return Result{}, nil
	}

	indexPath := filepath.Join(root, cfg.IndexFile)
	data, err := os.ReadFile(indexPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("index file %s missing; nothing to seed", cfg.IndexFile)
			return Result{}, nil
		}
		return Result{}, fmt.Errorf("read %s: %w", indexPath, err)
	}

	doc := string(data)
	added := ComputeNewRows(root, cfg, docs, pathSet(ParseRows(doc)))
	if len(added) == 0 {
		return Result{}, nil
	}

	out := InsertRows(doc, added, cfg.Sentinel)
	if err := os.WriteFile(indexPath, []byte(out), 0o644); err != nil {
		return Result{}, fmt.Errorf("write %s: %w", indexPath, err)
	}
	logger.Info("seeded %d row(s) into %s", len(added), cfg.IndexFile)
	return Result{Updated: true, Added: added}, nil
}
