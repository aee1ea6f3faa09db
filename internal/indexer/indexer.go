// Package indexer keeps the documentation index table in sync with the
// Markdown files staged in the repository. One invocation is one pass:
// resolve staged files, filter to the doc set, parse the existing table,
// diff, and insert.
package indexer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"docindex/internal/config"
	"docindex/internal/logger"
)

// ErrExcluded reports an attempt to add a path covered by the exclude
// list. Callers map it to a distinct exit code.
var ErrExcluded = errors.New("path is excluded from the index")

// Result describes the outcome of a mutating run.
type Result struct {
	Updated bool
	Added   []Row
}

// Update resolves staged Markdown files and inserts rows for any that are
// missing from the index table, rewriting the index file in place.
// stagedOverride, when non-empty, replaces the git query. A missing index
// file, like an empty doc set, is a no-op rather than an error; Update
// never creates the index file.
func Update(root string, cfg config.Config, stagedOverride string) (Result, error) {
	staged, err := Staged(root, stagedOverride)
	if err != nil {
		return Result{}, err
	}
	if len(staged) == 0 {
		logger.Debug("no staged markdown files")
		return Result{}, nil
	}

	warnRootMarkdown(staged, cfg)

	docs := FilterDocs(staged, cfg)
	if len(docs) == 0 {
		logger.Debug("no staged files under %s/", cfg.DocsDir)
		return Result{}, nil
	}

	indexPath := filepath.Join(root, cfg.IndexFile)
	data, err := os.ReadFile(indexPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("index file %s missing; nothing to update", cfg.IndexFile)
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
	logger.Info("added %d row(s) to %s", len(added), cfg.IndexFile)
	return Result{Updated: true, Added: added}, nil
}

// Check reports whether the index table already lists every staged doc.
// It never mutates anything. Absence of work (no staged docs, missing
// index file) counts as up to date.
func Check(root string, cfg config.Config, stagedOverride string) (bool, error) {
	staged, err := Staged(root, stagedOverride)
	if err != nil {
		return false, err
	}
	docs := FilterDocs(staged, cfg)
	if len(docs) == 0 {
		return true, nil
	}

	indexPath := filepath.Join(root, cfg.IndexFile)
	data, err := os.ReadFile(indexPath)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("read %s: %w", indexPath, err)
	}

	indexed := pathSet(ParseRows(string(data)))
	for _, rel := range docs {
		if !indexed[rel] {
			logger.Info("missing from index: %s", rel)
			return false, nil
		}
	}
	return true, nil
}

// Add inserts a single file into the index without consulting the staging
// area. Unlike Update, the index file and the target file must exist.
// Adding an excluded path fails with ErrExcluded; adding an
// already-indexed path is a silent no-op.
func Add(root string, cfg config.Config, path string) (Result, error) {
	rel := filepath.ToSlash(strings.TrimSpace(path))
	rel = strings.TrimPrefix(rel, cfg.DocsDir+"/")
	if rel == "" {
		return Result{}, errors.New("empty path")
	}
	if excluded(rel, cfg.Exclude) {
		return Result{}, fmt.Errorf("%s: %w", rel, ErrExcluded)
	}
	target := filepath.Join(root, cfg.DocsDir, rel)
	if _, err := os.Stat(target); err != nil {
		return Result{}, fmt.Errorf("stat %s: %w", target, err)
	}

	indexPath := filepath.Join(root, cfg.IndexFile)
	data, err := os.ReadFile(indexPath)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", indexPath, err)
	}

	doc := string(data)
	indexed := pathSet(ParseRows(doc))
	if indexed[rel] {
		logger.Debug("%s already indexed", rel)
		return Result{}, nil
	}

	added := ComputeNewRows(root, cfg, []string{rel}, indexed)
	out := InsertRows(doc, added, cfg.Sentinel)
	if err := os.WriteFile(indexPath, []byte(out), 0o644); err != nil {
		return Result{}, fmt.Errorf("write %s: %w", indexPath, err)
	}
	return Result{Updated: true, Added: added}, nil
}

func pathSet(rows []Row) map[string]bool {
	set := make(map[string]bool, len(rows))
	for _, r := range rows {
		set[r.Path] = true
	}
	return set
}

// warnRootMarkdown flags staged Markdown files sitting at the repository
// root that are not on the allow list. Advisory side channel only; it
// never changes results or failure status.
func warnRootMarkdown(staged []string, cfg config.Config) {
	if !cfg.WarnRootMd {
		return
	}
	allowed := make(map[string]bool, len(cfg.AllowedRootMd))
	for _, name := range cfg.AllowedRootMd {
		allowed[name] = true
	}
	for _, p := range staged {
		if strings.Contains(p, "/") || allowed[p] {
			continue
		}
		logger.Warn("%s is at the repository root; consider moving it under %s/", p, cfg.DocsDir)
	}
}
