package indexer

import (
	"fmt"
	"path/filepath"
	"strings"

	"docindex/internal/config"
)

// Row is one entry of the documentation index table. Path is relative to
// the docs directory and acts as the natural key: two rows with equal Path
// are the same entry.
type Row struct {
	Title   string
	Path    string
	Purpose string
}

// headerRow anchors the insertion fallback when the sentinel is absent.
const headerRow = "| Doc | Purpose |"

// ComputeNewRows synthesizes a row for every candidate path missing from
// the indexed set, in candidate order. The indexed set is copied into a
// working set that grows as candidates are accepted, so duplicates within
// one batch are suppressed the same way as pre-indexed paths. The title is
// the docs-relative path minus its .md suffix; the purpose is the target
// file's first heading, or the humanized title when there is none.
func ComputeNewRows(root string, cfg config.Config, candidates []string, indexed map[string]bool) []Row {
	seen := make(map[string]bool, len(indexed)+len(candidates))
	for p := range indexed {
		seen[p] = true
	}

	var rows []Row
	for _, rel := range candidates {
		if seen[rel] {
			continue
		}
		seen[rel] = true

		title := strings.TrimSuffix(rel, ".md")
		purpose, ok := FirstHeading(filepath.Join(root, cfg.DocsDir, rel))
		if !ok {
			purpose = humanize(title)
		}
		rows = append(rows, Row{Title: title, Path: rel, Purpose: purpose})
	}
	return rows
}

// InsertRows splices rendered rows into the document text. Rows land
// immediately before the sentinel line when present, otherwise just after
// the first blank line following the header row, otherwise at the very end
// of the document. The text on either side of the splice point is
// preserved byte for byte, and rows keep their computed order.
func InsertRows(doc string, rows []Row, sentinel string) string {
	if len(rows) == 0 {
		return doc
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = renderRow(r)
	}
	block := strings.Join(lines, "\n") + "\n"
	at := insertOffset(doc, sentinel)
	return doc[:at] + block + doc[at:]
}

func renderRow(r Row) string {
	purpose := r.Purpose
	if purpose == "" {
		purpose = r.Title
	}
	return fmt.Sprintf("| [%s](%s) | %s |", r.Title, r.Path, purpose)
}

func insertOffset(doc, sentinel string) int {
	if sentinel != "" {
		if at := strings.Index(doc, sentinel); at >= 0 {
			return at
		}
	}
	if h := strings.Index(doc, headerRow); h >= 0 {
		if gap := strings.Index(doc[h:], "\n\n"); gap >= 0 {
			// Between the two newlines: the block extends the table
			// without disturbing the blank line that follows it.
			return h + gap + 1
		}
	}
	return len(doc)
}

// humanize turns a title into plain words for the purpose column when the
// target file has no heading.
func humanize(title string) string {
	return strings.NewReplacer("-", " ", "_", " ", "/", " ").Replace(title)
}
