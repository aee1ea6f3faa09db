package indexer

import (
	"regexp"
	"strings"
)

// linkCell matches a table line whose first column is a Markdown link:
// pipe, optional space, bracketed title, parenthesized path, optional
// space, pipe.
var linkCell = regexp.MustCompile(`^\|\s*\[([^\]]+)\]\(([^)]+)\)\s*\|`)

// lineKind classifies one document line for the table scanner.
type lineKind int

const (
	// lineText does not start with a pipe; outside a table it is skipped,
	// inside one it ends the scan.
	lineText lineKind = iota
	// linePipe starts with a pipe but holds no second one. It cannot open
	// a table, but it does not close one either.
	linePipe
	// lineTable starts with a pipe and contains at least one more, the
	// shape of a table row or separator.
	lineTable
)

func classifyLine(line string) lineKind {
	if !strings.HasPrefix(line, "|") {
		return lineText
	}
	if strings.Contains(line[1:], "|") {
		return lineTable
	}
	return linePipe
}

// ParseRows extracts the indexed rows, in document order, from the first
// table block of the document. Lines inside the block whose first column
// is not a link cell (the header, the separator row) are skipped without
// closing the block. Purpose is not recoverable from rendered rows and is
// left unset. A document with no table yields no rows.
func ParseRows(doc string) []Row {
	var rows []Row
	inTable := false
	for _, raw := range strings.Split(doc, "\n") {
		line := strings.TrimSpace(raw)
		kind := classifyLine(line)
		if !inTable {
			if kind != lineTable {
				continue
			}
			inTable = true
		} else if kind == lineText {
			// Only the first contiguous table block is considered.
			break
		}
		if m := linkCell.FindStringSubmatch(line); m != nil {
			rows = append(rows, Row{Title: m[1], Path: m[2]})
		}
	}
	return rows
}
