package indexer

import (
	"os"
	"strings"

	"docindex/internal/gitutil"
	"docindex/internal/logger"
)

// StagedEnvVar lets test and CI harnesses inject the staged-file list
// without a real git staging area: newline-separated paths, the same shape
// as the git query output. It is read here at the call boundary and
// nowhere else.
const StagedEnvVar = "DOCINDEX_STAGED_FILES"

// Staged returns the Markdown files relevant to this invocation, in source
// order. Priority: the explicit override, then StagedEnvVar, then the git
// staging area. When either override is present git is never queried.
// Entries are trimmed; blanks and non-.md paths are dropped; duplicates
// survive (the diff step deduplicates).
func Staged(root, override string) ([]string, error) {
	listing := override
	if listing == "" {
		listing = os.Getenv(StagedEnvVar)
	}
	if listing == "" {
		out, err := gitutil.StagedFiles(root)
		if err != nil {
			return nil, err
		}
		listing = out
	}

	var files []string
	for _, line := range strings.Split(listing, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.HasSuffix(line, ".md") {
			continue
		}
		files = append(files, line)
	}
	logger.Debug("resolved %d staged markdown file(s)", len(files))
	return files, nil
}
