package indexer

import (
	"os"
	"regexp"
	"strings"
)

// headingLine matches an ATX heading: one or more hashes, whitespace, text.
var headingLine = regexp.MustCompile(`^#+\s+(.*)`)

// FirstHeading returns the trimmed text of the first Markdown heading line
// in the file. ok is false when the file is missing, unreadable, or holds
// no heading with text.
func FirstHeading(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	for _, line := range strings.Split(string(data), "\n") {
		m := headingLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if text := strings.TrimSpace(m[1]); text != "" {
			return text, true
		}
	}
	return "", false
}
