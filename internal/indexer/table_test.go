package indexer

import "testing"

func TestParseRows(t *testing.T) {
	doc := "| Doc | Purpose |\n" +
		"|-----|---------|\n" +
		"| [deploy](deployment.md) | Deploy stuff |\n" +
		"| [archive/](archive/) | Historical |\n"

	rows := ParseRows(doc)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Title != "deploy" || rows[0].Path != "deployment.md" {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if rows[1].Title != "archive/" || rows[1].Path != "archive/" {
		t.Errorf("row 1 = %+v", rows[1])
	}
}

func TestParseRowsNoTable(t *testing.T) {
	doc := "# Docs\n\nJust prose, nothing tabular.\n"
	if rows := ParseRows(doc); len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}

func TestParseRowsSeparatorDoesNotEndRegion(t *testing.T) {
	doc := "| Doc | Purpose |\n" +
		"|-----|---------|\n" +
		"| [a](a.md) | A |\n"
	rows := ParseRows(doc)
	if len(rows) != 1 || rows[0].Path != "a.md" {
		t.Fatalf("rows = %+v", rows)
	}
}

func TestParseRowsOnlyFirstTableBlock(t *testing.T) {
	doc := "| Doc | Purpose |\n" +
		"| [a](a.md) | A |\n" +
		"\n" +
		"| Other | Table |\n" +
		"| [b](b.md) | B |\n"
	rows := ParseRows(doc)
	if len(rows) != 1 {
		t.Fatalf("expected only the first block to be scanned, got %d rows", len(rows))
	}
	if rows[0].Path != "a.md" {
		t.Errorf("row 0 = %+v", rows[0])
	}
}

func TestParseRowsProseBeforeTable(t *testing.T) {
	doc := "# Index\n\nSome intro text.\n\n" +
		"| Doc | Purpose |\n" +
		"|-----|---------|\n" +
		"| [guide](guide.md) | The guide |\n"
	rows := ParseRows(doc)
	if len(rows) != 1 || rows[0].Title != "guide" {
		t.Fatalf("rows = %+v", rows)
	}
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want lineKind
	}{
		{"| Doc | Purpose |", lineTable},
		{"|---|---|", lineTable},
		{"| lonely pipe", linePipe},
		{"plain text", lineText},
		{"", lineText},
	}
	for _, tt := range tests {
		if got := classifyLine(tt.line); got != tt.want {
			t.Errorf("classifyLine(%q) = %d, want %d", tt.line, got, tt.want)
		}
	}
}
