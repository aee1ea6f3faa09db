package jsonc

import (
	"encoding/json"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name: "removes single-line comments",
			input: `{
				// comment
				"key": "value"
			}`,
		},
		{
			name:  "removes multi-line comments",
			input: `{"key": /* comment */ "value"}`,
		},
		{
			name:  "plain JSON passes through",
			input: `{"key": "value"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Clean([]byte(tt.input))
			var dest map[string]any
			if err := json.Unmarshal(result, &dest); err != nil {
				t.Errorf("Clean() produced invalid JSON: %v", err)
			}
			if dest["key"] != "value" {
				t.Errorf("Clean() key = %v, want %q", dest["key"], "value")
			}
		})
	}
}

func TestDecode(t *testing.T) {
	input := `{
		// docs location
		"docsDir": "documentation"
	}`
	var dest struct {
		DocsDir string `json:"docsDir"`
	}
	if err := Decode([]byte(input), &dest); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dest.DocsDir != "documentation" {
		t.Errorf("docsDir = %q", dest.DocsDir)
	}
}

func TestDecodeMalformed(t *testing.T) {
	var dest map[string]any
	if err := Decode([]byte(`{"key": `), &dest); err == nil {
		t.Error("expected error for malformed input")
	}
}
