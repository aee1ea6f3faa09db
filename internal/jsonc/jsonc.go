// Package jsonc decodes JSON-with-comments configuration content.
package jsonc

import (
	"encoding/json"
	"fmt"

	jsonc "github.com/muhammadmuzzammil1998/jsonc"
)

// Clean strips comments from JSONC input.
func Clean(data []byte) []byte {
	return jsonc.ToJSON(data)
}

// Decode unmarshals JSONC content into the provided destination.
func Decode(data []byte, dest any) error {
	if err := json.Unmarshal(Clean(data), dest); err != nil {
		return fmt.Errorf("parse jsonc: %w", err)
	}
	return nil
}
