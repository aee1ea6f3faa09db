// Package schemas embeds and compiles the JSON schema for the docindex
// configuration file.
package schemas

import (
	"bytes"
	"embed"
	"fmt"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed *.schema.json
var schemaFS embed.FS

const rcSchemaName = "docindexrc"

var (
	compileOnce sync.Once
	rcSchema    *jsonschema.Schema
	compileErr  error
)

func compile() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		file := fmt.Sprintf("%s.schema.json", rcSchemaName)
		data, err := schemaFS.ReadFile(file)
		if err != nil {
			compileErr = fmt.Errorf("read schema %s: %w", rcSchemaName, err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			compileErr = fmt.Errorf("decode schema %s: %w", rcSchemaName, err)
			return
		}
		c := jsonschema.NewCompiler()
		url := fmt.Sprintf("mem://schemas/%s", file)
		if err := c.AddResource(url, doc); err != nil {
			compileErr = fmt.Errorf("register schema %s: %w", rcSchemaName, err)
			return
		}
		rcSchema, compileErr = c.Compile(url)
	})
	return rcSchema, compileErr
}

// ValidateRC checks configuration content (plain JSON; strip comments
// before calling) against the embedded schema.
func ValidateRC(data []byte) error {
	schema, err := compile()
	if err != nil {
		return err
	}
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if err := schema.Validate(instance); err != nil {
		return fmt.Errorf("config invalid: %w", err)
	}
	return nil
}
