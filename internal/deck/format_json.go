package deck

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const deckSchemaURL = "schema://habid-deck.json"

// deckSchema describes a JSON deck file.
var deckSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"card": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"prompt": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"answers": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
				"required":             []any{"prompt", "answers"},
				"additionalProperties": false,
			},
		},
	},
	"required": []any{"card"},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func deckSchemaCompiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// Round-trip through JSON so the compiler sees plain decoded values.
		defBytes, err := json.Marshal(deckSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal deck schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse deck schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(deckSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(deckSchemaURL)
	})
	return compiledSchema, compileErr
}

// decodeJSON validates a JSON deck against deckSchema before decoding it.
func decodeJSON(data []byte) (document, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return document{}, fmt.Errorf("parse json: %w", err)
	}
	schema, err := deckSchemaCompiled()
	if err != nil {
		return document{}, err
	}
	if err := schema.Validate(parsed); err != nil {
		return document{}, fmt.Errorf("schema validation failed: %w", err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return document{}, fmt.Errorf("decode json: %w", err)
	}
	return doc, nil
}
