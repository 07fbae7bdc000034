package bankfile

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// recordSchema is the import contract for a single bank file element.
// Only key presence is required for problem_id, instruction, and answer;
// empty strings are valid. Everything else is optional on import and always
// emitted on export.
var recordSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"problem_id": map[string]any{
			"type":        "integer",
			"description": "Unique id within the file; negative for client placeholders",
		},
		"parent_id": map[string]any{
			"type":        []any{"integer", "null"},
			"description": "Null marks a prompt; otherwise the prompt's problem_id",
		},
		"chapter_id": map[string]any{
			"type": "integer",
		},
		"chapter_number": map[string]any{
			"type":        []any{"string", "null"},
			"description": "Display label derived from chapter_id",
		},
		"instruction":    map[string]any{"type": []any{"string", "null"}},
		"instruction_en": map[string]any{"type": []any{"string", "null"}},
		"answer":         map[string]any{"type": []any{"string", "null"}},
		"answer_en":      map[string]any{"type": []any{"string", "null"}},
		"hint":           map[string]any{"type": []any{"string", "null"}},
		"hint_en":        map[string]any{"type": []any{"string", "null"}},
		"type": map[string]any{
			"type": "string",
			"enum": []any{"short", "essay"},
		},
		"order": map[string]any{
			"type": []any{"integer", "null"},
		},
	},
	"required": []any{"problem_id", "instruction", "answer"},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiledRecordSchema compiles the record schema once and caches it.
func compiledRecordSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(recordSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://problem-record.json"
		if err := c.AddResource(url, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}
