// Package bankfile implements the on-disk bank contract: a UTF-8 JSON array
// of problem records. Import validates the whole file at the boundary and
// produces typed records; nothing downstream re-checks shape.
package bankfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/classday/probank/internal/bank"
	"github.com/classday/probank/internal/catalog"
)

// Parse validates and decodes a bank file. It returns *FormatError when the
// top-level value is not a JSON array or any element fails the record schema
// (problem_id, instruction, and answer keys must be present; empty strings
// are acceptable). On failure nothing is returned: the import is rejected
// wholesale.
func Parse(data []byte) ([]bank.ProblemRecord, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, &FormatError{Index: -1, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	elements, ok := raw.([]any)
	if !ok {
		return nil, &FormatError{Index: -1, Err: errors.New("top-level value must be an array of problem records")}
	}

	schema, err := compiledRecordSchema()
	if err != nil {
		return nil, fmt.Errorf("record schema: %w", err)
	}

	for i, el := range elements {
		if err := schema.Validate(el); err != nil {
			return nil, &FormatError{Index: i, Err: err}
		}
	}

	records := make([]bank.ProblemRecord, 0, len(elements))
	if err := json.Unmarshal(data, &records); err != nil {
		// Shape was already validated; a decode failure here means the file
		// and the schema disagree, which is a bug worth surfacing.
		return nil, &FormatError{Index: -1, Err: fmt.Errorf("decode records: %w", err)}
	}

	for i := range records {
		if records[i].Type == "" {
			records[i].Type = bank.TypeShort
		}
	}
	return records, nil
}

// ReadFile reads and parses a bank file from disk.
func ReadFile(path string) ([]bank.ProblemRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}

// InferSelection reconstructs the category selection from imported records:
// the first prompt's chapter id, mapped through the catalog. ok is false when
// no prompt exists or its chapter id is unrecognized; callers then keep their
// prior selection.
func InferSelection(records []bank.ProblemRecord) (topID, subID int, ok bool) {
	for _, r := range records {
		if !r.IsPrompt() {
			continue
		}
		if _, known := catalog.ChapterNumber(r.ChapterID); !known {
			return 0, 0, false
		}
		top, found := catalog.TopLevelFor(r.ChapterID)
		if !found {
			return 0, 0, false
		}
		return top, r.ChapterID, true
	}
	return 0, 0, false
}
