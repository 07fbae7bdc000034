package bankfile

import (
	"errors"
	"testing"

	"github.com/classday/probank/internal/bank"
)

func TestParseRejectsNonArray(t *testing.T) {
	_, err := Parse([]byte(`{"a":1}`))
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FormatError, got %T (%v)", err, err)
	}
	if fe.Index != -1 {
		t.Fatalf("expected file-level error, got element %d", fe.Index)
	}
}

func TestParseRejectsMissingRequiredKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"missing instruction", `[{"problem_id":1,"answer":"x"}]`},
		{"missing answer", `[{"problem_id":1,"instruction":"x"}]`},
		{"missing problem_id", `[{"instruction":"x","answer":"x"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("expected *FormatError, got %T (%v)", err, err)
			}
			if fe.Index != 0 {
				t.Fatalf("expected element 0, got %d", fe.Index)
			}
		})
	}
}

func TestParseAcceptsEmptyStrings(t *testing.T) {
	records, err := Parse([]byte(`[{"problem_id":1,"instruction":"","answer":""}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].ProblemID != 1 {
		t.Fatalf("unexpected records: %+v", records)
	}
	if records[0].Type != bank.TypeShort {
		t.Fatalf("type should default to short, got %q", records[0].Type)
	}
}

func TestParseFullRecord(t *testing.T) {
	in := `[
  {
    "problem_id": 1000,
    "chapter_id": 172,
    "chapter_number": "2.1",
    "parent_id": null,
    "instruction": "<p>solve $x+1=2$</p>",
    "instruction_en": "<p>solve</p>",
    "answer": "$x=1$",
    "answer_en": "",
    "hint": "",
    "hint_en": "",
    "type": "essay"
  },
  {"problem_id": 1001, "parent_id": 1000, "order": 1, "instruction": "", "answer": ""}
]`
	records, err := Parse([]byte(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len = %d, want 2", len(records))
	}

	p := records[0]
	if p.ParentID != nil || p.ChapterID != 172 || *p.ChapterNumber != "2.1" || p.Type != bank.TypeEssay {
		t.Fatalf("parent decoded wrong: %+v", p)
	}
	c := records[1]
	if c.ParentID == nil || *c.ParentID != 1000 || c.Order == nil || *c.Order != 1 {
		t.Fatalf("child decoded wrong: %+v", c)
	}
}

func TestParseRejectsBadFieldType(t *testing.T) {
	_, err := Parse([]byte(`[{"problem_id":"not-a-number","instruction":"","answer":""}]`))
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FormatError, got %T (%v)", err, err)
	}
}

func TestInferSelection(t *testing.T) {
	top, sub, ok := InferSelection([]bank.ProblemRecord{
		{ProblemID: 2, ParentID: bank.Int(1)},      // child first: skipped
		{ProblemID: 1, ChapterID: 183},             // first prompt wins
		{ProblemID: 3, ChapterID: 172},
	})
	if !ok || top != 180 || sub != 183 {
		t.Fatalf("got (%d, %d, %v), want (180, 183, true)", top, sub, ok)
	}
}

func TestInferSelectionUnrecognized(t *testing.T) {
	if _, _, ok := InferSelection([]bank.ProblemRecord{{ProblemID: 1, ChapterID: 999}}); ok {
		t.Fatal("unknown chapter id should not infer a selection")
	}
	if _, _, ok := InferSelection([]bank.ProblemRecord{{ProblemID: 1, ParentID: bank.Int(2)}}); ok {
		t.Fatal("a bank with no prompt should not infer a selection")
	}
	if _, _, ok := InferSelection(nil); ok {
		t.Fatal("empty bank should not infer a selection")
	}
}
