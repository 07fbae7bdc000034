package bankfile

import (
	"testing"
	"time"

	"github.com/classday/probank/internal/bank"
)

func TestFilename(t *testing.T) {
	d := time.Date(2025, 8, 14, 23, 59, 0, 0, time.UTC)
	if got := Filename(d); got != "problems_2025-08-14.json" {
		t.Fatalf("Filename = %q", got)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	n := "2.1"
	in := []bank.ProblemRecord{
		{ProblemID: 1000, ChapterID: 172, ChapterNumber: &n, Instruction: "<p>q</p>", Answer: "a", Type: bank.TypeShort},
		{ProblemID: 77, ParentID: bank.Int(12345), Instruction: "orphan", Answer: "", Type: bank.TypeShort}, // dangling parent
	}

	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}

	// Orphans are not silently dropped: they re-import unchanged.
	o := out[1]
	if o.ProblemID != 77 || o.ParentID == nil || *o.ParentID != 12345 || o.Instruction != "orphan" {
		t.Fatalf("orphan did not round-trip: %+v", o)
	}
	if groups := bank.BuildGroups(out); len(groups) != 1 || len(groups[0].Children) != 0 {
		t.Fatalf("orphan should stay ungrouped after round-trip: %+v", groups)
	}
}
