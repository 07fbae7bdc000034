package worksheet

import "testing"

func draftWith(korean string) Draft {
	d := NewDraft()
	d.Question.HTML.Korean = korean
	return d
}

func TestFlattenWithPrompt(t *testing.T) {
	in := FlattenInput{
		Prompt: Prompt{
			Question: Side{HTML: Bilingual{Korean: "<p>발문 $A$</p>", English: "<p>prompt</p>"}},
			Answer:   Side{HTML: Bilingual{Korean: "답"}},
		},
		Drafts:    []Draft{draftWith("꼬리 1")},
		ChapterID: 172,
		BaseID:    5000,
	}

	records := Flatten(in)
	if len(records) != 2 {
		t.Fatalf("len = %d, want 2", len(records))
	}

	parent := records[0]
	if parent.ProblemID != 5000 || parent.ParentID != nil {
		t.Fatalf("parent ids wrong: %+v", parent)
	}
	if parent.Instruction != "<p>발문 $A$</p>" || parent.InstructionEn != "<p>prompt</p>" || parent.Answer != "답" {
		t.Fatalf("parent text wrong: %+v", parent)
	}
	if parent.ChapterNumber == nil || *parent.ChapterNumber != "2.1" {
		t.Fatalf("chapter_number = %v, want 2.1", parent.ChapterNumber)
	}

	child := records[1]
	if child.ProblemID != 5001 {
		t.Fatalf("child problem_id = %d, want 5001 (parent+1)", child.ProblemID)
	}
	if child.ParentID == nil || *child.ParentID != 5000 {
		t.Fatalf("child parent_id = %v, want 5000", child.ParentID)
	}
}

func TestFlattenBlankPromptEmitsIndependentRecords(t *testing.T) {
	in := FlattenInput{
		Drafts:    []Draft{NewDraft(), draftWith("only the second row has text")},
		ChapterID: 172,
		BaseID:    3000,
	}

	records := Flatten(in)
	if len(records) != 1 {
		t.Fatalf("len = %d, want 1 (blank draft excluded, no parent synthesized)", len(records))
	}
	r := records[0]
	if r.ParentID != nil {
		t.Fatalf("parent_id = %v, want null", r.ParentID)
	}
	// Index-based id: the blank row at index 0 still occupies base+0.
	if r.ProblemID != 3001 {
		t.Fatalf("problem_id = %d, want 3001", r.ProblemID)
	}
}

func TestFlattenImageOnlyPromptStaysBlank(t *testing.T) {
	in := FlattenInput{
		Prompt:    Prompt{Question: Side{Image: []byte{1, 2}}},
		Drafts:    []Draft{draftWith("혼자 서는 문제")},
		ChapterID: 172,
		BaseID:    4000,
	}

	records := Flatten(in)
	if len(records) != 1 {
		t.Fatalf("len = %d, want 1 (no parent until prompt text exists)", len(records))
	}
	if records[0].ParentID != nil {
		t.Fatalf("parent_id = %v, want null", records[0].ParentID)
	}
}

func TestFlattenWhitespaceOnlyIsBlank(t *testing.T) {
	d := NewDraft()
	d.Question.HTML = Bilingual{Korean: "   \n\t", English: "  "}
	d.Answer.HTML = Bilingual{Korean: "", English: " "}

	records := Flatten(FlattenInput{Drafts: []Draft{d}, ChapterID: 172, BaseID: 1000})
	if len(records) != 0 {
		t.Fatalf("whitespace-only draft should be excluded, got %d records", len(records))
	}
}

func TestFlattenEnglishOnlyIsNotBlank(t *testing.T) {
	d := NewDraft()
	d.Answer.HTML.English = "answer text"

	records := Flatten(FlattenInput{Drafts: []Draft{d}, ChapterID: 172, BaseID: 1000})
	if len(records) != 1 {
		t.Fatalf("a draft with any non-blank field must export, got %d", len(records))
	}
	if records[0].AnswerEn != "answer text" {
		t.Fatalf("answer_en = %q", records[0].AnswerEn)
	}
}

func TestFlattenUnknownChapterEmitsNullNumber(t *testing.T) {
	records := Flatten(FlattenInput{
		Drafts:    []Draft{draftWith("q")},
		ChapterID: 999,
		BaseID:    1000,
	})
	if records[0].ChapterNumber != nil {
		t.Fatalf("chapter_number = %v, want null for unknown id on the flatten path", *records[0].ChapterNumber)
	}
	if records[0].ChapterID != 999 {
		t.Fatalf("chapter_id = %d, want 999", records[0].ChapterID)
	}
}

func TestFlattenRandomBaseInBand(t *testing.T) {
	for range 50 {
		records := Flatten(FlattenInput{Drafts: []Draft{draftWith("q")}, ChapterID: 172})
		id := records[0].ProblemID
		if id < 1000 || id > 10999 {
			t.Fatalf("base id %d outside [1000, 10999]", id)
		}
	}
}

func TestFlattenDraftTypeCarriesThrough(t *testing.T) {
	d := draftWith("essay question")
	d.Type = "essay"

	records := Flatten(FlattenInput{Drafts: []Draft{d}, ChapterID: 172, BaseID: 1000})
	if got := string(records[0].Type); got != "essay" {
		t.Fatalf("type = %q, want essay", got)
	}
}
