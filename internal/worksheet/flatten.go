package worksheet

import (
	"math/rand/v2"

	"github.com/classday/probank/internal/bank"
	"github.com/classday/probank/internal/catalog"
)

// FlattenInput is everything the flatten step needs from the builder.
type FlattenInput struct {
	Prompt    Prompt
	Drafts    []Draft
	ChapterID int

	// BaseID overrides the random base id when non-zero. Tests use it; the
	// builder leaves it zero.
	BaseID int
}

// Flatten turns the builder state into a flat record list ready for export.
//
// One random base id in [1000, 10999] is generated per call. The id is only
// unique within the produced file; repeated exports may collide, which is
// fine because merging exported files is not a supported operation.
//
// With a non-blank prompt, the prompt becomes a parent record (problem_id =
// base, parent_id = null) and each non-blank draft becomes its child
// (problem_id = base+i+1, sequential by draft order). With a blank prompt,
// each non-blank draft becomes an independent top-level record (problem_id =
// base+i). Blank drafts are never emitted.
func Flatten(in FlattenInput) []bank.ProblemRecord {
	baseID := in.BaseID
	if baseID == 0 {
		baseID = rand.IntN(10000) + 1000
	}

	// The flatten path emits a null chapter_number for ids missing from the
	// table; the store's recompute paths use the raw-id fallback instead.
	var chapterNumber *string
	if n, ok := catalog.ChapterNumber(in.ChapterID); ok {
		chapterNumber = &n
	}

	newRecord := func(id int, parentID *int, question, answer Bilingual, typ string) bank.ProblemRecord {
		t := bank.Type(typ)
		if t == "" {
			t = bank.TypeShort
		}
		return bank.ProblemRecord{
			ProblemID:     id,
			ChapterID:     in.ChapterID,
			ChapterNumber: cloneStringPtr(chapterNumber),
			ParentID:      parentID,
			Instruction:   question.Korean,
			InstructionEn: question.English,
			Answer:        answer.Korean,
			AnswerEn:      answer.English,
			Type:          t,
		}
	}

	var records []bank.ProblemRecord

	if !in.Prompt.Blank() {
		records = append(records, newRecord(baseID, nil, in.Prompt.Question.HTML, in.Prompt.Answer.HTML, "short"))
		for i, d := range in.Drafts {
			if d.Blank() {
				continue
			}
			pid := baseID
			records = append(records, newRecord(baseID+i+1, &pid, d.Question.HTML, d.Answer.HTML, d.Type))
		}
		return records
	}

	// No prompt: every non-blank draft stands alone as a top-level record.
	for i, d := range in.Drafts {
		if d.Blank() {
			continue
		}
		records = append(records, newRecord(baseID+i, nil, d.Question.HTML, d.Answer.HTML, d.Type))
	}
	return records
}

func cloneStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
