// Package bank holds the in-memory problem bank: the flat record list, its
// mutation primitives, and the derived prompt/follow-up grouping.
package bank

// Type is the answer format of a problem.
type Type string

const (
	TypeShort Type = "short"
	TypeEssay Type = "essay"
)

// ProblemRecord is the unit of persistence. A record with a nil ParentID is a
// prompt (root problem); a record whose ParentID references a prompt is one
// of its follow-ups. Negative ProblemIDs are client-generated placeholders
// not yet assigned by any backing store.
type ProblemRecord struct {
	ProblemID     int     `json:"problem_id"`
	ChapterID     int     `json:"chapter_id,omitempty"`
	ChapterNumber *string `json:"chapter_number"`
	ParentID      *int    `json:"parent_id"`
	Instruction   string  `json:"instruction"`
	InstructionEn string  `json:"instruction_en"`
	Answer        string  `json:"answer"`
	AnswerEn      string  `json:"answer_en"`
	Hint          string  `json:"hint"`
	HintEn        string  `json:"hint_en"`
	Type          Type    `json:"type"`
	Order         *int    `json:"order,omitempty"`
}

// IsPrompt reports whether the record is a top-level prompt.
func (r ProblemRecord) IsPrompt() bool {
	return r.ParentID == nil
}

// Clone returns a deep copy of the record.
func (r ProblemRecord) Clone() ProblemRecord {
	c := r
	if r.ChapterNumber != nil {
		n := *r.ChapterNumber
		c.ChapterNumber = &n
	}
	if r.ParentID != nil {
		p := *r.ParentID
		c.ParentID = &p
	}
	if r.Order != nil {
		o := *r.Order
		c.Order = &o
	}
	return c
}

// CloneRecords deep-copies a record slice.
func CloneRecords(records []ProblemRecord) []ProblemRecord {
	out := make([]ProblemRecord, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}

// Patch is a partial update applied to a single record. Nil fields are left
/// untouched. ProblemID is deliberately absent: identity never changes through
// a patch. Parent links and category fields are owned by the store's
// dedicated primitives, not by patches.
type Patch struct {
	Instruction   *string
	InstructionEn *string
	Answer        *string
	AnswerEn      *string
	Hint          *string
	HintEn        *string
	Type          *Type
	Order         *int
}

// apply merges the patch into a copy of the record.
func (p Patch) apply(r ProblemRecord) ProblemRecord {
	out := r.Clone()
	if p.Instruction != nil {
		out.Instruction = *p.Instruction
	}
	if p.InstructionEn != nil {
		out.InstructionEn = *p.InstructionEn
	}
	if p.Answer != nil {
		out.Answer = *p.Answer
	}
	if p.AnswerEn != nil {
		out.AnswerEn = *p.AnswerEn
	}
	if p.Hint != nil {
		out.Hint = *p.Hint
	}
	if p.HintEn != nil {
		out.HintEn = *p.HintEn
	}
	if p.Type != nil {
		out.Type = *p.Type
	}
	if p.Order != nil {
		o := *p.Order
		out.Order = &o
	}
	return out
}

// String returns a pointer to s, for building patches inline.
func String(s string) *string { return &s }

// Int returns a pointer to i.
func Int(i int) *int { return &i }
