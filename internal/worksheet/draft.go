// Package worksheet holds the builder surface's draft shapes and the flatten
// step that turns them into persistable problem records. Drafts are a UI
// convenience; they never leave the process except through Flatten.
package worksheet

import (
	"strings"

	"github.com/google/uuid"
)

// Bilingual is a Korean/English HTML+LaTeX text pair.
type Bilingual struct {
	Korean  string
	English string
}

// blank reports whether both sides are empty after trimming.
func (b Bilingual) blank() bool {
	return strings.TrimSpace(b.Korean) == "" && strings.TrimSpace(b.English) == ""
}

// Side is one half of a draft row: the question or the answer, with its
// extracted text and the optionally attached source image.
type Side struct {
	HTML  Bilingual
	Image []byte
}

// Draft is one follow-up row in the builder. ID is ephemeral and UI-only;
// it never appears in exported records.
type Draft struct {
	ID       string
	Type     string // "short" or "essay"
	Question Side
	Answer   Side
}

// NewDraft creates a blank short-answer draft row.
func NewDraft() Draft {
	return Draft{
		ID:   uuid.NewString(),
		Type: "short",
	}
}

// Blank reports whether all four text fields of the draft are blank after
// trimming. Blank drafts are silently excluded from export.
func (d Draft) Blank() bool {
	return d.Question.HTML.blank() && d.Answer.HTML.blank()
}

// Prompt is the builder's parent-problem draft: a question and answer pair
// shared by every follow-up. Like draft rows, each side may carry a source
// image.
type Prompt struct {
	Question Side
	Answer   Side
}

// Blank reports whether the prompt has no text in any of its four fields.
// An attached image alone does not make the prompt non-blank.
func (p Prompt) Blank() bool {
	return p.Question.HTML.blank() && p.Answer.HTML.blank()
}
