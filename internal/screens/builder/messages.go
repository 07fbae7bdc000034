package builder

import "github.com/classday/probank/internal/vlm"

// side identifies which half of a draft an action targets.
type side int

const (
	sideQuestion side = iota
	sideAnswer
)

func (s side) String() string {
	if s == sideAnswer {
		return "answer"
	}
	return "question"
}

// extractionDoneMsg is sent when an image extraction finishes. Seq carries
// the bridge token taken when the request was dispatched; stale responses
// are dropped on arrival.
type extractionDoneMsg struct {
	DraftID string
	Side    side
	Seq     uint64
	Result  *vlm.Extraction
	Err     error
}

// imageReadMsg is sent after an image file has been read from disk.
type imageReadMsg struct {
	DraftID string
	Side    side
	Image   vlm.Image
	Err     error
}

// exportDoneMsg is sent when the flattened worksheet has been written.
type exportDoneMsg struct {
	Path  string
	Count int
	Err   error
}
