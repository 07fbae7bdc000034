package builder

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/classday/probank/internal/bank"
	"github.com/classday/probank/internal/vlm"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newTestScreen() (*Screen, *bank.Store) {
	store := bank.NewStore()
	bridge := vlm.NewBridge(vlm.NewMockExtractor(), time.Second)
	return New(store, bridge), store
}

func TestAddAndRemoveDrafts(t *testing.T) {
	s, _ := newTestScreen()

	s.Update(keyPress('n'))
	s.Update(keyPress('n'))
	if len(s.drafts) != 3 {
		t.Fatalf("drafts = %d, want 3", len(s.drafts))
	}
	if s.cursor != 3 {
		t.Fatalf("cursor = %d, want last draft", s.cursor)
	}

	s.Update(keyPress('d'))
	if len(s.drafts) != 2 {
		t.Fatalf("drafts = %d, want 2", len(s.drafts))
	}
}

func TestPromptEditRoundTrip(t *testing.T) {
	s, _ := newTestScreen()

	s.cursor = 0
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.mode != modeEdit || !s.editPrompt {
		t.Fatal("expected prompt edit mode")
	}

	s.fields[0].SetValue("<p>다음 행렬에 대하여 물음에 답하라</p>")
	s.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})

	if s.prompt.Question.HTML.Korean != "<p>다음 행렬에 대하여 물음에 답하라</p>" {
		t.Fatalf("prompt = %q", s.prompt.Question.HTML.Korean)
	}
}

func TestImageReadAttachesOptimistically(t *testing.T) {
	s, _ := newTestScreen()
	s.cursor = 1
	img := vlm.Image{Data: []byte{1, 2, 3}, MIME: "image/png"}

	_, cmd := s.Update(imageReadMsg{DraftID: s.drafts[0].ID, Side: sideQuestion, Image: img})
	if cmd == nil {
		t.Fatal("expected extraction command")
	}

	if len(s.drafts[0].Question.Image) != 3 {
		t.Fatal("image must attach before extraction completes")
	}
	key := sideKey{draftID: s.drafts[0].ID, s: sideQuestion}
	if s.extracting[key] != extractRunning {
		t.Fatal("expected running extraction state")
	}
}

func TestPromptImageExtraction(t *testing.T) {
	s, _ := newTestScreen()
	s.cursor = 0
	img := vlm.Image{Data: []byte{1, 2, 3}, MIME: "image/png"}

	_, cmd := s.Update(imageReadMsg{DraftID: promptTarget, Side: sideQuestion, Image: img})
	if cmd == nil {
		t.Fatal("expected extraction command for the prompt row")
	}
	if len(s.prompt.Question.Image) != 3 {
		t.Fatal("image must attach to the prompt before extraction completes")
	}

	field := "question:" + promptTarget
	seq := s.bridge.Current(field)
	s.Update(extractionDoneMsg{
		DraftID: promptTarget,
		Side:    sideQuestion,
		Seq:     seq,
		Result:  &vlm.Extraction{Korean: "<p>발문</p>", English: "<p>shared prompt</p>"},
	})

	if s.prompt.Question.HTML.Korean != "<p>발문</p>" {
		t.Fatalf("prompt korean = %q", s.prompt.Question.HTML.Korean)
	}
	if s.prompt.Question.HTML.English != "<p>shared prompt</p>" {
		t.Fatalf("prompt english = %q", s.prompt.Question.HTML.English)
	}
}

func TestPromptAnswerExtractionTargetsAnswerSide(t *testing.T) {
	s, _ := newTestScreen()
	s.cursor = 0

	s.Update(imageReadMsg{DraftID: promptTarget, Side: sideAnswer, Image: vlm.Image{Data: []byte{9}}})
	if len(s.prompt.Answer.Image) != 1 {
		t.Fatal("answer image must attach to the prompt answer side")
	}
	if len(s.prompt.Question.Image) != 0 {
		t.Fatal("question side must stay untouched")
	}
}

func TestExtractionFillsFields(t *testing.T) {
	s, _ := newTestScreen()
	id := s.drafts[0].ID

	field := "question:" + id
	seq := s.bridge.Begin(field)
	s.Update(extractionDoneMsg{
		DraftID: id,
		Side:    sideQuestion,
		Seq:     seq,
		Result:  &vlm.Extraction{Korean: "<p>문제</p>", English: "<p>problem</p>"},
	})

	if s.drafts[0].Question.HTML.Korean != "<p>문제</p>" {
		t.Fatalf("korean = %q", s.drafts[0].Question.HTML.Korean)
	}
	if s.drafts[0].Question.HTML.English != "<p>problem</p>" {
		t.Fatalf("english = %q", s.drafts[0].Question.HTML.English)
	}
}

func TestStaleExtractionDropped(t *testing.T) {
	s, _ := newTestScreen()
	id := s.drafts[0].ID
	s.drafts[0].Question.HTML.Korean = "현재 텍스트"

	field := "question:" + id
	stale := s.bridge.Begin(field)
	s.bridge.Begin(field) // a newer request supersedes the first

	s.Update(extractionDoneMsg{
		DraftID: id,
		Side:    sideQuestion,
		Seq:     stale,
		Result:  &vlm.Extraction{Korean: "뒤늦은 결과"},
	})

	if s.drafts[0].Question.HTML.Korean != "현재 텍스트" {
		t.Fatalf("korean = %q, stale result must be dropped", s.drafts[0].Question.HTML.Korean)
	}
}

func TestExtractionFailureLeavesFieldsAndImage(t *testing.T) {
	s, _ := newTestScreen()
	id := s.drafts[0].ID
	s.drafts[0].Question.HTML.Korean = "기존 텍스트"
	s.drafts[0].Question.Image = []byte{1}

	field := "question:" + id
	seq := s.bridge.Begin(field)
	s.Update(extractionDoneMsg{
		DraftID: id,
		Side:    sideQuestion,
		Seq:     seq,
		Err:     &vlm.BridgeError{Err: errors.New("timeout")},
	})

	if s.drafts[0].Question.HTML.Korean != "기존 텍스트" {
		t.Fatal("failed extraction must not touch text fields")
	}
	if len(s.drafts[0].Question.Image) != 1 {
		t.Fatal("attached image must survive a failed extraction")
	}
	if !s.statusErr {
		t.Fatal("expected error status")
	}
	key := sideKey{draftID: id, s: sideQuestion}
	if s.extracting[key] != extractFailed {
		t.Fatal("expected failed extraction state")
	}
}

func TestAppendToBank(t *testing.T) {
	s, store := newTestScreen()
	s.drafts[0].Question.HTML.Korean = "<p>문제 1</p>"
	s.drafts[0].Answer.HTML.Korean = "<p>답 1</p>"

	s.Update(keyPress('b'))

	if store.Len() != 1 {
		t.Fatalf("store len = %d, want 1", store.Len())
	}
	rec := store.Records()[0]
	if rec.Instruction != "<p>문제 1</p>" {
		t.Fatalf("instruction = %q", rec.Instruction)
	}
	if rec.ProblemID < 1000 || rec.ProblemID > 10999 {
		t.Fatalf("problem id %d outside export band", rec.ProblemID)
	}
}

func TestAppendBlankDraftsRejected(t *testing.T) {
	s, store := newTestScreen()

	s.Update(keyPress('b'))

	if store.Len() != 0 {
		t.Fatal("blank drafts must not produce records")
	}
	if !s.statusErr {
		t.Fatal("expected error status")
	}
}

func TestViewShowsDraftStates(t *testing.T) {
	s, _ := newTestScreen()
	s.drafts[0].Question.HTML.Korean = "<p>행렬 문제</p>"
	s.drafts[0].Question.Image = []byte{1}

	out := s.View(100, 30)
	if !strings.Contains(out, "행렬 문제") {
		t.Fatalf("missing draft preview in:\n%s", out)
	}
	if !strings.Contains(out, "img:q") {
		t.Fatal("missing image tag")
	}
	if !strings.Contains(out, "Prompt") {
		t.Fatal("missing prompt row")
	}
}
