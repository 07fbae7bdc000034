package editor

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/classday/probank/internal/bank"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func seededScreen(t *testing.T) (*Screen, *bank.Store) {
	t.Helper()
	store := bank.NewStore()
	chapter := "3.1"
	parentTwo := 2001
	store.Load([]bank.ProblemRecord{
		{ProblemID: 2001, ChapterID: 183, ChapterNumber: &chapter, Instruction: "<p>다음을 푸시오</p>", Type: bank.TypeShort},
		{ProblemID: 2002, ChapterID: 183, ChapterNumber: &chapter, ParentID: &parentTwo, Order: bank.Int(1), Instruction: "<p>첫 번째</p>", Answer: "5", Type: bank.TypeShort},
	})
	return New(store), store
}

func TestAddPromptMovesCursor(t *testing.T) {
	s, store := seededScreen(t)

	before := store.Len()
	s.Update(keyPress('p'))

	if store.Len() != before+1 {
		t.Fatalf("store len = %d, want %d", store.Len(), before+1)
	}
	r, ok := s.selected()
	if !ok {
		t.Fatal("no selected row after add")
	}
	if !r.IsPrompt() {
		t.Fatalf("cursor on %+v, want the new prompt", r)
	}
}

func TestAddChildFromChildRowTargetsParent(t *testing.T) {
	s, store := seededScreen(t)

	// Move cursor onto the existing child row.
	s.Update(keyPress('j'))
	r, _ := s.selected()
	if r.ParentID == nil {
		t.Fatalf("expected cursor on child, got %d", r.ProblemID)
	}

	s.Update(keyPress('a'))

	groups := store.Groups()
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if len(groups[0].Children) != 2 {
		t.Fatalf("got %d children, want 2", len(groups[0].Children))
	}
}

func TestDeleteKeepsOrphans(t *testing.T) {
	s, store := seededScreen(t)

	// Delete the parent; the child survives as an orphan.
	s.Update(keyPress('d'))

	if store.Len() != 1 {
		t.Fatalf("store len = %d, want 1", store.Len())
	}
	if len(store.Groups()) != 0 {
		t.Fatal("orphan must not be grouped")
	}
}

func TestEditRoundTrip(t *testing.T) {
	s, store := seededScreen(t)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.mode != modeEdit {
		t.Fatal("expected edit mode")
	}

	s.fields[0].SetValue("<p>수정된 지시문</p>")
	s.fields[2].SetValue("42")
	s.Update(tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl})
	s.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})

	if s.mode != modeList {
		t.Fatal("expected list mode after save")
	}
	r, _ := store.Get(2001)
	if r.Instruction != "<p>수정된 지시문</p>" {
		t.Fatalf("instruction = %q", r.Instruction)
	}
	if r.Answer != "42" {
		t.Fatalf("answer = %q", r.Answer)
	}
	if r.Type != bank.TypeEssay {
		t.Fatalf("type = %q, want essay after toggle", r.Type)
	}
}

func TestEditCancelLeavesRecord(t *testing.T) {
	s, store := seededScreen(t)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s.fields[0].SetValue("discarded")
	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})

	r, _ := store.Get(2001)
	if r.Instruction != "<p>다음을 푸시오</p>" {
		t.Fatalf("instruction = %q, cancel must not write", r.Instruction)
	}
}

func TestCategoryFlowReclassifiesBank(t *testing.T) {
	s, store := seededScreen(t)

	s.Update(keyPress('c'))
	if s.mode != modeCategory {
		t.Fatal("expected category mode")
	}

	// Pick the first top level, then its first sub level.
	s.topIdx = 0
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if s.mode != modeList {
		t.Fatal("expected list mode after selection")
	}
	top, _ := store.Selection()
	if top != 171 {
		t.Fatalf("top selection = %d, want 171", top)
	}
	r, _ := store.Get(2001)
	if r.ChapterID == 183 {
		t.Fatal("records must be reclassified")
	}
}

func TestImportMessageLoadsStore(t *testing.T) {
	s, store := seededScreen(t)

	chapter := "2"
	s.Update(fileLoadedMsg{
		Path: "in.json",
		Records: []bank.ProblemRecord{
			{ProblemID: 9001, ChapterID: 172, ChapterNumber: &chapter, Instruction: "<p>새 문제</p>", Type: bank.TypeShort},
		},
	})

	if store.Len() != 1 {
		t.Fatalf("store len = %d, want 1", store.Len())
	}
	top, sub := store.Selection()
	if top != 171 || sub != 172 {
		t.Fatalf("selection = (%d, %d), want inferred (171, 172)", top, sub)
	}
	if !strings.Contains(s.status, "imported 1 records") {
		t.Fatalf("status = %q", s.status)
	}
}

func TestImportErrorPreservesBank(t *testing.T) {
	s, store := seededScreen(t)
	before := store.Len()

	s.Update(fileLoadedMsg{Path: "bad.json", Err: errors.New("element 3: missing answer")})

	if store.Len() != before {
		t.Fatal("failed import must not touch the bank")
	}
	if !s.statusErr {
		t.Fatal("expected error status")
	}
}

func TestViewShowsGroupedRows(t *testing.T) {
	s, _ := seededScreen(t)

	out := s.View(100, 30)
	if !strings.Contains(out, "다음을 푸시오") {
		t.Fatalf("missing parent preview in:\n%s", out)
	}
	if !strings.Contains(out, "첫 번째") {
		t.Fatalf("missing child preview in:\n%s", out)
	}
	if !strings.Contains(out, "3.1") {
		t.Fatal("missing chapter number tag")
	}
}
