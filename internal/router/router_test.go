package router

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/classday/probank/internal/bank"
	"github.com/classday/probank/internal/screen"
	"github.com/classday/probank/internal/screens/editor"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	home := &stubScreen{title: "Home"}
	r := New(home)

	ed := &stubScreen{title: "Bank Editor"}
	r.Push(ed)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "Bank Editor" {
		t.Errorf("expected active 'Bank Editor', got %q", r.Active().Title())
	}
	if !ed.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPopReturnsToHome(t *testing.T) {
	home := &stubScreen{title: "Home"}
	r := New(home)

	r.Push(&stubScreen{title: "Worksheet Builder"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "Home" {
		t.Errorf("expected active 'Home', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "Home"})

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestPushEditorScreenViaMsg(t *testing.T) {
	r := New(&stubScreen{title: "Home"})

	ed := editor.New(bank.NewStore())
	r.Update(PushScreenMsg{Screen: ed})

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "Bank Editor" {
		t.Errorf("expected active 'Bank Editor', got %q", r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "Home" {
		t.Errorf("expected active 'Home' after pop, got %q", r.Active().Title())
	}
}

func TestViewRendersActiveScreenOnly(t *testing.T) {
	r := New(&stubScreen{title: "Home"})
	r.Push(&stubScreen{title: "Worksheet Builder"})

	out := r.View(80, 24)
	if !strings.Contains(out, "Worksheet Builder") {
		t.Errorf("view missing active screen content: %q", out)
	}
	if strings.Contains(out, "Home") {
		t.Errorf("view leaked content from a covered screen: %q", out)
	}
}

func TestReplace(t *testing.T) {
	r := New(&stubScreen{title: "Home"})

	ed := &stubScreen{title: "Bank Editor"}
	r.Replace(ed)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "Bank Editor" {
		t.Errorf("expected active 'Bank Editor', got %q", r.Active().Title())
	}
	if !ed.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	r := New(&stubScreen{title: "Home"})

	b := &stubScreen{title: "Worksheet Builder"}
	r.Update(ReplaceScreenMsg{Screen: b})

	if r.Active().Title() != "Worksheet Builder" {
		t.Errorf("expected active 'Worksheet Builder', got %q", r.Active().Title())
	}
	if !b.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	r := New(&stubScreen{title: "Home"})
	r.Push(&stubScreen{title: "Bank Editor"})

	b := &stubScreen{title: "Worksheet Builder"}
	r.Replace(b)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "Worksheet Builder" {
		t.Errorf("expected active 'Worksheet Builder', got %q", r.Active().Title())
	}
}
