package catalog

import "testing"

func TestChapterNumber(t *testing.T) {
	tests := []struct {
		id   int
		want string
		ok   bool
	}{
		{171, "2", true},
		{172, "2.1", true},
		{190, "5.5", true},
		{217, "11.2", true},
		{224, "8.4", true}, // extension id
		{999, "", false},
		{0, "", false},
	}

	for _, tt := range tests {
		got, ok := ChapterNumber(tt.id)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ChapterNumber(%d) = (%q, %v), want (%q, %v)", tt.id, got, ok, tt.want, tt.ok)
		}
	}
}

func TestChapterNumberOrRaw(t *testing.T) {
	if got := ChapterNumberOrRaw(172); got != "2.1" {
		t.Fatalf("known id: got %q, want %q", got, "2.1")
	}
	// Unknown ids fall back to the stringified raw id, not empty.
	if got := ChapterNumberOrRaw(999); got != "999" {
		t.Fatalf("unknown id: got %q, want %q", got, "999")
	}
}

func TestTopLevelFor(t *testing.T) {
	tests := []struct {
		sub  int
		top  int
		ok   bool
	}{
		{172, 171, true},
		{218, 171, true}, // lab session belongs to its chapter
		{197, 191, true},
		{217, 215, true},
		{171, 0, false}, // top-level ids are not sub-levels
		{300, 0, false},
	}

	for _, tt := range tests {
		top, ok := TopLevelFor(tt.sub)
		if ok != tt.ok || top != tt.top {
			t.Errorf("TopLevelFor(%d) = (%d, %v), want (%d, %v)", tt.sub, top, ok, tt.top, tt.ok)
		}
	}
}

func TestEverySubLevelHasChapterNumber(t *testing.T) {
	for _, top := range TopLevels() {
		if _, ok := ChapterNumber(top.ID); !ok {
			t.Errorf("top-level %d has no chapter number", top.ID)
		}
		for _, sub := range SubLevelsOf(top.ID) {
			if _, ok := ChapterNumber(sub.ID); !ok {
				t.Errorf("sub-level %d (%s) has no chapter number", sub.ID, sub.Label)
			}
			if got, ok := TopLevelFor(sub.ID); !ok || got != top.ID {
				t.Errorf("TopLevelFor(%d) = (%d, %v), want (%d, true)", sub.ID, got, ok, top.ID)
			}
		}
	}
}

func TestSubLevelsOfUnknown(t *testing.T) {
	if subs := SubLevelsOf(999); subs != nil {
		t.Fatalf("expected nil for unknown top-level, got %v", subs)
	}
}
