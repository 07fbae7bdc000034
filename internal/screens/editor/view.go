package editor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/classday/probank/internal/catalog"
	"github.com/classday/probank/internal/ui/theme"
)

var htmlTags = regexp.MustCompile("<[^>]+>")

// preview strips HTML tags and truncates for one display line.
func preview(s string, max int) string {
	text := htmlTags.ReplaceAllString(s, "")
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) > max {
		return string(runes[:max-1]) + "…"
	}
	return text
}

func (s *Screen) View(width, height int) string {
	s.width = width
	s.refreshRows()

	switch s.mode {
	case modeEdit:
		return s.viewEdit(width)
	case modeCategory:
		return s.viewCategory()
	case modePath:
		return s.viewPath()
	}
	return s.viewList(width, height)
}

func (s *Screen) viewList(width, height int) string {
	var b strings.Builder

	if len(s.rows) == 0 {
		b.WriteString("\n" + theme.Hint.Render("  Empty bank. Press p to add a problem group, i to import."))
	}

	// Keep the cursor visible in tall banks.
	visible := height - 3
	if visible < 1 {
		visible = 1
	}
	start := 0
	if s.cursor >= visible {
		start = s.cursor - visible + 1
	}

	maxPreview := width - 30
	if maxPreview < 10 {
		maxPreview = 10
	}

	for i := start; i < len(s.rows) && i < start+visible; i++ {
		r := s.rows[i]
		line := s.renderRow(r, maxPreview)
		if i == s.cursor {
			line = theme.Selected.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + s.statusLine())
	return b.String()
}

func (s *Screen) renderRow(r row, maxPreview int) string {
	rec := r.rec
	text := preview(rec.Instruction, maxPreview)
	if text == "" {
		text = theme.Hint.Render("(no instruction)")
	}

	if r.child {
		order := "-"
		if rec.Order != nil {
			order = fmt.Sprintf("%d", *rec.Order)
		}
		return theme.Child.Render(fmt.Sprintf("  %s. [%d] %s", order, rec.ProblemID, text))
	}

	num := ""
	if rec.ChapterNumber != nil {
		num = *rec.ChapterNumber + " "
	}
	marker := theme.Parent.Render(fmt.Sprintf("■ %s[%d]", num, rec.ProblemID))
	typeTag := theme.Hint.Render(" " + string(rec.Type))
	return marker + " " + text + typeTag
}

func (s *Screen) viewEdit(width int) string {
	var b strings.Builder

	rec, _ := s.store.Get(s.editID)
	kind := "sub-problem"
	if rec.IsPrompt() {
		kind = "problem group"
	}
	b.WriteString(theme.Title.Render(fmt.Sprintf("Editing %s %d", kind, s.editID)) + "\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("  type: %s", s.editType)) + "\n\n")

	for i := range s.fields {
		s.fields[i].SetWidth(width - 8)
		b.WriteString(s.fields[i].View() + "\n")
	}

	b.WriteString("\n" + s.statusLine())
	return b.String()
}

func (s *Screen) viewCategory() string {
	var b strings.Builder
	tops := catalog.TopLevels()

	if s.catStage == 0 {
		b.WriteString(theme.Title.Render("Select top-level category") + "\n\n")
		for i, t := range tops {
			b.WriteString(menuLine(t.Label, i == s.topIdx))
		}
		return b.String()
	}

	top := tops[s.topIdx]
	b.WriteString(theme.Title.Render("Select sub-level in "+top.Label) + "\n\n")
	for i, sub := range catalog.SubLevelsOf(top.ID) {
		num := catalog.ChapterNumberOrRaw(sub.ID)
		b.WriteString(menuLine(fmt.Sprintf("%s  %s", num, sub.Label), i == s.subIdx))
	}
	return b.String()
}

func menuLine(label string, selected bool) string {
	if selected {
		return theme.Selected.Render("  ▸ "+label) + "\n"
	}
	return theme.Unselected.Render("    "+label) + "\n"
}

func (s *Screen) viewPath() string {
	title := "Import bank from JSON"
	if s.pathAction == pathExport {
		title = "Export bank to JSON"
	}
	return theme.Title.Render(title) + "\n\n  " + s.pathInput.View() + "\n\n" + s.statusLine()
}

func (s *Screen) statusLine() string {
	if s.status == "" {
		return ""
	}
	style := theme.StatusOK
	if s.statusErr {
		style = theme.StatusErr
	}
	return "  " + style.Render(s.status)
}

// CategoryLabel names the store's active sub-level for the header.
func (s *Screen) CategoryLabel() string {
	_, sub := s.store.Selection()
	label, ok := catalog.SubLevelLabel(sub)
	if !ok {
		return ""
	}
	return label
}
