package builder

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/classday/probank/internal/catalog"
	"github.com/classday/probank/internal/ui/theme"
	"github.com/classday/probank/internal/worksheet"
)

var htmlTags = regexp.MustCompile("<[^>]+>")

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

	switch s.mode {
	case modeEdit:
		return s.viewEdit(width)
	case modeImage:
		title := fmt.Sprintf("Attach image to %s", s.imgSide)
		return theme.Title.Render(title) + "\n\n  " + s.pathInput.View() + "\n\n" + s.statusLine()
	case modeExport:
		return theme.Title.Render("Export worksheet to JSON") + "\n\n  " + s.exportInput.View() + "\n\n" + s.statusLine()
	}
	return s.viewBrowse(width)
}

func (s *Screen) viewBrowse(width int) string {
	var b strings.Builder
	maxPreview := width - 30
	if maxPreview < 10 {
		maxPreview = 10
	}

	// Prompt row.
	promptText := preview(s.prompt.Question.HTML.Korean, maxPreview)
	if promptText == "" {
		promptText = theme.Hint.Render("(blank: drafts export as independent problems)")
	}
	line := theme.Parent.Render("■ Prompt") + " " + promptText
	if len(s.prompt.Question.Image) > 0 {
		line += " " + s.sideTag(promptTarget, sideQuestion, "img:q")
	}
	if len(s.prompt.Answer.Image) > 0 {
		line += " " + s.sideTag(promptTarget, sideAnswer, "img:a")
	}
	b.WriteString(cursorLine(line, s.cursor == 0) + "\n")

	for i, d := range s.drafts {
		b.WriteString(cursorLine(s.renderDraft(i+1, d, maxPreview), s.cursor == i+1) + "\n")
	}

	_, sub := s.store.Selection()
	if label, ok := catalog.SubLevelLabel(sub); ok {
		b.WriteString("\n" + theme.Hint.Render(fmt.Sprintf("  exporting into: %s %s", catalog.ChapterNumberOrRaw(sub), label)) + "\n")
	}

	b.WriteString("\n" + s.statusLine())
	return b.String()
}

func (s *Screen) renderDraft(n int, d worksheet.Draft, maxPreview int) string {
	text := preview(d.Question.HTML.Korean, maxPreview)
	if text == "" {
		text = theme.Hint.Render("(blank)")
	}

	var tags []string
	if len(d.Question.Image) > 0 {
		tags = append(tags, s.sideTag(d.ID, sideQuestion, "img:q"))
	}
	if len(d.Answer.Image) > 0 {
		tags = append(tags, s.sideTag(d.ID, sideAnswer, "img:a"))
	}

	line := theme.Child.Render(fmt.Sprintf("%d.", n)) + " " + text
	if len(tags) > 0 {
		line += " " + strings.Join(tags, " ")
	}
	return line
}

// sideTag renders an image marker colored by extraction state.
func (s *Screen) sideTag(draftID string, target side, label string) string {
	switch s.extracting[sideKey{draftID: draftID, s: target}] {
	case extractRunning:
		return theme.Dirty.Render("[" + label + "…]")
	case extractFailed:
		return theme.StatusErr.Render("[" + label + "!]")
	}
	return theme.StatusOK.Render("[" + label + "]")
}

func cursorLine(line string, selected bool) string {
	if selected {
		return theme.Selected.Render("▸ ") + line
	}
	return "  " + line
}

func (s *Screen) viewEdit(width int) string {
	var b strings.Builder

	title := "Editing prompt"
	if !s.editPrompt {
		title = "Editing draft"
	}
	b.WriteString(theme.Title.Render(title) + "\n\n")

	for i := range s.fields {
		s.fields[i].SetWidth(width - 8)
		b.WriteString(s.fields[i].View() + "\n")
	}

	b.WriteString("\n" + s.statusLine())
	return b.String()
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
