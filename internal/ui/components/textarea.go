package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/classday/probank/internal/ui/theme"
)

// TextArea wraps bubbles/textarea for multi-line HTML+LaTeX fields.
type TextArea struct {
	Model textarea.Model
	Label string
}

// NewTextArea creates a styled multi-line input.
func NewTextArea(label, placeholder string) TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.SetHeight(4)
	return TextArea{Model: ta, Label: label}
}

// Init returns the initial command.
func (t TextArea) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages.
func (t TextArea) Update(msg tea.Msg) (TextArea, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the label and the input, bordered by focus state.
func (t TextArea) View() string {
	box := theme.FieldInactive
	if t.Model.Focused() {
		box = theme.FieldActive
	}
	return theme.FieldLabel.Render(t.Label) + "\n" + box.Render(t.Model.View())
}

// Value returns the current text.
func (t TextArea) Value() string {
	return t.Model.Value()
}

// SetValue replaces the current text.
func (t *TextArea) SetValue(s string) {
	t.Model.SetValue(s)
}

// Focus gives the input keyboard focus.
func (t *TextArea) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes keyboard focus.
func (t *TextArea) Blur() {
	t.Model.Blur()
}

// SetWidth resizes the input.
func (t *TextArea) SetWidth(w int) {
	t.Model.SetWidth(w)
}
