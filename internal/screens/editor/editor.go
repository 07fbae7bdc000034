// Package editor implements the bank editing screen: grouped record
// navigation, field editing, reclassification, and JSON import/export.
package editor

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/classday/probank/internal/bank"
	"github.com/classday/probank/internal/bankfile"
	"github.com/classday/probank/internal/catalog"
	"github.com/classday/probank/internal/screen"
	"github.com/classday/probank/internal/ui/components"
	"github.com/classday/probank/internal/ui/layout"
)

type mode int

const (
	modeList mode = iota
	modeEdit
	modeCategory
	modePath
)

type pathAction int

const (
	pathImport pathAction = iota
	pathExport
)

// row is one display line of the grouped bank: a parent followed by its
// sorted children.
type row struct {
	rec   bank.ProblemRecord
	child bool
}

// editable field order in edit mode.
var fieldLabels = []string{
	"Instruction (KO)", "Instruction (EN)",
	"Answer (KO)", "Answer (EN)",
	"Hint (KO)", "Hint (EN)",
}

// Screen is the bank editor.
type Screen struct {
	store *bank.Store

	rows        []row
	rowsVersion uint64
	cursor      int

	mode mode

	// edit mode
	editID   int
	editType bank.Type
	fields   []components.TextArea
	focus    int

	// category mode
	catStage int // 0 = top level, 1 = sub level
	topIdx   int
	subIdx   int

	// path mode
	pathInput  components.TextInput
	pathAction pathAction

	status    string
	statusErr bool
	width     int
}

var _ screen.Screen = (*Screen)(nil)

// New creates the editor screen over a shared bank store.
func New(store *bank.Store) *Screen {
	s := &Screen{store: store}
	s.refreshRows()
	return s
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

// refreshRows rebuilds the display rows when the store has changed.
func (s *Screen) refreshRows() {
	if s.rows != nil && s.rowsVersion == s.store.Version() {
		return
	}
	groups := s.store.Groups()
	rows := make([]row, 0, s.store.Len())
	for _, g := range groups {
		rows = append(rows, row{rec: g.Parent})
		for _, c := range g.Children {
			rows = append(rows, row{rec: c, child: true})
		}
	}
	s.rows = rows
	s.rowsVersion = s.store.Version()
	if s.cursor >= len(rows) {
		s.cursor = len(rows) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case fileLoadedMsg:
		if msg.Err != nil {
			s.setStatus(fmt.Sprintf("import failed: %v", msg.Err), true)
			return s, nil
		}
		s.store.Load(msg.Records)
		if top, sub, ok := bankfile.InferSelection(msg.Records); ok {
			s.store.SetSelection(top, sub)
		}
		s.refreshRows()
		s.cursor = 0
		s.setStatus(fmt.Sprintf("imported %d records from %s", len(msg.Records), msg.Path), false)
		return s, nil

	case fileSavedMsg:
		if msg.Err != nil {
			s.setStatus(fmt.Sprintf("export failed: %v", msg.Err), true)
			return s, nil
		}
		s.setStatus(fmt.Sprintf("exported to %s", msg.Path), false)
		return s, nil
	}

	switch s.mode {
	case modeEdit:
		return s.updateEdit(msg)
	case modeCategory:
		return s.updateCategory(msg)
	case modePath:
		return s.updatePath(msg)
	}
	return s.updateList(msg)
}

func (s *Screen) updateList(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	s.refreshRows()

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.rows)-1 {
			s.cursor++
		}
	case "enter":
		if r, ok := s.selected(); ok {
			s.beginEdit(r)
			return s, s.fields[0].Focus()
		}
	case "p":
		id := s.store.AddPrompt()
		s.refreshRows()
		s.moveCursorTo(id)
		s.setStatus("added problem group", false)
	case "a":
		if r, ok := s.selected(); ok {
			parentID := r.ProblemID
			if r.ParentID != nil {
				parentID = *r.ParentID
			}
			id := s.store.AddChild(parentID)
			s.refreshRows()
			s.moveCursorTo(id)
			s.setStatus("added sub-problem", false)
		}
	case "d":
		if r, ok := s.selected(); ok {
			s.store.Remove(r.ProblemID)
			s.refreshRows()
			s.setStatus(fmt.Sprintf("removed record %d", r.ProblemID), false)
		}
	case "c":
		s.enterCategoryMode()
	case "i":
		s.enterPathMode(pathImport, "")
		return s, s.pathInput.Init()
	case "e":
		s.enterPathMode(pathExport, bankfile.Filename(time.Now()))
		return s, s.pathInput.Init()
	}
	return s, nil
}

func (s *Screen) selected() (bank.ProblemRecord, bool) {
	if s.cursor < 0 || s.cursor >= len(s.rows) {
		return bank.ProblemRecord{}, false
	}
	return s.rows[s.cursor].rec, true
}

func (s *Screen) moveCursorTo(id int) {
	for i, r := range s.rows {
		if r.rec.ProblemID == id {
			s.cursor = i
			return
		}
	}
}

func (s *Screen) setStatus(msg string, isErr bool) {
	s.status = msg
	s.statusErr = isErr
}

// ---- edit mode ----

func (s *Screen) beginEdit(r bank.ProblemRecord) {
	s.mode = modeEdit
	s.editID = r.ProblemID
	s.editType = r.Type
	s.focus = 0

	values := []string{
		r.Instruction, r.InstructionEn,
		r.Answer, r.AnswerEn,
		r.Hint, r.HintEn,
	}
	s.fields = make([]components.TextArea, len(fieldLabels))
	for i, label := range fieldLabels {
		ta := components.NewTextArea(label, "")
		ta.SetValue(values[i])
		if s.width > 0 {
			ta.SetWidth(s.width - 8)
		}
		s.fields[i] = ta
	}
}

func (s *Screen) updateEdit(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			s.mode = modeList
			s.setStatus("edit cancelled", false)
			return s, nil
		case "tab":
			return s, s.cycleFocus(1)
		case "shift+tab":
			return s, s.cycleFocus(-1)
		case "ctrl+t":
			if s.editType == bank.TypeShort {
				s.editType = bank.TypeEssay
			} else {
				s.editType = bank.TypeShort
			}
			return s, nil
		case "ctrl+s":
			s.applyEdit()
			s.mode = modeList
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.fields[s.focus], cmd = s.fields[s.focus].Update(msg)
	return s, cmd
}

func (s *Screen) cycleFocus(dir int) tea.Cmd {
	s.fields[s.focus].Blur()
	s.focus = (s.focus + dir + len(s.fields)) % len(s.fields)
	return s.fields[s.focus].Focus()
}

func (s *Screen) applyEdit() {
	s.store.Patch(s.editID, bank.Patch{
		Instruction:   bank.String(s.fields[0].Value()),
		InstructionEn: bank.String(s.fields[1].Value()),
		Answer:        bank.String(s.fields[2].Value()),
		AnswerEn:      bank.String(s.fields[3].Value()),
		Hint:          bank.String(s.fields[4].Value()),
		HintEn:        bank.String(s.fields[5].Value()),
		Type:          &s.editType,
	})
	s.refreshRows()
	s.setStatus(fmt.Sprintf("saved record %d", s.editID), false)
}

// ---- category mode ----

func (s *Screen) enterCategoryMode() {
	s.mode = modeCategory
	s.catStage = 0
	s.topIdx = 0
	s.subIdx = 0

	top, _ := s.store.Selection()
	for i, t := range catalog.TopLevels() {
		if t.ID == top {
			s.topIdx = i
		}
	}
}

func (s *Screen) updateCategory(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	tops := catalog.TopLevels()
	var subs []catalog.SubLevel
	if s.topIdx < len(tops) {
		subs = catalog.SubLevelsOf(tops[s.topIdx].ID)
	}

	switch kmsg.String() {
	case "esc":
		s.mode = modeList
	case "up", "k":
		if s.catStage == 0 && s.topIdx > 0 {
			s.topIdx--
		} else if s.catStage == 1 && s.subIdx > 0 {
			s.subIdx--
		}
	case "down", "j":
		if s.catStage == 0 && s.topIdx < len(tops)-1 {
			s.topIdx++
		} else if s.catStage == 1 && s.subIdx < len(subs)-1 {
			s.subIdx++
		}
	case "enter":
		if s.catStage == 0 {
			s.catStage = 1
			s.subIdx = 0
			return s, nil
		}
		if s.subIdx < len(subs) {
			s.store.UpdateAllCategories(tops[s.topIdx].ID, subs[s.subIdx].ID)
			s.refreshRows()
			s.setStatus(fmt.Sprintf("reclassified bank to %s › %s", tops[s.topIdx].Label, subs[s.subIdx].Label), false)
		}
		s.mode = modeList
	}
	return s, nil
}

// ---- path mode ----

func (s *Screen) enterPathMode(action pathAction, prefill string) {
	s.mode = modePath
	s.pathAction = action
	s.pathInput = components.NewTextInput("path/to/problems.json", false, 0)
	if prefill != "" {
		s.pathInput.Model.SetValue(prefill)
	}
}

func (s *Screen) updatePath(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			s.mode = modeList
			return s, nil
		case "enter":
			path := s.pathInput.Value()
			if path == "" {
				return s, nil
			}
			s.mode = modeList
			if s.pathAction == pathImport {
				return s, importCmd(path)
			}
			return s, exportCmd(path, s.store.Records())
		}
	}

	var cmd tea.Cmd
	s.pathInput, cmd = s.pathInput.Update(msg)
	return s, cmd
}

func importCmd(path string) tea.Cmd {
	return func() tea.Msg {
		records, err := bankfile.ReadFile(path)
		return fileLoadedMsg{Records: records, Path: path, Err: err}
	}
}

func exportCmd(path string, records []bank.ProblemRecord) tea.Cmd {
	return func() tea.Msg {
		err := bankfile.Write(path, records)
		return fileSavedMsg{Path: path, Err: err}
	}
}

func (s *Screen) Title() string {
	return "Bank Editor"
}

// KeyHints provides the footer hints for the active mode.
func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeEdit:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Ctrl+T", Description: "Type"},
			{Key: "Ctrl+S", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	case modeCategory:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Cancel"},
		}
	case modePath:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Edit"},
		{Key: "p/a/d", Description: "Add group/sub/delete"},
		{Key: "c", Description: "Category"},
		{Key: "i/e", Description: "Import/Export"},
	}
}
