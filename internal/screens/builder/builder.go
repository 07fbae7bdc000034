// Package builder implements the worksheet authoring screen: a shared prompt
// plus a list of drafts, each side fillable by hand or from an image through
// the extraction bridge.
package builder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/classday/probank/internal/bank"
	"github.com/classday/probank/internal/bankfile"
	"github.com/classday/probank/internal/screen"
	"github.com/classday/probank/internal/ui/components"
	"github.com/classday/probank/internal/ui/layout"
	"github.com/classday/probank/internal/vlm"
	"github.com/classday/probank/internal/worksheet"
)

type mode int

const (
	modeBrowse mode = iota
	modeEdit
	modeImage
	modeExport
)

// extractState tracks an in-flight extraction per draft side.
type extractState int

const (
	extractIdle extractState = iota
	extractRunning
	extractFailed
)

type sideKey struct {
	draftID string
	s       side
}

// promptTarget stands in for a draft ID when extraction targets the prompt
// row. Draft IDs are UUIDs, so it can never collide with one.
const promptTarget = "prompt"

// Screen is the worksheet builder.
type Screen struct {
	store  *bank.Store
	bridge *vlm.Bridge

	prompt worksheet.Prompt
	drafts []worksheet.Draft
	cursor int // 0 = prompt row, 1..len(drafts) = draft rows

	mode mode

	// edit mode: 4 textareas (question KO/EN, answer KO/EN)
	fields     []components.TextArea
	focus      int
	editPrompt bool
	editID     string

	// image mode
	pathInput components.TextInput
	imgSide   side

	// export mode
	exportInput components.TextInput

	extracting map[sideKey]extractState

	status    string
	statusErr bool
	width     int
}

var _ screen.Screen = (*Screen)(nil)

// New creates the builder screen. The bridge may be nil, which disables
// image extraction but leaves manual authoring intact.
func New(store *bank.Store, bridge *vlm.Bridge) *Screen {
	return &Screen{
		store:      store,
		bridge:     bridge,
		drafts:     []worksheet.Draft{worksheet.NewDraft()},
		extracting: make(map[sideKey]extractState),
	}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case imageReadMsg:
		return s.handleImageRead(msg)
	case extractionDoneMsg:
		return s.handleExtractionDone(msg)
	case exportDoneMsg:
		if msg.Err != nil {
			s.setStatus(fmt.Sprintf("export failed: %v", msg.Err), true)
		} else {
			s.setStatus(fmt.Sprintf("wrote %d records to %s", msg.Count, msg.Path), false)
		}
		return s, nil
	}

	switch s.mode {
	case modeEdit:
		return s.updateEdit(msg)
	case modeImage:
		return s.updateImage(msg)
	case modeExport:
		return s.updateExport(msg)
	}
	return s.updateBrowse(msg)
}

func (s *Screen) updateBrowse(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.drafts) {
			s.cursor++
		}
	case "n":
		s.drafts = append(s.drafts, worksheet.NewDraft())
		s.cursor = len(s.drafts)
		s.setStatus("added draft", false)
	case "d":
		if i := s.cursor - 1; i >= 0 && i < len(s.drafts) {
			s.drafts = append(s.drafts[:i], s.drafts[i+1:]...)
			if s.cursor > len(s.drafts) {
				s.cursor = len(s.drafts)
			}
			s.setStatus("removed draft", false)
		}
	case "enter":
		s.beginEdit()
		return s, s.fields[0].Focus()
	case "u":
		return s.beginImage(sideQuestion)
	case "U":
		return s.beginImage(sideAnswer)
	case "e":
		s.mode = modeExport
		s.exportInput = components.NewTextInput("path/to/problems.json", false, 0)
		s.exportInput.Model.SetValue(bankfile.Filename(time.Now()))
		return s, s.exportInput.Init()
	case "b":
		return s.appendToBank()
	}
	return s, nil
}

// ---- edit mode ----

func (s *Screen) beginEdit() {
	s.mode = modeEdit
	s.focus = 0

	var q, a worksheet.Bilingual
	if s.cursor == 0 {
		s.editPrompt = true
		q, a = s.prompt.Question.HTML, s.prompt.Answer.HTML
	} else {
		s.editPrompt = false
		d := s.drafts[s.cursor-1]
		s.editID = d.ID
		q, a = d.Question.HTML, d.Answer.HTML
	}

	labels := []string{"Question (KO)", "Question (EN)", "Answer (KO)", "Answer (EN)"}
	values := []string{q.Korean, q.English, a.Korean, a.English}
	s.fields = make([]components.TextArea, len(labels))
	for i, label := range labels {
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
			s.mode = modeBrowse
			return s, nil
		case "tab":
			return s, s.cycleFocus(1)
		case "shift+tab":
			return s, s.cycleFocus(-1)
		case "ctrl+s":
			s.applyEdit()
			s.mode = modeBrowse
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
	q := worksheet.Bilingual{Korean: s.fields[0].Value(), English: s.fields[1].Value()}
	a := worksheet.Bilingual{Korean: s.fields[2].Value(), English: s.fields[3].Value()}

	if s.editPrompt {
		s.prompt.Question.HTML = q
		s.prompt.Answer.HTML = a
		s.setStatus("saved prompt", false)
		return
	}
	for i := range s.drafts {
		if s.drafts[i].ID == s.editID {
			s.drafts[i].Question.HTML = q
			s.drafts[i].Answer.HTML = a
			s.setStatus("saved draft", false)
			return
		}
	}
}

// ---- image attach + extraction ----

func (s *Screen) beginImage(target side) (screen.Screen, tea.Cmd) {
	if s.bridge == nil {
		s.setStatus("no extraction provider configured", true)
		return s, nil
	}
	s.mode = modeImage
	s.imgSide = target
	s.pathInput = components.NewTextInput("path/to/problem.png", false, 0)
	return s, s.pathInput.Init()
}

func (s *Screen) updateImage(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			s.mode = modeBrowse
			return s, nil
		case "enter":
			path := s.pathInput.Value()
			if path == "" {
				return s, nil
			}
			s.mode = modeBrowse
			target := promptTarget
			if s.cursor > 0 {
				target = s.drafts[s.cursor-1].ID
			}
			return s, readImageCmd(target, s.imgSide, path)
		}
	}

	var cmd tea.Cmd
	s.pathInput, cmd = s.pathInput.Update(msg)
	return s, cmd
}

func readImageCmd(draftID string, target side, path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return imageReadMsg{DraftID: draftID, Side: target, Err: err}
		}
		return imageReadMsg{
			DraftID: draftID,
			Side:    target,
			Image:   vlm.Image{Data: data, MIME: mimeFor(path)},
		}
	}
}

func mimeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/png"
	}
}

func (s *Screen) handleImageRead(msg imageReadMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.setStatus(fmt.Sprintf("read image: %v", msg.Err), true)
		return s, nil
	}

	target := s.sideRef(msg.DraftID, msg.Side)
	if target == nil {
		return s, nil
	}

	// Attach the image immediately; recognized text arrives later.
	target.Image = msg.Image.Data

	key := sideKey{draftID: msg.DraftID, s: msg.Side}
	s.extracting[key] = extractRunning
	s.setStatus("extracting text from image...", false)

	field := fmt.Sprintf("%s:%s", msg.Side, msg.DraftID)
	seq := s.bridge.Begin(field)
	bridge := s.bridge
	return s, func() tea.Msg {
		result, err := bridge.ExtractField(context.Background(), field, msg.Image)
		return extractionDoneMsg{DraftID: msg.DraftID, Side: msg.Side, Seq: seq, Result: result, Err: err}
	}
}

func (s *Screen) handleExtractionDone(msg extractionDoneMsg) (screen.Screen, tea.Cmd) {
	field := fmt.Sprintf("%s:%s", msg.Side, msg.DraftID)
	if msg.Seq != s.bridge.Current(field) {
		// A newer upload superseded this request.
		return s, nil
	}

	key := sideKey{draftID: msg.DraftID, s: msg.Side}
	target := s.sideRef(msg.DraftID, msg.Side)
	if target == nil {
		delete(s.extracting, key)
		return s, nil
	}

	if msg.Err != nil {
		// The attached image stays; the text fields are untouched.
		s.extracting[key] = extractFailed
		s.setStatus(fmt.Sprintf("extraction failed: %v", msg.Err), true)
		return s, nil
	}

	target.HTML = worksheet.Bilingual{Korean: msg.Result.Korean, English: msg.Result.English}
	delete(s.extracting, key)
	s.setStatus(fmt.Sprintf("extracted %s text", msg.Side), false)
	return s, nil
}

// sideRef resolves an extraction target to the prompt or a draft side. A nil
// return means the draft was removed while the request was in flight.
func (s *Screen) sideRef(draftID string, target side) *worksheet.Side {
	if draftID == promptTarget {
		if target == sideAnswer {
			return &s.prompt.Answer
		}
		return &s.prompt.Question
	}
	for i := range s.drafts {
		if s.drafts[i].ID == draftID {
			if target == sideAnswer {
				return &s.drafts[i].Answer
			}
			return &s.drafts[i].Question
		}
	}
	return nil
}

// ---- export ----

func (s *Screen) flatten() []bank.ProblemRecord {
	_, sub := s.store.Selection()
	return worksheet.Flatten(worksheet.FlattenInput{
		Prompt:    s.prompt,
		Drafts:    s.drafts,
		ChapterID: sub,
	})
}

func (s *Screen) updateExport(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			s.mode = modeBrowse
			return s, nil
		case "enter":
			path := s.exportInput.Value()
			if path == "" {
				return s, nil
			}
			s.mode = modeBrowse
			records := s.flatten()
			if len(records) == 0 {
				s.setStatus("nothing to export: all drafts are blank", true)
				return s, nil
			}
			return s, func() tea.Msg {
				err := bankfile.Write(path, records)
				return exportDoneMsg{Path: path, Count: len(records), Err: err}
			}
		}
	}

	var cmd tea.Cmd
	s.exportInput, cmd = s.exportInput.Update(msg)
	return s, cmd
}

func (s *Screen) appendToBank() (screen.Screen, tea.Cmd) {
	records := s.flatten()
	if len(records) == 0 {
		s.setStatus("nothing to add: all drafts are blank", true)
		return s, nil
	}
	s.store.Append(records)
	s.setStatus(fmt.Sprintf("added %d records to the bank", len(records)), false)
	return s, nil
}

func (s *Screen) setStatus(msg string, isErr bool) {
	s.status = msg
	s.statusErr = isErr
}

func (s *Screen) Title() string {
	return "Worksheet Builder"
}

// KeyHints provides the footer hints for the active mode.
func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeEdit:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Ctrl+S", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	case modeImage, modeExport:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Edit"},
		{Key: "n/d", Description: "Add/remove draft"},
		{Key: "u/U", Description: "Image → question/answer"},
		{Key: "e/b", Description: "Export/Add to bank"},
	}
}
