package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/classday/probank/internal/bank"
	"github.com/classday/probank/internal/catalog"
	"github.com/classday/probank/internal/router"
	"github.com/classday/probank/internal/screen"
	"github.com/classday/probank/internal/screens/editor"
	"github.com/classday/probank/internal/screens/home"
	"github.com/classday/probank/internal/ui/layout"
	"github.com/classday/probank/internal/vlm"
)

// Options carries the wired dependencies for the TUI.
type Options struct {
	Store  *bank.Store
	Bridge *vlm.Bridge // nil disables image extraction

	// StartEditor skips the home screen and opens the bank editor directly,
	// used when a bank file was passed on the command line.
	StartEditor bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	if opts.Store == nil {
		opts.Store = bank.NewStore()
	}
	r := router.New(home.New(opts.Store, opts.Bridge))
	if opts.StartEditor {
		r.Push(editor.New(opts.Store))
	}
	return AppModel{opts: opts, router: r}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+q":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	category := ""
	_, sub := m.opts.Store.Selection()
	if label, ok := catalog.SubLevelLabel(sub); ok {
		category = label
	}
	header := layout.RenderHeader(title, m.opts.Store.Len(), category, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hinter, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hinter.KeyHints()
	}
	if m.router.Depth() > 1 {
		footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+Q", Description: "Back"})
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
