// Package home implements the landing screen with navigation into the
// editor and builder surfaces.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/classday/probank/internal/bank"
	"github.com/classday/probank/internal/catalog"
	"github.com/classday/probank/internal/router"
	"github.com/classday/probank/internal/screen"
	"github.com/classday/probank/internal/screens/builder"
	"github.com/classday/probank/internal/screens/editor"
	"github.com/classday/probank/internal/ui/components"
	"github.com/classday/probank/internal/ui/theme"
	"github.com/classday/probank/internal/vlm"
)

// HomeScreen is the landing screen of the application.
type HomeScreen struct {
	store  *bank.Store
	bridge *vlm.Bridge
	menu   components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen over the shared bank store. bridge may be nil
// when no extraction provider is configured.
func New(store *bank.Store, bridge *vlm.Bridge) *HomeScreen {
	items := []components.MenuItem{
		{Label: "BANK EDITOR", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: editor.New(store)}
			}
		}},
		{Label: "WORKSHEET BUILDER", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: builder.New(store, bridge)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		store:  store,
		bridge: bridge,
		menu:   components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("PROBANK"))
	sections = append(sections, theme.Subtitle.Render("bilingual math problem bank editor"))

	_, sub := h.store.Selection()
	category := ""
	if label, ok := catalog.SubLevelLabel(sub); ok {
		category = fmt.Sprintf("%s %s", catalog.ChapterNumberOrRaw(sub), label)
	}
	stats := fmt.Sprintf("%d records in bank", h.store.Len())
	if category != "" {
		stats += "   ·   " + category
	}
	if h.bridge != nil {
		stats += "   ·   " + h.bridge.ModelID()
	}
	sections = append(sections, theme.Hint.Render(stats))

	sections = append(sections, "", h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
