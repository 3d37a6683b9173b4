package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	drillengine "github.com/dsmirnov/wordrill/internal/drill"
	"github.com/dsmirnov/wordrill/internal/history"
	"github.com/dsmirnov/wordrill/internal/router"
	drillscreen "github.com/dsmirnov/wordrill/internal/screens/drill"
	"github.com/dsmirnov/wordrill/internal/screen"
	"github.com/dsmirnov/wordrill/internal/ui/layout"
	"github.com/dsmirnov/wordrill/internal/vocab"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	store  *vocab.Store
	width  int
	height int
}

// newAppModel creates an AppModel starting on the drill screen.
func newAppModel(store *vocab.Store, engine *drillengine.Engine, recorder history.Recorder) AppModel {
	return AppModel{
		router: router.New(drillscreen.New(store, engine, recorder)),
		store:  store,
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
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

	header := layout.RenderHeader(title, m.store.LearnedCount(), m.store.Size(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = append(hints, footerHints...)
		}
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

// Run starts the Bubble Tea program over an opened vocabulary store.
func Run(store *vocab.Store, engine *drillengine.Engine, recorder history.Recorder) error {
	p := tea.NewProgram(newAppModel(store, engine, recorder))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
