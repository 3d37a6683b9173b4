package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/dsmirnov/wordrill/internal/ui/layout"
)

// Screen is one full-frame view managed by the router. The app model
// owns the header and footer; View renders only the content between
// them.
type Screen interface {
	// Init returns the screen's startup command.
	Init() tea.Cmd

	// Update handles a message and returns the resulting screen and a
	// follow-up command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content into the given area.
	View(width, height int) string

	// Title names the screen in the header.
	Title() string
}

// KeyHintProvider lets a screen contribute its own footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
