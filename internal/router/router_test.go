package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dsmirnov/wordrill/internal/screen"
)

// stubScreen implements screen.Screen for testing.
type stubScreen struct {
	title   string
	inited  bool
	lastMsg tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.inited = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.lastMsg = msg
	return s, nil
}

func (s *stubScreen) View(width, height int) string {
	return s.title
}

func (s *stubScreen) Title() string {
	return s.title
}

func TestNew_InitialIsActive(t *testing.T) {
	a := &stubScreen{title: "drill"}
	r := New(a)
	if r.Active() != a {
		t.Fatal("initial screen is not active")
	}
	if r.View(80, 24) != "drill" {
		t.Errorf("View() = %q, want the active screen's content", r.View(80, 24))
	}
}

func TestUpdate_PushSwitchesActive(t *testing.T) {
	a := &stubScreen{title: "drill"}
	b := &stubScreen{title: "summary"}
	r := New(a)

	r.Update(PushScreenMsg{Screen: b})
	if r.Active() != b {
		t.Fatal("pushed screen is not active")
	}
	if !b.inited {
		t.Error("pushed screen was not initialized")
	}
}

func TestUpdate_ForwardsToActiveOnly(t *testing.T) {
	a := &stubScreen{title: "drill"}
	b := &stubScreen{title: "summary"}
	r := New(a)
	r.Update(PushScreenMsg{Screen: b})

	msg := tea.KeyPressMsg{Code: tea.KeyEnter}
	r.Update(msg)
	if b.lastMsg == nil {
		t.Fatal("active screen did not receive the message")
	}
	if a.lastMsg != nil {
		t.Error("covered screen received the message")
	}
}
