package router

import (
	"github.com/dsmirnov/wordrill/internal/screen"

	tea "charm.land/bubbletea/v2"
)

// PushScreenMsg asks the router to make a new screen the active one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// Router keeps the stack of screens and routes messages to the top one.
type Router struct {
	stack []screen.Screen
}

// New creates a Router showing the initial screen.
func New(initial screen.Screen) *Router {
	return &Router{
		stack: []screen.Screen{initial},
	}
}

// Push puts s on top of the stack and runs its Init().
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Active returns the screen currently shown.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Update handles navigation messages itself and forwards everything
// else to the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if push, ok := msg.(PushScreenMsg); ok {
		return r.Push(push.Screen)
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
