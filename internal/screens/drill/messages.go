package drill

import (
	drillengine "github.com/dsmirnov/wordrill/internal/drill"
)

// turnReadyMsg is sent when the next word has been drawn.
type turnReadyMsg struct {
	Turn *drillengine.Turn
	Err  error
}

// sessionEndMsg is sent to trigger the session end flow.
type sessionEndMsg struct{}
