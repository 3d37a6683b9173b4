package drill

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	drillengine "github.com/dsmirnov/wordrill/internal/drill"
	"github.com/dsmirnov/wordrill/internal/history"
	"github.com/dsmirnov/wordrill/internal/router"
	"github.com/dsmirnov/wordrill/internal/screen"
	"github.com/dsmirnov/wordrill/internal/screens/summary"
	"github.com/dsmirnov/wordrill/internal/ui/components"
	"github.com/dsmirnov/wordrill/internal/ui/layout"
	"github.com/dsmirnov/wordrill/internal/vocab"
)

type phase int

const (
	phaseLoading phase = iota
	phasePrompt
	phaseFeedback
	phaseFlushRetry
	phaseFault
)

// DrillScreen implements screen.Screen for the quiz loop.
type DrillScreen struct {
	store    *vocab.Store
	engine   *drillengine.Engine
	recorder history.Recorder

	sessionID string
	startedAt time.Time
	answered  int
	correct   int

	turn    *drillengine.Turn
	outcome drillengine.Outcome
	input   components.TextInput

	phase         phase
	faultMsg      string
	flushErr      error
	endAfterFlush bool
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)

// New creates a DrillScreen over an opened store. A nil recorder
// disables history persistence.
func New(store *vocab.Store, engine *drillengine.Engine, recorder history.Recorder) *DrillScreen {
	return &DrillScreen{
		store:     store,
		engine:    engine,
		recorder:  recorder,
		sessionID: uuid.NewString(),
		startedAt: time.Now(),
		input:     components.NewTextInput("Type the translation...", 60),
	}
}

func (s *DrillScreen) Init() tea.Cmd {
	if s.recorder != nil {
		_ = s.recorder.StartSession(context.Background(), history.Session{
			ID:        s.sessionID,
			File:      s.store.Path(),
			StartedAt: s.startedAt,
		})
	}
	return tea.Batch(s.nextTurn(), s.input.Init())
}

func (s *DrillScreen) Title() string {
	return "Drill"
}

func (s *DrillScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phasePrompt:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "-1", Description: "Finish"},
			{Key: "+", Description: "I was right"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case phaseFlushRetry:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Retry save"},
		}
	case phaseFault:
		return []layout.KeyHint{
			{Key: "any key", Description: "Finish"},
		}
	}
	return nil
}

func (s *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case turnReadyMsg:
		return s.handleTurnReady(msg)

	case sessionEndMsg:
		return s.handleSessionEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phasePrompt {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// nextTurn draws the next word asynchronously.
func (s *DrillScreen) nextTurn() tea.Cmd {
	return func() tea.Msg {
		turn, err := s.engine.NextTurn(time.Now())
		return turnReadyMsg{Turn: turn, Err: err}
	}
}

func (s *DrillScreen) handleTurnReady(msg turnReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		return s.fault(msg.Err.Error())
	}
	if msg.Turn == nil {
		// Everything is learned.
		return s, func() tea.Msg { return sessionEndMsg{} }
	}
	s.turn = msg.Turn
	s.input.Reset()
	s.phase = phasePrompt
	return s, s.input.Init()
}

func (s *DrillScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseFault:
		// Finalization still runs after a data fault.
		return s, func() tea.Msg { return sessionEndMsg{} }

	case phaseFlushRetry:
		if msg.String() == "enter" {
			return s.retryFlush()
		}
		return s, nil

	case phaseFeedback:
		if s.outcome.Verdict == drillengine.VerdictBonus && s.turn.Item.Drillable() {
			// The correction consumed the input; the current word is
			// asked again. A word graduated by its own credit advances
			// instead.
			s.input.Reset()
			s.phase = phasePrompt
			return s, s.input.Init()
		}
		s.phase = phaseLoading
		return s, s.nextTurn()

	case phasePrompt:
		if msg.String() == "enter" {
			return s.submitAnswer()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// submitAnswer grades the typed answer and persists the counters.
func (s *DrillScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	if s.turn == nil {
		return s, nil
	}

	raw := s.input.Value()
	out, err := s.engine.Submit(s.turn, raw, time.Now())
	if err != nil {
		return s.fault(err.Error())
	}

	if out.Verdict == drillengine.VerdictQuit {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}

	s.outcome = out
	s.answered++

	word := s.turn.Item.Record.Word
	graded := out.Verdict == drillengine.VerdictCorrect
	if out.Verdict == drillengine.VerdictBonus {
		// The credit belongs to the previous word.
		word = out.Bonus.Word
		graded = true
	}
	if graded {
		s.correct++
	}
	s.input.Submit(graded)

	if s.recorder != nil {
		_ = s.recorder.RecordAnswer(context.Background(), history.Answer{
			SessionID: s.sessionID,
			Word:      word,
			Answer:    raw,
			Correct:   graded,
			Successes: out.Successes,
			CreatedAt: time.Now(),
		})
	}

	return s.flushThen(false)
}

// flushThen writes the vocabulary file. A write failure parks the
// screen on the retry prompt; end controls what happens after a
// successful write.
func (s *DrillScreen) flushThen(end bool) (screen.Screen, tea.Cmd) {
	if err := s.store.Flush(); err != nil {
		s.flushErr = err
		s.endAfterFlush = end
		s.phase = phaseFlushRetry
		return s, nil
	}
	if end {
		return s.finishSession()
	}
	s.phase = phaseFeedback
	return s, nil
}

func (s *DrillScreen) retryFlush() (screen.Screen, tea.Cmd) {
	if err := s.store.Flush(); err != nil {
		s.flushErr = err
		return s, nil
	}
	s.flushErr = nil
	if s.endAfterFlush {
		return s.finishSession()
	}
	s.phase = phaseFeedback
	return s, nil
}

func (s *DrillScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	return s.flushThen(true)
}

func (s *DrillScreen) finishSession() (screen.Screen, tea.Cmd) {
	if s.recorder != nil {
		_ = s.recorder.EndSession(context.Background(), s.sessionID, time.Now(), s.answered, s.correct)
	}

	result := summary.Result{
		Learned:  s.store.LearnedCount(),
		Total:    s.store.Size(),
		Answered: s.answered,
		Correct:  s.correct,
		Duration: time.Since(s.startedAt),
	}
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: summary.New(result)}
	}
}

func (s *DrillScreen) fault(msg string) (screen.Screen, tea.Cmd) {
	s.faultMsg = msg
	s.phase = phaseFault
	return s, nil
}
