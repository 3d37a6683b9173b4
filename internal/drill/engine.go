package drill

import (
	"math/rand"
	"time"

	"github.com/dsmirnov/wordrill/internal/vocab"
)

// Verdict classifies the outcome of one submitted answer.
type Verdict int

const (
	// VerdictCorrect means the answer matched an accepted translation.
	VerdictCorrect Verdict = iota
	// VerdictWrong means it did not; the word stays in rotation.
	VerdictWrong
	// VerdictBonus means the answer was the correction token and was
	// consumed by the previous word; the current word must be asked
	// again.
	VerdictBonus
	// VerdictQuit means the quit token was entered.
	VerdictQuit
)

// Turn is one word put to the operator.
type Turn struct {
	Item    vocab.Item
	Answers []string
}

// Outcome reports the effect of one submitted answer.
type Outcome struct {
	Verdict   Verdict
	Successes int
	Graduated bool
	Bonus     *BonusCredit
}

// BonusCredit reports a correction applied to the previous word: two
// points instead of the single point a normal correct answer earns.
type BonusCredit struct {
	Word      string
	Successes int
	Graduated bool
}

// Engine runs the grading loop over a vocabulary store. It keeps the
// rollback slot for the bonus correction and the pending-retry flag
// between turns.
type Engine struct {
	store        *vocab.Store
	rng          *rand.Rand
	prev         *vocab.Item
	pendingRetry bool
}

// NewEngine creates an engine over store. A nil rng selects a
// time-seeded source.
func NewEngine(store *vocab.Store, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{store: store, rng: rng}
}

// PendingRetry reports whether the last graded answer was wrong, which
// arms the bonus correction for the next prompt.
func (e *Engine) PendingRetry() bool {
	return e.pendingRetry
}

// NextTurn draws uniformly random indexes, skipping graduated and
// blank slots, until a drillable item comes up. It returns nil when
// nothing is left to drill. Store errors (malformed dates) propagate.
func (e *Engine) NextTurn(now time.Time) (*Turn, error) {
	n, err := e.store.DrillableCount(now)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	for {
		item, err := e.store.Item(e.rng.Intn(e.store.Size()), now)
		if err != nil {
			return nil, err
		}
		if !item.Drillable() {
			continue
		}
		return &Turn{Item: item, Answers: Translations(item.Record.Translation)}, nil
	}
}

// Submit grades one raw answer for the given turn and persists the
// resulting counters. The caller decides what to do with the verdict:
// quit ends the session, bonus means the current word must be asked
// again, correct and wrong advance to the next turn.
func (e *Engine) Submit(turn *Turn, raw string, now time.Time) (Outcome, error) {
	answer := Normalize(raw)

	if answer == QuitToken {
		return Outcome{Verdict: VerdictQuit}, nil
	}

	if answer == BonusToken && e.pendingRetry && e.prev != nil {
		// The random draw can serve the just-missed word again, making
		// the credited word the one on the prompt. Refresh the turn so
		// the next grade builds on the credited counter instead of
		// writing the stale snapshot back.
		sameWord := e.prev.Index == turn.Item.Index
		out, err := e.creditPrevious(now)
		if err != nil {
			return out, err
		}
		if sameWord {
			refreshed, err := e.store.Item(turn.Item.Index, now)
			if err != nil {
				return Outcome{}, err
			}
			turn.Item = refreshed
		}
		return out, nil
	}

	item := turn.Item
	var out Outcome
	if matches(turn.Answers, answer) {
		e.pendingRetry = false
		item.Record.Successes++
		out.Verdict = VerdictCorrect
		if item.Record.Successes >= e.store.MaxSuccesses() {
			out.Graduated = true
			item.Record.LearnedOn = now.Format(vocab.DateLayout)
		}
	} else {
		e.pendingRetry = true
		item.Record.Successes--
		if answer == "" {
			// A non-answer costs double.
			item.Record.Successes--
		}
		out.Verdict = VerdictWrong
	}
	if err := e.store.Update(item); err != nil {
		return Outcome{}, err
	}
	out.Successes = item.Record.Successes

	// Refresh the rollback slot from the store so a graduation
	// observed there empties it. A correct answer that just graduated
	// skips the refresh: the word leaves rotation with the slot as-is.
	if !(out.Verdict == VerdictCorrect && out.Graduated) {
		refreshed, err := e.store.Item(item.Index, now)
		if err != nil {
			return Outcome{}, err
		}
		if refreshed.Drillable() {
			e.prev = &refreshed
		} else {
			e.prev = nil
		}
	}

	return out, nil
}

// creditPrevious applies the bonus correction to the rollback item.
// The pending-retry flag stays set: the token was consumed by the
// previous word, not answered for the current one.
func (e *Engine) creditPrevious(now time.Time) (Outcome, error) {
	e.prev.Record.Successes += 2
	credit := &BonusCredit{
		Word:      e.prev.Record.Word,
		Successes: e.prev.Record.Successes,
	}
	if e.prev.Record.Successes >= e.store.MaxSuccesses() {
		credit.Graduated = true
		e.prev.Record.LearnedOn = now.Format(vocab.DateLayout)
	}
	if err := e.store.Update(*e.prev); err != nil {
		return Outcome{}, err
	}
	if credit.Graduated {
		e.prev = nil
	}
	return Outcome{Verdict: VerdictBonus, Successes: credit.Successes, Bonus: credit}, nil
}

func matches(answers []string, answer string) bool {
	for _, a := range answers {
		if a == answer {
			return true
		}
	}
	return false
}
