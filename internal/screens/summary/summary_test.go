package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
)

func testResult() Result {
	return Result{
		Learned:  2,
		Total:    5,
		Answered: 12,
		Correct:  9,
		Duration: 95 * time.Second,
	}
}

func TestView_ShowsTallies(t *testing.T) {
	s := New(testResult())
	view := s.View(80, 24)

	for _, want := range []string{
		"Session complete!",
		"Duration: 1:35",
		"Answered: 12",
		"Correct: 9",
		"Accuracy: 75%",
		"Learned 2 of 5 words",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_AllLearned(t *testing.T) {
	s := New(Result{Learned: 3, Total: 3, Answered: 3, Correct: 3})
	if !strings.Contains(s.View(80, 24), "All words learned!") {
		t.Error("view missing the all-learned title")
	}
}

func TestView_NoAnswers(t *testing.T) {
	s := New(Result{Total: 3})
	if !strings.Contains(s.View(80, 24), "Accuracy: —") {
		t.Error("accuracy should be a placeholder with no answers")
	}
}

func TestUpdate_EnterQuits(t *testing.T) {
	s := New(testResult())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected the quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Enter should quit the program")
	}
}
