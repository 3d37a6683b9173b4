package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	drillengine "github.com/dsmirnov/wordrill/internal/drill"
	"github.com/dsmirnov/wordrill/internal/ui/theme"
)

func (s *DrillScreen) View(width, height int) string {
	switch s.phase {
	case phaseFault:
		return renderFault(width, s.faultMsg)
	case phaseFlushRetry:
		return s.renderFlushRetry(width)
	case phaseFeedback:
		return s.renderFeedback(width)
	case phasePrompt:
		return s.renderPrompt(width)
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n  Picking a word...")
}

// renderPrompt renders the current word and the answer line.
func (s *DrillScreen) renderPrompt(width int) string {
	if s.turn == nil {
		return ""
	}
	rec := s.turn.Item.Record

	var b strings.Builder

	infoLine := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  answered %d   correct %d", s.answered, s.correct))
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if s.turn.Item.Revived {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("Time to repeat this word!"))
		b.WriteString("\n\n")
	}

	word := theme.Word.Render(rec.Word)
	if rec.Transcription != "" {
		word += "  " + theme.Transcription.Render("["+rec.Transcription+"]")
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(word))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Translation: " + s.input.View()))

	return b.String()
}

// renderFeedback renders the grading overlay.
func (s *DrillScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	switch s.outcome.Verdict {
	case drillengine.VerdictBonus:
		bonus := s.outcome.Bonus
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Credited!"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(fmt.Sprintf("%q is back to %d", bonus.Word, bonus.Successes)))
		if bonus.Graduated {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Accent).
				Bold(true).
				Render(fmt.Sprintf("%q learned!", bonus.Word)))
		}

	case drillengine.VerdictCorrect:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Right!"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Successes: %d", s.outcome.Successes)))
		if s.outcome.Graduated {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Accent).
				Bold(true).
				Render("Word learned!"))
		}

	default:
		rec := s.turn.Item.Record
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Wrong!"))
		b.WriteString("\n")
		line := fmt.Sprintf("%s — %s", rec.Word, rec.Translation)
		if rec.Transcription != "" {
			line = fmt.Sprintf("%s [%s] — %s", rec.Word, rec.Transcription, rec.Translation)
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(line))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Successes: %d   (enter + next time if you were right)", s.outcome.Successes)))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// renderFlushRetry renders the locked-file prompt.
func (s *DrillScreen) renderFlushRetry(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render("Could not save your progress"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Close the file %q and press Enter.", s.store.Path())))
	if s.flushErr != nil {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(s.flushErr.Error()))
	}

	return b.String()
}

// renderFault renders an unrecoverable error.
func renderFault(width int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to finish.", msg))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
