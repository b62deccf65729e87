package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/yuchen/hana/internal/quiz"
	"github.com/yuchen/hana/internal/ui/components"
	"github.com/yuchen/hana/internal/ui/theme"
)

const cardWidth = 36

func (s *Screen) View(width, height int) string {
	switch s.phase {
	case phaseQuitConfirm:
		return renderQuitConfirm(width)
	case phaseComplete:
		return s.renderComplete(width)
	case phaseCard, phaseCardExit:
		return s.renderCard(width)
	case phaseFeedback:
		return s.renderFeedback(width)
	case phaseWrongFlash:
		// Hold the question with its wrong mark before the correction.
		return s.renderQuestion(width)
	case phaseCorrection:
		return s.renderCorrection(width)
	default:
		return s.renderQuestion(width)
	}
}

func (s *Screen) renderCard(width int) string {
	q := s.session.Current()
	if q == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(s.renderCardStatus(width))
	b.WriteString("\n\n")

	front := []string{"", theme.Korean.Render(q.Prompt), ""}
	back := []string{
		theme.Korean.Render(q.Target.Korean),
		theme.Hint.Render(q.Target.Romanization),
		"",
		theme.Gloss.Render(q.Target.DisplayMeaning(string(s.settings.Language))),
	}
	if q.Target.Example != "" {
		back = append(back, "", theme.Hint.Render(q.Target.Example))
	}

	card := components.Card{
		Front:   front,
		Back:    back,
		Flipped: s.flipped,
		Offset:  s.gesture.Offset(),
		Verdict: s.verdict,
		Width:   cardWidth,
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card.View()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("tap to flip · swipe right if you know it"))

	return b.String()
}

func (s *Screen) renderCardStatus(width int) string {
	status := fmt.Sprintf("Card %d/%d   %s %d   %s %d",
		s.session.Index+1,
		len(s.session.Questions),
		theme.Known.Render("✓"),
		s.known,
		theme.Unknown.Render("✗"),
		s.unknown,
	)
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(status)
}

func (s *Screen) renderQuestion(width int) string {
	q := s.session.Current()
	if q == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(s.renderQuizStatus(width))
	b.WriteString("\n")

	switch q.Kind {
	case quiz.KindAudioChoice:
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Bold(true).
			Render("🔊  Which word did you hear?"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))

	case quiz.KindDictation:
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(theme.Gloss.Render(q.Prompt)))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(s.input.View()))

	case quiz.KindHandwriting:
		// Row budget above the pad must stay equal to padTopLines so
		// mouse hit testing matches the rendered position.
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(theme.Gloss.Render(q.Prompt) + "  " + theme.Hint.Render("write it below")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.pad.View()))
		b.WriteString("\n")
		if s.analyzing {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render("Analyzing..."))
		}
	}

	return b.String()
}

func (s *Screen) renderQuizStatus(width int) string {
	status := fmt.Sprintf("Answered %d   %s %d", s.answered, theme.Known.Render("✓"), s.correct)
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(status)
}

func (s *Screen) renderFeedback(width int) string {
	q := s.session.Current()
	if q == nil {
		return ""
	}

	body := theme.Correct.Render("정답!") + "\n\n" +
		theme.Korean.Render(q.Target.Korean) + "  " +
		theme.Gloss.Render(q.Target.DisplayMeaning(string(s.settings.Language)))

	return "\n\n" + lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(body)
}

func (s *Screen) renderCorrection(width int) string {
	q := s.session.Current()
	if q == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Incorrect.Render("Not quite")))
	b.WriteString("\n\n")

	lines := []string{
		theme.Korean.Render(q.Target.Korean) + "  " + theme.Hint.Render("["+string(q.Target.POS)+"]"),
		theme.Hint.Render(q.Target.Romanization),
		"",
		theme.Gloss.Render(q.Target.DisplayMeaning(string(s.settings.Language))),
	}
	if s.lastAnswer != "" {
		lines = append(lines, "", theme.Hint.Render("you wrote: ")+theme.Incorrect.Render(s.lastAnswer))
	} else if q.Kind == quiz.KindHandwriting {
		lines = append(lines, "", theme.Hint.Render("could not read your writing"))
	}

	card := theme.Card.Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("press any key to continue"))

	return b.String()
}

func (s *Screen) renderComplete(width int) string {
	var body string
	if s.mode == quiz.ModeFlashcard {
		body = theme.Title.Render("Deck complete!") + "\n\n" +
			fmt.Sprintf("%s %d known    %s %d to review",
				theme.Known.Render("✓"), s.known,
				theme.Unknown.Render("✗"), s.unknown)
	} else {
		body = theme.Title.Render("Quiz complete!") + "\n\n" +
			fmt.Sprintf("%s %d of %d correct",
				theme.Known.Render("✓"), s.correct, s.answered)
	}

	return "\n\n" + lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(body)
}

func renderQuitConfirm(width int) string {
	body := theme.Body.Render("Leave this session?") + "\n\n" +
		theme.Hint.Render("progress so far is already saved")

	return "\n\n" + lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(body)
}
