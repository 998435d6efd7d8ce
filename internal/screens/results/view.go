package results

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/lessonlab/quizforge/internal/quiz"
	"github.com/lessonlab/quizforge/internal/ui/components"
	"github.com/lessonlab/quizforge/internal/ui/theme"
)

var sectionNames = [3]string{
	"Comprehension",
	"Literacy (Multiple Choice)",
	"Literacy (Short Answer)",
}

func (s *ResultsScreen) View(width, height int) string {
	g := s.session.Quiz
	if g == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(s.renderScoreBanner(width))
	b.WriteString("\n")

	if s.notice != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(s.notice))
		b.WriteString("\n")
	}

	b.WriteString(s.renderMarks(g))
	b.WriteString("\n")
	b.WriteString(s.renderReview(g, width))

	return b.String()
}

// renderScoreBanner shows the percentage for quizzes with gradable
// questions, or a note when there is nothing to grade.
func (s *ResultsScreen) renderScoreBanner(width int) string {
	score := s.session.Score()

	var banner string
	if score == nil {
		banner = theme.Subtitle.Render("No auto-graded questions in this quiz.")
	} else {
		style := theme.Correct
		if *score < 60 {
			style = theme.Incorrect
		}
		banner = style.Render(fmt.Sprintf("Score: %d", *score))
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(banner)
}

// renderMarks draws one mark per question: correct, incorrect, or
// ungraded for free-response.
func (s *ResultsScreen) renderMarks(g *quiz.GeneratedQuiz) string {
	var b strings.Builder
	b.WriteString("  ")

	for i := 0; i < g.Len(); i++ {
		q, err := g.At(i)
		if err != nil {
			continue
		}

		var mark string
		switch {
		case !q.IsMultipleChoice():
			mark = lipgloss.NewStyle().Foreground(theme.TextDim).Render("◦")
		case s.session.Answer(i) == q.Answer:
			mark = theme.Correct.Render("✓")
		default:
			mark = theme.Incorrect.Render("✗")
		}

		if i == s.index {
			mark = lipgloss.NewStyle().Underline(true).Render(mark)
		}
		b.WriteString(mark)
		b.WriteString(" ")
	}

	return b.String()
}

// renderReview shows the current question with its grading detail.
func (s *ResultsScreen) renderReview(g *quiz.GeneratedQuiz, width int) string {
	q, err := g.At(s.index)
	if err != nil {
		return ""
	}
	pos, _ := quiz.Resolve(g.Lengths(), s.index)

	var b strings.Builder

	info := fmt.Sprintf("  Question %d of %d   %s", s.index+1, g.Len(), sectionNames[pos.Category])
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(info))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("%d. %s", s.index+1, q.Text)))
	b.WriteString("\n\n")

	chosen := s.session.Answer(s.index)

	if q.IsMultipleChoice() {
		list := components.NewChoiceList(q.Options)
		b.WriteString(list.ViewReview(chosen, q.Answer))
	} else {
		b.WriteString(theme.Body.Render("  Your answer: "))
		if chosen == "" {
			b.WriteString(theme.Hint.Render("(left blank)"))
		} else {
			b.WriteString(theme.Body.Render(chosen))
		}
		b.WriteString("\n")
		b.WriteString(theme.Correct.Render("  Reference answer: "))
		b.WriteString(theme.Body.Render(q.Answer))
		b.WriteString("\n")
	}

	if q.Explanation != "" {
		b.WriteString("\n")
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.TextDim).
			Render("Explanation: " + q.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Left, exp))
	}

	return b.String()
}
