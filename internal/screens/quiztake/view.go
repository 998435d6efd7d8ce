package quiztake

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/lessonlab/quizforge/internal/quiz"
	"github.com/lessonlab/quizforge/internal/ui/theme"
)

var sectionNames = [3]string{
	"Comprehension",
	"Literacy (Multiple Choice)",
	"Literacy (Short Answer)",
}

func (s *QuizTakeScreen) View(width, height int) string {
	g := s.session.Quiz
	if g == nil || g.Len() == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nThe quiz came back empty. Press Ctrl+X to start over.")
	}

	if s.edit != nil {
		return s.renderEdit(width)
	}

	q, err := g.At(s.index)
	if err != nil {
		return ""
	}

	pos, _ := quiz.Resolve(g.Lengths(), s.index)

	var b strings.Builder

	// Position line.
	answered := len(s.session.Answers)
	info := fmt.Sprintf("  Question %d of %d   %s   %d answered",
		s.index+1, g.Len(), sectionNames[pos.Category], answered)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(info))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Question text.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("%d. %s", s.index+1, q.Text)))
	b.WriteString("\n\n")

	if q.IsMultipleChoice() {
		b.WriteString(s.choice.View(s.session.Answer(s.index)))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("  Enter records the highlighted option."))
	} else {
		b.WriteString(s.answer.View())
		b.WriteString("\n")
		if !s.answer.Focused() {
			b.WriteString(theme.Hint.Render("  Press Enter to write your answer."))
		}
	}

	return b.String()
}

func (s *QuizTakeScreen) renderEdit(width int) string {
	f := s.edit

	var b strings.Builder
	b.WriteString(theme.Title.Render("Edit question"))
	b.WriteString("\n\n")

	if f.saveErr != "" {
		b.WriteString(theme.ErrorBanner.Render(f.saveErr))
		b.WriteString("\n\n")
	}

	b.WriteString(editLine("Question", f.question.View(), f.focus == fieldQuestion))

	for i := range f.options {
		label := fmt.Sprintf("Option %c", 'A'+i)
		b.WriteString(editLine(label, f.options[i].View(), f.focus == fieldOptionA+editField(i)))
	}

	answerLabel := "Answer"
	if !f.isMC {
		answerLabel = "Reference answer"
	}
	b.WriteString(editLine(answerLabel, f.answer.View(), f.focus == fieldAnswer))
	b.WriteString(editLine("Explanation", f.explanation.View(), f.focus == fieldExplanation))

	return b.String()
}

func editLine(label, field string, focused bool) string {
	style := lipgloss.NewStyle().Foreground(theme.TextDim)
	if focused {
		style = theme.Selected
	}
	return style.Render(fmt.Sprintf("  %-17s", label)) + field + "\n"
}
