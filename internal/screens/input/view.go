package input

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/lessonlab/quizforge/internal/quiz"
	sess "github.com/lessonlab/quizforge/internal/session"
	"github.com/lessonlab/quizforge/internal/ui/theme"
)

var categoryLabels = [3]string{
	"Comprehension (multiple choice)",
	"Literacy (multiple choice)",
	"Literacy (short answer)",
}

func (s *InputScreen) View(width, height int) string {
	if s.session.Phase == sess.PhaseGenerating {
		return s.renderGenerating(width)
	}

	var b strings.Builder

	if s.session.Err != "" {
		b.WriteString(theme.ErrorBanner.Width(min(width-4, 76)).Render(s.session.Err))
		b.WriteString("\n\n")
	}

	b.WriteString(s.renderContentSection(width))
	b.WriteString("\n")
	b.WriteString(s.renderSettingsSection())
	b.WriteString("\n")
	b.WriteString(s.renderImageSection(width))

	return b.String()
}

func (s *InputScreen) renderGenerating(width int) string {
	msg := fmt.Sprintf("\n\n\n%s  Generating your quiz...", s.spinner.View())
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(msg)
}

func (s *InputScreen) renderContentSection(width int) string {
	var b strings.Builder
	b.WriteString(sectionHeading("Lesson content", s.focus == focusContent))
	b.WriteString("\n")
	b.WriteString(s.content.View())
	b.WriteString("\n")
	return b.String()
}

func (s *InputScreen) renderSettingsSection() string {
	var b strings.Builder
	b.WriteString(sectionHeading("Question settings", s.focus == focusSettings))
	b.WriteString("\n")

	for c := quiz.CategoryComprehension; c <= quiz.CategoryShortAnswer; c++ {
		setting := s.session.Settings.For(c)

		check := "[ ]"
		if setting.Enabled {
			check = "[x]"
		}

		cursor := "  "
		if s.focus == focusSettings && c == s.settingsRow {
			cursor = "▸ "
		}

		line := fmt.Sprintf("%s%s %-33s  %2d questions   %s",
			cursor, check, categoryLabels[c], setting.Count, setting.Difficulty)

		style := theme.Unselected
		if s.focus == focusSettings && c == s.settingsRow {
			style = theme.Selected
		} else if !setting.Enabled {
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		}

		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *InputScreen) renderImageSection(width int) string {
	var b strings.Builder
	b.WriteString(sectionHeading("Read text from an image", s.focus == focusImagePath))
	b.WriteString("\n")

	if s.session.OCRPending {
		name := ""
		if s.session.Image != nil {
			name = s.session.Image.Name
		}
		b.WriteString(fmt.Sprintf("%s  Reading %s...", s.spinner.View(), name))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(s.imagePath.View())
	b.WriteString("\n")
	return b.String()
}

func sectionHeading(title string, focused bool) string {
	if focused {
		return theme.Selected.Render("── " + title + " ──")
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render("── " + title + " ──")
}
