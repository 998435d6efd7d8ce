package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lessonlab/quizforge/internal/ui/theme"
)

var choiceLabels = []string{"A", "B", "C", "D", "E", "F"}

// ChoiceList renders the options of a multiple-choice question with a
// movable cursor. The recorded answer is passed in at render time so
// the component carries no quiz state of its own.
type ChoiceList struct {
	Options  []string
	Selected int
}

// NewChoiceList creates a choice list over the given options.
func NewChoiceList(options []string) ChoiceList {
	return ChoiceList{Options: options}
}

// Update handles cursor movement.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	}

	return c, nil
}

// Current returns the option text under the cursor.
func (c ChoiceList) Current() string {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return ""
	}
	return c.Options[c.Selected]
}

// View renders the options. The option matching chosen is marked as the
// recorded answer.
func (c ChoiceList) View(chosen string) string {
	var s string
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected {
			prefix = "▸ "
		}
		mark := "( )"
		if chosen != "" && opt == chosen {
			mark = "(●)"
		}
		line := fmt.Sprintf("%s%s %s  %s", prefix, mark, label(i), opt)

		if i == c.Selected {
			s += theme.Selected.Render(line) + "\n"
		} else {
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}

// ViewReview renders the options after grading: the correct option in
// green, a wrong chosen option in red, the rest dimmed.
func (c ChoiceList) ViewReview(chosen, correct string) string {
	var s string
	for i, opt := range c.Options {
		mark := "   "
		style := lipgloss.NewStyle().Foreground(theme.TextDim)

		switch {
		case opt == correct:
			mark = " ✓ "
			style = theme.Correct
		case opt == chosen:
			mark = " ✗ "
			style = theme.Incorrect
		}

		s += style.Render(fmt.Sprintf("%s%s  %s", mark, label(i), opt)) + "\n"
	}
	return s
}

func label(i int) string {
	if i < len(choiceLabels) {
		return "(" + choiceLabels[i] + ")"
	}
	return fmt.Sprintf("(%d)", i+1)
}
