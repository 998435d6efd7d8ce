package components

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/lessonlab/quizforge/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// SpinnerTickMsg advances the spinner animation.
type SpinnerTickMsg time.Time

// Spinner is a small frame-cycling activity indicator driven by
// tea.Tick messages.
type Spinner struct {
	frame int
}

// Tick returns the command that schedules the next animation frame.
func (s Spinner) Tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return SpinnerTickMsg(t)
	})
}

// Update advances the animation on tick messages.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	if _, ok := msg.(SpinnerTickMsg); ok {
		s.frame = (s.frame + 1) % len(spinnerFrames)
		return s, s.Tick()
	}
	return s, nil
}

// View renders the current frame.
func (s Spinner) View() string {
	return theme.Selected.Render(spinnerFrames[s.frame])
}
