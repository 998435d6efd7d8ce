package input

import (
	"testing"

	"github.com/lessonlab/quizforge/internal/quiz"
	sess "github.com/lessonlab/quizforge/internal/session"
)

func TestInitRefreshesFromSession(t *testing.T) {
	s := sess.New()
	s.Content = "lesson about deltas"

	scr := New(s, nil, nil)
	scr.Init()

	if got := scr.content.Value(); got != "lesson about deltas" {
		t.Errorf("content = %q, want session content", got)
	}
}

func TestInitAfterClearAllDropsStaleWidgetState(t *testing.T) {
	s := sess.New()
	s.Content = "stale lesson text"

	scr := New(s, nil, nil)
	scr.Init()
	scr.imagePath.SetValue("/tmp/page.png")
	scr.settingsRow = quiz.CategoryShortAnswer
	scr.focus = focusSettings

	// ctrl+x from the quiz or results screen clears the session and
	// unwinds to this screen, which re-runs Init.
	s.ClearAll()
	scr.Init()

	if got := scr.content.Value(); got != "" {
		t.Errorf("content = %q, want empty after full clear", got)
	}
	if got := scr.imagePath.Value(); got != "" {
		t.Errorf("imagePath = %q, want empty after full clear", got)
	}
	if scr.settingsRow != quiz.CategoryComprehension {
		t.Errorf("settingsRow = %v, want first row", scr.settingsRow)
	}
	if scr.focus != focusContent {
		t.Errorf("focus = %v, want content", scr.focus)
	}

	// The write-back path must not resurrect the cleared text.
	scr.forwardToFocused(struct{}{})
	if s.Content != "" {
		t.Errorf("session.Content = %q, want still empty after a forwarded message", s.Content)
	}
}
