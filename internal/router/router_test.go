package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/lessonlab/quizforge/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title     string
	initRan   bool
	initCount int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	s.initCount++
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "input"}
	r := New(s1)

	s2 := &stubScreen{title: "quiz"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "quiz" {
		t.Errorf("expected active 'quiz', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "input"}
	r := New(s1)

	s2 := &stubScreen{title: "quiz"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "input" {
		t.Errorf("expected active 'input', got %q", r.Active().Title())
	}
}

func TestPopReinitsExposedScreen(t *testing.T) {
	s1 := &stubScreen{title: "input"}
	r := New(s1)

	r.Push(&stubScreen{title: "quiz"})
	r.Pop()

	if s1.initCount != 1 {
		t.Errorf("expected exposed screen Init to run once, got %d", s1.initCount)
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "input"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestPopToRoot(t *testing.T) {
	s1 := &stubScreen{title: "input"}
	r := New(s1)

	r.Push(&stubScreen{title: "quiz"})
	r.Push(&stubScreen{title: "results"})

	r.Update(PopToRootMsg{})

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "input" {
		t.Errorf("expected active 'input', got %q", r.Active().Title())
	}
	if s1.initCount != 1 {
		t.Errorf("expected root screen Init to run on unwind, got %d", s1.initCount)
	}
}

func TestPopToRootNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "input"}
	r := New(s1)

	r.PopToRoot()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
}

func TestPushScreenMsg(t *testing.T) {
	s1 := &stubScreen{title: "input"}
	r := New(s1)

	s2 := &stubScreen{title: "quiz"}
	r.Update(PushScreenMsg{Screen: s2})

	if r.Active().Title() != "quiz" {
		t.Errorf("expected active 'quiz', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run via PushScreenMsg")
	}
}
