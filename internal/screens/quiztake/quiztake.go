package quiztake

import (
	tea "charm.land/bubbletea/v2"

	"github.com/lessonlab/quizforge/internal/router"
	"github.com/lessonlab/quizforge/internal/screen"
	"github.com/lessonlab/quizforge/internal/screens/results"
	sess "github.com/lessonlab/quizforge/internal/session"
	"github.com/lessonlab/quizforge/internal/ui/components"
	"github.com/lessonlab/quizforge/internal/ui/layout"
)

// QuizTakeScreen walks through the generated quiz one question at a
// time, collecting answers until submission.
type QuizTakeScreen struct {
	session *sess.Session

	index  int // flat question index
	choice components.ChoiceList
	answer components.TextArea

	edit *editForm
}

var _ screen.Screen = (*QuizTakeScreen)(nil)
var _ screen.KeyHintProvider = (*QuizTakeScreen)(nil)

// New creates the quiz screen over the shared session. The session must
// hold a generated quiz.
func New(session *sess.Session) *QuizTakeScreen {
	s := &QuizTakeScreen{session: session}
	s.loadQuestion(0)
	return s
}

func (s *QuizTakeScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizTakeScreen) Title() string {
	if s.session.Quiz == nil {
		return "Quiz"
	}
	return s.session.Quiz.Title
}

func (s *QuizTakeScreen) KeyHints() []layout.KeyHint {
	if s.edit != nil {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Ctrl+S", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if s.answer.Focused() {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Done writing"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Question"},
		{Key: "↑↓ Enter", Description: "Answer"},
		{Key: "E", Description: "Edit"},
		{Key: "Ctrl+S", Description: "Submit"},
		{Key: "Ctrl+X", Description: "New quiz"},
	}
}

// loadQuestion points the screen at flat index i and rebuilds the
// answer widgets for it.
func (s *QuizTakeScreen) loadQuestion(i int) {
	quiz := s.session.Quiz
	if quiz == nil || quiz.Len() == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= quiz.Len() {
		i = quiz.Len() - 1
	}
	s.index = i

	q, err := quiz.At(i)
	if err != nil {
		return
	}

	if q.IsMultipleChoice() {
		s.choice = components.NewChoiceList(q.Options)
	} else {
		s.answer = components.NewTextArea("Write your answer...", 70, 5)
		s.answer.SetValue(s.session.Answer(i))
	}
}

func (s *QuizTakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.edit != nil {
		return s.updateEdit(msg)
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s.forwardAnswer(msg)
	}

	quiz := s.session.Quiz
	if quiz == nil || quiz.Len() == 0 {
		return s, nil
	}

	q, err := quiz.At(s.index)
	if err != nil {
		return s, nil
	}

	// A focused free-response box swallows everything except escape.
	if s.answer.Focused() && !q.IsMultipleChoice() {
		if kmsg.String() == "esc" {
			s.answer.Blur()
			return s, nil
		}
		return s.forwardAnswer(msg)
	}

	switch kmsg.String() {
	case "left", "p":
		s.loadQuestion(s.index - 1)
		return s, nil

	case "right", "n":
		s.loadQuestion(s.index + 1)
		return s, nil

	case "e":
		return s.openEdit()

	case "ctrl+s":
		return s.submit()

	case "ctrl+x":
		s.session.ClearAll()
		return s, func() tea.Msg { return router.PopToRootMsg{} }

	case "enter":
		if q.IsMultipleChoice() {
			if err := s.session.SetAnswer(s.index, s.choice.Current()); err == nil {
				if s.index < quiz.Len()-1 {
					s.loadQuestion(s.index + 1)
				}
			}
			return s, nil
		}
		return s, s.answer.Focus()
	}

	if q.IsMultipleChoice() {
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		return s, cmd
	}

	return s, nil
}

// forwardAnswer routes messages into the free-response box and records
// the draft as the answer on every change.
func (s *QuizTakeScreen) forwardAnswer(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.session.Quiz == nil {
		return s, nil
	}
	q, err := s.session.Quiz.At(s.index)
	if err != nil || q.IsMultipleChoice() {
		return s, nil
	}

	var cmd tea.Cmd
	s.answer, cmd = s.answer.Update(msg)
	_ = s.session.SetAnswer(s.index, s.answer.Value())
	return s, cmd
}

func (s *QuizTakeScreen) submit() (screen.Screen, tea.Cmd) {
	if err := s.session.Submit(); err != nil {
		return s, nil
	}
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: results.New(s.session)}
	}
}
