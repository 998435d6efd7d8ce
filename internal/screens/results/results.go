package results

import (
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/lessonlab/quizforge/internal/export"
	"github.com/lessonlab/quizforge/internal/router"
	"github.com/lessonlab/quizforge/internal/screen"
	sess "github.com/lessonlab/quizforge/internal/session"
	"github.com/lessonlab/quizforge/internal/ui/layout"
)

// ResultsScreen shows the graded quiz: the score banner and a
// per-question review, plus the copy and export actions.
type ResultsScreen struct {
	session *sess.Session

	index  int    // reviewed question
	notice string // copy/export feedback line
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen over the shared session. The session
// must be in the results phase.
func New(session *sess.Session) *ResultsScreen {
	return &ResultsScreen{session: session}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Question"},
		{Key: "C", Description: "Copy"},
		{Key: "D", Description: "Save .doc"},
		{Key: "R", Description: "Retake"},
		{Key: "Ctrl+X", Description: "New quiz"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	g := s.session.Quiz
	if g == nil {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "p":
		if s.index > 0 {
			s.index--
		}

	case "right", "n":
		if s.index < g.Len()-1 {
			s.index++
		}

	case "c":
		if err := export.CopyToClipboard(g); err != nil {
			s.notice = "Copy failed: " + err.Error()
		} else {
			s.notice = "Copied the full quiz to the clipboard."
		}

	case "d":
		dir, err := os.Getwd()
		if err != nil {
			dir = "."
		}
		path, err := export.WriteDoc(g, dir)
		if err != nil {
			s.notice = "Export failed: " + err.Error()
		} else {
			s.notice = "Saved " + path
		}

	case "r":
		s.session.Reset()
		return s, func() tea.Msg { return router.PopToRootMsg{} }

	case "ctrl+x":
		s.session.ClearAll()
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}

	return s, nil
}
