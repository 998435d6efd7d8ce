package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lessonlab/quizforge/internal/ocr"
	"github.com/lessonlab/quizforge/internal/quizgen"
	"github.com/lessonlab/quizforge/internal/router"
	"github.com/lessonlab/quizforge/internal/screen"
	"github.com/lessonlab/quizforge/internal/screens/input"
	sess "github.com/lessonlab/quizforge/internal/session"
	"github.com/lessonlab/quizforge/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	session *sess.Session
	router  *router.Router
	width   int
	height  int
}

// newAppModel creates the root model: one session shared by every
// screen, with the input screen at the bottom of the stack.
func newAppModel(generator quizgen.Generator, extractor ocr.Extractor) AppModel {
	session := sess.New()
	return AppModel{
		session: session,
		router:  router.New(input.New(session, generator, extractor)),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.session.Phase.String(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hinter, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(hinter.KeyHints(), footerHints...)
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(generator quizgen.Generator, extractor ocr.Extractor) error {
	p := tea.NewProgram(newAppModel(generator, extractor))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
