package input

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/lessonlab/quizforge/internal/ocr"
	"github.com/lessonlab/quizforge/internal/quiz"
	"github.com/lessonlab/quizforge/internal/quizgen"
	"github.com/lessonlab/quizforge/internal/router"
	"github.com/lessonlab/quizforge/internal/screen"
	"github.com/lessonlab/quizforge/internal/screens/quiztake"
	sess "github.com/lessonlab/quizforge/internal/session"
	"github.com/lessonlab/quizforge/internal/ui/components"
	"github.com/lessonlab/quizforge/internal/ui/layout"
)

// focusArea identifies which part of the screen receives keystrokes.
type focusArea int

const (
	focusContent focusArea = iota
	focusSettings
	focusImagePath
)

// imageMIMETypes maps file extensions to MIME types accepted by the
// vision providers.
var imageMIMETypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// InputScreen collects lesson content and generation settings. It is
// the root screen; the quiz and results screens stack on top of it.
type InputScreen struct {
	session   *sess.Session
	generator quizgen.Generator
	extractor ocr.Extractor

	focus       focusArea
	content     components.TextArea
	imagePath   components.TextInput
	settingsRow quiz.Category
	spinner     components.Spinner
}

var _ screen.Screen = (*InputScreen)(nil)
var _ screen.KeyHintProvider = (*InputScreen)(nil)

// New creates the input screen over the shared session.
func New(session *sess.Session, generator quizgen.Generator, extractor ocr.Extractor) *InputScreen {
	content := components.NewTextArea("Paste or type the lesson text here...", 76, 10)
	content.SetValue(session.Content)

	return &InputScreen{
		session:   session,
		generator: generator,
		extractor: extractor,
		content:   content,
		imagePath: components.NewTextInput("Path to a lesson-page image (optional)", false, 200),
	}
}

func (s *InputScreen) Init() tea.Cmd {
	// Runs on first entry and again whenever the router exposes this
	// screen after a retake or a full clear: every widget refreshes
	// from the session so no stale text survives.
	s.content.SetValue(s.session.Content)
	s.imagePath.SetValue("")
	s.imagePath.Blur()
	s.settingsRow = quiz.CategoryComprehension
	s.focus = focusContent
	return s.content.Focus()
}

func (s *InputScreen) Title() string {
	return "New Quiz"
}

func (s *InputScreen) KeyHints() []layout.KeyHint {
	if s.session.Phase == sess.PhaseGenerating {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Ctrl+G", Description: "Generate"},
	}
	if s.focus == focusSettings {
		hints = append(hints,
			layout.KeyHint{Key: "Space", Description: "Toggle"},
			layout.KeyHint{Key: "←→", Description: "Count"},
			layout.KeyHint{Key: "D", Description: "Difficulty"},
		)
	}
	if s.focus == focusImagePath {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+R", Description: "Read image"})
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+X", Description: "Clear all"})
	return hints
}

func (s *InputScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		return s.handleQuizReady(msg)

	case ocrDoneMsg:
		return s.handleOCRDone(msg)

	case components.SpinnerTickMsg:
		if s.session.Phase == sess.PhaseGenerating || s.session.OCRPending {
			var cmd tea.Cmd
			s.spinner, cmd = s.spinner.Update(msg)
			return s, cmd
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardToFocused(msg)
}

func (s *InputScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// Everything is locked down while a generation call is in flight.
	if s.session.Phase == sess.PhaseGenerating {
		return s, nil
	}

	switch msg.String() {
	case "tab":
		s.cycleFocus()
		return s, nil

	case "ctrl+g":
		return s.startGeneration()

	case "ctrl+r":
		return s.startOCR()

	case "ctrl+x":
		s.session.ClearAll()
		s.content.SetValue("")
		s.imagePath.SetValue("")
		s.settingsRow = quiz.CategoryComprehension
		return s, nil
	}

	if s.focus == focusSettings {
		return s.handleSettingsKey(msg.String())
	}

	return s.forwardToFocused(msg)
}

func (s *InputScreen) handleSettingsKey(key string) (screen.Screen, tea.Cmd) {
	setting := s.session.Settings.For(s.settingsRow)

	switch key {
	case "up", "k":
		if s.settingsRow > quiz.CategoryComprehension {
			s.settingsRow--
		}
	case "down", "j":
		if s.settingsRow < quiz.CategoryShortAnswer {
			s.settingsRow++
		}
	case " ":
		enabled := !setting.Enabled
		s.session.Settings.Apply(s.settingsRow, quiz.SettingPatch{Enabled: &enabled})
	case "left", "h":
		count := setting.Count - 1
		s.session.Settings.Apply(s.settingsRow, quiz.SettingPatch{Count: &count})
	case "right", "l":
		count := setting.Count + 1
		s.session.Settings.Apply(s.settingsRow, quiz.SettingPatch{Count: &count})
	case "d":
		next := nextDifficulty(setting.Difficulty)
		s.session.Settings.Apply(s.settingsRow, quiz.SettingPatch{Difficulty: &next})
	}

	return s, nil
}

// nextDifficulty cycles through the built-in difficulty labels.
func nextDifficulty(current string) string {
	for i, level := range quiz.DifficultyLevels {
		if level == current {
			return quiz.DifficultyLevels[(i+1)%len(quiz.DifficultyLevels)]
		}
	}
	return quiz.DifficultyLevels[0]
}

func (s *InputScreen) cycleFocus() {
	s.content.Blur()
	s.imagePath.Blur()

	switch s.focus {
	case focusContent:
		s.focus = focusSettings
	case focusSettings:
		s.focus = focusImagePath
		s.imagePath.Focus()
	default:
		s.focus = focusContent
		s.content.Focus()
	}
}

func (s *InputScreen) forwardToFocused(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch s.focus {
	case focusContent:
		s.content, cmd = s.content.Update(msg)
		s.session.Content = s.content.Value()
	case focusImagePath:
		s.imagePath, cmd = s.imagePath.Update(msg)
	}
	return s, cmd
}

// startGeneration fires the generation gateway call.
func (s *InputScreen) startGeneration() (screen.Screen, tea.Cmd) {
	s.session.Content = s.content.Value()

	if err := s.session.BeginGeneration(); err != nil {
		s.session.Err = friendlyGuardMessage(err)
		return s, nil
	}

	content := s.session.Content
	settings := s.session.Settings
	gen := s.generator

	generate := func() tea.Msg {
		g, err := gen.Generate(context.Background(), content, settings)
		return quizReadyMsg{Quiz: g, Err: err}
	}

	return s, tea.Batch(generate, s.spinner.Tick())
}

func (s *InputScreen) handleQuizReady(msg quizReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.session.GenerationFailed(msg.Err)
		return s, nil
	}

	s.session.GenerationSucceeded(msg.Quiz)
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: quiztake.New(s.session)}
	}
}

// startOCR stages the image at the entered path and fires the
// extraction gateway call.
func (s *InputScreen) startOCR() (screen.Screen, tea.Cmd) {
	path := strings.TrimSpace(s.imagePath.Value())
	if path == "" {
		s.session.Err = "Enter an image path first."
		return s, nil
	}

	mime, ok := imageMIMETypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		s.session.Err = fmt.Sprintf("Unsupported image type %q.", filepath.Ext(path))
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		s.session.Err = "Could not read image: " + err.Error()
		return s, nil
	}

	if err := s.session.StageImage(sess.StagedImage{
		Name:     filepath.Base(path),
		MIMEType: mime,
		Data:     data,
	}); err != nil {
		s.session.Err = friendlyGuardMessage(err)
		return s, nil
	}

	if err := s.session.BeginOCR(); err != nil {
		s.session.Err = friendlyGuardMessage(err)
		return s, nil
	}

	img := ocr.Image{MIMEType: mime, Data: data}
	ex := s.extractor

	extract := func() tea.Msg {
		text, err := ex.Extract(context.Background(), img)
		return ocrDoneMsg{Text: text, Err: err}
	}

	return s, tea.Batch(extract, s.spinner.Tick())
}

func (s *InputScreen) handleOCRDone(msg ocrDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.session.OCRFailed(msg.Err)
		return s, nil
	}

	s.session.OCRSucceeded(msg.Text)
	s.content.SetValue(s.session.Content)
	s.imagePath.SetValue("")
	return s, nil
}

// friendlyGuardMessage maps transition guard errors to banner text.
func friendlyGuardMessage(err error) string {
	switch err {
	case sess.ErrEmptyContent:
		return "Paste some lesson content before generating."
	case sess.ErrOCRInFlight:
		return "Text extraction is already running."
	case sess.ErrNoStagedImage:
		return "Stage an image before extracting text."
	default:
		return err.Error()
	}
}
