// Package session owns the quiz lifecycle: one mutable aggregate holding
// the lesson content, staged image, settings, generated quiz, answers,
// and edit selection, with explicit transition methods. All mutation
// happens on action-handler boundaries in the TUI event loop, so the
// aggregate needs no locking.
package session

import (
	"errors"
	"strings"

	"github.com/lessonlab/quizforge/internal/quiz"
)

// Phase is the lifecycle state of the session.
type Phase int

const (
	// PhaseInput collects lesson content and settings.
	PhaseInput Phase = iota
	// PhaseGenerating is the transient state while the generation
	// gateway call is in flight.
	PhaseGenerating
	// PhaseQuiz has a generated quiz collecting answers.
	PhaseQuiz
	// PhaseResults is the graded, frozen review state.
	PhaseResults
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhaseGenerating:
		return "generating"
	case PhaseQuiz:
		return "quiz"
	case PhaseResults:
		return "results"
	default:
		return "unknown"
	}
}

// StagedImage is an image waiting for OCR extraction.
type StagedImage struct {
	Name     string
	MIMEType string
	Data     []byte
}

// EditingSelection is the transient edit target: the flat index of the
// question being edited and a working copy of it. It exists only while
// the edit dialog is open.
type EditingSelection struct {
	Index int
	Data  quiz.Question
}

// Common transition guard failures.
var (
	ErrEmptyContent    = errors.New("lesson content is empty")
	ErrWrongPhase      = errors.New("action not allowed in this phase")
	ErrNoQuiz          = errors.New("no quiz has been generated")
	ErrNoStagedImage   = errors.New("no image staged for text extraction")
	ErrOCRInFlight     = errors.New("text extraction already in progress")
	ErrAnswersFrozen   = errors.New("answers are frozen after submission")
	ErrNoEditOpen      = errors.New("no question is being edited")
	ErrEditAfterSubmit = errors.New("questions cannot be edited after submission")
)

// Session is the single owned state aggregate for one quiz lifecycle.
type Session struct {
	Phase    Phase
	Content  string
	Image    *StagedImage
	Settings quiz.QuizSettings

	Quiz    *quiz.GeneratedQuiz
	Answers quiz.UserAnswers
	Editing *EditingSelection

	// Err is the standing error banner. Displayed in any phase,
	// cleared on the next generation attempt.
	Err string

	// OCRPending guards against firing a second extraction while one
	// is in flight.
	OCRPending bool
}

// New returns a session in the input phase with default settings.
func New() *Session {
	return &Session{
		Phase:    PhaseInput,
		Settings: quiz.DefaultSettings(),
		Answers:  quiz.UserAnswers{},
	}
}

// CanGenerate reports whether the generate action is available: input
// phase with non-blank content.
func (s *Session) CanGenerate() bool {
	return s.Phase == PhaseInput && strings.TrimSpace(s.Content) != ""
}

// BeginGeneration transitions input -> generating. It clears any prior
// quiz, answers, and error banner; the caller starts the gateway call.
func (s *Session) BeginGeneration() error {
	if s.Phase != PhaseInput {
		return ErrWrongPhase
	}
	if strings.TrimSpace(s.Content) == "" {
		return ErrEmptyContent
	}
	s.Phase = PhaseGenerating
	s.Quiz = nil
	s.Answers = quiz.UserAnswers{}
	s.Editing = nil
	s.Err = ""
	return nil
}

// GenerationSucceeded transitions generating -> quiz with a fresh
// answer map.
func (s *Session) GenerationSucceeded(g *quiz.GeneratedQuiz) {
	if s.Phase != PhaseGenerating {
		return
	}
	s.Quiz = g
	s.Answers = quiz.UserAnswers{}
	s.Phase = PhaseQuiz
}

// GenerationFailed rolls back generating -> input, surfacing the error
// banner. Content and settings survive so the user can retry.
func (s *Session) GenerationFailed(err error) {
	if s.Phase != PhaseGenerating {
		return
	}
	s.Phase = PhaseInput
	s.Err = "Quiz generation failed: " + err.Error()
}

// SetAnswer records the user's answer for the question at flat index i.
// An empty answer removes the entry, keeping the map sparse: absent
// means unanswered, so a typed-then-deleted draft does not count as
// answered. Rejected outside the quiz phase; submitted answers are
// frozen.
func (s *Session) SetAnswer(i int, answer string) error {
	if s.Phase == PhaseResults {
		return ErrAnswersFrozen
	}
	if s.Phase != PhaseQuiz || s.Quiz == nil {
		return ErrWrongPhase
	}
	if _, err := s.Quiz.At(i); err != nil {
		return err
	}
	if answer == "" {
		delete(s.Answers, i)
		return nil
	}
	s.Answers[i] = answer
	return nil
}

// Answer returns the stored answer for flat index i, empty when
// unanswered.
func (s *Session) Answer(i int) string {
	return s.Answers[i]
}

// Submit freezes the answer set and transitions quiz -> results. No
// guard on answered count: unanswered questions simply grade as wrong
// or blank.
func (s *Session) Submit() error {
	if s.Phase != PhaseQuiz || s.Quiz == nil {
		return ErrWrongPhase
	}
	s.Editing = nil
	s.Phase = PhaseResults
	return nil
}

// Score grades the current quiz. Nil when no quiz exists or it has no
// gradable questions.
func (s *Session) Score() *int {
	if s.Quiz == nil {
		return nil
	}
	return quiz.Score(s.Quiz, s.Answers)
}

// OpenEdit opens the edit dialog for the question at flat index i with
// a working copy. Editing is only available before submission.
func (s *Session) OpenEdit(i int) error {
	switch s.Phase {
	case PhaseQuiz:
	case PhaseResults:
		return ErrEditAfterSubmit
	default:
		return ErrWrongPhase
	}
	q, err := s.Quiz.At(i)
	if err != nil {
		return err
	}
	s.Editing = &EditingSelection{Index: i, Data: q.Clone()}
	return nil
}

// SaveEdit validates the edited question and writes it back at the
// selection's flat index. On validation failure the stored question is
// untouched and the dialog stays open for another attempt.
func (s *Session) SaveEdit(edited quiz.Question) error {
	if s.Editing == nil || s.Quiz == nil {
		return ErrNoEditOpen
	}
	if err := edited.Validate(); err != nil {
		return err
	}
	if err := s.Quiz.Replace(s.Editing.Index, edited); err != nil {
		return err
	}
	s.Editing = nil
	return nil
}

// CancelEdit discards the working copy.
func (s *Session) CancelEdit() {
	s.Editing = nil
}

// Reset discards the quiz and answers and returns to input. Content,
// staged image, and settings are untouched.
func (s *Session) Reset() {
	s.Phase = PhaseInput
	s.Quiz = nil
	s.Answers = quiz.UserAnswers{}
	s.Editing = nil
}

// ClearAll is the "new quiz" action: a full reset that also clears the
// content, the staged image, and restores default settings.
func (s *Session) ClearAll() {
	s.Content = ""
	s.Image = nil
	s.Settings = quiz.DefaultSettings()
	s.Err = ""
	s.Reset()
}

// StageImage stages an image for extraction. Input phase only.
func (s *Session) StageImage(img StagedImage) error {
	if s.Phase != PhaseInput {
		return ErrWrongPhase
	}
	s.Image = &img
	return nil
}

// BeginOCR marks an extraction as in flight. It is a side activity of
// the input phase and does not change Phase. The pending flag closes
// the double-fire race: a second call before completion is rejected.
func (s *Session) BeginOCR() error {
	if s.Phase != PhaseInput {
		return ErrWrongPhase
	}
	if s.Image == nil {
		return ErrNoStagedImage
	}
	if s.OCRPending {
		return ErrOCRInFlight
	}
	s.OCRPending = true
	s.Err = ""
	return nil
}

// OCRSucceeded appends the extracted text to the content, separated by
// a blank line when content already exists, and clears the staged image.
func (s *Session) OCRSucceeded(text string) {
	s.OCRPending = false
	if s.Content != "" {
		s.Content = s.Content + "\n\n" + text
	} else {
		s.Content = text
	}
	s.Image = nil
}

// OCRFailed surfaces the error banner. Content and the staged image are
// left untouched so the user can retry.
func (s *Session) OCRFailed(err error) {
	s.OCRPending = false
	s.Err = "Text extraction failed: " + err.Error()
}
