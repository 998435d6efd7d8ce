package quiztake

import (
	tea "charm.land/bubbletea/v2"

	"github.com/lessonlab/quizforge/internal/quiz"
	"github.com/lessonlab/quizforge/internal/screen"
	"github.com/lessonlab/quizforge/internal/ui/components"
)

// editField identifies one input of the edit dialog.
type editField int

const (
	fieldQuestion editField = iota
	fieldOptionA
	fieldOptionB
	fieldOptionC
	fieldOptionD
	fieldAnswer
	fieldExplanation
)

// editForm is the in-place question editor. It works on the session's
// edit selection copy; the stored question only changes on a valid save.
type editForm struct {
	question    components.TextInput
	options     []components.TextInput
	answer      components.TextInput
	explanation components.TextInput

	focus   editField
	saveErr string

	isMC bool
}

// newEditForm builds the form from the question copy held by the
// session's edit selection.
func newEditForm(q quiz.Question) *editForm {
	f := &editForm{isMC: q.IsMultipleChoice()}

	f.question = components.NewTextInput("Question text", false, 500)
	f.question.SetValue(q.Text)
	f.question.Focus()

	for _, opt := range q.Options {
		ti := components.NewTextInput("Option", false, 200)
		ti.SetValue(opt)
		f.options = append(f.options, ti)
	}

	f.answer = components.NewTextInput("Answer", false, 500)
	f.answer.SetValue(q.Answer)

	f.explanation = components.NewTextInput("Explanation", false, 1000)
	f.explanation.SetValue(q.Explanation)

	return f
}

// build assembles a Question from the current field values. Editing an
// option that was the recorded answer carries the answer along, matching
// the behavior of editing the option through the domain type.
func (f *editForm) build(original quiz.Question) quiz.Question {
	q := original.Clone()
	q.Text = f.question.Value()
	for i, ti := range f.options {
		_ = q.SetOption(i, ti.Value())
	}
	// An explicit answer edit wins over option propagation. An untouched
	// answer field is left alone so a propagated answer survives.
	if f.answer.Value() != original.Answer {
		q.Answer = f.answer.Value()
	}
	q.Explanation = f.explanation.Value()
	return q
}

func (f *editForm) cycleFocus() {
	order := f.fieldOrder()
	for i, fl := range order {
		if fl == f.focus {
			f.focus = order[(i+1)%len(order)]
			break
		}
	}
	f.applyFocus()
}

func (f *editForm) fieldOrder() []editField {
	order := []editField{fieldQuestion}
	for i := range f.options {
		order = append(order, fieldOptionA+editField(i))
	}
	order = append(order, fieldAnswer, fieldExplanation)
	return order
}

func (f *editForm) applyFocus() {
	f.question.Blur()
	for i := range f.options {
		f.options[i].Blur()
	}
	f.answer.Blur()
	f.explanation.Blur()

	switch {
	case f.focus == fieldQuestion:
		f.question.Focus()
	case f.focus >= fieldOptionA && f.focus <= fieldOptionD:
		i := int(f.focus - fieldOptionA)
		if i < len(f.options) {
			f.options[i].Focus()
		}
	case f.focus == fieldAnswer:
		f.answer.Focus()
	case f.focus == fieldExplanation:
		f.explanation.Focus()
	}
}

func (f *editForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case f.focus == fieldQuestion:
		f.question, cmd = f.question.Update(msg)
	case f.focus >= fieldOptionA && f.focus <= fieldOptionD:
		i := int(f.focus - fieldOptionA)
		if i < len(f.options) {
			f.options[i], cmd = f.options[i].Update(msg)
		}
	case f.focus == fieldAnswer:
		f.answer, cmd = f.answer.Update(msg)
	case f.focus == fieldExplanation:
		f.explanation, cmd = f.explanation.Update(msg)
	}
	return cmd
}

// openEdit opens the edit dialog for the current question.
func (s *QuizTakeScreen) openEdit() (screen.Screen, tea.Cmd) {
	if err := s.session.OpenEdit(s.index); err != nil {
		return s, nil
	}
	s.edit = newEditForm(s.session.Editing.Data)
	return s, nil
}

// updateEdit routes messages while the edit dialog is open.
func (s *QuizTakeScreen) updateEdit(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, s.edit.update(msg)
	}

	switch kmsg.String() {
	case "esc":
		s.session.CancelEdit()
		s.edit = nil
		return s, nil

	case "tab":
		s.edit.cycleFocus()
		return s, nil

	case "ctrl+s":
		return s.saveEdit()
	}

	return s, s.edit.update(msg)
}

// saveEdit validates and commits the edit. A rejected save keeps the
// dialog open with the validation message.
func (s *QuizTakeScreen) saveEdit() (screen.Screen, tea.Cmd) {
	edited := s.edit.build(s.session.Editing.Data)

	if err := s.session.SaveEdit(edited); err != nil {
		s.edit.saveErr = err.Error()
		return s, nil
	}

	s.edit = nil
	s.loadQuestion(s.index)
	return s, nil
}
