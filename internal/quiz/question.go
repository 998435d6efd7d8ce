package quiz

import "fmt"

// Question is a single quiz item. Multiple-choice questions carry Options;
// free-response questions never do.
type Question struct {
	// Text is the question prompt displayed to the user.
	Text string

	// Options holds the answer choices for a multiple-choice question,
	// in display order. Nil for free-response questions. Generation
	// produces four options by convention; the length is not enforced
	// structurally.
	Options []string

	// Answer is the correct answer. For multiple-choice it is the exact
	// text of the correct option. For free-response it is a reference
	// answer shown after submission.
	Answer string

	// Explanation is an optional rationale shown with the answer key.
	Explanation string
}

// IsMultipleChoice reports whether the question is answered by picking
// an option.
func (q *Question) IsMultipleChoice() bool {
	return q.Options != nil
}

// SetOption replaces the option text at position k. When the replaced
// option was the stored correct answer, the answer follows the new text,
// so the "answer is exactly one option string" invariant survives the
// edit without the user re-typing it.
func (q *Question) SetOption(k int, text string) error {
	if k < 0 || k >= len(q.Options) {
		return fmt.Errorf("option index %d out of range (have %d options)", k, len(q.Options))
	}
	if q.Options[k] == q.Answer {
		q.Answer = text
	}
	q.Options[k] = text
	return nil
}

// Validate checks the question's internal consistency. For a
// multiple-choice question the answer must exactly match one of the
// options. Free-response questions are always valid.
func (q *Question) Validate() error {
	if !q.IsMultipleChoice() {
		return nil
	}
	for _, opt := range q.Options {
		if opt == q.Answer {
			return nil
		}
	}
	return fmt.Errorf("answer %q is not one of the options", q.Answer)
}

// Clone returns a deep copy of the question. Edit dialogs work on a
// clone so a cancelled edit leaves the stored question untouched.
func (q *Question) Clone() Question {
	c := *q
	if q.Options != nil {
		c.Options = make([]string, len(q.Options))
		copy(c.Options, q.Options)
	}
	return c
}
