package quiz

import "strconv"

// Difficulty labels offered by the settings UI. Free-form strings are
// accepted; these are the built-in choices.
var DifficultyLevels = []string{"Grade 5", "Grade 7", "Grade 9", "Advanced"}

// DefaultDifficulty is the initial difficulty for every category.
const DefaultDifficulty = "Grade 7"

// MinQuestionCount is the floor applied to count inputs. There is no
// enforced upper bound at the model level.
const MinQuestionCount = 1

// QuestionSetting configures one question category for generation.
// Mutated only by user configuration actions, never by generation or
// grading.
type QuestionSetting struct {
	Enabled    bool
	Count      int
	Difficulty string
}

// QuizSettings maps the three fixed categories to their settings. All
// three fields are always populated; the zero value is not meaningful,
// use DefaultSettings.
type QuizSettings struct {
	Comprehension QuestionSetting
	LiteracyMC    QuestionSetting
	ShortAnswer   QuestionSetting
}

// DefaultSettings returns the initial configuration: comprehension and
// short-answer enabled, literacy multiple-choice off.
func DefaultSettings() QuizSettings {
	return QuizSettings{
		Comprehension: QuestionSetting{Enabled: true, Count: 5, Difficulty: DefaultDifficulty},
		LiteracyMC:    QuestionSetting{Enabled: false, Count: 3, Difficulty: DefaultDifficulty},
		ShortAnswer:   QuestionSetting{Enabled: true, Count: 3, Difficulty: DefaultDifficulty},
	}
}

// For returns the setting for a category.
func (s *QuizSettings) For(c Category) QuestionSetting {
	switch c {
	case CategoryComprehension:
		return s.Comprehension
	case CategoryLiteracyMC:
		return s.LiteracyMC
	default:
		return s.ShortAnswer
	}
}

// SettingPatch is a partial update to one category's setting. Nil fields
// leave the current value untouched.
type SettingPatch struct {
	Enabled    *bool
	Count      *int
	Difficulty *string
}

// Apply merges a patch into the named category. Counts are clamped to
// MinQuestionCount.
func (s *QuizSettings) Apply(c Category, p SettingPatch) {
	target := &s.ShortAnswer
	switch c {
	case CategoryComprehension:
		target = &s.Comprehension
	case CategoryLiteracyMC:
		target = &s.LiteracyMC
	}
	if p.Enabled != nil {
		target.Enabled = *p.Enabled
	}
	if p.Count != nil {
		target.Count = max(*p.Count, MinQuestionCount)
	}
	if p.Difficulty != nil {
		target.Difficulty = *p.Difficulty
	}
}

// ClampCount parses a count input, defaulting non-numeric or
// non-positive values to MinQuestionCount.
func ClampCount(input string) int {
	n, err := strconv.Atoi(input)
	if err != nil || n < MinQuestionCount {
		return MinQuestionCount
	}
	return n
}
