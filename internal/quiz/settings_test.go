package quiz

import "testing"

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if !s.Comprehension.Enabled || s.Comprehension.Count != 5 {
		t.Errorf("Comprehension default = %+v, want enabled count 5", s.Comprehension)
	}
	if s.LiteracyMC.Enabled {
		t.Error("LiteracyMC must default to disabled")
	}
	if !s.ShortAnswer.Enabled || s.ShortAnswer.Count != 3 {
		t.Errorf("ShortAnswer default = %+v, want enabled count 3", s.ShortAnswer)
	}
	for _, c := range []Category{CategoryComprehension, CategoryLiteracyMC, CategoryShortAnswer} {
		if s.For(c).Difficulty != DefaultDifficulty {
			t.Errorf("%s difficulty = %q, want %q", c, s.For(c).Difficulty, DefaultDifficulty)
		}
	}
}

func TestApply_PartialPatch(t *testing.T) {
	s := DefaultSettings()
	enabled := true
	s.Apply(CategoryLiteracyMC, SettingPatch{Enabled: &enabled})

	if !s.LiteracyMC.Enabled {
		t.Error("Enabled patch not applied")
	}
	if s.LiteracyMC.Count != 3 || s.LiteracyMC.Difficulty != DefaultDifficulty {
		t.Errorf("untouched fields changed: %+v", s.LiteracyMC)
	}
}

func TestApply_ClampsCount(t *testing.T) {
	s := DefaultSettings()
	n := -4
	s.Apply(CategoryComprehension, SettingPatch{Count: &n})

	if s.Comprehension.Count != MinQuestionCount {
		t.Errorf("Count = %d, want %d", s.Comprehension.Count, MinQuestionCount)
	}
}

func TestClampCount(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"5", 5},
		{"1", 1},
		{"0", 1},
		{"-3", 1},
		{"", 1},
		{"abc", 1},
		{"20", 20},
		{"35", 35}, // no model-level upper bound
	}
	for _, tt := range tests {
		if got := ClampCount(tt.input); got != tt.want {
			t.Errorf("ClampCount(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
