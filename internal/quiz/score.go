package quiz

import "math"

// Score computes the percentage score for a submitted quiz. Only the two
// multiple-choice categories are graded; free-response questions never
// affect the score. A question counts as correct iff the stored answer
// for its flat index is exactly string-equal to the question's Answer.
//
// The result is rounded half away from zero (math.Round), so 2/3 scores
// 67. Returns nil when the quiz has no multiple-choice questions at all,
// which is distinct from a score of zero.
func Score(g *GeneratedQuiz, answers UserAnswers) *int {
	lengths := g.Lengths()

	total := 0
	correct := 0
	for c := CategoryComprehension; c <= CategoryLiteracyMC; c++ {
		for off, q := range g.Category(c) {
			total++
			i, err := Flatten(lengths, Position{Category: c, Offset: off})
			if err != nil {
				continue
			}
			if got, ok := answers[i]; ok && got == q.Answer {
				correct++
			}
		}
	}

	if total == 0 {
		return nil
	}
	pct := int(math.Round(float64(correct) / float64(total) * 100))
	return &pct
}
