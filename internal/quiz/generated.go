package quiz

// DefaultTitle is used when generation omits or blanks the quiz title.
const DefaultTitle = "Generated Practice Quiz"

// GeneratedQuiz holds one generated quiz: a title and three ordered
// question lists, one per category. The concatenation
// Comprehension ++ LiteracyMC ++ ShortAnswer defines the canonical flat
// question index used for answers, editing, and export numbering. That
// order is load-bearing; see Resolve and Flatten.
type GeneratedQuiz struct {
	// ID identifies this quiz within the process (event correlation,
	// export metadata). Assigned at generation time.
	ID string

	Title string

	Comprehension []Question
	LiteracyMC    []Question
	ShortAnswer   []Question
}

// Lengths returns the three category lengths in canonical order.
func (g *GeneratedQuiz) Lengths() Lengths {
	return Lengths{len(g.Comprehension), len(g.LiteracyMC), len(g.ShortAnswer)}
}

// Len returns the total number of questions across all categories.
func (g *GeneratedQuiz) Len() int {
	return len(g.Comprehension) + len(g.LiteracyMC) + len(g.ShortAnswer)
}

// Category returns the question list for the given category.
func (g *GeneratedQuiz) Category(c Category) []Question {
	switch c {
	case CategoryComprehension:
		return g.Comprehension
	case CategoryLiteracyMC:
		return g.LiteracyMC
	default:
		return g.ShortAnswer
	}
}

// At returns a pointer to the question at flat index i.
func (g *GeneratedQuiz) At(i int) (*Question, error) {
	pos, err := Resolve(g.Lengths(), i)
	if err != nil {
		return nil, err
	}
	return &g.Category(pos.Category)[pos.Offset], nil
}

// Replace overwrites the question at flat index i.
func (g *GeneratedQuiz) Replace(i int, q Question) error {
	target, err := g.At(i)
	if err != nil {
		return err
	}
	*target = q
	return nil
}

// UserAnswers maps a flat question index to the user's answer. Sparse:
// an absent key means unanswered.
type UserAnswers map[int]string
