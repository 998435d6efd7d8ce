package quiz

import "fmt"

// Category identifies one of the three fixed question categories, in
// their canonical concatenation order.
type Category int

const (
	CategoryComprehension Category = iota
	CategoryLiteracyMC
	CategoryShortAnswer

	numCategories = 3
)

// String returns the category's settings key.
func (c Category) String() string {
	switch c {
	case CategoryComprehension:
		return "comprehension"
	case CategoryLiteracyMC:
		return "literacyMC"
	case CategoryShortAnswer:
		return "shortAnswer"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Gradable reports whether questions in this category are auto-graded.
// Only the two multiple-choice categories are.
func (c Category) Gradable() bool {
	return c == CategoryComprehension || c == CategoryLiteracyMC
}

// Lengths holds the three category lengths in canonical order.
type Lengths [numCategories]int

// Total returns the flat sequence length.
func (l Lengths) Total() int {
	return l[0] + l[1] + l[2]
}

// Position addresses a question as (category, offset within category).
// It is the structured form of a flat question index.
type Position struct {
	Category Category
	Offset   int
}

// Resolve converts a flat question index into a Position. The flat index
// walks Comprehension, then LiteracyMC, then ShortAnswer. Returns an
// error when i is negative or past the end.
func Resolve(l Lengths, i int) (Position, error) {
	if i < 0 || i >= l.Total() {
		return Position{}, fmt.Errorf("question index %d out of range [0,%d)", i, l.Total())
	}
	for c := 0; c < numCategories; c++ {
		if i < l[c] {
			return Position{Category: Category(c), Offset: i}, nil
		}
		i -= l[c]
	}
	// Unreachable: the bounds check above covers the sum.
	return Position{}, fmt.Errorf("question index out of range")
}

// Flatten is the inverse of Resolve: it converts a Position back into a
// flat question index. Returns an error when the position does not
// address a question under the given lengths.
func Flatten(l Lengths, p Position) (int, error) {
	if p.Category < 0 || p.Category >= numCategories {
		return 0, fmt.Errorf("invalid category %d", p.Category)
	}
	if p.Offset < 0 || p.Offset >= l[p.Category] {
		return 0, fmt.Errorf("offset %d out of range for %s (length %d)", p.Offset, p.Category, l[p.Category])
	}
	i := p.Offset
	for c := Category(0); c < p.Category; c++ {
		i += l[c]
	}
	return i, nil
}
