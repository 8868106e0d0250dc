package pencil

// Costs charged by ASCIICost.
const (
	UppercaseCost = 2
	LowercaseCost = 1
)

// Coster prices a single character against point durability.
type Coster interface {
	// Cost returns the durability consumed by writing r.
	Cost(r rune) int
}

// CostFunc adapts an ordinary function to the Coster interface.
type CostFunc func(r rune) int

// Cost calls f(r).
func (f CostFunc) Cost(r rune) int {
	return f(r)
}

// ASCIICost charges UppercaseCost for A-Z, LowercaseCost for a-z and nothing
// for any other character.
var ASCIICost Coster = CostFunc(asciiCost)

func asciiCost(r rune) int {
	switch {
	case r >= 'A' && r <= 'Z':
		return UppercaseCost
	case r >= 'a' && r <= 'z':
		return LowercaseCost
	default:
		return 0
	}
}

// IsFree reports whether r is written as-is regardless of durability.
func IsFree(r rune) bool {
	return r == ' ' || r == '\n'
}

// TextCost returns the durability needed to write text in full with ASCIICost.
func TextCost(text string) int {
	total := 0
	for _, r := range text {
		if IsFree(r) {
			continue
		}
		total += ASCIICost.Cost(r)
	}
	return total
}
