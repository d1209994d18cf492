package form

import "unicode/utf8"

// Line length brackets used by Evaluate.
const (
	MaxLineLength = 72 // lines longer than this are errors
	GoodMin       = 20
	GoodMax       = 35
	CautionMax    = 50
)

// Quality is the visual classification of a field's content.
type Quality int

const (
	Neutral Quality = iota
	Good
	Caution
	Warning
	Error
)

// String returns the lowercase name of the quality class.
func (q Quality) String() string {
	switch q {
	case Neutral:
		return "neutral"
	case Good:
		return "good"
	case Caution:
		return "caution"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Evaluate classifies a field from the lengths of its lines, in document order.
//
// Each bracket arms an independent flag. An over-length line arms the error
// flag and disarms the three others, so later lines can re-arm them but the
// error flag itself stays set. The result is read in the fixed order
// Error, Caution, Warning, Good, so the outcome depends on line order and
// not on the worst line.
func Evaluate(lengths []int) Quality {
	var red, orange, yellow, green bool
	for _, n := range lengths {
		switch {
		case n > MaxLineLength:
			red = true
			orange = false
			yellow = false
			green = false
		case n >= GoodMin && n <= GoodMax:
			green = true
		case n >= GoodMax && n <= CautionMax:
			yellow = true
		case n >= CautionMax && n < MaxLineLength:
			orange = true
		}
	}

	switch {
	case red:
		return Error
	case yellow:
		return Caution
	case orange:
		return Warning
	case green:
		return Good
	default:
		return Neutral
	}
}

// LineLengths returns the character count of every line.
func LineLengths(lines []string) []int {
	lengths := make([]int, len(lines))
	for i, line := range lines {
		lengths[i] = utf8.RuneCountInString(line)
	}
	return lengths
}
