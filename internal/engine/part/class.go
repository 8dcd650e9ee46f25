package part

import "unicode"

// CharClass is the category of a single character used by the boundary
// classifier. It is derived purely from the rune; no external state.
type CharClass uint8

const (
	// ClassWhitespace covers space characters, and also stands in for
	// columns off either end of a line.
	ClassWhitespace CharClass = iota
	// ClassUnderscore is the '_' separator.
	ClassUnderscore
	// ClassDigit covers decimal digits.
	ClassDigit
	// ClassUpper covers uppercase letters.
	ClassUpper
	// ClassLower covers lowercase letters.
	ClassLower
	// ClassOther covers everything else (punctuation, symbols).
	ClassOther
)

// String returns a string representation of the class.
func (c CharClass) String() string {
	switch c {
	case ClassWhitespace:
		return "whitespace"
	case ClassUnderscore:
		return "underscore"
	case ClassDigit:
		return "digit"
	case ClassUpper:
		return "upper"
	case ClassLower:
		return "lower"
	case ClassOther:
		return "other"
	default:
		return "unknown"
	}
}

// IsLetter returns true for the two letter classes.
func (c CharClass) IsLetter() bool {
	return c == ClassUpper || c == ClassLower
}

// ClassOf returns the character class of r.
func ClassOf(r rune) CharClass {
	switch {
	case r == '_':
		return ClassUnderscore
	case unicode.IsSpace(r):
		return ClassWhitespace
	case unicode.IsDigit(r):
		return ClassDigit
	case unicode.IsUpper(r):
		return ClassUpper
	case unicode.IsLower(r):
		return ClassLower
	default:
		return ClassOther
	}
}
