package part

import "unicode/utf8"

// IsBoundary reports whether a word-part boundary lies immediately to
// the left of the 1-based column col of line, i.e. between the
// characters at columns col-1 and col. Columns off either end of the
// line classify as whitespace, so col 1 is a boundary whenever the
// line starts with a non-space character, and col len+1 whenever it
// ends with one.
//
// The classification rules, in precedence order:
//
//  1. Exactly one side is whitespace (word edge).
//  2. Left is an underscore and right is not: the underscore run
//     attaches to the end of the preceding segment (this_|is_|a_).
//     There is never a boundary entering an underscore run.
//  3. Lowercase followed by uppercase (camelCase hump).
//  4. Letter/digit or digit/letter transition.
//  5. Two uppercase letters where the second starts a lowercased
//     word (AB|Cdef, the end of an acronym run).
//
// Any other pair, including two characters of the same class and
// letter/punctuation transitions, is not a boundary.
//
// Columns outside [1, len+1] are a caller contract violation; they
// classify as whitespace rather than panicking, but callers must clamp.
func IsBoundary(line string, col int) bool {
	left := classBefore(line, col)
	right := classAt(line, col)

	// Whitespace transitions take precedence over everything.
	if left == ClassWhitespace || right == ClassWhitespace {
		return (left == ClassWhitespace) != (right == ClassWhitespace)
	}

	switch {
	case left == ClassUnderscore:
		return right != ClassUnderscore
	case right == ClassUnderscore:
		return false
	case left == ClassLower && right == ClassUpper:
		return true
	case left.IsLetter() && right == ClassDigit:
		return true
	case left == ClassDigit && right.IsLetter():
		return true
	case left == ClassUpper && right == ClassUpper:
		return classAfter(line, col) == ClassLower
	default:
		return false
	}
}

// classAt returns the class of the character at the 1-based column col,
// or ClassWhitespace when col is off either end of the line.
func classAt(line string, col int) CharClass {
	if col < 1 || col > len(line) {
		return ClassWhitespace
	}
	r, _ := utf8.DecodeRuneInString(line[col-1:])
	return ClassOf(r)
}

// classBefore returns the class of the character that ends at column
// col, i.e. the character at column col-1.
func classBefore(line string, col int) CharClass {
	if col < 2 || col > len(line)+1 {
		return ClassWhitespace
	}
	r, _ := utf8.DecodeLastRuneInString(line[:col-1])
	return ClassOf(r)
}

// classAfter returns the class of the character following the one at
// column col.
func classAfter(line string, col int) CharClass {
	if col < 1 || col > len(line) {
		return ClassWhitespace
	}
	_, size := utf8.DecodeRuneInString(line[col-1:])
	return classAt(line, col+size)
}
