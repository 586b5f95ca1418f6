package token

// Byte classifiers shared by the rule compiler and the scanner, centralized
// in one place the way original_source/Lexical_analyzer/automata/charset.h
// centralizes them for its C++ counterpart. We deliberately avoid the
// locale-sensitive standard-library character classifiers: rules are
// 8-bit-clean byte patterns, not Unicode (spec.md §1 Non-goals).

// IsLetter reports whether b is an ASCII letter.
func IsLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// IsDigit reports whether b is an ASCII digit.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsUnderscore reports whether b is '_'.
func IsUnderscore(b byte) bool {
	return b == '_'
}

// IsIdentHead reports whether b may begin an identifier: letter or
// underscore (spec.md §3: "identifier = letter/underscore followed by
// letter/digit/underscore").
func IsIdentHead(b byte) bool {
	return IsLetter(b) || IsUnderscore(b)
}

// IsIdentTail reports whether b may continue an identifier.
func IsIdentTail(b byte) bool {
	return IsLetter(b) || IsDigit(b) || IsUnderscore(b)
}

// IsWhitespace reports whether b is scanner whitespace: space, tab, CR, or
// LF (spec.md §4.4: "whitespace is exactly ASCII space, tab, CR, and LF").
func IsWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// IsNewline reports whether b resets the scanner's line/column tracking.
func IsNewline(b byte) bool {
	return b == '\n'
}
