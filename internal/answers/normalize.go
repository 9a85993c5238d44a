package answers

import (
	"regexp"
	"strings"
)

// nonWord matches every character that is neither a word character nor
// whitespace. Stripping these makes "Paris!" and "paris" compare equal.
var nonWord = regexp.MustCompile(`[^\w\s]`)

// Normalize canonicalizes a value into its comparison key. Booleans pass
// through unchanged. Strings are trimmed, lowercased, and stripped of
// punctuation; internal whitespace is preserved as-is.
//
// Both schema repair (answer-in-choices lookup) and grading compare through
// this function. They must never diverge: a question whose answer was
// repaired to a differently-cased choice would otherwise grade a matching
// learner answer as wrong.
//
// Normalize is total and idempotent: Normalize(Normalize(v)) == Normalize(v).
func Normalize(v Value) Value {
	if v.isBool {
		return v
	}
	s := strings.ToLower(strings.TrimSpace(v.text))
	s = nonWord.ReplaceAllString(s, "")
	// Stripping can expose new edge whitespace ("hi !" -> "hi "); trim again
	// so the key is stable under repeated normalization.
	return Text(strings.TrimSpace(s))
}

// Match reports whether two values are equal under normalization.
// A boolean never matches a string, even "true".
func Match(a, b Value) bool {
	return Normalize(a) == Normalize(b)
}
