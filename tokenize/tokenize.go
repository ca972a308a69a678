// Package tokenize normalizes raw text into the word sequence that the graph
// builders consume.
//
// Rules (applied in this order):
//
//   - every rune that is neither an ASCII letter nor whitespace becomes a space;
//   - the text is lowercased;
//   - the result is split on runs of whitespace, empty tokens are dropped.
//
// "Don't stop-me now!" therefore yields [don t stop me now]. Non-ASCII letters
// are separators, so "café" yields [caf]. Tokenize never fails; empty input
// yields an empty (non-nil) slice.
package tokenize

import (
	"strings"
	"unicode"
)

// Tokenize splits text into lowercase ASCII-letter words.
//
// Complexity: O(len(text)) time and space.
func Tokenize(text string) []string {
	var b strings.Builder
	b.Grow(len(text))

	var r rune
	for _, r = range text {
		switch {
		case isASCIILetter(r):
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	words := strings.Fields(b.String())
	if words == nil {
		return []string{}
	}

	return words
}

// Normalize applies the tokenizer rules to a single query word and returns
// its first token, or "" when nothing survives normalization.
// "Hello," → "hello"; "  " → "".
func Normalize(word string) string {
	words := Tokenize(word)
	if len(words) == 0 {
		return ""
	}

	return words[0]
}

// isASCIILetter reports whether r is in [A-Za-z].
func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
