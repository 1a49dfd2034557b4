// Package ngram turns raw text into n-gram keys.
//
// Upper-case ASCII letters are folded to lower case. Punctuation and
// digits are break markers: they split the text into segments, and an
// n-gram never crosses a segment boundary. Within a segment, words are
// maximal runs of lower-case letters; everything else (whitespace,
// control bytes, non-ASCII) separates words without breaking the
// segment.
package ngram

import "strings"

// breakMark replaces every punctuation and digit byte during
// normalization.
const breakMark = '|'

// isBreak reports whether c is ASCII punctuation or a digit. The three
// ranges cover 33-64, 91-96 and 123-126, which together are every
// printable ASCII byte that is not a letter or a space.
func isBreak(c byte) bool {
	return (c >= '!' && c <= '@') ||
		(c >= '[' && c <= '`') ||
		(c >= '{' && c <= '~')
}

// Scan emits every n-gram in content through fn, in segment order then
// word order. An n-gram is n consecutive words of one segment joined by
// single spaces; a starting word with fewer than n-1 followers in its
// segment emits nothing. Duplicates are emitted every time they occur.
func Scan(content []byte, n int, fn func(ngram string)) {
	if n < 1 || len(content) == 0 {
		return
	}

	buf := make([]byte, len(content))
	for i, c := range content {
		switch {
		case c >= 'A' && c <= 'Z':
			buf[i] = c + ('a' - 'A')
		case isBreak(c):
			buf[i] = breakMark
		default:
			buf[i] = c
		}
	}

	var words []string
	flush := func() {
		for i := 0; i+n <= len(words); i++ {
			fn(strings.Join(words[i:i+n], " "))
		}
		words = words[:0]
	}

	wordStart := -1
	for i, c := range buf {
		if c >= 'a' && c <= 'z' {
			if wordStart < 0 {
				wordStart = i
			}
			continue
		}
		if wordStart >= 0 {
			words = append(words, string(buf[wordStart:i]))
			wordStart = -1
		}
		if c == breakMark {
			flush()
		}
	}
	if wordStart >= 0 {
		words = append(words, string(buf[wordStart:]))
	}
	flush()
}

// Count scans content and adds each n-gram occurrence to freq.
func Count(content []byte, n int, freq map[string]uint64) {
	Scan(content, n, func(g string) {
		freq[g]++
	})
}
