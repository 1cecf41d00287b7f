package fieldedit

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// wordSegment is a run of runes between two word boundaries.
type wordSegment struct {
	start, end int // Rune offsets, end exclusive
	space      bool
}

// wordSegments splits text at Unicode (UAX #29) word boundaries.
func wordSegments(text string) []wordSegment {
	var segs []wordSegment
	state := -1
	pos := 0
	rest := text
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		n := utf8.RuneCountInString(word)
		segs = append(segs, wordSegment{start: pos, end: pos + n, space: isSpace(word)})
		pos += n
	}
	return segs
}

func isSpace(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// wordAt returns the bounds of the word segment containing pos. A position
// at the end of the text belongs to the last segment.
func wordAt(text string, pos int) (int, int) {
	segs := wordSegments(text)
	if len(segs) == 0 {
		return 0, 0
	}
	for _, s := range segs {
		if pos >= s.start && pos < s.end {
			return s.start, s.end
		}
	}
	last := segs[len(segs)-1]
	return last.start, last.end
}

// prevWordStart returns the start of the nearest non-space segment that
// begins before pos.
func prevWordStart(text string, pos int) int {
	segs := wordSegments(text)
	for i := len(segs) - 1; i >= 0; i-- {
		if segs[i].start < pos && !segs[i].space {
			return segs[i].start
		}
	}
	return 0
}

// nextWordEnd returns the end of the nearest non-space segment that ends
// after pos.
func nextWordEnd(text string, pos int) int {
	segs := wordSegments(text)
	for _, s := range segs {
		if s.end > pos && !s.space {
			return s.end
		}
	}
	return utf8.RuneCountInString(text)
}

// paragraphAt returns the bounds of the line containing pos, excluding the
// terminating newline.
func paragraphAt(runes []rune, pos int) (int, int) {
	pos = min(max(pos, 0), len(runes))
	start := pos
	for start > 0 && runes[start-1] != '\n' {
		start--
	}
	end := pos
	for end < len(runes) && runes[end] != '\n' {
		end++
	}
	return start, end
}
