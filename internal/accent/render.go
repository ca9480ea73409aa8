package accent

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Render returns word with the letter at index (counted in code points)
// replaced by its accented form for stress type st. All other code points
// are copied unchanged.
//
// Words that are not valid UTF-8 are rejected with ErrInvalidWord.
func Render(word string, st StressType, index int) (string, error) {
	if !utf8.ValidString(word) {
		return "", fmt.Errorf("%w: %q", ErrInvalidWord, word)
	}

	runes := []rune(word)
	if index < 0 || index >= len(runes) {
		return "", fmt.Errorf("%w: index %d in %q (%d letters)", ErrIndexOutOfRange, index, word, len(runes))
	}

	accented, err := Accented(st, runes[index])
	if err != nil {
		return "", fmt.Errorf("render %q at %d: %w", word, index, err)
	}

	var b strings.Builder
	b.Grow(len(word) + len(accented))
	for i, r := range runes {
		if i == index {
			b.WriteString(accented)
			continue
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}
