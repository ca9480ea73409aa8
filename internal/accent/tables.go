package accent

import (
	"fmt"
	"slices"
)

// StressType identifies which pitch-accent mark is applied to the stressed letter.
type StressType uint8

const (
	// StressShort marks a short vowel with a grave accent.
	StressShort StressType = 0
	// StressAcute marks a long or nasal vowel with an acute accent.
	StressAcute StressType = 1
	// StressCircumflex marks a vowel or sonorant with a tilde.
	StressCircumflex StressType = 2
)

// Valid reports whether s is one of the three known stress types.
func (s StressType) Valid() bool {
	return s <= StressCircumflex
}

func (s StressType) String() string {
	switch s {
	case StressShort:
		return "short"
	case StressAcute:
		return "acute"
	case StressCircumflex:
		return "circumflex"
	default:
		return fmt.Sprintf("StressType(%d)", uint8(s))
	}
}

// shortTable holds the grave forms. The u form is a combining sequence.
var shortTable = map[rune]string{
	'a': "\u00e0",  // à
	'i': "\u00ec",  // ì
	'u': "u\u0300", // ù
}

// acuteTable uses the nasal base for e.
var acuteTable = map[rune]string{
	'ū': "\u016b\u0301", // ū́
	'e': "\u0119\u0301", // ę́
	'ė': "\u0117\u0301", // ė́
	'į': "\u012f\u0301", // į́
	'ą': "\u0105\u0301", // ą́
	'ų': "\u0173\u0301", // ų́
}

var circumflexTable = map[rune]string{
	'ą': "\u0105\u0303", // ą̃
	'e': "\u1ebd",       // ẽ
	'ė': "\u0117\u0303", // ė̃
	'ę': "\u0119\u0303", // ę̃
	'į': "\u012f\u0303", // į̃
	'l': "l\u0303",      // l̃
	'm': "m\u0303",      // m̃
	'o': "\u00f5",       // õ
	'r': "r\u0303",      // r̃
	'ų': "\u0173\u0303", // ų̃
	'ū': "\u016b\u0303", // ū̃
	'y': "\u1ef9",       // ỹ
}

var tables = [...]map[rune]string{
	StressShort:      shortTable,
	StressAcute:      acuteTable,
	StressCircumflex: circumflexTable,
}

// Accented returns the accented rendering of r for stress type st. The
// result may be longer than one code point when the mark is combining.
func Accented(st StressType, r rune) (string, error) {
	if !st.Valid() {
		return "", fmt.Errorf("%w: %d", ErrInvalidStressType, st)
	}
	accented, ok := tables[st][r]
	if !ok {
		return "", fmt.Errorf("%w: %q under %s stress", ErrMissingMapping, r, st)
	}
	return accented, nil
}

// TableKeys returns the base letters that can carry stress type st, in
// code point order. It returns nil for an invalid stress type.
func TableKeys(st StressType) []rune {
	if !st.Valid() {
		return nil
	}
	keys := make([]rune, 0, len(tables[st]))
	for r := range tables[st] {
		keys = append(keys, r)
	}
	slices.Sort(keys)
	return keys
}
