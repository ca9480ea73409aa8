package accent

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccented(t *testing.T) {
	tests := []struct {
		name string
		st   StressType
		r    rune
		want string
	}{
		{"short a", StressShort, 'a', "à"},
		{"short u is combining", StressShort, 'u', "ù"},
		{"acute e uses nasal base", StressAcute, 'e', "\u0119\u0301"},
		{"acute long u", StressAcute, 'ū', "\u016b\u0301"},
		{"circumflex e", StressCircumflex, 'e', "ẽ"},
		{"circumflex o", StressCircumflex, 'o', "õ"},
		{"circumflex sonorant", StressCircumflex, 'l', "l\u0303"},
		{"circumflex y", StressCircumflex, 'y', "ỹ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Accented(tt.st, tt.r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccented_Errors(t *testing.T) {
	_, err := Accented(StressShort, 'e')
	assert.ErrorIs(t, err, ErrMissingMapping)

	_, err = Accented(StressAcute, 'a')
	assert.ErrorIs(t, err, ErrMissingMapping)

	_, err = Accented(StressType(3), 'a')
	assert.ErrorIs(t, err, ErrInvalidStressType)
	assert.NotErrorIs(t, err, ErrMissingMapping)
}

func TestTableKeys(t *testing.T) {
	assert.Equal(t, []rune{'a', 'i', 'u'}, TableKeys(StressShort))
	assert.Len(t, TableKeys(StressAcute), 6)
	assert.Len(t, TableKeys(StressCircumflex), 12)
	assert.Nil(t, TableKeys(StressType(7)))

	keys := TableKeys(StressCircumflex)
	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1], keys[i])
	}
}

func TestTables_AccentedFormStartsWithMarkedLetter(t *testing.T) {
	for _, st := range []StressType{StressShort, StressAcute, StressCircumflex} {
		for _, r := range TableKeys(st) {
			accented, err := Accented(st, r)
			require.NoError(t, err)
			assert.True(t, utf8.ValidString(accented))
			n := utf8.RuneCountInString(accented)
			assert.True(t, n == 1 || n == 2, "%s %q renders as %d code points", st, r, n)
		}
	}
}

func TestStressType_String(t *testing.T) {
	assert.Equal(t, "short", StressShort.String())
	assert.Equal(t, "acute", StressAcute.String())
	assert.Equal(t, "circumflex", StressCircumflex.String())
	assert.Equal(t, "StressType(9)", StressType(9).String())
	assert.False(t, StressType(3).Valid())
}
