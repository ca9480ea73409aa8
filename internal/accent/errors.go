package accent

import "errors"

var (
	// ErrCaseNotFound is returned when no stress option matches the requested case.
	ErrCaseNotFound = errors.New("case not found")

	// ErrIndexOutOfRange is returned when the stressed letter index is past the end of the word.
	ErrIndexOutOfRange = errors.New("stressed letter index out of range")

	// ErrMissingMapping is returned when the stressed letter has no accented form for the stress type.
	ErrMissingMapping = errors.New("no accented form for letter")

	// ErrInvalidStressType is returned for stress types outside 0..2.
	ErrInvalidStressType = errors.New("invalid stress type")

	// ErrInvalidWord is returned when the word is not valid UTF-8. It is a
	// caller error, not a contract violation.
	ErrInvalidWord = errors.New("word is not valid UTF-8")
)

// IsContractViolation reports whether err means the analyzer produced data
// that cannot be rendered, as opposed to the caller asking for a case the
// analyzer did not offer.
func IsContractViolation(err error) bool {
	return errors.Is(err, ErrIndexOutOfRange) ||
		errors.Is(err, ErrMissingMapping) ||
		errors.Is(err, ErrInvalidStressType)
}
