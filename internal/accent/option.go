package accent

import "fmt"

// StressOption is one candidate stress placement produced by the analyzer.
type StressOption struct {
	GrammaticalCase     string     `json:"grammatical_case" yaml:"grammatical_case"`
	StressType          StressType `json:"stress_type" yaml:"stress_type"`
	StressedLetterIndex int        `json:"stressed_letter_index" yaml:"stressed_letter_index"`
}

// Select returns the first option whose case equals targetCase exactly.
// Later duplicates are ignored. No normalization is applied, so English
// names must go through TranslateCaseName first.
func Select(options []StressOption, targetCase string) (StressOption, error) {
	for _, opt := range options {
		if opt.GrammaticalCase == targetCase {
			return opt, nil
		}
	}
	return StressOption{}, fmt.Errorf("%w: %q among %d options", ErrCaseNotFound, targetCase, len(options))
}
