package accent

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Analyzer produces the candidate stress options for a word. It is the
// only blocking dependency of this package.
type Analyzer interface {
	Analyze(ctx context.Context, word string) ([]StressOption, error)
}

// Apply selects the option for grammaticalCase and renders word with it.
func Apply(word, grammaticalCase string, options []StressOption) (string, error) {
	opt, err := Select(options, grammaticalCase)
	if err != nil {
		return "", err
	}
	return Render(word, opt.StressType, opt.StressedLetterIndex)
}

// Accentuator accentuates words using the options of an Analyzer.
type Accentuator struct {
	analyzer Analyzer
	logger   *slog.Logger
}

// Option configures an Accentuator.
type Option func(*Accentuator)

// WithLogger sets the logger used to report analyzer contract violations.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Accentuator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New creates an Accentuator backed by analyzer.
func New(analyzer Analyzer, opts ...Option) *Accentuator {
	a := &Accentuator{
		analyzer: analyzer,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// GetAccentuation returns word with the accent mark for grammaticalCase,
// which must be a Lithuanian case label as produced by the analyzer.
//
// ErrCaseNotFound, ErrInvalidWord, ErrIndexOutOfRange, ErrMissingMapping
// and ErrInvalidStressType are returned so that errors.Is matches them.
func (a *Accentuator) GetAccentuation(ctx context.Context, word, grammaticalCase string) (string, error) {
	options, err := a.analyzer.Analyze(ctx, word)
	if err != nil {
		return "", fmt.Errorf("analyze %q: %w", word, err)
	}

	accented, err := Apply(word, grammaticalCase, options)
	switch {
	case err == nil:
		return accented, nil
	case errors.Is(err, ErrCaseNotFound):
		a.logger.Debug("no stress option for case",
			"word", word, "case", grammaticalCase, "options", len(options))
	case IsContractViolation(err):
		opt, _ := Select(options, grammaticalCase)
		a.logger.Error("analyzer returned an unrenderable stress option",
			"word", word,
			"case", grammaticalCase,
			"stress_type", uint8(opt.StressType),
			"stressed_letter_index", opt.StressedLetterIndex,
			"error", err)
	}
	return "", err
}

// GetAccentuation is a one-off form of Accentuator.GetAccentuation.
func GetAccentuation(ctx context.Context, analyzer Analyzer, word, grammaticalCase string) (string, error) {
	return New(analyzer).GetAccentuation(ctx, word, grammaticalCase)
}
