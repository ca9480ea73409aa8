package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"codeberg.org/snonux/kirtis/internal/accent"
)

// BreakerAnalyzer stops calling a provider after repeated failures and
// retries it once the cooldown has passed.
type BreakerAnalyzer struct {
	inner Provider
	cb    *gobreaker.CircuitBreaker
}

// NewBreakerAnalyzer wraps inner in a circuit breaker that opens after
// failures consecutive errors. Zero values pick 3 failures and one minute.
func NewBreakerAnalyzer(inner Provider, failures uint32, cooldown time.Duration, logger *slog.Logger) *BreakerAnalyzer {
	if failures == 0 {
		failures = 3
	}
	if cooldown <= 0 {
		cooldown = time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}

	settings := gobreaker.Settings{
		Name:        inner.Name(),
		MaxRequests: 1,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("analyzer circuit breaker state changed",
				"analyzer", name, "from", from.String(), "to", to.String())
		},
		// Unknown words and caller cancellation say nothing about the
		// provider's health.
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, ErrWordNotFound) ||
				errors.Is(err, context.Canceled)
		},
	}

	return &BreakerAnalyzer{
		inner: inner,
		cb:    gobreaker.NewCircuitBreaker(settings),
	}
}

// Analyze calls the wrapped provider unless the breaker is open.
func (b *BreakerAnalyzer) Analyze(ctx context.Context, word string) ([]accent.StressOption, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.inner.Analyze(ctx, word)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%s: %w", b.inner.Name(), err)
		}
		return nil, err
	}
	return result.([]accent.StressOption), nil
}

// Name returns the provider name
func (b *BreakerAnalyzer) Name() string {
	return b.inner.Name()
}

// IsAvailable reports the breaker state and then the wrapped provider.
func (b *BreakerAnalyzer) IsAvailable() error {
	if b.cb.State() == gobreaker.StateOpen {
		return fmt.Errorf("%s: %w", b.inner.Name(), gobreaker.ErrOpenState)
	}
	return b.inner.IsAvailable()
}

// State returns the current breaker state.
func (b *BreakerAnalyzer) State() gobreaker.State {
	return b.cb.State()
}
