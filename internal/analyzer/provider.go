package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"codeberg.org/snonux/kirtis/internal/accent"
)

// Provider is an accent.Analyzer that can describe and check itself.
type Provider interface {
	accent.Analyzer

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured and reachable
	IsAvailable() error
}

// Provider names accepted in Config.
const (
	ProviderPhonology = "phonology"
	ProviderOpenAI    = "openai"
	ProviderFixture   = "fixture"
)

// Config selects and tunes the analyzer providers.
type Config struct {
	Provider string // "phonology", "openai" or "fixture"
	Fallback string // provider used when the primary fails, empty for none

	// phonology_engine subprocess
	PythonBin string
	Timeout   time.Duration

	// OpenAI
	OpenAIKey   string
	OpenAIModel string

	// Fixture file, built-in fixture when empty
	FixtureFile string

	// Persistent cache
	EnableCache bool
	CacheDB     string

	// Circuit breaker around phonology and openai providers
	BreakerFailures uint32
	BreakerCooldown time.Duration
}

// DefaultConfig returns the default analyzer configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider:        ProviderPhonology,
		Fallback:        ProviderFixture,
		PythonBin:       "python3",
		Timeout:         30 * time.Second,
		OpenAIModel:     "gpt-4o-mini",
		CacheDB:         "kirtis-cache.db",
		BreakerFailures: 3,
		BreakerCooldown: time.Minute,
	}
}

// NewProvider creates the single provider named by name.
func NewProvider(name string, config *Config) (Provider, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch name {
	case ProviderPhonology:
		return NewPhonologyEngine(config.PythonBin, config.Timeout), nil
	case ProviderOpenAI:
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAIAnalyzer(config.OpenAIKey, config.OpenAIModel), nil
	case ProviderFixture:
		if config.FixtureFile == "" {
			return NewFixtureAnalyzer(DefaultFixture()), nil
		}
		return LoadFixture(config.FixtureFile)
	default:
		return nil, fmt.Errorf("unknown analyzer provider: %s", name)
	}
}

// Pipeline is the analyzer assembled from a Config. Close releases the
// cache database when one is open.
type Pipeline struct {
	Provider
	cache *Cache
}

// Close closes the cache, if any.
func (p *Pipeline) Close() error {
	if p.cache == nil {
		return nil
	}
	return p.cache.Close()
}

// Build assembles the configured provider, its circuit breaker, the cache
// and the fallback provider, in that order from the inside out. Only
// answers of the primary provider are cached, so fallback data never
// outlives an outage of the primary.
func Build(config *Config, logger *slog.Logger) (*Pipeline, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	pipeline := &Pipeline{}

	primary, err := newGuardedProvider(config.Provider, config, logger)
	if err != nil {
		if config.Fallback == "" || config.Fallback == config.Provider {
			return nil, err
		}
		logger.Warn("primary analyzer unavailable, using fallback only",
			"provider", config.Provider, "fallback", config.Fallback, "error", err)
		primary = nil
	}

	if primary != nil && config.EnableCache {
		cache, err := OpenCache(config.CacheDB)
		if err != nil {
			return nil, err
		}
		pipeline.cache = cache
		primary = NewCachedAnalyzer(primary, cache, logger)
	}

	pipeline.Provider = primary
	if config.Fallback != "" && config.Fallback != config.Provider {
		fallback, ferr := newGuardedProvider(config.Fallback, config, logger)
		switch {
		case ferr != nil && primary == nil:
			pipeline.Close()
			return nil, fmt.Errorf("both analyzers failed: %w", errors.Join(err, ferr))
		case ferr != nil:
			logger.Warn("fallback analyzer unavailable", "fallback", config.Fallback, "error", ferr)
		case primary == nil:
			pipeline.Provider = fallback
		default:
			pipeline.Provider = NewFallbackAnalyzer(primary, fallback, logger)
		}
	}
	return pipeline, nil
}

func newGuardedProvider(name string, config *Config, logger *slog.Logger) (Provider, error) {
	p, err := NewProvider(name, config)
	if err != nil {
		return nil, err
	}
	if name == ProviderFixture {
		return p, nil
	}
	return NewBreakerAnalyzer(p, config.BreakerFailures, config.BreakerCooldown, logger), nil
}

// FallbackAnalyzer asks a secondary provider when the primary fails.
type FallbackAnalyzer struct {
	primary  Provider
	fallback Provider
	logger   *slog.Logger
}

// NewFallbackAnalyzer creates a provider that falls back to secondary if primary fails
func NewFallbackAnalyzer(primary, fallback Provider, logger *slog.Logger) *FallbackAnalyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &FallbackAnalyzer{primary: primary, fallback: fallback, logger: logger}
}

// Analyze tries the primary provider first and the fallback on error. When
// both fail the returned error matches both causes.
func (f *FallbackAnalyzer) Analyze(ctx context.Context, word string) ([]accent.StressOption, error) {
	options, err := f.primary.Analyze(ctx, word)
	if err == nil {
		return options, nil
	}
	if ctx.Err() != nil {
		return nil, err
	}

	f.logger.Warn("primary analyzer failed, falling back",
		"primary", f.primary.Name(), "fallback", f.fallback.Name(), "word", word, "error", err)

	options, ferr := f.fallback.Analyze(ctx, word)
	if ferr != nil {
		return nil, errors.Join(err, ferr)
	}
	return options, nil
}

// Name returns the provider name
func (f *FallbackAnalyzer) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", f.primary.Name(), f.fallback.Name())
}

// IsAvailable checks if at least one provider is available
func (f *FallbackAnalyzer) IsAvailable() error {
	primaryErr := f.primary.IsAvailable()
	if primaryErr == nil {
		return nil
	}

	fallbackErr := f.fallback.IsAvailable()
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("both providers unavailable: primary=%v, fallback=%v",
		primaryErr, fallbackErr)
}
