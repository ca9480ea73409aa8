package analyzer

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/snonux/kirtis/internal/accent"
)

// Cache stores analyzer output in a SQLite database, keyed by word.
type Cache struct {
	db *sql.DB
}

// OpenCache opens or creates the cache database at path.
func OpenCache(path string) (*Cache, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	query := `CREATE TABLE IF NOT EXISTS analyses (
		word TEXT PRIMARY KEY,
		options TEXT NOT NULL,
		created_at INTEGER NOT NULL
	)`
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache table: %w", err)
	}
	return &Cache{db: db}, nil
}

// Get returns the cached options for word. The boolean is false on a miss.
func (c *Cache) Get(ctx context.Context, word string) ([]accent.StressOption, bool, error) {
	var data string
	err := c.db.QueryRowContext(ctx, `SELECT options FROM analyses WHERE word = ?`, word).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache: %w", err)
	}

	var options []accent.StressOption
	if err := json.Unmarshal([]byte(data), &options); err != nil {
		return nil, false, fmt.Errorf("corrupt cache entry for %q: %w", word, err)
	}
	return options, true, nil
}

// Put stores options for word, replacing any earlier entry.
func (c *Cache) Put(ctx context.Context, word string, options []accent.StressOption) error {
	data, err := json.Marshal(options)
	if err != nil {
		return fmt.Errorf("failed to encode options: %w", err)
	}

	_, err = c.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO analyses (word, options, created_at) VALUES (?, ?, ?)`,
		word, string(data), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}

// Len returns the number of cached words.
func (c *Cache) Len(ctx context.Context) (int, error) {
	var n int
	if err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM analyses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count cache entries: %w", err)
	}
	return n, nil
}

// Close closes the database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// CachedAnalyzer serves repeated words from a Cache.
type CachedAnalyzer struct {
	inner  Provider
	cache  *Cache
	logger *slog.Logger
}

// NewCachedAnalyzer wraps inner with cache.
func NewCachedAnalyzer(inner Provider, cache *Cache, logger *slog.Logger) *CachedAnalyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedAnalyzer{inner: inner, cache: cache, logger: logger}
}

// Analyze returns cached options when present and otherwise asks the
// wrapped provider and stores its answer. Cache failures are logged and
// never fail the lookup.
func (c *CachedAnalyzer) Analyze(ctx context.Context, word string) ([]accent.StressOption, error) {
	options, ok, err := c.cache.Get(ctx, word)
	if err != nil {
		c.logger.Warn("analyzer cache read failed", "word", word, "error", err)
	} else if ok {
		c.logger.Debug("analyzer cache hit", "word", word)
		return options, nil
	}

	options, err = c.inner.Analyze(ctx, word)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Put(ctx, word, options); err != nil {
		c.logger.Warn("analyzer cache write failed", "word", word, "error", err)
	}
	return options, nil
}

// Name returns the provider name
func (c *CachedAnalyzer) Name() string {
	return c.inner.Name() + " (cached)"
}

// IsAvailable delegates to the wrapped provider.
func (c *CachedAnalyzer) IsAvailable() error {
	return c.inner.IsAvailable()
}
