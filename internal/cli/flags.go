package cli

import (
	"time"

	"codeberg.org/snonux/kirtis/internal/accent"
	"codeberg.org/snonux/kirtis/internal/analyzer"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	Case       string
	BatchFile  string
	LogLevel   string
	ListModels bool

	// Analyzer flags
	Provider    string
	Fallback    string
	PythonBin   string
	Timeout     time.Duration
	FixtureFile string
	OpenAIModel string

	// Cache flags
	Cache   bool
	CacheDB string
}

// NewFlags creates a new Flags instance with default values. Analyzer
// defaults come from analyzer.DefaultConfig.
func NewFlags() *Flags {
	defaults := analyzer.DefaultConfig()
	return &Flags{
		Case:        accent.Vardininkas,
		LogLevel:    "warn",
		Provider:    defaults.Provider,
		Fallback:    defaults.Fallback,
		PythonBin:   defaults.PythonBin,
		Timeout:     defaults.Timeout,
		OpenAIModel: defaults.OpenAIModel,
	}
}
