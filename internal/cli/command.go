package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/kirtis/internal"
	"codeberg.org/snonux/kirtis/internal/accent"
	"codeberg.org/snonux/kirtis/internal/analyzer"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kirtis [word] [case]",
		Short: "Lithuanian pitch-accent renderer",
		Long: `kirtis prints a Lithuanian word with the pitch-accent mark for a
grammatical case.

Stress placements come from the phonology_engine Python package; an OpenAI
model or a YAML fixture file can be used instead. The case may be given in
English (accusative) or Lithuanian (Galininkas).

Examples:
  kirtis                          # Demo: prints "gerà"
  kirtis žodį accusative          # Prints "žõdį"
  kirtis gera -c Vardininkas      # Prints "gerà"
  kirtis --batch words.txt        # One "word = case" per line
  kirtis --list-models            # OpenAI models for --provider openai`,
		Args:    cobra.MaximumNArgs(2),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	home, _ := os.UserHomeDir()
	defaultCacheDB := filepath.Join(home, ".cache", "kirtis", "analyses.db")

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.kirtis.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.Case, "case", "c", flags.Case, "Grammatical case, English or Lithuanian name")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Process words from file (one per line, optionally 'word = case')")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")

	// Analyzer flags
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Analyzer: phonology, openai or fixture")
	cmd.Flags().StringVar(&flags.Fallback, "fallback", flags.Fallback, "Analyzer used when the primary fails (empty to disable)")
	cmd.Flags().StringVar(&flags.PythonBin, "python", flags.PythonBin, "Python interpreter with phonology_engine installed")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", flags.Timeout, "Timeout for one analyzer call")
	cmd.Flags().StringVar(&flags.FixtureFile, "fixture", "", "YAML fixture file for the fixture analyzer (built-in fixture if empty)")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model for the openai analyzer")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List OpenAI chat models usable with --openai-model")

	// Cache flags
	cmd.Flags().BoolVar(&flags.Cache, "cache", false, "Cache analyzer results in a SQLite database")
	cmd.Flags().StringVar(&flags.CacheDB, "cache-db", defaultCacheDB, "Path of the analyzer cache database")

	cmd.RegisterFlagCompletionFunc("case", caseCompletions)

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("accent.case", cmd.Flags().Lookup("case"))
	viper.BindPFlag("log.level", cmd.Flags().Lookup("log-level"))
	viper.BindPFlag("analyzer.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("analyzer.fallback", cmd.Flags().Lookup("fallback"))
	viper.BindPFlag("analyzer.python", cmd.Flags().Lookup("python"))
	viper.BindPFlag("analyzer.timeout", cmd.Flags().Lookup("timeout"))
	viper.BindPFlag("analyzer.fixture", cmd.Flags().Lookup("fixture"))
	viper.BindPFlag("analyzer.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("cache.enabled", cmd.Flags().Lookup("cache"))
	viper.BindPFlag("cache.db", cmd.Flags().Lookup("cache-db"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".kirtis" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".kirtis")
	}

	// Environment variables
	viper.SetEnvPrefix("KIRTIS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("analyzer.openai_key")
}

// AnalyzerConfig merges flags, config file and environment into an
// analyzer configuration. Bound viper keys take precedence over the
// flag struct so that config file values apply when a flag is unset.
func AnalyzerConfig(flags *Flags) *analyzer.Config {
	config := analyzer.DefaultConfig()

	config.Provider = stringSetting("analyzer.provider", flags.Provider)
	config.Fallback = stringSetting("analyzer.fallback", flags.Fallback)
	config.PythonBin = stringSetting("analyzer.python", flags.PythonBin)
	config.FixtureFile = stringSetting("analyzer.fixture", flags.FixtureFile)
	config.OpenAIModel = stringSetting("analyzer.openai_model", flags.OpenAIModel)
	config.OpenAIKey = GetOpenAIKey()
	config.CacheDB = stringSetting("cache.db", flags.CacheDB)

	config.Timeout = flags.Timeout
	if viper.IsSet("analyzer.timeout") {
		config.Timeout = viper.GetDuration("analyzer.timeout")
	}
	config.EnableCache = flags.Cache
	if viper.IsSet("cache.enabled") {
		config.EnableCache = viper.GetBool("cache.enabled")
	}
	if viper.IsSet("analyzer.breaker_failures") {
		config.BreakerFailures = viper.GetUint32("analyzer.breaker_failures")
	}
	if viper.IsSet("analyzer.breaker_cooldown") {
		config.BreakerCooldown = viper.GetDuration("analyzer.breaker_cooldown")
	}

	return config
}

// DefaultCase returns the case used for words given without one.
func DefaultCase(flags *Flags) string {
	return stringSetting("accent.case", flags.Case)
}

// LogLevel returns the configured log level name.
func LogLevel(flags *Flags) string {
	return stringSetting("log.level", flags.LogLevel)
}

func stringSetting(key, fallback string) string {
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return fallback
}

// caseCompletions offers the Lithuanian case labels for --case.
func caseCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return accent.CaseLabels(), cobra.ShellCompDirectiveNoFileComp
}
