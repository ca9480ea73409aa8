package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "kirtis [word] [case]" {
		t.Errorf("Expected Use to be 'kirtis [word] [case]', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "pitch-accent") {
		t.Errorf("Expected Short description to mention pitch-accent")
	}

	if err := cmd.Args(cmd, []string{"a", "b", "c"}); err == nil {
		t.Error("Expected three positional arguments to be rejected")
	}

	flagNames := []string{
		"config", "case", "batch", "log-level", "provider", "fallback",
		"python", "timeout", "fixture", "openai-model", "list-models", "cache", "cache-db",
	}

	for _, name := range flagNames {
		t.Run("flag_"+name, func(t *testing.T) {
			var flag *pflag.Flag
			if name == "config" {
				flag = cmd.PersistentFlags().Lookup(name)
			} else {
				flag = cmd.Flags().Lookup(name)
			}
			if flag == nil {
				t.Errorf("Expected flag %s to exist", name)
			}
		})
	}
}

func TestSetupFlags(t *testing.T) {
	cmd := &cobra.Command{}
	flags := NewFlags()

	setupFlags(cmd, flags)

	caseFlag := cmd.Flags().Lookup("case")
	if caseFlag == nil {
		t.Fatal("case flag not found")
	}
	if caseFlag.DefValue != "Vardininkas" {
		t.Errorf("Expected default case to be Vardininkas, got %s", caseFlag.DefValue)
	}
	if caseFlag.Shorthand != "c" {
		t.Errorf("Expected shorthand c, got %s", caseFlag.Shorthand)
	}

	home, _ := os.UserHomeDir()
	expectedDB := filepath.Join(home, ".cache", "kirtis", "analyses.db")
	if got := cmd.Flags().Lookup("cache-db").DefValue; got != expectedDB {
		t.Errorf("Expected default cache db to be %s, got %s", expectedDB, got)
	}
}

func TestCaseCompletions(t *testing.T) {
	got, directive := caseCompletions(nil, nil, "")
	if len(got) != 7 || got[0] != "Vardininkas" {
		t.Errorf("unexpected completions: %v", got)
	}
	if directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("unexpected directive: %v", directive)
	}
}

func TestInitConfig(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	tests := []struct {
		name      string
		setupFunc func(t *testing.T) string
	}{
		{
			name: "with config file",
			setupFunc: func(t *testing.T) string {
				cfgPath := filepath.Join(t.TempDir(), "test-config.yaml")
				content := `analyzer:
  provider: fixture
  openai_key: test-key
accent:
  case: Galininkas`
				if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
					t.Fatalf("Failed to create test config: %v", err)
				}
				return cfgPath
			},
		},
		{
			name: "without config file",
			setupFunc: func(t *testing.T) string {
				return ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset viper for each test
			viper.Reset()

			cfgPath := tt.setupFunc(t)
			InitConfig(cfgPath)

			if cfgPath != "" && viper.GetString("analyzer.provider") != "fixture" {
				t.Errorf("Expected analyzer.provider from config file, got %q", viper.GetString("analyzer.provider"))
			}

			// Test environment variable prefix
			os.Setenv("KIRTIS_TEST_VAR", "test-value")
			defer os.Unsetenv("KIRTIS_TEST_VAR")

			if viper.GetString("test_var") != "test-value" {
				t.Error("Environment variable not properly loaded")
			}
		})
	}
}

func TestGetOpenAIKey(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	tests := []struct {
		name      string
		envKey    string
		configKey string
		expected  string
	}{
		{"from environment", "env-test-key", "config-test-key", "env-test-key"},
		{"from config when no env", "", "config-test-key", "config-test-key"},
		{"empty when neither set", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()

			if tt.envKey != "" {
				t.Setenv("OPENAI_API_KEY", tt.envKey)
			} else {
				t.Setenv("OPENAI_API_KEY", "")
			}

			if tt.configKey != "" {
				viper.Set("analyzer.openai_key", tt.configKey)
			}

			if got := GetOpenAIKey(); got != tt.expected {
				t.Errorf("GetOpenAIKey() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAnalyzerConfig(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()
	t.Setenv("OPENAI_API_KEY", "")

	t.Run("flags only", func(t *testing.T) {
		viper.Reset()
		flags := NewFlags()
		flags.CacheDB = "/tmp/kirtis.db"

		config := AnalyzerConfig(flags)
		if config.Provider != "phonology" || config.Fallback != "fixture" {
			t.Errorf("unexpected providers: %s / %s", config.Provider, config.Fallback)
		}
		if config.Timeout != 30*time.Second {
			t.Errorf("Timeout = %v", config.Timeout)
		}
		if config.CacheDB != "/tmp/kirtis.db" || config.EnableCache {
			t.Errorf("unexpected cache settings: %+v", config)
		}
		if DefaultCase(flags) != "Vardininkas" {
			t.Errorf("DefaultCase = %s", DefaultCase(flags))
		}
	})

	t.Run("config values override unset flags", func(t *testing.T) {
		viper.Reset()
		viper.Set("analyzer.provider", "openai")
		viper.Set("analyzer.fallback", "")
		viper.Set("analyzer.timeout", "5s")
		viper.Set("analyzer.openai_key", "cfg-key")
		viper.Set("analyzer.breaker_failures", 7)
		viper.Set("cache.enabled", true)
		viper.Set("accent.case", "Kilmininkas")
		viper.Set("log.level", "debug")

		flags := NewFlags()
		config := AnalyzerConfig(flags)
		if config.Provider != "openai" || config.Fallback != "" {
			t.Errorf("unexpected providers: %s / %s", config.Provider, config.Fallback)
		}
		if config.Timeout != 5*time.Second {
			t.Errorf("Timeout = %v", config.Timeout)
		}
		if config.OpenAIKey != "cfg-key" {
			t.Errorf("OpenAIKey = %q", config.OpenAIKey)
		}
		if config.BreakerFailures != 7 {
			t.Errorf("BreakerFailures = %d", config.BreakerFailures)
		}
		if !config.EnableCache {
			t.Error("EnableCache should be true")
		}
		if DefaultCase(flags) != "Kilmininkas" {
			t.Errorf("DefaultCase = %s", DefaultCase(flags))
		}
		if LogLevel(flags) != "debug" {
			t.Errorf("LogLevel = %s", LogLevel(flags))
		}
	})
}

func TestBindFlagsToViper(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	viper.Reset()

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	cmd.Flags().Set("provider", "fixture")
	cmd.Flags().Set("case", "Galininkas")
	cmd.Flags().Set("timeout", "2s")

	bindFlagsToViper(cmd)

	if viper.GetString("analyzer.provider") != "fixture" {
		t.Errorf("Expected analyzer.provider to be fixture, got %s", viper.GetString("analyzer.provider"))
	}
	if viper.GetString("accent.case") != "Galininkas" {
		t.Errorf("Expected accent.case to be Galininkas, got %s", viper.GetString("accent.case"))
	}
	if viper.GetDuration("analyzer.timeout") != 2*time.Second {
		t.Errorf("Expected analyzer.timeout to be 2s, got %v", viper.GetDuration("analyzer.timeout"))
	}
	if got := AnalyzerConfig(flags); got.Provider != "fixture" {
		t.Errorf("AnalyzerConfig provider = %s", got.Provider)
	}
}
