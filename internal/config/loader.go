package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir string
}

// NewLoader creates a new configuration loader for the given root directory.
func NewLoader(rootDir string) Loader {
	return &loader{rootDir: rootDir}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (PROMPTGEN_*)
// 2. Config file (.promptgen/config.yml or .promptgen/config.yaml)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	configDir := filepath.Join(l.rootDir, ".promptgen")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("PROMPTGEN")
	v.AutomaticEnv()
	// Replace . with _ in env var names (e.g., PROMPTGEN_MARKERS_FORCE_ALL)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Marker configuration
	v.BindEnv("markers.open")
	v.BindEnv("markers.close")
	v.BindEnv("markers.instruction")
	v.BindEnv("markers.placeholder")
	v.BindEnv("markers.force_all")

	// Diff configuration
	v.BindEnv("diff.enabled")
	v.BindEnv("diff.branch")

	// Output configuration
	v.BindEnv("output.clipboard")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is acceptable - we'll use defaults + env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("markers.open", defaults.Markers.Open)
	v.SetDefault("markers.close", defaults.Markers.Close)
	v.SetDefault("markers.instruction", defaults.Markers.Instruction)
	v.SetDefault("markers.placeholder", defaults.Markers.Placeholder)
	v.SetDefault("markers.force_all", defaults.Markers.ForceAll)

	v.SetDefault("paths.include", defaults.Paths.Include)
	v.SetDefault("paths.ignore", defaults.Paths.Ignore)

	v.SetDefault("diff.enabled", defaults.Diff.Enabled)
	v.SetDefault("diff.branch", defaults.Diff.Branch)

	v.SetDefault("output.clipboard", defaults.Output.Clipboard)
}
