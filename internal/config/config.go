package config

import "github.com/tomblah/auto-prompt-generator-sub000/internal/marker"

// Config represents the complete promptgen configuration.
// It can be loaded from .promptgen/config.yml with environment variable
// overrides.
type Config struct {
	Markers MarkersConfig `yaml:"markers" mapstructure:"markers"`
	Paths   PathsConfig   `yaml:"paths" mapstructure:"paths"`
	Diff    DiffConfig    `yaml:"diff" mapstructure:"diff"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
}

// MarkersConfig configures the marker tokens and filtering policy. ForceAll
// treats every file as marker-using, so files without markers contribute only
// a placeholder; it is an explicit field threaded into each call rather than
// ambient process state.
type MarkersConfig struct {
	Open        string `yaml:"open" mapstructure:"open"`
	Close       string `yaml:"close" mapstructure:"close"`
	Instruction string `yaml:"instruction" mapstructure:"instruction"`
	Placeholder string `yaml:"placeholder" mapstructure:"placeholder"`
	ForceAll    bool   `yaml:"force_all" mapstructure:"force_all"`
}

// PathsConfig defines which files to consider and which to ignore.
type PathsConfig struct {
	Include []string `yaml:"include" mapstructure:"include"` // glob patterns for source files
	Ignore  []string `yaml:"ignore" mapstructure:"ignore"`   // glob patterns to skip
}

// DiffConfig controls the optional diff section of the prompt.
type DiffConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Branch  string `yaml:"branch" mapstructure:"branch"` // empty means auto-detect main/master
}

// OutputConfig controls how the assembled prompt is delivered.
type OutputConfig struct {
	Clipboard bool `yaml:"clipboard" mapstructure:"clipboard"`
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Markers: MarkersConfig{
			Open:        marker.DefaultOpen,
			Close:       marker.DefaultClose,
			Instruction: marker.DefaultInstruction,
			Placeholder: marker.DefaultPlaceholder,
			ForceAll:    false,
		},
		Paths: PathsConfig{
			Include: []string{
				"**/*.swift",
				"**/*.m",
				"**/*.h",
				"**/*.ts",
				"**/*.tsx",
				"**/*.js",
				"**/*.jsx",
				"**/*.py",
				"**/*.java",
				"**/*.rs",
				"**/*.c",
				"**/*.php",
				"**/*.rb",
			},
			Ignore: []string{
				"**/node_modules/**",
				"**/.git/**",
				"**/Pods/**",
				"**/build/**",
				"**/vendor/**",
				"**/dist/**",
			},
		},
		Diff: DiffConfig{
			Enabled: false,
			Branch:  "",
		},
		Output: OutputConfig{
			Clipboard: true,
		},
	}
}
