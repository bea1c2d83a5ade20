package config

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// Validate checks a configuration for contradictions that would make the
// pipeline misbehave. It accumulates all problems rather than stopping at the
// first.
func Validate(cfg *Config) error {
	var errs []string

	if strings.TrimSpace(cfg.Markers.Open) == "" {
		errs = append(errs, "markers.open cannot be empty")
	}
	if strings.TrimSpace(cfg.Markers.Close) == "" {
		errs = append(errs, "markers.close cannot be empty")
	}
	if cfg.Markers.Open == cfg.Markers.Close {
		errs = append(errs, "markers.open and markers.close must differ")
	}
	if strings.TrimSpace(cfg.Markers.Instruction) == "" {
		errs = append(errs, "markers.instruction cannot be empty")
	}

	if len(cfg.Paths.Include) == 0 {
		errs = append(errs, "paths.include must list at least one pattern")
	}
	for _, pattern := range cfg.Paths.Include {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			errs = append(errs, fmt.Sprintf("paths.include pattern %q: %v", pattern, err))
		}
	}
	for _, pattern := range cfg.Paths.Ignore {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			errs = append(errs, fmt.Sprintf("paths.ignore pattern %q: %v", pattern, err))
		}
	}

	if strings.ContainsAny(cfg.Diff.Branch, " \t") {
		errs = append(errs, "diff.branch cannot contain whitespace")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
