package files

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gobwas/glob"
	"github.com/maypok86/otter"

	"github.com/tomblah/auto-prompt-generator-sub000/internal/config"
	"github.com/tomblah/auto-prompt-generator-sub000/internal/marker"
)

// compiledPattern holds both the pattern string and compiled glob.
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// Discovery walks a project tree for files relevant to prompt generation:
// files carrying the instruction marker, files using visible-region markers,
// and files defining candidate type names. File contents are served through a
// read-through cache keyed by path and mtime, so repeated scans (watch mode,
// MCP tools) do not re-read unchanged files.
type Discovery struct {
	rootDir         string
	scanner         *marker.Scanner
	includePatterns []compiledPattern
	ignorePatterns  []compiledPattern
	contents        otter.Cache[string, string]
}

// NewDiscovery compiles the configured glob patterns and prepares the content
// cache.
func NewDiscovery(rootDir string, cfg *config.Config) (*Discovery, error) {
	d := &Discovery{
		rootDir: rootDir,
		scanner: marker.NewScannerWithTokens(
			cfg.Markers.Open, cfg.Markers.Close, cfg.Markers.Instruction),
	}

	for _, pattern := range cfg.Paths.Include {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("include pattern %q: %w", pattern, err)
		}
		d.includePatterns = append(d.includePatterns, compiledPattern{pattern: pattern, glob: g})
	}
	for _, pattern := range cfg.Paths.Ignore {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("ignore pattern %q: %w", pattern, err)
		}
		d.ignorePatterns = append(d.ignorePatterns, compiledPattern{pattern: pattern, glob: g})
	}

	cache, err := otter.MustBuilder[string, string](512).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build content cache: %w", err)
	}
	d.contents = cache

	return d, nil
}

// Close releases the content cache.
func (d *Discovery) Close() {
	d.contents.Close()
}

// Files returns every file under the root matching an include pattern and no
// ignore pattern.
func (d *Discovery) Files() ([]string, error) {
	var matched []string
	err := filepath.Walk(d.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		relPath, err := filepath.Rel(d.rootDir, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)
		if d.matchesAny(relPath, d.ignorePatterns) {
			return nil
		}
		if d.matchesAny(relPath, d.includePatterns) {
			matched = append(matched, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", d.rootDir, err)
	}
	return matched, nil
}

// ReadFile returns the file's content through the mtime-keyed cache.
func (d *Discovery) ReadFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("%s|%d", path, info.ModTime().UnixNano())
	if content, ok := d.contents.Get(key); ok {
		return content, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	content := string(data)
	d.contents.Set(key, content)
	return content, nil
}

// FindInstructionFiles returns the files whose content contains the
// instruction-marker substring, in walk order.
func (d *Discovery) FindInstructionFiles() ([]string, error) {
	return d.filesWhere(func(content string) bool {
		return strings.Contains(content, d.scanner.InstructionToken())
	})
}

// FindMarkerFiles returns the files that use visible-region markers.
func (d *Discovery) FindMarkerFiles() ([]string, error) {
	return d.filesWhere(func(content string) bool {
		return d.scanner.UsesMarkers(marker.SplitLines(content))
	})
}

// FindDefiningFiles returns the files that appear to declare any of the given
// type names. The match is heuristic: a declaration keyword followed by the
// name at a word boundary.
func (d *Discovery) FindDefiningFiles(typeNames []string) ([]string, error) {
	if len(typeNames) == 0 {
		return nil, nil
	}
	res := make([]*regexp.Regexp, 0, len(typeNames))
	for _, name := range typeNames {
		re, err := regexp.Compile(
			`(?m)^\s*(?:\w+\s+)*(?:class|struct|enum|protocol|actor|interface|trait|type)\s+` +
				regexp.QuoteMeta(name) + `\b`)
		if err != nil {
			return nil, fmt.Errorf("type name %q: %w", name, err)
		}
		res = append(res, re)
	}
	return d.filesWhere(func(content string) bool {
		for _, re := range res {
			if re.MatchString(content) {
				return true
			}
		}
		return false
	})
}

// FindReferencingFiles returns the files that mention any of the given type
// names at a word boundary, declaration or not. Broader than
// FindDefiningFiles; used to widen the prompt batch on request.
func (d *Discovery) FindReferencingFiles(typeNames []string) ([]string, error) {
	if len(typeNames) == 0 {
		return nil, nil
	}
	res := make([]*regexp.Regexp, 0, len(typeNames))
	for _, name := range typeNames {
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(name) + `\b`)
		if err != nil {
			return nil, fmt.Errorf("type name %q: %w", name, err)
		}
		res = append(res, re)
	}
	return d.filesWhere(func(content string) bool {
		for _, re := range res {
			if re.MatchString(content) {
				return true
			}
		}
		return false
	})
}

func (d *Discovery) filesWhere(pred func(content string) bool) ([]string, error) {
	paths, err := d.Files()
	if err != nil {
		return nil, err
	}
	var out []string
	for _, path := range paths {
		content, err := d.ReadFile(path)
		if err != nil {
			// Unreadable files are skipped, not fatal: the caller falls back
			// to whatever the rest of the tree yields.
			continue
		}
		if pred(content) {
			out = append(out, path)
		}
	}
	return out, nil
}

func (d *Discovery) matchesAny(relPath string, patterns []compiledPattern) bool {
	for _, p := range patterns {
		if p.glob.Match(relPath) {
			return true
		}
	}
	return false
}
