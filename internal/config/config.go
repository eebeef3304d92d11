package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
	"github.com/alnah/go-md2html/internal/templates"
	"github.com/alnah/go-md2html/internal/tomlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrUnknownKey      = errors.New("unknown template key")
	ErrOutOfRange      = errors.New("value out of range")
)

// Limits applied by Validate.
const (
	MaxTemplateLength = 64 << 10 // a single template, prologue included
	MaxNameLength     = 100      // style and code style names
	MaxPathLength     = 4096     // output names and asset directories
	MaxThreads        = 256
	MaxWorkers        = 64
)

// Extension is the config file extension tried when resolving names.
const Extension = ".toml"

// Config is a TOML document with [page] and [tags] template tables and a
// [convert] table of defaults for the command line.
type Config struct {
	Page    map[string]string `toml:"page"`
	Tags    map[string]string `toml:"tags"`
	Convert ConvertConfig     `toml:"convert"`
}

// ConvertConfig holds conversion defaults. Zero values mean "not set".
type ConvertConfig struct {
	Threads      int    `toml:"threads"`       // unit workers per document
	Workers      int    `toml:"workers"`       // documents converted concurrently
	Style        string `toml:"style"`         // style name or CSS file path
	CodeStyle    string `toml:"code-style"`    // chroma style name
	Output       string `toml:"output"`        // output path or per-directory file name
	Frontmatter  *bool  `toml:"frontmatter"`   // nil = enabled
	RewriteLinks bool   `toml:"rewrite-links"` // rewrite relative .md links
	AssetsDir    string `toml:"assets-dir"`    // directory holding styles/<name>.css
}

// DefaultConfig returns an empty configuration: built-in templates only.
func DefaultConfig() *Config {
	return &Config{
		Page: map[string]string{},
		Tags: map[string]string{},
	}
}

// Lookup returns the configured template for table and key.
// It satisfies templates.Lookup.
func (c *Config) Lookup(table, key string) (string, bool) {
	if c == nil {
		return "", false
	}
	var m map[string]string
	switch table {
	case templates.TablePage:
		m = c.Page
	case templates.TableTags:
		m = c.Tags
	default:
		return "", false
	}
	v, ok := m[key]
	return v, ok
}

// FrontmatterEnabled reports whether front matter should be parsed.
func (c *ConvertConfig) FrontmatterEnabled() bool {
	return c.Frontmatter == nil || *c.Frontmatter
}

// Validate rejects unknown template keys, oversized values and
// out-of-range worker counts. Called by Load and Parse.
func (c *Config) Validate() error {
	if err := validateKeys(templates.TablePage, c.Page, templates.PageKeys()); err != nil {
		return err
	}
	if err := validateKeys(templates.TableTags, c.Tags, templates.Keys()); err != nil {
		return err
	}

	if err := validateRange("convert.threads", c.Convert.Threads, MaxThreads); err != nil {
		return err
	}
	if err := validateRange("convert.workers", c.Convert.Workers, MaxWorkers); err != nil {
		return err
	}

	if err := validateFieldLength("convert.style", c.Convert.Style, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("convert.code-style", c.Convert.CodeStyle, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("convert.output", c.Convert.Output, MaxPathLength); err != nil {
		return err
	}
	return validateFieldLength("convert.assets-dir", c.Convert.AssetsDir, MaxPathLength)
}

func validateKeys(table string, m map[string]string, valid []string) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if !slices.Contains(valid, k) {
			return fmt.Errorf("%w: %s.%s%s", ErrUnknownKey, table, k, hints.ForUnknownTemplateKey(valid))
		}
		if err := validateFieldLength(table+"."+k, m[k], MaxTemplateLength); err != nil {
			return err
		}
	}
	return nil
}

func validateRange(fieldName string, value, maxValue int) error {
	if value < 0 || value > maxValue {
		return fmt.Errorf("%w: %s must be between 0 and %d, got %d", ErrOutOfRange, fieldName, maxValue, value)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// Parse decodes and validates a TOML config. Tables other than page, tags
// and convert are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := tomlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in SearchPaths.
// Returns error if the file is not found (no silent fallback).
func Load(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return DefaultConfig(), nil
	}
	return Parse(data)
}

// SearchPaths lists where a config name is looked up, in order:
// the current directory, then the user config directory.
func SearchPaths(name string) []string {
	file := name
	if !strings.HasSuffix(file, Extension) {
		file += Extension
	}

	paths := []string{file}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(userConfigDir, hints.ConfigDirName, file))
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

var _ templates.Lookup = (*Config)(nil)
