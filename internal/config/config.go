// Package config loads lint configuration from .prlint.yaml, falling back
// to defaults that reproduce the stock PR-description rule set.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up next to the document.
const DefaultFileName = ".prlint.yaml"

// SectionTermRule requires terms to appear inside one named section.
// AllOf terms must each be present; AnyOf is satisfied by any one match.
type SectionTermRule struct {
	// Section is the exact title of the section the terms must appear in.
	Section string `yaml:"section"`

	// AllOf lists terms that must all be present in the section body.
	AllOf []string `yaml:"all_of"`

	// AnyOf lists terms of which at least one must be present.
	AnyOf []string `yaml:"any_of"`

	// CaseSensitive switches matching from case-folded to exact.
	CaseSensitive bool `yaml:"case_sensitive"`
}

// Config holds every tunable the rules consult. Zero values are filled in
// by DefaultConfig; LoadConfig overlays the YAML file on top of defaults.
type Config struct {
	// RequiredSections lists section titles that must be present, in the
	// order they must appear.
	RequiredSections []string `yaml:"required_sections"`

	// HeadingLevel is the level every heading must use (1-6).
	HeadingLevel int `yaml:"heading_level"`

	// MinSectionLength is the minimum body length, in characters, for a
	// section to count as non-empty. Comment-only sections are exempt.
	MinSectionLength int `yaml:"min_section_length"`

	// BulletSections lists sections that must contain at least one bullet.
	BulletSections []string `yaml:"bullet_sections"`

	// RequiredTerms must each appear somewhere in the document
	// (case-insensitive).
	RequiredTerms []string `yaml:"required_terms"`

	// TermPairs lists groups of terms that must co-occur in the document.
	TermPairs [][]string `yaml:"term_pairs"`

	// SectionTerms binds terms to specific sections.
	SectionTerms []SectionTermRule `yaml:"section_terms"`

	// MaxLineLength bounds line length; MaxLongLines is how many lines may
	// exceed it before the rule fails.
	MaxLineLength int `yaml:"max_line_length"`
	MaxLongLines  int `yaml:"max_long_lines"`

	// MinBytes/MaxBytes bound the on-disk file size (exclusive bounds).
	MinBytes int `yaml:"min_bytes"`
	MaxBytes int `yaml:"max_bytes"`

	// MinContentLines is the number of non-empty lines the document must
	// exceed.
	MinContentLines int `yaml:"min_content_lines"`

	// Placeholders are tokens that must not appear anywhere (exact case).
	Placeholders []string `yaml:"placeholders"`

	// CredentialPatterns are regexes matching credential assignments.
	CredentialPatterns []string `yaml:"credential_patterns"`

	// PathPatterns are regexes matching absolute filesystem paths.
	PathPatterns []string `yaml:"path_patterns"`

	// Disabled lists rule IDs to skip entirely.
	Disabled []string `yaml:"disabled"`

	// Severity overrides per-rule severity ("error" or "warning").
	Severity map[string]string `yaml:"severity"`
}

// DefaultConfig returns the stock rule parameters for a PR-description
// document.
func DefaultConfig() *Config {
	return &Config{
		RequiredSections: []string{
			"Purpose/Motivation",
			"What does this PR do?",
			"Legal Boilerplate",
		},
		HeadingLevel:     3,
		MinSectionLength: 10,
		BulletSections:   []string{"What does this PR do?"},
		RequiredTerms:    []string{"tier", "resolver", "test"},
		TermPairs: [][]string{
			{"tier", "plan"},
		},
		SectionTerms: []SectionTermRule{
			{Section: "Purpose/Motivation", AllOf: []string{"tier", "plan"}},
			{Section: "Purpose/Motivation", AnyOf: []string{"evolv", "first pass", "initial", "iterative"}},
			{Section: "What does this PR do?", AllOf: []string{"tier service", "resolver", "test"}},
			{Section: "Legal Boilerplate", AllOf: []string{"Sentry", "Delaware", "Codecov", "rights", "contributions"}, CaseSensitive: true},
		},
		MaxLineLength:   200,
		MaxLongLines:    2,
		MinBytes:        100,
		MaxBytes:        10240,
		MinContentLines: 5,
		Placeholders:    []string{"TODO", "FIXME", "XXX", "TBD", "PLACEHOLDER"},
		CredentialPatterns: []string{
			`(?i)password\s*[:=]\s*\S+`,
			`(?i)api[_-]?key\s*[:=]\s*\S+`,
			`(?i)secret\s*[:=]\s*\S+`,
			`(?i)token\s*[:=]\s*\S+`,
		},
		PathPatterns: []string{
			`C:\\`,
			`/Users/`,
			`/home/[^s]`,
			`/root/`,
		},
		Severity: map[string]string{},
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Unmarshal over the defaults so absent keys keep their stock values.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadConfigForDocument loads .prlint.yaml from the directory containing the
// document, falling back to defaults when no file is present.
func LoadConfigForDocument(docPath string) (*Config, error) {
	return LoadConfig(filepath.Join(filepath.Dir(docPath), DefaultFileName))
}

// Validate checks the configuration values and returns an error if any are
// out of range.
func (c *Config) Validate() error {
	if c.HeadingLevel < 1 || c.HeadingLevel > 6 {
		return fmt.Errorf("heading_level must be between 1 and 6, got %d", c.HeadingLevel)
	}
	if c.MaxLineLength <= 0 {
		return fmt.Errorf("max_line_length must be > 0, got %d", c.MaxLineLength)
	}
	if c.MaxLongLines < 0 {
		return fmt.Errorf("max_long_lines must be >= 0, got %d", c.MaxLongLines)
	}
	if c.MinBytes < 0 {
		return fmt.Errorf("min_bytes must be >= 0, got %d", c.MinBytes)
	}
	if c.MaxBytes <= c.MinBytes {
		return fmt.Errorf("max_bytes must be > min_bytes, got %d <= %d", c.MaxBytes, c.MinBytes)
	}
	if c.MinSectionLength < 0 {
		return fmt.Errorf("min_section_length must be >= 0, got %d", c.MinSectionLength)
	}
	for _, pair := range c.TermPairs {
		if len(pair) < 2 {
			return fmt.Errorf("term_pairs entries need at least two terms, got %v", pair)
		}
	}
	for rule, sev := range c.Severity {
		if sev != "error" && sev != "warning" {
			return fmt.Errorf("severity for %q must be \"error\" or \"warning\", got %q", rule, sev)
		}
	}
	for _, pattern := range c.CredentialPatterns {
		if _, err := regexp.Compile(pattern); err != nil {
			return fmt.Errorf("invalid credential_patterns entry %q: %w", pattern, err)
		}
	}
	for _, pattern := range c.PathPatterns {
		if _, err := regexp.Compile(pattern); err != nil {
			return fmt.Errorf("invalid path_patterns entry %q: %w", pattern, err)
		}
	}
	return nil
}

// RuleDisabled reports whether the given rule ID is disabled.
func (c *Config) RuleDisabled(id string) bool {
	for _, d := range c.Disabled {
		if d == id {
			return true
		}
	}
	return false
}
