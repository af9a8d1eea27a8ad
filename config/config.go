package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/brettbedarf/nautilus"
	"github.com/brettbedarf/nautilus/internal/util"
)

// CLI verbosity values accepted by ConfigOverride.LogLvl.
const (
	ErrorVerbose = iota + util.MinVerbosity
	WarnVerbose
	InfoVerbose
	DebugVerbose
	TraceVerbose
)

// Default configuration constants. See [Config] for field descriptions.
const (
	// DefaultLogLvl keeps the interactive shell quiet unless asked otherwise
	DefaultLogLvl = util.WarnLevel

	// DefaultPrompt renders as "root:/$ "
	DefaultPrompt = "{user}:{cwd}$ "

	// DefaultUser is the account the shell starts as
	DefaultUser = nautilus.RootUser
)

// Config contains runtime configuration values for the shell.
type Config struct {
	LogLvl   util.LogLevel // Minimum level written to stderr (Default warn)
	Prompt   string        // Prompt template; {user} and {cwd} are substituted (Default "{user}:{cwd}$ ")
	User     string        // Account the session starts as (Default root)
	Users    []string      // Accounts known at startup besides root
	SeedFile string        // Optional YAML/JSON file of nodes to provision before the first prompt
}

// RenderPrompt substitutes user and cwd into the prompt template.
func (c *Config) RenderPrompt(user, cwd string) string {
	return strings.NewReplacer("{user}", user, "{cwd}", cwd).Replace(c.Prompt)
}

// ConfigOverride uses pointer fields to distinguish between unset and zero values
// when loading partial configuration. See [Config] for field descriptions.
type ConfigOverride struct {
	// LogLvl is a CLI style verbosity between 1 (error) and 5 (trace)
	LogLvl   *int      `yaml:"verbose,omitempty" json:"verbose,omitempty"`
	Prompt   *string   `yaml:"prompt,omitempty" json:"prompt,omitempty"`
	User     *string   `yaml:"user,omitempty" json:"user,omitempty"`
	Users    *[]string `yaml:"users,omitempty" json:"users,omitempty"`
	SeedFile *string   `yaml:"seed,omitempty" json:"seed,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		LogLvl: DefaultLogLvl,
		Prompt: DefaultPrompt,
		User:   DefaultUser,
		Users:  []string{},
	}
}

// NewConfig creates a default Config with override applied on top. A nil
// override yields the defaults.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.LogLvl != nil {
		c.LogLvl = util.LevelFromVerbosity(*override.LogLvl)
	}
	if override.Prompt != nil {
		c.Prompt = *override.Prompt
	}
	if override.User != nil {
		c.User = *override.User
	}
	if override.Users != nil {
		c.Users = append([]string{}, *override.Users...)
	}
	if override.SeedFile != nil {
		c.SeedFile = *override.SeedFile
	}
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with defaults.
// This is a convenience function that combines NewDefaultConfig, LoadConfigOverrideFile, and Merge.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Merge(override)
	return cfg, nil
}
