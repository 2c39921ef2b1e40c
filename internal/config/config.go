// Package config provides opticgen configuration loading and validation.
//
// Values are layered: defaults, then a JSON or YAML file, then OPTICGEN_*
// environment variables, then values set explicitly (usually from CLI flags).
// Nested file keys are flattened to dotted names, so
//
//	output:
//	  suffix: _lenses.go
//
// and OPTICGEN_OUTPUT_SUFFIX both set "output.suffix".
package config

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Keys understood by Options.
const (
	KeyPackage           = "package"
	KeyOutputSuffix      = "output.suffix"
	KeyIncludeUnexported = "include.unexported"
	KeyTypes             = "types"
	KeySums              = "sums"
)

// EnvPrefix is the prefix of environment variables read by LoadEnv.
const EnvPrefix = "OPTICGEN"

// DefaultPackage is the import path generated code refers to.
const DefaultPackage = "github.com/authcorp/optics"

// Defaults returns the default configuration values.
func Defaults() map[string]any {
	return map[string]any{
		KeyPackage:           DefaultPackage,
		KeyOutputSuffix:      "_optics.go",
		KeyIncludeUnexported: false,
	}
}

// Config holds configuration values.
type Config struct {
	values   map[string]any
	defaults map[string]any
}

// New creates a Config with the default values.
func New() *Config {
	c := &Config{
		values:   make(map[string]any),
		defaults: make(map[string]any),
	}
	return c.WithDefaults(Defaults())
}

// WithDefaults sets default values.
func (c *Config) WithDefaults(defaults map[string]any) *Config {
	maps.Copy(c.defaults, defaults)
	return c
}

// LoadFile loads configuration from a JSON or YAML file.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var values map[string]any
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		if err := yaml.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
	}

	flatten("", values, c.values)
	return nil
}

func flatten(prefix string, in, out map[string]any) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(key, nested, out)
			continue
		}
		out[key] = v
	}
}

// LoadEnv loads configuration from environment variables with prefix.
func (c *Config) LoadEnv(prefix string) *Config {
	for _, env := range os.Environ() {
		key, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}
		if prefix != "" && !strings.HasPrefix(key, prefix+"_") {
			continue
		}
		// OPTICGEN_OUTPUT_SUFFIX becomes output.suffix
		configKey := strings.ToLower(strings.ReplaceAll(
			strings.TrimPrefix(key, prefix+"_"), "_", "."))
		c.values[configKey] = value
	}
	return c
}

// Set sets a configuration value.
func (c *Config) Set(key string, value any) {
	c.values[key] = value
}

// Get returns a configuration value.
func (c *Config) Get(key string) (any, bool) {
	if v, ok := c.values[key]; ok {
		return v, true
	}
	if v, ok := c.defaults[key]; ok {
		return v, true
	}
	return nil, false
}

// GetString returns a string configuration value.
func (c *Config) GetString(key string) string {
	v, ok := c.Get(key)
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// GetBool returns a bool configuration value.
func (c *Config) GetBool(key string) bool {
	v, ok := c.Get(key)
	if !ok {
		return false
	}
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val == "true" || val == "1" || val == "yes"
	}
	return false
}

// GetStringSlice returns a string slice configuration value. A string is split
// on commas.
func (c *Config) GetStringSlice(key string) []string {
	v, ok := c.Get(key)
	if !ok {
		return nil
	}
	switch val := v.(type) {
	case []string:
		return val
	case []any:
		result := make([]string, len(val))
		for i, item := range val {
			result[i] = fmt.Sprintf("%v", item)
		}
		return result
	case string:
		if val == "" {
			return nil
		}
		parts := strings.Split(val, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return nil
}

// Validate checks that required keys are set. A key explicitly set to nil or
// to a blank string counts as missing.
func (c *Config) Validate(required ...string) error {
	var missing []string
	for _, key := range required {
		v, ok := c.Get(key)
		if s, isString := v.(string); !ok || v == nil || isString && strings.TrimSpace(s) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{MissingKeys: missing}
	}
	return nil
}

// ValidationError represents configuration validation errors.
type ValidationError struct {
	MissingKeys []string
	Problems    []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.MissingKeys) > 0 {
		parts = append(parts, "missing required config keys: "+strings.Join(e.MissingKeys, ", "))
	}
	parts = append(parts, e.Problems...)
	return strings.Join(parts, "; ")
}

// All returns all configuration values.
func (c *Config) All() map[string]any {
	result := maps.Clone(c.defaults)
	maps.Copy(result, c.values)
	return result
}
