package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	opts, err := New().Options()
	require.NoError(t, err)

	assert.Equal(t, DefaultPackage, opts.PackageImport)
	assert.Equal(t, "_optics.go", opts.OutputSuffix)
	assert.False(t, opts.IncludeUnexported)
	assert.Empty(t, opts.Types)
	assert.True(t, opts.Wants("Anything"))
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "opticgen.yaml", `
output:
  suffix: _lenses.go
include:
  unexported: true
types: [Config, Timespan]
sums:
  - interface: Timespan
    variants: [Seconds, Minutes, "*Hours"]
`)

	c := New()
	require.NoError(t, c.LoadFile(path))

	opts, err := c.Options()
	require.NoError(t, err)

	assert.Equal(t, "_lenses.go", opts.OutputSuffix)
	assert.True(t, opts.IncludeUnexported)
	assert.Equal(t, []string{"Config", "Timespan"}, opts.Types)
	assert.Equal(t, []Sum{{Interface: "Timespan", Variants: []string{"Seconds", "Minutes", "*Hours"}}}, opts.Sums)
	assert.True(t, opts.Wants("Config"))
	assert.False(t, opts.Wants("Other"))
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "opticgen.json", `{"package": "example.com/optics", "types": ["Point"]}`)

	c := New()
	require.NoError(t, c.LoadFile(path))

	assert.Equal(t, "example.com/optics", c.GetString(KeyPackage))
	assert.Equal(t, []string{"Point"}, c.GetStringSlice(KeyTypes))
}

func TestLoadFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		err := New().LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("bad YAML", func(t *testing.T) {
		err := New().LoadFile(writeFile(t, "bad.yml", "types: [unclosed"))
		assert.ErrorContains(t, err, "failed to parse YAML")
	})

	t.Run("bad JSON", func(t *testing.T) {
		err := New().LoadFile(writeFile(t, "bad.json", "{"))
		assert.ErrorContains(t, err, "failed to parse JSON")
	})
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("OPTICGEN_OUTPUT_SUFFIX", "_gen.go")
	t.Setenv("OPTICGEN_TYPES", "A, B")
	t.Setenv("OPTICGEN_INCLUDE_UNEXPORTED", "yes")
	t.Setenv("OTHER_TYPES", "C")

	c := New().LoadEnv(EnvPrefix)
	opts, err := c.Options()
	require.NoError(t, err)

	assert.Equal(t, "_gen.go", opts.OutputSuffix)
	assert.Equal(t, []string{"A", "B"}, opts.Types)
	assert.True(t, opts.IncludeUnexported)
}

func TestSetOverridesFileAndEnv(t *testing.T) {
	t.Setenv("OPTICGEN_OUTPUT_SUFFIX", "_env.go")
	c := New()
	require.NoError(t, c.LoadFile(writeFile(t, "c.yaml", "output:\n  suffix: _file.go\n")))
	c.LoadEnv(EnvPrefix)
	assert.Equal(t, "_env.go", c.GetString(KeyOutputSuffix))

	c.Set(KeyOutputSuffix, "_flag.go")
	assert.Equal(t, "_flag.go", c.GetString(KeyOutputSuffix))
	assert.Equal(t, "_flag.go", c.All()[KeyOutputSuffix])
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	opts := Options{
		PackageImport: "",
		OutputSuffix:  "_optics.txt",
		Types:         []string{"ok", "not valid"},
		Sums:          []Sum{{Interface: "Shape"}},
	}

	err := opts.Validate()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Problems, 4)
	assert.ErrorContains(t, err, "Shape has no variants")
}

func TestValidateRequiredKeys(t *testing.T) {
	c := New()
	err := c.Validate(KeyPackage, "missing.key")

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"missing.key"}, verr.MissingKeys)
	assert.NoError(t, c.Validate(KeyPackage))

	c.Set(KeyPackage, "  ")
	require.NoError(t, c.LoadFile(writeFile(t, "blank.yaml", "output:\n  suffix:\n")))
	err = c.Validate(KeyPackage, KeyOutputSuffix)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{KeyPackage, KeyOutputSuffix}, verr.MissingKeys)
}

func TestSumsMustBeMappings(t *testing.T) {
	c := New()
	c.Set(KeySums, []any{"Timespan"})
	_, err := c.Options()
	assert.ErrorContains(t, err, "expected a mapping")
}
