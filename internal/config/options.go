package config

import (
	"fmt"
	"go/token"
	"slices"
	"strings"
)

// Sum declares a sum type explicitly: an interface and the types that
// implement it.
type Sum struct {
	Interface string   `yaml:"interface" json:"interface"`
	Variants  []string `yaml:"variants" json:"variants"`
}

// Options are the typed generator settings.
type Options struct {
	// PackageImport is the import path of the optics package in generated code.
	PackageImport string
	// OutputSuffix replaces ".go" on the input file name to build the output
	// file name.
	OutputSuffix      string
	IncludeUnexported bool
	// Types restricts generation to the named types. Empty means all.
	Types []string
	Sums  []Sum
}

// Options decodes the typed generator settings and validates them.
func (c *Config) Options() (Options, error) {
	opts := Options{
		PackageImport:     c.GetString(KeyPackage),
		OutputSuffix:      c.GetString(KeyOutputSuffix),
		IncludeUnexported: c.GetBool(KeyIncludeUnexported),
		Types:             c.GetStringSlice(KeyTypes),
	}

	sums, err := c.sums()
	if err != nil {
		return Options{}, err
	}
	opts.Sums = sums

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func (c *Config) sums() ([]Sum, error) {
	v, ok := c.Get(KeySums)
	if !ok {
		return nil, nil
	}
	switch val := v.(type) {
	case []Sum:
		return val, nil
	case []any:
		sums := make([]Sum, 0, len(val))
		for i, item := range val {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("sums[%d]: expected a mapping, got %T", i, item)
			}
			name, _ := m["interface"].(string)
			variants, _ := m["variants"].([]any)
			sum := Sum{Interface: name}
			for _, variant := range variants {
				sum.Variants = append(sum.Variants, fmt.Sprintf("%v", variant))
			}
			sums = append(sums, sum)
		}
		return sums, nil
	}
	return nil, fmt.Errorf("sums: expected a list, got %T", v)
}

// Validate reports every problem with o at once.
func (o Options) Validate() error {
	var problems []string

	if o.PackageImport == "" {
		problems = append(problems, "package import path is empty")
	}
	if o.OutputSuffix == "" || !strings.HasSuffix(o.OutputSuffix, ".go") {
		problems = append(problems, fmt.Sprintf("output suffix %q must end in .go", o.OutputSuffix))
	}
	for _, name := range o.Types {
		if !token.IsIdentifier(name) {
			problems = append(problems, fmt.Sprintf("type %q is not an identifier", name))
		}
	}
	for i, sum := range o.Sums {
		if !token.IsIdentifier(sum.Interface) {
			problems = append(problems, fmt.Sprintf("sums[%d]: interface %q is not an identifier", i, sum.Interface))
		}
		if len(sum.Variants) == 0 {
			problems = append(problems, fmt.Sprintf("sums[%d]: %s has no variants", i, sum.Interface))
		}
		for _, variant := range sum.Variants {
			if !token.IsIdentifier(strings.TrimPrefix(variant, "*")) {
				problems = append(problems, fmt.Sprintf("sums[%d]: variant %q is not an identifier", i, variant))
			}
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// Wants reports whether code should be generated for the named type.
func (o Options) Wants(name string) bool {
	return len(o.Types) == 0 || slices.Contains(o.Types, name)
}
