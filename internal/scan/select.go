package scan

import (
	"fmt"
	"slices"
	"strings"

	"github.com/authcorp/optics/internal/config"
)

// Select applies the generator options to f: explicit sums replace detected
// ones, and when opts.Types is set only the named types are kept. Detected
// sums without variants are dropped unless they were asked for by name.
func (f *File) Select(opts config.Options) (*File, error) {
	out := &File{
		Path:     f.Path,
		Package:  f.Package,
		Imports:  f.Imports,
		Structs:  slices.Clone(f.Structs),
		Sums:     slices.Clone(f.Sums),
		declared: f.declared,
	}

	for _, explicit := range opts.Sums {
		sum, err := f.resolve(explicit)
		if err != nil {
			return nil, err
		}
		i := slices.IndexFunc(out.Sums, func(s Sum) bool { return s.Interface == sum.Interface })
		if i >= 0 {
			out.Sums[i] = sum
		} else {
			out.Sums = append(out.Sums, sum)
		}
	}

	if len(opts.Types) > 0 {
		for _, name := range opts.Types {
			if !slices.ContainsFunc(out.Structs, func(s Struct) bool { return s.Name == name }) &&
				!slices.ContainsFunc(out.Sums, func(s Sum) bool { return s.Interface == name }) {
				return nil, fmt.Errorf("%w: %s", ErrUnknownType, name)
			}
		}
		out.Structs = slices.DeleteFunc(out.Structs, func(s Struct) bool { return !opts.Wants(s.Name) })
		out.Sums = slices.DeleteFunc(out.Sums, func(s Sum) bool { return !opts.Wants(s.Interface) })
		for _, sum := range out.Sums {
			if len(sum.Variants) == 0 {
				return nil, fmt.Errorf("%w: %s", ErrEmptyVariants, sum.Interface)
			}
		}
	}

	out.Sums = slices.DeleteFunc(out.Sums, func(s Sum) bool { return len(s.Variants) == 0 })
	if len(out.Structs) == 0 && len(out.Sums) == 0 {
		return nil, fmt.Errorf("%s: %w", f.Path, ErrNoTypes)
	}
	return out, nil
}

func (f *File) resolve(explicit config.Sum) (Sum, error) {
	if !f.declared[explicit.Interface] {
		return Sum{}, fmt.Errorf("%w: sum %s", ErrUnknownType, explicit.Interface)
	}
	if len(explicit.Variants) == 0 {
		return Sum{}, fmt.Errorf("%w: %s", ErrEmptyVariants, explicit.Interface)
	}
	sum := Sum{Interface: explicit.Interface}
	for _, v := range explicit.Variants {
		name := strings.TrimPrefix(v, "*")
		if !f.declared[name] {
			return Sum{}, fmt.Errorf("%w: variant %s of %s", ErrUnknownType, v, explicit.Interface)
		}
		sum.Variants = append(sum.Variants, Variant{Name: name, Type: v})
	}
	return sum, nil
}
