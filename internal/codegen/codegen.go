// Package codegen renders lens and prism constructors for scanned types.
package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"path"
	"strings"
	"text/template"

	"go.uber.org/zap"
	"golang.org/x/tools/imports"

	"github.com/authcorp/optics/internal/config"
	"github.com/authcorp/optics/internal/scan"
)

const header = "// Code generated by opticgen. DO NOT EDIT."

// ErrDuplicateName is returned when two generated constructors would get the
// same name, such as A.BC and AB.C both yielding ABCLens.
var ErrDuplicateName = errors.New("duplicate generated name")

var fileTemplate = template.Must(template.New("file").Parse(header + `

package {{.Package}}

import (
	{{.OpticsAlias}} "{{.OpticsImport}}"
{{- range .Imports}}
	{{if .Name}}{{.Name}} {{end}}"{{.Path}}"
{{- end}}
)
{{range .Lenses}}
// {{.Func}} focuses on the {{.Field}} field of {{.Type}}.
func {{.Func}}() {{$.OpticsAlias}}.LensImpl[{{.Type}}, {{.FieldType}}] {
	return {{$.OpticsAlias}}.MappedLens(
		func(s {{.Type}}) {{.FieldType}} { return s.{{.Field}} },
		func(s *{{.Type}}, v {{.FieldType}}) { s.{{.Field}} = v },
	)
}
{{end}}
{{- range .Prisms}}
// {{.Func}} focuses on the {{.Variant}} variant of {{.Sum}}.
func {{.Func}}() {{$.OpticsAlias}}.PrismImpl[{{.Sum}}, {{.VariantType}}, {{$.OpticsAlias}}.NoFocus] {
	return {{$.OpticsAlias}}.MappedNoFocusPrism(
		func(s {{.Sum}}) ({{.VariantType}}, bool) {
			v, ok := s.({{.VariantType}})
			return v, ok
		},
		func(s *{{.Sum}}, v {{.VariantType}}) { *s = v },
	)
}
{{end}}`))

type lens struct {
	Func      string
	Type      string
	Field     string
	FieldType string
}

type prism struct {
	Func        string
	Sum         string
	Variant     string
	VariantType string
}

type fileData struct {
	Package      string
	OpticsAlias  string
	OpticsImport string
	Imports      []scan.Import
	Lenses       []lens
	Prisms       []prism
}

// Generator turns scan results into Go source.
type Generator struct {
	opts   config.Options
	logger *zap.Logger
}

// New creates a Generator. A nil logger discards all output.
func New(opts config.Options, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{opts: opts, logger: logger}
}

// OutputPath returns the file generated code for input is written to.
func (g *Generator) OutputPath(input string) string {
	return strings.TrimSuffix(input, ".go") + g.opts.OutputSuffix
}

// Generate renders the optics for f. filename is used by the import fixer to
// resolve the package directory; it does not need to exist.
func (g *Generator) Generate(f *scan.File, filename string) ([]byte, error) {
	data := fileData{
		Package:      f.Package,
		OpticsAlias:  "optics",
		OpticsImport: g.opts.PackageImport,
	}
	for _, imp := range f.Imports {
		if imp.Path == g.opts.PackageImport {
			continue
		}
		if imp.Name == "optics" || imp.Name == "" && path.Base(imp.Path) == "optics" {
			data.OpticsAlias = "opticsgen"
		}
		data.Imports = append(data.Imports, imp)
	}

	for _, s := range f.Structs {
		for _, field := range s.Fields {
			data.Lenses = append(data.Lenses, lens{
				Func:      s.Name + exportedName(field.Name) + "Lens",
				Type:      s.Name,
				Field:     field.Name,
				FieldType: field.Type,
			})
		}
	}
	for _, sum := range f.Sums {
		for _, v := range sum.Variants {
			data.Prisms = append(data.Prisms, prism{
				Func:        sum.Interface + exportedName(v.Name) + "Prism",
				Sum:         sum.Interface,
				Variant:     v.Name,
				VariantType: v.Type,
			})
		}
	}

	if err := checkNames(data); err != nil {
		return nil, fmt.Errorf("generate %s: %w", filename, err)
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", filename, err)
	}

	out, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", filename, err)
	}

	g.logger.Debug("generated optics",
		zap.String("file", filename),
		zap.Int("lenses", len(data.Lenses)),
		zap.Int("prisms", len(data.Prisms)),
	)
	return out, nil
}

// checkNames reports the first constructor name produced twice.
func checkNames(data fileData) error {
	seen := make(map[string]string, len(data.Lenses)+len(data.Prisms))
	claim := func(name, owner string) error {
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("%w: %s for both %s and %s", ErrDuplicateName, name, prev, owner)
		}
		seen[name] = owner
		return nil
	}
	for _, l := range data.Lenses {
		if err := claim(l.Func, l.Type+"."+l.Field); err != nil {
			return err
		}
	}
	for _, p := range data.Prisms {
		if err := claim(p.Func, p.Sum+"/"+p.Variant); err != nil {
			return err
		}
	}
	return nil
}

func exportedName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
