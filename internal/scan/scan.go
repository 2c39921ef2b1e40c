// Package scan finds the struct types and sum types of a Go source file that
// opticgen generates optics for.
//
// A sum type is an interface whose only method is an unexported marker with no
// parameters and no results:
//
//	type Timespan interface{ timespan() }
//
// Its variants are the types in the same file that declare the marker method.
package scan

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"
)

var (
	// ErrNoTypes is returned when nothing in the file can get optics.
	ErrNoTypes = errors.New("no struct or sum types found")
	// ErrUnknownType is returned when a requested type is not declared in the
	// file.
	ErrUnknownType = errors.New("unknown type")
	// ErrEmptyVariants is returned when a requested sum type has no variants.
	ErrEmptyVariants = errors.New("sum type has no variants")
)

// Import is an import declaration of the scanned file.
type Import struct {
	Name string
	Path string
}

// Field is a struct field. Embedded fields are named after their type.
type Field struct {
	Name string
	Type string
}

// Struct is a non-generic struct type.
type Struct struct {
	Name   string
	Fields []Field
}

// Variant is one case of a sum type. Type is "*Name" for pointer receivers.
type Variant struct {
	Name string
	Type string
}

// Sum is a sealed interface and its variants.
type Sum struct {
	Interface string
	Variants  []Variant
}

// File is the result of scanning one source file.
type File struct {
	Path    string
	Package string
	Imports []Import
	Structs []Struct
	Sums    []Sum
	// declared holds every type name in the file, exported or not.
	declared map[string]bool
}

// Scanner parses Go files.
type Scanner struct {
	logger            *zap.Logger
	includeUnexported bool
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithUnexported makes the scanner report unexported types and fields.
func WithUnexported(include bool) Option {
	return func(s *Scanner) {
		s.includeUnexported = include
	}
}

// New creates a Scanner. A nil logger discards all output.
func New(logger *zap.Logger, opts ...Option) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Scanner{logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScanFile parses the file at path. When src is not nil it is used instead of
// reading the file, as in go/parser.ParseFile.
func (s *Scanner) ScanFile(path string, src any) (*File, error) {
	fset := token.NewFileSet()
	node, err := parser.ParseFile(fset, path, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	f := &File{
		Path:     path,
		Package:  node.Name.Name,
		declared: make(map[string]bool),
	}

	for _, spec := range node.Imports {
		imp, ok := s.importOf(spec)
		if ok {
			f.Imports = append(f.Imports, imp)
		}
	}

	markers := make(map[string][]string) // marker method -> interfaces
	for _, decl := range node.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts := spec.(*ast.TypeSpec)
			f.declared[ts.Name.Name] = true
			if !s.wantName(ts.Name.Name) {
				s.logger.Debug("skipping unexported type", zap.String("type", ts.Name.Name))
				continue
			}
			switch t := ts.Type.(type) {
			case *ast.StructType:
				if ts.TypeParams != nil && len(ts.TypeParams.List) > 0 {
					s.logger.Debug("skipping generic struct", zap.String("type", ts.Name.Name))
					continue
				}
				f.Structs = append(f.Structs, Struct{
					Name:   ts.Name.Name,
					Fields: s.fieldsOf(fset, t),
				})
			case *ast.InterfaceType:
				if marker, ok := markerOf(t); ok {
					markers[marker] = append(markers[marker], ts.Name.Name)
					f.Sums = append(f.Sums, Sum{Interface: ts.Name.Name})
				}
			}
		}
	}

	variants := make(map[string][]Variant) // interface -> variants
	for _, decl := range node.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv == nil || len(fn.Recv.List) != 1 || !isMarkerSignature(fn.Type) {
			continue
		}
		variant, ok := receiverOf(fn.Recv.List[0].Type)
		if !ok {
			continue
		}
		for _, iface := range markers[fn.Name.Name] {
			variants[iface] = append(variants[iface], variant)
		}
	}
	for i := range f.Sums {
		f.Sums[i].Variants = variants[f.Sums[i].Interface]
	}

	s.logger.Debug("scanned file",
		zap.String("path", path),
		zap.String("package", f.Package),
		zap.Int("structs", len(f.Structs)),
		zap.Int("sums", len(f.Sums)),
	)
	return f, nil
}

func (s *Scanner) wantName(name string) bool {
	return name != "_" && (s.includeUnexported || ast.IsExported(name))
}

func (s *Scanner) importOf(spec *ast.ImportSpec) (Import, bool) {
	path, err := strconv.Unquote(spec.Path.Value)
	if err != nil {
		return Import{}, false
	}
	imp := Import{Path: path}
	if spec.Name != nil {
		imp.Name = spec.Name.Name
	}
	if imp.Name == "_" || imp.Name == "." {
		s.logger.Debug("skipping import", zap.String("path", path), zap.String("name", imp.Name))
		return Import{}, false
	}
	return imp, true
}

func (s *Scanner) fieldsOf(fset *token.FileSet, st *ast.StructType) []Field {
	var fields []Field
	for _, field := range st.Fields.List {
		typ := exprString(fset, field.Type)
		if len(field.Names) == 0 {
			name, ok := embeddedName(field.Type)
			if ok && s.wantName(name) {
				fields = append(fields, Field{Name: name, Type: typ})
			}
			continue
		}
		for _, name := range field.Names {
			if s.wantName(name.Name) {
				fields = append(fields, Field{Name: name.Name, Type: typ})
			}
		}
	}
	return fields
}

func exprString(fset *token.FileSet, expr ast.Expr) string {
	var buf bytes.Buffer
	_ = printer.Fprint(&buf, fset, expr)
	return buf.String()
}

func embeddedName(expr ast.Expr) (string, bool) {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name, true
	case *ast.StarExpr:
		return embeddedName(t.X)
	case *ast.SelectorExpr:
		return t.Sel.Name, true
	case *ast.IndexExpr:
		return embeddedName(t.X)
	case *ast.IndexListExpr:
		return embeddedName(t.X)
	}
	return "", false
}

func markerOf(iface *ast.InterfaceType) (string, bool) {
	if iface.Methods == nil || len(iface.Methods.List) != 1 {
		return "", false
	}
	method := iface.Methods.List[0]
	if len(method.Names) != 1 || ast.IsExported(method.Names[0].Name) {
		return "", false
	}
	fn, ok := method.Type.(*ast.FuncType)
	if !ok || !isMarkerSignature(fn) {
		return "", false
	}
	return method.Names[0].Name, true
}

func isMarkerSignature(fn *ast.FuncType) bool {
	return (fn.Params == nil || len(fn.Params.List) == 0) &&
		(fn.Results == nil || len(fn.Results.List) == 0)
}

func receiverOf(expr ast.Expr) (Variant, bool) {
	switch t := expr.(type) {
	case *ast.Ident:
		return Variant{Name: t.Name, Type: t.Name}, true
	case *ast.StarExpr:
		if id, ok := t.X.(*ast.Ident); ok {
			return Variant{Name: id.Name, Type: "*" + id.Name}, true
		}
	}
	return Variant{}, false
}
