package codegen

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/authcorp/optics/internal/config"
	"github.com/authcorp/optics/internal/scan"
)

const source = `package shapes

import (
	"time"
	"strings"
)

type Shape interface{ shape() }

type Circle struct {
	Radius float64
}

type Rect struct {
	W, H float64
	Created time.Time
}

func (Circle) shape() {}
func (*Rect) shape()  {}

func upper(s string) string { return strings.ToUpper(s) }
`

func generate(t *testing.T, opts config.Options) string {
	t.Helper()
	logger := zaptest.NewLogger(t)

	f, err := scan.New(logger).ScanFile("shapes.go", source)
	require.NoError(t, err)
	f, err = f.Select(opts)
	require.NoError(t, err)

	out, err := New(opts, logger).Generate(f, filepath.Join(t.TempDir(), "shapes_optics.go"))
	require.NoError(t, err)
	return string(out)
}

func defaultOptions(t *testing.T) config.Options {
	t.Helper()
	opts, err := config.New().Options()
	require.NoError(t, err)
	return opts
}

func TestGenerateLensesAndPrisms(t *testing.T) {
	out := generate(t, defaultOptions(t))

	assert.Contains(t, out, "// Code generated by opticgen. DO NOT EDIT.")
	assert.Contains(t, out, "package shapes")
	assert.Contains(t, out, "func CircleRadiusLens() optics.LensImpl[Circle, float64]")
	assert.Contains(t, out, "func RectWLens() optics.LensImpl[Rect, float64]")
	assert.Contains(t, out, "func RectHLens() optics.LensImpl[Rect, float64]")
	assert.Contains(t, out, "func RectCreatedLens() optics.LensImpl[Rect, time.Time]")
	assert.Contains(t, out, "func ShapeCirclePrism() optics.PrismImpl[Shape, Circle, optics.NoFocus]")
	assert.Contains(t, out, "func ShapeRectPrism() optics.PrismImpl[Shape, *Rect, optics.NoFocus]")
	assert.Contains(t, out, "v, ok := s.(*Rect)")

	assert.Contains(t, out, `"time"`)
	assert.NotContains(t, out, `"strings"`)

	_, err := parser.ParseFile(token.NewFileSet(), "shapes_optics.go", out, parser.AllErrors)
	assert.NoError(t, err)
}

func TestGenerateIsDeterministic(t *testing.T) {
	opts := defaultOptions(t)
	assert.Equal(t, generate(t, opts), generate(t, opts))
}

func TestGenerateSelectedTypes(t *testing.T) {
	opts := defaultOptions(t)
	opts.Types = []string{"Circle"}

	out := generate(t, opts)
	assert.Contains(t, out, "CircleRadiusLens")
	assert.NotContains(t, out, "RectWLens")
	assert.NotContains(t, out, "ShapeCirclePrism")
	assert.NotContains(t, out, `"time"`)
}

func TestGenerateCustomPackage(t *testing.T) {
	opts := defaultOptions(t)
	opts.PackageImport = "example.com/lib/optics"

	out := generate(t, opts)
	assert.Contains(t, out, `"example.com/lib/optics"`)
}

func TestOutputPath(t *testing.T) {
	g := New(config.Options{OutputSuffix: "_optics.go"}, nil)
	assert.Equal(t, "dir/shapes_optics.go", g.OutputPath("dir/shapes.go"))
}

func TestGenerateRejectsDuplicateNames(t *testing.T) {
	const clash = `package clash

type A struct{ BC int }

type AB struct{ C string }
`
	logger := zaptest.NewLogger(t)
	opts := defaultOptions(t)

	f, err := scan.New(logger).ScanFile("clash.go", clash)
	require.NoError(t, err)
	f, err = f.Select(opts)
	require.NoError(t, err)

	_, err = New(opts, logger).Generate(f, filepath.Join(t.TempDir(), "clash_optics.go"))
	require.ErrorIs(t, err, ErrDuplicateName)
	assert.Contains(t, err.Error(), "ABCLens")
	assert.Contains(t, err.Error(), "A.BC")
	assert.Contains(t, err.Error(), "AB.C")
}
