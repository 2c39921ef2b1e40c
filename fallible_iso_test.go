package optics_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/authcorp/optics"
	"github.com/authcorp/optics/functional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallibleIso(t *testing.T) {
	val := uint32(3)

	u16Times2 := optics.ComposeFallibleIsoWithFallibleIso(toU16(), times2())

	assert.Equal(t, functional.Ok[uint16, string](6), u16Times2.TryGet(val))
	u16Times2.Set(&val, 4)
	assert.Equal(t, uint32(2), val)

	assert.Equal(t, functional.Err[uint32]("Not Even"), u16Times2.TryReverseGet(3))

	val = 40000
	assert.Equal(t, functional.Err[uint16]("Overflow"), u16Times2.TryGet(val))
}

func TestFallibleIsoSetSkipsFailedReverse(t *testing.T) {
	val := uint16(10)
	times2().Set(&val, 7)
	assert.Equal(t, uint16(10), val)

	times2().Set(&val, 8)
	assert.Equal(t, uint16(4), val)
}

func TestComposeLensWithFallibleIso(t *testing.T) {
	config := defaultConfig()

	secondsPrism := optics.ComposeLensWithFallibleIso(delayLens(), delaySeconds())

	assert.Equal(t, functional.Ok[uint16, string](14*60), secondsPrism.TryGet(config))

	secondsPrism.Set(&config, 1800)
	assert.Equal(t, Timespan(Minutes(30)), config.Delay)

	secondsPrism.Set(&config, 7200)
	assert.Equal(t, Timespan(Hours(2)), config.Delay)

	config.Delay = Hours(100)
	assert.Equal(t, functional.Err[uint16]("Out of bounds"), secondsPrism.TryGet(config))
}

func TestFallibleIsoFunc(t *testing.T) {
	errNegative := errors.New("negative")
	fi := optics.MappedFallibleIsoFunc(
		strconv.Atoi,
		func(n int) (string, error) {
			if n < 0 {
				return "", errNegative
			}
			return strconv.Itoa(n), nil
		},
	)

	assert.Equal(t, functional.Ok[int, error](17), fi.TryGet("17"))
	assert.True(t, fi.TryGet("x").IsErr())

	_, err, ok := fi.TryReverseGet(-1).Unpack()
	require.False(t, ok)
	assert.ErrorIs(t, err, errNegative)

	s := "5"
	fi.Set(&s, -3)
	assert.Equal(t, "5", s)
	fi.Set(&s, 3)
	assert.Equal(t, "3", s)
}

func TestFallibleIsoMapErr(t *testing.T) {
	type failure struct{ stage, reason string }

	composed := optics.ComposeFallibleIsoWithFallibleIsoMapErr(
		toU16(), times2(),
		func(e string) failure { return failure{"narrow", e} },
		func(e string) failure { return failure{"double", e} },
		func(e string) failure { return failure{"widen", e} },
		func(e string) failure { return failure{"halve", e} },
	)

	assert.Equal(t, functional.Err[uint16](failure{"narrow", "Too big"}), composed.TryGet(70000))
	assert.Equal(t, functional.Err[uint16](failure{"double", "Overflow"}), composed.TryGet(40000))
	assert.Equal(t, functional.Err[uint32](failure{"halve", "Not Even"}), composed.TryReverseGet(5))
	assert.Equal(t, functional.Ok[uint32, failure](5), composed.TryReverseGet(10))
}

func TestFallibleIsoCompositionMatrix(t *testing.T) {
	t.Run("with Getter", func(t *testing.T) {
		pg := optics.ComposeFallibleIsoWithGetter(toU16(), optics.MappedGetter(func(v uint16) int { return int(v) + 1 }))
		assert.Equal(t, functional.Ok[int, string](8), pg.TryGet(7))
		assert.Equal(t, functional.Err[int]("Too big"), pg.TryGet(1<<20))
	})

	t.Run("with PartialGetter", func(t *testing.T) {
		pg := optics.ComposeFallibleIsoWithPartialGetter(toU16(), times2().AsPartialGetter())
		assert.Equal(t, functional.Ok[uint16, string](14), pg.TryGet(7))
	})

	t.Run("with Setter", func(t *testing.T) {
		s := optics.ComposeFallibleIsoWithSetter(toU16(), optics.IdentitySetter[uint16]())
		v := uint32(1)
		s.Set(&v, 9)
		assert.Equal(t, uint32(9), v)

		v = 1 << 20
		s.Set(&v, 9)
		assert.Equal(t, uint32(1<<20), v)
	})

	t.Run("with Lens", func(t *testing.T) {
		p := optics.ComposeFallibleIsoWithLens(optics.ParseInt(), optics.MappedLens(
			func(n int) bool { return n < 0 },
			func(n *int, neg bool) {
				if neg != (*n < 0) {
					*n = -*n
				}
			},
		))
		s := "12"
		p.Set(&s, true)
		assert.Equal(t, "-12", s)
	})

	t.Run("with Prism", func(t *testing.T) {
		p := optics.ComposeFallibleIsoWithPrism(toU16(), times2().AsPrism())
		v := uint32(3)
		p.Set(&v, 20)
		assert.Equal(t, uint32(10), v)
	})

	t.Run("with Iso", func(t *testing.T) {
		fi := optics.ComposeFallibleIsoWithIso(toU16(), optics.MappedIso(
			func(v uint16) int { return int(v) },
			func(n int) uint16 { return uint16(n) },
		))
		assert.Equal(t, functional.Ok[int, string](9), fi.TryGet(9))
		assert.Equal(t, functional.Ok[uint32, string](9), fi.TryReverseGet(9))
	})

	t.Run("identity is neutral", func(t *testing.T) {
		fi := optics.ComposeFallibleIsoWithFallibleIsoMapErr(
			optics.IdentityFallibleIso[uint32](), toU16(),
			optics.FromInfallible[string], func(e string) string { return e },
			optics.FromInfallible[string], func(e string) string { return e },
		)
		assert.Equal(t, toU16().TryGet(12), fi.TryGet(12))
		assert.Equal(t, toU16().TryGet(1<<17), fi.TryGet(1<<17))
	})
}
