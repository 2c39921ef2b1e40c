package optics

import "github.com/authcorp/optics/functional"

// FallibleIsoImpl is the wrapper for FallibleIso optics.
type FallibleIsoImpl[S, A, GE, RE any] struct {
	iso FallibleIso[S, A, GE, RE]
}

// WrapFallibleIso wraps a FallibleIso implementation. A FallibleIsoImpl is
// returned as is.
func WrapFallibleIso[S, A, GE, RE any](fi FallibleIso[S, A, GE, RE]) FallibleIsoImpl[S, A, GE, RE] {
	if w, ok := fi.(FallibleIsoImpl[S, A, GE, RE]); ok {
		return w
	}
	return FallibleIsoImpl[S, A, GE, RE]{iso: fi}
}

// TryGet converts source into its other representation.
func (fi FallibleIsoImpl[S, A, GE, RE]) TryGet(source S) functional.Result[A, GE] {
	return fi.iso.TryGet(source)
}

// Set replaces source with the value rebuilt from value. Nothing is written
// when the reverse conversion fails.
func (fi FallibleIsoImpl[S, A, GE, RE]) Set(source *S, value A) {
	fi.iso.Set(source, value)
}

// TryReverseGet converts value back into a source.
func (fi FallibleIsoImpl[S, A, GE, RE]) TryReverseGet(value A) functional.Result[S, RE] {
	return fi.iso.TryReverseGet(value)
}

// AsPartialGetter keeps only the forward direction of fi.
func (fi FallibleIsoImpl[S, A, GE, RE]) AsPartialGetter() PartialGetterImpl[S, A, GE] {
	return WrapPartialGetter[S, A, GE](fi)
}

// AsPrism drops the reverse direction of fi.
func (fi FallibleIsoImpl[S, A, GE, RE]) AsPrism() PrismImpl[S, A, GE] {
	return WrapPrism[S, A, GE](fi)
}

type mappedFallibleIso[S, A, GE, RE any] struct {
	get     func(S) functional.Result[A, GE]
	reverse func(A) functional.Result[S, RE]
}

func (m mappedFallibleIso[S, A, GE, RE]) TryGet(source S) functional.Result[A, GE] {
	return m.get(source)
}

func (m mappedFallibleIso[S, A, GE, RE]) TryReverseGet(value A) functional.Result[S, RE] {
	return m.reverse(value)
}

func (m mappedFallibleIso[S, A, GE, RE]) Set(source *S, value A) {
	if s, _, ok := m.reverse(value).Unpack(); ok {
		*source = s
	}
}

// MappedFallibleIso creates a FallibleIso from two fallible conversion
// functions.
func MappedFallibleIso[S, A, GE, RE any](
	get func(S) functional.Result[A, GE],
	reverse func(A) functional.Result[S, RE],
) FallibleIsoImpl[S, A, GE, RE] {
	return WrapFallibleIso[S, A, GE, RE](mappedFallibleIso[S, A, GE, RE]{get: get, reverse: reverse})
}

// MappedFallibleIsoFunc creates a FallibleIso from two conversion functions
// following the Go (value, error) convention.
func MappedFallibleIsoFunc[S, A any](get func(S) (A, error), reverse func(A) (S, error)) FallibleIsoImpl[S, A, error, error] {
	return MappedFallibleIso(
		func(s S) functional.Result[A, error] { return functional.Try(get(s)) },
		func(a A) functional.Result[S, error] { return functional.Try(reverse(a)) },
	)
}

// IdentityFallibleIso creates a FallibleIso between S and itself that never
// fails.
func IdentityFallibleIso[S any]() FallibleIsoImpl[S, S, Infallible, Infallible] {
	ok := func(s S) functional.Result[S, Infallible] { return functional.Ok[S, Infallible](s) }
	return MappedFallibleIso(ok, ok)
}

type composedFallibleIso[S, I, A, GE1, RE1, GE2, RE2, GE, RE any] struct {
	first            FallibleIso[S, I, GE1, RE1]
	second           FallibleIso[I, A, GE2, RE2]
	mapFirstGet      func(GE1) GE
	mapSecondGet     func(GE2) GE
	mapFirstReverse  func(RE1) RE
	mapSecondReverse func(RE2) RE
}

func (c composedFallibleIso[S, I, A, GE1, RE1, GE2, RE2, GE, RE]) TryGet(source S) functional.Result[A, GE] {
	return readThrough[S, I, A, GE1, GE2, GE](c.first, c.second, c.mapFirstGet, c.mapSecondGet, source)
}

func (c composedFallibleIso[S, I, A, GE1, RE1, GE2, RE2, GE, RE]) Set(source *S, value A) {
	writeThrough[S, I, A, GE1](c.first, c.second, source, value)
}

func (c composedFallibleIso[S, I, A, GE1, RE1, GE2, RE2, GE, RE]) TryReverseGet(value A) functional.Result[S, RE] {
	i, err2, ok := c.second.TryReverseGet(value).Unpack()
	if !ok {
		return functional.Err[S](c.mapSecondReverse(err2))
	}
	s, err1, ok := c.first.TryReverseGet(i).Unpack()
	if !ok {
		return functional.Err[S](c.mapFirstReverse(err1))
	}
	return functional.Ok[S, RE](s)
}

// ComposedFallibleIso creates a FallibleIso converting through first and then
// second. The forward direction converts failures with mapFirstGet and
// mapSecondGet; the reverse direction runs second before first and converts
// failures with mapSecondReverse and mapFirstReverse.
func ComposedFallibleIso[S, I, A, GE1, RE1, GE2, RE2, GE, RE any](
	first FallibleIso[S, I, GE1, RE1],
	second FallibleIso[I, A, GE2, RE2],
	mapFirstGet func(GE1) GE,
	mapSecondGet func(GE2) GE,
	mapFirstReverse func(RE1) RE,
	mapSecondReverse func(RE2) RE,
) FallibleIsoImpl[S, A, GE, RE] {
	return WrapFallibleIso[S, A, GE, RE](composedFallibleIso[S, I, A, GE1, RE1, GE2, RE2, GE, RE]{
		first:            first,
		second:           second,
		mapFirstGet:      mapFirstGet,
		mapSecondGet:     mapSecondGet,
		mapFirstReverse:  mapFirstReverse,
		mapSecondReverse: mapSecondReverse,
	})
}

// ComposeFallibleIsoWithGetter composes the forward side of a FallibleIso with
// a Getter.
func ComposeFallibleIsoWithGetter[S, I, A, GE, RE any](fi FallibleIsoImpl[S, I, GE, RE], other GetterImpl[I, A]) PartialGetterImpl[S, A, GE] {
	return ComposedPartialGetter[S, I, A, GE, Infallible, GE](fi, other, identity[GE], FromInfallible[GE])
}

// ComposeFallibleIsoWithPartialGetter composes the forward side of a
// FallibleIso with a PartialGetter sharing its failure type.
func ComposeFallibleIsoWithPartialGetter[S, I, A, GE, RE any](fi FallibleIsoImpl[S, I, GE, RE], other PartialGetterImpl[I, A, GE]) PartialGetterImpl[S, A, GE] {
	return ComposedPartialGetter[S, I, A, GE, GE, GE](fi, other, identity[GE], identity[GE])
}

// ComposeFallibleIsoWithPartialGetterMapErr is
// ComposeFallibleIsoWithPartialGetter with explicit failure mappers.
func ComposeFallibleIsoWithPartialGetterMapErr[S, I, A, GE1, RE1, E2, E any](
	fi FallibleIsoImpl[S, I, GE1, RE1],
	other PartialGetterImpl[I, A, E2],
	mapFirst func(GE1) E,
	mapSecond func(E2) E,
) PartialGetterImpl[S, A, E] {
	return ComposedPartialGetter[S, I, A, GE1, E2, E](fi, other, mapFirst, mapSecond)
}

// ComposeFallibleIsoWithSetter composes a FallibleIso with a Setter.
func ComposeFallibleIsoWithSetter[S, I, A, GE, RE any](fi FallibleIsoImpl[S, I, GE, RE], other SetterImpl[I, A]) SetterImpl[S, A] {
	return ComposedSetter[S, I, A, GE](fi, other)
}

// ComposeFallibleIsoWithLens composes a FallibleIso with a Lens into a Prism.
func ComposeFallibleIsoWithLens[S, I, A, GE, RE any](fi FallibleIsoImpl[S, I, GE, RE], other LensImpl[I, A]) PrismImpl[S, A, GE] {
	return ComposedPrism[S, I, A, GE, Infallible, GE](fi, other, identity[GE], FromInfallible[GE])
}

// ComposeFallibleIsoWithPrism composes a FallibleIso with a Prism sharing its
// getter failure type.
func ComposeFallibleIsoWithPrism[S, I, A, GE, RE any](fi FallibleIsoImpl[S, I, GE, RE], other PrismImpl[I, A, GE]) PrismImpl[S, A, GE] {
	return ComposedPrism[S, I, A, GE, GE, GE](fi, other, identity[GE], identity[GE])
}

// ComposeFallibleIsoWithPrismMapErr is ComposeFallibleIsoWithPrism with
// explicit failure mappers.
func ComposeFallibleIsoWithPrismMapErr[S, I, A, GE1, RE1, E2, E any](
	fi FallibleIsoImpl[S, I, GE1, RE1],
	other PrismImpl[I, A, E2],
	mapFirst func(GE1) E,
	mapSecond func(E2) E,
) PrismImpl[S, A, E] {
	return ComposedPrism[S, I, A, GE1, E2, E](fi, other, mapFirst, mapSecond)
}

// ComposeFallibleIsoWithIso composes a FallibleIso with an Iso into a
// FallibleIso with the failure types of fi.
func ComposeFallibleIsoWithIso[S, I, A, GE, RE any](fi FallibleIsoImpl[S, I, GE, RE], other IsoImpl[I, A]) FallibleIsoImpl[S, A, GE, RE] {
	return ComposedFallibleIso[S, I, A, GE, RE, Infallible, Infallible, GE, RE](
		fi, other,
		identity[GE], FromInfallible[GE],
		identity[RE], FromInfallible[RE],
	)
}

// ComposeFallibleIsoWithFallibleIso composes two FallibleIsos sharing both
// failure types.
func ComposeFallibleIsoWithFallibleIso[S, I, A, GE, RE any](fi FallibleIsoImpl[S, I, GE, RE], other FallibleIsoImpl[I, A, GE, RE]) FallibleIsoImpl[S, A, GE, RE] {
	return ComposedFallibleIso[S, I, A, GE, RE, GE, RE, GE, RE](
		fi, other,
		identity[GE], identity[GE],
		identity[RE], identity[RE],
	)
}

// ComposeFallibleIsoWithFallibleIsoMapErr composes two FallibleIsos and maps
// the getter failures into GE and the reverse failures into RE.
func ComposeFallibleIsoWithFallibleIsoMapErr[S, I, A, GE1, RE1, GE2, RE2, GE, RE any](
	fi FallibleIsoImpl[S, I, GE1, RE1],
	other FallibleIsoImpl[I, A, GE2, RE2],
	mapFirstGet func(GE1) GE,
	mapSecondGet func(GE2) GE,
	mapFirstReverse func(RE1) RE,
	mapSecondReverse func(RE2) RE,
) FallibleIsoImpl[S, A, GE, RE] {
	return ComposedFallibleIso[S, I, A, GE1, RE1, GE2, RE2, GE, RE](
		fi, other, mapFirstGet, mapSecondGet, mapFirstReverse, mapSecondReverse,
	)
}
