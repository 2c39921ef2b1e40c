package optics

import "github.com/authcorp/optics/functional"

// PartialGetterFunc adapts a plain function to the PartialGetter interface.
type PartialGetterFunc[S, A, E any] func(source S) functional.Result[A, E]

// TryGet calls f(source).
func (f PartialGetterFunc[S, A, E]) TryGet(source S) functional.Result[A, E] {
	return f(source)
}

// PartialGetterImpl is the wrapper for read-only optics that may fail.
type PartialGetterImpl[S, A, E any] struct {
	getter PartialGetter[S, A, E]
}

// WrapPartialGetter wraps a PartialGetter implementation. A PartialGetterImpl is
// returned as is.
func WrapPartialGetter[S, A, E any](pg PartialGetter[S, A, E]) PartialGetterImpl[S, A, E] {
	if w, ok := pg.(PartialGetterImpl[S, A, E]); ok {
		return w
	}
	return PartialGetterImpl[S, A, E]{getter: pg}
}

// TryGet retrieves the focused value or the reason it is absent.
func (pg PartialGetterImpl[S, A, E]) TryGet(source S) functional.Result[A, E] {
	return pg.getter.TryGet(source)
}

// MappedPartialGetter creates a PartialGetter from a fallible read function.
func MappedPartialGetter[S, A, E any](get func(S) functional.Result[A, E]) PartialGetterImpl[S, A, E] {
	return WrapPartialGetter[S, A, E](PartialGetterFunc[S, A, E](get))
}

// IdentityPartialGetter creates a PartialGetter that focuses on the whole
// source and never fails.
func IdentityPartialGetter[S any]() PartialGetterImpl[S, S, Infallible] {
	return MappedPartialGetter(func(s S) functional.Result[S, Infallible] {
		return functional.Ok[S, Infallible](s)
	})
}

type composedPartialGetter[S, I, A, E1, E2, E any] struct {
	first     PartialGetter[S, I, E1]
	second    PartialGetter[I, A, E2]
	mapFirst  func(E1) E
	mapSecond func(E2) E
}

func (c composedPartialGetter[S, I, A, E1, E2, E]) TryGet(source S) functional.Result[A, E] {
	return readThrough[S, I, A, E1, E2, E](c.first, c.second, c.mapFirst, c.mapSecond, source)
}

// readThrough is the read half of every fallible composition. The second stage
// is only evaluated when the first one succeeds.
func readThrough[S, I, A, E1, E2, E any](
	first PartialGetter[S, I, E1],
	second PartialGetter[I, A, E2],
	mapFirst func(E1) E,
	mapSecond func(E2) E,
	source S,
) functional.Result[A, E] {
	i, err1, ok := first.TryGet(source).Unpack()
	if !ok {
		return functional.Err[A](mapFirst(err1))
	}
	a, err2, ok := second.TryGet(i).Unpack()
	if !ok {
		return functional.Err[A](mapSecond(err2))
	}
	return functional.Ok[A, E](a)
}

// ComposedPartialGetter creates a PartialGetter that applies first and then
// second. A failure of either stage is converted with the matching mapper; the
// second stage is not evaluated when the first one fails.
func ComposedPartialGetter[S, I, A, E1, E2, E any](
	first PartialGetter[S, I, E1],
	second PartialGetter[I, A, E2],
	mapFirst func(E1) E,
	mapSecond func(E2) E,
) PartialGetterImpl[S, A, E] {
	return WrapPartialGetter[S, A, E](composedPartialGetter[S, I, A, E1, E2, E]{
		first:     first,
		second:    second,
		mapFirst:  mapFirst,
		mapSecond: mapSecond,
	})
}

// ComposePartialGetterWithGetter composes a PartialGetter with a Getter.
func ComposePartialGetterWithGetter[S, I, A, E any](pg PartialGetterImpl[S, I, E], other GetterImpl[I, A]) PartialGetterImpl[S, A, E] {
	return ComposedPartialGetter[S, I, A, E, Infallible, E](pg, other, identity[E], FromInfallible[E])
}

// ComposePartialGetterWithPartialGetter composes two PartialGetters sharing a
// failure type.
func ComposePartialGetterWithPartialGetter[S, I, A, E any](pg PartialGetterImpl[S, I, E], other PartialGetterImpl[I, A, E]) PartialGetterImpl[S, A, E] {
	return ComposedPartialGetter[S, I, A, E, E, E](pg, other, identity[E], identity[E])
}

// ComposePartialGetterWithPartialGetterMapErr composes two PartialGetters and
// maps both failure types into E.
func ComposePartialGetterWithPartialGetterMapErr[S, I, A, E1, E2, E any](
	pg PartialGetterImpl[S, I, E1],
	other PartialGetterImpl[I, A, E2],
	mapFirst func(E1) E,
	mapSecond func(E2) E,
) PartialGetterImpl[S, A, E] {
	return ComposedPartialGetter[S, I, A, E1, E2, E](pg, other, mapFirst, mapSecond)
}

// ComposePartialGetterWithLens composes a PartialGetter with the read side of a
// Lens.
func ComposePartialGetterWithLens[S, I, A, E any](pg PartialGetterImpl[S, I, E], other LensImpl[I, A]) PartialGetterImpl[S, A, E] {
	return ComposedPartialGetter[S, I, A, E, Infallible, E](pg, other, identity[E], FromInfallible[E])
}

// ComposePartialGetterWithPrism composes a PartialGetter with the read side of
// a Prism sharing its failure type.
func ComposePartialGetterWithPrism[S, I, A, E any](pg PartialGetterImpl[S, I, E], other PrismImpl[I, A, E]) PartialGetterImpl[S, A, E] {
	return ComposedPartialGetter[S, I, A, E, E, E](pg, other, identity[E], identity[E])
}

// ComposePartialGetterWithPrismMapErr is ComposePartialGetterWithPrism with
// explicit failure mappers.
func ComposePartialGetterWithPrismMapErr[S, I, A, E1, E2, E any](
	pg PartialGetterImpl[S, I, E1],
	other PrismImpl[I, A, E2],
	mapFirst func(E1) E,
	mapSecond func(E2) E,
) PartialGetterImpl[S, A, E] {
	return ComposedPartialGetter[S, I, A, E1, E2, E](pg, other, mapFirst, mapSecond)
}

// ComposePartialGetterWithIso composes a PartialGetter with the forward side of
// an Iso.
func ComposePartialGetterWithIso[S, I, A, E any](pg PartialGetterImpl[S, I, E], other IsoImpl[I, A]) PartialGetterImpl[S, A, E] {
	return ComposedPartialGetter[S, I, A, E, Infallible, E](pg, other, identity[E], FromInfallible[E])
}

// ComposePartialGetterWithFallibleIso composes a PartialGetter with the forward
// side of a FallibleIso sharing its failure type.
func ComposePartialGetterWithFallibleIso[S, I, A, E, RE any](pg PartialGetterImpl[S, I, E], other FallibleIsoImpl[I, A, E, RE]) PartialGetterImpl[S, A, E] {
	return ComposedPartialGetter[S, I, A, E, E, E](pg, other, identity[E], identity[E])
}

// ComposePartialGetterWithFallibleIsoMapErr is
// ComposePartialGetterWithFallibleIso with explicit failure mappers.
func ComposePartialGetterWithFallibleIsoMapErr[S, I, A, E1, GE2, RE2, E any](
	pg PartialGetterImpl[S, I, E1],
	other FallibleIsoImpl[I, A, GE2, RE2],
	mapFirst func(E1) E,
	mapSecond func(GE2) E,
) PartialGetterImpl[S, A, E] {
	return ComposedPartialGetter[S, I, A, E1, GE2, E](pg, other, mapFirst, mapSecond)
}
