package optics

import "github.com/authcorp/optics/functional"

// PrismImpl is the wrapper for Prism optics.
type PrismImpl[S, A, E any] struct {
	prism Prism[S, A, E]
}

// WrapPrism wraps a Prism implementation. A PrismImpl is returned as is.
func WrapPrism[S, A, E any](p Prism[S, A, E]) PrismImpl[S, A, E] {
	if w, ok := p.(PrismImpl[S, A, E]); ok {
		return w
	}
	return PrismImpl[S, A, E]{prism: p}
}

// TryGet retrieves the focused value or the reason it is absent.
func (p PrismImpl[S, A, E]) TryGet(source S) functional.Result[A, E] {
	return p.prism.TryGet(source)
}

// Set writes the focused value into source.
func (p PrismImpl[S, A, E]) Set(source *S, value A) {
	p.prism.Set(source, value)
}

// AsPartialGetter drops the write side of p.
func (p PrismImpl[S, A, E]) AsPartialGetter() PartialGetterImpl[S, A, E] {
	return WrapPartialGetter[S, A, E](p)
}

// AsSetter drops the read side of p.
func (p PrismImpl[S, A, E]) AsSetter() SetterImpl[S, A] {
	return WrapSetter[S, A](p)
}

type mappedPrism[S, A, E any] struct {
	get func(S) functional.Result[A, E]
	set func(*S, A)
}

func (m mappedPrism[S, A, E]) TryGet(source S) functional.Result[A, E] {
	return m.get(source)
}

func (m mappedPrism[S, A, E]) Set(source *S, value A) {
	m.set(source, value)
}

// MappedPrism creates a Prism from a fallible read function and a write
// function.
func MappedPrism[S, A, E any](get func(S) functional.Result[A, E], set func(*S, A)) PrismImpl[S, A, E] {
	return WrapPrism[S, A, E](mappedPrism[S, A, E]{get: get, set: set})
}

// MappedNoFocusPrism creates a Prism from a comma-ok read function. A false
// result becomes NoFocus.
func MappedNoFocusPrism[S, A any](get func(S) (A, bool), set func(*S, A)) PrismImpl[S, A, NoFocus] {
	return MappedPrism(func(s S) functional.Result[A, NoFocus] {
		if a, ok := get(s); ok {
			return functional.Ok[A, NoFocus](a)
		}
		return functional.Err[A](NoFocus{})
	}, set)
}

// IdentityPrism creates a Prism that focuses on the whole source. It is a Lens
// in disguise and never fails.
func IdentityPrism[S any]() PrismImpl[S, S, Infallible] {
	return MappedPrism(func(s S) functional.Result[S, Infallible] {
		return functional.Ok[S, Infallible](s)
	}, func(s *S, v S) { *s = v })
}

type composedPrism[S, I, A, E1, E2, E any] struct {
	first     Prism[S, I, E1]
	second    Prism[I, A, E2]
	mapFirst  func(E1) E
	mapSecond func(E2) E
}

func (c composedPrism[S, I, A, E1, E2, E]) TryGet(source S) functional.Result[A, E] {
	return readThrough[S, I, A, E1, E2, E](c.first, c.second, c.mapFirst, c.mapSecond, source)
}

func (c composedPrism[S, I, A, E1, E2, E]) Set(source *S, value A) {
	writeThrough[S, I, A, E1](c.first, c.second, source, value)
}

// ComposedPrism creates a Prism that focuses through first and then second,
// converting failures with mapFirst and mapSecond. Set writes nothing when
// first cannot read the intermediate value.
func ComposedPrism[S, I, A, E1, E2, E any](
	first Prism[S, I, E1],
	second Prism[I, A, E2],
	mapFirst func(E1) E,
	mapSecond func(E2) E,
) PrismImpl[S, A, E] {
	return WrapPrism[S, A, E](composedPrism[S, I, A, E1, E2, E]{
		first:     first,
		second:    second,
		mapFirst:  mapFirst,
		mapSecond: mapSecond,
	})
}

// ComposePrismWithGetter composes the read side of a Prism with a Getter.
func ComposePrismWithGetter[S, I, A, E any](p PrismImpl[S, I, E], other GetterImpl[I, A]) PartialGetterImpl[S, A, E] {
	return ComposedPartialGetter[S, I, A, E, Infallible, E](p, other, identity[E], FromInfallible[E])
}

// ComposePrismWithPartialGetter composes the read side of a Prism with a
// PartialGetter sharing its failure type.
func ComposePrismWithPartialGetter[S, I, A, E any](p PrismImpl[S, I, E], other PartialGetterImpl[I, A, E]) PartialGetterImpl[S, A, E] {
	return ComposedPartialGetter[S, I, A, E, E, E](p, other, identity[E], identity[E])
}

// ComposePrismWithPartialGetterMapErr is ComposePrismWithPartialGetter with
// explicit failure mappers.
func ComposePrismWithPartialGetterMapErr[S, I, A, E1, E2, E any](
	p PrismImpl[S, I, E1],
	other PartialGetterImpl[I, A, E2],
	mapFirst func(E1) E,
	mapSecond func(E2) E,
) PartialGetterImpl[S, A, E] {
	return ComposedPartialGetter[S, I, A, E1, E2, E](p, other, mapFirst, mapSecond)
}

// ComposePrismWithSetter composes a Prism with a Setter. Writes are dropped
// when p does not match.
func ComposePrismWithSetter[S, I, A, E any](p PrismImpl[S, I, E], other SetterImpl[I, A]) SetterImpl[S, A] {
	return ComposedSetter[S, I, A, E](p, other)
}

// ComposePrismWithLens composes a Prism with a Lens into a Prism.
func ComposePrismWithLens[S, I, A, E any](p PrismImpl[S, I, E], other LensImpl[I, A]) PrismImpl[S, A, E] {
	return ComposedPrism[S, I, A, E, Infallible, E](p, other, identity[E], FromInfallible[E])
}

// ComposePrismWithPrism composes two Prisms sharing a failure type.
func ComposePrismWithPrism[S, I, A, E any](p PrismImpl[S, I, E], other PrismImpl[I, A, E]) PrismImpl[S, A, E] {
	return ComposedPrism[S, I, A, E, E, E](p, other, identity[E], identity[E])
}

// ComposePrismWithPrismMapErr composes two Prisms and maps both failure types
// into E.
func ComposePrismWithPrismMapErr[S, I, A, E1, E2, E any](
	p PrismImpl[S, I, E1],
	other PrismImpl[I, A, E2],
	mapFirst func(E1) E,
	mapSecond func(E2) E,
) PrismImpl[S, A, E] {
	return ComposedPrism[S, I, A, E1, E2, E](p, other, mapFirst, mapSecond)
}

// ComposePrismWithIso composes a Prism with an Iso into a Prism.
func ComposePrismWithIso[S, I, A, E any](p PrismImpl[S, I, E], other IsoImpl[I, A]) PrismImpl[S, A, E] {
	return ComposedPrism[S, I, A, E, Infallible, E](p, other, identity[E], FromInfallible[E])
}

// ComposePrismWithFallibleIso composes a Prism with a FallibleIso whose getter
// failure type matches.
func ComposePrismWithFallibleIso[S, I, A, E, RE any](p PrismImpl[S, I, E], other FallibleIsoImpl[I, A, E, RE]) PrismImpl[S, A, E] {
	return ComposedPrism[S, I, A, E, E, E](p, other, identity[E], identity[E])
}

// ComposePrismWithFallibleIsoMapErr is ComposePrismWithFallibleIso with
// explicit failure mappers.
func ComposePrismWithFallibleIsoMapErr[S, I, A, E1, GE2, RE2, E any](
	p PrismImpl[S, I, E1],
	other FallibleIsoImpl[I, A, GE2, RE2],
	mapFirst func(E1) E,
	mapSecond func(GE2) E,
) PrismImpl[S, A, E] {
	return ComposedPrism[S, I, A, E1, GE2, E](p, other, mapFirst, mapSecond)
}
