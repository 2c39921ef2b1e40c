package optics

import "github.com/authcorp/optics/functional"

// LensImpl is the wrapper for Lens optics.
type LensImpl[S, A any] struct {
	lens Lens[S, A]
}

// WrapLens wraps a Lens implementation. A LensImpl is returned as is.
func WrapLens[S, A any](l Lens[S, A]) LensImpl[S, A] {
	if w, ok := l.(LensImpl[S, A]); ok {
		return w
	}
	return LensImpl[S, A]{lens: l}
}

// Get retrieves the focused value.
func (l LensImpl[S, A]) Get(source S) A {
	return l.lens.Get(source)
}

// TryGet retrieves the focused value as a Result that is always Ok.
func (l LensImpl[S, A]) TryGet(source S) functional.Result[A, Infallible] {
	return functional.Ok[A, Infallible](l.lens.Get(source))
}

// Set replaces the focused value inside source.
func (l LensImpl[S, A]) Set(source *S, value A) {
	l.lens.Set(source, value)
}

// AsGetter drops the write side of l.
func (l LensImpl[S, A]) AsGetter() GetterImpl[S, A] {
	return WrapGetter[S, A](l)
}

// AsSetter drops the read side of l.
func (l LensImpl[S, A]) AsSetter() SetterImpl[S, A] {
	return WrapSetter[S, A](l)
}

// AsPrism widens l to a Prism that never fails.
func (l LensImpl[S, A]) AsPrism() PrismImpl[S, A, Infallible] {
	return WrapPrism[S, A, Infallible](l)
}

type mappedLens[S, A any] struct {
	get func(S) A
	set func(*S, A)
}

func (m mappedLens[S, A]) Get(source S) A {
	return m.get(source)
}

func (m mappedLens[S, A]) Set(source *S, value A) {
	m.set(source, value)
}

// MappedLens creates a Lens from a read and a write function.
func MappedLens[S, A any](get func(S) A, set func(*S, A)) LensImpl[S, A] {
	return WrapLens[S, A](mappedLens[S, A]{get: get, set: set})
}

// IdentityLens creates a Lens that focuses on the whole source.
func IdentityLens[S any]() LensImpl[S, S] {
	return MappedLens(identity[S], func(s *S, v S) { *s = v })
}

type composedLens[S, I, A any] struct {
	first  Lens[S, I]
	second Lens[I, A]
}

func (c composedLens[S, I, A]) Get(source S) A {
	return c.second.Get(c.first.Get(source))
}

func (c composedLens[S, I, A]) Set(source *S, value A) {
	i := c.first.Get(*source)
	c.second.Set(&i, value)
	c.first.Set(source, i)
}

// ComposedLens creates a Lens that focuses through first and then second.
func ComposedLens[S, I, A any](first Lens[S, I], second Lens[I, A]) LensImpl[S, A] {
	return WrapLens[S, A](composedLens[S, I, A]{first: first, second: second})
}

// ComposeLensWithGetter composes the read side of a Lens with a Getter.
func ComposeLensWithGetter[S, I, A any](l LensImpl[S, I], other GetterImpl[I, A]) GetterImpl[S, A] {
	return ComposedGetter[S, I, A](l, other)
}

// ComposeLensWithPartialGetter composes the read side of a Lens with a
// PartialGetter.
func ComposeLensWithPartialGetter[S, I, A, E any](l LensImpl[S, I], other PartialGetterImpl[I, A, E]) PartialGetterImpl[S, A, E] {
	return ComposedPartialGetter[S, I, A, Infallible, E, E](l, other, FromInfallible[E], identity[E])
}

// ComposeLensWithSetter composes a Lens with a Setter.
func ComposeLensWithSetter[S, I, A any](l LensImpl[S, I], other SetterImpl[I, A]) SetterImpl[S, A] {
	return ComposedSetter[S, I, A, Infallible](l, other)
}

// ComposeLensWithLens composes two Lenses into a Lens.
func ComposeLensWithLens[S, I, A any](l LensImpl[S, I], other LensImpl[I, A]) LensImpl[S, A] {
	return ComposedLens[S, I, A](l, other)
}

// ComposeLensWithPrism composes a Lens with a Prism. The result fails exactly
// when other fails.
func ComposeLensWithPrism[S, I, A, E any](l LensImpl[S, I], other PrismImpl[I, A, E]) PrismImpl[S, A, E] {
	return ComposedPrism[S, I, A, Infallible, E, E](l, other, FromInfallible[E], identity[E])
}

// ComposeLensWithIso composes a Lens with an Iso into a Lens.
func ComposeLensWithIso[S, I, A any](l LensImpl[S, I], other IsoImpl[I, A]) LensImpl[S, A] {
	return ComposedLens[S, I, A](l, other)
}

// ComposeLensWithFallibleIso composes a Lens with a FallibleIso. The result is
// a Prism failing with the getter failure of other.
func ComposeLensWithFallibleIso[S, I, A, GE, RE any](l LensImpl[S, I], other FallibleIsoImpl[I, A, GE, RE]) PrismImpl[S, A, GE] {
	return ComposedPrism[S, I, A, Infallible, GE, GE](l, other, FromInfallible[GE], identity[GE])
}
