package optics

import "github.com/authcorp/optics/functional"

// GetterFunc adapts a plain function to the Getter interface.
type GetterFunc[S, A any] func(source S) A

// Get calls f(source).
func (f GetterFunc[S, A]) Get(source S) A {
	return f(source)
}

// GetterImpl is the wrapper for read-only total optics.
type GetterImpl[S, A any] struct {
	getter Getter[S, A]
}

// WrapGetter wraps a Getter implementation. A GetterImpl is returned as is.
func WrapGetter[S, A any](g Getter[S, A]) GetterImpl[S, A] {
	if w, ok := g.(GetterImpl[S, A]); ok {
		return w
	}
	return GetterImpl[S, A]{getter: g}
}

// Get retrieves the focused value.
func (g GetterImpl[S, A]) Get(source S) A {
	return g.getter.Get(source)
}

// TryGet retrieves the focused value as a Result that is always Ok.
func (g GetterImpl[S, A]) TryGet(source S) functional.Result[A, Infallible] {
	return functional.Ok[A, Infallible](g.getter.Get(source))
}

// AsPartialGetter widens g to a PartialGetter that never fails.
func (g GetterImpl[S, A]) AsPartialGetter() PartialGetterImpl[S, A, Infallible] {
	return WrapPartialGetter[S, A, Infallible](g)
}

// MappedGetter creates a Getter from a read function.
func MappedGetter[S, A any](get func(S) A) GetterImpl[S, A] {
	return WrapGetter[S, A](GetterFunc[S, A](get))
}

// IdentityGetter creates a Getter that focuses on the whole source.
func IdentityGetter[S any]() GetterImpl[S, S] {
	return MappedGetter(identity[S])
}

type composedGetter[S, I, A any] struct {
	first  Getter[S, I]
	second Getter[I, A]
}

func (c composedGetter[S, I, A]) Get(source S) A {
	return c.second.Get(c.first.Get(source))
}

// ComposedGetter creates a Getter that applies first and then second.
func ComposedGetter[S, I, A any](first Getter[S, I], second Getter[I, A]) GetterImpl[S, A] {
	return WrapGetter[S, A](composedGetter[S, I, A]{first: first, second: second})
}

// ComposeGetterWithGetter composes two Getters into a Getter.
func ComposeGetterWithGetter[S, I, A any](g GetterImpl[S, I], other GetterImpl[I, A]) GetterImpl[S, A] {
	return ComposedGetter[S, I, A](g, other)
}

// ComposeGetterWithPartialGetter composes a Getter with a PartialGetter. The
// result fails exactly when other fails.
func ComposeGetterWithPartialGetter[S, I, A, E any](g GetterImpl[S, I], other PartialGetterImpl[I, A, E]) PartialGetterImpl[S, A, E] {
	return ComposedPartialGetter[S, I, A, Infallible, E, E](g, other, FromInfallible[E], identity[E])
}

// ComposeGetterWithLens composes a Getter with the read side of a Lens.
func ComposeGetterWithLens[S, I, A any](g GetterImpl[S, I], other LensImpl[I, A]) GetterImpl[S, A] {
	return ComposedGetter[S, I, A](g, other)
}

// ComposeGetterWithPrism composes a Getter with the read side of a Prism.
func ComposeGetterWithPrism[S, I, A, E any](g GetterImpl[S, I], other PrismImpl[I, A, E]) PartialGetterImpl[S, A, E] {
	return ComposedPartialGetter[S, I, A, Infallible, E, E](g, other, FromInfallible[E], identity[E])
}

// ComposeGetterWithIso composes a Getter with the forward side of an Iso.
func ComposeGetterWithIso[S, I, A any](g GetterImpl[S, I], other IsoImpl[I, A]) GetterImpl[S, A] {
	return ComposedGetter[S, I, A](g, other)
}

// ComposeGetterWithFallibleIso composes a Getter with the forward side of a
// FallibleIso.
func ComposeGetterWithFallibleIso[S, I, A, GE, RE any](g GetterImpl[S, I], other FallibleIsoImpl[I, A, GE, RE]) PartialGetterImpl[S, A, GE] {
	return ComposedPartialGetter[S, I, A, Infallible, GE, GE](g, other, FromInfallible[GE], identity[GE])
}
