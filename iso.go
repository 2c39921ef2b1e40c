package optics

import "github.com/authcorp/optics/functional"

// IsoImpl is the wrapper for Iso optics.
type IsoImpl[S, A any] struct {
	iso Iso[S, A]
}

// WrapIso wraps an Iso implementation. An IsoImpl is returned as is.
func WrapIso[S, A any](i Iso[S, A]) IsoImpl[S, A] {
	if w, ok := i.(IsoImpl[S, A]); ok {
		return w
	}
	return IsoImpl[S, A]{iso: i}
}

// Get converts source into its other representation.
func (i IsoImpl[S, A]) Get(source S) A {
	return i.iso.Get(source)
}

// TryGet is Get as a Result that is always Ok.
func (i IsoImpl[S, A]) TryGet(source S) functional.Result[A, Infallible] {
	return functional.Ok[A, Infallible](i.iso.Get(source))
}

// Set replaces source with the value rebuilt from value.
func (i IsoImpl[S, A]) Set(source *S, value A) {
	i.iso.Set(source, value)
}

// ReverseGet converts value back into a source.
func (i IsoImpl[S, A]) ReverseGet(value A) S {
	return i.iso.ReverseGet(value)
}

// TryReverseGet is ReverseGet as a Result that is always Ok.
func (i IsoImpl[S, A]) TryReverseGet(value A) functional.Result[S, Infallible] {
	return functional.Ok[S, Infallible](i.iso.ReverseGet(value))
}

// AsGetter keeps only the forward direction of i.
func (i IsoImpl[S, A]) AsGetter() GetterImpl[S, A] {
	return WrapGetter[S, A](i)
}

// AsLens drops the reverse direction of i.
func (i IsoImpl[S, A]) AsLens() LensImpl[S, A] {
	return WrapLens[S, A](i)
}

// AsPrism widens i to a Prism that never fails.
func (i IsoImpl[S, A]) AsPrism() PrismImpl[S, A, Infallible] {
	return WrapPrism[S, A, Infallible](i)
}

// AsFallibleIso widens i to a FallibleIso that never fails.
func (i IsoImpl[S, A]) AsFallibleIso() FallibleIsoImpl[S, A, Infallible, Infallible] {
	return WrapFallibleIso[S, A, Infallible, Infallible](i)
}

type mappedIso[S, A any] struct {
	get     func(S) A
	reverse func(A) S
}

func (m mappedIso[S, A]) Get(source S) A {
	return m.get(source)
}

func (m mappedIso[S, A]) ReverseGet(value A) S {
	return m.reverse(value)
}

func (m mappedIso[S, A]) Set(source *S, value A) {
	*source = m.reverse(value)
}

// MappedIso creates an Iso from two mutually inverse functions.
func MappedIso[S, A any](get func(S) A, reverse func(A) S) IsoImpl[S, A] {
	return WrapIso[S, A](mappedIso[S, A]{get: get, reverse: reverse})
}

// IdentityIso creates an Iso between S and itself.
func IdentityIso[S any]() IsoImpl[S, S] {
	return MappedIso(identity[S], identity[S])
}

type composedIso[S, I, A any] struct {
	first  Iso[S, I]
	second Iso[I, A]
}

func (c composedIso[S, I, A]) Get(source S) A {
	return c.second.Get(c.first.Get(source))
}

func (c composedIso[S, I, A]) ReverseGet(value A) S {
	return c.first.ReverseGet(c.second.ReverseGet(value))
}

func (c composedIso[S, I, A]) Set(source *S, value A) {
	i := c.first.Get(*source)
	c.second.Set(&i, value)
	c.first.Set(source, i)
}

// ComposedIso creates an Iso converting through first and then second.
func ComposedIso[S, I, A any](first Iso[S, I], second Iso[I, A]) IsoImpl[S, A] {
	return WrapIso[S, A](composedIso[S, I, A]{first: first, second: second})
}

// ComposeIsoWithGetter composes the forward side of an Iso with a Getter.
func ComposeIsoWithGetter[S, I, A any](i IsoImpl[S, I], other GetterImpl[I, A]) GetterImpl[S, A] {
	return ComposedGetter[S, I, A](i, other)
}

// ComposeIsoWithPartialGetter composes the forward side of an Iso with a
// PartialGetter.
func ComposeIsoWithPartialGetter[S, I, A, E any](i IsoImpl[S, I], other PartialGetterImpl[I, A, E]) PartialGetterImpl[S, A, E] {
	return ComposedPartialGetter[S, I, A, Infallible, E, E](i, other, FromInfallible[E], identity[E])
}

// ComposeIsoWithSetter composes an Iso with a Setter.
func ComposeIsoWithSetter[S, I, A any](i IsoImpl[S, I], other SetterImpl[I, A]) SetterImpl[S, A] {
	return ComposedSetter[S, I, A, Infallible](i, other)
}

// ComposeIsoWithLens composes an Iso with a Lens into a Lens.
func ComposeIsoWithLens[S, I, A any](i IsoImpl[S, I], other LensImpl[I, A]) LensImpl[S, A] {
	return ComposedLens[S, I, A](i, other)
}

// ComposeIsoWithPrism composes an Iso with a Prism into a Prism.
func ComposeIsoWithPrism[S, I, A, E any](i IsoImpl[S, I], other PrismImpl[I, A, E]) PrismImpl[S, A, E] {
	return ComposedPrism[S, I, A, Infallible, E, E](i, other, FromInfallible[E], identity[E])
}

// ComposeIsoWithIso composes two Isos into an Iso.
func ComposeIsoWithIso[S, I, A any](i IsoImpl[S, I], other IsoImpl[I, A]) IsoImpl[S, A] {
	return ComposedIso[S, I, A](i, other)
}

// ComposeIsoWithFallibleIso composes an Iso with a FallibleIso into a
// FallibleIso with the failure types of other.
func ComposeIsoWithFallibleIso[S, I, A, GE, RE any](i IsoImpl[S, I], other FallibleIsoImpl[I, A, GE, RE]) FallibleIsoImpl[S, A, GE, RE] {
	return ComposedFallibleIso[S, I, A, Infallible, Infallible, GE, RE, GE, RE](
		i, other,
		FromInfallible[GE], identity[GE],
		FromInfallible[RE], identity[RE],
	)
}
