package optics

// SetterFunc adapts a plain function to the Setter interface.
type SetterFunc[S, A any] func(source *S, value A)

// Set calls f(source, value).
func (f SetterFunc[S, A]) Set(source *S, value A) {
	f(source, value)
}

// SetterImpl is the wrapper for write-only optics.
//
// A Setter cannot be the first operand of a composition: writing through a
// composed optic needs the current intermediate value, which a Setter cannot
// read. There is accordingly no ComposeSetterWith* function, and passing a
// SetterImpl where a Prism is required does not type-check.
type SetterImpl[S, A any] struct {
	setter Setter[S, A]
}

// WrapSetter wraps a Setter implementation. A SetterImpl is returned as is.
func WrapSetter[S, A any](s Setter[S, A]) SetterImpl[S, A] {
	if w, ok := s.(SetterImpl[S, A]); ok {
		return w
	}
	return SetterImpl[S, A]{setter: s}
}

// Set replaces the focused value inside source.
func (s SetterImpl[S, A]) Set(source *S, value A) {
	s.setter.Set(source, value)
}

// MappedSetter creates a Setter from a write function.
func MappedSetter[S, A any](set func(*S, A)) SetterImpl[S, A] {
	return WrapSetter[S, A](SetterFunc[S, A](set))
}

// IdentitySetter creates a Setter that replaces the whole source.
func IdentitySetter[S any]() SetterImpl[S, S] {
	return MappedSetter(func(s *S, v S) { *s = v })
}

type composedSetter[S, I, A, E any] struct {
	first  Prism[S, I, E]
	second Setter[I, A]
}

func (c composedSetter[S, I, A, E]) Set(source *S, value A) {
	writeThrough[S, I, A, E](c.first, c.second, source, value)
}

// ComposedSetter creates a Setter that writes value through first into source.
// The first optic must be able to read: the intermediate value is read, updated
// by second and written back. When the read fails nothing is written.
func ComposedSetter[S, I, A, E any](first Prism[S, I, E], second Setter[I, A]) SetterImpl[S, A] {
	return WrapSetter[S, A](composedSetter[S, I, A, E]{first: first, second: second})
}

// writeThrough is the write half of every composition.
func writeThrough[S, I, A, E any](first Prism[S, I, E], second Setter[I, A], source *S, value A) {
	i, _, ok := first.TryGet(*source).Unpack()
	if !ok {
		return
	}
	second.Set(&i, value)
	first.Set(source, i)
}
