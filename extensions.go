package optics

import "github.com/authcorp/optics/functional"

// Over reads the focus of optic in source, applies f and writes the result
// back. It reports false and leaves source untouched when there is no focus.
func Over[S, A, E any](optic Prism[S, A, E], source *S, f func(A) A) bool {
	a, _, ok := optic.TryGet(*source).Unpack()
	if !ok {
		return false
	}
	optic.Set(source, f(a))
	return true
}

// Modify is Over on a copy of source. The copy is returned whether or not it
// changed.
func Modify[S, A, E any](optic Prism[S, A, E], source S, f func(A) A) S {
	Over(optic, &source, f)
	return source
}

// Preview reads the focus of getter and drops the failure.
func Preview[S, A, E any](getter PartialGetter[S, A, E], source S) functional.Option[A] {
	return getter.TryGet(source).ToOption()
}

// TotalGet reads through a PartialGetter that cannot fail.
func TotalGet[S, A any](getter PartialGetter[S, A, Infallible], source S) A {
	a, _, _ := getter.TryGet(source).Unpack()
	return a
}

// TotalReverseGet reverses through a PartialReversible that cannot fail.
func TotalReverseGet[S, A any](reversible PartialReversible[S, A, Infallible], value A) S {
	s, _, _ := reversible.TryReverseGet(value).Unpack()
	return s
}
