package optics

// Infallible is the failure type of operations that cannot fail.
//
// No type outside this package can implement it and this package implements it
// with nothing, so its only value is nil. The optics in this package never build
// a failed Result carrying an Infallible.
type Infallible interface {
	error
	infallible()
}

// FromInfallible converts an Infallible into any failure type. It exists so a
// total optic can be composed where a mapper func(Infallible) E is expected; it
// is never reached at run time.
func FromInfallible[E any](Infallible) E {
	panic("optics: FromInfallible called with an Infallible value")
}

// NoFocus is the canonical failure for a focus that is absent when the caller
// does not care why.
type NoFocus struct{}

func (NoFocus) Error() string {
	return "optics: no focus"
}

// ErrNoFocus is the NoFocus value, usable with errors.Is.
var ErrNoFocus error = NoFocus{}

// ToNoFocus discards a failure of any type, mapping it to NoFocus.
func ToNoFocus[E any](E) NoFocus {
	return NoFocus{}
}

// AsError widens a concrete error type to the error interface.
func AsError[E error](err E) error {
	return err
}

func identity[E any](e E) E {
	return e
}
