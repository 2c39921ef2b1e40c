package optics

import "github.com/authcorp/optics/functional"

// Getter extracts a focus value that is always present.
type Getter[S, A any] interface {
	Get(source S) A
}

// PartialGetter extracts a focus value that may be absent. The failure type E
// carries the reason.
type PartialGetter[S, A, E any] interface {
	TryGet(source S) functional.Result[A, E]
}

// Setter replaces the focus value inside source. Implementations must only
// mutate *source and must not panic on valid input.
type Setter[S, A any] interface {
	Set(source *S, value A)
}

// Reversible rebuilds a whole source from a focus value.
type Reversible[S, A any] interface {
	ReverseGet(value A) S
}

// PartialReversible rebuilds a whole source from a focus value and may fail
// with E.
type PartialReversible[S, A, E any] interface {
	TryReverseGet(value A) functional.Result[S, E]
}
