package optics

// Lens focuses on a value that is always present, such as a struct field.
//
// Laws: Get(Set(s, a)) == a and Set(s, Get(s)) == s.
type Lens[S, A any] interface {
	Getter[S, A]
	Setter[S, A]
}

// Prism focuses on a value that may be absent, such as one variant of a sum type
// or the content of an Option. Set always writes the focused variant, whatever
// variant the source held before.
//
// Law: if TryGet(s) is Ok(a) then TryGet(Set(s, a)) is Ok(a).
type Prism[S, A, E any] interface {
	PartialGetter[S, A, E]
	Setter[S, A]
}

// Iso is a total, lossless conversion between S and A.
//
// Laws: ReverseGet(Get(s)) == s and Get(ReverseGet(a)) == a.
type Iso[S, A any] interface {
	Getter[S, A]
	Setter[S, A]
	Reversible[S, A]
}

// FallibleIso is a conversion between S and A where either direction may fail,
// with GE and RE as the respective failure types. Whenever both directions
// succeed they round-trip without loss.
type FallibleIso[S, A, GE, RE any] interface {
	PartialGetter[S, A, GE]
	Setter[S, A]
	PartialReversible[S, A, RE]
}
