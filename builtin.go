package optics

import (
	"maps"
	"slices"
	"strconv"

	"github.com/authcorp/optics/functional"
)

// SomePrism focuses on the value inside a present Option. Set always makes the
// Option present.
func SomePrism[T any]() PrismImpl[functional.Option[T], T, NoFocus] {
	return MappedNoFocusPrism(
		func(o functional.Option[T]) (T, bool) { return o.Get() },
		func(o *functional.Option[T], v T) { *o = functional.Some(v) },
	)
}

// PointerPrism focuses on the value behind a non-nil pointer. Set points the
// source at a new copy of the value and never writes through the old pointer.
func PointerPrism[T any]() PrismImpl[*T, T, NoFocus] {
	return MappedNoFocusPrism(
		func(p *T) (T, bool) {
			if p == nil {
				var zero T
				return zero, false
			}
			return *p, true
		},
		func(p **T, v T) { *p = &v },
	)
}

// AtKey focuses on the presence of key in a map. Setting None removes the key.
// Writes replace the map with a modified copy.
func AtKey[K comparable, V any](key K) LensImpl[map[K]V, functional.Option[V]] {
	return MappedLens(
		func(m map[K]V) functional.Option[V] {
			if v, ok := m[key]; ok {
				return functional.Some(v)
			}
			return functional.None[V]()
		},
		func(m *map[K]V, opt functional.Option[V]) {
			result := maps.Clone(*m)
			if result == nil {
				result = make(map[K]V)
			}
			if v, ok := opt.Get(); ok {
				result[key] = v
			} else {
				delete(result, key)
			}
			*m = result
		},
	)
}

// MapAt focuses on the value stored at key. A missing key has no focus; Set
// always stores the value. Writes replace the map with a modified copy.
func MapAt[K comparable, V any](key K) PrismImpl[map[K]V, V, NoFocus] {
	return ComposeLensWithPrism(AtKey[K, V](key), SomePrism[V]())
}

// Index focuses on the slice element at i. Out of range reads fail with
// NoFocus and out of range writes do nothing.
func Index[T any](i int) PrismImpl[[]T, T, NoFocus] {
	return MappedNoFocusPrism(
		func(s []T) (T, bool) {
			if i >= 0 && i < len(s) {
				return s[i], true
			}
			var zero T
			return zero, false
		},
		func(s *[]T, v T) {
			if i < 0 || i >= len(*s) {
				return
			}
			result := slices.Clone(*s)
			result[i] = v
			*s = result
		},
	)
}

// First focuses on the first element of a pair.
func First[A, B any]() LensImpl[functional.Pair[A, B], A] {
	return MappedLens(
		func(p functional.Pair[A, B]) A { return p.First },
		func(p *functional.Pair[A, B], a A) { p.First = a },
	)
}

// Second focuses on the second element of a pair.
func Second[A, B any]() LensImpl[functional.Pair[A, B], B] {
	return MappedLens(
		func(p functional.Pair[A, B]) B { return p.Second },
		func(p *functional.Pair[A, B], b B) { p.Second = b },
	)
}

// ParseInt converts between a decimal string and an int. Parsing fails with
// the strconv error; formatting never fails.
func ParseInt() FallibleIsoImpl[string, int, error, Infallible] {
	return MappedFallibleIso(
		func(s string) functional.Result[int, error] { return functional.Try(strconv.Atoi(s)) },
		func(n int) functional.Result[string, Infallible] { return functional.Ok[string, Infallible](strconv.Itoa(n)) },
	)
}
