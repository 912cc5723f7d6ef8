package lens

import (
	"maps"

	lenserrors "github.com/authcorp/optics/errors"
	"github.com/authcorp/optics/functional"
)

// Index creates a lens for the slice element at a 0-based position.
// View and Set fail with OUT_OF_RANGE outside [0, len).
func Index[E any](i int) Lens[[]E, E] {
	return Lens[[]E, E]{
		view: func(s []E) (E, error) {
			if i < 0 || i >= len(s) {
				var zero E
				return zero, lenserrors.OutOfRange(i, len(s)).At("Index", lenserrors.OpView)
			}
			return s[i], nil
		},
		set: func(s []E, v E) ([]E, error) {
			if i < 0 || i >= len(s) {
				return nil, lenserrors.OutOfRange(i, len(s)).At("Index", lenserrors.OpSet)
			}
			result := make([]E, len(s))
			copy(result, s)
			result[i] = v
			return result, nil
		},
	}
}

// Key creates a lens for a map value. View fails with MISSING_KEY when the
// key is absent; Set adds an absent key.
func Key[K comparable, V any](key K) Lens[map[K]V, V] {
	return Lens[map[K]V, V]{
		view: func(m map[K]V) (V, error) {
			v, ok := m[key]
			if !ok {
				return v, lenserrors.MissingKey(key).At("Key", lenserrors.OpView)
			}
			return v, nil
		},
		set: func(m map[K]V, v V) (map[K]V, error) {
			return withKey(m, key, v), nil
		},
	}
}

// KeyOr creates a lens for a map value that reads defaultVal for an absent
// key. Writing defaultVal to an absent key stores it, so View-Set holds only
// for keys that are present.
func KeyOr[K comparable, V any](key K, defaultVal V) Lens[map[K]V, V] {
	return Lens[map[K]V, V]{
		view: func(m map[K]V) (V, error) {
			if v, ok := m[key]; ok {
				return v, nil
			}
			return defaultVal, nil
		},
		set: func(m map[K]V, v V) (map[K]V, error) {
			return withKey(m, key, v), nil
		},
	}
}

// At creates a lens for the presence of a map key. Setting None removes the
// key.
func At[K comparable, V any](key K) Lens[map[K]V, functional.Option[V]] {
	return Lens[map[K]V, functional.Option[V]]{
		view: func(m map[K]V) (functional.Option[V], error) {
			v, ok := m[key]
			return functional.OptionOf(v, ok), nil
		},
		set: func(m map[K]V, opt functional.Option[V]) (map[K]V, error) {
			if v, ok := opt.Get(); ok {
				return withKey(m, key, v), nil
			}
			result := maps.Clone(m)
			delete(result, key)
			return result, nil
		},
	}
}

func withKey[K comparable, V any](m map[K]V, key K, v V) map[K]V {
	result := make(map[K]V, len(m)+1)
	maps.Copy(result, m)
	result[key] = v
	return result
}

// First creates a lens for the first element of a pair.
func First[A, B any]() Lens[functional.Pair[A, B], A] {
	return NewTotal(
		func(p functional.Pair[A, B]) A { return p.First },
		func(p functional.Pair[A, B], a A) functional.Pair[A, B] { return functional.NewPair(a, p.Second) },
	)
}

// Second creates a lens for the second element of a pair.
func Second[A, B any]() Lens[functional.Pair[A, B], B] {
	return NewTotal(
		func(p functional.Pair[A, B]) B { return p.Second },
		func(p functional.Pair[A, B], b B) functional.Pair[A, B] { return functional.NewPair(p.First, b) },
	)
}
