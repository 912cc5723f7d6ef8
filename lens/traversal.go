package lens

import (
	lenserrors "github.com/authcorp/optics/errors"
	"github.com/authcorp/optics/functional"
)

// MapL promotes inner to a lens over every element of a slice. The focus is
// the slice of inner foci in element order; Set requires exactly one value
// per element and fails with CARDINALITY_MISMATCH otherwise.
func MapL[E, A any](inner Lens[E, A]) Lens[[]E, []A] {
	return Lens[[]E, []A]{
		view: func(s []E) ([]A, error) {
			result := make([]A, len(s))
			for i, e := range s {
				a, err := inner.view(e)
				if err != nil {
					return nil, lenserrors.Wrapf(err, "element %d", i)
				}
				result[i] = a
			}
			return result, nil
		},
		set: func(s []E, values []A) ([]E, error) {
			if len(values) != len(s) {
				return nil, lenserrors.Cardinality(len(s), len(values)).At("MapL", lenserrors.OpSet)
			}
			if len(s) == 0 {
				return s, nil
			}
			result := make([]E, len(s))
			for i, p := range functional.Zip(s, values) {
				updated, err := inner.set(p.Unpack())
				if err != nil {
					return nil, lenserrors.Wrapf(err, "element %d", i)
				}
				result[i] = updated
			}
			return result, nil
		},
	}
}

// OverMap applies fn to the focus of inner in every element of data. Each
// element is updated independently.
func OverMap[E, A any](data []E, inner Lens[E, A], fn func(A) A) ([]E, error) {
	result := make([]E, len(data))
	for i, e := range data {
		updated, err := inner.Over(e, fn)
		if err != nil {
			return nil, lenserrors.Wrapf(err, "element %d", i)
		}
		result[i] = updated
	}
	return result, nil
}

// Filtered creates a lens focusing on the elements of a slice that satisfy
// pred, in order.
//
// Set writes the i-th value to the i-th element that matched in the input
// slice, and requires exactly one value per match. The match set is fixed
// when Set is entered; written values are never re-tested. The laws hold as
// long as written values still satisfy pred.
func Filtered[E any](pred func(E) bool) Lens[[]E, []E] {
	return Lens[[]E, []E]{
		view: func(s []E) ([]E, error) {
			return pick(s, matches(s, pred)), nil
		},
		set: func(s []E, values []E) ([]E, error) {
			positions := matches(s, pred)
			if len(values) != len(positions) {
				return nil, lenserrors.Cardinality(len(positions), len(values)).At("Filtered", lenserrors.OpSet)
			}
			if len(s) == 0 {
				return s, nil
			}
			return place(s, positions, values), nil
		},
	}
}

// matches returns the positions of the elements satisfying pred.
func matches[E any](s []E, pred func(E) bool) []int {
	positions := make([]int, 0, len(s))
	for i, e := range s {
		if pred(e) {
			positions = append(positions, i)
		}
	}
	return positions
}

func pick[E any](s []E, positions []int) []E {
	result := make([]E, len(positions))
	for i, p := range positions {
		result[i] = s[p]
	}
	return result
}

// place returns a copy of s with values written at positions, pairwise.
func place[E any](s []E, positions []int, values []E) []E {
	result := make([]E, len(s))
	copy(result, s)
	for i, p := range positions {
		result[p] = values[i]
	}
	return result
}
