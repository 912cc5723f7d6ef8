package lens

import (
	lenserrors "github.com/authcorp/optics/errors"
)

// IllegalLens has the shape of a Lens but does not satisfy Set-View: a Set
// can change which parts of the structure the lens selects, so a following
// View may focus on something other than what was written.
//
// IllegalLens is a distinct type so it cannot be passed to Compose or the
// package-level verbs by accident. Use its methods directly, or call
// Unchecked to opt in to composing it as an ordinary Lens.
type IllegalLens[S, A any] struct {
	l Lens[S, A]
}

// NewIllegal creates an IllegalLens from view and set functions.
func NewIllegal[S, A any](view func(S) (A, error), set func(S, A) (S, error)) IllegalLens[S, A] {
	return IllegalLens[S, A]{l: New(view, set)}
}

// View retrieves the focused value.
func (il IllegalLens[S, A]) View(source S) (A, error) {
	return il.l.view(source)
}

// Set returns a new structure with the focused value replaced.
func (il IllegalLens[S, A]) Set(source S, value A) (S, error) {
	return il.l.set(source, value)
}

// Over applies fn to the focused value and writes the result back.
func (il IllegalLens[S, A]) Over(source S, fn func(A) A) (S, error) {
	return il.l.Over(source, fn)
}

// Unchecked returns the underlying view/set pair as a Lens. Laws derived for
// lenses built from it do not hold.
func (il IllegalLens[S, A]) Unchecked() Lens[S, A] {
	return il.l
}

// CondIL focuses on the elements of a slice that satisfy pred.
//
// Set performs conditional assignment: values are written to the matching
// elements in order and recycled when there are fewer values than matches.
// The number of matches must be a multiple of len(values). Because pred is
// evaluated against whatever the slice currently holds, writing values that
// fail pred, or recycling, breaks Set-View.
func CondIL[E any](pred func(E) bool) IllegalLens[[]E, []E] {
	return NewIllegal(
		func(s []E) ([]E, error) {
			return pick(s, matches(s, pred)), nil
		},
		func(s []E, values []E) ([]E, error) {
			positions := matches(s, pred)
			recycled, err := recycle(values, len(positions))
			if err != nil {
				return nil, err.At("CondIL", lenserrors.OpSet)
			}
			return place(s, positions, recycled), nil
		},
	)
}

// recycle repeats values to length n. n must be a multiple of len(values).
func recycle[E any](values []E, n int) ([]E, *lenserrors.LensError) {
	if n == 0 {
		return nil, nil
	}
	if len(values) == 0 || n%len(values) != 0 {
		return nil, lenserrors.Cardinality(n, len(values))
	}
	result := make([]E, n)
	for i := range result {
		result[i] = values[i%len(values)]
	}
	return result, nil
}

// TakeWhileIL focuses on the longest prefix of a slice whose elements all
// satisfy pred. Set replaces that prefix with values of any length. The
// prefix is recomputed from the current content on every call, so a written
// value that fails pred, or a following element that starts to satisfy it,
// changes what the next View returns.
func TakeWhileIL[E any](pred func(E) bool) IllegalLens[[]E, []E] {
	prefix := func(s []E) int {
		n := 0
		for n < len(s) && pred(s[n]) {
			n++
		}
		return n
	}
	return NewIllegal(
		func(s []E) ([]E, error) {
			n := prefix(s)
			result := make([]E, n)
			copy(result, s[:n])
			return result, nil
		},
		func(s []E, values []E) ([]E, error) {
			n := prefix(s)
			result := make([]E, 0, len(values)+len(s)-n)
			result = append(result, values...)
			return append(result, s[n:]...), nil
		},
	)
}
