// Package lens provides generic, composable lenses for non-destructive access
// to nested data.
//
// A Lens[S, A] focuses on a value of type A inside a structure of type S. It
// reads the focus with View, writes it with Set (returning a new S and leaving
// the input untouched) and updates it in place with Over. Lenses compose with
// Compose, so a path into deeply nested data is written once and reused for
// both reading and writing.
//
// # Laws
//
// A well-behaved lens l satisfies, for every structure s and values a, a1, a2:
//
//	View-Set: Set(s, l, View(s, l)) == s
//	Set-View: View(Set(s, l, a), l) == a
//	Set-Set:  Set(Set(s, l, a1), l, a2) == Set(s, l, a2)
//
// The laws are a convention: New does not check them. Constructors that cannot
// satisfy Set-View return an IllegalLens instead of a Lens.
//
// # Indexing
//
// Positional lenses (Index, MapL, TakeWhileIL) are 0-based, like Go slices.
package lens

import (
	lenserrors "github.com/authcorp/optics/errors"
	"github.com/authcorp/optics/functional"
)

// Lens provides access to a focus of type A within a structure of type S.
// The zero value is not usable; build lenses with New or a constructor.
type Lens[S, A any] struct {
	view func(S) (A, error)
	set  func(S, A) (S, error)
}

// New creates a lens from view and set functions.
// set must return a new structure rather than modifying its argument.
func New[S, A any](view func(S) (A, error), set func(S, A) (S, error)) Lens[S, A] {
	return Lens[S, A]{view: view, set: set}
}

// NewTotal creates a lens from functions that cannot fail, such as struct
// field accessors.
func NewTotal[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return Lens[S, A]{
		view: func(s S) (A, error) { return get(s), nil },
		set:  func(s S, a A) (S, error) { return set(s, a), nil },
	}
}

// View retrieves the focused value.
func (l Lens[S, A]) View(source S) (A, error) {
	return l.view(source)
}

// Set returns a new structure with the focused value replaced.
func (l Lens[S, A]) Set(source S, value A) (S, error) {
	return l.set(source, value)
}

// Over applies a function to the focused value and writes the result back.
func (l Lens[S, A]) Over(source S, fn func(A) A) (S, error) {
	a, err := l.view(source)
	if err != nil {
		var zero S
		return zero, err
	}
	return l.set(source, fn(a))
}

// View reads the focus of l in data.
func View[S, A any](data S, l Lens[S, A]) (A, error) {
	return l.view(data)
}

// Set returns a copy of data with the focus of l replaced by value.
func Set[S, A any](data S, l Lens[S, A], value A) (S, error) {
	return l.set(data, value)
}

// Over returns a copy of data with fn applied to the focus of l.
func Over[S, A any](data S, l Lens[S, A], fn func(A) A) (S, error) {
	return l.Over(data, fn)
}

// OverErr is Over for update functions that may fail. An error from fn is
// returned as a CALLBACK_ERROR unless it is already a lens error.
func OverErr[S, A any](data S, l Lens[S, A], fn func(A) (A, error)) (S, error) {
	var zero S
	a, err := l.view(data)
	if err != nil {
		return zero, err
	}
	updated, err := fn(a)
	if err != nil {
		return zero, lenserrors.Wrap(err, "update function failed")
	}
	return l.set(data, updated)
}

// ViewResult reads the focus of l in data as a Result.
func ViewResult[S, A any](data S, l Lens[S, A]) functional.Result[A] {
	return functional.TryFunc(l.view(data))
}

// Preview reads the focus of l in data, discarding the reason for a failure.
func Preview[S, A any](data S, l Lens[S, A]) functional.Option[A] {
	return ViewResult(data, l).ToOption()
}
