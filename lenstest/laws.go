// Package lenstest provides property-based law checks and rapid generators
// for testing lenses.
package lenstest

import (
	"reflect"
	"testing"

	"github.com/authcorp/optics/lens"
	"github.com/davecgh/go-spew/spew"
	"pgregory.net/rapid"
)

// TB is the subset of testing.TB and *rapid.T the checks report through.
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

// DeepEqual compares with reflect.DeepEqual.
func DeepEqual[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}

// Laws describes a lens and how to draw inputs for it.
type Laws[S, A any] struct {
	Lens lens.Lens[S, A]
	// Source draws structures the lens can view.
	Source *rapid.Generator[S]
	// Focus draws values that are valid to write into s.
	Focus func(s S) *rapid.Generator[A]
	// EqualS and EqualA default to DeepEqual.
	EqualS func(S, S) bool
	EqualA func(A, A) bool
}

// Check verifies View-Set, Set-View and Set-Set on drawn inputs.
func (l Laws[S, A]) Check(t *testing.T) {
	t.Helper()
	eqS, eqA := l.EqualS, l.EqualA
	if eqS == nil {
		eqS = DeepEqual[S]
	}
	if eqA == nil {
		eqA = DeepEqual[A]
	}
	rapid.Check(t, func(rt *rapid.T) {
		s := l.Source.Draw(rt, "source")
		a1 := l.Focus(s).Draw(rt, "a1")
		a2 := l.Focus(s).Draw(rt, "a2")

		CheckViewSet(rt, l.Lens, s, eqS)
		CheckSetView(rt, l.Lens, s, a1, eqA)
		CheckSetSet(rt, l.Lens, s, a1, a2, eqS)
	})
}

// CheckViewSet verifies Set(s, View(s)) == s.
func CheckViewSet[S, A any](t TB, l lens.Lens[S, A], s S, eq func(S, S) bool) {
	t.Helper()
	a, err := lens.View(s, l)
	if err != nil {
		t.Fatalf("view failed: %v", err)
	}
	got, err := lens.Set(s, l, a)
	if err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if !eq(got, s) {
		t.Fatalf("view-set law violated:\ngot:  %swant: %s", spew.Sdump(got), spew.Sdump(s))
	}
}

// CheckSetView verifies View(Set(s, a)) == a.
func CheckSetView[S, A any](t TB, l lens.Lens[S, A], s S, a A, eq func(A, A) bool) {
	t.Helper()
	violated, got, err := ViolatesSetView(l, s, a, eq)
	if err != nil {
		t.Fatalf("set-view check failed: %v", err)
	}
	if violated {
		t.Fatalf("set-view law violated:\ngot:  %swant: %s", spew.Sdump(got), spew.Sdump(a))
	}
}

// CheckSetSet verifies Set(Set(s, a1), a2) == Set(s, a2).
func CheckSetSet[S, A any](t TB, l lens.Lens[S, A], s S, a1, a2 A, eq func(S, S) bool) {
	t.Helper()
	once, err := lens.Set(s, l, a1)
	if err != nil {
		t.Fatalf("set failed: %v", err)
	}
	twice, err := lens.Set(once, l, a2)
	if err != nil {
		t.Fatalf("set failed: %v", err)
	}
	direct, err := lens.Set(s, l, a2)
	if err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if !eq(twice, direct) {
		t.Fatalf("set-set law violated:\ngot:  %swant: %s", spew.Sdump(twice), spew.Sdump(direct))
	}
}

// ViolatesSetView writes a into s through l, views it back and reports
// whether the result differs from a. It returns the value read back.
func ViolatesSetView[S, A any](l lens.Lens[S, A], s S, a A, eq func(A, A) bool) (bool, A, error) {
	var zero A
	updated, err := lens.Set(s, l, a)
	if err != nil {
		return false, zero, err
	}
	got, err := lens.View(updated, l)
	if err != nil {
		return false, zero, err
	}
	return !eq(got, a), got, nil
}
