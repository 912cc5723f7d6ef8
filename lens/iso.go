package lens

// Iso represents an isomorphism between two types. Every Iso is a lens whose
// Set ignores the old structure.
type Iso[S, A any] struct {
	Get     func(S) A
	Reverse func(A) S
}

// NewIso creates a new isomorphism.
func NewIso[S, A any](get func(S) A, reverse func(A) S) Iso[S, A] {
	return Iso[S, A]{Get: get, Reverse: reverse}
}

// ToLens converts an Iso to a Lens.
func (i Iso[S, A]) ToLens() Lens[S, A] {
	return NewTotal(i.Get, func(_ S, a A) S { return i.Reverse(a) })
}

// Flip swaps the direction of the isomorphism.
func (i Iso[S, A]) Flip() Iso[A, S] {
	return Iso[A, S]{Get: i.Reverse, Reverse: i.Get}
}

// ComposeIso composes two isomorphisms.
func ComposeIso[S, A, B any](outer Iso[S, A], inner Iso[A, B]) Iso[S, B] {
	return Iso[S, B]{
		Get:     func(s S) B { return inner.Get(outer.Get(s)) },
		Reverse: func(b B) S { return outer.Reverse(inner.Reverse(b)) },
	}
}
