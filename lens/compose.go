package lens

// Compose creates a lens focusing deeper: through outer into inner.
//
// Set views through outer to get the intermediate structure, writes the new
// focus into it with inner, then writes the result back through outer. The
// first failing step aborts the whole operation.
func Compose[S, A, B any](outer Lens[S, A], inner Lens[A, B]) Lens[S, B] {
	return Lens[S, B]{
		view: func(s S) (B, error) {
			a, err := outer.view(s)
			if err != nil {
				var zero B
				return zero, err
			}
			return inner.view(a)
		},
		set: func(s S, b B) (S, error) {
			var zero S
			a, err := outer.view(s)
			if err != nil {
				return zero, err
			}
			updated, err := inner.set(a, b)
			if err != nil {
				return zero, err
			}
			return outer.set(s, updated)
		},
	}
}

// Compose3 composes three lenses left to right.
func Compose3[S, A, B, C any](l1 Lens[S, A], l2 Lens[A, B], l3 Lens[B, C]) Lens[S, C] {
	return Compose(Compose(l1, l2), l3)
}

// Identity creates an identity lens, the unit of Compose.
func Identity[S any]() Lens[S, S] {
	return Lens[S, S]{
		view: func(s S) (S, error) { return s, nil },
		set:  func(_ S, s S) (S, error) { return s, nil },
	}
}
