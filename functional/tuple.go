package functional

// Pair represents a tuple of two values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// NewPair creates a new Pair.
func NewPair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Unpack returns the pair's values.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// Zip pairs elements of two slices by position. The shorter slice wins.
func Zip[A, B any](as []A, bs []B) []Pair[A, B] {
	n := min(len(as), len(bs))
	result := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		result[i] = Pair[A, B]{First: as[i], Second: bs[i]}
	}
	return result
}
