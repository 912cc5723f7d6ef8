package lens_test

import (
	"errors"
	"slices"
	"testing"

	lenserrors "github.com/authcorp/optics/errors"
	"github.com/authcorp/optics/functional"
	"github.com/authcorp/optics/lens"
)

func TestIndexLens(t *testing.T) {
	l := lens.Index[int](1)
	s := []int{1, 2, 3}

	if mustView(t, s, l) != 2 {
		t.Error("expected 2")
	}

	updated := mustSet(t, s, l, 99)
	if !slices.Equal(updated, []int{1, 99, 3}) {
		t.Errorf("expected [1 99 3], got %v", updated)
	}
	if !slices.Equal(s, []int{1, 2, 3}) {
		t.Error("original should be unchanged")
	}
}

func TestIndexIsZeroBased(t *testing.T) {
	s := []string{"first", "second"}
	if mustView(t, s, lens.Index[string](0)) != "first" {
		t.Error("expected index 0 to be the first element")
	}
}

func TestIndexOutOfRange(t *testing.T) {
	for _, i := range []int{-1, 3, 10} {
		_, err := lens.View([]int{1, 2, 3}, lens.Index[int](i))
		if !errors.Is(err, lenserrors.ErrOutOfRange) {
			t.Errorf("index %d: expected OUT_OF_RANGE, got %v", i, err)
		}

		_, err = lens.Set([]int{1, 2, 3}, lens.Index[int](i), 0)
		if !errors.Is(err, lenserrors.ErrOutOfRange) {
			t.Errorf("index %d: expected OUT_OF_RANGE on set, got %v", i, err)
		}
	}
}

func TestKeyLens(t *testing.T) {
	l := lens.Key[string, string]("key")
	m := map[string]string{"key": "value", "other": "data"}

	if mustView(t, m, l) != "value" {
		t.Error("expected value")
	}

	updated := mustSet(t, m, l, "new")
	if updated["key"] != "new" || updated["other"] != "data" {
		t.Errorf("unexpected map %v", updated)
	}
	if m["key"] != "value" {
		t.Error("original should be unchanged")
	}

	t.Run("missing key fails on view", func(t *testing.T) {
		_, err := lens.View(map[string]string{}, l)
		if !errors.Is(err, lenserrors.ErrMissingKey) {
			t.Errorf("expected MISSING_KEY, got %v", err)
		}
	})

	t.Run("missing key is added on set", func(t *testing.T) {
		empty := map[string]string{}
		updated := mustSet(t, empty, l, "added")
		if updated["key"] != "added" {
			t.Error("expected key to be added")
		}
		if len(empty) != 0 {
			t.Error("original should be unchanged")
		}
	})
}

func TestKeyOrLens(t *testing.T) {
	l := lens.KeyOr("key", "default")

	if mustView(t, map[string]string{}, l) != "default" {
		t.Error("expected default")
	}
	if mustView(t, map[string]string{"key": "value"}, l) != "value" {
		t.Error("expected value")
	}
}

func TestAtLens(t *testing.T) {
	l := lens.At[string, int]("n")
	m := map[string]int{"n": 1, "m": 2}

	if got := mustView(t, m, l); !got.IsSome() || got.Unwrap() != 1 {
		t.Error("expected Some(1)")
	}

	removed := mustSet(t, m, l, functional.None[int]())
	if _, ok := removed["n"]; ok {
		t.Error("expected key to be removed")
	}
	if m["n"] != 1 {
		t.Error("original should be unchanged")
	}

	added := mustSet(t, removed, l, functional.Some(5))
	if added["n"] != 5 {
		t.Error("expected key to be added")
	}
}
