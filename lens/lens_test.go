package lens_test

import (
	"errors"
	"testing"

	lenserrors "github.com/authcorp/optics/errors"
	"github.com/authcorp/optics/functional"
	"github.com/authcorp/optics/lens"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

type Person struct {
	Name    string
	Age     int
	Address Address
}

type Address struct {
	Street string
	City   string
}

func PersonNameLens() lens.Lens[Person, string] {
	return lens.NewTotal(
		func(p Person) string { return p.Name },
		func(p Person, name string) Person { p.Name = name; return p },
	)
}

func PersonAgeLens() lens.Lens[Person, int] {
	return lens.NewTotal(
		func(p Person) int { return p.Age },
		func(p Person, age int) Person { p.Age = age; return p },
	)
}

func PersonAddressLens() lens.Lens[Person, Address] {
	return lens.NewTotal(
		func(p Person) Address { return p.Address },
		func(p Person, addr Address) Person { p.Address = addr; return p },
	)
}

func AddressCityLens() lens.Lens[Address, string] {
	return lens.NewTotal(
		func(a Address) string { return a.City },
		func(a Address, city string) Address { a.City = city; return a },
	)
}

func mustView[S, A any](t *testing.T, data S, l lens.Lens[S, A]) A {
	t.Helper()
	a, err := lens.View(data, l)
	if err != nil {
		t.Fatalf("view failed: %v", err)
	}
	return a
}

func mustSet[S, A any](t *testing.T, data S, l lens.Lens[S, A], value A) S {
	t.Helper()
	s, err := lens.Set(data, l, value)
	if err != nil {
		t.Fatalf("set failed: %v", err)
	}
	return s
}

func TestLensSetViewLaw(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("View(Set(source, value)) == value", prop.ForAll(
		func(name string, age int, newName string) bool {
			l := PersonNameLens()
			person := Person{Name: name, Age: age}
			updated, err := lens.Set(person, l, newName)
			if err != nil {
				return false
			}
			got, err := lens.View(updated, l)
			return err == nil && got == newName
		},
		gen.AnyString(),
		gen.Int(),
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestLensViewSetLaw(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Set(source, View(source)) == source", prop.ForAll(
		func(name string, age int) bool {
			l := PersonNameLens()
			person := Person{Name: name, Age: age}
			current, err := lens.View(person, l)
			if err != nil {
				return false
			}
			updated, err := lens.Set(person, l, current)
			return err == nil && updated == person
		},
		gen.AnyString(),
		gen.Int(),
	))

	properties.TestingRun(t)
}

func TestLensSetSetLaw(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Set(Set(source, a1), a2) == Set(source, a2)", prop.ForAll(
		func(age, a1, a2 int) bool {
			l := PersonAgeLens()
			person := Person{Name: "Alice", Age: age}
			once, _ := lens.Set(person, l, a1)
			twice, _ := lens.Set(once, l, a2)
			direct, _ := lens.Set(person, l, a2)
			return twice == direct
		},
		gen.Int(),
		gen.Int(),
		gen.Int(),
	))

	properties.TestingRun(t)
}

func TestLensBasicOperations(t *testing.T) {
	t.Run("View retrieves value", func(t *testing.T) {
		person := Person{Name: "Alice", Age: 30}
		if mustView(t, person, PersonNameLens()) != "Alice" {
			t.Error("expected Alice")
		}
	})

	t.Run("Set creates new structure", func(t *testing.T) {
		person := Person{Name: "Alice", Age: 30}
		updated := mustSet(t, person, PersonNameLens(), "Bob")
		if updated.Name != "Bob" {
			t.Error("expected Bob")
		}
		if person.Name != "Alice" {
			t.Error("original should be unchanged")
		}
	})

	t.Run("Over applies function", func(t *testing.T) {
		person := Person{Name: "Alice", Age: 30}
		updated, err := lens.Over(person, PersonAgeLens(), func(age int) int { return age + 1 })
		if err != nil {
			t.Fatal(err)
		}
		if updated.Age != 31 {
			t.Errorf("expected 31, got %d", updated.Age)
		}
	})

	t.Run("methods mirror verbs", func(t *testing.T) {
		l := PersonAgeLens()
		person := Person{Age: 30}
		viaMethod, _ := l.Over(person, func(age int) int { return age * 2 })
		viaVerb, _ := lens.Over(person, l, func(age int) int { return age * 2 })
		if viaMethod != viaVerb {
			t.Errorf("expected %+v, got %+v", viaVerb, viaMethod)
		}
	})
}

func TestOverErr(t *testing.T) {
	t.Run("applies fallible update", func(t *testing.T) {
		updated, err := lens.OverErr(Person{Age: 30}, PersonAgeLens(), func(age int) (int, error) {
			return age + 5, nil
		})
		if err != nil {
			t.Fatal(err)
		}
		if updated.Age != 35 {
			t.Errorf("expected 35, got %d", updated.Age)
		}
	})

	t.Run("wraps update failure as callback error", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := lens.OverErr(Person{Age: 30}, PersonAgeLens(), func(int) (int, error) {
			return 0, boom
		})
		if !lenserrors.IsCode(err, lenserrors.ErrCodeCallback) {
			t.Errorf("expected CALLBACK_ERROR, got %v", err)
		}
		if !errors.Is(err, boom) {
			t.Error("expected cause to be preserved")
		}
	})

	t.Run("view failure is returned as is", func(t *testing.T) {
		_, err := lens.OverErr([]int{1}, lens.Index[int](3), func(v int) (int, error) { return v, nil })
		if !errors.Is(err, lenserrors.ErrOutOfRange) {
			t.Errorf("expected OUT_OF_RANGE, got %v", err)
		}
	})
}

func TestViewResult(t *testing.T) {
	ok := lens.ViewResult([]int{7, 8}, lens.Index[int](1))
	if !ok.IsOk() || ok.Unwrap() != 8 {
		t.Error("expected Ok(8)")
	}

	failed := lens.ViewResult([]int{7, 8}, lens.Index[int](2))
	if !failed.IsErr() || !lenserrors.IsCode(failed.UnwrapErr(), lenserrors.ErrCodeOutOfRange) {
		t.Error("expected Err(OUT_OF_RANGE)")
	}

	if lens.Preview([]int{}, lens.Index[int](0)).IsSome() {
		t.Error("expected None")
	}
}

func TestLensComposition(t *testing.T) {
	t.Run("Compose creates nested lens", func(t *testing.T) {
		personCity := lens.Compose(PersonAddressLens(), AddressCityLens())

		person := Person{
			Name:    "Alice",
			Address: Address{Street: "123 Main", City: "NYC"},
		}

		if mustView(t, person, personCity) != "NYC" {
			t.Error("expected NYC")
		}

		updated := mustSet(t, person, personCity, "LA")
		if updated.Address.City != "LA" {
			t.Error("expected LA")
		}
		if updated.Address.Street != "123 Main" {
			t.Error("expected street to pass through")
		}
		if person.Address.City != "NYC" {
			t.Error("original should be unchanged")
		}
	})

	t.Run("nested keyed structure", func(t *testing.T) {
		data := map[string]map[string]int{"outer": {"inner": 5}}
		l := lens.Compose(lens.Key[string, map[string]int]("outer"), lens.Key[string, int]("inner"))

		if mustView(t, data, l) != 5 {
			t.Error("expected 5")
		}
		updated := mustSet(t, data, l, 9)
		if updated["outer"]["inner"] != 9 {
			t.Errorf("expected 9, got %d", updated["outer"]["inner"])
		}
		if data["outer"]["inner"] != 5 {
			t.Error("original should be unchanged")
		}
	})

	t.Run("outer failure aborts set", func(t *testing.T) {
		l := lens.Compose(lens.Index[[]int](2), lens.Index[int](0))
		_, err := lens.Set([][]int{{1}}, l, 4)
		if !errors.Is(err, lenserrors.ErrOutOfRange) {
			t.Errorf("expected OUT_OF_RANGE, got %v", err)
		}
	})

	t.Run("inner failure aborts set", func(t *testing.T) {
		l := lens.Compose(lens.Index[[]int](0), lens.Index[int](5))
		_, err := lens.Set([][]int{{1}}, l, 4)
		lerr, ok := lenserrors.AsType[*lenserrors.LensError](err)
		if !ok {
			t.Fatalf("expected LensError, got %v", err)
		}
		if lerr.Code != lenserrors.ErrCodeOutOfRange || lerr.Op != lenserrors.OpSet || lerr.Lens != "Index" {
			t.Errorf("unexpected error %v", lerr)
		}
	})
}

func TestIdentityLens(t *testing.T) {
	l := lens.Identity[int]()
	if mustView(t, 42, l) != 42 {
		t.Error("expected 42")
	}
	if mustSet(t, 42, l, 100) != 100 {
		t.Error("expected 100")
	}
}

func TestPairLenses(t *testing.T) {
	p := functional.NewPair("a", 1)

	if mustView(t, p, lens.First[string, int]()) != "a" {
		t.Error("expected a")
	}
	updated := mustSet(t, p, lens.Second[string, int](), 2)
	if updated.Second != 2 || updated.First != "a" {
		t.Errorf("unexpected pair %+v", updated)
	}
}

func TestIso(t *testing.T) {
	celsius := lens.NewIso(
		func(f float64) float64 { return (f - 32) * 5 / 9 },
		func(c float64) float64 { return c*9/5 + 32 },
	)

	if got := mustView(t, 212.0, celsius.ToLens()); got != 100 {
		t.Errorf("expected 100, got %v", got)
	}
	if got := mustSet(t, 0.0, celsius.ToLens(), 0); got != 32 {
		t.Errorf("expected 32, got %v", got)
	}

	roundTrip := lens.ComposeIso(celsius, celsius.Flip())
	if got := roundTrip.Get(50); got != 50 {
		t.Errorf("expected 50, got %v", got)
	}
}
