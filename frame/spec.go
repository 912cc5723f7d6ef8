package frame

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	lenserrors "github.com/authcorp/optics/errors"
)

// Spec chooses a subset of field names. Resolve returns the positions of the
// chosen names in ascending order, so a selection always keeps the original
// relative order of the fields.
type Spec interface {
	Resolve(names []string) ([]int, error)
	String() string
}

type nameSet []string

// Names selects the listed fields. Every listed name must exist.
func Names(names ...string) Spec {
	return nameSet(slices.Clone(names))
}

func (s nameSet) Resolve(names []string) ([]int, error) {
	positions := make([]int, 0, len(s))
	for _, want := range s {
		i := slices.Index(names, want)
		if i < 0 {
			return nil, lenserrors.MissingKey(want)
		}
		if !slices.Contains(positions, i) {
			positions = append(positions, i)
		}
	}
	slices.Sort(positions)
	return positions, nil
}

func (s nameSet) String() string {
	return "names(" + strings.Join(s, ", ") + ")"
}

type pattern struct {
	re *regexp.Regexp
}

// Matching selects the fields whose name matches the regular expression expr.
// It panics if expr does not compile; see MatchingErr.
func Matching(expr string) Spec {
	return pattern{re: regexp.MustCompile(expr)}
}

// MatchingErr is Matching for expressions that are not known to be valid.
func MatchingErr(expr string) (Spec, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, lenserrors.InvalidSpec(fmt.Sprintf("bad pattern %q", expr)).WithCause(err)
	}
	return pattern{re: re}, nil
}

// MatchingRegexp selects the fields whose name matches re.
func MatchingRegexp(re *regexp.Regexp) Spec {
	return pattern{re: re}
}

func (p pattern) Resolve(names []string) ([]int, error) {
	positions := make([]int, 0, len(names))
	for i, name := range names {
		if p.re.MatchString(name) {
			positions = append(positions, i)
		}
	}
	return positions, nil
}

func (p pattern) String() string {
	return "matches(" + p.re.String() + ")"
}

type nameRange struct {
	from, to string
}

// Range selects the contiguous run of fields between from and to, both
// included. The ends are located by their current position, so Range("c", "a")
// selects the same fields as Range("a", "c").
func Range(from, to string) Spec {
	return nameRange{from: from, to: to}
}

func (r nameRange) Resolve(names []string) ([]int, error) {
	lo := slices.Index(names, r.from)
	if lo < 0 {
		return nil, lenserrors.MissingKey(r.from)
	}
	hi := slices.Index(names, r.to)
	if hi < 0 {
		return nil, lenserrors.MissingKey(r.to)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	positions := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		positions = append(positions, i)
	}
	return positions, nil
}

func (r nameRange) String() string {
	return r.from + ":" + r.to
}
