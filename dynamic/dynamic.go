// Package dynamic provides lenses over untyped nested data: []any,
// map[string]any and frame.Record values, as produced by decoding YAML or
// JSON without a schema.
//
// The shape of the data is only known when a lens is used, so a lens applied
// to the wrong kind of value fails with TYPE_MISMATCH instead of failing to
// compile.
package dynamic

import (
	"reflect"

	lenserrors "github.com/authcorp/optics/errors"
	"github.com/authcorp/optics/frame"
	"github.com/authcorp/optics/lens"
)

// Index creates a lens for one element of untyped data. An int key selects a
// 0-based position of a []any or a frame.Record; a string key selects a field
// of a map[string]any or a frame.Record.
func Index(key any) lens.Lens[any, any] {
	return lens.New(
		func(data any) (any, error) {
			v, err := view(data, key)
			if err != nil {
				return nil, err.At("dynamic.Index", lenserrors.OpView)
			}
			return v, nil
		},
		func(data any, value any) (any, error) {
			out, err := set(data, key, value)
			if err != nil {
				return nil, err.At("dynamic.Index", lenserrors.OpSet)
			}
			return out, nil
		},
	)
}

// Path composes Index lenses for each key in turn.
func Path(keys ...any) lens.Lens[any, any] {
	l := lens.Identity[any]()
	for _, key := range keys {
		l = lens.Compose(l, Index(key))
	}
	return l
}

// MapL promotes inner to a lens over every element of a []any. The focus is
// a []any of the inner foci.
func MapL(inner lens.Lens[any, any]) lens.Lens[any, any] {
	traversal := lens.MapL(inner)
	return lens.New(
		func(data any) (any, error) {
			s, ok := data.([]any)
			if !ok {
				return nil, lenserrors.TypeMismatch("[]any", data).At("dynamic.MapL", lenserrors.OpView)
			}
			return traversal.View(s)
		},
		func(data any, values any) (any, error) {
			s, ok := data.([]any)
			if !ok {
				return nil, lenserrors.TypeMismatch("[]any", data).At("dynamic.MapL", lenserrors.OpSet)
			}
			vs, ok := values.([]any)
			if !ok {
				return nil, lenserrors.TypeMismatch("[]any", values).At("dynamic.MapL", lenserrors.OpSet)
			}
			return traversal.Set(s, vs)
		},
	)
}

// As creates a lens that asserts the untyped focus has type A. It is the
// usual last step of a Path.
func As[A any]() lens.Lens[any, A] {
	return lens.New(
		func(data any) (A, error) {
			a, ok := data.(A)
			if !ok {
				var zero A
				return zero, lenserrors.TypeMismatch(reflect.TypeOf((*A)(nil)).Elem().String(), data).At("dynamic.As", lenserrors.OpView)
			}
			return a, nil
		},
		func(_ any, a A) (any, error) {
			return a, nil
		},
	)
}

func view(data any, key any) (any, *lenserrors.LensError) {
	switch k := key.(type) {
	case int:
		switch d := data.(type) {
		case []any:
			if k < 0 || k >= len(d) {
				return nil, lenserrors.OutOfRange(k, len(d))
			}
			return d[k], nil
		case frame.Record:
			return viewRecord(d, frame.FieldAt(k))
		}
		return nil, lenserrors.TypeMismatch("[]any or frame.Record", data)
	case string:
		switch d := data.(type) {
		case map[string]any:
			v, ok := d[k]
			if !ok {
				return nil, lenserrors.MissingKey(k)
			}
			return v, nil
		case frame.Record:
			return viewRecord(d, frame.Field(k))
		}
		return nil, lenserrors.TypeMismatch("map[string]any or frame.Record", data)
	}
	return nil, lenserrors.TypeMismatch("int or string key", key)
}

func set(data any, key any, value any) (any, *lenserrors.LensError) {
	switch k := key.(type) {
	case int:
		switch d := data.(type) {
		case []any:
			out, err := lens.Index[any](k).Set(d, value)
			if err != nil {
				return nil, lenserrors.OutOfRange(k, len(d))
			}
			return out, nil
		case frame.Record:
			return setRecord(d, frame.FieldAt(k), value)
		}
		return nil, lenserrors.TypeMismatch("[]any or frame.Record", data)
	case string:
		switch d := data.(type) {
		case map[string]any:
			out, err := lens.Key[string, any](k).Set(d, value)
			if err != nil {
				return nil, lensError(err)
			}
			return out, nil
		case frame.Record:
			return setRecord(d, frame.Field(k), value)
		}
		return nil, lenserrors.TypeMismatch("map[string]any or frame.Record", data)
	}
	return nil, lenserrors.TypeMismatch("int or string key", key)
}

func viewRecord(r frame.Record, l lens.Lens[frame.Record, frame.Value]) (any, *lenserrors.LensError) {
	v, err := l.View(r)
	if err != nil {
		return nil, lensError(err)
	}
	return v, nil
}

func setRecord(r frame.Record, l lens.Lens[frame.Record, frame.Value], value any) (any, *lenserrors.LensError) {
	out, err := l.Set(r, value)
	if err != nil {
		return nil, lensError(err)
	}
	return out, nil
}

func lensError(err error) *lenserrors.LensError {
	if lerr, ok := lenserrors.AsType[*lenserrors.LensError](err); ok {
		return lerr
	}
	return lenserrors.Wrap(err, "record lens failed")
}
