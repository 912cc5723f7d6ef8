// Package frame provides ordered records and row collections, the field
// selection and row filtering primitives over them, and the lenses built on
// those primitives.
//
// Record and Frame are immutable: every method that changes one returns a
// copy. Positions are 0-based.
package frame

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/authcorp/optics/functional"
)

// Value is a field value.
type Value = any

// NamedValue is a named value.
type NamedValue struct {
	Name  string
	Value Value
}

// F creates a NamedValue.
func F(name string, value Value) NamedValue {
	return NamedValue{Name: name, Value: value}
}

// Record is an ordered sequence of uniquely named fields.
type Record struct {
	names  []string
	values []Value
}

// NewRecord creates a record from fields in order. A repeated name replaces
// the earlier value and keeps its position.
func NewRecord(fields ...NamedValue) Record {
	r := Record{
		names:  make([]string, 0, len(fields)),
		values: make([]Value, 0, len(fields)),
	}
	for _, f := range fields {
		if i := r.IndexOf(f.Name); i >= 0 {
			r.values[i] = f.Value
			continue
		}
		r.names = append(r.names, f.Name)
		r.values = append(r.values, f.Value)
	}
	return r
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.names)
}

// Names returns the field names in order.
func (r Record) Names() []string {
	return slices.Clone(r.names)
}

// Values returns the field values in order.
func (r Record) Values() []Value {
	return slices.Clone(r.values)
}

// Fields returns the fields in order.
func (r Record) Fields() []NamedValue {
	fields := make([]NamedValue, len(r.names))
	for i, name := range r.names {
		fields[i] = NamedValue{Name: name, Value: r.values[i]}
	}
	return fields
}

// IndexOf returns the position of name, or -1.
func (r Record) IndexOf(name string) int {
	return slices.Index(r.names, name)
}

// Get returns the value of the named field.
func (r Record) Get(name string) functional.Option[Value] {
	if i := r.IndexOf(name); i >= 0 {
		return functional.Some(r.values[i])
	}
	return functional.None[Value]()
}

// With returns a copy of r with the named field set. A new name is appended.
func (r Record) With(name string, value Value) Record {
	out := r.clone()
	if i := out.IndexOf(name); i >= 0 {
		out.values[i] = value
		return out
	}
	out.names = append(out.names, name)
	out.values = append(out.values, value)
	return out
}

// Map returns a copy of r with fn applied to every value.
func (r Record) Map(fn func(Value) Value) Record {
	out := r.clone()
	for i, v := range out.values {
		out.values[i] = fn(v)
	}
	return out
}

// Equal reports whether r and other have the same fields in the same order.
func (r Record) Equal(other Record) bool {
	if len(r.names) != len(other.names) {
		return false
	}
	for i := range r.names {
		if r.names[i] != other.names[i] || !reflect.DeepEqual(r.values[i], other.values[i]) {
			return false
		}
	}
	return true
}

// String formats r as {name:value, ...}.
func (r Record) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, name := range r.names {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s:%v", name, r.values[i])
	}
	b.WriteByte('}')
	return b.String()
}

func (r Record) clone() Record {
	return Record{names: slices.Clone(r.names), values: slices.Clone(r.values)}
}

// pick returns the sub-record at positions, in the given order.
func (r Record) pick(positions []int) Record {
	out := Record{
		names:  make([]string, len(positions)),
		values: make([]Value, len(positions)),
	}
	for i, p := range positions {
		out.names[i] = r.names[p]
		out.values[i] = r.values[p]
	}
	return out
}
