package frame

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	lenserrors "github.com/authcorp/optics/errors"
)

// Frame is an ordered collection of rows sharing one ordered set of columns.
type Frame struct {
	columns []string
	rows    [][]Value
}

// NewFrame creates a frame. Every row must have one value per column and
// column names must be unique and non-empty.
func NewFrame(columns []string, rows ...[]Value) (Frame, error) {
	if err := checkNames(columns); err != nil {
		return Frame{}, err.At("frame.NewFrame", "")
	}
	f := Frame{columns: slices.Clone(columns), rows: make([][]Value, len(rows))}
	for i, row := range rows {
		if len(row) != len(columns) {
			return Frame{}, lenserrors.Cardinality(len(columns), len(row)).
				WithDetail("row", i).
				At("frame.NewFrame", "")
		}
		f.rows[i] = slices.Clone(row)
	}
	return f, nil
}

// MustFrame is NewFrame for literals known to be valid. It panics on error.
func MustFrame(columns []string, rows ...[]Value) Frame {
	return lenserrors.Must(NewFrame(columns, rows...))
}

// FromRecords creates a frame whose columns are the names of the first
// record. Every record must carry exactly those names, in any order.
func FromRecords(records ...Record) (Frame, error) {
	if len(records) == 0 {
		return Frame{}, nil
	}
	columns := records[0].names
	if err := checkNames(columns); err != nil {
		return Frame{}, err.At("frame.FromRecords", "")
	}
	f := Frame{columns: slices.Clone(columns), rows: make([][]Value, len(records))}
	for i, r := range records {
		row, err := align(columns, r)
		if err != nil {
			return Frame{}, lenserrors.Wrapf(err.At("frame.FromRecords", ""), "row %d", i)
		}
		f.rows[i] = row
	}
	return f, nil
}

// Len returns the number of rows.
func (f Frame) Len() int {
	return len(f.rows)
}

// Columns returns the column names in order.
func (f Frame) Columns() []string {
	return slices.Clone(f.columns)
}

// Row returns the i-th row as a record.
func (f Frame) Row(i int) Record {
	return Record{names: slices.Clone(f.columns), values: slices.Clone(f.rows[i])}
}

// Records returns every row as a record.
func (f Frame) Records() []Record {
	records := make([]Record, len(f.rows))
	for i := range f.rows {
		records[i] = f.Row(i)
	}
	return records
}

// Col returns the values of the named column.
func (f Frame) Col(name string) ([]Value, bool) {
	j := slices.Index(f.columns, name)
	if j < 0 {
		return nil, false
	}
	values := make([]Value, len(f.rows))
	for i, row := range f.rows {
		values[i] = row[j]
	}
	return values, true
}

// Equal reports whether f and other have the same columns and rows in order.
func (f Frame) Equal(other Frame) bool {
	if !slices.Equal(f.columns, other.columns) || len(f.rows) != len(other.rows) {
		return false
	}
	for i := range f.rows {
		if !reflect.DeepEqual(f.rows[i], other.rows[i]) {
			return false
		}
	}
	return true
}

// String formats f one row per line.
func (f Frame) String() string {
	var b strings.Builder
	b.WriteString(strings.Join(f.columns, "\t"))
	for _, row := range f.rows {
		b.WriteByte('\n')
		for j, v := range row {
			if j > 0 {
				b.WriteByte('\t')
			}
			fmt.Fprintf(&b, "%v", v)
		}
	}
	return b.String()
}

// withColumn returns a copy of f with the named column replaced or appended.
// values must have one entry per row.
func (f Frame) withColumn(name string, values []Value) Frame {
	j := slices.Index(f.columns, name)
	out := Frame{columns: slices.Clone(f.columns), rows: make([][]Value, len(f.rows))}
	if j < 0 {
		out.columns = append(out.columns, name)
	}
	for i, row := range f.rows {
		if j < 0 {
			out.rows[i] = append(slices.Clone(row), values[i])
			continue
		}
		out.rows[i] = slices.Clone(row)
		out.rows[i][j] = values[i]
	}
	return out
}

// project returns the frame restricted to the column positions, in order.
func (f Frame) project(positions []int) Frame {
	out := Frame{columns: make([]string, len(positions)), rows: make([][]Value, len(f.rows))}
	for k, p := range positions {
		out.columns[k] = f.columns[p]
	}
	for i, row := range f.rows {
		out.rows[i] = make([]Value, len(positions))
		for k, p := range positions {
			out.rows[i][k] = row[p]
		}
	}
	return out
}

// align orders the values of r by columns. r must carry exactly columns.
func align(columns []string, r Record) ([]Value, *lenserrors.LensError) {
	if r.Len() != len(columns) {
		return nil, lenserrors.Cardinality(len(columns), r.Len())
	}
	row := make([]Value, len(columns))
	for j, name := range columns {
		i := r.IndexOf(name)
		if i < 0 {
			return nil, lenserrors.MissingKey(name)
		}
		row[j] = r.values[i]
	}
	return row, nil
}

func checkNames(names []string) *lenserrors.LensError {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			return lenserrors.InvalidNames("empty name")
		}
		if _, ok := seen[name]; ok {
			return lenserrors.InvalidNames(fmt.Sprintf("duplicate name %q", name))
		}
		seen[name] = struct{}{}
	}
	return nil
}
