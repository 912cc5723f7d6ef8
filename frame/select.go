package frame

import (
	lenserrors "github.com/authcorp/optics/errors"
)

// SelectFields returns the fields of r chosen by spec, in their original
// order.
func SelectFields(r Record, spec Spec) (Record, error) {
	positions, err := spec.Resolve(r.names)
	if err != nil {
		return Record{}, err
	}
	return r.pick(positions), nil
}

// SelectColumns returns the columns of f chosen by spec, in their original
// order.
func SelectColumns(f Frame, spec Spec) (Frame, error) {
	positions, err := spec.Resolve(f.columns)
	if err != nil {
		return Frame{}, err
	}
	return f.project(positions), nil
}

// FilterRows returns the rows of f that satisfy pred, in their original
// order. pred sees the whole row.
func FilterRows(f Frame, pred func(Record) bool) Frame {
	return f.rowsAt(matchRows(f, pred))
}

func matchRows(f Frame, pred func(Record) bool) []int {
	positions := make([]int, 0, len(f.rows))
	for i := range f.rows {
		if pred(f.Row(i)) {
			positions = append(positions, i)
		}
	}
	return positions
}

func (f Frame) rowsAt(positions []int) Frame {
	out := Frame{columns: f.Columns(), rows: make([][]Value, len(positions))}
	for k, p := range positions {
		out.rows[k] = f.rows[p]
	}
	return out
}

// replaceRows returns a copy of f with the rows of sub written at positions.
// sub must have one row per position and the same column names as f.
func (f Frame) replaceRows(positions []int, sub Frame) (Frame, *lenserrors.LensError) {
	if sub.Len() != len(positions) {
		return Frame{}, lenserrors.Cardinality(len(positions), sub.Len())
	}
	out := Frame{columns: f.Columns(), rows: make([][]Value, len(f.rows))}
	copy(out.rows, f.rows)
	for k, p := range positions {
		row, err := align(f.columns, sub.Row(k))
		if err != nil {
			return Frame{}, err.WithDetail("row", p)
		}
		out.rows[p] = row
	}
	return out, nil
}
