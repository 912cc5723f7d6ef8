package frame

import (
	"slices"

	lenserrors "github.com/authcorp/optics/errors"
	"github.com/authcorp/optics/lens"
)

// Field creates a lens for the named field of a record. View fails with
// MISSING_KEY for an absent name; Set appends an absent name.
func Field(name string) lens.Lens[Record, Value] {
	return lens.New(
		func(r Record) (Value, error) {
			v, ok := r.Get(name).Get()
			if !ok {
				return nil, lenserrors.MissingKey(name).At("frame.Field", lenserrors.OpView)
			}
			return v, nil
		},
		func(r Record, v Value) (Record, error) {
			return r.With(name, v), nil
		},
	)
}

// FieldAt creates a lens for the field at a 0-based position.
func FieldAt(i int) lens.Lens[Record, Value] {
	return lens.New(
		func(r Record) (Value, error) {
			if i < 0 || i >= r.Len() {
				return nil, lenserrors.OutOfRange(i, r.Len()).At("frame.FieldAt", lenserrors.OpView)
			}
			return r.values[i], nil
		},
		func(r Record, v Value) (Record, error) {
			if i < 0 || i >= r.Len() {
				return Record{}, lenserrors.OutOfRange(i, r.Len()).At("frame.FieldAt", lenserrors.OpSet)
			}
			out := r.clone()
			out.values[i] = v
			return out, nil
		},
	)
}

// Column creates a lens for the values of the named column, one per row.
// View fails with MISSING_KEY for an absent column; Set appends one. Set
// requires exactly one value per row.
func Column(name string) lens.Lens[Frame, []Value] {
	return lens.New(
		func(f Frame) ([]Value, error) {
			values, ok := f.Col(name)
			if !ok {
				return nil, lenserrors.MissingKey(name).At("frame.Column", lenserrors.OpView)
			}
			return values, nil
		},
		func(f Frame, values []Value) (Frame, error) {
			if len(values) != f.Len() {
				return Frame{}, lenserrors.Cardinality(f.Len(), len(values)).At("frame.Column", lenserrors.OpSet)
			}
			return f.withColumn(name, values), nil
		},
	)
}

// SelectL creates a lens for the sub-record of fields chosen by spec.
//
// Set matches replacement fields by name: the replacement must carry exactly
// the selected names. Unselected fields pass through unchanged.
func SelectL(spec Spec) lens.Lens[Record, Record] {
	const name = "frame.SelectL"
	return lens.New(
		func(r Record) (Record, error) {
			sub, err := SelectFields(r, spec)
			if err != nil {
				return Record{}, at(err, name, lenserrors.OpView)
			}
			return sub, nil
		},
		func(r Record, replacement Record) (Record, error) {
			positions, err := spec.Resolve(r.names)
			if err != nil {
				return Record{}, at(err, name, lenserrors.OpSet)
			}
			selected := r.pick(positions)
			values, lerr := align(selected.names, replacement)
			if lerr != nil {
				return Record{}, lerr.At(name, lenserrors.OpSet)
			}
			out := r.clone()
			for k, p := range positions {
				out.values[p] = values[k]
			}
			return out, nil
		},
	)
}

// SelectColumnsL creates a lens for the sub-frame of columns chosen by spec.
// Set requires a frame with the same rows count and exactly the selected
// column names.
func SelectColumnsL(spec Spec) lens.Lens[Frame, Frame] {
	const name = "frame.SelectColumnsL"
	return lens.New(
		func(f Frame) (Frame, error) {
			sub, err := SelectColumns(f, spec)
			if err != nil {
				return Frame{}, at(err, name, lenserrors.OpView)
			}
			return sub, nil
		},
		func(f Frame, replacement Frame) (Frame, error) {
			positions, err := spec.Resolve(f.columns)
			if err != nil {
				return Frame{}, at(err, name, lenserrors.OpSet)
			}
			if replacement.Len() != f.Len() {
				return Frame{}, lenserrors.Cardinality(f.Len(), replacement.Len()).At(name, lenserrors.OpSet)
			}
			selected := make([]string, len(positions))
			for k, p := range positions {
				selected[k] = f.columns[p]
			}
			out := Frame{columns: f.Columns(), rows: make([][]Value, len(f.rows))}
			for i, row := range f.rows {
				values, lerr := align(selected, replacement.Row(i))
				if lerr != nil {
					return Frame{}, lerr.WithDetail("row", i).At(name, lenserrors.OpSet)
				}
				out.rows[i] = slices.Clone(row)
				for k, p := range positions {
					out.rows[i][p] = values[k]
				}
			}
			return out, nil
		},
	)
}

// FilterL creates a lens for the rows satisfying pred, with all their
// columns. pred sees the whole row.
//
// Set writes the k-th replacement row over the k-th row that matched in the
// input frame. The match set is computed once, from the input, so a
// replacement that no longer satisfies pred is still written where it
// belongs. Set requires one replacement row per match, with the same column
// names.
func FilterL(pred func(Record) bool) lens.Lens[Frame, Frame] {
	const name = "frame.FilterL"
	return lens.New(
		func(f Frame) (Frame, error) {
			return FilterRows(f, pred), nil
		},
		func(f Frame, sub Frame) (Frame, error) {
			out, err := f.replaceRows(matchRows(f, pred), sub)
			if err != nil {
				return Frame{}, err.At(name, lenserrors.OpSet)
			}
			return out, nil
		},
	)
}

// NamesL creates a lens for the field names of a record. Set renames fields
// by position; the new names must be unique, non-empty and one per field.
func NamesL() lens.Lens[Record, []string] {
	const name = "frame.NamesL"
	return lens.New(
		func(r Record) ([]string, error) {
			return r.Names(), nil
		},
		func(r Record, names []string) (Record, error) {
			if err := checkRename(r.Len(), names); err != nil {
				return Record{}, err.At(name, lenserrors.OpSet)
			}
			return Record{names: slices.Clone(names), values: slices.Clone(r.values)}, nil
		},
	)
}

// ColumnNamesL creates a lens for the column names of a frame, with the same
// rules as NamesL.
func ColumnNamesL() lens.Lens[Frame, []string] {
	const name = "frame.ColumnNamesL"
	return lens.New(
		func(f Frame) ([]string, error) {
			return f.Columns(), nil
		},
		func(f Frame, names []string) (Frame, error) {
			if err := checkRename(len(f.columns), names); err != nil {
				return Frame{}, err.At(name, lenserrors.OpSet)
			}
			return Frame{columns: slices.Clone(names), rows: slices.Clone(f.rows)}, nil
		},
	)
}

func checkRename(n int, names []string) *lenserrors.LensError {
	if len(names) != n {
		return lenserrors.Cardinality(n, len(names))
	}
	return checkNames(names)
}

// Rows creates a lens for the rows of a frame as records. Set requires every
// record to carry exactly the frame's columns; the row count may change.
func Rows() lens.Lens[Frame, []Record] {
	return lens.New(
		func(f Frame) ([]Record, error) {
			return f.Records(), nil
		},
		func(f Frame, records []Record) (Frame, error) {
			out := Frame{columns: f.Columns(), rows: make([][]Value, len(records))}
			for i, r := range records {
				row, err := align(f.columns, r)
				if err != nil {
					return Frame{}, err.WithDetail("row", i).At("frame.Rows", lenserrors.OpSet)
				}
				out.rows[i] = row
			}
			return out, nil
		},
	)
}

// MapRows promotes inner to a lens over every row of a frame.
func MapRows[A any](inner lens.Lens[Record, A]) lens.Lens[Frame, []A] {
	return lens.Compose(Rows(), lens.MapL(inner))
}

// FieldsIso views a record as its ordered field list.
func FieldsIso() lens.Iso[Record, []NamedValue] {
	return lens.NewIso(
		func(r Record) []NamedValue { return r.Fields() },
		func(fields []NamedValue) Record { return NewRecord(fields...) },
	)
}

// CondIL focuses on the rows satisfying pred, re-evaluated against the
// frame's current rows on every call. Replacement rows are recycled over the
// matches as in lens.CondIL.
func CondIL(pred func(Record) bool) lens.IllegalLens[Frame, Frame] {
	rows := lens.Compose(Rows(), lens.CondIL(pred).Unchecked())
	return lens.NewIllegal(
		func(f Frame) (Frame, error) {
			return FilterRows(f, pred), nil
		},
		func(f Frame, sub Frame) (Frame, error) {
			return rows.Set(f, sub.Records())
		},
	)
}

// Broadcast sets every field of the record focused by l to value.
func Broadcast[S any](data S, l lens.Lens[S, Record], value Value) (S, error) {
	return l.Over(data, func(r Record) Record {
		return r.Map(func(Value) Value { return value })
	})
}

// OverValues applies fn to every field of the record focused by l.
func OverValues[S any](data S, l lens.Lens[S, Record], fn func(Value) Value) (S, error) {
	return l.Over(data, func(r Record) Record { return r.Map(fn) })
}

// at annotates a lens error with its origin. Other errors pass through.
func at(err error, name string, op lenserrors.Op) error {
	if lerr, ok := lenserrors.AsType[*lenserrors.LensError](err); ok {
		return lerr.At(name, op)
	}
	return err
}
