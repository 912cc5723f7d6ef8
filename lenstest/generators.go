package lenstest

import (
	"fmt"

	"github.com/authcorp/optics/frame"
	"pgregory.net/rapid"
)

// IntSliceGen generates int slices with lengths in [minLen, maxLen].
func IntSliceGen(minLen, maxLen int) *rapid.Generator[[]int] {
	return rapid.SliceOfN(rapid.IntRange(-1000, 1000), minLen, maxLen)
}

// IntSliceOfLen generates int slices of exactly n elements.
func IntSliceOfLen(n int) *rapid.Generator[[]int] {
	return rapid.SliceOfN(rapid.IntRange(-1000, 1000), n, n)
}

// NamesGen generates n distinct field names.
func NamesGen(n int) *rapid.Generator[[]string] {
	return rapid.SliceOfNDistinct(rapid.StringMatching(`[a-z][a-z0-9_]{0,7}`), n, n, rapid.ID[string])
}

// RecordGen generates records with the given names, in order, and int values.
func RecordGen(names ...string) *rapid.Generator[frame.Record] {
	return rapid.Custom(func(t *rapid.T) frame.Record {
		fields := make([]frame.NamedValue, len(names))
		for i, name := range names {
			fields[i] = frame.F(name, rapid.IntRange(-1000, 1000).Draw(t, name))
		}
		return frame.NewRecord(fields...)
	})
}

// FrameGen generates frames with the given columns, int values and up to
// maxRows rows.
func FrameGen(columns []string, maxRows int) *rapid.Generator[frame.Frame] {
	return rapid.Custom(func(t *rapid.T) frame.Frame {
		n := rapid.IntRange(0, maxRows).Draw(t, "rows")
		return FrameOfLen(columns, n).Draw(t, "frame")
	})
}

// FrameOfLen generates frames with the given columns and exactly n rows.
func FrameOfLen(columns []string, n int) *rapid.Generator[frame.Frame] {
	return rapid.Custom(func(t *rapid.T) frame.Frame {
		rows := make([][]frame.Value, n)
		for i := range rows {
			rows[i] = make([]frame.Value, len(columns))
			for j, column := range columns {
				rows[i][j] = rapid.IntRange(-1000, 1000).Draw(t, fmt.Sprintf("%s[%d]", column, i))
			}
		}
		return frame.MustFrame(columns, rows...)
	})
}

// RecordEqual compares records field by field.
func RecordEqual(a, b frame.Record) bool {
	return a.Equal(b)
}

// FrameEqual compares frames row by row.
func FrameEqual(a, b frame.Frame) bool {
	return a.Equal(b)
}
