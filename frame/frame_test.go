package frame_test

import (
	"errors"
	"testing"

	lenserrors "github.com/authcorp/optics/errors"
	"github.com/authcorp/optics/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func xs(values ...int) frame.Frame {
	rows := make([][]frame.Value, len(values))
	for i, v := range values {
		rows[i] = []frame.Value{v}
	}
	return frame.MustFrame([]string{"x"}, rows...)
}

func people() frame.Frame {
	return frame.MustFrame([]string{"name", "age", "city"},
		[]frame.Value{"ann", 31, "oslo"},
		[]frame.Value{"bob", 17, "rome"},
		[]frame.Value{"cid", 45, "oslo"},
	)
}

func TestNewFrame(t *testing.T) {
	t.Run("row width must match columns", func(t *testing.T) {
		_, err := frame.NewFrame([]string{"a", "b"}, []frame.Value{1})
		assert.True(t, errors.Is(err, lenserrors.ErrCardinality))
	})

	t.Run("duplicate columns rejected", func(t *testing.T) {
		_, err := frame.NewFrame([]string{"a", "a"})
		assert.True(t, errors.Is(err, lenserrors.ErrInvalidNames))
	})

	t.Run("empty column name rejected", func(t *testing.T) {
		_, err := frame.NewFrame([]string{""})
		assert.True(t, errors.Is(err, lenserrors.ErrInvalidNames))
	})
}

func TestFromRecords(t *testing.T) {
	f, err := frame.FromRecords(
		frame.NewRecord(frame.F("x", 1), frame.F("y", 2)),
		frame.NewRecord(frame.F("y", 4), frame.F("x", 3)),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, f.Columns())
	assert.True(t, f.Row(1).Equal(frame.NewRecord(frame.F("x", 3), frame.F("y", 4))))

	_, err = frame.FromRecords(
		frame.NewRecord(frame.F("x", 1)),
		frame.NewRecord(frame.F("z", 1)),
	)
	assert.True(t, errors.Is(err, lenserrors.ErrMissingKey))

	_, err = frame.FromRecords(frame.NewRecord(frame.F("", 1)))
	assert.True(t, errors.Is(err, lenserrors.ErrInvalidNames))
}

func TestFrameAccessors(t *testing.T) {
	f := people()

	assert.Equal(t, 3, f.Len())
	ages, ok := f.Col("age")
	require.True(t, ok)
	assert.Equal(t, []frame.Value{31, 17, 45}, ages)

	_, ok = f.Col("zip")
	assert.False(t, ok)

	assert.Len(t, f.Records(), 3)
	assert.Equal(t, "name\tage\tcity\nann\t31\toslo\nbob\t17\trome\ncid\t45\toslo", f.String())
}

func TestFilterRows(t *testing.T) {
	oslo := frame.FilterRows(people(), func(r frame.Record) bool {
		return r.Get("city").UnwrapOr("") == "oslo"
	})

	require.Equal(t, 2, oslo.Len())
	assert.Equal(t, people().Columns(), oslo.Columns())
	names, _ := oslo.Col("name")
	assert.Equal(t, []frame.Value{"ann", "cid"}, names)
}
