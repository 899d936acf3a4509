package dataset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableAddColumn(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.AddColumn("a", []float64{1, 2, 3}))
	require.NoError(t, table.AddColumn("b", []float64{4, 5, 6}))

	require.Equal(t, 3, table.NumRows())
	require.Equal(t, 2, table.NumCols())
	require.Equal(t, []string{"a", "b"}, table.Names())

	col, err := table.Column("b")
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, col)
}

func TestTableAddColumnDuplicate(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.AddColumn("a", []float64{1}))
	require.Error(t, table.AddColumn("a", []float64{2}))
}

func TestTableAddColumnLengthMismatch(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.AddColumn("a", []float64{1, 2}))
	require.Error(t, table.AddColumn("b", []float64{1, 2, 3}))
}

func TestTableAddColumnEmptyName(t *testing.T) {
	table := NewTable()
	require.Error(t, table.AddColumn("", []float64{1}))
}

func TestTableSetColumn(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.AddColumn("a", []float64{1, 2}))

	// Add a new column
	require.NoError(t, table.SetColumn("b", []float64{3, 4}))
	require.Equal(t, []string{"a", "b"}, table.Names())

	// Replace in place, order unchanged
	require.NoError(t, table.SetColumn("a", []float64{9, 9}))
	require.Equal(t, []string{"a", "b"}, table.Names())
	col, err := table.Column("a")
	require.NoError(t, err)
	require.Equal(t, []float64{9, 9}, col)

	// Length still enforced on replace
	require.Error(t, table.SetColumn("a", []float64{1}))
}

func TestTableColumnMissing(t *testing.T) {
	table := NewTable()
	_, err := table.Column("nope")
	require.Error(t, err)
	require.False(t, table.Has("nope"))
}

func TestStats(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	require.InDelta(t, 5.0, Mean(values), 1e-12)
	require.InDelta(t, 4.571428571428571, Variance(values), 1e-12)
	require.InDelta(t, 2.138089935299395, Std(values), 1e-12)

	require.Equal(t, 0.0, Mean(nil))
	require.Equal(t, 0.0, Variance([]float64{1}))
}
