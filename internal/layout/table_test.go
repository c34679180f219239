package layout

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_ReferenceBoardColumns(t *testing.T) {
	table, err := Build(DefaultSpacing())
	require.NoError(t, err)

	want := []float64{0, 30.0, 75.09, 112.09, 149.09, 186.09, 223.09, 260.09, 297.09, 334.09, 379.18, 409.18}
	got := table.XPositions()
	require.Len(t, got, 12)
	assert.InDeltaSlice(t, want, got, 1e-9)

	// The firmware table is printed with three decimals; those must match exactly.
	for i := range want {
		assert.Equal(t, fmt.Sprintf("%.3f", want[i]), fmt.Sprintf("%.3f", got[i]), "column %d", i)
	}
}

func TestBuild_ReferenceBoardRows(t *testing.T) {
	table, err := Build(DefaultSpacing())
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 37, 74, 111, 148, 185, 222, 259}, table.YPositions())
}

func TestBuild_OriginIsExact(t *testing.T) {
	cases := []Spacing{
		DefaultSpacing(),
		{OriginX: 12.345, OriginY: 24, Margin: 1, Transition: 2, Standard: 3, Row: 0.1, Columns: 12, Rows: 8},
		{OriginX: -7.5, OriginY: 0.3, Columns: 1, Rows: 1},
	}
	for _, s := range cases {
		table, err := Build(s)
		require.NoError(t, err)
		assert.Equal(t, Coordinate{X: s.OriginX, Y: s.OriginY}, table.At(0, 0))
	}
}

func TestBuild_ColumnsStrictlyIncreasing(t *testing.T) {
	s := DefaultSpacing()
	s.Columns = 20
	table, err := Build(s)
	require.NoError(t, err)

	xs := table.XPositions()
	for i := 1; i < len(xs); i++ {
		assert.Greater(t, xs[i], xs[i-1], "column %d", i)
	}
}

func TestBuild_RowsAreDirectNotAccumulated(t *testing.T) {
	s := DefaultSpacing()
	s.OriginY = 0.7
	s.Row = 0.1
	s.Rows = 50
	table, err := Build(s)
	require.NoError(t, err)

	acc := s.OriginY
	for r, y := range table.YPositions() {
		assert.Equal(t, s.OriginY+float64(r)*s.Row, y, "row %d", r)
		assert.InDelta(t, acc, y, 1e-9, "row %d", r)
		acc += s.Row
	}
}

func TestBuild_Deterministic(t *testing.T) {
	s := Spacing{OriginX: 0.1, OriginY: 0.2, Margin: 0.3, Transition: 0.7, Standard: 1.1, Row: 0.9, Columns: 30, Rows: 9}
	a, err := Build(s)
	require.NoError(t, err)
	b, err := Build(s)
	require.NoError(t, err)

	if diff := cmp.Diff(a.Cells(), b.Cells()); diff != "" {
		t.Fatalf("tables differ (-first +second):\n%s", diff)
	}
}

func TestBuild_ColumnMajorOrder(t *testing.T) {
	table, err := Build(DefaultSpacing())
	require.NoError(t, err)

	cells := table.Cells()
	require.Len(t, cells, 12)
	xs, ys := table.XPositions(), table.YPositions()
	for c, col := range cells {
		require.Len(t, col, 8)
		for r, cell := range col {
			assert.Equal(t, Coordinate{X: xs[c], Y: ys[r]}, cell)
		}
	}
}

func TestBuild_DegenerateColumns(t *testing.T) {
	s := DefaultSpacing()
	s.OriginX = 5

	t.Run("one column", func(t *testing.T) {
		s := s
		s.Columns = 1
		table, err := Build(s)
		require.NoError(t, err)
		assert.Equal(t, []float64{5}, table.XPositions())
		assert.Equal(t, 8, table.Rows())
	})

	t.Run("zero columns", func(t *testing.T) {
		s := s
		s.Columns = 0
		table, err := Build(s)
		require.NoError(t, err)
		assert.Equal(t, []float64{5}, table.XPositions())
	})

	t.Run("two columns use margin", func(t *testing.T) {
		s := s
		s.Columns = 2
		table, err := Build(s)
		require.NoError(t, err)
		assert.Equal(t, []float64{5, 5 + DefaultMargin}, table.XPositions())
	})

	t.Run("three columns", func(t *testing.T) {
		s := s
		s.Columns = 3
		table, err := Build(s)
		require.NoError(t, err)
		assert.Equal(t, []float64{5, 35, 65}, table.XPositions())
	})

	t.Run("four columns", func(t *testing.T) {
		s := Spacing{Margin: 1, Transition: 10, Standard: 100, Row: 1, Columns: 4, Rows: 1}
		table, err := Build(s)
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 1, 11, 12}, table.XPositions())
	})
}

func TestGapDistance(t *testing.T) {
	s := Spacing{Margin: 1, Transition: 2, Standard: 3}
	var got []float64
	for g := 0; g < 11; g++ {
		got = append(got, s.GapDistance(g, 11))
	}
	assert.Equal(t, []float64{1, 2, 3, 3, 3, 3, 3, 3, 3, 2, 1}, got)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Spacing)
		field string
	}{
		{"negative margin", func(s *Spacing) { s.Margin = -1 }, "margin"},
		{"negative transition", func(s *Spacing) { s.Transition = -0.01 }, "transition"},
		{"negative standard", func(s *Spacing) { s.Standard = -37 }, "standard"},
		{"negative row", func(s *Spacing) { s.Row = -1 }, "row"},
		{"nan standard", func(s *Spacing) { s.Standard = math.NaN() }, "standard"},
		{"infinite origin", func(s *Spacing) { s.OriginX = math.Inf(1) }, "origin_x"},
		{"negative columns", func(s *Spacing) { s.Columns = -1 }, "columns"},
		{"zero rows", func(s *Spacing) { s.Rows = 0 }, "rows"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSpacing()
			tt.edit(&s)

			table, err := Build(s)
			require.Error(t, err)
			assert.Nil(t, table)
			assert.True(t, errors.Is(err, ErrInvalidSpacing))

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.field, cfgErr.Field)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidate_ZeroDistancesAllowed(t *testing.T) {
	s := Spacing{Columns: 12, Rows: 8}
	table, err := Build(s)
	require.NoError(t, err)
	for _, x := range table.XPositions() {
		assert.Zero(t, x)
	}
}

func TestTable_LookupAndCopies(t *testing.T) {
	table := MustBuild(DefaultSpacing())

	c, err := table.Lookup(11, 7)
	require.NoError(t, err)
	assert.InDelta(t, 409.18, c.X, 1e-9)
	assert.Equal(t, 259.0, c.Y)

	_, err = table.Lookup(12, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = table.Lookup(0, -1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	col := table.Column(3)
	col[0] = Coordinate{X: -1, Y: -1}
	xs := table.XPositions()
	xs[0] = 99
	assert.Equal(t, Coordinate{X: table.XPositions()[3], Y: 0}, table.At(3, 0))
	assert.Zero(t, table.XPositions()[0])

	lo, hi := table.Bounds()
	assert.Equal(t, Coordinate{}, lo)
	assert.InDelta(t, 409.18, hi.X, 1e-9)
	assert.Equal(t, 259.0, hi.Y)
	assert.Equal(t, DefaultSpacing(), table.Spacing())
}

func TestMustBuild_PanicsOnInvalidSpacing(t *testing.T) {
	assert.Panics(t, func() {
		MustBuild(Spacing{Margin: -1, Rows: 1})
	})
}
