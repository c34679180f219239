package layout

import "fmt"

// Coordinate is a planar gantry position.
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Table is the column-major coordinate table produced by Build. It is never
// mutated after Build returns; accessors hand out copies.
type Table struct {
	spacing Spacing
	xs      []float64
	ys      []float64
	cells   [][]Coordinate
}

// Build validates s and computes the coordinate of every cell.
func Build(s Spacing) (*Table, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	xs := s.ColumnPositions()
	ys := s.RowPositions()

	cells := make([][]Coordinate, len(xs))
	for c, x := range xs {
		col := make([]Coordinate, len(ys))
		for r, y := range ys {
			col[r] = Coordinate{X: x, Y: y}
		}
		cells[c] = col
	}

	return &Table{spacing: s, xs: xs, ys: ys, cells: cells}, nil
}

// MustBuild is like Build but panics on invalid spacing.
func MustBuild(s Spacing) *Table {
	t, err := Build(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Columns returns the number of column groups in the table.
func (t *Table) Columns() int { return len(t.cells) }

// Rows returns the number of entries per column group.
func (t *Table) Rows() int { return len(t.ys) }

// Spacing returns the parameters the table was built from.
func (t *Table) Spacing() Spacing { return t.spacing }

// At returns the coordinate of cell (col, row). It panics when the indices
// are outside the grid, like a slice index would.
func (t *Table) At(col, row int) Coordinate {
	return t.cells[col][row]
}

// Lookup is the checked form of At.
func (t *Table) Lookup(col, row int) (Coordinate, error) {
	if col < 0 || col >= t.Columns() || row < 0 || row >= t.Rows() {
		return Coordinate{}, fmt.Errorf("%w: (%d, %d) on a %dx%d board", ErrOutOfRange, col, row, t.Columns(), t.Rows())
	}
	return t.cells[col][row], nil
}

// Column returns a copy of one column group.
func (t *Table) Column(col int) []Coordinate {
	out := make([]Coordinate, len(t.cells[col]))
	copy(out, t.cells[col])
	return out
}

// XPositions returns a copy of the column centers.
func (t *Table) XPositions() []float64 {
	out := make([]float64, len(t.xs))
	copy(out, t.xs)
	return out
}

// YPositions returns a copy of the row centers.
func (t *Table) YPositions() []float64 {
	out := make([]float64, len(t.ys))
	copy(out, t.ys)
	return out
}

// Cells returns a deep copy of the table indexed [column][row].
func (t *Table) Cells() [][]Coordinate {
	out := make([][]Coordinate, len(t.cells))
	for c := range t.cells {
		out[c] = t.Column(c)
	}
	return out
}

// Bounds returns the lowest and highest corner covered by the table.
func (t *Table) Bounds() (lo, hi Coordinate) {
	lo = Coordinate{X: t.xs[0], Y: t.ys[0]}
	hi = Coordinate{X: t.xs[len(t.xs)-1], Y: t.ys[len(t.ys)-1]}
	return lo, hi
}
