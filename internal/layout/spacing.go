package layout

import "math"

const (
	// DefaultColumns covers the 8 playing files plus two staging rails per side.
	DefaultColumns = 12
	DefaultRows    = 8

	DefaultMargin     = 30.0
	DefaultTransition = 45.09
	DefaultStandard   = 37.0
	DefaultRow        = 37.0
)

// Spacing holds every parameter Build needs. Distances share one unit (mm).
type Spacing struct {
	OriginX float64 `yaml:"origin_x" json:"origin_x"`
	OriginY float64 `yaml:"origin_y" json:"origin_y"`

	Margin     float64 `yaml:"margin" json:"margin"`         // gaps 0 and last
	Transition float64 `yaml:"transition" json:"transition"` // gaps 1 and last-1
	Standard   float64 `yaml:"standard" json:"standard"`     // interior gaps
	Row        float64 `yaml:"row" json:"row"`

	Columns int `yaml:"columns" json:"columns"`
	Rows    int `yaml:"rows" json:"rows"`
}

// DefaultSpacing returns the geometry of the reference board.
func DefaultSpacing() Spacing {
	return Spacing{
		Margin:     DefaultMargin,
		Transition: DefaultTransition,
		Standard:   DefaultStandard,
		Row:        DefaultRow,
		Columns:    DefaultColumns,
		Rows:       DefaultRows,
	}
}

// Validate reports the first parameter that cannot produce a table.
func (s Spacing) Validate() error {
	origins := []struct {
		name string
		v    float64
	}{
		{"origin_x", s.OriginX},
		{"origin_y", s.OriginY},
	}
	for _, o := range origins {
		if math.IsNaN(o.v) || math.IsInf(o.v, 0) {
			return &ConfigError{Field: o.name, Value: o.v, Reason: "must be finite"}
		}
	}

	distances := []struct {
		name string
		v    float64
	}{
		{"margin", s.Margin},
		{"transition", s.Transition},
		{"standard", s.Standard},
		{"row", s.Row},
	}
	for _, d := range distances {
		if math.IsNaN(d.v) || math.IsInf(d.v, 0) {
			return &ConfigError{Field: d.name, Value: d.v, Reason: "must be finite"}
		}
		if d.v < 0 {
			return &ConfigError{Field: d.name, Value: d.v, Reason: "must not be negative"}
		}
	}

	if s.Columns < 0 {
		return &ConfigError{Field: "columns", Value: s.Columns, Reason: "must not be negative"}
	}
	if s.Rows < 1 {
		return &ConfigError{Field: "rows", Value: s.Rows, Reason: "must be at least 1"}
	}
	return nil
}

// GapDistance returns the step applied at gap g of a board with the given
// number of gaps. The boundary check runs first, so with a single gap (two
// columns) or two gaps (three columns) every gap is a margin gap.
func (s Spacing) GapDistance(g, gaps int) float64 {
	last := gaps - 1
	switch {
	case g == 0 || g == last:
		return s.Margin
	case g == 1 || g == last-1:
		return s.Transition
	default:
		return s.Standard
	}
}

// ColumnPositions returns the x coordinate of every column center. Boards
// with fewer than two columns have no gaps and yield OriginX alone.
func (s Spacing) ColumnPositions() []float64 {
	gaps := s.Columns - 1
	if gaps < 0 {
		gaps = 0
	}
	xs := make([]float64, 0, gaps+1)
	x := s.OriginX
	xs = append(xs, x)
	for g := 0; g < gaps; g++ {
		x += s.GapDistance(g, gaps)
		xs = append(xs, x)
	}
	return xs
}

// RowPositions returns the y coordinate of every row center.
func (s Spacing) RowPositions() []float64 {
	ys := make([]float64, s.Rows)
	for r := range ys {
		ys[r] = s.OriginY + float64(r)*s.Row
	}
	return ys
}
