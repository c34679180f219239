package emit

import (
	"bytes"
	"fmt"

	"boardpos/internal/layout"
)

// renderMarkdown lays the board out with one line per column index so the
// output reads in the same [column][row] order the firmware indexes by.
func renderMarkdown(b *bytes.Buffer, cells [][]layout.Coordinate, t *layout.Table, o Options) error {
	fmt.Fprintf(b, "# %s (%d x %d)\n\n", o.Name, len(cells), t.Rows())

	b.WriteString("| col |")
	for r := 0; r < t.Rows(); r++ {
		fmt.Fprintf(b, " row %d |", r)
	}
	b.WriteString("\n|---:|")
	for r := 0; r < t.Rows(); r++ {
		b.WriteString("---|")
	}
	b.WriteString("\n")

	for c, col := range cells {
		fmt.Fprintf(b, "| %d |", c)
		for _, cell := range col {
			fmt.Fprintf(b, " %s, %s |", formatValue(cell.X, o.Precision), formatValue(cell.Y, o.Precision))
		}
		b.WriteString("\n")
	}
	return nil
}
