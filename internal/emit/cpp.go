package emit

import (
	"bytes"
	"fmt"

	"boardpos/internal/layout"
)

func renderCPP(b *bytes.Buffer, cells [][]layout.Coordinate, t *layout.Table, o Options) error {
	fmt.Fprintf(b, "constexpr float %s[%d][%d][2] = {\n", o.Name, len(cells), t.Rows())
	for c, col := range cells {
		b.WriteString("    {")
		for r, cell := range col {
			fmt.Fprintf(b, "{%sf, %sf}", formatValue(cell.X, o.Precision), formatValue(cell.Y, o.Precision))
			if r != len(col)-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("}")
		if c != len(cells)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("};\n")
	return nil
}

func renderHeader(b *bytes.Buffer, cells [][]layout.Coordinate, t *layout.Table, o Options) error {
	s := t.Spacing()
	p := o.Precision
	b.WriteString("// Code generated by boardpos; DO NOT EDIT.\n")
	fmt.Fprintf(b, "// columns=%d rows=%d origin=(%s, %s)\n", t.Columns(), t.Rows(), formatValue(s.OriginX, p), formatValue(s.OriginY, p))
	fmt.Fprintf(b, "// margin=%s transition=%s standard=%s row=%s\n",
		formatValue(s.Margin, p), formatValue(s.Transition, p), formatValue(s.Standard, p), formatValue(s.Row, p))
	b.WriteString("\n#pragma once\n\n")
	return renderCPP(b, cells, t, o)
}
