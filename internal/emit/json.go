package emit

import (
	"bytes"
	"encoding/json"
	"fmt"

	"boardpos/internal/layout"
)

type jsonTable struct {
	Name    string             `json:"name"`
	Columns int                `json:"columns"`
	Rows    int                `json:"rows"`
	Spacing layout.Spacing     `json:"spacing"`
	Cells   [][][2]json.Number `json:"cells"`
}

func renderJSON(b *bytes.Buffer, cells [][]layout.Coordinate, t *layout.Table, o Options) error {
	out := jsonTable{
		Name:    o.Name,
		Columns: len(cells),
		Rows:    t.Rows(),
		Spacing: t.Spacing(),
		Cells:   make([][][2]json.Number, len(cells)),
	}
	for c, col := range cells {
		group := make([][2]json.Number, len(col))
		for r, cell := range col {
			group[r] = [2]json.Number{
				json.Number(formatValue(cell.X, o.Precision)),
				json.Number(formatValue(cell.Y, o.Precision)),
			}
		}
		out.Cells[c] = group
	}

	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("failed to marshal table: %w", err)
	}
	b.Write(data)
	b.WriteByte('\n')
	return nil
}
