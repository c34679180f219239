package ui

import (
	"fmt"
	"strings"

	"boardpos/internal/layout"

	"github.com/charmbracelet/lipgloss"
)

// IsRail reports whether col is one of the staging columns outside the
// playing field. Boards of four columns or fewer have no rails.
func IsRail(col, columns int) bool {
	return columns > 4 && (col < 2 || col >= columns-2)
}

// RenderGrid draws the board seen from above with row 0 at the bottom. When
// cursor is non-nil that cell is highlighted.
func RenderGrid(t *layout.Table, styles Styles, cursor *[2]int) string {
	var lines []string

	for row := t.Rows() - 1; row >= 0; row-- {
		cells := []string{styles.Axis.Render(fmt.Sprintf("r%d", row))}
		for col := 0; col < t.Columns(); col++ {
			c := t.At(col, row)
			text := fmt.Sprintf("%.2f\n%.2f", c.X, c.Y)
			cells = append(cells, cellStyle(styles, col, row, t.Columns(), cursor).Render(text))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	axis := []string{styles.Axis.Render("")}
	for col := 0; col < t.Columns(); col++ {
		axis = append(axis, styles.Axis.Render(fmt.Sprintf("c%d", col)))
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, axis...))

	return strings.Join(lines, "\n")
}

func cellStyle(styles Styles, col, row, columns int, cursor *[2]int) lipgloss.Style {
	switch {
	case cursor != nil && cursor[0] == col && cursor[1] == row:
		return styles.Cursor
	case IsRail(col, columns):
		return styles.Rail
	case (col+row)%2 == 0:
		return styles.Dark
	default:
		return styles.Light
	}
}

// RenderPreview is RenderGrid with a title and the board extent.
func RenderPreview(t *layout.Table, styles Styles) string {
	lo, hi := t.Bounds()
	title := styles.Title.Render(fmt.Sprintf("board %d x %d", t.Columns(), t.Rows()))
	status := styles.Status.Render(fmt.Sprintf("x %.3f .. %.3f   y %.3f .. %.3f", lo.X, hi.X, lo.Y, hi.Y))
	return lipgloss.JoinVertical(lipgloss.Left, title, RenderGrid(t, styles, nil), status)
}
