// Package ui renders coordinate tables in the terminal.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	LightForeground = lipgloss.Color("#101F38")
	LightSquare     = lipgloss.Color("#e1e4e8")
	DarkSquareLight = lipgloss.Color("#8d99ae")
	LightRail       = lipgloss.Color("#d6dae0")

	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkSquare     = lipgloss.Color("#2a3850")
	DarkSquareDark = lipgloss.Color("#141d2b")
	DarkRail       = lipgloss.Color("#1e2a3d")

	Accent = lipgloss.Color("#8BC34A")
	Muted  = lipgloss.Color("#7a869a")
)

// Theme holds the board colors.
type Theme struct {
	Foreground  lipgloss.Color
	LightSquare lipgloss.Color
	DarkSquare  lipgloss.Color
	Rail        lipgloss.Color
	IsDark      bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Foreground:  LightForeground,
		LightSquare: LightSquare,
		DarkSquare:  DarkSquareLight,
		Rail:        LightRail,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Foreground:  DarkForeground,
		LightSquare: DarkSquare,
		DarkSquare:  DarkSquareDark,
		Rail:        DarkRail,
		IsDark:      true,
	}
}

// DetectTheme picks dark mode from COLORFGBG or BOARDPOS_DARK_MODE=1.
func DetectTheme() Theme {
	if parts := strings.Split(os.Getenv("COLORFGBG"), ";"); len(parts) == 2 {
		if bg, err := strconv.Atoi(parts[1]); err == nil && ((bg >= 0 && bg <= 6) || bg == 8) {
			return DarkTheme()
		}
	}
	if os.Getenv("BOARDPOS_DARK_MODE") == "1" {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds the styled components.
type Styles struct {
	Theme Theme

	Title  lipgloss.Style
	Axis   lipgloss.Style
	Light  lipgloss.Style
	Dark   lipgloss.Style
	Rail   lipgloss.Style
	Cursor lipgloss.Style
	Status lipgloss.Style
}

const cellWidth = 9

// NewStyles creates styles for theme.
func NewStyles(theme Theme) Styles {
	cell := lipgloss.NewStyle().
		Width(cellWidth).
		Align(lipgloss.Center).
		Foreground(theme.Foreground)

	return Styles{
		Theme:  theme,
		Title:  lipgloss.NewStyle().Bold(true).Foreground(Accent).MarginBottom(1),
		Axis:   lipgloss.NewStyle().Foreground(Muted).Width(cellWidth).Align(lipgloss.Center),
		Light:  cell.Background(theme.LightSquare),
		Dark:   cell.Background(theme.DarkSquare),
		Rail:   cell.Background(theme.Rail).Foreground(Muted),
		Cursor: cell.Background(Accent).Foreground(lipgloss.Color("#101F38")).Bold(true),
		Status: lipgloss.NewStyle().Foreground(Muted).MarginTop(1),
	}
}

// DefaultStyles returns styles for the detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}
