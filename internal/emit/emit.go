// Package emit renders a layout.Table as text for the firmware build.
//
// The default cpp format reproduces the board_pos definition the controller
// compiles in, byte for byte. Every value is printed with a fixed number of
// decimals so regenerating from the same spacing never changes the output.
package emit

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"boardpos/internal/layout"
)

// Format selects a renderer.
type Format string

const (
	// FormatCPP is the bare constexpr array definition.
	FormatCPP Format = "cpp"
	// FormatHeader is FormatCPP behind a generated-file banner and #pragma once.
	FormatHeader Format = "header"
	// FormatJSON is a single-line JSON document with fixed-precision numbers.
	FormatJSON Format = "json"
	// FormatMarkdown is a table with one line per column index.
	FormatMarkdown Format = "markdown"
)

const (
	// DefaultName is the array identifier used when Options.Name is empty.
	DefaultName = "board_pos"
	// DefaultPrecision is the decimals per value used when Options.Precision is 0.
	DefaultPrecision = 3
	maxPrecision     = 9
)

var (
	// ErrUnknownFormat is returned for a format with no renderer.
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrMalformedTable is returned for a nil, empty or ragged table.
	ErrMalformedTable = errors.New("malformed coordinate table")
	// ErrBadOption is returned for an invalid name or precision.
	ErrBadOption = errors.New("invalid emit option")
)

type renderFunc func(b *bytes.Buffer, cells [][]layout.Coordinate, t *layout.Table, o Options) error

var renderers = map[Format]renderFunc{
	FormatCPP:      renderCPP,
	FormatHeader:   renderHeader,
	FormatJSON:     renderJSON,
	FormatMarkdown: renderMarkdown,
}

// Formats lists the supported formats in stable order.
func Formats() []string {
	names := make([]string, 0, len(renderers))
	for f := range renderers {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatCPP, nil
	}
	if _, ok := renderers[f]; !ok {
		return "", fmt.Errorf("%w: %q (valid: %s)", ErrUnknownFormat, s, strings.Join(Formats(), ", "))
	}
	return f, nil
}

// Options controls rendering. Zero values select the defaults.
type Options struct {
	Format    Format
	Name      string // array identifier in cpp/header output
	Precision int    // decimals per value, 1..9
}

// Validate reports whether o can be rendered.
func (o Options) Validate() error {
	_, err := o.withDefaults()
	return err
}

func (o Options) withDefaults() (Options, error) {
	if o.Format == "" {
		o.Format = FormatCPP
	}
	if _, ok := renderers[o.Format]; !ok {
		return o, fmt.Errorf("%w: %q", ErrUnknownFormat, o.Format)
	}
	if o.Name == "" {
		o.Name = DefaultName
	}
	if !validIdentifier(o.Name) {
		return o, fmt.Errorf("%w: name %q is not a C identifier", ErrBadOption, o.Name)
	}
	if o.Precision == 0 {
		o.Precision = DefaultPrecision
	}
	if o.Precision < 1 || o.Precision > maxPrecision {
		return o, fmt.Errorf("%w: precision %d outside 1..%d", ErrBadOption, o.Precision, maxPrecision)
	}
	return o, nil
}

// Render returns the complete text for t.
func Render(t *layout.Table, opts Options) ([]byte, error) {
	o, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	cells, err := checkedCells(t)
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	if err := renderers[o.Format](&b, cells, t, o); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Write renders t and writes it to w. Nothing is written when rendering fails.
func Write(w io.Writer, t *layout.Table, opts Options) error {
	data, err := Render(t, opts)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func checkedCells(t *layout.Table) ([][]layout.Coordinate, error) {
	if t == nil || t.Columns() == 0 || t.Rows() == 0 {
		return nil, ErrMalformedTable
	}
	cells := t.Cells()
	for c, col := range cells {
		if len(col) != t.Rows() {
			return nil, fmt.Errorf("%w: column %d has %d rows, want %d", ErrMalformedTable, c, len(col), t.Rows())
		}
	}
	return cells, nil
}

func formatValue(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

func validIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return s != ""
}
