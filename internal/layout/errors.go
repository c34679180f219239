package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSpacing is wrapped by every ConfigError.
	ErrInvalidSpacing = errors.New("invalid spacing")

	// ErrOutOfRange is returned by Table.Lookup for indices outside the grid.
	ErrOutOfRange = errors.New("cell index out of range")
)

// ConfigError names the spacing parameter that failed validation.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s=%v %s", ErrInvalidSpacing, e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidSpacing
}
