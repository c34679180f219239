// Package config loads the boardpos.yaml file that describes the board
// geometry and where the generated table goes.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"boardpos/internal/emit"
	"boardpos/internal/layout"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "boardpos.yaml"

// Config holds all boardpos configuration.
type Config struct {
	// Board geometry in millimetres
	Board layout.Spacing `yaml:"board"`

	Output OutputConfig `yaml:"output"`

	// Additional targets written next to Output, e.g. a JSON copy for host tools
	Outputs []OutputConfig `yaml:"outputs,omitempty"`

	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig configures the emitted table.
type OutputConfig struct {
	Path      string `yaml:"path"`   // "-" writes to stdout
	Format    string `yaml:"format"` // cpp, header, json, markdown
	Name      string `yaml:"name"`   // array identifier
	Precision int    `yaml:"precision"`
}

// WatchConfig configures `boardpos watch`.
type WatchConfig struct {
	Debounce string `yaml:"debounce"`
}

// DefaultConfig returns the reference board with output on stdout.
func DefaultConfig() *Config {
	return &Config{
		Board: layout.DefaultSpacing(),
		Output: OutputConfig{
			Path:      "-",
			Format:    string(emit.FormatCPP),
			Name:      emit.DefaultName,
			Precision: emit.DefaultPrecision,
		},
		Watch: WatchConfig{
			Debounce: "250ms",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies BOARDPOS_* environment variables.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("BOARDPOS_OUTPUT"); v != "" {
		c.Output.Path = v
	}
	if v := os.Getenv("BOARDPOS_FORMAT"); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv("BOARDPOS_NAME"); v != "" {
		c.Output.Name = v
	}
	if v := os.Getenv("BOARDPOS_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}

	// Calibrated origins differ per machine; the rest of the geometry does not.
	floats := []struct {
		env string
		dst *float64
	}{
		{"BOARDPOS_ORIGIN_X", &c.Board.OriginX},
		{"BOARDPOS_ORIGIN_Y", &c.Board.OriginY},
	}
	for _, f := range floats {
		v := os.Getenv(f.env)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", f.env, v, err)
		}
		*f.dst = parsed
	}
	return nil
}

// Validate checks the board geometry and output options.
func (c *Config) Validate() error {
	if err := c.Board.Validate(); err != nil {
		return err
	}
	for _, o := range c.AllOutputs() {
		if _, err := o.EmitOptions(); err != nil {
			return err
		}
	}
	if _, err := time.ParseDuration(c.Watch.Debounce); c.Watch.Debounce != "" && err != nil {
		return fmt.Errorf("invalid watch debounce %q: %w", c.Watch.Debounce, err)
	}
	return nil
}

// AllOutputs returns the primary output followed by the additional ones.
func (c *Config) AllOutputs() []OutputConfig {
	out := make([]OutputConfig, 0, 1+len(c.Outputs))
	out = append(out, c.Output)
	return append(out, c.Outputs...)
}

// EmitOptions converts an output section into emit options and checks them.
func (o OutputConfig) EmitOptions() (emit.Options, error) {
	f, err := emit.ParseFormat(o.Format)
	if err != nil {
		return emit.Options{}, err
	}
	opts := emit.Options{Format: f, Name: o.Name, Precision: o.Precision}
	if err := opts.Validate(); err != nil {
		return emit.Options{}, err
	}
	return opts, nil
}

// WritesToStdout reports whether the table goes to standard output.
func (o OutputConfig) WritesToStdout() bool {
	return o.Path == "" || o.Path == "-"
}

// GetDebounce returns the watch debounce as a duration.
func (c *Config) GetDebounce() time.Duration {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil || d <= 0 {
		return 250 * time.Millisecond
	}
	return d
}
