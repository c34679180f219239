// Package pipeline runs the generate flow shared by the CLI commands:
// validate the configuration, build the table, render every target, then
// write or check them.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"boardpos/internal/config"
	"boardpos/internal/emit"
	"boardpos/internal/layout"
	"boardpos/internal/logging"

	"golang.org/x/sync/errgroup"
)

// maxParallelWrites bounds concurrent file targets.
const maxParallelWrites = 4

// ErrNothingToCheck is returned by a check run with only stdout targets.
var ErrNothingToCheck = errors.New("no file outputs to check")

// Target is one rendered output.
type Target struct {
	Path    string // "-" for stdout
	Options emit.Options
	Data    []byte
}

// Stdout reports whether the target goes to standard output.
func (t Target) Stdout() bool {
	return t.Path == "" || t.Path == "-"
}

// Result summarizes a run.
type Result struct {
	Table   *layout.Table
	Targets []Target
	Written []string // file paths replaced
	Checked []string // file paths found up to date
}

// Render validates cfg, builds the table and renders every output. Nothing
// touches the filesystem, so a failure here leaves existing files alone.
func Render(cfg *config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	table, err := layout.Build(cfg.Board)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	lo, hi := table.Bounds()
	logging.Get(logging.CategoryBuild).Debugw("table built",
		"columns", table.Columns(), "rows", table.Rows(),
		"min_x", lo.X, "min_y", lo.Y, "max_x", hi.X, "max_y", hi.Y)

	res := &Result{Table: table}
	for _, out := range cfg.AllOutputs() {
		opts, err := out.EmitOptions()
		if err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		data, err := emit.Render(table, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", out.Path, err)
		}
		res.Targets = append(res.Targets, Target{Path: out.Path, Options: opts, Data: data})
	}
	return res, nil
}

// Run renders cfg and writes every target. Stdout targets go to stdout in
// configuration order; file targets are replaced atomically.
func Run(ctx context.Context, cfg *config.Config, stdout io.Writer) (*Result, error) {
	res, err := Render(cfg)
	if err != nil {
		return nil, err
	}

	for _, t := range res.Targets {
		if !t.Stdout() {
			continue
		}
		if _, err := stdout.Write(t.Data); err != nil {
			return nil, fmt.Errorf("failed to write stdout: %w", err)
		}
	}

	written, err := eachFile(ctx, res.Targets, func(t Target) error {
		if err := emit.WriteFile(t.Path, t.Data); err != nil {
			return err
		}
		logging.Get(logging.CategoryEmit).Infow("table written", "path", t.Path, "format", t.Options.Format, "bytes", len(t.Data))
		return nil
	})
	res.Written = written
	return res, err
}

// Check renders cfg and compares every file target with what is on disk.
func Check(ctx context.Context, cfg *config.Config) (*Result, error) {
	res, err := Render(cfg)
	if err != nil {
		return nil, err
	}

	files := 0
	for _, t := range res.Targets {
		if !t.Stdout() {
			files++
		}
	}
	if files == 0 {
		return nil, ErrNothingToCheck
	}

	checked, err := eachFile(ctx, res.Targets, func(t Target) error {
		return emit.Check(t.Path, t.Data)
	})
	res.Checked = checked
	return res, err
}

// eachFile runs fn for every file target and returns the paths that
// succeeded, in target order.
func eachFile(ctx context.Context, targets []Target, fn func(Target) error) ([]string, error) {
	ok := make([]bool, len(targets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelWrites)
	for i, t := range targets {
		if t.Stdout() {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(t); err != nil {
				return err
			}
			ok[i] = true
			return nil
		})
	}
	err := g.Wait()

	var done []string
	for i, t := range targets {
		if ok[i] {
			done = append(done, t.Path)
		}
	}
	return done, err
}
