package main

import (
	"boardpos/internal/config"
	"boardpos/internal/layout"

	"github.com/spf13/cobra"
)

type geometryFlags struct {
	originX, originY                      float64
	margin, transition, standard, rowStep float64
	columns, rows                         int
}

type outputFlags struct {
	path      string
	format    string
	name      string
	precision int
}

func addGeometryFlags(cmd *cobra.Command, g *geometryFlags) {
	def := layout.DefaultSpacing()
	f := cmd.Flags()
	f.Float64Var(&g.originX, "origin-x", def.OriginX, "X of column 0 (mm)")
	f.Float64Var(&g.originY, "origin-y", def.OriginY, "Y of row 0 (mm)")
	f.Float64Var(&g.margin, "margin", def.Margin, "Distance of the two outermost column gaps")
	f.Float64Var(&g.transition, "transition", def.Transition, "Distance of the gaps next to the outermost ones")
	f.Float64Var(&g.standard, "standard", def.Standard, "Distance of every interior column gap")
	f.Float64Var(&g.rowStep, "row", def.Row, "Distance between rows")
	f.IntVar(&g.columns, "columns", def.Columns, "Number of columns")
	f.IntVar(&g.rows, "rows", def.Rows, "Number of rows")
}

func addOutputFlags(cmd *cobra.Command, o *outputFlags) {
	f := cmd.Flags()
	f.StringVarP(&o.path, "output", "o", "", `Output path, "-" for stdout (default from config)`)
	f.StringVarP(&o.format, "format", "f", "", "Output format: cpp, header, json, markdown")
	f.StringVar(&o.name, "name", "", "Array identifier")
	f.IntVar(&o.precision, "precision", 0, "Decimals per value")
}

// apply copies explicitly set flags over cfg.
func (g *geometryFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	set := func(name string, fn func()) {
		if f.Lookup(name) != nil && f.Changed(name) {
			fn()
		}
	}
	set("origin-x", func() { cfg.Board.OriginX = g.originX })
	set("origin-y", func() { cfg.Board.OriginY = g.originY })
	set("margin", func() { cfg.Board.Margin = g.margin })
	set("transition", func() { cfg.Board.Transition = g.transition })
	set("standard", func() { cfg.Board.Standard = g.standard })
	set("row", func() { cfg.Board.Row = g.rowStep })
	set("columns", func() { cfg.Board.Columns = g.columns })
	set("rows", func() { cfg.Board.Rows = g.rows })
}

func (o *outputFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	set := func(name string, fn func()) {
		if f.Lookup(name) != nil && f.Changed(name) {
			fn()
		}
	}
	set("output", func() { cfg.Output.Path = o.path })
	set("format", func() { cfg.Output.Format = o.format })
	set("name", func() { cfg.Output.Name = o.name })
	set("precision", func() { cfg.Output.Precision = o.precision })
}

// loadConfig resolves the configuration for cmd: file, env, then flags.
func loadConfig(cmd *cobra.Command, opts *cliOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	opts.geometry.apply(cmd, cfg)
	opts.output.apply(cmd, cfg)
	return cfg, nil
}
