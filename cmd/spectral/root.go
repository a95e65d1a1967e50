// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/spectral"
	"cogentcore.org/spectral/base/grr"
	"cogentcore.org/spectral/catalog"
	"cogentcore.org/spectral/config"
	"cogentcore.org/spectral/logx"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// app is the state shared by all commands, set up
// from the persistent flags before any command runs.
type app struct {
	configFile string
	vv, v, q   bool

	// options for the terminal output of color swatches
	termOpts []termenv.OutputOption

	cfg     *config.Config
	engine  *spectral.Engine
	catalog *catalog.Catalog
}

func newRootCmd(termOpts ...termenv.OutputOption) *cobra.Command {
	a := &app{termOpts: termOpts}
	root := &cobra.Command{
		Use:               "spectral",
		Short:             "Predict paint mixtures and compare colors with Kubelka-Munk theory",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "TOML config `file` for the engine")
	pf.BoolVarP(&a.v, "verbose", "v", false, "show informational log messages")
	pf.BoolVar(&a.vv, "vv", false, "show debug log messages")
	pf.BoolVarP(&a.q, "quiet", "q", false, "only show errors")

	root.AddCommand(a.listCmd(), a.mixCmd(), a.diffCmd(), a.convertCmd(), a.matchCmd(), a.configCmd())
	return root
}

// setup sets the log level and loads the config, engine and catalog.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	logx.UserLevel = logx.LevelFromFlags(a.vv, a.v, a.q)

	a.cfg = config.Default()
	if a.configFile != "" {
		cfg, err := config.Open(a.configFile)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	e, err := a.cfg.Engine()
	if err != nil {
		return err
	}
	a.engine = e

	if a.cfg.Catalog == "" {
		a.catalog = catalog.Default()
	} else {
		a.catalog, err = catalog.Load(os.DirFS(filepath.Dir(a.cfg.Catalog)), filepath.Base(a.cfg.Catalog))
		if err != nil {
			return err
		}
	}
	g, err := a.catalog.Grid()
	if err != nil {
		return err
	}
	if !g.Equal(e.Grid()) {
		return grr.Errorf("catalog grid %g-%g nm (%d samples) does not match the engine grid %g-%g nm (%d samples)",
			g.Start(), g.End(), g.Len(), e.Grid().Start(), e.Grid().End(), e.Grid().Len())
	}
	slog.Info("loaded catalog", "paints", len(a.catalog.Paints), "grid", g.Len())
	return nil
}

// output returns the terminal output of the given command.
func (a *app) output(cmd *cobra.Command) *termenv.Output {
	return termenv.NewOutput(cmd.OutOrStdout(), a.termOpts...)
}

// swatch returns a block of the given color, drawn as its
// background when the terminal supports colors.
func swatch(o *termenv.Output, hex string) string {
	return o.String("  ").Background(o.Color(hex)).String()
}
