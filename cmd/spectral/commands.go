// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/spectral"
	"cogentcore.org/spectral/base/grr"
	"cogentcore.org/spectral/base/iox/tomlx"
	"cogentcore.org/spectral/batch"
	"cogentcore.org/spectral/catalog"
	"cogentcore.org/spectral/cie"
	"cogentcore.org/spectral/km"
	"cogentcore.org/spectral/spectrum"
	"github.com/spf13/cobra"
)

func (a *app) listCmd() *cobra.Command {
	var (
		series       int
		transparency string
		all          bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the paints of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := catalog.Filter{Series: catalog.Series(series), Discontinued: all}
			if transparency != "" {
				var tr catalog.Transparency
				if err := tr.SetString(transparency); err != nil {
					return err
				}
				f.Transparency = &tr
			}
			o := a.output(cmd)
			for _, p := range a.catalog.Filter(f) {
				fmt.Fprintf(o, "%s %-20s %-22s %-8s %-16s %s", swatch(o, p.Hex), p.ID, p.Name, p.Series, p.Transparency, p.Hex)
				if p.Discontinued {
					fmt.Fprint(o, " (discontinued)")
				}
				fmt.Fprintln(o)
			}
			return nil
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&series, "series", 0, "only list paints of this price `tier` (1-9)")
	fl.StringVar(&transparency, "transparency", "", "only list paints of this transparency")
	fl.BoolVar(&all, "all", false, "include discontinued paints")
	return cmd
}

// parseComponent parses a NAME=CONC argument into a mixing component.
// The concentration defaults to 1 when omitted.
func (a *app) parseComponent(arg string) (km.Component, error) {
	key, conc, hasConc := strings.Cut(arg, "=")
	if strings.TrimSpace(key) == "" {
		return km.Component{}, grr.New("missing paint name in " + strconv.Quote(arg))
	}
	p, err := a.catalog.Find(key)
	if err != nil {
		return km.Component{}, err
	}
	c := 1.0
	if hasConc {
		c, err = strconv.ParseFloat(conc, 64)
		if err != nil {
			return km.Component{}, grr.Errorf("concentration of %s: %w", p.ID, err)
		}
	}
	return p.Component(c), nil
}

func (a *app) mixCmd() *cobra.Command {
	var curve bool
	cmd := &cobra.Command{
		Use:   "mix NAME=CONC...",
		Short: "Predict the color of a mixture of catalog paints",
		Long: "Mix predicts the color of a mixture of catalog paints, given by ID or name,\n" +
			"with relative concentrations. A paint without a concentration counts as 1.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comps := make([]km.Component, len(args))
			for i, arg := range args {
				c, err := a.parseComponent(arg)
				if err != nil {
					return err
				}
				comps[i] = c
			}
			col, err := a.engine.MixColor(comps...)
			if err != nil {
				return err
			}
			o := a.output(cmd)
			fmt.Fprintf(o, "%s %s\n%s\n%s\n", swatch(o, col.Hex), col.Hex, col.XYZ, col.LAB)
			if curve {
				for i, nm := range a.engine.Grid() {
					fmt.Fprintf(o, "%g\t%.4f\n", nm, col.Curve[i])
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&curve, "curve", false, "also print the reflectance curve of the mixture")
	return cmd
}

// lab returns the CIELAB color of the given catalog paint ID or
// name, or of the given #rrggbb color.
func (a *app) lab(key string) (cie.LAB, error) {
	if strings.HasPrefix(key, "#") {
		rgb, err := cie.ParseHex(key)
		if err != nil {
			return cie.LAB{}, err
		}
		return a.engine.XYZToLAB(rgb.XYZ()), nil
	}
	p, err := a.catalog.Find(key)
	if err != nil {
		return cie.LAB{}, err
	}
	col, err := a.engine.Color(p.Curve)
	if err != nil {
		return cie.LAB{}, err
	}
	return col.LAB, nil
}

func (a *app) diffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff A B",
		Short: "Print the CIEDE2000 difference of two paints or #rrggbb colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c1, err := a.lab(args[0])
			if err != nil {
				return err
			}
			c2, err := a.lab(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "dE00 %.4f\n", a.engine.Difference(c1, c2))
			return nil
		},
	}
}

// convert returns the colors of the given paints, computed concurrently.
func (a *app) convert(cmd *cobra.Command, ps []*catalog.Paint) ([]spectral.Color, error) {
	curves := make([]spectrum.Curve, len(ps))
	for i, p := range ps {
		curves[i] = p.Curve
	}
	return batch.Convert(cmd.Context(), a.engine, curves, a.cfg.Workers)
}

func (a *app) convertCmd() *cobra.Command {
	var save string
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Compute the colors of all catalog paints",
		Long: "Convert computes the XYZ, CIELAB and sRGB colors of every catalog paint\n" +
			"from its reflectance curve. Paints whose computed color differs from\n" +
			"their display color are marked with a *.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ps := a.catalog.Filter(catalog.Filter{Discontinued: true})
			cols, err := a.convert(cmd, ps)
			if err != nil {
				return err
			}
			o := a.output(cmd)
			for i, p := range ps {
				col := cols[i]
				mark := ""
				if col.Hex != p.Hex {
					mark = " *"
				}
				fmt.Fprintf(o, "%s %-20s %s %s%s\n", swatch(o, col.Hex), p.ID, col.Hex, col.LAB, mark)
			}
			if save == "" {
				return nil
			}
			c := *a.catalog
			c.Paints = slices.Clone(c.Paints)
			for i := range c.Paints {
				c.Paints[i].Hex = cols[i].Hex
			}
			return c.Save(save)
		},
	}
	cmd.Flags().StringVar(&save, "save", "", "save the catalog with the computed display colors to this YAML `file`")
	return cmd
}

func (a *app) matchCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "match #rrggbb",
		Short: "Find the catalog paint closest to a color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := a.lab(args[0])
			if err != nil {
				return err
			}
			ps := a.catalog.Filter(catalog.Filter{Discontinued: all})
			cols, err := a.convert(cmd, ps)
			if err != nil {
				return err
			}
			labs := make([]cie.LAB, len(cols))
			for i, c := range cols {
				labs[i] = c.LAB
			}
			i, de := a.engine.Nearest(target, labs...)
			if i < 0 {
				return grr.Errorf("%w: no paints to match", catalog.ErrNotFound)
			}
			o := a.output(cmd)
			fmt.Fprintf(o, "%s %s %s dE00 %.4f\n", swatch(o, cols[i].Hex), ps[i].ID, cols[i].Hex, de)
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include discontinued paints")
	return cmd
}

func (a *app) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the current configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tomlx.Write(a.cfg, cmd.OutOrStdout())
		},
	}
}
