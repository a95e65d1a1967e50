// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package batch converts many reflectance curves or mixtures
// concurrently through one [spectral.Engine].
package batch

import (
	"context"
	"log/slog"
	"runtime"

	"cogentcore.org/spectral"
	"cogentcore.org/spectral/base/grr"
	"cogentcore.org/spectral/km"
	"cogentcore.org/spectral/spectrum"
	"golang.org/x/sync/errgroup"
)

// Workers returns the number of workers to use for the given
// requested number: n if positive, otherwise the number of CPUs.
func Workers(n int) int {
	if n > 0 {
		return n
	}
	return runtime.GOMAXPROCS(0)
}

// run calls f for every index in [0, n) on up to workers goroutines,
// stopping at the first error or when the context is done.
func run(ctx context.Context, n, workers int, f func(i int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(Workers(workers))
	for i := 0; i < n; i++ {
		i := i
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return f(i)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Convert returns the colors of the given curves, in the same order,
// converted on up to workers goroutines (see [Workers]).
// The first conversion error cancels the remaining work.
func Convert(ctx context.Context, e *spectral.Engine, curves []spectrum.Curve, workers int) ([]spectral.Color, error) {
	out := make([]spectral.Color, len(curves))
	err := run(ctx, len(curves), workers, func(i int) error {
		c, err := e.Color(curves[i])
		if err != nil {
			return grr.Errorf("curve %d: %w", i, err)
		}
		out[i] = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	slog.Debug("converted curves", "n", len(curves), "workers", Workers(workers))
	return out, nil
}

// Mix returns the colors of the given mixtures, in the same order,
// mixed and converted on up to workers goroutines (see [Workers]).
// The first error cancels the remaining work.
func Mix(ctx context.Context, e *spectral.Engine, mixtures [][]km.Component, workers int) ([]spectral.Color, error) {
	out := make([]spectral.Color, len(mixtures))
	err := run(ctx, len(mixtures), workers, func(i int) error {
		c, err := e.MixColor(mixtures[i]...)
		if err != nil {
			return grr.Errorf("mixture %d: %w", i, err)
		}
		out[i] = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	slog.Debug("mixed colors", "n", len(mixtures), "workers", Workers(workers))
	return out, nil
}
