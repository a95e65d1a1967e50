// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command spectral predicts the colors of paint mixtures with
// Kubelka-Munk theory and compares colors with CIEDE2000.
package main

import (
	"context"
	"os"
	"os/signal"

	"cogentcore.org/spectral/base/grr"
	"cogentcore.org/spectral/logx"
)

func main() {
	logx.SetDefaultLogger()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		grr.Log(err)
		os.Exit(1)
	}
}
