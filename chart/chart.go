// Copyright 2026 the Scitour authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package chart renders the tour's plots with gonum/plot.
package chart

import (
	"math"

	"github.com/grailbio/base/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// A Sample is one point on a convergence curve: a π estimate obtained
// from N samples.
type Sample struct {
	N        int
	Estimate float64
}

// Convergence plots the absolute error of each estimate against its
// sample count on log-log axes, together with the theoretical 1/√n
// reference curve, and saves the chart to path. The image format is
// chosen by the path's extension (e.g. .png, .svg, .pdf).
func Convergence(samples []Sample, path string) error {
	if len(samples) == 0 {
		return errors.E("chart.Convergence", errors.Invalid, "no samples")
	}
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = "Monte Carlo convergence"
	p.X.Label.Text = "samples"
	p.Y.Label.Text = "absolute error"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{}
	p.Y.Tick.Marker = plot.LogTicks{}

	observed := make(plotter.XYs, len(samples))
	reference := make(plotter.XYs, len(samples))
	for i, s := range samples {
		n := float64(s.N)
		e := math.Abs(s.Estimate - math.Pi)
		// Log scales cannot represent an exact hit.
		if e == 0 {
			e = 1e-10
		}
		observed[i].X, observed[i].Y = n, e
		reference[i].X, reference[i].Y = n, 1/math.Sqrt(n)
	}
	if err := plotutil.AddLinePoints(p, "observed", observed, "1/√n", reference); err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
