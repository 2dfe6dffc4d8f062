// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kde2d computes weighted two-dimensional kernel density
// estimates sampled on a regular grid.
//
// The kernel is a bivariate Gaussian whose covariance is the weighted
// sample covariance of the data scaled by Scott's factor,
// neff^(-1/6), where neff = (Σw)²/Σw² is the effective sample size.
// Contour levels follow the iso-proportion convention: a level q in
// [0, 1] is the density below which a fraction q of the estimate's
// mass lies.
package kde2d

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// Window is an axis-aligned rectangle in data coordinates.
type Window struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Contains reports whether (x, y) lies in w, inclusive.
func (w Window) Contains(x, y float64) bool {
	return w.XMin <= x && x <= w.XMax && w.YMin <= y && y <= w.YMax
}

// minBandwidth is used for an axis whose data has no spread, such as
// a single point. It is not scaled by Adjust.
const minBandwidth = 0.05

// Estimator configures a density estimate.
type Estimator struct {
	// Window is the region the density is sampled over.
	Window Window

	// NX and NY are the number of grid cells along each axis. If
	// zero, they default to 100 and 125.
	NX, NY int

	// Adjust scales Scott's factor. Values below 1 give a less
	// smooth estimate. If zero, it defaults to 1.
	Adjust float64
}

// Grid is a density estimate sampled at the centers of a regular
// grid of cells.
type Grid struct {
	Window Window
	NX, NY int

	// Xs and Ys are the cell centers along each axis.
	Xs, Ys []float64

	// Z holds the density in row-major order: Z[j*NX+i] is the
	// density at (Xs[i], Ys[j]).
	Z []float64

	// BandwidthX and BandwidthY are the kernel standard
	// deviations along each axis, and Correlation is the
	// correlation between them.
	BandwidthX, BandwidthY float64
	Correlation            float64

	// N is the number of points that contributed to the estimate.
	N int
}

// Estimate computes the density of the points (xs[i], ys[i]). If ws
// is non-nil, ws[i] weights point i. Points with a non-finite
// coordinate, or a non-finite or non-positive weight, are skipped. The
// weights are normalized, so the estimate integrates to 1 over the
// plane.
//
// If no points remain, or their total weight is 0, the returned grid
// is all zeros and Empty reports true.
func (e Estimator) Estimate(xs, ys, ws []float64) *Grid {
	if e.NX <= 0 {
		e.NX = 100
	}
	if e.NY <= 0 {
		e.NY = 125
	}
	if e.Adjust == 0 {
		e.Adjust = 1
	}
	w := e.Window
	dx := (w.XMax - w.XMin) / float64(e.NX)
	dy := (w.YMax - w.YMin) / float64(e.NY)
	g := &Grid{
		Window: w,
		NX:     e.NX,
		NY:     e.NY,
		Xs:     vec.Linspace(w.XMin+dx/2, w.XMax-dx/2, e.NX),
		Ys:     vec.Linspace(w.YMin+dy/2, w.YMax-dy/2, e.NY),
		Z:      make([]float64, e.NX*e.NY),
	}

	// Gather usable points.
	var px, py, pw []float64
	total := 0.0
	for i := range xs {
		x, y, wt := xs[i], ys[i], 1.0
		if ws != nil {
			wt = ws[i]
		}
		if !finite(x) || !finite(y) || !finite(wt) || wt <= 0 {
			continue
		}
		px, py, pw = append(px, x), append(py, y), append(pw, wt)
		total += wt
	}
	g.N = len(px)
	if g.N == 0 || total == 0 {
		return g
	}
	for i := range pw {
		pw[i] /= total
	}

	g.BandwidthX, g.BandwidthY, g.Correlation = bandwidth(px, py, pw, e.Adjust)

	// Tabulate the standardized offsets along each axis once.
	// With u = dx/σx and v = dy/σy, the kernel is
	// exp(-(u² - 2ρuv + v²) / 2(1-ρ²)) / (2π σx σy √(1-ρ²)).
	rho := g.Correlation
	omr := 1 - rho*rho
	norm := 1 / (2 * math.Pi * g.BandwidthX * g.BandwidthY * math.Sqrt(omr))
	ux := offsets(g.Xs, px, g.BandwidthX)
	uy := offsets(g.Ys, py, g.BandwidthY)
	n := len(px)
	for j := 0; j < g.NY; j++ {
		vj := uy[j*n : (j+1)*n]
		row := g.Z[j*g.NX : (j+1)*g.NX]
		for i := range row {
			ui := ux[i*n : (i+1)*n]
			sum := 0.0
			for p, wt := range pw {
				u, v := ui[p], vj[p]
				sum += wt * math.Exp(-(u*u-2*rho*u*v+v*v)/(2*omr))
			}
			row[i] = sum * norm
		}
	}
	return g
}

// bandwidth returns the kernel standard deviations and correlation
// for the points (xs[i], ys[i]) with normalized weights ws.
//
// The data covariance is the unbiased weighted covariance,
// Σw(x-μx)(y-μy) / (1 - Σw²), and the kernel covariance is that
// scaled by (neff^(-1/6) * adjust)².
func bandwidth(xs, ys, ws []float64, adjust float64) (bx, by, rho float64) {
	mx := stats.Sample{Xs: xs, Weights: ws}.Mean()
	my := stats.Sample{Xs: ys, Weights: ws}.Mean()
	var sxx, syy, sxy, sw2 float64
	for i, w := range ws {
		dx, dy := xs[i]-mx, ys[i]-my
		sxx += w * dx * dx
		syy += w * dy * dy
		sxy += w * dx * dy
		sw2 += w * w
	}
	// A single effective point has no spread.
	if fact := 1 - sw2; fact > 0 {
		sxx, syy, sxy = sxx/fact, syy/fact, sxy/fact
	} else {
		sxx, syy, sxy = 0, 0, 0
	}
	factor := math.Pow(1/sw2, -1.0/6) * adjust

	bx, by = math.Sqrt(sxx)*factor, math.Sqrt(syy)*factor
	degenerate := false
	if !finite(bx) || bx <= 0 {
		bx, degenerate = minBandwidth, true
	}
	if !finite(by) || by <= 0 {
		by, degenerate = minBandwidth, true
	}
	if !degenerate {
		rho = sxy / math.Sqrt(sxx*syy)
	}
	// Collinear data has a singular covariance; drop the
	// correlation rather than collapse the kernel onto a line.
	if !finite(rho) || math.Abs(rho) > 1-1e-9 {
		rho = 0
	}
	return bx, by, rho
}

// offsets returns u where u[i*len(pts)+p] is (at[i]-pts[p])/bw.
func offsets(at, pts []float64, bw float64) []float64 {
	u := make([]float64, len(at)*len(pts))
	for i, a := range at {
		for p, x := range pts {
			u[i*len(pts)+p] = (a - x) / bw
		}
	}
	return u
}

// Empty reports whether no mass contributed to g.
func (g *Grid) Empty() bool {
	return g.N == 0 || g.Max() == 0
}

// At returns the density at cell (i, j).
func (g *Grid) At(i, j int) float64 {
	return g.Z[j*g.NX+i]
}

// Max returns the largest density in g.
func (g *Grid) Max() float64 {
	max := 0.0
	for _, z := range g.Z {
		if z > max {
			max = z
		}
	}
	return max
}

// CellArea returns the area of one grid cell.
func (g *Grid) CellArea() float64 {
	w := g.Window
	return (w.XMax - w.XMin) / float64(g.NX) * (w.YMax - w.YMin) / float64(g.NY)
}

// Integral returns the density mass that falls inside g's window.
func (g *Grid) Integral() float64 {
	sum := 0.0
	for _, z := range g.Z {
		sum += z
	}
	return sum * g.CellArea()
}

// MassLevels converts iso-proportions to density levels. For each q
// in qs, the result is the smallest sampled density d such that the
// cells with density below d hold at most a fraction q of the grid's
// mass. Each q is clamped to [0, 1]. If g is empty, every level is
// +Inf so that nothing lies above it.
func (g *Grid) MassLevels(qs ...float64) []float64 {
	levels := make([]float64, len(qs))
	if g.Empty() {
		for i := range levels {
			levels[i] = math.Inf(1)
		}
		return levels
	}

	sorted := append([]float64(nil), g.Z...)
	sort.Float64s(sorted)
	cum := make([]float64, len(sorted))
	sum := 0.0
	for i, z := range sorted {
		sum += z
		cum[i] = sum
	}
	for i, q := range qs {
		q = math.Max(0, math.Min(1, q))
		k := sort.SearchFloat64s(cum, q*sum)
		if k >= len(sorted) {
			k = len(sorted) - 1
		}
		levels[i] = sorted[k]
	}
	return levels
}

// Bands quantizes g into filled-contour bands. The band edges are the
// density levels of levels iso-proportions evenly spaced from thresh
// to 1. Each cell of the result holds the lower edge of the band the
// cell's density falls in, or NaN if it is below the lowest edge.
func (g *Grid) Bands(levels int, thresh float64) []float64 {
	if levels < 1 {
		levels = 1
	}
	qs := vec.Linspace(thresh, 1, levels)
	edges := g.MassLevels(qs...)

	out := make([]float64, len(g.Z))
	for c, z := range g.Z {
		k := sort.SearchFloat64s(edges, z)
		// edges[k] >= z. Step down unless z is exactly on an
		// edge.
		if k == len(edges) || edges[k] > z {
			k--
		}
		if k < 0 || z == 0 {
			out[c] = math.NaN()
			continue
		}
		out[c] = edges[k]
	}
	return out
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
