// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image/color"
	"math"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"

	"github.com/pitchlab/matchup/internal/kde2d"
	"github.com/pitchlab/matchup/matchup"
)

var zoneColor = color.Gray{40}

// HeatmapPlot returns a plot of a weighted heatmap panel.
func HeatmapPlot(p matchup.HeatmapPanel) *gg.Plot {
	xs, ys, fills := tiles(p.Grid, func(c int) color.Color {
		return heatColor(p.Bands[c], p.Range)
	})
	tab := new(table.Builder).
		Add("plate_x", xs).
		Add("plate_z", ys).
		Add("fill", fills).
		Done()
	plot := newPlot(tab, p.Grid.Window)
	plot.Add(gg.LayerTiles{X: "plate_x", Y: "plate_z", Fill: "fill"})
	return finish(plot, p.Title, p.Grid.Window)
}

// MixPlot returns a plot overlaying each pitch type of a pitch mix.
func MixPlot(m matchup.MixPanel) *gg.Plot {
	var xs, ys []float64
	var fills []color.Color
	var types []string
	for k, s := range m.Types {
		base, max, bands := mixColor(k), s.Grid.Max(), s.Bands
		x, y, f := tiles(s.Grid, func(c int) color.Color {
			return mixShade(base, bands[c], max)
		})
		xs, ys, fills = append(xs, x...), append(ys, y...), append(fills, f...)
		for range x {
			types = append(types, s.PitchType)
		}
	}
	tab := new(table.Builder).
		Add("plate_x", xs).
		Add("plate_z", ys).
		Add("fill", fills).
		Add("pitch_type", types).
		Done()
	plot := newPlot(tab, matchup.MixWindow)
	plot.GroupBy("pitch_type")
	plot.Add(gg.LayerTiles{X: "plate_x", Y: "plate_z", Fill: "fill"})
	return finish(plot, m.Title, matchup.MixWindow)
}

// tiles flattens g into one tile per cell, colored by fill.
func tiles(g *kde2d.Grid, fill func(cell int) color.Color) (xs, ys []float64, fills []color.Color) {
	n := g.NX * g.NY
	xs, ys, fills = make([]float64, 0, n), make([]float64, 0, n), make([]color.Color, 0, n)
	for j, y := range g.Ys {
		for i, x := range g.Xs {
			xs = append(xs, x)
			ys = append(ys, y)
			fills = append(fills, fill(j*g.NX+i))
		}
	}
	return
}

// newPlot returns a plot of tab with axes fixed to w. Scales must be
// set before any layer uses them.
func newPlot(tab *table.Table, w kde2d.Window) *gg.Plot {
	plot := gg.NewPlot(tab)
	plot.SetScale("x", gg.NewLinearScaler().SetMin(w.XMin).SetMax(w.XMax))
	plot.SetScale("y", gg.NewLinearScaler().SetMin(w.YMin).SetMax(w.YMax))
	plot.SetScale("fill", gg.NewIdentityScale())
	return plot
}

// finish overlays the strike zone on plot and labels it.
func finish(plot *gg.Plot, title string, w kde2d.Window) *gg.Plot {
	// The zone's four edges are drawn as one path, broken by
	// NaNs, each spanning the whole window.
	z, nan := matchup.StrikeZone, math.NaN()
	zx := []float64{w.XMin, w.XMax, nan, w.XMin, w.XMax, nan, z.Left, z.Left, nan, z.Right, z.Right}
	zy := []float64{z.Bottom, z.Bottom, nan, z.Top, z.Top, nan, w.YMin, w.YMax, nan, w.YMin, w.YMax}
	plot.Save()
	plot.SetData(new(table.Builder).Add("plate_x", zx).Add("plate_z", zy).Done())
	plot.Add(gg.LayerPaths{X: "plate_x", Y: "plate_z", Color: plot.Const(zoneColor)})
	plot.Restore()

	plot.Add(gg.Title(title), gg.AxisLabel("x", "plate_x"), gg.AxisLabel("y", "plate_z"))
	return plot
}
