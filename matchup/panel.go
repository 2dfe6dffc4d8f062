// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matchup

import (
	"fmt"

	"github.com/pitchlab/matchup/internal/kde2d"
	"github.com/pitchlab/matchup/statcast"
)

// Zone is the rectangle drawn as the strike zone, in feet.
type Zone struct {
	Left, Right float64
	Bottom, Top float64
}

// StrikeZone is the nominal strike zone every panel overlays.
var StrikeZone = Zone{Left: -0.83, Right: 0.83, Bottom: 1.5, Top: 3.5}

// Range is a closed interval of density values mapped onto a color
// scale. Values outside it are clamped.
type Range struct {
	Min, Max float64
}

// Density policy for the weighted heatmaps.
var (
	HeatWindow = kde2d.Window{XMin: -2, XMax: 2, YMin: 0, YMax: 5}
	HeatRange  = Range{Min: 0, Max: 0.7}
)

const (
	heatAdjust = 0.5
	heatLevels = 100
	heatThresh = 0.01
)

// Density policy for the pitch mix.
var MixWindow = kde2d.Window{XMin: -1.5, XMax: 1.5, YMin: 0, YMax: 5}

const (
	mixLevels = 100
	mixThresh = 0.7

	// MixAlpha is the opacity of each pitch type's layer.
	MixAlpha = 0.3
)

// HeatmapPanel is a metric-weighted density of pitch locations.
type HeatmapPanel struct {
	Title string

	// ColorLabel labels the panel's color scale.
	ColorLabel string

	// Count is the number of pitches in the panel's event set,
	// including those that could not contribute to the density.
	Count int

	Grid *kde2d.Grid

	// Bands is the filled-contour quantization of Grid, indexed
	// like Grid.Z. Cells below the threshold are NaN.
	Bands []float64

	// Range is the density range spanned by the color scale.
	Range Range
}

// MixPanel overlays the unweighted location density of each pitch
// type a pitcher threw.
type MixPanel struct {
	Title string

	// Total is the number of pitches the shares are fractions of.
	Total int

	// Types is in order of first appearance.
	Types []PitchShare
}

// PitchShare is one pitch type's layer of a MixPanel.
type PitchShare struct {
	PitchType string
	Count     int

	// Percent is Count as a percentage of the panel total.
	Percent float64

	Grid  *kde2d.Grid
	Bands []float64
}

// Label returns the legend entry for s, such as "SL (23.4%)".
func (s PitchShare) Label() string {
	pt := s.PitchType
	if pt == "" {
		pt = "unknown"
	}
	return fmt.Sprintf("%s (%.1f%%)", pt, s.Percent)
}

// MetricLabel returns a short display name for a metric column.
func MetricLabel(metric string) string {
	if metric == statcast.DefaultMetric {
		return "xwOBA"
	}
	return metric
}

// heatmap estimates the metric-weighted density of events.
func heatmap(title, metric string, events []statcast.PitchEvent) HeatmapPanel {
	xs, ys, ws := points(events, true)
	g := kde2d.Estimator{Window: HeatWindow, Adjust: heatAdjust}.Estimate(xs, ys, ws)
	return HeatmapPanel{
		Title:      title,
		ColorLabel: MetricLabel(metric) + "-weighted KDE",
		Count:      len(events),
		Grid:       g,
		Bands:      g.Bands(heatLevels, heatThresh),
		Range:      HeatRange,
	}
}

// pitchMix splits events by pitch type and estimates each type's
// location density.
func pitchMix(title string, events []statcast.PitchEvent) MixPanel {
	p := MixPanel{Title: title, Total: len(events)}
	for _, pt := range PitchTypes(events) {
		sub := FilterPitchType(events, pt)
		xs, ys, _ := points(sub, false)
		g := kde2d.Estimator{Window: MixWindow}.Estimate(xs, ys, nil)
		p.Types = append(p.Types, PitchShare{
			PitchType: pt,
			Count:     len(sub),
			Percent:   float64(len(sub)) / float64(len(events)) * 100,
			Grid:      g,
			Bands:     g.Bands(mixLevels, mixThresh),
		})
	}
	return p
}

// points extracts the located events' coordinates and, if weighted,
// their metric values. Events with a missing metric are dropped from
// a weighted set.
func points(events []statcast.PitchEvent, weighted bool) (xs, ys, ws []float64) {
	for i := range events {
		ev := &events[i]
		if !ev.HasLocation() || (weighted && !ev.HasMetric()) {
			continue
		}
		xs = append(xs, ev.PlateX)
		ys = append(ys, ev.PlateZ)
		if weighted {
			ws = append(ws, ev.Metric)
		}
	}
	return
}
