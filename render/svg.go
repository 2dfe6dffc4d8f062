// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws matchup reports as figures.
//
// The SVG figure renders each panel with go-gg and composes the
// panels, their colorbars, and the pitch mix legend with svgo. The PNG
// figure is an equivalent raster rendering.
package render

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/aclements/go-gg/gg"
	svg "github.com/ajstarks/svgo"

	"github.com/pitchlab/matchup/matchup"
)

const gradientID = "coolwarm"

// SVG writes r to w as an SVG figure of three panels: the batter's
// heatmap, the pitcher's pitch mix, and the pitcher's heatmap for the
// matchup's pitch type.
func SVG(w io.Writer, r *matchup.Report) error {
	ew := &errWriter{w: w}
	f := newFigure()
	canvas := svg.New(ew)
	canvas.Start(f.width, f.height, `font-size="12px" font-family="Roboto,&quot;Helvetica Neue&quot;,Helvetica,Arial,sans-serif"`)
	canvas.Rect(0, 0, f.width, f.height, "fill:white")
	canvas.Def()
	offs := make([]svg.Offcolor, len(Coolwarm.Colors))
	for i, c := range Coolwarm.Colors {
		hex, _ := css(c)
		offs[i] = svg.Offcolor{Offset: uint8(100 * i / (len(offs) - 1)), Color: hex, Opacity: 1}
	}
	canvas.LinearGradient(gradientID, 0, 100, 0, 0, offs)
	canvas.DefEnd()

	plots := []*gg.Plot{HeatmapPlot(r.Batter), MixPlot(r.Mix), HeatmapPlot(r.Pitcher)}
	for i, p := range plots {
		if err := embed(canvas, fmt.Sprintf("panel%d-", i), p, f.panels[i]); err != nil {
			return err
		}
	}
	colorbar(canvas, r.Batter, f.bars[0])
	colorbar(canvas, r.Pitcher, f.bars[1])
	legend(canvas, r.Mix, f.legend)
	canvas.End()
	return ew.err
}

// embed renders p into the rectangle b of canvas. Element ids in p's
// output are prefixed so several plots can share one document.
func embed(canvas *svg.SVG, prefix string, p *gg.Plot, b image.Rectangle) error {
	var buf bytes.Buffer
	if err := p.WriteSVG(&buf, b.Dx(), b.Dy()); err != nil {
		return err
	}
	doc := buf.String()
	if i := strings.Index(doc, "<svg"); i >= 0 {
		doc = doc[i:]
	}
	doc = strings.NewReplacer(
		`id="clip`, `id="`+prefix+`clip`,
		`url(#clip`, `url(#`+prefix+`clip`,
	).Replace(doc)

	canvas.Gtransform(fmt.Sprintf("translate(%d,%d)", b.Min.X, b.Min.Y))
	io.WriteString(canvas.Writer, doc)
	canvas.Gend()
	return nil
}

// colorbar draws the color scale of p in b.
func colorbar(canvas *svg.SVG, p matchup.HeatmapPanel, b image.Rectangle) {
	top, bottom := b.Min.Y+40, b.Max.Y-40
	x := b.Min.X + 10
	canvas.Rect(x, top, 16, bottom-top, "fill:url(#"+gradientID+");stroke:#444;stroke-width:0.5")
	for _, tick := range colorbarTicks(p.Range) {
		y := bottom - int(normalize(tick, p.Range)*float64(bottom-top))
		canvas.Line(x+16, y, x+20, y, "stroke:#444")
		canvas.Text(x+23, y+4, fmt.Sprintf("%.1f", tick), "font-size:10px")
	}
	canvas.Gtransform(fmt.Sprintf("translate(%d,%d) rotate(-90)", b.Max.X-8, (top+bottom)/2))
	canvas.Text(0, 0, p.ColorLabel, "text-anchor:middle")
	canvas.Gend()
}

// colorbarTicks returns ticks at every tenth across r.
func colorbarTicks(r matchup.Range) []float64 {
	var ticks []float64
	for i := 0; ; i++ {
		t := r.Min + float64(i)/10
		if t > r.Max+1e-9 {
			break
		}
		ticks = append(ticks, t)
	}
	return ticks
}

// legend draws the pitch mix legend in b.
func legend(canvas *svg.SVG, m matchup.MixPanel, b image.Rectangle) {
	const rowHeight, colWidth = 20, 150
	canvas.Text(b.Min.X+40, b.Min.Y+22, "Pitch Type", "font-weight:bold")
	rows := (b.Dy() - 30) / rowHeight
	for k, s := range m.Types {
		x := b.Min.X + 40 + (k/rows)*colWidth
		y := b.Min.Y + 30 + (k%rows)*rowHeight
		hex, _ := css(mixColor(k))
		canvas.Rect(x, y, 14, 14, fmt.Sprintf("fill:%s;fill-opacity:%g;stroke:%s", hex, legendAlpha, hex))
		canvas.Text(x+20, y+11, s.Label())
	}
}

// errWriter records the first write error so a sequence of svgo calls
// can be checked once.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
