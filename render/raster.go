// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/pitchlab/matchup/internal/kde2d"
	"github.com/pitchlab/matchup/matchup"
)

var (
	face   = basicfont.Face7x13
	ink    = color.Gray{30}
	frameC = color.Gray{120}
)

const lineGap = 15

// PNG writes r to w as a PNG image laid out like the SVG figure. The
// strike zone is drawn dashed.
func PNG(w io.Writer, r *matchup.Report) error {
	f := newFigure()
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	heat := func(p matchup.HeatmapPanel, b image.Rectangle) {
		area := panelFrame(img, p.Title, p.Grid.Window, b)
		src := gridImage(p.Grid, func(c int) color.Color { return heatColor(p.Bands[c], p.Range) })
		draw.BiLinear.Scale(img, area, src, src.Bounds(), draw.Over, nil)
		zone(img, p.Grid.Window, area)
	}
	heat(r.Batter, f.panels[0])
	heat(r.Pitcher, f.panels[2])

	area := panelFrame(img, r.Mix.Title, matchup.MixWindow, f.panels[1])
	for k, s := range r.Mix.Types {
		base, max, bands := mixColor(k), s.Grid.Max(), s.Bands
		src := gridImage(s.Grid, func(c int) color.Color { return mixShade(base, bands[c], max) })
		draw.BiLinear.Scale(img, area, src, src.Bounds(), draw.Over, nil)
	}
	zone(img, matchup.MixWindow, area)

	rasterColorbar(img, r.Batter, f.bars[0])
	rasterColorbar(img, r.Pitcher, f.bars[1])
	rasterLegend(img, r.Mix, f.legend)

	return png.Encode(w, img)
}

// gridImage returns g as an image with one pixel per cell, with y
// increasing upward.
func gridImage(g *kde2d.Grid, fill func(cell int) color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.NX, g.NY))
	for j := 0; j < g.NY; j++ {
		for i := 0; i < g.NX; i++ {
			img.Set(i, g.NY-1-j, fill(j*g.NX+i))
		}
	}
	return img
}

// panelFrame draws the title, axes, and ticks of a panel in b and
// returns the plot area.
func panelFrame(img *image.RGBA, title string, w kde2d.Window, b image.Rectangle) image.Rectangle {
	lines := wrap(title, b.Dx()/7)
	for i, line := range lines {
		text(img, b.Min.X+(b.Dx()-width(line))/2, b.Min.Y+13+i*lineGap, line, ink)
	}
	area := image.Rect(b.Min.X+40, b.Min.Y+20+len(lines)*lineGap, b.Max.X-10, b.Max.Y-36)

	for x := math.Ceil(w.XMin); x <= w.XMax; x++ {
		px := toPixel(x, w.XMin, w.XMax, area.Min.X, area.Max.X)
		vline(img, px, area.Max.Y, area.Max.Y+4, frameC)
		label := fmt.Sprintf("%g", x)
		text(img, px-width(label)/2, area.Max.Y+16, label, ink)
	}
	for y := math.Ceil(w.YMin); y <= w.YMax; y++ {
		py := toPixel(y, w.YMin, w.YMax, area.Max.Y, area.Min.Y)
		hline(img, area.Min.X-4, area.Min.X, py, frameC)
		label := fmt.Sprintf("%g", y)
		text(img, area.Min.X-8-width(label), py+4, label, ink)
	}
	text(img, area.Min.X+(area.Dx()-width("plate_x"))/2, area.Max.Y+31, "plate_x", ink)
	vertical(img, area.Min.X-36, (area.Min.Y+area.Max.Y)/2, "plate_z")

	hline(img, area.Min.X, area.Max.X, area.Min.Y, frameC)
	hline(img, area.Min.X, area.Max.X, area.Max.Y, frameC)
	vline(img, area.Min.X, area.Min.Y, area.Max.Y, frameC)
	vline(img, area.Max.X, area.Min.Y, area.Max.Y, frameC)
	return area
}

// zone draws the strike zone's edges as dashed lines across area.
func zone(img *image.RGBA, w kde2d.Window, area image.Rectangle) {
	z := matchup.StrikeZone
	for _, y := range []float64{z.Bottom, z.Top} {
		py := toPixel(y, w.YMin, w.YMax, area.Max.Y, area.Min.Y)
		for x := area.Min.X; x < area.Max.X; x++ {
			if dash(x - area.Min.X) {
				img.Set(x, py, zoneColor)
			}
		}
	}
	for _, x := range []float64{z.Left, z.Right} {
		px := toPixel(x, w.XMin, w.XMax, area.Min.X, area.Max.X)
		for y := area.Min.Y; y < area.Max.Y; y++ {
			if dash(y - area.Min.Y) {
				img.Set(px, y, zoneColor)
			}
		}
	}
}

// dash reports whether offset i along a dashed line is inked.
func dash(i int) bool {
	return i%10 < 6
}

func rasterColorbar(img *image.RGBA, p matchup.HeatmapPanel, b image.Rectangle) {
	top, bottom := b.Min.Y+40, b.Max.Y-40
	x := b.Min.X + 10
	for y := top; y < bottom; y++ {
		c := Coolwarm.Map(float64(bottom-y) / float64(bottom-top))
		for dx := 0; dx < 16; dx++ {
			img.Set(x+dx, y, c)
		}
	}
	for _, tick := range colorbarTicks(p.Range) {
		y := bottom - int(normalize(tick, p.Range)*float64(bottom-top))
		hline(img, x+16, x+20, y, frameC)
		text(img, x+23, y+4, fmt.Sprintf("%.1f", tick), ink)
	}
	vertical(img, b.Max.X-20, (top+bottom)/2, p.ColorLabel)
}

func rasterLegend(img *image.RGBA, m matchup.MixPanel, b image.Rectangle) {
	const rowHeight, colWidth = 20, 150
	text(img, b.Min.X+40, b.Min.Y+22, "Pitch Type", ink)
	rows := (b.Dy() - 30) / rowHeight
	for k, s := range m.Types {
		x := b.Min.X + 40 + (k/rows)*colWidth
		y := b.Min.Y + 30 + (k%rows)*rowHeight
		sw := image.Rect(x, y, x+14, y+14)
		draw.Draw(img, sw, image.NewUniform(fade(mixColor(k), legendAlpha)), image.Point{}, draw.Over)
		text(img, x+20, y+11, s.Label(), ink)
	}
}

// toPixel maps v in [lo, hi] onto [plo, phi].
func toPixel(v, lo, hi float64, plo, phi int) int {
	return plo + int(math.Round((v-lo)/(hi-lo)*float64(phi-plo)))
}

func hline(img *image.RGBA, x0, x1, y int, c color.Color) {
	for x := x0; x <= x1; x++ {
		img.Set(x, y, c)
	}
}

func vline(img *image.RGBA, x, y0, y1 int, c color.Color) {
	for y := y0; y <= y1; y++ {
		img.Set(x, y, c)
	}
}

// text draws s with its baseline starting at (x, y).
func text(dst draw.Image, x, y int, s string, c color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func width(s string) int {
	return font.MeasureString(face, s).Ceil()
}

// vertical draws s rotated a quarter turn counterclockwise, centered
// on (cx, cy).
func vertical(img *image.RGBA, cx, cy int, s string) {
	w, h := width(s), face.Height
	tmp := image.NewRGBA(image.Rect(0, 0, w, h))
	text(tmp, 0, face.Ascent, s, ink)
	x0, y0 := cx-h/2, cy+w/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if _, _, _, a := tmp.At(x, y).RGBA(); a != 0 {
				img.Set(x0+y, y0-x, tmp.At(x, y))
			}
		}
	}
}

// wrap breaks s into lines of at most n characters at spaces.
func wrap(s string, n int) []string {
	var lines []string
	for len(s) > n {
		i := strings.LastIndexByte(s[:n], ' ')
		if i <= 0 {
			break
		}
		lines = append(lines, s[:i])
		s = s[i+1:]
	}
	return append(lines, s)
}
