// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchlab/matchup/matchup"
	"github.com/pitchlab/matchup/statcast"
)

func testReport(t *testing.T) *matchup.Report {
	rng := rand.New(rand.NewSource(2))
	gen := func(n int, throws string, types ...string) []statcast.PitchEvent {
		var out []statcast.PitchEvent
		for k := 0; k < n; k++ {
			for _, pt := range types {
				out = append(out, statcast.PitchEvent{
					PitchType: pt,
					PThrows:   throws,
					Stand:     "R",
					PlateX:    rng.NormFloat64() * 0.5,
					PlateZ:    2.5 + rng.NormFloat64()*0.5,
					Metric:    rng.Float64(),
				})
			}
		}
		return out
	}
	cfg := matchup.Config{
		Pitcher:     matchup.Player{First: "Tarik", Last: "Skubal"},
		Batter:      matchup.Player{First: "Aaron", Last: "Judge"},
		BatterHand:  "R",
		PitcherHand: "L",
		PitchType:   "CH",
		Metric:      statcast.DefaultMetric,
	}
	r, err := matchup.Analyze(cfg, &matchup.Histories{
		Pitcher: gen(30, "L", "FF", "CH", "SL"),
		Batter:  gen(30, "L", "CH"),
	})
	require.NoError(t, err)
	return r
}

func TestSVG(t *testing.T) {
	r := testReport(t)
	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, r))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Equal(t, 4, strings.Count(out, "<svg"), "figure plus three panels")
	assert.Contains(t, out, `id="coolwarm"`)
	assert.NotContains(t, out, `id="clip`)
	assert.Contains(t, out, `id="panel1-clip`)
	assert.Contains(t, out, "xwOBA-weighted KDE")
	for _, s := range r.Mix.Types {
		assert.Contains(t, out, s.Label())
	}
	assert.Contains(t, out, "Pitch Density Heatmap for Tarik Skubal vs RHB")
}

func TestLegendSwatches(t *testing.T) {
	r := testReport(t)
	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, r))
	out := buf.String()

	assert.Greater(t, legendAlpha, matchup.MixAlpha)
	for k := range r.Mix.Types {
		hex, _ := css(mixColor(k))
		assert.Contains(t, out, fmt.Sprintf("fill:%s;fill-opacity:0.6;stroke:%s", hex, hex))
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, assert.AnError }

func TestSVGWriteError(t *testing.T) {
	assert.ErrorIs(t, SVG(failWriter{}, testReport(t)), assert.AnError)
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, testReport(t)))
	img, err := png.Decode(&buf)
	require.NoError(t, err)

	f := newFigure()
	assert.Equal(t, f.width, img.Bounds().Dx())
	assert.Equal(t, f.height, img.Bounds().Dy())

	zoneR, _, _, _ := zoneColor.RGBA()
	found := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			if r == zoneR && g == zoneR && bl == zoneR && a == 0xffff {
				found++
			}
		}
	}
	assert.Greater(t, found, 1000, "strike zone pixels")
}

func TestHeatColor(t *testing.T) {
	r := matchup.Range{Min: 0, Max: 0.7}
	assert.Equal(t, color.Transparent, heatColor(math.NaN(), r))
	assert.Equal(t, Coolwarm.Colors[0], heatColor(-1, r))
	assert.Equal(t, Coolwarm.Colors[len(Coolwarm.Colors)-1], heatColor(5, r))
	assert.InDelta(t, 0.5, normalize(0.35, r), 1e-12)
}

func TestMixColor(t *testing.T) {
	assert.Equal(t, mixColor(0), mixColor(9))
	assert.NotEqual(t, mixColor(0), mixColor(1))

	alpha := matchup.MixAlpha
	c := mixShade(mixColor(0), 1, 1)
	assert.Equal(t, uint8(math.Round(255*alpha)), c.(color.NRGBA).A)
	assert.Equal(t, color.Transparent, mixShade(mixColor(0), math.NaN(), 1))
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"abc def", "ghi"}, wrap("abc def ghi", 8))
	assert.Equal(t, []string{"short"}, wrap("short", 8))
}

func TestFigureLayout(t *testing.T) {
	f := newFigure()
	for i := 1; i < len(f.panels); i++ {
		assert.False(t, f.panels[i].Overlaps(f.panels[i-1]))
	}
	assert.True(t, f.bars[0].Min.X >= f.panels[0].Max.X)
	assert.True(t, f.bars[1].Min.X >= f.panels[2].Max.X)
	assert.LessOrEqual(t, f.legend.Max.Y, f.height)
}
