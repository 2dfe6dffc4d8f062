// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-gg/palette/brewer"

	"github.com/pitchlab/matchup/matchup"
)

// Coolwarm is a diverging blue-to-red palette.
var Coolwarm = palette.RGBGradient{
	Colors: []color.RGBA{
		{59, 76, 192, 255},
		{98, 130, 234, 255},
		{141, 176, 254, 255},
		{184, 208, 249, 255},
		{221, 221, 221, 255},
		{245, 196, 173, 255},
		{244, 154, 123, 255},
		{222, 96, 77, 255},
		{180, 4, 38, 255},
	},
}

// legendAlpha is the opacity of a legend swatch, twice that of the
// pitch-mix layer it keys.
const legendAlpha = 2 * matchup.MixAlpha

// normalize maps v into [0, 1] relative to r, clamping.
func normalize(v float64, r matchup.Range) float64 {
	if r.Max == r.Min {
		return 0
	}
	return math.Max(0, math.Min(1, (v-r.Min)/(r.Max-r.Min)))
}

// heatColor returns the color of density band v. Cells below the
// density threshold are transparent.
func heatColor(v float64, r matchup.Range) color.Color {
	if math.IsNaN(v) {
		return color.Transparent
	}
	return Coolwarm.Map(normalize(v, r))
}

// mixColor returns the color of the i'th pitch type, cycling through
// the qualitative palette.
func mixColor(i int) color.Color {
	return brewer.Set1_9[i%len(brewer.Set1_9)]
}

// mixShade returns the color of a pitch-type band at density v, where
// max is the type's peak density. Denser bands are more saturated.
func mixShade(base color.Color, v, max float64) color.Color {
	if math.IsNaN(v) || max <= 0 {
		return color.Transparent
	}
	t := 0.35 + 0.65*math.Min(1, v/max)
	r, g, b, _ := base.RGBA()
	mix := func(c uint32) uint8 {
		return uint8(255 - t*(255-float64(c>>8)))
	}
	return fade(color.NRGBA{mix(r), mix(g), mix(b), 255}, matchup.MixAlpha)
}

// fade scales c's opacity by alpha.
func fade(c color.Color, alpha float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(float64(n.A) * alpha))
	return n
}

// css returns c as an SVG color and opacity.
func css(c color.Color) (string, float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B), float64(n.A) / 255
}
