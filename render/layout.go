// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "image"

// Figure geometry, in pixels.
const (
	panelWidth   = 460
	panelHeight  = 540
	barWidth     = 90
	legendHeight = 110
	gap          = 20
)

// figure positions the parts of a three-panel figure. The weighted
// panels have a colorbar to their right; the pitch mix has its legend
// below.
type figure struct {
	width, height int
	panels        [3]image.Rectangle
	bars          [2]image.Rectangle
	legend        image.Rectangle
}

func newFigure() figure {
	var f figure
	x := gap
	for i := range f.panels {
		f.panels[i] = image.Rect(x, gap, x+panelWidth, gap+panelHeight)
		x += panelWidth
		if i != 1 {
			f.bars[i/2] = image.Rect(x, gap, x+barWidth, gap+panelHeight)
			x += barWidth
		}
		x += gap
	}
	mix := f.panels[1]
	f.legend = image.Rect(mix.Min.X, mix.Max.Y, mix.Max.X, mix.Max.Y+legendHeight)
	f.width = x
	f.height = f.legend.Max.Y + gap
	return f
}
