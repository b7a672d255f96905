/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package render rasterizes a layout result into an image for on-screen
// snapshots and for the PNG/PDF exporters.
package render

import (
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"wallspacer/internal/layout"
)

// Options controls rasterization.
type Options struct {
	// WidthPx is the output raster width; height is derived. Values below
	// 200 fall back to the default.
	WidthPx int
	// ShowLabel decides per gap whether a dimension label is drawn. Nil
	// means all labels are drawn (the exporters always label).
	ShowLabel func(gap float64) bool
}

const (
	defaultWidthPx = 1200
	marginPx       = 40.0
	wallBandPx     = 120.0
	labelBandPx    = 60.0
)

// Diagram draws the wall, the placed objects and the gap dimension labels.
// Model units map linearly onto the drawable width; the vertical layout is
// fixed (wall band on top, label band below).
func Diagram(res *layout.Result, opt Options) image.Image {
	w := opt.WidthPx
	if w < 200 {
		w = defaultWidthPx
	}
	h := int(2*marginPx + wallBandPx + labelBandPx)
	dc := gg.NewContext(w, h)
	dc.SetFontFace(basicfont.Face7x13)

	// Background
	dc.SetRGB255(250, 250, 250)
	dc.Clear()

	drawW := float64(w) - 2*marginPx
	scale := drawW / res.WallLength
	wallTop := marginPx
	wallBottom := marginPx + wallBandPx
	toX := func(model float64) float64 { return marginPx + model*scale }

	// Wall outline
	dc.SetRGB255(60, 60, 60)
	dc.SetLineWidth(2)
	dc.DrawRectangle(marginPx, wallTop, drawW, wallBandPx)
	dc.Stroke()

	// Objects
	for _, o := range res.Objects {
		x := toX(o.Start)
		ww := o.Width * scale
		dc.SetRGB255(120, 180, 220)
		dc.DrawRectangle(x, wallTop+10, ww, wallBandPx-20)
		dc.Fill()
		dc.SetRGB255(30, 30, 30)
		dc.SetLineWidth(1)
		dc.DrawRectangle(x, wallTop+10, ww, wallBandPx-20)
		dc.Stroke()
	}

	// Gap dimension labels under the wall
	labelY := wallBottom + labelBandPx/2
	prev := 0.0
	dc.SetRGB255(30, 30, 30)
	for _, o := range res.Objects {
		drawGapLabel(dc, opt, toX(prev), toX(o.Start), labelY, o.Start-prev)
		prev = o.End()
	}
	drawGapLabel(dc, opt, toX(prev), toX(res.WallLength), labelY, res.WallLength-prev)

	return dc.Image()
}

func drawGapLabel(dc *gg.Context, opt Options, x0, x1, y, gap float64) {
	if gap <= 0 {
		return
	}
	if opt.ShowLabel != nil && !opt.ShowLabel(gap) {
		return
	}
	mid := (x0 + x1) / 2
	// Extent ticks
	dc.SetLineWidth(1)
	dc.DrawLine(x0, y-8, x0, y+8)
	dc.DrawLine(x1, y-8, x1, y+8)
	dc.DrawLine(x0, y, x1, y)
	dc.Stroke()
	dc.DrawStringAnchored(layout.FormatAmount(gap), mid, y+16, 0.5, 0.5)
}
