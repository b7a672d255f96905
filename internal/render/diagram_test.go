/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package render

import (
	"image/color"
	"testing"

	"wallspacer/internal/layout"
)

func computeFixture(t *testing.T) *layout.Result {
	t.Helper()
	res, err := layout.Compute(layout.Request{WallLength: 300, ObjectCount: 3, ObjectWidth: 10})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	return res
}

func TestDiagramDimensions(t *testing.T) {
	img := Diagram(computeFixture(t), Options{WidthPx: 800})
	b := img.Bounds()
	if b.Dx() != 800 {
		t.Fatalf("width = %d, want 800", b.Dx())
	}
	if b.Dy() <= 0 {
		t.Fatalf("height must be positive, got %d", b.Dy())
	}
}

func TestDiagramDefaultsWidth(t *testing.T) {
	img := Diagram(computeFixture(t), Options{WidthPx: 10})
	if got := img.Bounds().Dx(); got != defaultWidthPx {
		t.Fatalf("width = %d, want default %d", got, defaultWidthPx)
	}
}

func TestDiagramDrawsObjects(t *testing.T) {
	res := computeFixture(t)
	img := Diagram(res, Options{WidthPx: 1200})
	// Sample the center of the middle object: the fill must differ from the
	// background sampled inside the first gap.
	drawW := 1200.0 - 2*marginPx
	scale := drawW / res.WallLength
	obj := res.Objects[1]
	objX := int(marginPx + (obj.Start+obj.Width/2)*scale)
	gapX := int(marginPx + (res.Objects[0].Start/2)*scale)
	y := int(marginPx + wallBandPx/2)

	objC := color.NRGBAModel.Convert(img.At(objX, y)).(color.NRGBA)
	gapC := color.NRGBAModel.Convert(img.At(gapX, y)).(color.NRGBA)
	if objC == gapC {
		t.Fatalf("object fill indistinguishable from background: %+v", objC)
	}
}

func TestDiagramLabelSuppression(t *testing.T) {
	res := computeFixture(t)
	all := Diagram(res, Options{WidthPx: 600})
	none := Diagram(res, Options{WidthPx: 600, ShowLabel: func(float64) bool { return false }})
	// With every label suppressed the label band must stay untouched.
	y := int(marginPx + wallBandPx + labelBandPx/2)
	differs := false
	for x := 0; x < 600; x++ {
		if all.At(x, y) != none.At(x, y) {
			differs = true
			break
		}
	}
	if !differs {
		t.Fatalf("suppressing labels changed nothing; labels were not drawn at all")
	}
}
