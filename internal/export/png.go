/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package export turns a calculation into downloadable artifacts: a PNG of
// the diagram and a two-page PDF (title page with inputs and diagram, report
// page in monospace). Export failures are their own error class; they never
// touch the layout result or the view transform.
package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"wallspacer/internal/layout"
	"wallspacer/internal/render"
)

// PNGOptions controls PNG export behavior.
type PNGOptions struct {
	WidthPx int // raster width; <200 falls back to the render default
}

// WritePNG rasterizes the layout and writes it to outPath, creating parent
// directories as needed.
func WritePNG(res *layout.Result, outPath string, opt PNGOptions) error {
	if res == nil {
		return fmt.Errorf("layout result is nil")
	}
	img := render.Diagram(res, render.Options{WidthPx: opt.WidthPx})
	return writePNGFile(img, outPath)
}

func writePNGFile(img image.Image, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Sync()
}
