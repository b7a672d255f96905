/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package export

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"wallspacer/internal/layout"
	"wallspacer/internal/render"
	"wallspacer/internal/report"
)

// PDFOptions controls PDF export behavior.
// Units are points (pt). Built-in Helvetica/Courier keep the text vector
// without font embedding.
type PDFOptions struct {
	PageSize string // "A4" (default) or "Letter"
	WidthPx  int    // diagram raster width before placement on the page
	Title    string // overrides the default document title
}

const defaultTitle = "Wall Spacer — placement"

// WritePDF produces a two-page document at outPath: page 1 carries the title,
// the input parameters and the diagram image; page 2 the monospaced report.
func WritePDF(res *layout.Result, req layout.Request, outPath string, opt PDFOptions) error {
	if res == nil {
		return fmt.Errorf("layout result is nil")
	}
	size := strings.ToUpper(strings.TrimSpace(opt.PageSize))
	if size != "LETTER" {
		size = "A4"
	} else {
		size = "Letter"
	}
	title := opt.Title
	if title == "" {
		title = defaultTitle
	}

	pdf := gofpdf.New("P", "pt", size, "")
	pdf.SetTitle(title, true)
	pdf.SetAuthor("Wall Spacer", false)
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	contentW := pageW - left - right

	// Page 1: title, inputs, diagram
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 24, title, "", 1, "L", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range report.InputSummary(req) {
		pdf.CellFormat(0, 16, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(12)

	img := render.Diagram(res, render.Options{WidthPx: opt.WidthPx})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode diagram: %w", err)
	}
	imgOpt := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("diagram", imgOpt, &buf)
	b := img.Bounds()
	imgH := contentW * float64(b.Dy()) / float64(b.Dx())
	pdf.ImageOptions("diagram", left, pdf.GetY(), contentW, imgH, false, imgOpt, 0, "")

	// Page 2: full report in monospace
	pdf.AddPage()
	pdf.SetFont("Courier", "", 10)
	for _, line := range report.Lines(res) {
		pdf.CellFormat(0, 13, line, "", 1, "L", false, 0, "")
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("build pdf: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}
