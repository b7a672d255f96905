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
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"wallspacer/internal/layout"
)

func fixture(t *testing.T) (*layout.Result, layout.Request) {
	t.Helper()
	req := layout.Request{WallLength: 300, ObjectCount: 3, ObjectWidth: 10, DesiredSpacing: 20}
	res, err := layout.Compute(req)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	return res, req
}

func TestWritePNGCreatesDecodableFile(t *testing.T) {
	res, _ := fixture(t)
	out := filepath.Join(t.TempDir(), "exports", "diagram.png")
	if err := WritePNG(res, out, PNGOptions{WidthPx: 800}); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if img.Bounds().Dx() != 800 {
		t.Fatalf("unexpected width %d", img.Bounds().Dx())
	}
}

func TestWritePNGNilResult(t *testing.T) {
	if err := WritePNG(nil, filepath.Join(t.TempDir(), "x.png"), PNGOptions{}); err == nil {
		t.Fatalf("expected error for nil result")
	}
}

func TestWritePDFCreatesFile(t *testing.T) {
	res, req := fixture(t)
	out := filepath.Join(t.TempDir(), "exports", "placement.pdf")
	if err := WritePDF(res, req, out, PDFOptions{}); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(data) == 0 || !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a PDF (%d bytes)", len(data))
	}
}

func TestWritePDFLetterSize(t *testing.T) {
	res, req := fixture(t)
	out := filepath.Join(t.TempDir(), "letter.pdf")
	if err := WritePDF(res, req, out, PDFOptions{PageSize: "letter"}); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if fi, err := os.Stat(out); err != nil || fi.Size() == 0 {
		t.Fatalf("letter export missing or empty: %v", err)
	}
}

func TestWritePDFNilResult(t *testing.T) {
	if err := WritePDF(nil, layout.Request{}, filepath.Join(t.TempDir(), "x.pdf"), PDFOptions{}); err == nil {
		t.Fatalf("expected error for nil result")
	}
}
