//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"fmt"
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"wallspacer/internal/config"
	"wallspacer/internal/crash"
	"wallspacer/internal/export"
	"wallspacer/internal/geom"
	"wallspacer/internal/layout"
	applog "wallspacer/internal/log"
	"wallspacer/internal/view"
)

// Run starts the Fyne-based desktop UI: an input form on the left, the
// pannable/zoomable diagram on the right and export actions below.
func Run() error {
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("ui")
	l.Info("starting UI")
	defer crash.Recover()

	cfg, err := config.Load()
	if err != nil {
		l.Warn("config load failed, using defaults", slog.Any("err", err))
		cfg = config.Defaults()
	}

	fyneApp := app.NewWithID("wallspacer")
	w := fyneApp.NewWindow("Wall Spacer")
	prefs := fyneApp.Preferences()
	winW := prefs.IntWithFallback("window.width", 1100)
	winH := prefs.IntWithFallback("window.height", 700)
	if winW < 800 {
		winW = 800
	}
	if winH < 500 {
		winH = 500
	}
	w.Resize(fyne.NewSize(float32(winW), float32(winH)))

	status := widget.NewLabel("Enter the wall and object measurements.")
	diagram := NewDiagramCanvas(cfg)

	wallEntry := widget.NewEntry()
	wallEntry.SetPlaceHolder("e.g. 300")
	countEntry := widget.NewEntry()
	countEntry.SetPlaceHolder("e.g. 3")
	widthEntry := widget.NewEntry()
	widthEntry.SetPlaceHolder("e.g. 10")
	spacingEntry := widget.NewEntry()
	spacingEntry.SetPlaceHolder("leave empty for even gaps")

	resultLabel := widget.NewLabel("")
	resultLabel.Wrapping = fyne.TextWrapWord

	// Last successful calculation; both are replaced together so a stale
	// result is never shown next to a fresh error.
	var curResult *layout.Result
	var curRequest layout.Request

	calculate := func() {
		curResult = nil
		resultLabel.SetText("")
		diagram.SetResult(nil)

		req, err := layout.ParseRequest(wallEntry.Text, countEntry.Text, widthEntry.Text, spacingEntry.Text)
		if err == nil {
			var res *layout.Result
			res, err = layout.Compute(req)
			if err == nil {
				curResult = res
				curRequest = req
				l.Info("layout computed",
					slog.String("mode", string(res.Mode)),
					slog.Int("objects", len(res.Objects)))
				resultLabel.SetText(resultSummary(res))
				diagram.SetResult(res)
				status.SetText("Done. Scroll to zoom, drag to pan.")
				return
			}
		}
		l.Info("calculation rejected", slog.Any("err", err))
		status.SetText("Error: " + err.Error())
	}

	calcBtn := widget.NewButton("Calculate", calculate)
	wallEntry.OnSubmitted = func(string) { calculate() }
	countEntry.OnSubmitted = func(string) { calculate() }
	widthEntry.OnSubmitted = func(string) { calculate() }
	spacingEntry.OnSubmitted = func(string) { calculate() }

	resetBtn := widget.NewButton("Reset view", func() {
		diagram.ResetView()
	})

	exportPDF := widget.NewButton("Export PDF", func() {
		if curResult == nil {
			status.SetText("Nothing to export yet.")
			return
		}
		res, req := curResult, curRequest
		dialog.ShowFileSave(func(uc fyne.URIWriteCloser, err error) {
			if err != nil || uc == nil {
				return
			}
			path := uc.URI().Path()
			_ = uc.Close()
			op := applog.WithOperation(l, "export_pdf")
			if err := export.WritePDF(res, req, path, export.PDFOptions{
				PageSize: cfg.Export.PageSize,
				WidthPx:  cfg.Diagram.WidthPx,
			}); err != nil {
				op.Error("export failed", slog.Any("err", err))
				dialog.ShowError(err, w)
				return
			}
			op.Info("export done", slog.String("path", path))
			status.SetText("PDF saved to " + path)
		}, w)
	})
	exportPNG := widget.NewButton("Export PNG", func() {
		if curResult == nil {
			status.SetText("Nothing to export yet.")
			return
		}
		res := curResult
		dialog.ShowFileSave(func(uc fyne.URIWriteCloser, err error) {
			if err != nil || uc == nil {
				return
			}
			path := uc.URI().Path()
			_ = uc.Close()
			op := applog.WithOperation(l, "export_png")
			if err := export.WritePNG(res, path, export.PNGOptions{WidthPx: cfg.Diagram.WidthPx}); err != nil {
				op.Error("export failed", slog.Any("err", err))
				dialog.ShowError(err, w)
				return
			}
			op.Info("export done", slog.String("path", path))
			status.SetText("PNG saved to " + path)
		}, w)
	})

	form := container.NewVBox(
		widget.NewLabelWithStyle("Inputs", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewForm(
			widget.NewFormItem("Wall length", wallEntry),
			widget.NewFormItem("Object count", countEntry),
			widget.NewFormItem("Object width", widthEntry),
			widget.NewFormItem("Desired spacing", spacingEntry),
		),
		calcBtn,
		widget.NewSeparator(),
		resultLabel,
		widget.NewSeparator(),
		resetBtn,
		exportPDF,
		exportPNG,
	)

	content := container.NewBorder(nil, status, form, nil, diagram)
	w.SetContent(content)
	w.SetOnClosed(func() {
		sz := w.Canvas().Size()
		prefs.SetInt("window.width", int(sz.Width))
		prefs.SetInt("window.height", int(sz.Height))
	})
	w.ShowAndRun()
	return nil
}

// resultSummary is the one-paragraph answer shown next to the form.
func resultSummary(res *layout.Result) string {
	if res.Mode == layout.ModeDesired {
		return fmt.Sprintf("Desired spacing honored.\nSide gaps: %s\nInner gaps: %s",
			layout.FormatAmount(res.SideGap), layout.FormatAmount(res.InnerGap))
	}
	return fmt.Sprintf("Even spacing.\nEvery gap: %s", layout.FormatAmount(res.GapSize))
}

// Vertical proportions of the scene in model units, relative to wall length.
const (
	wallBandRatio = 0.30
	objectPadding = 0.03
	labelYRatio   = 0.36
)

// DiagramCanvas draws the current layout result and forwards pointer, wheel
// and touch input to the view controller. The widget owns no layout math:
// positions come from the layout result, screen mapping from the controller.
type DiagramCanvas struct {
	widget.BaseWidget

	ctrl   *view.Controller
	result *layout.Result

	dragging bool
}

func NewDiagramCanvas(cfg config.AppConfig) *DiagramCanvas {
	dc := &DiagramCanvas{ctrl: view.NewController(1)}
	dc.ctrl.SetWheelStep(float32(cfg.Diagram.WheelZoomStep))
	dc.ctrl.SetLabelMinPx(float32(cfg.Diagram.LabelMinPx))
	dc.ExtendBaseWidget(dc)
	return dc
}

// SetResult installs a new calculation (nil clears the scene). The view
// transform resets because the model width changed.
func (d *DiagramCanvas) SetResult(res *layout.Result) {
	d.result = res
	if res != nil {
		d.ctrl.SetModelWidth(float32(res.WallLength))
	}
	d.Refresh()
}

// ResetView restores the untransformed (fit) view.
func (d *DiagramCanvas) ResetView() {
	d.ctrl.Reset()
	d.Refresh()
}

// Controller exposes the view controller for tests.
func (d *DiagramCanvas) Controller() *view.Controller { return d.ctrl }

func (d *DiagramCanvas) PreferredSize() fyne.Size { return fyne.NewSize(760, 520) }

// Dragged pans the diagram. Fyne reports drags without a press event, so the
// first delta opens the gesture at the drag origin.
func (d *DiagramCanvas) Dragged(e *fyne.DragEvent) {
	pos := geom.Pt{X: e.Position.X, Y: e.Position.Y}
	if !d.dragging {
		d.dragging = true
		d.ctrl.PointerDown(0, geom.Pt{X: pos.X - e.Dragged.DX, Y: pos.Y - e.Dragged.DY})
	}
	d.ctrl.PointerMove(0, pos)
	d.Refresh()
}

func (d *DiagramCanvas) DragEnd() {
	d.dragging = false
	d.ctrl.PointerUp(0)
}

// Scrolled zooms around the cursor. Fyne's DY is positive when scrolling up,
// the controller follows the wheel convention where negative deltaY zooms in.
func (d *DiagramCanvas) Scrolled(e *fyne.ScrollEvent) {
	d.ctrl.Wheel(geom.Pt{X: e.Position.X, Y: e.Position.Y}, -e.Scrolled.DY)
	d.Refresh()
}

// Touch events map onto the same controller gestures. Fyne v2.6 does not
// expose per-contact ids, so pinch arrives only on platforms whose driver
// synthesizes it; single-touch degrades to a pan.
func (d *DiagramCanvas) TouchDown(e *mobile.TouchEvent) {
	d.ctrl.PointerDown(0, geom.Pt{X: e.Position.X, Y: e.Position.Y})
}

func (d *DiagramCanvas) TouchUp(*mobile.TouchEvent) { d.ctrl.PointerUp(0) }

func (d *DiagramCanvas) TouchCancel(*mobile.TouchEvent) { d.ctrl.CancelGesture() }

// sceneRects returns the wall and object rectangles in screen coordinates
// for the current transform, or ok=false when no result is set.
func (d *DiagramCanvas) sceneRects() (wall geom.Rect, objects []geom.Rect, ok bool) {
	if d.result == nil {
		return geom.Rect{}, nil, false
	}
	L := float32(d.result.WallLength)
	wall = d.mapRect(geom.R(0, 0, L, L*wallBandRatio))
	pad := L * objectPadding
	for _, o := range d.result.Objects {
		r := geom.R(float32(o.Start), pad, float32(o.Width), L*wallBandRatio-2*pad)
		objects = append(objects, d.mapRect(r))
	}
	return wall, objects, true
}

func (d *DiagramCanvas) mapRect(r geom.Rect) geom.Rect {
	p0 := d.ctrl.ModelToScreen(r.Min())
	p1 := d.ctrl.ModelToScreen(r.Max())
	return geom.R(p0.X, p0.Y, p1.X-p0.X, p1.Y-p0.Y)
}

// gapLabels returns label text and screen anchors for each visible gap.
func (d *DiagramCanvas) gapLabels() (texts []string, anchors []geom.Pt) {
	if d.result == nil {
		return nil, nil
	}
	L := float32(d.result.WallLength)
	prev := 0.0
	labelAt := func(from, to float64) {
		gap := to - from
		if gap <= 0 || !d.ctrl.ShowGapLabel(float32(gap)) {
			return
		}
		mid := float32(from+to) / 2
		texts = append(texts, layout.FormatAmount(gap))
		anchors = append(anchors, d.ctrl.ModelToScreen(geom.Pt{X: mid, Y: L * labelYRatio}))
	}
	for _, o := range d.result.Objects {
		labelAt(prev, o.Start)
		prev = o.End()
	}
	labelAt(prev, d.result.WallLength)
	return texts, anchors
}

func (d *DiagramCanvas) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(color.RGBA{R: 30, G: 30, B: 34, A: 255})

	wall := canvas.NewRectangle(color.White)
	wall.StrokeColor = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	wall.StrokeWidth = 2
	wall.Hide()

	return &diagramRenderer{
		dc:      d,
		bg:      bg,
		wall:    wall,
		objects: []fyne.CanvasObject{bg, wall},
	}
}

// diagramRenderer positions the drawable objects for the current transform.
type diagramRenderer struct {
	dc      *DiagramCanvas
	objects []fyne.CanvasObject
	bg      *canvas.Rectangle
	wall    *canvas.Rectangle
	rects   []*canvas.Rectangle
	labels  []*canvas.Text
}

func (r *diagramRenderer) Destroy()                     {}
func (r *diagramRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *diagramRenderer) MinSize() fyne.Size           { return fyne.NewSize(400, 300) }
func (r *diagramRenderer) Refresh()                     { r.Layout(r.dc.Size()); canvas.Refresh(r.dc) }

func (r *diagramRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))

	// The surface width drives the fit scale; the controller resets the
	// interactive transform when it actually changes.
	r.dc.ctrl.SetSurfaceWidth(size.Width)

	wallRect, objRects, ok := r.dc.sceneRects()
	if !ok {
		r.wall.Hide()
		for _, rc := range r.rects {
			rc.Hide()
		}
		for _, t := range r.labels {
			t.Hide()
		}
		return
	}

	r.wall.Show()
	r.wall.Resize(fyne.NewSize(wallRect.W, wallRect.H))
	r.wall.Move(fyne.NewPos(wallRect.X, wallRect.Y))

	r.ensureRects(len(objRects))
	for i, rc := range r.rects {
		if i >= len(objRects) {
			rc.Hide()
			continue
		}
		rc.Show()
		rc.Resize(fyne.NewSize(objRects[i].W, objRects[i].H))
		rc.Move(fyne.NewPos(objRects[i].X, objRects[i].Y))
		rc.Refresh()
	}

	texts, anchors := r.dc.gapLabels()
	r.ensureLabels(len(texts))
	for i, t := range r.labels {
		if i >= len(texts) {
			t.Hide()
			continue
		}
		t.Show()
		t.Text = texts[i]
		t.Move(fyne.NewPos(anchors[i].X-t.MinSize().Width/2, anchors[i].Y))
		t.Refresh()
	}
}

func (r *diagramRenderer) ensureRects(n int) {
	for len(r.rects) < n {
		rc := canvas.NewRectangle(color.RGBA{R: 120, G: 180, B: 220, A: 255})
		rc.StrokeColor = color.RGBA{R: 30, G: 30, B: 30, A: 255}
		rc.StrokeWidth = 1
		r.rects = append(r.rects, rc)
		r.objects = append(r.objects, rc)
	}
}

func (r *diagramRenderer) ensureLabels(n int) {
	for len(r.labels) < n {
		t := canvas.NewText("", color.RGBA{R: 230, G: 230, B: 230, A: 255})
		t.TextSize = 12
		r.labels = append(r.labels, t)
		r.objects = append(r.objects, t)
	}
}
