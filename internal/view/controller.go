/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package view maintains the pan/zoom transform applied to the rendered
// diagram. It is UI-toolkit agnostic: the desktop widget feeds it pointer,
// wheel and touch events and reads the resulting transform back. All events
// are processed synchronously to completion; the transform is owned by one
// Controller instance and never shared.
package view

import (
	"sort"

	"wallspacer/internal/geom"
)

// Transform is the interactive scale plus translation applied on top of the
// fit scale. Scale never drops below 1, the "fit" level.
type Transform struct {
	Scale float32
	TX    float32
	TY    float32
}

// Gesture enumerates the interaction states. Modeling this explicitly avoids
// transition bugs like a pan surviving the arrival of a second touch.
type Gesture int

const (
	GestureIdle Gesture = iota
	GesturePanning
	GesturePinching
)

const (
	// DefaultWheelStep converts wheel deltaY units into scale change.
	DefaultWheelStep float32 = 0.01
	// DefaultLabelMinPx is the on-screen gap width below which labels are hidden.
	DefaultLabelMinPx float32 = 25
	minScale          float32 = 1
)

// Controller holds the view transform and the transient gesture state. Not
// safe for concurrent use; UI event loops deliver one event at a time.
type Controller struct {
	transform Transform

	modelWidth   float32
	surfaceWidth float32
	fitScale     float32

	wheelStep  float32
	labelMinPx float32

	gesture Gesture
	touches map[int]geom.Pt
	lastPan geom.Pt

	// Snapshot taken at pinch start; pinch math always derives from it so
	// incremental moves never compound rounding error.
	pinchStart     Transform
	pinchStartDist float32
	pinchAnchor    geom.Pt
}

// NewController returns a controller for a scene of the given model width.
func NewController(modelWidth float32) *Controller {
	return &Controller{
		transform:  Transform{Scale: 1},
		modelWidth: modelWidth,
		fitScale:   1,
		wheelStep:  DefaultWheelStep,
		labelMinPx: DefaultLabelMinPx,
		touches:    map[int]geom.Pt{},
	}
}

// SetWheelStep overrides the wheel zoom sensitivity (values <= 0 are ignored).
func (c *Controller) SetWheelStep(k float32) {
	if k > 0 {
		c.wheelStep = k
	}
}

// SetLabelMinPx overrides the gap-label suppression threshold.
func (c *Controller) SetLabelMinPx(px float32) {
	if px > 0 {
		c.labelMinPx = px
	}
}

// Transform returns the current interactive transform.
func (c *Controller) Transform() Transform { return c.transform }

// Gesture returns the current gesture state.
func (c *Controller) Gesture() Gesture { return c.gesture }

// FitScale is the model-unit to screen-pixel factor derived from the surface
// width, independent of the interactive zoom level.
func (c *Controller) FitScale() float32 { return c.fitScale }

// Reset unconditionally restores the identity transform.
func (c *Controller) Reset() { c.transform = Transform{Scale: 1} }

// SetModelWidth installs a new scene width (a fresh layout result), updating
// the fit scale and resetting the interactive transform.
func (c *Controller) SetModelWidth(w float32) {
	if w <= 0 || w == c.modelWidth {
		return
	}
	c.modelWidth = w
	c.refit()
}

// SetSurfaceWidth reacts to a resize of the rendering surface. The interactive
// transform resets so the view never shows a stale pan/zoom against the new
// fit scale; losing the user's zoom on resize is the documented tradeoff.
func (c *Controller) SetSurfaceWidth(px float32) {
	if px <= 0 || px == c.surfaceWidth {
		return
	}
	c.surfaceWidth = px
	c.refit()
}

func (c *Controller) refit() {
	if c.surfaceWidth > 0 && c.modelWidth > 0 {
		c.fitScale = c.surfaceWidth / c.modelWidth
	}
	c.Reset()
}

// Wheel applies an anchor-preserving zoom step at the cursor position. The
// point under the cursor maps to the same model coordinate before and after.
func (c *Controller) Wheel(cursor geom.Pt, deltaY float32) {
	old := c.transform.Scale
	s := old + -deltaY*c.wheelStep
	if s < minScale {
		s = minScale
	}
	if s == old {
		return
	}
	ratio := s / old
	c.transform.TX = cursor.X - (cursor.X-c.transform.TX)*ratio
	c.transform.TY = cursor.Y - (cursor.Y-c.transform.TY)*ratio
	c.transform.Scale = s
}

// PointerDown registers a pointer (mouse button or touch contact). The first
// contact starts a pan; a second concurrent contact promotes to a pinch and
// suspends panning.
func (c *Controller) PointerDown(id int, pos geom.Pt) {
	c.touches[id] = pos
	switch len(c.touches) {
	case 1:
		c.gesture = GesturePanning
		c.lastPan = pos
	case 2:
		a, b := c.twoTouches()
		c.gesture = GesturePinching
		c.pinchStart = c.transform
		c.pinchStartDist = geom.Dist(a, b)
		c.pinchAnchor = geom.Mid(a, b)
	}
}

// PointerMove updates an active gesture. Moves for untracked ids are ignored.
func (c *Controller) PointerMove(id int, pos geom.Pt) {
	if _, ok := c.touches[id]; !ok {
		return
	}
	c.touches[id] = pos
	switch c.gesture {
	case GesturePanning:
		c.transform.TX += pos.X - c.lastPan.X
		c.transform.TY += pos.Y - c.lastPan.Y
		c.lastPan = pos
	case GesturePinching:
		a, b := c.twoTouches()
		if c.pinchStartDist <= 0 {
			return
		}
		s := c.pinchStart.Scale * (geom.Dist(a, b) / c.pinchStartDist)
		if s < minScale {
			s = minScale
		}
		// Anchor at the pinch-start midpoint, computed from the snapshot.
		ratio := s / c.pinchStart.Scale
		c.transform.TX = c.pinchAnchor.X - (c.pinchAnchor.X-c.pinchStart.TX)*ratio
		c.transform.TY = c.pinchAnchor.Y - (c.pinchAnchor.Y-c.pinchStart.TY)*ratio
		c.transform.Scale = s
	}
}

// PointerUp releases a pointer. Leaving a pinch always lands in Idle rather
// than resuming the suspended pan.
func (c *Controller) PointerUp(id int) {
	delete(c.touches, id)
	switch {
	case len(c.touches) == 0:
		c.gesture = GestureIdle
	case c.gesture == GesturePinching && len(c.touches) < 2:
		c.gesture = GestureIdle
	}
}

// CancelGesture drops all tracked pointers, e.g. when the cursor leaves the
// surface. The transform itself is untouched.
func (c *Controller) CancelGesture() {
	for id := range c.touches {
		delete(c.touches, id)
	}
	c.gesture = GestureIdle
}

// twoTouches returns the two longest-held contacts (lowest ids) so a stray
// third finger cannot redefine the pinch.
func (c *Controller) twoTouches() (geom.Pt, geom.Pt) {
	ids := make([]int, 0, len(c.touches))
	for id := range c.touches {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return c.touches[ids[0]], c.touches[ids[1]]
}

// ShowGapLabel reports whether a gap of the given model width should carry a
// dimension label at the current zoom, hiding labels that would overlap.
func (c *Controller) ShowGapLabel(modelGap float32) bool {
	if modelGap <= 0 {
		return false
	}
	return modelGap*c.fitScale/c.transform.Scale >= c.labelMinPx
}

// Matrix returns the full model-to-screen transform: fit scale, then the
// interactive scale and translation.
func (c *Controller) Matrix() geom.Affine2D {
	s := c.fitScale * c.transform.Scale
	return geom.Translate(c.transform.TX, c.transform.TY).Mul(geom.Scale(s, s))
}

// ModelToScreen maps a model point to surface pixels.
func (c *Controller) ModelToScreen(p geom.Pt) geom.Pt { return c.Matrix().Apply(p) }

// ScreenToModel maps a surface pixel back into model coordinates.
func (c *Controller) ScreenToModel(p geom.Pt) geom.Pt { return c.Matrix().Invert().Apply(p) }
