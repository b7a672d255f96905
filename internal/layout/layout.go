/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package layout computes positions for a fixed number of equal-width objects
// along a linear wall. It is pure: no state, no I/O. Validation failures are
// returned as data so the caller can surface one message per failure kind.
package layout

import "math"

// Request holds the four inputs of a calculation. All lengths share one
// linear unit; the engine never converts units.
type Request struct {
	WallLength     float64
	ObjectCount    int
	ObjectWidth    float64
	DesiredSpacing float64 // 0 means "no preference"
}

// Mode discriminates the two placement policies.
type Mode string

const (
	// ModeUniform divides the free space into ObjectCount+1 equal gaps.
	ModeUniform Mode = "uniform"
	// ModeDesired fixes inner gaps at the requested spacing and centers the
	// resulting group, splitting the remainder between the two side gaps.
	ModeDesired Mode = "desired"
)

// Object is a placed object, in wall coordinates (left edge at 0).
type Object struct {
	Start float64
	Width float64
}

// End returns the right edge of the object.
func (o Object) End() float64 { return o.Start + o.Width }

// Result is the outcome of a successful calculation. It is immutable; a new
// request fully replaces it. GapSize is meaningful only in uniform mode,
// SideGap and InnerGap only in desired mode.
type Result struct {
	WallLength float64
	Objects    []Object // ordered left to right, len == ObjectCount
	Mode       Mode
	GapSize    float64
	SideGap    float64
	InnerGap   float64
}

// Compute validates the request and derives the object placement. Checks run
// in a fixed order and the first failure wins; a partial result is never
// produced. The returned error is always a *ValidationError.
func Compute(req Request) (*Result, error) {
	if !isFinite(req.WallLength) || !isFinite(req.ObjectWidth) || !isFinite(req.DesiredSpacing) {
		return nil, &ValidationError{Kind: InvalidInput}
	}
	if req.WallLength <= 0 {
		return nil, &ValidationError{Kind: NonPositiveWall}
	}
	if req.ObjectWidth <= 0 {
		return nil, &ValidationError{Kind: NonPositiveObject}
	}
	if req.ObjectCount < 1 {
		return nil, &ValidationError{Kind: TooFewObjects}
	}
	if req.DesiredSpacing < 0 {
		return nil, &ValidationError{Kind: NegativeSpacing}
	}
	if float64(req.ObjectCount)*req.ObjectWidth > req.WallLength {
		return nil, &ValidationError{Kind: ObjectsExceedWall}
	}
	if req.DesiredSpacing > 0 && req.ObjectCount > 1 {
		occupied := float64(req.ObjectCount)*req.ObjectWidth + float64(req.ObjectCount-1)*req.DesiredSpacing
		if occupied > req.WallLength {
			return nil, &ValidationError{Kind: SpacingExceedsWall}
		}
	}

	res := &Result{WallLength: req.WallLength, Objects: make([]Object, 0, req.ObjectCount)}
	if req.DesiredSpacing > 0 {
		res.Mode = ModeDesired
		if req.ObjectCount > 1 {
			occupied := float64(req.ObjectCount)*req.ObjectWidth + float64(req.ObjectCount-1)*req.DesiredSpacing
			res.SideGap = (req.WallLength - occupied) / 2
			res.InnerGap = req.DesiredSpacing
		} else {
			// Single object: center it, no inner gaps exist.
			res.SideGap = (req.WallLength - req.ObjectWidth) / 2
			res.InnerGap = 0
		}
		pos := res.SideGap
		for i := 0; i < req.ObjectCount; i++ {
			res.Objects = append(res.Objects, Object{Start: pos, Width: req.ObjectWidth})
			pos += req.ObjectWidth + res.InnerGap
		}
		return res, nil
	}

	res.Mode = ModeUniform
	free := req.WallLength - float64(req.ObjectCount)*req.ObjectWidth
	res.GapSize = free / float64(req.ObjectCount+1)
	pos := res.GapSize
	for i := 0; i < req.ObjectCount; i++ {
		res.Objects = append(res.Objects, Object{Start: pos, Width: req.ObjectWidth})
		pos += req.ObjectWidth + res.GapSize
	}
	return res, nil
}

// Gaps enumerates all len(Objects)+1 gaps left to right: wall edge to first
// object, between consecutive objects, last object to wall edge.
func (r *Result) Gaps() []float64 {
	gaps := make([]float64, 0, len(r.Objects)+1)
	prev := 0.0
	for _, o := range r.Objects {
		gaps = append(gaps, o.Start-prev)
		prev = o.End()
	}
	gaps = append(gaps, r.WallLength-prev)
	return gaps
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
