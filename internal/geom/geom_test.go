/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package geom

import (
	"math"
	"testing"
)

func TestRectContainsAndInset(t *testing.T) {
	r := R(10, 20, 100, 50)
	if !r.Contains(Pt{10, 20}) || !r.Contains(Pt{110, 70}) {
		t.Fatalf("expected edge points to be contained")
	}
	in := r.Inset(5, 5)
	if in.X != 15 || in.Y != 25 || in.W != 90 || in.H != 40 {
		t.Fatalf("unexpected inset: %+v", in)
	}
}

func TestAffineBasic(t *testing.T) {
	m := Translate(10, 5).Mul(Scale(2, 3))
	p := m.Apply(Pt{1, 1})
	if p.X != 12 || p.Y != 8 { // (1*2+10, 1*3+5)
		t.Fatalf("unexpected transform result: %+v", p)
	}
}

func TestAffineInvertRoundTrip(t *testing.T) {
	m := Translate(40, -7).Mul(Scale(2.5, 2.5))
	inv := m.Invert()
	p := Pt{13, 29}
	got := inv.Apply(m.Apply(p))
	if math.Abs(float64(got.X-p.X)) > 1e-4 || math.Abs(float64(got.Y-p.Y)) > 1e-4 {
		t.Fatalf("inverse did not round-trip: %+v", got)
	}
}

func TestInvertDegenerate(t *testing.T) {
	if Scale(0, 0).Invert() != Identity {
		t.Fatalf("degenerate transform should invert to identity")
	}
}

func TestDistAndMid(t *testing.T) {
	if d := Dist(Pt{0, 0}, Pt{3, 4}); d != 5 {
		t.Fatalf("unexpected distance: %v", d)
	}
	m := Mid(Pt{0, 10}, Pt{10, 20})
	if m.X != 5 || m.Y != 15 {
		t.Fatalf("unexpected midpoint: %+v", m)
	}
}
