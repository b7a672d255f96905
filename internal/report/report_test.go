/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package report

import (
	"strings"
	"testing"

	"wallspacer/internal/layout"
)

func TestUniformReport(t *testing.T) {
	res, err := layout.Compute(layout.Request{WallLength: 300, ObjectCount: 3, ObjectWidth: 10})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	text := Text(res)
	for _, want := range []string{
		"uniform spacing",
		"Every gap:     67.5",
		"object  1: 67.5 .. 77.5",
		"object  2: 145 .. 155",
		"object  3: 222.5 .. 232.5",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("report missing %q:\n%s", want, text)
		}
	}
}

func TestDesiredReport(t *testing.T) {
	res, err := layout.Compute(layout.Request{WallLength: 300, ObjectCount: 3, ObjectWidth: 10, DesiredSpacing: 20})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	text := Text(res)
	for _, want := range []string{
		"desired spacing",
		"Side gaps:     115",
		"Inner gaps:    20",
		"object  1: 115 .. 125",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("report missing %q:\n%s", want, text)
		}
	}
}

func TestInputSummary(t *testing.T) {
	lines := InputSummary(layout.Request{WallLength: 300, ObjectCount: 3, ObjectWidth: 10})
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "no preference") {
		t.Fatalf("zero spacing should read as no preference:\n%s", joined)
	}
	lines = InputSummary(layout.Request{WallLength: 300, ObjectCount: 3, ObjectWidth: 10, DesiredSpacing: 12.5})
	joined = strings.Join(lines, "\n")
	if !strings.Contains(joined, "Desired spacing: 12.5") {
		t.Fatalf("spacing missing:\n%s", joined)
	}
}
