/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package report renders a layout result as plain text. It is pure
// presentation: every number goes through layout.FormatAmount so the report,
// the PDF and the diagram labels always agree.
package report

import (
	"fmt"
	"strings"

	"wallspacer/internal/layout"
)

// Lines returns the full text report, one entry per line.
func Lines(res *layout.Result) []string {
	lines := []string{
		"Wall Spacer — placement report",
		"",
		fmt.Sprintf("Wall length:   %s", layout.FormatAmount(res.WallLength)),
		fmt.Sprintf("Objects:       %d x %s wide", len(res.Objects), layout.FormatAmount(res.Objects[0].Width)),
	}
	switch res.Mode {
	case layout.ModeUniform:
		lines = append(lines,
			"Mode:          uniform spacing",
			fmt.Sprintf("Every gap:     %s", layout.FormatAmount(res.GapSize)),
		)
	case layout.ModeDesired:
		lines = append(lines,
			"Mode:          desired spacing",
			fmt.Sprintf("Side gaps:     %s", layout.FormatAmount(res.SideGap)),
			fmt.Sprintf("Inner gaps:    %s", layout.FormatAmount(res.InnerGap)),
		)
	}
	lines = append(lines, "", "Positions (from the left wall edge):")
	for i, o := range res.Objects {
		lines = append(lines, fmt.Sprintf("  object %2d: %s .. %s",
			i+1, layout.FormatAmount(o.Start), layout.FormatAmount(o.End())))
	}
	return lines
}

// Text returns the report as a single newline-joined string.
func Text(res *layout.Result) string { return strings.Join(Lines(res), "\n") + "\n" }

// InputSummary renders the request for the export title page.
func InputSummary(req layout.Request) []string {
	spacing := "no preference"
	if req.DesiredSpacing > 0 {
		spacing = layout.FormatAmount(req.DesiredSpacing)
	}
	return []string{
		fmt.Sprintf("Wall length:     %s", layout.FormatAmount(req.WallLength)),
		fmt.Sprintf("Object count:    %d", req.ObjectCount),
		fmt.Sprintf("Object width:    %s", layout.FormatAmount(req.ObjectWidth)),
		fmt.Sprintf("Desired spacing: %s", spacing),
	}
}
