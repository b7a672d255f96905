/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseRequest converts the four raw form strings into a Request. The count
// is parsed as an integer, the lengths as reals; an empty desired-spacing
// string means "no preference" (0). Any parse failure maps to InvalidInput.
// Decimal commas are accepted since the inputs come from free-form entry.
func ParseRequest(wall, count, width, spacing string) (Request, error) {
	var req Request
	var err error

	if req.WallLength, err = parseReal(wall); err != nil {
		return Request{}, &ValidationError{Kind: InvalidInput}
	}
	c := strings.TrimSpace(count)
	if req.ObjectCount, err = strconv.Atoi(c); err != nil {
		return Request{}, &ValidationError{Kind: InvalidInput}
	}
	if req.ObjectWidth, err = parseReal(width); err != nil {
		return Request{}, &ValidationError{Kind: InvalidInput}
	}
	if strings.TrimSpace(spacing) == "" {
		req.DesiredSpacing = 0
		return req, nil
	}
	if req.DesiredSpacing, err = parseReal(spacing); err != nil {
		return Request{}, &ValidationError{Kind: InvalidInput}
	}
	return req, nil
}

func parseReal(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if !isFinite(v) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}
	return v, nil
}
