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

// Kind enumerates the validation failures. Every failure is deterministic in
// the input, so callers never retry; they surface one message and wait for
// the user to edit the form.
type Kind string

const (
	InvalidInput       Kind = "invalid_input"
	NonPositiveWall    Kind = "non_positive_wall"
	NonPositiveObject  Kind = "non_positive_object"
	TooFewObjects      Kind = "too_few_objects"
	NegativeSpacing    Kind = "negative_spacing"
	ObjectsExceedWall  Kind = "objects_exceed_wall"
	SpacingExceedsWall Kind = "spacing_exceeds_wall"
)

// ValidationError is the discriminated error returned by Compute and
// ParseRequest. It satisfies the error interface with a user-facing message.
type ValidationError struct {
	Kind Kind
}

var messages = map[Kind]string{
	InvalidInput:       "all inputs must be valid numbers",
	NonPositiveWall:    "wall length must be greater than zero",
	NonPositiveObject:  "object width must be greater than zero",
	TooFewObjects:      "at least one object is required",
	NegativeSpacing:    "desired spacing cannot be negative",
	ObjectsExceedWall:  "the objects are wider than the wall",
	SpacingExceedsWall: "objects plus desired spacing exceed the wall length",
}

func (e *ValidationError) Error() string {
	if msg, ok := messages[e.Kind]; ok {
		return msg
	}
	return string(e.Kind)
}

// Is reports kind equality so callers can use errors.Is with a sentinel
// like &ValidationError{Kind: ObjectsExceedWall}.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}
