// Copyright 2026 Atrium Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidChunking indicates chunking parameters that cannot make
	// progress (overlap >= size would loop forever).
	ErrInvalidChunking = errors.New("invalid chunking parameters")

	// ErrInvalidProfile indicates a CandidateProfile failed validation.
	ErrInvalidProfile = errors.New("invalid candidate profile")

	// ErrInvalidScore indicates a candidate score outside 0-100.
	ErrInvalidScore = errors.New("candidate score must be between 0 and 100")

	// ErrInvalidSalary indicates an estimated salary outside the allowed
	// band or not a multiple of 100.
	ErrInvalidSalary = errors.New("estimated salary must be a multiple of 100 between 2000 and 35000")

	// ErrInvalidExperience indicates a negative years-of-experience value.
	ErrInvalidExperience = errors.New("years of experience cannot be negative")

	// ErrInvalidTier indicates an unrecognized response tier value.
	ErrInvalidTier = errors.New("invalid response tier")

	// ErrEmptyDocument indicates a Document with no content bytes.
	ErrEmptyDocument = errors.New("document has no content")
)
