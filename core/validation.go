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

import "fmt"

// ValidateChunking validates splitter parameters.
//
// Validation rules:
//   - chunkSize must be positive
//   - chunkOverlap must be non-negative and strictly less than chunkSize
//
// The strict overlap < size rule is what guarantees the splitter always
// advances through the input.
func ValidateChunking(chunkSize, chunkOverlap int) error {
	if chunkSize <= 0 {
		return fmt.Errorf("%w: chunk size %d must be positive", ErrInvalidChunking, chunkSize)
	}
	if chunkOverlap < 0 {
		return fmt.Errorf("%w: chunk overlap %d cannot be negative", ErrInvalidChunking, chunkOverlap)
	}
	if chunkOverlap >= chunkSize {
		return fmt.Errorf("%w: chunk overlap %d must be less than chunk size %d",
			ErrInvalidChunking, chunkOverlap, chunkSize)
	}
	return nil
}

// ValidateProfile validates a CandidateProfile extracted from a CV.
//
// Validation rules:
//   - CandidateScore must be within 0-100
//   - EstimatedSalary, when set, must be a multiple of 100 within 2000-35000
//   - YearsExperience must not be negative
//
// NOT validated: free-text fields (the model may legitimately leave any
// of them blank).
func ValidateProfile(profile *CandidateProfile) error {
	if profile == nil {
		return fmt.Errorf("%w: profile is nil", ErrInvalidProfile)
	}

	if profile.CandidateScore < 0 || profile.CandidateScore > 100 {
		return fmt.Errorf("%w: %w (got %d)", ErrInvalidProfile, ErrInvalidScore, profile.CandidateScore)
	}

	if profile.EstimatedSalary != 0 {
		if profile.EstimatedSalary < 2000 || profile.EstimatedSalary > 35000 || profile.EstimatedSalary%100 != 0 {
			return fmt.Errorf("%w: %w (got %d)", ErrInvalidProfile, ErrInvalidSalary, profile.EstimatedSalary)
		}
	}

	if profile.YearsExperience < 0 {
		return fmt.Errorf("%w: %w (got %d)", ErrInvalidProfile, ErrInvalidExperience, profile.YearsExperience)
	}

	return nil
}

// ValidateTier validates that a Tier has a recognized value.
func ValidateTier(tier Tier) error {
	switch tier {
	case TierBlocked, TierKnowledge, TierUngrounded, TierGrounded:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrInvalidTier, tier)
	}
}
