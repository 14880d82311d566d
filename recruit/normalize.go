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


package recruit

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/atriumlabs/converso/core"
)

var nonDigits = regexp.MustCompile(`\D`)

// NormalizeProfile cleans a parsed candidate record in place: names and
// titles get title case, the phone keeps digits only, and contact handles
// that do not look like what they claim to be are blanked.
func NormalizeProfile(p *core.CandidateProfile) {
	title := cases.Title(language.BrazilianPortuguese)

	p.Name = strings.TrimSpace(title.String(p.Name))
	p.Location = strings.TrimSpace(title.String(p.Location))
	p.CurrentRole = strings.TrimSpace(title.String(p.CurrentRole))
	p.Company = strings.TrimSpace(title.String(p.Company))
	p.EducationLevel = strings.TrimSpace(title.String(p.EducationLevel))
	p.School = strings.TrimSpace(title.String(p.School))
	p.Skills = strings.TrimSpace(p.Skills)

	p.Phone = nonDigits.ReplaceAllString(p.Phone, "")

	if !strings.Contains(strings.ToLower(p.Email), ".com") {
		p.Email = ""
	}
	if strings.Contains(strings.ToLower(p.LinkedIn), "linkedin") {
		p.LinkedIn = strings.TrimSuffix(strings.ReplaceAll(p.LinkedIn, "www.", ""), "/")
	} else {
		p.LinkedIn = ""
	}
	p.Git = strings.ReplaceAll(p.Git, "https://", "")
	p.Git = strings.ReplaceAll(p.Git, "www.", "")
	p.Git = strings.TrimSuffix(p.Git, "/")
}

// RankProfiles normalizes the successfully parsed profiles, drops records
// without a candidate name, and sorts best score first with estimated
// salary as the tiebreaker.
func RankProfiles(results []*core.ScreeningResult) []*core.CandidateProfile {
	var profiles []*core.CandidateProfile
	for _, result := range results {
		if result.Profile == nil {
			continue
		}
		NormalizeProfile(result.Profile)
		if result.Profile.Name == "" {
			continue
		}
		profiles = append(profiles, result.Profile)
	}

	sort.SliceStable(profiles, func(i, j int) bool {
		if profiles[i].CandidateScore != profiles[j].CandidateScore {
			return profiles[i].CandidateScore > profiles[j].CandidateScore
		}
		return profiles[i].EstimatedSalary > profiles[j].EstimatedSalary
	})

	return profiles
}
