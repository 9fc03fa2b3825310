// Package gap computes the skill gap between a candidate profile and a
// job posting's required skills.
package gap

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/skill-extractor/internal/types"
)

// degreeLevels is the 4-level degree hierarchy, in ascending order.
// Requirement strings are matched against the keys with apostrophes
// stripped from both sides, first match wins — a combined requirement
// like "Bachelor's or Master's preferred" therefore resolves as a
// bachelor requirement. This is a known ambiguity, kept deliberately.
var degreeLevels = []struct {
	key   string
	level int
}{
	{"associate", 1},
	{"bachelor", 2},
	{"master", 3},
	{"mba", 3},
	{"phd", 4},
	{"doctorate", 4},
}

var degreeRequirementRe = regexp.MustCompile(`(?i)\b(?:associate|bachelor|master|mba|phd|doctorate)(?:'s|s)?(?:\s+degree)?\b`)

// ComputeSkillGap compares a job's required skills against the
// profile's skill set. Degree requirements are resolved against the
// candidate's highest attained degree instead of plain membership;
// resume may be nil, in which case degree requirements fall back to
// membership like any other skill. Both output lists are sorted
// ascending.
func ComputeSkillGap(profileSkills, jobSkills []string, resume *types.Resume) types.SkillGapResult {
	profileSet := make(map[string]bool, len(profileSkills))
	for _, s := range profileSkills {
		profileSet[strings.ToLower(strings.TrimSpace(s))] = true
	}

	candidateLevel := 0
	if resume != nil {
		candidateLevel = HighestDegreeLevel(resume)
	}

	result := types.SkillGapResult{Matched: []string{}, Missing: []string{}}
	seen := make(map[string]bool)
	for _, skill := range jobSkills {
		lower := strings.ToLower(strings.TrimSpace(skill))
		if lower == "" || seen[lower] {
			continue
		}
		seen[lower] = true

		if candidateLevel > 0 && degreeRequirementRe.MatchString(lower) {
			if required := requiredDegreeLevel(lower); required > 0 {
				if candidateLevel >= required {
					result.Matched = append(result.Matched, skill)
				} else {
					result.Missing = append(result.Missing, skill)
				}
				continue
			}
		}

		if profileSet[lower] {
			result.Matched = append(result.Matched, skill)
		} else {
			result.Missing = append(result.Missing, skill)
		}
	}

	sort.Strings(result.Matched)
	sort.Strings(result.Missing)
	return result
}

// requiredDegreeLevel resolves a degree-requirement string to its
// hierarchy level. Apostrophes are stripped before substring
// comparison so "bachelors" and "bachelor's" both resolve.
func requiredDegreeLevel(requirement string) int {
	req := stripApostrophes(strings.ToLower(requirement))
	for _, d := range degreeLevels {
		if strings.Contains(req, stripApostrophes(d.key)) {
			return d.level
		}
	}
	return 0
}

// HighestDegreeLevel derives the candidate's highest attained degree
// from résumé education entries. Returns 0 when no entry matches the
// hierarchy.
func HighestDegreeLevel(resume *types.Resume) int {
	highest := 0
	for _, edu := range resume.Education {
		// Periods are stripped so "Ph.D." resolves alongside "PhD".
		text := strings.ReplaceAll(stripApostrophes(strings.ToLower(edu.StudyType+" "+edu.Area)), ".", "")
		for _, d := range degreeLevels {
			if strings.Contains(text, stripApostrophes(d.key)) && d.level > highest {
				highest = d.level
			}
		}
	}
	return highest
}

func stripApostrophes(s string) string {
	s = strings.ReplaceAll(s, "'", "")
	return strings.ReplaceAll(s, "’", "")
}
