package mining

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Thresholds holds the tunable knobs of the skills-only narrowing
// cascade. The defaults are heuristic values carried from production
// tuning; they are exposed here rather than hard-coded so they can be
// adjusted per deployment.
type Thresholds struct {
	// MinSectionChars is the minimum combined length of matched
	// requirement sections before falling back to sentence filtering.
	MinSectionChars int
	// MinSentenceChars is the minimum length of filtered sentences
	// before falling back to a direct domain-pattern scan.
	MinSentenceChars int
	// MinDocChars is the document length below which narrowing is
	// skipped entirely (short postings are mined whole).
	MinDocChars int
	// FallbackChars is the size of the truncated-text final fallback.
	FallbackChars int
}

// DefaultThresholds returns the production defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinSectionChars:  50,
		MinSentenceChars: 30,
		MinDocChars:      150,
		FallbackChars:    200,
	}
}

// sectionHeaderRe matches any recognized section header in flattened
// posting text.
var sectionHeaderRe = regexp.MustCompile(`(?i)\b(requirements|qualifications|preferred qualifications|minimum qualifications|what you'?ll need|what we'?re looking for|who you are|must[- ]haves?|skills and experience|skills|nice to have|responsibilities|about (?:you|us|the role|the company)|benefits|perks|compensation|what we offer|why join)\b\s*:?`)

// skillSectionNames are the headers whose bodies likely hold
// requirements/skills text.
var skillSectionNames = map[string]bool{
	"requirements":             true,
	"qualifications":           true,
	"preferred qualifications": true,
	"minimum qualifications":   true,
	"what you'll need":         true,
	"what we're looking for":   true,
	"who you are":              true,
	"must-have":                true,
	"must-haves":               true,
	"must have":                true,
	"must haves":               true,
	"skills and experience":    true,
	"skills":                   true,
	"nice to have":             true,
}

var sentenceSplitRe = regexp.MustCompile(`[.!?]\s+|[;•·]\s*`)

// NarrowToSkills isolates the portion of cleaned posting text likely to
// contain requirements and skills. Job postings are dominated by
// marketing prose; mining the whole document produces low-precision
// candidates. The cascade: named sections, then skill-indicator
// sentences, then direct domain-pattern matches, then a truncated
// prefix.
func NarrowToSkills(cleaned string, t Thresholds) string {
	if len(cleaned) < t.MinDocChars {
		return cleaned
	}

	if sections := extractSkillSections(cleaned); len(sections) >= t.MinSectionChars {
		return sections
	}

	if sentences := filterSkillSentences(cleaned); len(sentences) >= t.MinSentenceChars {
		return sentences
	}

	if matches := DomainMatches(cleaned); len(matches) > 0 {
		return strings.Join(matches, ". ")
	}

	if len(cleaned) > t.FallbackChars {
		// Back off to a rune boundary so a multi-byte character is
		// never split mid-sequence.
		cut := t.FallbackChars
		for cut > 0 && !utf8.RuneStart(cleaned[cut]) {
			cut--
		}
		return cleaned[:cut]
	}
	return cleaned
}

// extractSkillSections returns the concatenated bodies of recognized
// requirement/qualification sections, each running to the next section
// header.
func extractSkillSections(text string) string {
	locs := sectionHeaderRe.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return ""
	}

	var parts []string
	for i, loc := range locs {
		name := strings.ToLower(text[loc[2]:loc[3]])
		name = strings.ReplaceAll(name, "’", "'")
		if !skillSectionNames[name] {
			continue
		}
		start := loc[1]
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		if body := strings.TrimSpace(text[start:end]); body != "" {
			parts = append(parts, body)
		}
	}
	return strings.Join(parts, " ")
}

// filterSkillSentences keeps sentences that mention a skill indicator
// and do not read like company narrative.
func filterSkillSentences(text string) string {
	var kept []string
	for _, sentence := range sentenceSplitRe.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		lower := strings.ToLower(sentence)
		if containsAny(lower, skillIndicatorWords) && !containsAny(lower, companyNarrativeWords) {
			kept = append(kept, sentence)
		}
	}
	return strings.Join(kept, ". ")
}
