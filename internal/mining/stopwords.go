package mining

import "strings"

// stopWords is the default stop-word list used for the stop-word-ratio
// filter and the two-word phrase miner.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "been": true, "but": true, "by": true, "can": true, "could": true,
	"do": true, "does": true, "for": true, "from": true, "had": true, "has": true,
	"have": true, "how": true, "if": true, "in": true, "into": true, "is": true,
	"it": true, "its": true, "may": true, "more": true, "most": true, "must": true,
	"not": true, "of": true, "on": true, "or": true, "our": true, "should": true,
	"so": true, "such": true, "than": true, "that": true, "the": true, "their": true,
	"them": true, "then": true, "they": true, "this": true, "to": true, "was": true,
	"we": true, "were": true, "what": true, "when": true, "where": true, "which": true,
	"while": true, "who": true, "why": true, "will": true, "with": true, "would": true,
	"you": true, "your": true,
}

// benefitsWords flag compensation/benefits phrasing that should not
// surface as a skill. Terms containing one are dropped unless they hit
// the compound-technical allow-list below.
var benefitsWords = map[string]bool{
	"401k": true, "401(k)": true, "insurance": true, "dental": true,
	"vision": true, "pto": true, "vacation": true, "holiday": true,
	"salary": true, "compensation": true, "bonus": true, "perks": true,
	"benefits": true, "retirement": true, "wellness": true,
}

// benefitsExceptions are compound technical terms that legitimately
// contain a benefits word ("health informatics" is a discipline, not a
// perk).
var benefitsExceptions = []string{
	"health informatics",
	"healthcare analytics",
	"benefits administration",
	"compensation analysis",
	"vision systems",
	"computer vision",
	"dental software",
}

// relevanceKeywords mark a term as job-relevant on its own. A surviving
// term must contain one of these, match a domain pattern, or be a
// capitalized word / all-caps acronym.
var relevanceKeywords = []string{
	"experience", "skill", "management", "degree", "required", "remote",
	"sql", "certified", "certification", "engineering", "development",
	"analysis", "analytics", "software", "technical", "proficiency",
	"proficient", "knowledge", "years", "license", "bilingual",
}

// genericWorkplaceWords are company/workplace nouns that carry no skill
// signal by themselves ("our team", "fast-paced environment").
var genericWorkplaceWords = []string{
	"platform", "our team", "the team", "company", "culture", "mission",
	"office", "environment", "opportunity", "candidate", "workplace",
	"employees", "organization",
}

// skillIndicatorWords flag sentences likely to describe requirements.
var skillIndicatorWords = []string{
	"experience", "skill", "proficien", "knowledge", "ability", "familiar",
	"degree", "certified", "certification", "required", "qualification",
	"expertise", "competen",
}

// companyNarrativeWords flag marketing/about-us prose to exclude during
// the sentence-filter fallback.
var companyNarrativeWords = []string{
	"we are", "we're", "our company", "our mission", "our story", "founded",
	"we believe", "join us", "about us", "our culture", "our values",
}

// containsAny reports whether lowercased s contains any of the given
// lowercase words as a substring.
func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
