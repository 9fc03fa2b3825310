package mining

import (
	"regexp"
	"strings"
)

// Word sets for two-word skill-phrase shapes. A sliding pair of tokens
// is kept only when it matches one of the combination shapes below.
var (
	domainNouns = map[string]bool{
		"data": true, "project": true, "product": true, "software": true,
		"business": true, "marketing": true, "sales": true, "customer": true,
		"financial": true, "clinical": true, "quality": true, "supply": true,
		"risk": true, "content": true, "account": true, "inventory": true,
		"program": true, "operations": true, "vendor": true, "database": true,
	}
	actionNouns = map[string]bool{
		"analysis": true, "management": true, "development": true,
		"engineering": true, "design": true, "strategy": true,
		"operations": true, "support": true, "research": true,
		"planning": true, "reporting": true, "testing": true,
		"automation": true, "administration": true, "forecasting": true,
		"optimization": true, "migration": true, "integration": true,
	}
	degreeWords = map[string]bool{
		"bachelor": true, "bachelors": true, "master": true, "masters": true,
		"associate": true, "associates": true, "doctoral": true,
		"doctorate": true, "phd": true, "mba": true,
	}
	credentialWords = map[string]bool{
		"degree": true, "certification": true, "certificate": true,
		"diploma": true, "license": true, "credential": true,
	}
	intensityAdjectives = map[string]bool{
		"strong": true, "excellent": true, "outstanding": true,
		"exceptional": true, "proven": true, "effective": true,
		"superior": true, "solid": true,
	}
	softSkillNouns = map[string]bool{
		"communication": true, "leadership": true, "teamwork": true,
		"collaboration": true, "organization": true, "multitasking": true,
		"negotiation": true, "presentation": true, "interpersonal": true,
	}
	vendorWords = map[string]bool{
		"aws": true, "azure": true, "google": true, "microsoft": true,
		"oracle": true, "adobe": true, "salesforce": true, "sap": true,
		"atlassian": true, "cisco": true,
	}
	productCategories = map[string]bool{
		"cloud": true, "analytics": true, "crm": true, "erp": true,
		"devops": true, "database": true, "security": true, "suite": true,
	}
)

// matchesSkillShape reports whether a lower-cased token pair forms one
// of the recognized skill combination shapes.
func matchesSkillShape(first, second string) bool {
	switch {
	case domainNouns[first] && actionNouns[second]:
		return true
	case degreeWords[first] && credentialWords[second]:
		return true
	case intensityAdjectives[first] && softSkillNouns[second]:
		return true
	case vendorWords[first] && productCategories[second]:
		return true
	}
	return false
}

var tokenStripRe = regexp.MustCompile(`[^a-z0-9+#]`)

// mineTwoWordPhrases slides a window of two over lower-cased,
// punctuation-stripped tokens (length > 2 each) and collects pairs that
// match a skill combination shape, capitalized.
func mineTwoWordPhrases(text string) []string {
	raw := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		tok = tokenStripRe.ReplaceAllString(tok, "")
		if len(tok) > 2 {
			tokens = append(tokens, tok)
		}
	}

	var phrases []string
	for i := 0; i+1 < len(tokens); i++ {
		if matchesSkillShape(tokens[i], tokens[i+1]) {
			phrases = append(phrases, capitalizeWords(tokens[i]+" "+tokens[i+1]))
		}
	}
	return phrases
}

// capitalizeWords upper-cases the first letter of every word.
func capitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// maxFixedPhraseLen bounds spans accepted from the fixed phrase
// battery; anything longer is a sentence fragment, not a skill phrase.
const maxFixedPhraseLen = 25

// fixedPhrasePatterns are canonical multi-word skill phrases matched
// directly against the full text, not the narrowed portion.
var fixedPhrasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:strong|excellent|effective)\s+(?:communication|leadership|organizational|interpersonal)\s+skills\b`),
	regexp.MustCompile(`(?i)\b\d+\+?\s*years?\s+(?:of\s+)?experience\b`),
	regexp.MustCompile(`(?i)\b(?:bachelor|master|associate)(?:'s|s)?\s+degree\b`),
	regexp.MustCompile(`(?i)\b(?:full|part)[- ]time\b`),
	regexp.MustCompile(`(?i)\b(?:entry[- ]level|senior[- ]level|mid[- ]level)\b`),
	regexp.MustCompile(`(?i)\bproject management\b`),
	regexp.MustCompile(`(?i)\bcustomer service\b`),
	regexp.MustCompile(`(?i)\battention to detail\b`),
	regexp.MustCompile(`(?i)\bproblem[- ]solving\b`),
	regexp.MustCompile(`(?i)\btime management\b`),
}

// mineFixedPhrases applies the fixed phrase battery to the full text
// and keeps short matches.
func mineFixedPhrases(text string) []string {
	var phrases []string
	for _, re := range fixedPhrasePatterns {
		for _, m := range re.FindAllString(text, -1) {
			m = strings.TrimSpace(m)
			if len(m) > 0 && len(m) <= maxFixedPhraseLen {
				phrases = append(phrases, m)
			}
		}
	}
	return phrases
}
