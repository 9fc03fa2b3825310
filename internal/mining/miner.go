package mining

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxCandidates caps the mined candidate set to bound embedding cost
// downstream. Insertion order is preserved up to the cap.
const MaxCandidates = 50

// MineCandidates scans raw documents and produces a deduplicated,
// ordered set of candidate skill phrases using the default thresholds.
func MineCandidates(texts []string) []string {
	return MineCandidatesWith(DefaultThresholds(), texts)
}

// MineCandidatesWith is MineCandidates with explicit narrowing
// thresholds. Each mining stage adds to a growing set; no stage
// replaces the output of a previous one.
func MineCandidatesWith(t Thresholds, texts []string) []string {
	joined := strings.TrimSpace(strings.Join(texts, "\n"))
	if joined == "" {
		return nil
	}

	cleaned := CleanText(joined)
	if cleaned == "" {
		return nil
	}
	narrowed := NarrowToSkills(cleaned, t)

	set := newCandidateSet()

	// Domain-category battery against the narrowed text.
	set.addAll(DomainMatches(narrowed))

	// Hyphenated compounds and quoted substrings.
	set.addAll(hyphenatedRe.FindAllString(narrowed, -1))
	for _, m := range quotedRe.FindAllStringSubmatch(narrowed, -1) {
		set.add(m[1])
	}

	// Whitelist battery runs on the full cleaned text, independent of
	// narrowing, to recover high-value terms narrowing may have dropped.
	for _, re := range whitelistPatterns {
		set.addAll(re.FindAllString(cleaned, -1))
	}

	// Two-word shape phrases from the narrowed text.
	set.addAll(mineTwoWordPhrases(narrowed))

	// Fixed multi-word phrases from the full text.
	set.addAll(mineFixedPhrases(cleaned))

	return filterCandidates(set.items())
}

// candidateSet is an insertion-ordered set with case-insensitive keys.
type candidateSet struct {
	seen  map[string]bool
	order []string
}

func newCandidateSet() *candidateSet {
	return &candidateSet{seen: make(map[string]bool)}
}

func (s *candidateSet) add(term string) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}
	key := strings.ToLower(term)
	if s.seen[key] {
		return
	}
	s.seen[key] = true
	s.order = append(s.order, term)
}

func (s *candidateSet) addAll(terms []string) {
	for _, t := range terms {
		s.add(t)
	}
}

func (s *candidateSet) items() []string {
	return s.order
}

var (
	capitalizedWordRe = regexp.MustCompile(`^[A-Z][a-z]+$`)
	acronymRe         = regexp.MustCompile(`^[A-Z0-9]{3,}$`)
)

// filterCandidates applies the post-mining filter to the unioned
// candidate set and caps the result at MaxCandidates.
func filterCandidates(candidates []string) []string {
	var kept []string
	for _, term := range candidates {
		if passesFilters(term) {
			kept = append(kept, term)
		}
	}

	kept = dropWordSubsets(kept)

	if len(kept) > MaxCandidates {
		kept = kept[:MaxCandidates]
	}
	return kept
}

func passesFilters(term string) bool {
	if len(term) < 3 {
		return false
	}

	lower := strings.ToLower(term)
	words := strings.Fields(lower)
	if len(words) == 0 {
		return false
	}

	// Stop-word ratio.
	stops := 0
	for _, w := range words {
		if stopWords[w] {
			stops++
		}
	}
	if float64(stops)/float64(len(words)) > 0.5 {
		return false
	}

	// Benefits/compensation phrasing, modulo the technical allow-list.
	if hasBenefitsWord(words) && !containsAny(lower, benefitsExceptions) {
		return false
	}

	// Symbol-heavy junk (HTML remnants, encoding artifacts).
	if symbolRatio(term) > 0.2 {
		return false
	}

	// Must look job-relevant: relevance keyword, domain pattern, or a
	// capitalized word / all-caps acronym.
	if !containsAny(lower, relevanceKeywords) &&
		!MatchesDomainPattern(term) &&
		!capitalizedWordRe.MatchString(term) &&
		!acronymRe.MatchString(term) {
		return false
	}

	// Generic workplace nouns carry no signal on their own.
	if containsAny(lower, genericWorkplaceWords) && !containsAny(lower, relevanceKeywords) {
		return false
	}

	return true
}

func hasBenefitsWord(words []string) bool {
	for _, w := range words {
		if benefitsWords[strings.Trim(w, ".,;:")] {
			return true
		}
	}
	return false
}

// symbolRatio is the fraction of characters that are neither
// alphanumeric nor spaces.
func symbolRatio(term string) float64 {
	if term == "" {
		return 0
	}
	symbols := 0
	total := 0
	for _, r := range term {
		total++
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			symbols++
		}
	}
	return float64(symbols) / float64(total)
}

// dropWordSubsets removes terms whose word set is a strict subset of a
// longer surviving candidate, keeping the longer, more specific
// phrasing. Terms that independently match a domain pattern are kept;
// the downstream dedup chain decides between those.
func dropWordSubsets(candidates []string) []string {
	wordSets := make([]map[string]bool, len(candidates))
	for i, c := range candidates {
		set := make(map[string]bool)
		for _, w := range strings.Fields(strings.ToLower(c)) {
			set[w] = true
		}
		wordSets[i] = set
	}

	var kept []string
	for i, c := range candidates {
		if MatchesDomainPattern(c) {
			kept = append(kept, c)
			continue
		}
		subset := false
		for j := range candidates {
			if i == j || len(candidates[j]) <= len(c) {
				continue
			}
			if isWordSubset(wordSets[i], wordSets[j]) {
				subset = true
				break
			}
		}
		if !subset {
			kept = append(kept, c)
		}
	}
	return kept
}

func isWordSubset(a, b map[string]bool) bool {
	if len(a) >= len(b) {
		return false
	}
	for w := range a {
		if !b[w] {
			return false
		}
	}
	return true
}
