package mining

import (
	"html"
	"regexp"
	"strings"
)

var (
	htmlTagRe        = regexp.MustCompile(`<[^>]+>`)
	escapedSpaceRe   = regexp.MustCompile(`\\+[ntr]`)
	escapedQuoteRe   = regexp.MustCompile(`\\+["']`)
	repeatedPunctRe  = regexp.MustCompile(`[.,;:!?•·*-]{2,}`)
	whitespaceRe     = regexp.MustCompile(`\s+`)
	misencodedQuotes = strings.NewReplacer(
		"â", "'",
		"â", "'",
		"â", `"`,
		"â", `"`,
		"â", "-",
		"â", "-",
		"‘", "'",
		"’", "'",
		"“", `"`,
		"”", `"`,
	)
)

// CleanText normalizes raw job-posting text: strips HTML tags and
// entities, collapses escaped whitespace/quote sequences and repeated
// punctuation, fixes mis-encoded smart quotes, and normalizes
// whitespace.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Tags first, then entities: "&lt;div&gt;" must not survive as a tag.
	content = htmlTagRe.ReplaceAllString(content, " ")
	content = html.UnescapeString(content)

	content = misencodedQuotes.Replace(content)
	content = escapedQuoteRe.ReplaceAllString(content, `"`)
	content = escapedSpaceRe.ReplaceAllString(content, " ")
	content = repeatedPunctRe.ReplaceAllStringFunc(content, collapsePunctRun)
	content = whitespaceRe.ReplaceAllString(content, " ")

	return strings.TrimSpace(content)
}

// collapsePunctRun reduces each run of identical punctuation inside a
// matched sequence to a single character, so "!!!" becomes "!" while
// "?!" is left alone.
func collapsePunctRun(run string) string {
	var b strings.Builder
	prev := rune(-1)
	for _, r := range run {
		if r != prev {
			b.WriteRune(r)
		}
		prev = r
	}
	return b.String()
}
