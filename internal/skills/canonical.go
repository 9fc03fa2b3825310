// Package skills normalizes extracted terms onto a canonical skill
// vocabulary and derives skill sets from résumés and job postings.
package skills

// CanonicalSkills is the closed reference vocabulary of normalized
// skill names. It is immutable at run time; the alias table may map
// many surface forms onto one entry, but no entries are added
// dynamically.
var CanonicalSkills = []string{
	"accounting",
	"agile",
	"angular",
	"aws",
	"azure",
	"budgeting",
	"c#",
	"c++",
	"communication",
	"compliance",
	"content marketing",
	"css",
	"curriculum development",
	"customer service",
	"data analysis",
	"data science",
	"django",
	"docker",
	"excel",
	"financial analysis",
	"gcp",
	"git",
	"go",
	"graphql",
	"html",
	"java",
	"javascript",
	"kotlin",
	"kubernetes",
	"leadership",
	"legal research",
	"linux",
	"logistics",
	"machine learning",
	"marketing",
	"mongodb",
	"mysql",
	"node.js",
	"nursing",
	"patient care",
	"php",
	"postgresql",
	"power bi",
	"problem solving",
	"product management",
	"project management",
	"python",
	"quality assurance",
	"react",
	"redis",
	"rest apis",
	"ruby",
	"salesforce",
	"scrum",
	"seo",
	"sql",
	"supply chain",
	"swift",
	"tableau",
	"teaching",
	"teamwork",
	"terraform",
	"time management",
	"typescript",
	"vue",
}

// skillAliases maps normalized surface forms onto canonical skills,
// many-to-one. Keys are already in normalized form (lower-case,
// [a-z0-9+#. ] only).
var skillAliases = map[string]string{
	"golang":                "go",
	"go lang":               "go",
	"js":                    "javascript",
	"ecmascript":            "javascript",
	"ts":                    "typescript",
	"reactjs":               "react",
	"react.js":              "react",
	"vuejs":                 "vue",
	"vue.js":                "vue",
	"angularjs":             "angular",
	"node":                  "node.js",
	"nodejs":                "node.js",
	"k8s":                   "kubernetes",
	"amazon web services":   "aws",
	"google cloud":          "gcp",
	"google cloud platform": "gcp",
	"ms excel":              "excel",
	"microsoft excel":       "excel",
	"postgres":              "postgresql",
	"mongo":                 "mongodb",
	"ml":                    "machine learning",
	"qa":                    "quality assurance",
	"rest":                  "rest apis",
	"rest api":              "rest apis",
	"restful apis":          "rest apis",
	"scrum master":          "scrum",
	"problemsolving":        "problem solving",
	"powerbi":               "power bi",
	"search engine optimization": "seo",
}

var canonicalSet = func() map[string]bool {
	set := make(map[string]bool, len(CanonicalSkills))
	for _, s := range CanonicalSkills {
		set[s] = true
	}
	return set
}()

// IsCanonical reports whether a normalized term is itself a canonical
// skill.
func IsCanonical(term string) bool {
	return canonicalSet[term]
}

// LookupAlias resolves a normalized term through the alias table.
func LookupAlias(term string) (string, bool) {
	canonical, ok := skillAliases[term]
	return canonical, ok
}
