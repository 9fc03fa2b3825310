// Package mining extracts candidate skill phrases from noisy job-posting text.
package mining

import "regexp"

// CategoryPattern pairs a domain category with its compiled pattern.
// The battery is iterated generically; adding a category means adding
// a row, not a branch.
type CategoryPattern struct {
	Category string
	Pattern  *regexp.Regexp
}

// categoryPatterns is the fixed battery of domain-category regexes
// applied to the narrowed text. Every match becomes a candidate.
var categoryPatterns = []CategoryPattern{
	{"technical", regexp.MustCompile(`(?i)(?:\b(?:javascript|typescript|python|java|golang|ruby|php|scala|kotlin|swift|sql|nosql|html|css|react|angular|vue|node\.?js|django|flask|spring|rails|kubernetes|docker|terraform|ansible|jenkins|aws|azure|gcp|linux|unix|git|graphql|rest api|apis?|microservices|machine learning|deep learning|data science|data analysis|etl|devops|ci/cd|agile|scrum)\b|c\+\+|c#|\.net)`)},
	{"healthcare", regexp.MustCompile(`(?i)\b(?:patient care|clinical|nursing|phlebotomy|radiology|pharmacy|medical records|medical billing|hipaa|emr|ehr|epic|cerner|telehealth|icu|triage|vital signs|health informatics)\b`)},
	{"finance", regexp.MustCompile(`(?i)\b(?:accounting|bookkeeping|financial analysis|financial modeling|forecasting|budgeting|auditing|gaap|quickbooks|payroll|accounts payable|accounts receivable|tax preparation|risk management|portfolio management|reconciliation)\b`)},
	{"marketing", regexp.MustCompile(`(?i)\b(?:seo|sem|content marketing|social media|google analytics|email marketing|copywriting|brand management|market research|ppc|a/b testing|campaign management|lead generation)\b`)},
	{"manufacturing", regexp.MustCompile(`(?i)\b(?:lean manufacturing|six sigma|cnc|welding|quality control|quality assurance|iso 9001|supply chain|logistics|inventory management|forklift|osha|kaizen|blueprint reading)\b`)},
	{"education", regexp.MustCompile(`(?i)\b(?:curriculum development|lesson planning|classroom management|special education|esl|iep|tutoring|student assessment|instructional design)\b`)},
	{"legal", regexp.MustCompile(`(?i)\b(?:litigation|legal research|contract law|contract negotiation|compliance|paralegal|due diligence|intellectual property|westlaw|lexisnexis|e-discovery)\b`)},
	{"soft_skills", regexp.MustCompile(`(?i)\b(?:communication|leadership|teamwork|problem[- ]solving|time management|collaboration|adaptability|critical thinking|attention to detail|customer service|conflict resolution|decision[- ]making|multitasking)\b`)},
	{"languages", regexp.MustCompile(`(?i)\b(?:bilingual|multilingual|spanish|french|german|mandarin|cantonese|japanese|korean|portuguese|italian|arabic|russian|hindi)\b`)},
	{"certifications", regexp.MustCompile(`(?i)\b(?:pmp|cpa|cfa|cissp|ccna|comptia|aws certified|azure certified|scrum master|csm|cna|rn|lpn|bls|acls|cdl|servsafe|series 7|series 63)\b`)},
	{"seniority", regexp.MustCompile(`(?i)\b(?:entry[- ]level|junior|senior|lead|principal|staff|manager|director|vice president|executive|intern)\b`)},
	{"experience", regexp.MustCompile(`(?i)\b\d+\+?\s*(?:years?|yrs?)(?:\s+of)?\s+experience\b`)},
	{"location", regexp.MustCompile(`(?i)\b(?:remote|hybrid|on[- ]?site|relocation|work from home|travel required)\b`)},
	{"benefits", regexp.MustCompile(`(?i)\b(?:401\s?\(?k\)?|health insurance|dental|vision|pto|paid time off|parental leave|tuition reimbursement|stock options|equity|sign[- ]on bonus)\b`)},
	{"industry", regexp.MustCompile(`(?i)\b(?:saas|fintech|healthtech|e-?commerce|biotech|aerospace|automotive|retail|hospitality|non-?profit|government|startup)\b`)},
}

// whitelistPatterns is a second, higher-precision battery of explicit
// named tools, frameworks, certifications and job types. Matches are
// always added, independent of narrowing, to recover high-value terms
// the narrowing step may have dropped.
var whitelistPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:React|Angular|Vue\.js|Node\.js|Next\.js|Django|Flask|Spring Boot|Ruby on Rails|Kubernetes|Docker|Terraform|Ansible|Jenkins|PostgreSQL|MySQL|MongoDB|Redis|Kafka|Elasticsearch|Snowflake|Spark|Hadoop|Airflow)\b`),
	regexp.MustCompile(`(?i)\b(?:Tableau|Power BI|Looker|Excel|Salesforce|HubSpot|SAP|Workday|ServiceNow|Jira|Confluence|AutoCAD|SolidWorks|Photoshop|Illustrator|Figma|Sketch)\b`),
	regexp.MustCompile(`(?i)\b(?:PMP|CPA|CFA|CISSP|CCNA|CompTIA A\+|CompTIA Security\+|AWS Certified|Azure Certified|Certified Scrum Master|Six Sigma (?:Green|Black) Belt)\b`),
	regexp.MustCompile(`(?i)\b(?:full[- ]time|part[- ]time|contract(?:or)?|freelance|temporary|seasonal|internship)\b`),
}

// hyphenatedRe matches word-word(-word)* compounds ("self-motivated",
// "e-discovery", "day-to-day").
var hyphenatedRe = regexp.MustCompile(`\b[A-Za-z]+(?:-[A-Za-z]+)+\b`)

// quotedRe matches short quoted substrings, straight or smart quotes.
var quotedRe = regexp.MustCompile(`["\x{201C}]([^"\x{201C}\x{201D}]{2,40})["\x{201D}]`)

// MatchesDomainPattern reports whether a term matches any
// domain-category pattern. Used both by the post-mining filter and by
// the downstream quality filter's single-word allowance.
func MatchesDomainPattern(term string) bool {
	for _, cp := range categoryPatterns {
		if cp.Pattern.MatchString(term) {
			return true
		}
	}
	return false
}

// DomainMatches returns every domain-pattern match found in text, in
// match order across the battery.
func DomainMatches(text string) []string {
	var matches []string
	for _, cp := range categoryPatterns {
		matches = append(matches, cp.Pattern.FindAllString(text, -1)...)
	}
	return matches
}
