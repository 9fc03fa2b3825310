package types

// JobPosting is the job-item shape consumed by the skill pipeline.
// Text holds the full free-text description; the remaining fields are
// metadata carried along for storage and display.
type JobPosting struct {
	Title    string `json:"title,omitempty"`
	Company  string `json:"company,omitempty"`
	Location string `json:"location,omitempty"`
	URL      string `json:"url,omitempty"`
	Text     string `json:"text"`
}

// SkillGapResult is the derived output of a skill-gap computation.
// It is recomputed on demand; persisted rows are snapshots, never
// primary truth.
type SkillGapResult struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}
