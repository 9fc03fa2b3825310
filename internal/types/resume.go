// Package types provides type definitions for structured data used throughout the skill-extractor system.
package types

// Resume represents a candidate profile in the JSON Resume shape.
// Only the sections the skill pipeline reads are modeled; unknown
// sections in the source document are ignored on decode.
type Resume struct {
	Basics       Basics        `json:"basics,omitempty"`
	Work         []Work        `json:"work,omitempty"`
	Projects     []Project     `json:"projects,omitempty"`
	Certificates []Certificate `json:"certificates,omitempty"`
	Awards       []Award       `json:"awards,omitempty"`
	Languages    []Language    `json:"languages,omitempty"`
	Education    []Education   `json:"education,omitempty"`
	Skills       []Skill       `json:"skills,omitempty"`
}

// Basics holds the candidate's header section.
type Basics struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// Work is a single work-history entry.
type Work struct {
	Name       string   `json:"name,omitempty"`
	Position   string   `json:"position,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

// Project is a single project entry.
type Project struct {
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
}

// Certificate is a named certification.
type Certificate struct {
	Name   string `json:"name,omitempty"`
	Issuer string `json:"issuer,omitempty"`
}

// Award is a single award entry.
type Award struct {
	Title   string `json:"title,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// Language is a spoken-language entry.
type Language struct {
	Language string `json:"language,omitempty"`
	Fluency  string `json:"fluency,omitempty"`
}

// Education is a single education entry. StudyType carries the degree
// ("Bachelor of Science", "MBA"), Area the field of study.
type Education struct {
	Institution string `json:"institution,omitempty"`
	StudyType   string `json:"studyType,omitempty"`
	Area        string `json:"area,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
}

// Skill is an explicitly listed profile skill.
type Skill struct {
	Name     string   `json:"name,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}
