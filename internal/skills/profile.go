package skills

import (
	"context"
	"log"
	"strings"

	"github.com/jonathan/skill-extractor/internal/keywords"
	"github.com/jonathan/skill-extractor/internal/types"
)

// Service derives canonical skill sets from résumés and job postings.
// Skill extraction is an enhancement, not a required path: embedding
// failures degrade to an empty result with a logged warning rather than
// propagating.
type Service struct {
	extractor  *keywords.Extractor
	normalizer *Normalizer
}

// NewService creates a Service sharing one extractor and one normalizer
// (and therefore one normalization cache) across calls.
func NewService(extractor *keywords.Extractor, normalizer *Normalizer) *Service {
	return &Service{extractor: extractor, normalizer: normalizer}
}

// Normalizer exposes the shared normalizer for direct use.
func (s *Service) Normalizer() *Normalizer {
	return s.normalizer
}

// ComputeProfileSkills extracts and normalizes skills from a résumé's
// free-text sections.
func (s *Service) ComputeProfileSkills(ctx context.Context, resume *types.Resume) []string {
	if resume == nil {
		return []string{}
	}
	return s.computeSkills(ctx, "profile", gatherResumeText(resume))
}

// ComputeJobSkills extracts and normalizes skills from a job posting.
func (s *Service) ComputeJobSkills(ctx context.Context, job *types.JobPosting) []string {
	if job == nil || strings.TrimSpace(job.Text) == "" {
		return []string{}
	}
	return s.computeSkills(ctx, "job", []string{job.Text})
}

// NormalizeSkills maps arbitrary terms onto the canonical vocabulary.
func (s *Service) NormalizeSkills(ctx context.Context, terms []string) ([]string, error) {
	return s.normalizer.NormalizeSkills(ctx, terms)
}

func (s *Service) computeSkills(ctx context.Context, section string, texts []string) []string {
	kws, err := s.extractor.Extract(ctx, texts, keywords.ResumeTopK)
	if err != nil {
		log.Printf("[SKILLS] warning: keyword extraction failed for %s, returning empty skill set: %v", section, err)
		return []string{}
	}

	terms := make([]string, len(kws))
	for i, kw := range kws {
		terms[i] = kw.Term
	}

	normalized, err := s.normalizer.NormalizeSkills(ctx, terms)
	if err != nil {
		log.Printf("[SKILLS] warning: normalization failed for %s, returning empty skill set: %v", section, err)
		return []string{}
	}
	return normalized
}

// gatherResumeText collects the résumé sections the skill pipeline
// reads: summary, work, projects, certificates, awards, languages,
// education, and explicitly listed skills.
func gatherResumeText(r *types.Resume) []string {
	var texts []string
	add := func(s string) {
		if strings.TrimSpace(s) != "" {
			texts = append(texts, s)
		}
	}

	add(r.Basics.Summary)
	for _, w := range r.Work {
		add(w.Summary)
		for _, h := range w.Highlights {
			add(h)
		}
	}
	for _, p := range r.Projects {
		add(p.Description)
		for _, h := range p.Highlights {
			add(h)
		}
	}
	for _, c := range r.Certificates {
		add(c.Name)
	}
	for _, a := range r.Awards {
		add(a.Summary)
	}
	for _, l := range r.Languages {
		add(strings.TrimSpace(l.Language + " " + l.Fluency))
	}
	for _, e := range r.Education {
		add(strings.TrimSpace(e.StudyType + " " + e.Area))
	}
	for _, sk := range r.Skills {
		add(sk.Name)
		for _, kw := range sk.Keywords {
			add(kw)
		}
	}
	return texts
}
