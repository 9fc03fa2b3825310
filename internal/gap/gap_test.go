package gap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skill-extractor/internal/types"
)

func resumeWithDegrees(entries ...types.Education) *types.Resume {
	return &types.Resume{Education: entries}
}

func TestComputeSkillGap_Basic(t *testing.T) {
	result := ComputeSkillGap([]string{"python", "sql"}, []string{"python", "react"}, nil)
	assert.Equal(t, []string{"python"}, result.Matched)
	assert.Equal(t, []string{"react"}, result.Missing)
}

func TestComputeSkillGap_EmptyInputs(t *testing.T) {
	result := ComputeSkillGap(nil, nil, nil)
	require.NotNil(t, result.Matched)
	require.NotNil(t, result.Missing)
	assert.Empty(t, result.Matched)
	assert.Empty(t, result.Missing)
}

func TestComputeSkillGap_CaseInsensitiveMembership(t *testing.T) {
	result := ComputeSkillGap([]string{"Python", " SQL "}, []string{"python", "sql", "Go"}, nil)
	assert.Equal(t, []string{"python", "sql"}, result.Matched)
	assert.Equal(t, []string{"Go"}, result.Missing)
}

func TestComputeSkillGap_SortedAndDeduped(t *testing.T) {
	result := ComputeSkillGap([]string{"go"}, []string{"zsh", "awk", "go", "GO", "bash"}, nil)
	assert.Equal(t, []string{"go"}, result.Matched)
	assert.Equal(t, []string{"awk", "bash", "zsh"}, result.Missing)
}

func TestComputeSkillGap_DegreeSatisfiedByHigherAttainment(t *testing.T) {
	resume := resumeWithDegrees(types.Education{StudyType: "Master's", Area: "Computer Science"})

	result := ComputeSkillGap(nil, []string{"bachelor's degree"}, resume)
	assert.Equal(t, []string{"bachelor's degree"}, result.Matched)
	assert.Empty(t, result.Missing)
}

func TestComputeSkillGap_DegreeAboveAttainmentIsMissing(t *testing.T) {
	resume := resumeWithDegrees(types.Education{StudyType: "Bachelor of Science", Area: "Biology"})

	result := ComputeSkillGap(nil, []string{"master's degree"}, resume)
	assert.Empty(t, result.Matched)
	assert.Equal(t, []string{"master's degree"}, result.Missing)
}

func TestComputeSkillGap_DegreeMembershipFallbackWithoutResume(t *testing.T) {
	// No résumé: a degree requirement is treated like any other skill.
	result := ComputeSkillGap([]string{"bachelor's degree"}, []string{"bachelor's degree", "master's degree"}, nil)
	assert.Equal(t, []string{"bachelor's degree"}, result.Matched)
	assert.Equal(t, []string{"master's degree"}, result.Missing)
}

func TestComputeSkillGap_CombinedRequirementResolvesLowest(t *testing.T) {
	resume := resumeWithDegrees(types.Education{StudyType: "Bachelor's", Area: "Mathematics"})

	// Hierarchy keys are checked in ascending order, so a combined
	// requirement resolves to its lowest named degree.
	result := ComputeSkillGap(nil, []string{"bachelor's or master's degree"}, resume)
	assert.Equal(t, []string{"bachelor's or master's degree"}, result.Matched)
}

func TestRequiredDegreeLevel(t *testing.T) {
	tests := []struct {
		requirement string
		want        int
	}{
		{"associate degree", 1},
		{"bachelors degree", 2},
		{"bachelor's degree", 2},
		{"master's degree required", 3},
		{"mba preferred", 3},
		{"phd in physics", 4},
		{"doctorate", 4},
		{"python", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, requiredDegreeLevel(tt.requirement), "requirement %q", tt.requirement)
	}
}

func TestHighestDegreeLevel(t *testing.T) {
	tests := []struct {
		name    string
		entries []types.Education
		want    int
	}{
		{"no education", nil, 0},
		{"unrecognized study type", []types.Education{{StudyType: "Certificate", Area: "Welding"}}, 0},
		{"bachelor", []types.Education{{StudyType: "Bachelor of Science", Area: "CS"}}, 2},
		{"highest wins", []types.Education{
			{StudyType: "Bachelor of Arts", Area: "History"},
			{StudyType: "PhD", Area: "History"},
		}, 4},
		{"punctuated doctorate", []types.Education{{StudyType: "Ph.D.", Area: "Chemistry"}}, 4},
		{"degree named in area", []types.Education{{StudyType: "", Area: "Master of Engineering"}}, 3},
		{"mba", []types.Education{{StudyType: "MBA", Area: "Finance"}}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HighestDegreeLevel(resumeWithDegrees(tt.entries...)))
		})
	}
}
