package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://job-boards.greenhouse.io/acme/jobs/7063751", PlatformGreenhouse},
		{"https://boards.greenhouse.io/acme/jobs/123", PlatformGreenhouse},
		{"https://jobs.lever.co/acme/job-id", PlatformLever},
		{"https://lever.co/jobs/123", PlatformLever},
		{"https://acme.wd5.myworkdayjobs.com/en-US/External", PlatformWorkday},
		{"https://workday.com/jobs", PlatformWorkday},
		{"https://jobs.ashbyhq.com/acme/posting-id", PlatformAshby},
		{"https://example.com/jobs", PlatformUnknown},
		{"https://linkedin.com/jobs/123", PlatformUnknown},
		{"not a url at all ://", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPlatform(tt.url))
		})
	}
}

func TestContentSelectors_Greenhouse(t *testing.T) {
	selectors := PlatformGreenhouse.ContentSelectors()
	assert.Contains(t, selectors, ".job__description.body")
	assert.Contains(t, selectors, ".job__description")
}

func TestContentSelectors_UnknownFallsBackToGeneric(t *testing.T) {
	selectors := PlatformUnknown.ContentSelectors()
	assert.Contains(t, selectors, ".job-description")
	assert.Contains(t, selectors, "main")
}

func TestNoiseSelectors_Greenhouse(t *testing.T) {
	selectors := PlatformGreenhouse.NoiseSelectors()
	assert.Contains(t, selectors, "form")
	assert.Contains(t, selectors, "#application-form")
	assert.Contains(t, selectors, ".application--wrapper")
	assert.Contains(t, selectors, ".voluntary-self-id")
}

func TestNoiseSelectors_UnknownKeepsCommon(t *testing.T) {
	selectors := PlatformUnknown.NoiseSelectors()
	assert.Contains(t, selectors, "form")
	assert.Contains(t, selectors, ".cookie-banner")
}
