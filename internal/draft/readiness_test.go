package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestPublicReadinessComplete(t *testing.T) {
	errs := PublicReadiness("Health Survey", "Acme", strPtr("health"))
	assert.Empty(t, errs)
}

func TestPublicReadinessMissingFields(t *testing.T) {
	tests := []struct {
		name         string
		draftName    string
		organization string
		sector       *string
		wantFields   []string
	}{
		{
			name:         "missing name",
			organization: "Acme",
			sector:       strPtr("health"),
			wantFields:   []string{"name"},
		},
		{
			name:       "missing organization",
			draftName:  "Health Survey",
			sector:     strPtr("health"),
			wantFields: []string{"organization"},
		},
		{
			name:         "missing sector",
			draftName:    "Health Survey",
			organization: "Acme",
			wantFields:   []string{"sector"},
		},
		{
			name:         "blank sector value",
			draftName:    "Health Survey",
			organization: "Acme",
			sector:       strPtr("   "),
			wantFields:   []string{"sector"},
		},
		{
			name:       "everything missing",
			wantFields: []string{"name", "organization", "sector"},
		},
		{
			name:         "whitespace only name",
			draftName:    "   ",
			organization: "Acme",
			sector:       strPtr("health"),
			wantFields:   []string{"name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := PublicReadiness(tt.draftName, tt.organization, tt.sector)
			assert.Len(t, errs, len(tt.wantFields))
			for _, field := range tt.wantFields {
				assert.Contains(t, errs, field)
			}
		})
	}
}
