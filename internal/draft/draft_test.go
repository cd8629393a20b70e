package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "duplicates removed",
			in:   []string{"a", "a", "b"},
			want: []string{"a", "b"},
		},
		{
			name: "insertion order preserved",
			in:   []string{"b", "a", "b", "c", "a"},
			want: []string{"b", "a", "c"},
		},
		{
			name: "dedup is case sensitive",
			in:   []string{"Health", "health"},
			want: []string{"Health", "health"},
		},
		{
			name: "whitespace trimmed and empties dropped",
			in:   []string{"  a ", "", "   ", "b"},
			want: []string{"a", "b"},
		},
		{
			name: "trimming happens before dedup",
			in:   []string{"a", " a "},
			want: []string{"a"},
		},
		{
			name: "nil input",
			in:   nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTags(tt.in))
		})
	}
}

func TestSubmissionStateString(t *testing.T) {
	assert.Equal(t, "idle", SubmissionIdle.String())
	assert.Equal(t, "pending", SubmissionPending.String())
}
