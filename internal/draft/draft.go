package draft

import (
	"strings"

	"github.com/datafield/asset-library-backend/internal/entity"
)

// ErrorMap maps a draft field name to a human-readable validation message.
// An empty map means the draft is valid. Validation always replaces the
// whole map, it never merges into an older one.
type ErrorMap map[string]string

type SubmissionState int

const (
	SubmissionIdle SubmissionState = iota
	SubmissionPending
)

func (s SubmissionState) String() string {
	if s == SubmissionPending {
		return "pending"
	}
	return "idle"
}

// Draft holds the in-progress field values for a collection that has not
// been submitted yet. It lives for the lifetime of one Controller.
type Draft struct {
	Name         string
	Organization string
	Country      *entity.OptionPair
	Sector       *entity.OptionPair
	Tags         []string
	Description  string
	Public       bool
}

// NormalizeTags trims every tag, drops empties and removes duplicates
// case-sensitively while preserving insertion order.
func NormalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))

	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}

	return normalized
}
