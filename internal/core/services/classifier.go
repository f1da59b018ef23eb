package services

import (
	"strings"

	"github.com/drishti-labs/drishti-cli/internal/core/domain"
)

// Classifier performs safety and intent classification for queries.
//
// Both checks are lowercase substring matches against fixed keyword
// tables, evaluated before any retrieval or generation so that filtering
// stays cheap and side-effect free. They gate the pipeline; they never
// rewrite or sanitise the query.
type Classifier struct{}

// NewClassifier creates a new classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// InDomain reports whether the query is in-domain. It is false when the
// lower-cased query contains any off-topic keyword. False positives and
// negatives are an accepted trade-off for zero latency and zero cost.
func (c *Classifier) InDomain(query string) bool {
	lower := strings.ToLower(query)
	for _, kw := range domain.OffTopicKeywords {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	return true
}

// ClassifyHarm checks the query against the violence and discrimination
// keyword sets, in that priority order: when both match, the violence
// redirect wins.
func (c *Classifier) ClassifyHarm(query string) domain.Verdict {
	lower := strings.ToLower(query)

	for _, kw := range domain.ViolenceKeywords {
		if strings.Contains(lower, kw) {
			return domain.Verdict{
				IsSpiritual: c.InDomain(query),
				IsHarmful:   true,
				Category:    domain.HarmViolence,
				Redirect:    domain.ViolenceRedirect,
			}
		}
	}

	for _, kw := range domain.DiscriminationKeywords {
		if strings.Contains(lower, kw) {
			return domain.Verdict{
				IsSpiritual: c.InDomain(query),
				IsHarmful:   true,
				Category:    domain.HarmDiscrimination,
				Redirect:    domain.DiscriminationRedirect,
			}
		}
	}

	return domain.Verdict{
		IsSpiritual: c.InDomain(query),
		IsHarmful:   false,
		Category:    domain.HarmNone,
	}
}
