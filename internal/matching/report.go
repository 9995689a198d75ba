package matching

import (
	"fmt"
	"sort"
)

// ConceptHit is one matched concept of the winning profile.
type ConceptHit struct {
	Concept string `json:"concept"`
	Hits    int    `json:"hits"`
}

// MatchReport is the final verdict for one job posting.
type MatchReport struct {
	JobID           string       `json:"job_id"`
	BestResume      string       `json:"best_resume"`
	BestMatchScore  float64      `json:"best_match_score"`
	MatchedConcepts []ConceptHit `json:"matched_concepts"`
	Recommendation  string       `json:"recommendation"`

	// Breakdown carries the full per-profile concept tallies for
	// diagnostics.
	Breakdown Breakdown `json:"resume_match_breakdown,omitempty"`
}

const (
	noMatchRecommendation      = "No match."
	gateRejectedRecommendation = "Not a target role; skipped scoring."
)

// buildReport assembles the report for a scored job. Matched concepts come
// from the winning profile only, ordered by descending hit count with ties
// broken by concept name.
func buildReport(jobID string, breakdown Breakdown, bestResume string, score float64) *MatchReport {
	report := &MatchReport{
		JobID:           jobID,
		BestResume:      bestResume,
		BestMatchScore:  score,
		MatchedConcepts: []ConceptHit{},
		Recommendation:  recommendation(bestResume, score),
		Breakdown:       breakdown,
	}

	for concept, hits := range breakdown[bestResume] {
		if hits > 0 {
			report.MatchedConcepts = append(report.MatchedConcepts, ConceptHit{Concept: concept, Hits: hits})
		}
	}

	sort.Slice(report.MatchedConcepts, func(i, j int) bool {
		a, b := report.MatchedConcepts[i], report.MatchedConcepts[j]
		if a.Hits != b.Hits {
			return a.Hits > b.Hits
		}
		return a.Concept < b.Concept
	})

	return report
}

// gateRejectedReport is the short-circuit result for postings that fail the
// role gate. Its recommendation string is distinct from a genuine zero-hit
// report so callers can tell the two apart.
func gateRejectedReport(jobID string) *MatchReport {
	return &MatchReport{
		JobID:           jobID,
		BestResume:      NoneProfile,
		BestMatchScore:  0,
		MatchedConcepts: []ConceptHit{},
		Recommendation:  gateRejectedRecommendation,
	}
}

// Band boundaries are inclusive on the lower edge.
func recommendation(bestResume string, score float64) string {
	switch {
	case score >= 90:
		return fmt.Sprintf("Excellent match! Use %s resume.", bestResume)
	case score >= 80:
		return fmt.Sprintf("Good match! Consider using %s resume.", bestResume)
	case score >= 60:
		return fmt.Sprintf("Moderate match with %s resume.", bestResume)
	case score > 0:
		return fmt.Sprintf("Weak match with %s resume.", bestResume)
	default:
		return noMatchRecommendation
	}
}
