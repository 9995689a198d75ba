package matching

import "strings"

// ConceptScores maps concept names to hit counts for one profile.
type ConceptScores map[string]int

// Breakdown maps profile names to their concept scores for one job.
type Breakdown map[string]ConceptScores

// ScoreConcepts scans the normalized job text for every known term and
// tallies per-profile, per-concept hits. A term that occurs in the text adds
// exactly one hit to every (profile, concept) pair it maps to, regardless of
// how many times it occurs. Terms are tested independently, so a phrase and a
// shorter phrase it contains can both hit; that is intentional and existing
// score calibration depends on it.
func (t *Taxonomy) ScoreConcepts(normalizedText string) Breakdown {
	scores := make(Breakdown)
	if normalizedText == "" {
		return scores
	}

	// Normalization collapsed all separators to single spaces, so padding
	// with spaces turns substring search into a whole-word/phrase match.
	padded := " " + normalizedText + " "

	for term, targets := range t.index {
		if !strings.Contains(padded, " "+term+" ") {
			continue
		}
		for _, target := range targets {
			concepts := scores[target.profile.Name]
			if concepts == nil {
				concepts = make(ConceptScores)
				scores[target.profile.Name] = concepts
			}
			concepts[target.concept]++
		}
	}

	return scores
}
