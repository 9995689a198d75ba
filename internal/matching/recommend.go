package matching

// NoneProfile is the sentinel resume name reported when no profile scored.
const NoneProfile = "None"

// DefaultNormalizationCeiling is the raw hit count that saturates the match
// score to 100%. It is an empirically calibrated policy knob, overridable via
// the match.normalization-ceiling configuration key.
const DefaultNormalizationCeiling = 4

// Recommend sums concept hits per profile and picks the winner. Ties are
// broken by profile declaration order, never by map iteration order. When
// every profile scores zero the sentinel NoneProfile is returned.
func (t *Taxonomy) Recommend(breakdown Breakdown) (string, int) {
	best := ""
	bestScore := 0

	// Walking profiles in declaration order makes the first of any tied
	// group win deterministically.
	for _, profile := range t.profiles {
		total := 0
		for _, hits := range breakdown[profile.Name] {
			total += hits
		}
		if total > bestScore {
			best = profile.Name
			bestScore = total
		}
	}

	if bestScore == 0 {
		return NoneProfile, 0
	}

	return best, bestScore
}

// NormalizeScore converts a raw concept-hit count into a 0-100 percentage on
// a fixed-ceiling linear scale. Non-positive ceilings fall back to the
// default.
func NormalizeScore(raw, ceiling int) float64 {
	if ceiling <= 0 {
		ceiling = DefaultNormalizationCeiling
	}

	pct := float64(raw) / float64(ceiling) * 100.0
	if pct > 100.0 {
		pct = 100.0
	}

	return pct
}
