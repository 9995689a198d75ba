package matching

import "strings"

// targetTitlePhrases are the title fragments that mark a posting as a product
// management role. Checked against the lowercased title.
var targetTitlePhrases = []string{
	"product manager",
	"product lead",
	"product owner",
	"product director",
	"group product manager",
	"staff product manager",
	"principal product manager",
	"product management",
	"product strategy",
	"pm -",
}

// leadershipWords back up the department fallback: a posting in a product
// department still passes when its title carries one of these.
var leadershipWords = []string{"manager", "lead", "director", "owner"}

// RoleGate decides whether a posting belongs to the target role family before
// any scoring work happens.
type RoleGate struct {
	enabled bool
	phrases []string
}

// NewRoleGate builds a gate with the built-in target phrases plus any extra
// configured ones. A disabled gate passes everything through.
func NewRoleGate(enabled bool, extraPhrases []string) *RoleGate {
	phrases := make([]string, 0, len(targetTitlePhrases)+len(extraPhrases))
	phrases = append(phrases, targetTitlePhrases...)
	for _, p := range extraPhrases {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			phrases = append(phrases, p)
		}
	}

	return &RoleGate{enabled: enabled, phrases: phrases}
}

// IsTargetRole reports whether the title/department pair matches the target
// role family.
func (g *RoleGate) IsTargetRole(title, department string) bool {
	if !g.enabled {
		return true
	}

	title = strings.ToLower(title)
	for _, phrase := range g.phrases {
		if strings.Contains(title, phrase) {
			return true
		}
	}

	// Fallback: a product department plus a generic leadership title.
	if strings.Contains(strings.ToLower(department), "product") {
		for _, word := range leadershipWords {
			if strings.Contains(title, word) {
				return true
			}
		}
	}

	return false
}
