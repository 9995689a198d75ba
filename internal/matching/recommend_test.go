package matching

import "testing"

func TestRecommendPicksHighestTotal(t *testing.T) {
	t.Parallel()

	taxonomy := testTaxonomy(t, DefaultProfiles())

	breakdown := Breakdown{
		"Resume A": {"platform_infrastructure": 1},
		"Resume C": {"billing_platform": 2, "revenue_metrics": 1},
	}

	best, raw := taxonomy.Recommend(breakdown)
	if best != "Resume C" || raw != 3 {
		t.Fatalf("expected Resume C with raw 3, got %s with %d", best, raw)
	}
}

func TestRecommendAllZeroReturnsNone(t *testing.T) {
	t.Parallel()

	taxonomy := testTaxonomy(t, DefaultProfiles())

	best, raw := taxonomy.Recommend(Breakdown{})
	if best != NoneProfile || raw != 0 {
		t.Fatalf("expected %s with raw 0, got %s with %d", NoneProfile, best, raw)
	}
}

func TestRecommendTieBreakIsDeclarationOrder(t *testing.T) {
	t.Parallel()

	taxonomy := testTaxonomy(t, []ProfileConfig{
		{Name: "Resume Z", Concepts: map[string][]string{"c": {"alpha"}}},
		{Name: "Resume A", Concepts: map[string][]string{"c": {"beta"}}},
	})

	breakdown := Breakdown{
		"Resume Z": {"c": 2},
		"Resume A": {"c": 2},
	}

	// Declaration order wins the tie, regardless of name ordering or map
	// iteration order. Repeat to catch any nondeterminism.
	for i := 0; i < 50; i++ {
		best, raw := taxonomy.Recommend(breakdown)
		if best != "Resume Z" || raw != 2 {
			t.Fatalf("run %d: expected Resume Z with raw 2, got %s with %d", i, best, raw)
		}
	}
}

func TestNormalizeScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     int
		ceiling int
		expect  float64
	}{
		{name: "zero hits", raw: 0, ceiling: 4, expect: 0},
		{name: "half of ceiling", raw: 2, ceiling: 4, expect: 50},
		{name: "at ceiling saturates", raw: 4, ceiling: 4, expect: 100},
		{name: "beyond ceiling stays saturated", raw: 9, ceiling: 4, expect: 100},
		{name: "non-positive ceiling falls back to default", raw: 2, ceiling: 0, expect: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeScore(tt.raw, tt.ceiling)
			if got != tt.expect {
				t.Fatalf("NormalizeScore(%d, %d) = %v, want %v", tt.raw, tt.ceiling, got, tt.expect)
			}
		})
	}
}
