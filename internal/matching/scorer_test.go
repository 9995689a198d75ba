package matching

import (
	"testing"

	"go.uber.org/zap"
)

func testTaxonomy(t *testing.T, cfgs []ProfileConfig) *Taxonomy {
	t.Helper()

	taxonomy, err := NewTaxonomy(cfgs, zap.NewNop())
	if err != nil {
		t.Fatalf("building test taxonomy: %v", err)
	}
	return taxonomy
}

func TestScoreConceptsEmptyText(t *testing.T) {
	t.Parallel()

	taxonomy := testTaxonomy(t, DefaultProfiles())

	scores := taxonomy.ScoreConcepts("")
	if len(scores) != 0 {
		t.Fatalf("expected empty breakdown for empty text, got %v", scores)
	}
}

func TestScoreConceptsRepeatedTermCountsOnce(t *testing.T) {
	t.Parallel()

	taxonomy := testTaxonomy(t, DefaultProfiles())

	scores := taxonomy.ScoreConcepts(Normalize("kubernetes kubernetes kubernetes"))
	if got := scores["Resume A"]["platform_infrastructure"]; got != 1 {
		t.Fatalf("expected 1 hit for repeated term, got %d", got)
	}
}

func TestScoreConceptsWholeWordOnly(t *testing.T) {
	t.Parallel()

	taxonomy := testTaxonomy(t, DefaultProfiles())

	// "spark" must not match inside "sparkling".
	scores := taxonomy.ScoreConcepts(Normalize("we serve sparkling water"))
	if got := scores["Resume A"]["data_platforms"]; got != 0 {
		t.Fatalf("expected no hit for partial word, got %d", got)
	}

	scores = taxonomy.ScoreConcepts(Normalize("we run spark jobs"))
	if got := scores["Resume A"]["data_platforms"]; got != 1 {
		t.Fatalf("expected whole-word hit, got %d", got)
	}
}

func TestScoreConceptsSubsumedPhrasesBothCount(t *testing.T) {
	t.Parallel()

	taxonomy := testTaxonomy(t, []ProfileConfig{
		{
			Name: "Resume C",
			Concepts: map[string][]string{
				"billing_platform": {"billing", "billing platform"},
			},
		},
	})

	// The longer phrase contains the shorter term; both contribute.
	scores := taxonomy.ScoreConcepts(Normalize("our billing platform team"))
	if got := scores["Resume C"]["billing_platform"]; got != 2 {
		t.Fatalf("expected both phrases to count, got %d", got)
	}
}

func TestScoreConceptsSharedTermHitsEveryProfile(t *testing.T) {
	t.Parallel()

	taxonomy := testTaxonomy(t, DefaultProfiles())

	// "ci/cd" belongs to Resume A and Resume B.
	scores := taxonomy.ScoreConcepts(Normalize("strong CI/CD culture"))
	if got := scores["Resume A"]["platform_infrastructure"]; got != 1 {
		t.Fatalf("expected Resume A hit, got %d", got)
	}
	if got := scores["Resume B"]["ci_cd"]; got != 1 {
		t.Fatalf("expected Resume B hit, got %d", got)
	}
}

func TestScoreConceptsMatchAtTextEdges(t *testing.T) {
	t.Parallel()

	taxonomy := testTaxonomy(t, DefaultProfiles())

	scores := taxonomy.ScoreConcepts(Normalize("kubernetes"))
	if got := scores["Resume A"]["platform_infrastructure"]; got != 1 {
		t.Fatalf("expected hit for term at text edge, got %d", got)
	}
}
