package filtering

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spencebuilds/smartapply/internal/job"
	"github.com/spencebuilds/smartapply/internal/matching"
	"go.uber.org/zap"
)

func testDeps(t *testing.T) Deps {
	t.Helper()

	taxonomy, err := matching.NewTaxonomy(matching.DefaultProfiles(), zap.NewNop())
	if err != nil {
		t.Fatalf("building taxonomy: %v", err)
	}

	gate := matching.NewRoleGate(true, nil)
	matcher := matching.NewMatcher(matching.NewHandle(taxonomy), gate, matching.DefaultNormalizationCeiling, zap.NewNop())

	ledger, err := job.LoadProcessedLedger(filepath.Join(t.TempDir(), "processed.json"), time.Now())
	if err != nil {
		t.Fatalf("loading ledger: %v", err)
	}

	return Deps{
		Logger:    zap.NewNop(),
		Matcher:   matcher,
		Processed: ledger,
	}
}

func testPostings() *job.Postings {
	return &job.Postings{
		Items: []*job.Posting{
			{
				ID:          "gh_1",
				Title:       "Senior Product Manager - Platform Infrastructure",
				Company:     "Acme",
				Description: "kubernetes terraform ci/cd api design",
			},
			{
				ID:          "gh_2",
				Title:       "Software Engineer",
				Company:     "Acme",
				Description: "kubernetes terraform",
			},
			{
				ID:          "lever_3",
				Title:       "Product Manager",
				Company:     "Globex",
				Description: "nothing relevant here",
			},
		},
	}
}

func TestRunDropsGatedAndLowScoringPostings(t *testing.T) {
	t.Parallel()

	deps := testDeps(t)
	steps := []Filter{
		NewProcessed(nil),
		NewRoleGate(matching.NewRoleGate(true, nil)),
		NewMatch(),
	}

	left, reports, err := Run(&Config{MatchThreshold: 20}, deps, steps, testPostings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if left.Len() != 1 {
		t.Fatalf("expected 1 posting left, got %d", left.Len())
	}
	if left.Items[0].ID != "gh_1" {
		t.Fatalf("expected the platform PM posting to survive, got %s", left.Items[0].ID)
	}
	if left.Items[0].Match == nil || left.Items[0].Match.BestResume != "Resume A" {
		t.Fatalf("expected the match verdict to be attached, got %+v", left.Items[0].Match)
	}

	// Reports cover every scored posting, including the suppressed one.
	if _, ok := reports["gh_1"]; !ok {
		t.Fatalf("expected a report for gh_1")
	}
	if report, ok := reports["lever_3"]; !ok || report.BestMatchScore != 0 {
		t.Fatalf("expected a zero-score report for lever_3, got %+v", report)
	}
	// The gated posting never reached the match filter.
	if _, ok := reports["gh_2"]; ok {
		t.Fatalf("did not expect a report for the gated posting")
	}
}

func TestRunSkipsProcessedPostings(t *testing.T) {
	t.Parallel()

	deps := testDeps(t)
	deps.Processed.Mark(time.Now(), "gh_1")

	steps := []Filter{
		NewProcessed(nil),
		NewRoleGate(matching.NewRoleGate(true, nil)),
		NewMatch(),
	}

	left, _, err := Run(&Config{MatchThreshold: 20}, deps, steps, testPostings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if left.FindByID("gh_1") != nil {
		t.Fatalf("expected the processed posting to be dropped")
	}
}

func TestRunValidatesThreshold(t *testing.T) {
	t.Parallel()

	deps := testDeps(t)
	steps := []Filter{NewMatch()}

	if _, _, err := Run(&Config{MatchThreshold: 150}, deps, steps, testPostings()); err == nil {
		t.Fatalf("expected validation error for out-of-range threshold")
	}
}

func TestDisableByName(t *testing.T) {
	t.Parallel()

	deps := testDeps(t)
	steps := []Filter{
		NewRoleGate(matching.NewRoleGate(true, nil)),
		NewMatch(),
	}
	DisableByName(steps, "role_gate", "disabled via config")

	left, _, err := Run(&Config{MatchThreshold: 0}, deps, steps, testPostings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// With the gate filter disabled the engineer posting reaches the
	// matcher, whose internal gate still zero-scores it; with threshold 0
	// it survives.
	if left.FindByID("gh_2") == nil {
		t.Fatalf("expected gated posting to survive with role_gate disabled and zero threshold")
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	steps := []Filter{
		NewProcessed(nil),
		NewRoleGate(matching.NewRoleGate(true, nil)),
		NewMatch(),
	}
	DisableByName(steps, "match", "no taxonomy")

	statuses := Describe(steps)
	if len(statuses) != 3 {
		t.Fatalf("expected 3 statuses, got %d", len(statuses))
	}

	byName := make(map[string]Status, len(statuses))
	for _, status := range statuses {
		byName[status.Name] = status
	}

	if !byName["processed"].Enabled || !byName["role_gate"].Enabled {
		t.Fatalf("expected processed and role_gate to be enabled")
	}
	if byName["match"].Enabled {
		t.Fatalf("expected match to be disabled")
	}
	if byName["match"].Reason != "no taxonomy" {
		t.Fatalf("unexpected disable reason: %q", byName["match"].Reason)
	}
}
