package matching

import (
	"errors"

	"github.com/spencebuilds/smartapply/internal/job"
	"github.com/spencebuilds/smartapply/internal/logger"
	"go.uber.org/zap"
)

// ErrEmptyJobID is returned when a posting arrives without an id. Reports
// must be addressable by id downstream, so this is a caller contract
// violation rather than a degenerate match.
var ErrEmptyJobID = errors.New("job posting id is required")

const descriptionPreviewLen = 120

// Matcher scores postings against the loaded resume taxonomy. It holds no
// per-call state and is safe for concurrent use; the taxonomy handle may be
// swapped between calls without affecting matches in flight.
type Matcher struct {
	handle  *Handle
	gate    *RoleGate
	ceiling int
	logger  *zap.Logger
}

// NewMatcher wires a matcher from a loaded taxonomy handle. A non-positive
// ceiling falls back to DefaultNormalizationCeiling.
func NewMatcher(handle *Handle, gate *RoleGate, ceiling int, log *zap.Logger) *Matcher {
	if ceiling <= 0 {
		ceiling = DefaultNormalizationCeiling
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Matcher{
		handle:  handle,
		gate:    gate,
		ceiling: ceiling,
		logger:  log,
	}
}

// Ceiling returns the normalization ceiling in effect.
func (m *Matcher) Ceiling() int {
	return m.ceiling
}

// Match produces the verdict for one posting. It never fails for well-formed
// input: empty descriptions, non-target roles and zero-hit postings all
// resolve to zero-score reports with BestResume set to NoneProfile.
func (m *Matcher) Match(posting *job.Posting) (*MatchReport, error) {
	if posting == nil || posting.ID == "" {
		return nil, ErrEmptyJobID
	}

	if m.gate != nil && !m.gate.IsTargetRole(posting.Title, posting.Department) {
		m.logger.Debug("posting rejected by role gate",
			zap.String("job_id", posting.ID),
			zap.String("title", posting.Title),
		)
		return gateRejectedReport(posting.ID), nil
	}

	taxonomy := m.handle.Current()
	normalized := Normalize(posting.Description)
	breakdown := taxonomy.ScoreConcepts(normalized)
	bestResume, raw := taxonomy.Recommend(breakdown)
	score := 0.0
	if raw > 0 {
		score = NormalizeScore(raw, m.ceiling)
	}

	report := buildReport(posting.ID, breakdown, bestResume, score)

	m.logger.Debug("posting scored",
		zap.String("job_id", posting.ID),
		zap.String("best_resume", bestResume),
		zap.Int("raw_score", raw),
		zap.Float64("match_score", score),
		zap.String("description_preview", logger.TruncateForLog(posting.Description, descriptionPreviewLen)),
	)

	return report, nil
}
