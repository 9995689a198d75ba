package filtering

import (
	"fmt"

	"github.com/spencebuilds/smartapply/internal/job"
	"github.com/spencebuilds/smartapply/internal/matching"
	"go.uber.org/zap"
)

type matchFilter struct {
	disabled  bool
	reason    string
	threshold float64
	reports   map[string]*matching.MatchReport
}

// NewMatch creates the scoring step: every surviving posting is matched
// against the resume taxonomy, the verdict is attached to the posting, and
// postings below the configured threshold are dropped.
func NewMatch() Filter {
	return &matchFilter{}
}

func (f *matchFilter) Name() string { return "match" }

func (f *matchFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *matchFilter) IsEnabled() bool { return !f.disabled }

func (f *matchFilter) Validate(cfg *Config) error {
	f.threshold = 0
	if cfg != nil {
		f.threshold = cfg.MatchThreshold
	}
	if f.threshold < 0 || f.threshold > 100 {
		return fmt.Errorf("match threshold must be within 0-100, got %v", f.threshold)
	}
	return nil
}

func (f *matchFilter) Apply(deps Deps, p *job.Postings) (*job.Postings, Step, error) {
	initial := p.Len()
	if deps.Matcher == nil {
		return p, Step{}, fmt.Errorf("matcher is required for the match filter")
	}

	kept := make([]*job.Posting, 0, initial)
	f.reports = make(map[string]*matching.MatchReport)

	for _, posting := range p.Items {
		report, err := deps.Matcher.Match(posting)
		if err != nil {
			if deps.Logger != nil {
				deps.Logger.Warn("scoring failed",
					zap.String("job_id", posting.ID),
					zap.Error(err),
				)
			}
			continue
		}

		f.reports[posting.ID] = report
		posting.Match = &job.MatchSummary{
			BestResume:     report.BestResume,
			Score:          report.BestMatchScore,
			Recommendation: report.Recommendation,
		}

		if report.BestMatchScore < f.threshold {
			if deps.Logger != nil && report.BestMatchScore > 0 {
				deps.Logger.Info("posting suppressed below match threshold",
					zap.String("job_id", posting.ID),
					zap.String("title", posting.Title),
					zap.Float64("match_score", report.BestMatchScore),
					zap.Float64("threshold", f.threshold),
				)
			}
			continue
		}

		if deps.Logger != nil {
			deps.Logger.Info("posting matched",
				zap.String("job_id", posting.ID),
				zap.String("best_resume", report.BestResume),
				zap.Float64("match_score", report.BestMatchScore),
			)
		}
		kept = append(kept, posting)
	}

	p.Items = kept
	left := p.Len()

	return p, Step{Initial: initial, Dropped: initial - left, Left: left}, nil
}

// Reports exposes the collected match reports for every scored posting,
// including suppressed ones.
func (f *matchFilter) Reports() map[string]*matching.MatchReport {
	if f.reports == nil {
		return map[string]*matching.MatchReport{}
	}
	return f.reports
}

func (f *matchFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: f.IsEnabled(),
		Reason:  f.reason,
		Details: map[string]string{
			"threshold": fmt.Sprintf("%.2f", f.threshold),
		},
	}
}
