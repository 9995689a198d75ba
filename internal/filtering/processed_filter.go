package filtering

import (
	"strconv"
	"strings"

	"github.com/spencebuilds/smartapply/internal/job"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const forceFlagSetMsg = "force flag is set"

type processedFilter struct {
	ignore bool
}

// NewProcessed creates a filter that removes postings already present in the
// processed ledger.
func NewProcessed(cmd *cobra.Command) Filter {
	ignore := false
	if cmd != nil {
		flag := cmd.Flag("do-not-exclude-processed")
		if flag != nil && strings.EqualFold(flag.Value.String(), "true") {
			ignore = true
		}
	}
	return &processedFilter{ignore: ignore}
}

func (f *processedFilter) Name() string { return "processed" }

func (f *processedFilter) Disable(string) {}

func (f *processedFilter) IsEnabled() bool { return true }

func (f *processedFilter) Validate(*Config) error { return nil }

func (f *processedFilter) Apply(deps Deps, p *job.Postings) (*job.Postings, Step, error) {
	initial := p.Len()
	if f.ignore {
		if deps.Logger != nil {
			deps.Logger.Info("ignoring already processed postings", zap.String("reason", forceFlagSetMsg))
		}
		return p, Step{Initial: initial, Dropped: 0, Left: p.Len()}, nil
	}

	if deps.Processed == nil {
		return p, Step{Initial: initial, Dropped: 0, Left: p.Len()}, nil
	}

	excluded := p.Exclude(job.PostingIDField, deps.Processed.IDs())
	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Info("excluding postings already processed",
			zap.Strings("excluded_postings", excluded),
			zap.Int("postings_left", p.Len()),
		)
	}

	return p, Step{Initial: initial, Dropped: len(excluded), Left: p.Len()}, nil
}

func (f *processedFilter) Status() Status {
	details := map[string]string{
		"exclude_processed": strconv.FormatBool(!f.ignore),
	}
	reason := ""
	if f.ignore {
		reason = "skip requested via flag"
	}
	return Status{Name: f.Name(), Enabled: true, Reason: reason, Details: details}
}
