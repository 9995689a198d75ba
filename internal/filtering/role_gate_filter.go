package filtering

import (
	"fmt"
	"strconv"

	"github.com/spencebuilds/smartapply/internal/job"
	"github.com/spencebuilds/smartapply/internal/matching"
	"go.uber.org/zap"
)

type roleGateFilter struct {
	disabled bool
	reason   string
	gate     *matching.RoleGate
}

// NewRoleGate creates a filter that drops postings outside the target role
// family before any scoring work happens.
func NewRoleGate(gate *matching.RoleGate) Filter {
	return &roleGateFilter{gate: gate}
}

func (f *roleGateFilter) Name() string { return "role_gate" }

func (f *roleGateFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *roleGateFilter) IsEnabled() bool { return !f.disabled }

func (f *roleGateFilter) Validate(*Config) error {
	if f.IsEnabled() && f.gate == nil {
		return fmt.Errorf("role gate is required when the role_gate filter is enabled")
	}
	return nil
}

func (f *roleGateFilter) Apply(deps Deps, p *job.Postings) (*job.Postings, Step, error) {
	initial := p.Len()

	kept := make([]*job.Posting, 0, initial)
	var excluded []string
	for _, posting := range p.Items {
		if f.gate.IsTargetRole(posting.Title, posting.Department) {
			kept = append(kept, posting)
			continue
		}
		excluded = append(excluded, posting.ID)
	}
	p.Items = kept

	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Info("excluding postings outside the target role family",
			zap.Strings("excluded_postings", excluded),
			zap.Int("postings_left", p.Len()),
		)
	}

	return p, Step{Initial: initial, Dropped: len(excluded), Left: p.Len()}, nil
}

func (f *roleGateFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: f.IsEnabled(),
		Reason:  f.reason,
		Details: map[string]string{
			"gate_configured": strconv.FormatBool(f.gate != nil),
		},
	}
}
