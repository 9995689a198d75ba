package filtering

import (
	"fmt"

	"github.com/spencebuilds/smartapply/internal/job"
	"github.com/spencebuilds/smartapply/internal/matching"
	"go.uber.org/zap"
)

// Filter represents a single filtering step applied to postings.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate(cfg *Config) error
	Apply(deps Deps, p *job.Postings) (*job.Postings, Step, error)
}

// Deps aggregates dependencies shared across all filtering steps.
type Deps struct {
	Logger    *zap.Logger
	Matcher   *matching.Matcher
	Processed *job.ProcessedLedger
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Config contains configuration settings consumed by the filters.
type Config struct {
	// MatchThreshold is the minimal best match score a posting must reach
	// to survive the match filter.
	MatchThreshold float64
}

// Status represents runtime information about a filter.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
	Details map[string]string
}

// statusProvider is implemented by filters that can supply detailed status information.
type statusProvider interface {
	Status() Status
}

// DisableByName marks a filter with the provided name as disabled while keeping it in the list.
func DisableByName(steps []Filter, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// Run executes the supplied filters sequentially, returning the surviving
// postings and the match reports collected along the way.
func Run(cfg *Config, deps Deps, steps []Filter, p *job.Postings) (*job.Postings, map[string]*matching.MatchReport, error) {
	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(cfg); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	reports := make(map[string]*matching.MatchReport)
	for _, step := range steps {
		if !step.IsEnabled() {
			if deps.Logger != nil {
				deps.Logger.Info("filter disabled", zap.String("name", step.Name()))
			}
			continue
		}

		next, info, err := step.Apply(deps, p)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if deps.Logger != nil {
			deps.Logger.Info("filter step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		p = next

		if collector, ok := step.(interface {
			Reports() map[string]*matching.MatchReport
		}); ok {
			for id, report := range collector.Reports() {
				reports[id] = report
			}
		}
	}

	return p, reports, nil
}

// Describe returns status entries for the provided filters.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}
