package matching

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
)

// ConfigError marks a structurally invalid taxonomy. It is fatal: a matcher
// must never be constructed from a taxonomy that failed to load.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string { return e.msg }

func newConfigError(format string, args ...any) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

// ProfileConfig is the configuration shape for one resume profile. Profiles
// are configured as an ordered list; the position in that list is the
// tie-break priority when two profiles score the same.
type ProfileConfig struct {
	Name     string              `yaml:"name" mapstructure:"name"`
	Concepts map[string][]string `yaml:"concepts" mapstructure:"concepts"`
}

// Profile is a resolved resume profile inside a loaded taxonomy.
type Profile struct {
	Name     string
	Concepts map[string][]string

	// priority is the declaration index, used for deterministic tie-breaks.
	priority int
}

type termTarget struct {
	profile *Profile
	concept string
}

// Taxonomy is the load-once structure mapping profiles to concepts to raw
// vocabulary terms, inverted into a term lookup at construction. It is
// immutable after NewTaxonomy returns and safe for concurrent readers.
type Taxonomy struct {
	profiles []*Profile
	index    map[string][]termTarget
}

// NewTaxonomy validates the profile configuration and builds the inverted
// term index. Terms are normalized with the same function applied to job
// text. Empty terms and empty concepts are skipped with a warning; duplicate
// profile names and profiles without a name are configuration errors.
func NewTaxonomy(cfgs []ProfileConfig, logger *zap.Logger) (*Taxonomy, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(cfgs) == 0 {
		return nil, newConfigError("taxonomy requires at least one profile")
	}

	t := &Taxonomy{
		profiles: make([]*Profile, 0, len(cfgs)),
		index:    make(map[string][]termTarget),
	}

	seen := make(map[string]bool, len(cfgs))
	for i, cfg := range cfgs {
		if cfg.Name == "" {
			return nil, newConfigError("profile at position %d has no name", i)
		}
		if seen[cfg.Name] {
			return nil, newConfigError("duplicate profile name %q", cfg.Name)
		}
		seen[cfg.Name] = true

		profile := &Profile{
			Name:     cfg.Name,
			Concepts: cfg.Concepts,
			priority: i,
		}
		t.profiles = append(t.profiles, profile)

		for concept, terms := range cfg.Concepts {
			if concept == "" {
				logger.Warn("skipping unnamed concept", zap.String("profile", cfg.Name))
				continue
			}
			for _, term := range terms {
				normalized := Normalize(term)
				if normalized == "" {
					logger.Warn("skipping empty taxonomy term",
						zap.String("profile", cfg.Name),
						zap.String("concept", concept),
					)
					continue
				}
				t.index[normalized] = append(t.index[normalized], termTarget{
					profile: profile,
					concept: concept,
				})
			}
		}
	}

	logger.Debug("taxonomy loaded",
		zap.Int("profiles", len(t.profiles)),
		zap.Int("terms", len(t.index)),
	)

	return t, nil
}

// Profiles returns the profiles in declaration order.
func (t *Taxonomy) Profiles() []*Profile {
	return t.profiles
}

// TermCount returns the number of distinct normalized terms in the index.
func (t *Taxonomy) TermCount() int {
	return len(t.index)
}

// Handle is a swappable reference to a loaded taxonomy. Reloads build a fresh
// Taxonomy and swap it in atomically; the index itself is never mutated, so
// in-flight matches keep a consistent view.
type Handle struct {
	current atomic.Pointer[Taxonomy]
}

// NewHandle wraps a loaded taxonomy.
func NewHandle(t *Taxonomy) *Handle {
	h := &Handle{}
	h.current.Store(t)
	return h
}

// Current returns the taxonomy in use.
func (h *Handle) Current() *Taxonomy {
	return h.current.Load()
}

// Swap replaces the taxonomy used by future matches.
func (h *Handle) Swap(t *Taxonomy) {
	h.current.Store(t)
}
