package ilm

import "strings"

// SkipFilter decides which policies and indices are excluded from analysis.
// Patterns match as case-insensitive substrings, evaluated in list order.
type SkipFilter struct {
	policyPatterns []string
	indexPatterns  []string
}

// NewSkipFilter builds a filter from the configured pattern lists.
func NewSkipFilter(policyPatterns, indexPatterns []string) *SkipFilter {
	return &SkipFilter{
		policyPatterns: lowerAll(policyPatterns),
		indexPatterns:  lowerAll(indexPatterns),
	}
}

// SkipPolicy reports whether a policy is excluded from analysis. Besides the
// configured patterns, names containing "logs" are skipped unless they also
// contain "logs-", which keeps curated data-stream policies while dropping
// the generic catch-all ones.
func (f *SkipFilter) SkipPolicy(name string) bool {
	lower := strings.ToLower(name)
	if strings.Contains(lower, "logs") && !strings.Contains(lower, "logs-") {
		return true
	}
	return matchAny(lower, f.policyPatterns)
}

// SkipIndex reports whether an index is excluded from analysis.
func (f *SkipFilter) SkipIndex(name string) bool {
	return matchAny(strings.ToLower(name), f.indexPatterns)
}

func matchAny(lower string, patterns []string) bool {
	for _, pattern := range patterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

func lowerAll(patterns []string) []string {
	lowered := make([]string, len(patterns))
	for i, pattern := range patterns {
		lowered[i] = strings.ToLower(pattern)
	}
	return lowered
}
