package ilm

import (
	"sort"
	"strings"

	"github.com/mikecalizo/ilm-parser-collections/internal/catalog"
	"github.com/mikecalizo/ilm-parser-collections/internal/model"
	"github.com/mikecalizo/ilm-parser-collections/internal/report"
)

// categoryRule maps error content onto a category. Rules are evaluated in
// order and the first match wins, so each error lands in exactly one bucket.
type categoryRule struct {
	category model.ErrorCategory
	matches  func(errType, reason string) bool
}

var categoryRules = []categoryRule{
	{model.CategoryPermission, func(errType, _ string) bool {
		return strings.Contains(errType, "security_exception")
	}},
	{model.CategorySnapshot, func(_, reason string) bool {
		return strings.Contains(reason, "snapshot")
	}},
	{model.CategoryShard, func(_, reason string) bool {
		return strings.Contains(reason, "shard")
	}},
	{model.CategoryStorage, func(_, reason string) bool {
		return strings.Contains(reason, "disk") || strings.Contains(reason, "space")
	}},
	{model.CategoryOther, func(_, _ string) bool {
		return true
	}},
}

// Categorize assigns an error category from a step error's type and reason.
// Matching is case-insensitive.
func Categorize(errType, reason string) model.ErrorCategory {
	errType = strings.ToLower(errType)
	reason = strings.ToLower(reason)
	for _, rule := range categoryRules {
		if rule.matches(errType, reason) {
			return rule.category
		}
	}
	return model.CategoryOther
}

// CollectErrors merges the error-only catalog with erroring entries found in
// the explain catalog and categorizes every survivor of the skip filter.
// When the same index appears in both catalogs the explain entry wins, so
// nothing is double counted. Entries within a category are ranked by retry
// count descending, ties broken by index name.
func CollectErrors(snap catalog.Snapshot, skip *SkipFilter, maxReasonLen int) report.ErrorReport {
	merged := make(map[string]catalog.ExplainEntry, len(snap.Errors))
	for name, entry := range snap.Errors {
		merged[name] = entry
	}
	for name, entry := range snap.Explain {
		if entry.Step == "ERROR" || stepInfoMentionsError(entry.StepInfo) {
			merged[name] = entry
		}
	}

	categories := make(map[model.ErrorCategory][]report.CategorizedError)
	distinct := 0
	for name, entry := range merged {
		if skip.SkipIndex(name) || skip.SkipPolicy(entry.Policy) {
			continue
		}

		info := entry.StepInfo
		if info == nil {
			info = entry.PreviousStepInfo
		}
		var errType, reason string
		if info != nil {
			errType = info.Type
			reason = info.Reason
		}
		if reason == "" {
			reason = "Unknown error"
		}

		category := Categorize(errType, reason)
		categories[category] = append(categories[category], report.CategorizedError{
			Index:      name,
			ShortName:  NormalizeName(name),
			Policy:     orUnknown(entry.Policy),
			Category:   category,
			Phase:      orUnknown(entry.Phase),
			AgeDays:    ParseDurationDays(entry.Age),
			RetryCount: entry.FailedStepRetryCount,
			Reason:     truncate(reason, maxReasonLen),
		})
		distinct++
	}

	for _, entries := range categories {
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].RetryCount != entries[j].RetryCount {
				return entries[i].RetryCount > entries[j].RetryCount
			}
			return entries[i].Index < entries[j].Index
		})
	}

	return report.ErrorReport{Categories: categories, TotalDistinct: distinct}
}

// stepInfoMentionsError reports whether any step detail field names an error.
func stepInfoMentionsError(info *catalog.StepInfo) bool {
	if info == nil {
		return false
	}
	for _, field := range []string{info.Type, info.Reason, info.Message} {
		if strings.Contains(strings.ToLower(field), "error") {
			return true
		}
	}
	return false
}

func truncate(value string, maxLen int) string {
	if len(value) <= maxLen {
		return value
	}
	if maxLen <= 3 {
		return value[:maxLen]
	}
	return value[:maxLen-3] + "..."
}
