package model

// ErrorCategory buckets lifecycle errors by their likely root cause.
type ErrorCategory string

const (
	// CategoryPermission covers security and privilege failures.
	CategoryPermission ErrorCategory = "permission"
	// CategorySnapshot covers snapshot and repository failures.
	CategorySnapshot ErrorCategory = "snapshot"
	// CategoryShard covers shard allocation and rollover failures.
	CategoryShard ErrorCategory = "shard"
	// CategoryStorage covers disk and capacity failures.
	CategoryStorage ErrorCategory = "storage"
	// CategoryOther collects everything no specific rule matched.
	CategoryOther ErrorCategory = "other"
)

// ErrorCategories returns all error categories in report display order.
func ErrorCategories() []ErrorCategory {
	return []ErrorCategory{
		CategoryPermission,
		CategorySnapshot,
		CategoryShard,
		CategoryStorage,
		CategoryOther,
	}
}

// String returns the string representation of the category
func (c ErrorCategory) String() string {
	return string(c)
}

// RecommendationCategory groups policy tuning advice by concern.
type RecommendationCategory string

const (
	RecommendationPerformance RecommendationCategory = "performance"
	RecommendationCost        RecommendationCategory = "cost"
	RecommendationReliability RecommendationCategory = "reliability"
	RecommendationMaintenance RecommendationCategory = "maintenance"
)

// RecommendationCategories returns all recommendation categories in report display order.
func RecommendationCategories() []RecommendationCategory {
	return []RecommendationCategory{
		RecommendationPerformance,
		RecommendationCost,
		RecommendationReliability,
		RecommendationMaintenance,
	}
}

// String returns the string representation of the category
func (c RecommendationCategory) String() string {
	return string(c)
}
