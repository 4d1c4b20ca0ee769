package ilm

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mikecalizo/ilm-parser-collections/internal/model"
	"github.com/mikecalizo/ilm-parser-collections/internal/report"
)

const (
	// longRetentionThresholdDays marks retention long enough that data
	// should reach the frozen tier before deletion.
	longRetentionThresholdDays = 365.0
	// maxRolloverShardSizeGB is the largest rollover shard size that does
	// not degrade recovery and relocation times.
	maxRolloverShardSizeGB = 50.0
)

// recommendationRule inspects one policy and its correlated records and
// yields at most one piece of advice.
type recommendationRule struct {
	category model.RecommendationCategory
	evaluate func(policy Policy, records []Record) (string, bool)
}

// recommendationRules is evaluated in order for every analyzed policy.
var recommendationRules = []recommendationRule{
	{model.RecommendationPerformance, missingWarmPhase},
	{model.RecommendationCost, longHotRetention},
	{model.RecommendationCost, missingFrozenForLongRetention},
	{model.RecommendationPerformance, oversizedRolloverShard},
	{model.RecommendationMaintenance, stalledHotIndices},
	{model.RecommendationReliability, waitingIndices},
}

// Recommend evaluates the advice rules against one policy and the records
// correlated under it.
func Recommend(policy Policy, records []Record) []report.Recommendation {
	var recs []report.Recommendation
	for _, rule := range recommendationRules {
		message, ok := rule.evaluate(policy, records)
		if !ok {
			continue
		}
		recs = append(recs, report.Recommendation{
			Policy:   policy.Name,
			Category: rule.category,
			Message:  message,
		})
	}
	return recs
}

func missingWarmPhase(policy Policy, _ []Record) (string, bool) {
	_, hot := policy.Phases["hot"]
	_, warm := policy.Phases["warm"]
	_, cold := policy.Phases["cold"]
	if hot && cold && !warm {
		return "add warm phase between hot and cold", true
	}
	return "", false
}

// longHotRetention reads the warm phase's trigger age as the length of the
// hot phase, since a policy has no explicit hot exit age.
func longHotRetention(policy Policy, _ []Record) (string, bool) {
	warm, ok := policy.Phases["warm"]
	if ok && warm.TriggerAgeDays > hotPhaseAgeLimitDays {
		return fmt.Sprintf("hot phase too long (%.0fd)", warm.TriggerAgeDays), true
	}
	return "", false
}

func missingFrozenForLongRetention(policy Policy, _ []Record) (string, bool) {
	_, frozen := policy.Phases["frozen"]
	if policy.RetentionDays > longRetentionThresholdDays && !frozen {
		return fmt.Sprintf("use frozen phase for %.0fd retention", policy.RetentionDays), true
	}
	return "", false
}

func oversizedRolloverShard(policy Policy, _ []Record) (string, bool) {
	hot, ok := policy.Phases["hot"]
	if !ok {
		return "", false
	}
	params, ok := hot.Raw.Actions["rollover"]
	if !ok {
		return "", false
	}
	size, ok := params["max_primary_shard_size"].(string)
	if !ok {
		return "", false
	}
	if numericValue(size) > maxRolloverShardSizeGB {
		return fmt.Sprintf("rollover shard size %s exceeds 50gb", size), true
	}
	return "", false
}

func stalledHotIndices(_ Policy, records []Record) (string, bool) {
	stuck := 0
	for _, rec := range records {
		if rec.Status == nil {
			continue
		}
		if rec.Status.Phase == "hot" && ParseDurationDays(rec.Status.Age) > hotPhaseAgeLimitDays {
			stuck++
		}
	}
	if stuck > 0 {
		return fmt.Sprintf("%d indices stuck in hot phase > 30d", stuck), true
	}
	return "", false
}

func waitingIndices(_ Policy, records []Record) (string, bool) {
	waiting := 0
	for _, rec := range records {
		if rec.Status == nil {
			continue
		}
		if isWaitingStep(rec.Status.Step) {
			waiting++
		}
	}
	if waiting > 0 {
		return fmt.Sprintf("%d indices waiting on lifecycle steps", waiting), true
	}
	return "", false
}

// isWaitingStep reports whether a step name means the index is blocked on
// lifecycle progress rather than moving through it.
func isWaitingStep(step string) bool {
	if step == "ERROR" || step == "wait-for-action" {
		return true
	}
	return strings.Contains(strings.ToLower(step), "wait")
}

var nonNumericChars = regexp.MustCompile(`[^0-9.]`)

// numericValue strips the unit from a size string, so "50gb" and "50GB"
// both read as 50. Anything without a numeric body reads as 0.
func numericValue(size string) float64 {
	value, err := strconv.ParseFloat(nonNumericChars.ReplaceAllString(size, ""), 64)
	if err != nil {
		return 0
	}
	return value
}
