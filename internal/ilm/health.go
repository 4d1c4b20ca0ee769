package ilm

import (
	"fmt"

	"github.com/mikecalizo/ilm-parser-collections/internal/model"
)

// hotPhaseAgeLimitDays is how long an index may sit in the hot phase before
// it counts as stalled.
const hotPhaseAgeLimitDays = 30.0

// Finding is the health classification of one correlated record.
type Finding struct {
	Status model.HealthStatus
	Issues []string
}

// ClassifyHealth evaluates one record against its policy's phase
// configuration. Classification only escalates: a record starts healthy and
// any detected issue moves it to warning.
func ClassifyHealth(rec Record, policy Policy) Finding {
	if rec.Status == nil {
		return Finding{
			Status: model.StatusNoData,
			Issues: []string{"No live status available"},
		}
	}

	status := rec.Status
	phase := orUnknown(status.Phase)
	step := orUnknown(status.Step)
	ageDays := ParseDurationDays(status.Age)

	var issues []string

	if status.Step != "complete" && status.Action != "complete" {
		issues = append(issues, fmt.Sprintf("index may be stuck in %s phase, step %s", phase, step))
	}

	if status.PreviousStepInfo != nil && status.PreviousStepInfo.Message != "" {
		issues = append(issues, fmt.Sprintf("previous step issue: %s", status.PreviousStepInfo.Message))
	}

	if expected, ok := policy.Phases[status.Phase]; ok && ageDays < expected.TriggerAgeDays {
		issues = append(issues, fmt.Sprintf("index in %s phase but only %.1f days old (expected %g+ days)",
			phase, ageDays, expected.TriggerAgeDays))
	}

	if status.Phase == "hot" && ageDays > hotPhaseAgeLimitDays {
		issues = append(issues, fmt.Sprintf("index has been in hot phase for %.1f days", ageDays))
	}

	if len(issues) == 0 {
		return Finding{Status: model.StatusHealthy}
	}
	return Finding{Status: model.StatusWarning, Issues: issues}
}

// orUnknown papers over the explain API's habit of omitting fields.
func orUnknown(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
