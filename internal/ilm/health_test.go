package ilm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mikecalizo/ilm-parser-collections/internal/catalog"
	"github.com/mikecalizo/ilm-parser-collections/internal/model"
)

func TestClassifyHealth(t *testing.T) {
	t.Parallel()

	policy := Policy{
		Name: "app-policy",
		Phases: map[string]Phase{
			"hot":  {Name: "hot", TriggerAgeDays: 0},
			"warm": {Name: "warm", TriggerAge: "7d", TriggerAgeDays: 7},
		},
	}

	cases := []struct {
		name   string
		status *catalog.ExplainEntry
		assert func(t *testing.T, finding Finding)
	}{
		{
			name:   "no live status",
			status: nil,
			assert: func(t *testing.T, finding Finding) {
				require.Equal(t, model.StatusNoData, finding.Status)
				require.Equal(t, []string{"No live status available"}, finding.Issues)
			},
		},
		{
			name:   "healthy hot index",
			status: &catalog.ExplainEntry{Phase: "hot", Action: "complete", Step: "complete", Age: "10d"},
			assert: func(t *testing.T, finding Finding) {
				require.Equal(t, model.StatusHealthy, finding.Status)
				require.Empty(t, finding.Issues)
			},
		},
		{
			name:   "stuck step",
			status: &catalog.ExplainEntry{Phase: "warm", Action: "migrate", Step: "check-migration", Age: "10d"},
			assert: func(t *testing.T, finding Finding) {
				require.Equal(t, model.StatusWarning, finding.Status)
				require.Contains(t, finding.Issues, "index may be stuck in warm phase, step check-migration")
			},
		},
		{
			name:   "completed action is not stuck",
			status: &catalog.ExplainEntry{Phase: "warm", Action: "complete", Step: "wait-for-follow", Age: "10d"},
			assert: func(t *testing.T, finding Finding) {
				require.Equal(t, model.StatusHealthy, finding.Status)
			},
		},
		{
			name: "previous step issue surfaces",
			status: &catalog.ExplainEntry{
				Phase: "warm", Action: "complete", Step: "complete", Age: "10d",
				PreviousStepInfo: &catalog.StepInfo{Message: "retrying allocation"},
			},
			assert: func(t *testing.T, finding Finding) {
				require.Equal(t, model.StatusWarning, finding.Status)
				require.Contains(t, finding.Issues, "previous step issue: retrying allocation")
			},
		},
		{
			name: "empty previous step message ignored",
			status: &catalog.ExplainEntry{
				Phase: "warm", Action: "complete", Step: "complete", Age: "10d",
				PreviousStepInfo: &catalog.StepInfo{Type: "info"},
			},
			assert: func(t *testing.T, finding Finding) {
				require.Equal(t, model.StatusHealthy, finding.Status)
			},
		},
		{
			name:   "premature phase entry",
			status: &catalog.ExplainEntry{Phase: "warm", Action: "complete", Step: "complete", Age: "2d"},
			assert: func(t *testing.T, finding Finding) {
				require.Equal(t, model.StatusWarning, finding.Status)
				require.Contains(t, finding.Issues, "index in warm phase but only 2.0 days old (expected 7+ days)")
			},
		},
		{
			name:   "phase not on policy skips age expectation",
			status: &catalog.ExplainEntry{Phase: "cold", Action: "complete", Step: "complete", Age: "2d"},
			assert: func(t *testing.T, finding Finding) {
				require.Equal(t, model.StatusHealthy, finding.Status)
			},
		},
		{
			name:   "stalled in hot",
			status: &catalog.ExplainEntry{Phase: "hot", Action: "complete", Step: "complete", Age: "45d"},
			assert: func(t *testing.T, finding Finding) {
				require.Equal(t, model.StatusWarning, finding.Status)
				require.Contains(t, finding.Issues, "index has been in hot phase for 45.0 days")
			},
		},
		{
			name:   "young hot index not stalled",
			status: &catalog.ExplainEntry{Phase: "hot", Action: "complete", Step: "complete", Age: "10d"},
			assert: func(t *testing.T, finding Finding) {
				require.Equal(t, model.StatusHealthy, finding.Status)
			},
		},
		{
			name: "issues accumulate",
			status: &catalog.ExplainEntry{
				Phase: "hot", Action: "rollover", Step: "check-rollover-ready", Age: "45d",
				PreviousStepInfo: &catalog.StepInfo{Message: "rollover failed"},
			},
			assert: func(t *testing.T, finding Finding) {
				require.Equal(t, model.StatusWarning, finding.Status)
				require.Len(t, finding.Issues, 3)
			},
		},
		{
			name:   "missing fields read as unknown",
			status: &catalog.ExplainEntry{Age: "1d"},
			assert: func(t *testing.T, finding Finding) {
				require.Equal(t, model.StatusWarning, finding.Status)
				require.Contains(t, finding.Issues, "index may be stuck in unknown phase, step unknown")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := Record{PolicyName: policy.Name, Index: "app-2024.09.27-000001", ShortName: "app", Status: tc.status}
			tc.assert(t, ClassifyHealth(rec, policy))
		})
	}
}

func TestClassifyHealthNoDataIgnoresPolicyShape(t *testing.T) {
	t.Parallel()

	// classification of a record without live status does not depend on the
	// policy's phases
	for _, policy := range []Policy{
		{Name: "empty"},
		{Name: "full", Phases: map[string]Phase{"hot": {Name: "hot"}, "delete": {Name: "delete", TriggerAgeDays: 90}}},
	} {
		finding := ClassifyHealth(Record{Index: "idx"}, policy)
		require.Equal(t, model.StatusNoData, finding.Status)
	}
}
