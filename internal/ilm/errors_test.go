package ilm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mikecalizo/ilm-parser-collections/internal/catalog"
	"github.com/mikecalizo/ilm-parser-collections/internal/model"
)

func TestCategorize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		errType string
		reason  string
		want    model.ErrorCategory
	}{
		{
			name:    "security exception",
			errType: "security_exception",
			reason:  "action [indices:admin/rollover] is unauthorized",
			want:    model.CategoryPermission,
		},
		{
			name:    "permission wins over storage",
			errType: "security_exception",
			reason:  "disk usage exceeded",
			want:    model.CategoryPermission,
		},
		{
			name:   "snapshot failure",
			reason: "snapshot [found-snapshots] is missing",
			want:   model.CategorySnapshot,
		},
		{
			name:   "snapshot wins over shard",
			reason: "snapshot failed: shard unavailable",
			want:   model.CategorySnapshot,
		},
		{
			name:   "shard allocation",
			reason: "failed to allocate shard copies",
			want:   model.CategoryShard,
		},
		{
			name:   "disk failure",
			reason: "disk watermark exceeded",
			want:   model.CategoryStorage,
		},
		{
			name:   "space failure",
			reason: "no space left on device",
			want:   model.CategoryStorage,
		},
		{
			name:   "matching is case insensitive",
			reason: "SNAPSHOT in progress",
			want:   model.CategorySnapshot,
		},
		{
			name:    "nothing matches",
			errType: "illegal_argument_exception",
			reason:  "setting [index.lifecycle.name] is unknown",
			want:    model.CategoryOther,
		},
		{
			name: "empty content",
			want: model.CategoryOther,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.want, Categorize(tc.errType, tc.reason))
		})
	}
}

func TestCollectErrors(t *testing.T) {
	t.Parallel()

	snap := catalog.Snapshot{
		Explain: catalog.ExplainCatalog{
			// plain ERROR step, also present in the error-only catalog
			"app-2024.09.27-000001": {
				Policy: "app-policy", Phase: "hot", Step: "ERROR", Age: "12d",
				FailedStepRetryCount: 4,
				StepInfo:             &catalog.StepInfo{Type: "security_exception", Reason: "rollover is unauthorized for user"},
			},
			// erroring step info without step=ERROR
			"traces-2024.09.20-000003": {
				Policy: "traces-policy", Phase: "cold", Step: "wait-for-shard-history-leases", Age: "40d",
				FailedStepRetryCount: 9,
				StepInfo:             &catalog.StepInfo{Type: "snapshot_exception", Reason: "error while creating snapshot"},
			},
			// healthy entry stays out of the error set
			"healthy-2024.09.27-000001": {
				Policy: "app-policy", Phase: "hot", Step: "complete", Age: "2d",
			},
			// skipped by index pattern
			"partial-restored-old-000001": {
				Policy: "app-policy", Step: "ERROR",
				StepInfo: &catalog.StepInfo{Reason: "disk full"},
			},
			// skipped because its policy is skipped
			"metrics-2024.09.27-000001": {
				Policy: "metrics-default", Step: "ERROR",
				StepInfo: &catalog.StepInfo{Reason: "disk full"},
			},
		},
		Errors: catalog.ExplainCatalog{
			// superseded by the explain entry with the same name
			"app-2024.09.27-000001": {
				Policy: "app-policy", Phase: "hot", Step: "ERROR", Age: "12d",
				FailedStepRetryCount: 2,
				StepInfo:             &catalog.StepInfo{Reason: "stale duplicate"},
			},
			// only present in the error catalog
			"billing-2024.09.01-000009": {
				Policy: "billing-policy", Phase: "warm", Step: "ERROR", Age: "60d",
				FailedStepRetryCount: 1,
				PreviousStepInfo:     &catalog.StepInfo{Reason: "no space left on device"},
			},
		},
	}
	skip := NewSkipFilter([]string{"metrics"}, []string{"partial"})

	result := CollectErrors(snap, skip, 80)
	require.Equal(t, 3, result.TotalDistinct)

	permission := result.Categories[model.CategoryPermission]
	require.Len(t, permission, 1)
	require.Equal(t, "app-2024.09.27-000001", permission[0].Index)
	require.Equal(t, "app", permission[0].ShortName)
	// the explain entry superseded the error-catalog duplicate
	require.Equal(t, 4, permission[0].RetryCount)

	snapshot := result.Categories[model.CategorySnapshot]
	require.Len(t, snapshot, 1)
	require.Equal(t, "traces-2024.09.20-000003", snapshot[0].Index)
	require.InDelta(t, 40, snapshot[0].AgeDays, 1e-12)

	// reason fell back to previous_step_info, space matched storage
	storage := result.Categories[model.CategoryStorage]
	require.Len(t, storage, 1)
	require.Equal(t, "billing-2024.09.01-000009", storage[0].Index)

	require.Empty(t, result.Categories[model.CategoryShard])
	require.Empty(t, result.Categories[model.CategoryOther])
}

func TestCollectErrorsRanksByRetryCount(t *testing.T) {
	t.Parallel()

	snap := catalog.Snapshot{
		Errors: catalog.ExplainCatalog{
			"idx-b": {Policy: "p", Step: "ERROR", FailedStepRetryCount: 3, StepInfo: &catalog.StepInfo{Reason: "unassigned shard"}},
			"idx-c": {Policy: "p", Step: "ERROR", FailedStepRetryCount: 7, StepInfo: &catalog.StepInfo{Reason: "shard limit reached"}},
			"idx-a": {Policy: "p", Step: "ERROR", FailedStepRetryCount: 3, StepInfo: &catalog.StepInfo{Reason: "shard recovery stalled"}},
		},
	}

	result := CollectErrors(snap, NewSkipFilter(nil, nil), 80)
	entries := result.Categories[model.CategoryShard]
	require.Len(t, entries, 3)
	require.Equal(t, "idx-c", entries[0].Index)
	// retry-count tie resolved by index name
	require.Equal(t, "idx-a", entries[1].Index)
	require.Equal(t, "idx-b", entries[2].Index)
}

func TestCollectErrorsDefaultsAndTruncation(t *testing.T) {
	t.Parallel()

	longReason := "failed: " + strings.Repeat("x", 100)
	snap := catalog.Snapshot{
		Errors: catalog.ExplainCatalog{
			"no-info-000001":   {Step: "ERROR"},
			"long-info-000001": {Policy: "p", Step: "ERROR", StepInfo: &catalog.StepInfo{Reason: longReason}},
		},
	}

	result := CollectErrors(snap, NewSkipFilter(nil, nil), 40)
	entries := result.Categories[model.CategoryOther]
	require.Len(t, entries, 2)

	byIndex := map[string]string{}
	for _, entry := range entries {
		byIndex[entry.Index] = entry.Reason
	}
	require.Equal(t, "Unknown error", byIndex["no-info-000001"])
	require.Len(t, byIndex["long-info-000001"], 40)
	require.True(t, strings.HasSuffix(byIndex["long-info-000001"], "..."))
}

func TestStepInfoMentionsError(t *testing.T) {
	t.Parallel()

	require.False(t, stepInfoMentionsError(nil))
	require.False(t, stepInfoMentionsError(&catalog.StepInfo{Type: "info", Reason: "all good"}))
	require.True(t, stepInfoMentionsError(&catalog.StepInfo{Type: "illegal_argument_exception", Message: "Error while running step"}))
	require.True(t, stepInfoMentionsError(&catalog.StepInfo{Reason: "upstream ERROR propagated"}))
}
