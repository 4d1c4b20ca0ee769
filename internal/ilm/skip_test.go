package ilm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSkipFilterPolicies(t *testing.T) {
	t.Parallel()

	filter := NewSkipFilter([]string{"metrics", "elastic-agent-ilm"}, nil)

	cases := []struct {
		name   string
		policy string
		skip   bool
	}{
		{name: "pattern match", policy: "metrics-default", skip: true},
		{name: "pattern match is case insensitive", policy: "METRICS-CUSTOM", skip: true},
		{name: "second pattern", policy: "elastic-agent-ilm", skip: true},
		{name: "unrelated policy kept", policy: "traces-policy", skip: false},
		{name: "generic logs policy skipped", policy: "system-logs-policy", skip: true},
		{name: "logs data stream policy kept", policy: "app-logs-daily", skip: false},
		{name: "bare logs skipped", policy: "logs", skip: true},
		{name: "logs dash prefix kept", policy: "logs-apache", skip: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.skip, filter.SkipPolicy(tc.policy))
		})
	}
}

func TestSkipFilterIndices(t *testing.T) {
	t.Parallel()

	filter := NewSkipFilter(nil, []string{"partial", "internal"})

	cases := []struct {
		name  string
		index string
		skip  bool
	}{
		{name: "partial restored index", index: "partial-restored-app-000001", skip: true},
		{name: "internal index", index: ".internal.alerts-000001", skip: true},
		{name: "case insensitive", index: "PARTIAL-app", skip: true},
		{name: "regular index kept", index: "app-logs-2024.09.27-000001", skip: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.skip, filter.SkipIndex(tc.index))
		})
	}
}

func TestSkipFilterConfiguredListsOnly(t *testing.T) {
	t.Parallel()

	// With empty lists only the built-in logs rule remains active.
	filter := NewSkipFilter(nil, nil)

	require.False(t, filter.SkipPolicy("metrics-default"))
	require.True(t, filter.SkipPolicy("ancient-logs"))
	require.False(t, filter.SkipIndex("partial-restored-app"))
}
