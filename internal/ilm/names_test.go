package ilm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		index string
		want  string
	}{
		{name: "generation suffix stripped", index: "metrics-2024.09.27-000001", want: "metrics"},
		{name: "no suffix unchanged", index: "metrics", want: "metrics"},
		{name: "multi segment name", index: "app-logs-prod-2023.12.01-000042", want: "app-logs-prod"},
		{name: "suffix only at the end", index: "app-2024.09.27-000001-replica", want: "app-2024.09.27-000001-replica"},
		{name: "short counter kept", index: "app-2024.09.27-0001", want: "app-2024.09.27-0001"},
		{name: "date without counter kept", index: "app-2024.09.27", want: "app-2024.09.27"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.want, NormalizeName(tc.index))
		})
	}
}
