package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mikecalizo/ilm-parser-collections/internal/catalog"
	"github.com/mikecalizo/ilm-parser-collections/internal/report"
)

const policiesFixture = `{
  "app-policy": {
    "version": 3,
    "modified_date": "2024-06-01T10:00:00.000Z",
    "policy": {
      "phases": {
        "hot": {"min_age": "0ms", "actions": {"rollover": {"max_age": "7d"}}},
        "delete": {"min_age": "30d", "actions": {"delete": {}}}
      }
    },
    "in_use_by": {"indices": ["app-000001"], "data_streams": [], "composable_templates": []}
  }
}`

const explainFixture = `{
  "indices": {
    "app-000001": {
      "index": "app-000001",
      "managed": true,
      "policy": "app-policy",
      "phase": "hot",
      "action": "rollover",
      "step": "complete",
      "age": "2d"
    }
  }
}`

const errorsFixture = `{
  "indices": {
    "failing-000001": {
      "index": "failing-000001",
      "managed": true,
      "policy": "app-policy",
      "phase": "warm",
      "step": "ERROR",
      "age": "10d",
      "failed_step_retry_count": 5,
      "step_info": {"type": "security_exception", "reason": "missing permission on index"}
    }
  }
}`

// seedDumpDir writes a minimal snapshot directory for command tests.
func seedDumpDir(t *testing.T, withErrors bool) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, catalog.PoliciesFile), []byte(policiesFixture), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, catalog.ExplainFile), []byte(explainFixture), 0o644))
	if withErrors {
		require.NoError(t, os.WriteFile(filepath.Join(dir, catalog.ErrorsFile), []byte(errorsFixture), 0o644))
	}
	return dir
}

func executeCommand(args ...string) (string, error) {
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestPoliciesCommandTableOutput(t *testing.T) {
	dir := seedDumpDir(t, false)

	stdout, err := executeCommand("policies", "--dir", dir)
	require.NoError(t, err)

	require.Contains(t, stdout, "POLICY")
	require.Contains(t, stdout, "app-policy")
	require.Contains(t, stdout, "30d")
	// Buffers are not terminals, so output uses the ASCII fallback icons.
	require.Contains(t, stdout, "[OK] healthy")
	require.Contains(t, stdout, "2024-06-01")
}

func TestPoliciesCommandJSONOutput(t *testing.T) {
	dir := seedDumpDir(t, false)

	stdout, err := executeCommand("policies", "--dir", dir, "--json")
	require.NoError(t, err)

	var summaries []report.PolicySummary
	require.NoError(t, json.Unmarshal([]byte(stdout), &summaries))
	require.Len(t, summaries, 1)
	require.Equal(t, "app-policy", summaries[0].Policy)
	require.InDelta(t, 30.0, summaries[0].RetentionDays, 0.001)
	require.Equal(t, 1, summaries[0].IndexCount)
	require.Equal(t, 1, summaries[0].Healthy)
}

func TestPoliciesCommandExplicitFiles(t *testing.T) {
	dir := seedDumpDir(t, false)

	stdout, err := executeCommand("policies",
		"--policies", filepath.Join(dir, catalog.PoliciesFile),
		"--explain", filepath.Join(dir, catalog.ExplainFile),
	)
	require.NoError(t, err)
	require.Contains(t, stdout, "app-policy")
}

func TestPoliciesCommandEmptyDir(t *testing.T) {
	stdout, err := executeCommand("policies", "--dir", t.TempDir())
	require.NoError(t, err)
	require.Contains(t, stdout, "No ILM policies found.")
}
