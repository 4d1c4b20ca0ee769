package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mikecalizo/ilm-parser-collections/internal/model"
	"github.com/mikecalizo/ilm-parser-collections/internal/report"
)

func TestErrorsCommandTableOutput(t *testing.T) {
	dir := seedDumpDir(t, true)

	stdout, err := executeCommand("errors", "--dir", dir)
	require.NoError(t, err)

	require.Contains(t, stdout, "Lifecycle errors (1 indices)")
	require.Contains(t, stdout, "PERMISSION (1)")
	require.Contains(t, stdout, "failing-000001")
	require.Contains(t, stdout, "missing permission on index")
	require.Contains(t, stdout, "5")
}

func TestErrorsCommandJSONOutput(t *testing.T) {
	dir := seedDumpDir(t, true)

	stdout, err := executeCommand("errors", "--dir", dir, "--json")
	require.NoError(t, err)

	var errs report.ErrorReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &errs))
	require.Equal(t, 1, errs.TotalDistinct)
	require.Len(t, errs.Categories[model.CategoryPermission], 1)
	require.Equal(t, "failing-000001", errs.Categories[model.CategoryPermission][0].Index)
	require.Equal(t, 5, errs.Categories[model.CategoryPermission][0].RetryCount)
}

func TestErrorsCommandNoErrors(t *testing.T) {
	dir := seedDumpDir(t, false)

	stdout, err := executeCommand("errors", "--dir", dir)
	require.NoError(t, err)
	require.Contains(t, stdout, "No lifecycle errors detected.")
}
