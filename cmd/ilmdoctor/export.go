package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mikecalizo/ilm-parser-collections/internal/report"
)

type exportOptions struct {
	dataOptions
	Output string
}

func newExportCmd(root *rootFlags) *cobra.Command {
	opts := exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the full report to a JSON file",
		Long: `Export runs the analysis and writes the full report to a JSON file.
With --output auto (the default) the file name is derived from the current
time, e.g. ilm_20240601_143000.json.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, root, opts)
		},
	}

	addDataFlags(cmd, &opts.dataOptions)
	cmd.Flags().StringVar(&opts.Output, "output", "auto", "Report file path, or auto to derive one from the current time")

	return cmd
}

func runExport(cmd *cobra.Command, root *rootFlags, opts exportOptions) error {
	app, err := newAppContext(root)
	if err != nil {
		exitOnSetupError(err)
	}

	rep := app.analyze(cmd, opts.dataOptions)

	path := opts.Output
	if path == "" || path == "auto" {
		path = report.AutoFileName(time.Now())
	}

	if err := report.Save(rep, path); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		os.Exit(3)
	}

	app.log.WithFields(map[string]any{
		"path":    path,
		"indices": rep.Health.TotalIndices,
	}).Info("report exported")

	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
	return nil
}
