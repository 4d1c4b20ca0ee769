package main

import (
	"github.com/spf13/cobra"
)

type policiesOptions struct {
	dataOptions
	JSON bool
}

func newPoliciesCmd(root *rootFlags) *cobra.Command {
	opts := policiesOptions{}

	cmd := &cobra.Command{
		Use:   "policies",
		Short: "Show the per-policy summary table",
		Long: `Policies prints one row per analyzed policy: retention, managed index
count, aggregated health status, last modification date and the lifecycle
signature.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPolicies(cmd, root, opts)
		},
	}

	addDataFlags(cmd, &opts.dataOptions)
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output the summaries in JSON format")

	return cmd
}

func runPolicies(cmd *cobra.Command, root *rootFlags, opts policiesOptions) error {
	app, err := newAppContext(root)
	if err != nil {
		exitOnSetupError(err)
	}

	rep := app.analyze(cmd, opts.dataOptions)

	out := cmd.OutOrStdout()
	if opts.JSON {
		return printJSON(out, rep.Policies)
	}

	useUnicode := !root.noColor && supportsUnicode(out)
	return renderSummaryTable(out, rep.Policies, useUnicode)
}
