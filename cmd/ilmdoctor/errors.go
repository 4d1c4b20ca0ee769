package main

import (
	"github.com/spf13/cobra"
)

type errorsOptions struct {
	dataOptions
	JSON bool
}

func newErrorsCmd(root *rootFlags) *cobra.Command {
	opts := errorsOptions{}

	cmd := &cobra.Command{
		Use:   "errors",
		Short: "Show lifecycle errors grouped by category",
		Long: `Errors prints one section per error category, ranked by retry count so the
indices Elasticsearch has retried the longest come first. Table output caps
each section at the configured top-N; JSON output carries the full set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runErrors(cmd, root, opts)
		},
	}

	addDataFlags(cmd, &opts.dataOptions)
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output the categorized errors in JSON format")

	return cmd
}

func runErrors(cmd *cobra.Command, root *rootFlags, opts errorsOptions) error {
	app, err := newAppContext(root)
	if err != nil {
		exitOnSetupError(err)
	}

	rep := app.analyze(cmd, opts.dataOptions)

	out := cmd.OutOrStdout()
	if opts.JSON {
		return printJSON(out, rep.Errors)
	}

	return renderErrors(out, rep.Errors, app.cfg.Display.TopErrorsPerCategory)
}
