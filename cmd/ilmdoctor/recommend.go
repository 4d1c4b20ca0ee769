package main

import (
	"github.com/spf13/cobra"
)

type recommendOptions struct {
	dataOptions
	JSON bool
}

func newRecommendCmd(root *rootFlags) *cobra.Command {
	opts := recommendOptions{}

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Show policy tuning recommendations",
		Long: `Recommend prints advice derived from policy shape and index state, grouped
into performance, cost, reliability and maintenance categories.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommend(cmd, root, opts)
		},
	}

	addDataFlags(cmd, &opts.dataOptions)
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output the recommendations in JSON format")

	return cmd
}

func runRecommend(cmd *cobra.Command, root *rootFlags, opts recommendOptions) error {
	app, err := newAppContext(root)
	if err != nil {
		exitOnSetupError(err)
	}

	rep := app.analyze(cmd, opts.dataOptions)

	out := cmd.OutOrStdout()
	if opts.JSON {
		return printJSON(out, rep.Recommendations)
	}

	return renderRecommendations(out, rep.Recommendations)
}
