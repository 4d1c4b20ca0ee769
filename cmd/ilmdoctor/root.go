package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
	noColor    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "ilmdoctor",
		Short:         "ilmdoctor analyzes Elasticsearch index lifecycle health from diagnostic dumps",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, run a full analysis of the
			// current directory.
			if len(args) == 0 {
				return analyzeCmdRunner(cmd, flags, analyzeOptions{dataOptions: dataOptions{Dir: "."}})
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to an analyzer config file (YAML)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable Unicode icons in table output")

	cmd.AddCommand(newAnalyzeCmd(flags))
	cmd.AddCommand(newPoliciesCmd(flags))
	cmd.AddCommand(newErrorsCmd(flags))
	cmd.AddCommand(newRecommendCmd(flags))
	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newDashboardCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
