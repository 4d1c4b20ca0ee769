package main

import (
	"os"

	"github.com/spf13/cobra"
)

type analyzeOptions struct {
	dataOptions
	JSON bool
}

var analyzeCmdRunner = runAnalyze

func newAnalyzeCmd(root *rootFlags) *cobra.Command {
	opts := analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the full lifecycle health report",
		Long: `Analyze correlates policy definitions with per-index lifecycle state and
prints the policy summary, lifecycle errors, recommendations and the overall
health score. Returns exit code 0 when the health rating is excellent or good,
exit code 1 otherwise.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return analyzeCmdRunner(cmd, root, opts)
		},
	}

	addDataFlags(cmd, &opts.dataOptions)
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output the report in JSON format")

	return cmd
}

func runAnalyze(cmd *cobra.Command, root *rootFlags, opts analyzeOptions) error {
	app, err := newAppContext(root)
	if err != nil {
		exitOnSetupError(err)
	}

	rep := app.analyze(cmd, opts.dataOptions)

	out := cmd.OutOrStdout()
	if opts.JSON {
		if err := printJSON(out, rep); err != nil {
			return err
		}
	} else {
		useUnicode := !root.noColor && supportsUnicode(out)
		if err := renderSummaryTable(out, rep.Policies, useUnicode); err != nil {
			return err
		}
		if err := renderFindings(out, rep.Policies, useUnicode); err != nil {
			return err
		}
		if err := renderErrors(out, rep.Errors, app.cfg.Display.TopErrorsPerCategory); err != nil {
			return err
		}
		if err := renderRecommendations(out, rep.Recommendations); err != nil {
			return err
		}
		if err := renderHealth(out, rep.Health); err != nil {
			return err
		}
	}

	// Exit with appropriate code
	os.Exit(rep.Health.ExitCode())
	return nil
}
