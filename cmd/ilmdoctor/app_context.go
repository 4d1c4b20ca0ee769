package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mikecalizo/ilm-parser-collections/internal/catalog"
	"github.com/mikecalizo/ilm-parser-collections/internal/config"
	"github.com/mikecalizo/ilm-parser-collections/internal/ilm"
	"github.com/mikecalizo/ilm-parser-collections/internal/logger"
	"github.com/mikecalizo/ilm-parser-collections/internal/report"
	ilmerrors "github.com/mikecalizo/ilm-parser-collections/pkg/errors"
)

// dataOptions selects where the lifecycle dumps are read from. Explicit file
// paths take precedence over the directory scan.
type dataOptions struct {
	Dir          string
	PoliciesPath string
	ExplainPath  string
	ErrorsPath   string
}

func addDataFlags(cmd *cobra.Command, opts *dataOptions) {
	cmd.Flags().StringVar(&opts.Dir, "dir", ".", "Directory containing ilm_policies.json, ilm_explain.json and ilm_explain_only_errors.json")
	cmd.Flags().StringVar(&opts.PoliciesPath, "policies", "", "Path to a policy dump (overrides --dir)")
	cmd.Flags().StringVar(&opts.ExplainPath, "explain", "", "Path to an explain dump (overrides --dir)")
	cmd.Flags().StringVar(&opts.ErrorsPath, "errors", "", "Path to an error dump (overrides --dir)")
}

func (o dataOptions) explicit() bool {
	return o.PoliciesPath != "" || o.ExplainPath != "" || o.ErrorsPath != ""
}

// appContext carries the pieces every data subcommand needs once flags are
// parsed.
type appContext struct {
	cfg *config.Config
	log *logger.Logger
}

func newAppContext(root *rootFlags) (*appContext, error) {
	cfg := config.DefaultConfig()
	if root.configPath != "" {
		parsed, err := config.ParseConfig(root.configPath)
		if err != nil {
			return nil, err
		}
		cfg = parsed
	}

	level := "info"
	if root.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &appContext{cfg: cfg, log: log}, nil
}

func (app *appContext) analyze(cmd *cobra.Command, opts dataOptions) *report.Report {
	var snap catalog.Snapshot
	if opts.explicit() {
		snap = catalog.LoadFiles(opts.PoliciesPath, opts.ExplainPath, opts.ErrorsPath, app.log)
	} else {
		dir := opts.Dir
		if dir == "" {
			dir = "."
		}
		snap = catalog.Load(dir, app.log)
	}

	return ilm.New(app.cfg, app.log).Analyze(cmd.Context(), snap)
}

// exitOnSetupError maps bootstrap failures onto the exit-code contract:
// configuration problems exit 2, everything else exits 3.
func exitOnSetupError(err error) {
	var parseErr *ilmerrors.ParseError
	var validationErr *ilmerrors.ValidationError
	if errors.As(err, &parseErr) || errors.As(err, &validationErr) {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(3)
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}
