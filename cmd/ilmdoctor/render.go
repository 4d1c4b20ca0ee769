package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/mikecalizo/ilm-parser-collections/internal/model"
	"github.com/mikecalizo/ilm-parser-collections/internal/report"
)

// renderSummaryTable prints the per-policy summary table.
func renderSummaryTable(out io.Writer, policies []report.PolicySummary, useUnicode bool) error {
	if len(policies) == 0 {
		_, err := fmt.Fprintln(out, "No ILM policies found.")
		return err
	}

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "POLICY\tRETENTION\tINDICES\tSTATUS\tMODIFIED\tLIFECYCLE")

	for _, p := range policies {
		fmt.Fprintf(writer, "%s\t%s\t%d\t%s\t%s\t%s\n",
			truncateString(p.Policy, 40),
			formatRetention(p.RetentionDays, useUnicode),
			p.IndexCount,
			formatStatus(p.Status(), useUnicode),
			valueOrFallback(p.ModifiedDate, "N/A"),
			truncateString(p.Lifecycle, 60),
		)
	}

	return writer.Flush()
}

// renderFindings prints every index that carries a warning or has no live
// lifecycle state. Healthy indices stay out of the table.
func renderFindings(out io.Writer, policies []report.PolicySummary, useUnicode bool) error {
	total := 0
	for _, p := range policies {
		for _, idx := range p.Indices {
			if idx.Status != model.StatusHealthy {
				total++
			}
		}
	}
	if total == 0 {
		return nil
	}

	fmt.Fprintf(out, "\nProblem indices (%d)\n", total)

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "INDEX\tPOLICY\tPHASE\tAGE\tSTATUS\tISSUES")

	for _, p := range policies {
		for _, idx := range p.Indices {
			if idx.Status == model.StatusHealthy {
				continue
			}
			fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%s\n",
				truncateString(idx.ShortName, 40),
				truncateString(p.Policy, 30),
				idx.Phase,
				formatAge(idx.AgeDays),
				formatStatus(idx.Status, useUnicode),
				formatIssues(idx.Issues),
			)
		}
	}

	return writer.Flush()
}

// renderErrors prints one section per error category in report order, each
// capped at topPerCategory rows.
func renderErrors(out io.Writer, errs report.ErrorReport, topPerCategory int) error {
	if errs.TotalDistinct == 0 {
		_, err := fmt.Fprintln(out, "\nNo lifecycle errors detected.")
		return err
	}

	fmt.Fprintf(out, "\nLifecycle errors (%d indices)\n", errs.TotalDistinct)

	for _, category := range model.ErrorCategories() {
		entries := errs.Categories[category]
		if len(entries) == 0 {
			continue
		}

		fmt.Fprintf(out, "\n%s (%d)\n", strings.ToUpper(category.String()), len(entries))

		shown := entries
		if topPerCategory > 0 && len(shown) > topPerCategory {
			shown = shown[:topPerCategory]
		}

		writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(writer, "INDEX\tPOLICY\tPHASE\tAGE\tRETRIES\tREASON")
		for _, e := range shown {
			fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%d\t%s\n",
				truncateString(e.ShortName, 40),
				truncateString(e.Policy, 30),
				valueOrFallback(e.Phase, "unknown"),
				formatAge(e.AgeDays),
				e.RetryCount,
				e.Reason,
			)
		}
		if err := writer.Flush(); err != nil {
			return err
		}

		if len(entries) > len(shown) {
			fmt.Fprintf(out, "... and %d more\n", len(entries)-len(shown))
		}
	}

	return nil
}

// renderRecommendations prints policy tuning advice grouped by category.
func renderRecommendations(out io.Writer, recs report.RecommendationReport) error {
	if recs.Total == 0 {
		_, err := fmt.Fprintln(out, "\nNo recommendations. Policies look well tuned.")
		return err
	}

	fmt.Fprintf(out, "\nRecommendations (%d)\n", recs.Total)

	n := 0
	for _, category := range model.RecommendationCategories() {
		entries := recs.Categories[category]
		if len(entries) == 0 {
			continue
		}

		fmt.Fprintf(out, "\n%s\n", strings.ToUpper(category.String()))
		for _, rec := range entries {
			n++
			fmt.Fprintf(out, "%2d. '%s': %s\n", n, rec.Policy, rec.Message)
		}
	}

	return nil
}

// renderHealth prints the overall score line that closes the report.
func renderHealth(out io.Writer, health report.HealthScore) error {
	fmt.Fprintf(out, "\nHealth score: %.1f/100 (%s)\n", health.Score, strings.ToUpper(health.Rating.String()))
	_, err := fmt.Fprintf(out, "Indices analyzed: %d, indices with errors: %d\n", health.TotalIndices, health.ErrorIndices)
	return err
}

func printJSON(out io.Writer, payload any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func formatStatus(status model.HealthStatus, useUnicode bool) string {
	if useUnicode {
		return fmt.Sprintf("%s %s", status.Icon(), status.String())
	}

	return fmt.Sprintf("%s %s", status.IconFallback(), status.String())
}

// formatRetention renders the delete-phase trigger in days; zero means the
// policy never deletes.
func formatRetention(days float64, useUnicode bool) string {
	if days <= 0 {
		if useUnicode {
			return "∞"
		}
		return "unbounded"
	}
	return fmt.Sprintf("%.0fd", days)
}

func formatAge(days float64) string {
	return fmt.Sprintf("%.1fd", days)
}

func formatIssues(issues []string) string {
	if len(issues) == 0 {
		return "-"
	}

	shown := issues
	if len(shown) > 2 {
		shown = shown[:2]
	}

	joined := strings.Join(shown, "; ")
	if len(issues) > len(shown) {
		joined += fmt.Sprintf(" (+%d more)", len(issues)-len(shown))
	}
	return joined
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
