package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mikecalizo/ilm-parser-collections/internal/model"
	"github.com/mikecalizo/ilm-parser-collections/internal/report"
)

// View renders the current model state
func (m Model) View() string {
	switch m.viewMode {
	case ViewList:
		return m.renderListView()
	case ViewDetail, ViewErrors, ViewRecommendations:
		return m.renderScrollView()
	case ViewHelp:
		return m.renderHelpView()
	default:
		return m.renderListView()
	}
}

// renderListView renders the main policy list view
func (m Model) renderListView() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var content strings.Builder

	content.WriteString(m.renderHeader())
	content.WriteString("\n")
	content.WriteString(m.renderPolicyList())
	content.WriteString("\n")
	content.WriteString(m.renderListFooter())

	return content.String()
}

// renderHeader renders the header with title, status summary and health score
func (m Model) renderHeader() string {
	title := titleStyle.Render(m.titleText())

	counts := m.CountByStatus()
	summary := fmt.Sprintf(
		"%s %d  %s %d  %s %d",
		m.statusIcon(model.StatusHealthy), counts[model.StatusHealthy],
		m.statusIcon(model.StatusWarning), counts[model.StatusWarning],
		m.statusIcon(model.StatusNoData), counts[model.StatusNoData],
	)

	health := m.report.Health
	healthLine := fmt.Sprintf("Health %.1f/100 %s",
		health.Score,
		GetRatingStyle(health.Rating).Render(strings.ToUpper(health.Rating.String())),
	)

	headerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		summary+"   "+healthLine,
	)

	return headerStyle.Render(headerContent)
}

// renderPolicyList renders the list of policies, worst health first
func (m Model) renderPolicyList() string {
	if len(m.policies) == 0 {
		return m.renderEmptyState()
	}

	// Each item renders three lines; reserve space for header and footer.
	visibleItems := (m.height - 10) / 3
	if visibleItems < 1 {
		visibleItems = 1
	}

	start := m.scrollOffset
	if m.cursor < start {
		start = m.cursor
	}
	if m.cursor >= start+visibleItems {
		start = m.cursor - visibleItems + 1
	}

	end := start + visibleItems
	if end > len(m.policies) {
		end = len(m.policies)
	}

	var items []string
	for i := start; i < end; i++ {
		items = append(items, m.renderPolicyItem(i, i == m.cursor))
	}

	moreAbove, moreBelow := "▲ More above", "▼ More below"
	if !m.useUnicode {
		moreAbove, moreBelow = "^ More above", "v More below"
	}
	if start > 0 {
		items = append([]string{lipgloss.NewStyle().Foreground(mutedColor).Render(moreAbove)}, items...)
	}
	if end < len(m.policies) {
		items = append(items, lipgloss.NewStyle().Foreground(mutedColor).Render(moreBelow))
	}

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

// renderPolicyItem renders a single policy item
func (m Model) renderPolicyItem(index int, selected bool) string {
	p := m.policies[index]

	icon := m.statusIcon(p.Status())
	number := fmt.Sprintf("%d.", index+1)

	line1 := fmt.Sprintf("%s %s %s", icon, number, lipgloss.NewStyle().Bold(true).Render(p.Policy))
	line2 := fmt.Sprintf("   retention: %s  indices: %d (%d healthy, %d warning, %d no data)",
		formatRetention(p.RetentionDays, m.useUnicode),
		p.IndexCount, p.Healthy, p.Warnings, p.NoData)
	line3 := fmt.Sprintf("   %s", lipgloss.NewStyle().Foreground(mutedColor).Render("modified: "+valueOrDash(p.ModifiedDate)))

	content := lipgloss.JoinVertical(lipgloss.Left, line1, line2, line3)

	if selected {
		return selectedItemStyle.Render(content)
	}
	return itemStyle.Render(content)
}

// renderEmptyState renders the empty state when the report has no policies
func (m Model) renderEmptyState() string {
	message := `No policies to show.

Point ilmdoctor at a directory containing ilm_policies.json
and ilm_explain.json dumps.`

	return emptyStateStyle.Render(message)
}

// renderListFooter renders the footer with keyboard shortcuts
func (m Model) renderListFooter() string {
	sep := "  •  "
	nav := "↑/↓: navigate"
	if !m.useUnicode {
		sep = "  |  "
		nav = "up/down: navigate"
	}

	hints := []string{
		nav,
		"enter: details",
		"e: errors",
		"r: recommendations",
		"?: help",
		"q: quit",
	}

	return footerStyle.Render(strings.Join(hints, sep))
}

// renderScrollView renders the shared frame around a scrollable content view
func (m Model) renderScrollView() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	title := titleStyle.Render(m.scrollTitle)

	percent := m.viewport.ScrollPercent() * 100
	footerText := fmt.Sprintf("esc: back  •  ↑/↓: scroll (%3.0f%%)  •  q: quit", percent)
	if !m.useUnicode {
		footerText = fmt.Sprintf("esc: back  |  up/down: scroll (%3.0f%%)  |  q: quit", percent)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		m.viewport.View(),
		footerStyle.Render(footerText),
	)
}

// buildDetailContent builds the scrollable body of the policy detail view
func (m Model) buildDetailContent(p report.PolicySummary) string {
	var content strings.Builder

	writeRow := func(label, value string) {
		content.WriteString(detailLabelStyle.Render(label))
		content.WriteString(detailValueStyle.Render(value))
		content.WriteString("\n")
	}

	status := p.Status()
	content.WriteString(fmt.Sprintf("%s %s\n\n", m.statusIcon(status), lipgloss.NewStyle().Bold(true).Render(status.String())))

	writeRow("Retention", formatRetention(p.RetentionDays, m.useUnicode))
	writeRow("Indices", fmt.Sprintf("%d (%d healthy, %d warning, %d no data)", p.IndexCount, p.Healthy, p.Warnings, p.NoData))
	if p.DataStreamCount > 0 {
		writeRow("Data streams", fmt.Sprintf("%d", p.DataStreamCount))
	}
	writeRow("Modified", valueOrDash(p.ModifiedDate))
	writeRow("Lifecycle", p.Lifecycle)

	if len(p.Indices) > 0 {
		content.WriteString("\n")
		content.WriteString(sectionStyle.Render("Indices"))
		content.WriteString("\n")
		for _, idx := range p.Indices {
			content.WriteString(fmt.Sprintf("%s %s  phase=%s  age=%.1fd\n",
				m.statusIcon(idx.Status),
				lipgloss.NewStyle().Bold(true).Render(idx.ShortName),
				valueOrDash(idx.Phase),
				idx.AgeDays,
			))
			for _, issue := range idx.Issues {
				content.WriteString(lipgloss.NewStyle().Foreground(mutedColor).Render("    - " + issue))
				content.WriteString("\n")
			}
		}
	}

	return content.String()
}

// buildErrorsContent builds the scrollable body of the categorized error view
func (m Model) buildErrorsContent() string {
	errs := m.report.Errors
	if errs.TotalDistinct == 0 {
		return emptyStateStyle.Render("No lifecycle errors detected.")
	}

	var content strings.Builder
	content.WriteString(fmt.Sprintf("%d indices report lifecycle errors.\n", errs.TotalDistinct))

	for _, category := range model.ErrorCategories() {
		entries := errs.Categories[category]
		if len(entries) == 0 {
			continue
		}

		content.WriteString(sectionStyle.Render(fmt.Sprintf("%s (%d)", strings.ToUpper(category.String()), len(entries))))
		content.WriteString("\n")
		for _, e := range entries {
			content.WriteString(fmt.Sprintf("%s  policy=%s  phase=%s  retries=%d\n",
				lipgloss.NewStyle().Bold(true).Render(e.ShortName),
				e.Policy,
				valueOrDash(e.Phase),
				e.RetryCount,
			))
			content.WriteString(lipgloss.NewStyle().Foreground(mutedColor).Render("    " + e.Reason))
			content.WriteString("\n")
		}
	}

	return content.String()
}

// buildRecommendationsContent builds the scrollable body of the advice view
func (m Model) buildRecommendationsContent() string {
	recs := m.report.Recommendations
	if recs.Total == 0 {
		return emptyStateStyle.Render("No recommendations. Policies look well tuned.")
	}

	var content strings.Builder
	n := 0
	for _, category := range model.RecommendationCategories() {
		entries := recs.Categories[category]
		if len(entries) == 0 {
			continue
		}

		content.WriteString(sectionStyle.Render(strings.ToUpper(category.String())))
		content.WriteString("\n")
		for _, rec := range entries {
			n++
			content.WriteString(fmt.Sprintf("%2d. %s: %s\n", n, lipgloss.NewStyle().Bold(true).Render(rec.Policy), rec.Message))
		}
	}

	return content.String()
}

// renderHelpView renders the help overlay
func (m Model) renderHelpView() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	title := helpTitleStyle.Render("ILM Doctor Help")

	helpContent := `
List view:
  ↑/↓, j/k      Navigate up/down
  1-9           Jump to policy by number
  Enter         View policy details
  e             View lifecycle errors
  r             View recommendations
  ?             Toggle this help
  q, Ctrl+C     Quit

Detail, errors and recommendations views:
  ↑/↓           Scroll
  Esc           Back to list
  ?             Toggle this help
  q, Ctrl+C     Quit

Status indicators:
  🟢 healthy    Indices progress through their policy
  🟡 warning    At least one index reported an issue
  ⚪ no_data    No live lifecycle state available

Policies with warnings sort to the top of the list.`

	helpText := helpBoxStyle.Render(helpContent)
	footer := footerStyle.Render("Press ? or Esc to close")

	return lipgloss.JoinVertical(lipgloss.Left, title, helpText, footer)
}

func (m Model) titleText() string {
	if m.useUnicode {
		return "🩺 ILM Doctor"
	}
	return "ILM Doctor"
}

// statusIcon renders the colored icon for a status, honoring the Unicode
// setting.
func (m Model) statusIcon(status model.HealthStatus) string {
	icon := status.Icon()
	if !m.useUnicode {
		icon = status.IconFallback()
	}
	return GetStatusStyle(status).Render(icon)
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

func valueOrDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
