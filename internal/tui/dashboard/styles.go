package dashboard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mikecalizo/ilm-parser-collections/internal/model"
)

var (
	// Colors
	primaryColor    = lipgloss.Color("99")  // Purple
	mutedColor      = lipgloss.Color("245") // Gray
	accentColor     = lipgloss.Color("212") // Pink
	backgroundColor = lipgloss.Color("235") // Dark gray

	// Title style
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(2).
			PaddingRight(2).
			MarginBottom(1)

	// Header style
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(mutedColor).
			PaddingBottom(1).
			MarginBottom(1)

	// Policy item styles
	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			PaddingRight(2).
			MarginBottom(0)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				PaddingRight(2).
				MarginBottom(0).
				Foreground(accentColor).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderLeft(true).
				BorderForeground(primaryColor)

	// Status indicator styles
	statusHealthyStyle = lipgloss.NewStyle().
				Foreground(model.StatusHealthy.Color()).
				Bold(true)

	statusWarningStyle = lipgloss.NewStyle().
				Foreground(model.StatusWarning.Color()).
				Bold(true)

	statusNoDataStyle = lipgloss.NewStyle().
				Foreground(model.StatusNoData.Color())

	// Footer style
	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(mutedColor).
			PaddingTop(1).
			MarginTop(1)

	// Section heading inside scroll views
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginTop(1)

	// Detail view styles
	detailLabelStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Bold(true).
				Width(16)

	detailValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	// Help overlay styles
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Align(lipgloss.Center).
			MarginBottom(1)

	helpBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(2, 4).
			Background(backgroundColor)

	// Empty state style
	emptyStateStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			Align(lipgloss.Center).
			PaddingTop(4).
			PaddingBottom(4)
)

// GetStatusStyle returns the appropriate style for a health status
func GetStatusStyle(status model.HealthStatus) lipgloss.Style {
	switch status {
	case model.StatusHealthy:
		return statusHealthyStyle
	case model.StatusWarning:
		return statusWarningStyle
	default:
		return statusNoDataStyle
	}
}

// GetRatingStyle returns the style for an overall health rating
func GetRatingStyle(rating model.Rating) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(rating.Color()).Bold(true)
}

// ApplyMaxWidth applies a maximum width to all relevant styles
func ApplyMaxWidth(width int) {
	itemStyle = itemStyle.MaxWidth(width - 4)
	selectedItemStyle = selectedItemStyle.MaxWidth(width - 4)
	headerStyle = headerStyle.Width(width - 2)
	footerStyle = footerStyle.Width(width - 2)
}
