package dashboard

import (
	"sort"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mikecalizo/ilm-parser-collections/internal/model"
	"github.com/mikecalizo/ilm-parser-collections/internal/report"
)

// ViewMode determines which screen to render
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
	ViewErrors
	ViewRecommendations
	ViewHelp
)

// Model is the main dashboard model. The dashboard is a read-only browser
// over a finished analysis; it never mutates the report.
type Model struct {
	// Core data
	report   *report.Report
	policies []report.PolicySummary

	// UI state
	viewMode     ViewMode
	previousView ViewMode
	cursor       int
	scrollOffset int
	scrollTitle  string

	// Component state
	viewport viewport.Model

	// Dimensions
	width  int
	height int

	// Configuration
	useUnicode bool
}

// NewModel creates a new dashboard model over a finished report.
func NewModel(rep *report.Report, useUnicode bool) Model {
	policies := make([]report.PolicySummary, len(rep.Policies))
	copy(policies, rep.Policies)

	m := Model{
		report:     rep,
		policies:   policies,
		viewMode:   ViewList,
		cursor:     0,
		viewport:   viewport.New(80, 20),
		useUnicode: useUnicode,
		width:      80,
		height:     24,
	}

	m.sortPolicies()

	return m
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	return nil
}

// Helper Methods

// sortPolicies sorts policies by status priority: warning > no_data > healthy.
// Ties keep the analyzer's alphabetical order.
func (m *Model) sortPolicies() {
	sort.SliceStable(m.policies, func(i, j int) bool {
		return statusPriority(m.policies[i].Status()) < statusPriority(m.policies[j].Status())
	})
}

// statusPriority returns sort priority for a status (lower = higher priority)
func statusPriority(status model.HealthStatus) int {
	switch status {
	case model.StatusWarning:
		return 0
	case model.StatusNoData:
		return 1
	default:
		return 2
	}
}

// CountByStatus returns counts of policies in each aggregated status
func (m *Model) CountByStatus() map[model.HealthStatus]int {
	counts := make(map[model.HealthStatus]int)
	for _, p := range m.policies {
		counts[p.Status()]++
	}
	return counts
}

// GetSelectedPolicy returns the currently selected policy summary
func (m *Model) GetSelectedPolicy() (report.PolicySummary, bool) {
	if m.cursor < 0 || m.cursor >= len(m.policies) {
		return report.PolicySummary{}, false
	}
	return m.policies[m.cursor], true
}

// MoveCursorUp moves cursor up with wrapping
func (m *Model) MoveCursorUp() {
	if len(m.policies) == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = len(m.policies) - 1
	}
}

// MoveCursorDown moves cursor down with wrapping
func (m *Model) MoveCursorDown() {
	if len(m.policies) == 0 {
		return
	}
	m.cursor++
	if m.cursor >= len(m.policies) {
		m.cursor = 0
	}
}

// SetCursor sets cursor to specific index
func (m *Model) SetCursor(index int) {
	if index >= 0 && index < len(m.policies) {
		m.cursor = index
	}
}

// GetViewMode returns the current view mode
func (m *Model) GetViewMode() ViewMode {
	return m.viewMode
}

// openScrollView switches to a scrollable content view, filling the viewport.
func (m *Model) openScrollView(mode ViewMode, title, content string) {
	m.previousView = m.viewMode
	m.viewMode = mode
	m.scrollTitle = title
	m.viewport.Width = m.width - 4
	m.viewport.Height = m.contentHeight()
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
}

// contentHeight is the vertical space left for viewport content after the
// header and footer.
func (m *Model) contentHeight() int {
	h := m.height - 8
	if h < 4 {
		h = 4
	}
	return h
}
