package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		ApplyMaxWidth(m.width)
		m.viewport.Width = m.width - 4
		m.viewport.Height = m.contentHeight()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

// handleKeyPress handles keyboard input based on current view mode
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.viewMode {
	case ViewList:
		return m.handleListKeys(msg)
	case ViewDetail, ViewErrors, ViewRecommendations:
		return m.handleScrollViewKeys(msg)
	case ViewHelp:
		return m.handleHelpKeys(msg)
	default:
		return m, nil
	}
}

// handleListKeys handles keys in list view
func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	// Quit
	case "q", "ctrl+c":
		return m, tea.Quit

	// Navigation
	case "up", "k":
		m.MoveCursorUp()
		return m, nil

	case "down", "j":
		m.MoveCursorDown()
		return m, nil

	// Direct selection with number keys
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		index := int(msg.String()[0] - '1')
		if index < len(m.policies) {
			m.SetCursor(index)
		}
		return m, nil

	// Open policy detail
	case "enter", " ":
		if selected, ok := m.GetSelectedPolicy(); ok {
			m.openScrollView(ViewDetail, selected.Policy, m.buildDetailContent(selected))
		}
		return m, nil

	// Open the categorized error view
	case "e":
		m.openScrollView(ViewErrors, "Lifecycle errors", m.buildErrorsContent())
		return m, nil

	// Open the recommendations view
	case "r":
		m.openScrollView(ViewRecommendations, "Recommendations", m.buildRecommendationsContent())
		return m, nil

	// Help
	case "?":
		m.previousView = m.viewMode
		m.viewMode = ViewHelp
		return m, nil
	}

	return m, nil
}

// handleScrollViewKeys handles keys in the scrollable content views. Unhandled
// keys fall through to the viewport for scrolling.
func (m Model) handleScrollViewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc", "backspace":
		m.viewMode = ViewList
		return m, nil

	case "?":
		m.previousView = m.viewMode
		m.viewMode = ViewHelp
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleHelpKeys handles keys in the help overlay
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "?", "esc", "enter":
		m.viewMode = m.previousView
		return m, nil
	}

	return m, nil
}
