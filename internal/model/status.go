package model

import (
	"github.com/charmbracelet/lipgloss"
)

// HealthStatus represents the lifecycle health of a managed index.
type HealthStatus string

const (
	// StatusHealthy indicates the index progresses through its policy without findings.
	StatusHealthy HealthStatus = "healthy"
	// StatusWarning indicates at least one lifecycle issue was detected.
	StatusWarning HealthStatus = "warning"
	// StatusNoData indicates the index has no live lifecycle state to evaluate.
	StatusNoData HealthStatus = "no_data"
)

// Icon returns the Unicode icon for the status
func (s HealthStatus) Icon() string {
	switch s {
	case StatusHealthy:
		return "🟢"
	case StatusWarning:
		return "🟡"
	default:
		return "⚪"
	}
}

// IconFallback returns ASCII fallback when Unicode is not supported
func (s HealthStatus) IconFallback() string {
	switch s {
	case StatusHealthy:
		return "[OK]"
	case StatusWarning:
		return "[!!]"
	default:
		return "[??]"
	}
}

// Color returns the Lipgloss color for the status
func (s HealthStatus) Color() lipgloss.Color {
	switch s {
	case StatusHealthy:
		return lipgloss.Color("42") // green
	case StatusWarning:
		return lipgloss.Color("226") // yellow
	default:
		return lipgloss.Color("250") // light gray
	}
}

// String returns the string representation of the status
func (s HealthStatus) String() string {
	return string(s)
}

// IsValid reports whether the status is one of the defined values.
func (s HealthStatus) IsValid() bool {
	switch s {
	case StatusHealthy, StatusWarning, StatusNoData:
		return true
	default:
		return false
	}
}
