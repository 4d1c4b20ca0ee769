package model

import (
	"github.com/charmbracelet/lipgloss"
)

// Rating buckets an overall health score into an operator-facing band.
type Rating string

const (
	RatingExcellent Rating = "excellent"
	RatingGood      Rating = "good"
	RatingFair      Rating = "fair"
	RatingPoor      Rating = "poor"
)

// RatingFor maps a 0-100 health score onto its rating band.
func RatingFor(score float64) Rating {
	switch {
	case score >= 95:
		return RatingExcellent
	case score >= 85:
		return RatingGood
	case score >= 70:
		return RatingFair
	default:
		return RatingPoor
	}
}

// Color returns the Lipgloss color for the rating
func (r Rating) Color() lipgloss.Color {
	switch r {
	case RatingExcellent:
		return lipgloss.Color("42") // green
	case RatingGood:
		return lipgloss.Color("77") // light green
	case RatingFair:
		return lipgloss.Color("226") // yellow
	default:
		return lipgloss.Color("196") // red
	}
}

// String returns the string representation of the rating
func (r Rating) String() string {
	return string(r)
}

// Degraded reports whether the rating calls for operator attention.
func (r Rating) Degraded() bool {
	return r == RatingFair || r == RatingPoor
}
