package report

import (
	"time"

	"github.com/mikecalizo/ilm-parser-collections/internal/model"
)

// Report is the complete result of one analysis run: the policy summary
// table, the categorized error set, the grouped recommendations, and the
// overall health score.
type Report struct {
	GeneratedAt     time.Time            `json:"generated_at"`
	Policies        []PolicySummary      `json:"summary"`
	Errors          ErrorReport          `json:"errors"`
	Recommendations RecommendationReport `json:"recommendations"`
	Health          HealthScore          `json:"health"`
}

// PolicySummary is one analyzed policy plus the findings for each of its
// indices. RetentionDays of 0 means the policy never deletes.
type PolicySummary struct {
	Policy          string         `json:"policy"`
	RetentionDays   float64        `json:"retention_days"`
	IndexCount      int            `json:"index_count"`
	DataStreamCount int            `json:"data_stream_count,omitempty"`
	ModifiedDate    string         `json:"modified_date"`
	Lifecycle       string         `json:"lifecycle"`
	Healthy         int            `json:"healthy"`
	Warnings        int            `json:"warnings"`
	NoData          int            `json:"no_data"`
	Indices         []IndexFinding `json:"indices,omitempty"`
}

// Status reduces the per-index tallies to one display status for the policy.
func (s PolicySummary) Status() model.HealthStatus {
	switch {
	case s.Warnings > 0:
		return model.StatusWarning
	case s.NoData > 0:
		return model.StatusNoData
	default:
		return model.StatusHealthy
	}
}

// IndexFinding is the classified lifecycle state of one index.
type IndexFinding struct {
	Index     string             `json:"index"`
	ShortName string             `json:"short_name"`
	Phase     string             `json:"phase"`
	Step      string             `json:"step"`
	AgeDays   float64            `json:"age_days"`
	Status    model.HealthStatus `json:"status"`
	Issues    []string           `json:"issues,omitempty"`
}

// CategorizedError is one erroring index after rule categorization. Reason
// is already truncated to the configured display length.
type CategorizedError struct {
	Index      string              `json:"index"`
	ShortName  string              `json:"short_name"`
	Policy     string              `json:"policy"`
	Category   model.ErrorCategory `json:"category"`
	Phase      string              `json:"phase"`
	AgeDays    float64             `json:"age_days"`
	RetryCount int                 `json:"retry_count"`
	Reason     string              `json:"reason"`
}

// ErrorReport holds the full categorized error set. Entries within a
// category are ranked by retry count, highest first.
type ErrorReport struct {
	Categories    map[model.ErrorCategory][]CategorizedError `json:"categories"`
	TotalDistinct int                                        `json:"total_distinct"`
}

// Recommendation is one piece of policy tuning advice.
type Recommendation struct {
	Policy   string                       `json:"policy"`
	Category model.RecommendationCategory `json:"category"`
	Message  string                       `json:"message"`
}

// RecommendationReport groups recommendations by category. Entries within a
// category follow policy evaluation order.
type RecommendationReport struct {
	Categories map[model.RecommendationCategory][]Recommendation `json:"categories"`
	Total      int                                               `json:"total"`
}

// HealthScore is the overall run health on a 0-100 scale.
type HealthScore struct {
	Score        float64      `json:"score"`
	Rating       model.Rating `json:"rating"`
	TotalIndices int          `json:"total_indices"`
	ErrorIndices int          `json:"error_indices"`
}

// ExitCode returns the process exit code for the health gate: 0 for
// excellent or good ratings, 1 for fair or poor.
func (h HealthScore) ExitCode() int {
	if h.Rating.Degraded() {
		return 1
	}
	return 0
}
