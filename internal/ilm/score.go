package ilm

import (
	"github.com/mikecalizo/ilm-parser-collections/internal/model"
	"github.com/mikecalizo/ilm-parser-collections/internal/report"
)

// Score reduces the analyzed index population into one 0-100 health value.
// With no indices at all there is nothing to attest to, so the score is 0.
func Score(totalIndices, errorIndices int) float64 {
	if totalIndices == 0 {
		return 0
	}
	score := 100 - float64(errorIndices)/float64(totalIndices)*100
	if score < 0 {
		return 0
	}
	return score
}

// ScoreHealth bundles the score with its rating band and the counts that
// produced it.
func ScoreHealth(totalIndices, errorIndices int) report.HealthScore {
	score := Score(totalIndices, errorIndices)
	return report.HealthScore{
		Score:        score,
		Rating:       model.RatingFor(score),
		TotalIndices: totalIndices,
		ErrorIndices: errorIndices,
	}
}
