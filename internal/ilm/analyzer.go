package ilm

import (
	"context"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/mikecalizo/ilm-parser-collections/internal/catalog"
	"github.com/mikecalizo/ilm-parser-collections/internal/config"
	"github.com/mikecalizo/ilm-parser-collections/internal/logger"
	"github.com/mikecalizo/ilm-parser-collections/internal/model"
	"github.com/mikecalizo/ilm-parser-collections/internal/report"
)

// maxConcurrentPolicies bounds the per-policy fan-out during analysis.
const maxConcurrentPolicies = 8

// Analyzer runs the full correlation and classification pass over one
// snapshot of policy and explain data.
type Analyzer struct {
	cfg  *config.Config
	log  *logger.Logger
	skip *SkipFilter
}

// New builds an analyzer. A nil cfg falls back to the built-in defaults.
func New(cfg *config.Config, log *logger.Logger) *Analyzer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Analyzer{
		cfg:  cfg,
		log:  log,
		skip: NewSkipFilter(cfg.Skip.Policies, cfg.Skip.Indices),
	}
}

// Analyze produces the full report for one snapshot. Policies are evaluated
// concurrently; each one writes into its own slot of the result slices, so
// output order matches sorted policy-name order regardless of scheduling.
func (a *Analyzer) Analyze(ctx context.Context, snap catalog.Snapshot) *report.Report {
	names := make([]string, 0, len(snap.Policies))
	for name := range snap.Policies {
		if a.skip.SkipPolicy(name) {
			a.log.WithFields(map[string]any{"policy": name}).Debug("policy skipped")
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	summaries := make([]report.PolicySummary, len(names))
	perPolicyRecs := make([][]report.Recommendation, len(names))

	sem := semaphore.NewWeighted(maxConcurrentPolicies)
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()

			if err := sem.Acquire(ctx, 1); err != nil {
				return
			}
			defer sem.Release(1)

			policy := ExtractPolicy(name, snap.Policies[name])
			records := Correlate(policy, snap.Explain, a.skip)
			summaries[i] = summarize(policy, records)
			perPolicyRecs[i] = Recommend(policy, records)
		}(i, name)
	}
	wg.Wait()

	// Slots a cancelled context left unfilled are dropped.
	policies := make([]report.PolicySummary, 0, len(summaries))
	var recs []report.Recommendation
	for i := range summaries {
		if summaries[i].Policy == "" {
			continue
		}
		policies = append(policies, summaries[i])
		recs = append(recs, perPolicyRecs[i]...)
	}

	errs := CollectErrors(snap, a.skip, a.cfg.Display.MaxReasonLength)

	totalIndices := 0
	for i := range policies {
		totalIndices += policies[i].IndexCount
	}

	a.log.WithFields(map[string]any{
		"policies": len(policies),
		"indices":  totalIndices,
		"errors":   errs.TotalDistinct,
	}).Debug("analysis complete")

	return &report.Report{
		GeneratedAt:     time.Now(),
		Policies:        policies,
		Errors:          errs,
		Recommendations: groupRecommendations(recs),
		Health:          ScoreHealth(totalIndices, errs.TotalDistinct),
	}
}

// summarize classifies every record under one policy and rolls the findings
// up into the policy's summary row.
func summarize(policy Policy, records []Record) report.PolicySummary {
	summary := report.PolicySummary{
		Policy:          policy.Name,
		RetentionDays:   policy.RetentionDays,
		IndexCount:      len(records),
		DataStreamCount: len(policy.DataStreams),
		ModifiedDate:    policy.ModifiedDate,
		Lifecycle:       policy.Signature,
		Indices:         make([]report.IndexFinding, 0, len(records)),
	}

	for _, rec := range records {
		finding := ClassifyHealth(rec, policy)
		switch finding.Status {
		case model.StatusWarning:
			summary.Warnings++
		case model.StatusNoData:
			summary.NoData++
		default:
			summary.Healthy++
		}

		indexFinding := report.IndexFinding{
			Index:     rec.Index,
			ShortName: rec.ShortName,
			Phase:     "unknown",
			Step:      "unknown",
			Status:    finding.Status,
			Issues:    finding.Issues,
		}
		if rec.Status != nil {
			indexFinding.Phase = orUnknown(rec.Status.Phase)
			indexFinding.Step = orUnknown(rec.Status.Step)
			indexFinding.AgeDays = ParseDurationDays(rec.Status.Age)
		}
		summary.Indices = append(summary.Indices, indexFinding)
	}

	return summary
}

func groupRecommendations(recs []report.Recommendation) report.RecommendationReport {
	categories := make(map[model.RecommendationCategory][]report.Recommendation)
	for _, rec := range recs {
		categories[rec.Category] = append(categories[rec.Category], rec)
	}
	return report.RecommendationReport{Categories: categories, Total: len(recs)}
}
