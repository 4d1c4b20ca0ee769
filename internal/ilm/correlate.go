package ilm

import "github.com/mikecalizo/ilm-parser-collections/internal/catalog"

// Record correlates one index with its owning policy and live lifecycle
// state. Status is nil when the explain catalog has no entry for the index;
// downstream classification treats that as missing data, not as an error.
type Record struct {
	PolicyName string
	Index      string
	ShortName  string
	Status     *catalog.ExplainEntry
}

// Correlate joins a policy's indices with the explain catalog, dropping
// indices the skip filter excludes. Record order follows the policy's index
// list.
func Correlate(policy Policy, explain catalog.ExplainCatalog, skip *SkipFilter) []Record {
	records := make([]Record, 0, len(policy.Indices))
	for _, index := range policy.Indices {
		if skip.SkipIndex(index) {
			continue
		}

		rec := Record{
			PolicyName: policy.Name,
			Index:      index,
			ShortName:  NormalizeName(index),
		}
		if entry, ok := explain[index]; ok {
			rec.Status = &entry
		}
		records = append(records, rec)
	}
	return records
}
