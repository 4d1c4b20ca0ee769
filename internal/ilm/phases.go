package ilm

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/mikecalizo/ilm-parser-collections/internal/catalog"
)

// PhaseOrder is the fixed progression an index moves through under a policy.
var PhaseOrder = []string{"hot", "warm", "cold", "frozen", "delete"}

// Phase is one configured phase of a policy.
type Phase struct {
	Name           string
	TriggerAge     string
	TriggerAgeDays float64
	Actions        []string
	Raw            catalog.PhaseBody
}

// Policy is one lifecycle policy prepared for analysis. RetentionDays is 0
// when no delete phase with a parseable trigger age exists, meaning the
// policy retains data indefinitely.
type Policy struct {
	Name          string
	Phases        map[string]Phase
	RetentionDays float64
	Signature     string
	ModifiedDate  string
	Indices       []string
	DataStreams   []string
}

// ExtractPolicy derives the analyzable view of one raw policy entry. Phase
// names outside the fixed progression are ignored.
func ExtractPolicy(name string, entry catalog.PolicyEntry) Policy {
	phases := make(map[string]Phase, len(entry.Policy.Phases))
	for _, phaseName := range PhaseOrder {
		body, ok := entry.Policy.Phases[phaseName]
		if !ok {
			continue
		}
		phases[phaseName] = Phase{
			Name:           phaseName,
			TriggerAge:     body.MinAge,
			TriggerAgeDays: ParseDurationDays(body.MinAge),
			Actions:        actionNames(body.Actions),
			Raw:            body,
		}
	}

	policy := Policy{
		Name:         name,
		Phases:       phases,
		Signature:    lifecycleSignature(phases),
		ModifiedDate: modifiedDate(entry.ModifiedDate),
		Indices:      entry.InUseBy.Indices,
		DataStreams:  entry.InUseBy.DataStreams,
	}
	if deletePhase, ok := phases["delete"]; ok {
		policy.RetentionDays = deletePhase.TriggerAgeDays
	}
	return policy
}

func actionNames(actions map[string]map[string]any) []string {
	names := make([]string, 0, len(actions))
	for name := range actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// phaseSignature is the canonical encoding of one configured phase inside a
// lifecycle signature.
type phaseSignature struct {
	MinAge  string   `json:"min_age"`
	Actions []string `json:"actions"`
}

// lifecycleSignature renders a phase map as a stable fingerprint: one
// `phase={...}` or `phase=null` part per phase, joined by single spaces in
// progression order. Action names are sorted so the signature does not
// depend on map iteration order.
func lifecycleSignature(phases map[string]Phase) string {
	parts := make([]string, 0, len(PhaseOrder))
	for _, phaseName := range PhaseOrder {
		phase, ok := phases[phaseName]
		if !ok {
			parts = append(parts, phaseName+"=null")
			continue
		}

		minAge := phase.TriggerAge
		if minAge == "" {
			minAge = "0ms"
		}
		encoded, _ := json.Marshal(phaseSignature{MinAge: minAge, Actions: phase.Actions})
		parts = append(parts, phaseName+"="+string(encoded))
	}
	return strings.Join(parts, " ")
}

// modifiedDate trims a policy's full modification timestamp to its date part.
func modifiedDate(raw string) string {
	if raw == "" {
		return "N/A"
	}
	if len(raw) > 10 {
		return raw[:10]
	}
	return raw
}
