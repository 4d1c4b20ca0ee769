package ilm

import (
	"strconv"
	"strings"
)

// durationSentinels are the literal values the lifecycle APIs emit when no
// real duration exists.
var durationSentinels = map[string]struct{}{
	"":     {},
	"N/A":  {},
	"0ms":  {},
	"null": {},
}

// durationSuffixes maps an age suffix to its day multiplier, checked in order.
var durationSuffixes = []struct {
	suffix     string
	multiplier float64
}{
	{"d", 1},
	{"h", 1.0 / 24},
	{"m", 1.0 / (24 * 60)},
	{"s", 1.0 / (24 * 3600)},
}

// ParseDurationDays converts an age string such as "18.67d" or "2h" into
// fractional days. Sentinel values, unrecognized suffixes, and unparseable
// bodies all yield 0; the function never fails.
func ParseDurationDays(raw string) float64 {
	if _, sentinel := durationSentinels[raw]; sentinel {
		return 0
	}

	for _, entry := range durationSuffixes {
		if !strings.HasSuffix(raw, entry.suffix) {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSuffix(raw, entry.suffix), 64)
		if err != nil || value < 0 {
			return 0
		}
		return value * entry.multiplier
	}

	return 0
}
