package ilm

import "regexp"

// generationSuffix matches the date-plus-counter tail of a rolled-over
// backing index, e.g. "-2024.09.27-000001".
var generationSuffix = regexp.MustCompile(`-\d{4}\.\d{2}\.\d{2}-\d{6}$`)

// NormalizeName strips the generation suffix from an index name so every
// generation of one data stream groups under a single display key. Names
// without the suffix are returned unchanged.
func NormalizeName(name string) string {
	return generationSuffix.ReplaceAllString(name, "")
}
