package cnpj

import (
	"regexp"
	"sort"
)

var (
	maskedPattern = regexp.MustCompile(`\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}`)
	rawPattern    = regexp.MustCompile(`\b\d{14}\b`)
)

// Extract finds valid CNPJs in free text, masked or raw.
//
// Results are sanitized, de-duplicated and kept in the order they were first seen.
func Extract(text string) []string {
	type match struct {
		start int
		value string
	}

	var matches []match
	for _, loc := range maskedPattern.FindAllStringIndex(text, -1) {
		// a masked value glued to more digits is part of a longer token
		if (loc[0] > 0 && isDigit(text[loc[0]-1])) || (loc[1] < len(text) && isDigit(text[loc[1]])) {
			continue
		}
		matches = append(matches, match{start: loc[0], value: text[loc[0]:loc[1]]})
	}
	for _, loc := range rawPattern.FindAllStringIndex(text, -1) {
		matches = append(matches, match{start: loc[0], value: text[loc[0]:loc[1]]})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].start < matches[j].start
	})

	seen := make(map[string]struct{}, len(matches))
	found := []string{}
	for _, m := range matches {
		if !IsValid(m.value) {
			continue
		}
		cleaned := Sanitize(m.value)
		if _, ok := seen[cleaned]; ok {
			continue
		}
		seen[cleaned] = struct{}{}
		found = append(found, cleaned)
	}
	return found
}
