package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ResolveOption maps free text onto one of the known options so that the
// catalog's exact-match filters receive a canonical value ("groc" -> "Grocery").
// Text that matches nothing is returned trimmed but otherwise unchanged.
func ResolveOption(input string, options []string) string {
	input = strings.TrimSpace(input)
	if input == "" || len(options) == 0 {
		return input
	}

	for _, opt := range options {
		if strings.EqualFold(opt, input) {
			return opt
		}
	}

	matches := fuzzy.RankFindFold(input, options)
	if len(matches) == 0 {
		return input
	}

	// Lower distance is better; ties keep option order
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].OriginalIndex < matches[j].OriginalIndex
	})

	return matches[0].Target
}

// Suggest returns the options that fuzzily match the input, best first.
// Empty input suggests every option.
func Suggest(input string, options []string) []string {
	input = strings.TrimSpace(input)
	if input == "" {
		return options
	}

	matches := fuzzy.RankFindFold(input, options)
	sort.Sort(matches)

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Target
	}
	return out
}
