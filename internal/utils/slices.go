package utils

import "slices"

// UniqueStrings drops repeated items, keeping the first occurrence of each
func UniqueStrings(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if !slices.Contains(out, item) {
			out = append(out, item)
		}
	}
	return out
}

// MissingStrings returns the items of want that do not appear in have
func MissingStrings(have, want []string) []string {
	var missing []string
	for _, item := range want {
		if !slices.Contains(have, item) {
			missing = append(missing, item)
		}
	}
	return missing
}
