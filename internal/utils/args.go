package utils

import "strings"

// CanonicalArgs trims each argument, splits it on commas and drops empty
// pieces, so "a, b" "c" and "a,b,c" mean the same thing
func CanonicalArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		for _, piece := range strings.Split(arg, ",") {
			if piece = strings.TrimSpace(piece); piece != "" {
				out = append(out, piece)
			}
		}
	}
	return out
}
