package models

import "strings"

// SplitComma splits comma-delimited text into trimmed entries, dropping
// empties.
func SplitComma(s string) []string {
	return splitClean(s, ",")
}

// SplitLines splits newline-delimited text into trimmed entries, dropping
// empties. Windows line endings are tolerated.
func SplitLines(s string) []string {
	return splitClean(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

// JoinComma is the serialization inverse of SplitComma.
func JoinComma(items []string) string {
	return joinClean(items, ", ")
}

// JoinLines is the serialization inverse of SplitLines.
func JoinLines(items []string) string {
	return joinClean(items, "\n")
}

func splitClean(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func joinClean(items []string, sep string) string {
	clean := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			clean = append(clean, it)
		}
	}
	return strings.Join(clean, sep)
}
