package nlp

import "strings"

// ParseList splits a comma-joined text field ("Go, SQL ,Docker") into its items.
// Items are trimmed, empty items are dropped and order is kept.
func ParseList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FormatList is the inverse of ParseList. Commas inside items cannot be represented
// and are replaced with spaces.
func FormatList(items []string) string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(strings.ReplaceAll(it, ",", " "))
		if it == "" {
			continue
		}
		out = append(out, it)
	}
	return strings.Join(out, ", ")
}

// CleanList runs items through FormatList and ParseList, so what the caller keeps is
// exactly what will be read back from storage.
func CleanList(items []string) []string {
	return ParseList(FormatList(items))
}
