package options

import "strings"

// ParseStrategies splits a comma-separated list into an ordered set of
// trimmed, lower-cased identifiers. The first occurrence of a duplicate wins.
func ParseStrategies(s string) []string {
	return NormalizeStrategies(strings.Split(s, ","))
}

// NormalizeStrategies trims, lower-cases and de-duplicates ids, keeping the
// first occurrence. Empty entries are dropped. The result is never nil.
func NormalizeStrategies(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.ToLower(strings.TrimSpace(id))
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// SelectStrategies resolves one source's strategy selection when it offers
// both a comma-separated flag and a checkbox-style list. The flag wins when
// it is non-empty after trimming; otherwise the list is used. A nil result
// means the source made no selection at all.
func SelectStrategies(flag string, list []string) []string {
	if strings.TrimSpace(flag) != "" {
		return ParseStrategies(flag)
	}
	if list != nil {
		return NormalizeStrategies(list)
	}
	return nil
}
