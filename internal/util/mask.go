// Package util has small helpers shared by the service layers.
package util

import "strings"

// MaskEmail keeps the first rune of the local part and of the first domain
// label: "ann@example.com" becomes "a…@e….com". Input without an '@' is
// masked as a whole.
func MaskEmail(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" {
		switch {
		case s == "":
			return ""
		case len([]rune(s)) <= 3:
			return "***"
		}
		r := []rune(s)
		return string(r[0]) + "…" + string(r[len(r)-1])
	}

	labels := strings.Split(domain, ".")
	labels[0] = keepFirst(labels[0])
	return keepFirst(local) + "@" + strings.Join(labels, ".")
}

func keepFirst(s string) string {
	r := []rune(s)
	if len(r) <= 1 {
		return s
	}
	return string(r[0]) + "…"
}
