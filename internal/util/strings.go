package util

import "strings"

// NormalizeKey lowercases and trims a lookup key such as a config key or a
// transport name.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeFQDN returns a domain name in the form the API expects:
// lowercased, without surrounding spaces or a trailing root dot.
func NormalizeFQDN(s string) string {
	return strings.TrimSuffix(NormalizeKey(s), ".")
}
