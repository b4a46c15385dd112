package util

import (
	"fmt"
	"regexp"
	"strings"
)

// validLabel matches a single DNS label: alphanumerics and inner hyphens.
var validLabel = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// ValidateFQDN checks that a domain name is usable as a registration target:
//   - At least two labels (e.g. "example.com")
//   - Each label 1-63 characters of a-z, 0-9 and inner hyphens
//   - At most 253 characters overall
//
// The name is expected to be lowercased already; a trailing dot is accepted.
func ValidateFQDN(name string) error {
	name = strings.TrimSuffix(name, ".")
	if name == "" {
		return fmt.Errorf("domain name cannot be empty")
	}
	if len(name) > 253 {
		return fmt.Errorf("domain name must be at most 253 characters, got %d", len(name))
	}

	labels := strings.Split(name, ".")
	if len(labels) < 2 {
		return fmt.Errorf("domain name %q must contain at least two labels", name)
	}

	for _, label := range labels {
		if len(label) > 63 {
			return fmt.Errorf("domain label %q is longer than 63 characters", label)
		}
		if !validLabel.MatchString(label) {
			return fmt.Errorf("domain label %q contains invalid characters (only a-z, 0-9 and inner hyphens are allowed)", label)
		}
	}

	return nil
}

// IsNumeric reports whether s is a non-empty run of ASCII digits.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
