package schema

import "strings"

// OrUnknown is the single default-resolution policy for optional categorical
// fields: surrounding whitespace is trimmed, and an empty value becomes the
// Unknown sentinel. Every metric function reads optional fields through this.
func OrUnknown(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unknown
	}
	return s
}

// BuildingOrUnknown resolves the partitioning key, defaulting missing school
// values to the Unknown Building sentinel.
func BuildingOrUnknown(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return UnknownBuilding
	}
	return s
}
