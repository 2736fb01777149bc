package utils

import (
	"strconv"
	"strings"
)

// HumanizeStatus converts an upstream status constant into display text.
// e.g. "RETURN_REQUESTED" -> "RETURN REQUESTED". Cosmetic only; status
// comparisons always use the raw value.
func HumanizeStatus(status string) string {
	return strings.ReplaceAll(status, "_", " ")
}

// ParsePositiveID parses a string as a positive int64 identifier.
// Returns 0, false for anything that is not a whole number >= 1.
func ParsePositiveID(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// FormatID renders an int64 identifier for keys and paths
func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// ParseInt parses a string to int with a fallback default value
func ParseInt(s string, defaultVal int) int {
	if s == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return val
}
