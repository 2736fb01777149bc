package utils

import (
	"math"
	"strconv"
	"time"
)

// FormatCurrency renders an amount the way the storefront does: INR with
// Indian digit grouping, e.g. 1234567.5 -> "₹12,34,567.50".
func FormatCurrency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}

	negative := amount < 0
	s := strconv.FormatFloat(math.Abs(amount), 'f', 2, 64)
	intPart := s[:len(s)-3]
	fracPart := s[len(s)-2:]

	grouped := groupIndian(intPart)
	out := "₹" + grouped + "." + fracPart
	if negative {
		out = "-" + out
	}
	return out
}

// groupIndian inserts commas in the Indian numbering pattern: the last three
// digits form one group, everything before that is grouped in pairs.
func groupIndian(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	head := digits[:n-3]
	tail := digits[n-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	groups = append(groups, tail)

	out := groups[0]
	for _, g := range groups[1:] {
		out += "," + g
	}
	return out
}

// FormatDateTime renders a timestamp for order cards. Zero times render as "-".
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02 Jan 2006, 15:04")
}
