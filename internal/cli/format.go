// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatAmount formats a ₹ Crore amount with Indian digit grouping.
// e.g., 1234567.8 -> "₹1,23,45,568 Cr"
func FormatAmount(v float64) string {
	return "₹" + FormatIndian(int64(math.Round(v))) + " Cr"
}

// FormatIndian adds Indian-style separators to an integer: the last
// three digits group together, every two digits after that.
// e.g., 1234567 -> "12,34,567"
func FormatIndian(n int64) string {
	if n < 0 {
		return "-" + FormatIndian(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	head := s[:len(s)-3]
	tail := s[len(s)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	groups = append(groups, tail)

	return strings.Join(groups, ",")
}

// FormatPercent formats a percentage value with one decimal.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatGrowthPercent formats an optional percentage; nil reads "N/A"
// (growth over a zero start is undefined, not infinite).
func FormatGrowthPercent(pct *float64) string {
	if pct == nil {
		return "N/A"
	}
	return fmt.Sprintf("%+.1f%%", *pct)
}

// FormatDelta formats an amount delta with an explicit sign.
func FormatDelta(delta float64) string {
	if delta >= 0 {
		return "+" + FormatAmount(delta)
	}
	return "-" + FormatAmount(-delta)
}

// FormatYearRange renders an inclusive year window.
func FormatYearRange(from, to int) string {
	if from == to {
		return strconv.Itoa(from)
	}
	return fmt.Sprintf("%d–%d", from, to)
}
