package services

import (
	"fmt"
	"math"
	"strings"
)

// FormatDKK formats an amount in Danish notation with thousands separated by
// periods and a comma decimal separator, e.g. 7762.5 → "7.762,50 kr".
// The result always includes exactly 2 decimal places.
func FormatDKK(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)

	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	result := groupThousands(intPart) + "," + decPart + " kr"
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts a "." between every group of 3 digits from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "." + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "." + result
}

// formatHours renders the Timer column: one decimal for clean values,
// two when the export carried finer precision.
func formatHours(hours float64) string {
	if hours*10 == math.Trunc(hours*10) {
		return fmt.Sprintf("%.1f", hours)
	}
	return fmt.Sprintf("%.2f", hours)
}

// formatAmountCell renders rate and line-total table cells with plain two
// decimal places; the grouped DKK form is reserved for the totals block.
func formatAmountCell(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
