// Copyright 2026 The TicketHub Authors
// SPDX-License-Identifier: Apache-2.0

// Package money provides decimal price arithmetic and display
// formatting for the booking UI.
//
// All prices flow through [decimal.Decimal]. The backend serves
// prices as JSON numbers; float arithmetic on money invites rounding
// drift the moment a quantity multiplies in, so totals are computed
// with decimal multiplication and only formatted at the display
// boundary.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Total returns unitPrice multiplied by quantity. Quantities below
// zero are treated as zero — the forms clamp before calling, but the
// arithmetic must never produce a negative total from bad input.
func Total(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	if quantity < 0 {
		quantity = 0
	}
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// FormatUSD renders a decimal amount as a US-dollar string with two
// fractional digits and comma thousands grouping: 1234.5 → "$1,234.50".
// Negative amounts carry a leading minus: "-$10.00".
func FormatUSD(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	fixed := amount.StringFixed(2)
	whole, fraction, _ := strings.Cut(fixed, ".")

	return sign + "$" + groupThousands(whole) + "." + fraction
}

// groupThousands inserts comma separators into a non-negative integer
// string: "1234567" → "1,234,567".
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var builder strings.Builder
	leading := len(digits) % 3
	if leading > 0 {
		builder.WriteString(digits[:leading])
	}
	for start := leading; start < len(digits); start += 3 {
		if builder.Len() > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(digits[start : start+3])
	}
	return builder.String()
}
