// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var clpPrinter = message.NewPrinter(language.MustParse("es-CL"))

// FormatCLP formats an amount as Chilean pesos without decimals, e.g. "$18.000".
func FormatCLP(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	return clpPrinter.Sprintf("$%v", number.Decimal(math.Round(amount), number.MaxFractionDigits(0)))
}

// ParseCLP parses a lenient peso amount as typed by admins: any non-digit
// characters (currency symbol, thousands dots, spaces) are stripped.
// Returns 0 for input with no digits.
func ParseCLP(value string) float64 {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	n, err := strconv.ParseFloat(digits.String(), 64)
	if err != nil {
		return 0
	}
	return n
}
