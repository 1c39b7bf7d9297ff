// Copyright 2020 Aleksandr Demakin. All rights reserved.

package sigfig

import "strings"

const (
	timesTen = "⨯10"

	superMinus = '⁻'
)

var superDigits = [...]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'}

// Superscript converts an exponent string like "+08" or "-12" into superscript glyphs.
// Digits and '-' are mapped, everything else is dropped:
//	"+08" --> "⁸", "-08" --> "⁻⁸", "+10" --> "¹⁰"
func Superscript(exp string) string {
	exp = trimExpZero(exp)
	var b strings.Builder
	b.Grow(len(exp) * 3)
	for _, r := range exp {
		switch {
		case '0' <= r && r <= '9':
			b.WriteRune(superDigits[r-'0'])
		case r == '-':
			b.WriteRune(superMinus)
		}
	}
	return b.String()
}

// ExponentSuffix returns "⨯10" followed by the superscript exponent.
func ExponentSuffix(exp string) string {
	return timesTen + Superscript(exp)
}

// trimExpZero removes the zero strconv pads single-digit exponents with.
func trimExpZero(exp string) string {
	digits := strings.TrimLeft(exp, "+-")
	if len(digits) == 2 && digits[0] == '0' {
		return exp[:len(exp)-len(digits)] + digits[1:]
	}
	return exp
}
