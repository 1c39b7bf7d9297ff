// Copyright 2020 Aleksandr Demakin. All rights reserved.

package sigfig

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Value is a float64 that prints itself with a fixed count of significant digits.
// It supports the following fmt verbs:
//	%v, %s - StyleAuto
//	%e, %E - StyleScientific
//	%f, %F - StyleDecimal
// Precision of the verb sets the number of significant digits, DefaultPrecision is used if omitted.
// Width and the '-' flag are supported, the width is counted in runes.
type Value float64

// String returns v formatted with StyleAuto and DefaultPrecision.
// Infinities and not-a-numbers are printed as "+Inf", "-Inf" and "NaN".
func (v Value) String() string {
	s, err := Format(float64(v), DefaultPrecision, StyleAuto)
	if err != nil {
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	}
	return s
}

// Format implements fmt.Formatter.
func (v Value) Format(f fmt.State, verb rune) {
	var style Style
	switch verb {
	case 'v', 's':
		style = StyleAuto
	case 'e', 'E':
		style = StyleScientific
	case 'f', 'F':
		style = StyleDecimal
	default:
		fmt.Fprintf(f, "%%!%c(sigfig.Value=%s)", verb, v.String())
		return
	}
	precision, ok := f.Precision()
	if !ok {
		precision = DefaultPrecision
	}
	if precision < 1 || precision > MaxPrecision {
		fmt.Fprintf(f, "%%!%c(BADPREC)", verb)
		return
	}
	s, err := Format(float64(v), precision, style)
	if err != nil {
		s = strconv.FormatFloat(float64(v), 'g', -1, 64)
	}
	if width, ok := f.Width(); ok {
		if pad := width - utf8.RuneCountInString(s); pad > 0 {
			if f.Flag('-') {
				s += strings.Repeat(" ", pad)
			} else {
				s = strings.Repeat(" ", pad) + s
			}
		}
	}
	io.WriteString(f, s)
}

// MarshalText implements encoding.TextMarshaler.
func (v Value) MarshalText() ([]byte, error) {
	s, err := Format(float64(v), DefaultPrecision, StyleAuto)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// MarshalJSON marshals a value as a json string, like `"1.00⨯10²"`.
func (v Value) MarshalJSON() ([]byte, error) {
	text, err := v.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}
