// Copyright 2020 Aleksandr Demakin. All rights reserved.

package sigfig

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"testing"

	of "github.com/robaho/fixed"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValue_Format(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		format string
		v      Value
		result string
	}{
		{"%v", 99.99, "1.00⨯10²"},
		{"%s", 0.09999, "0.100"},
		{"%e", 0.05678, "5.68⨯10⁻²"},
		{"%E", 0.05678, "5.68⨯10⁻²"},
		{"%f", 0.05678, "0.0568"},
		{"%.2v", 1.234, "1.2"},
		{"%.5e", 1.234, "1.2340⨯10⁰"},
		{"%.1f", 0.05678, "0.06"},
		{"%8v", 1.234, "    1.23"},
		{"%-8v|", 1.234, "1.23    |"},
		{"%10v", 99.99, "  1.00⨯10²"},
		{"%v", Value(math.NaN()), "NaN"},
		{"%v", Value(math.Inf(-1)), "-Inf"},
		{"%.0v", 1, "%!v(BADPREC)"},
		{"%.1001e", 1, "%!e(BADPREC)"},
		{"%.2f", 1.15, "1.1"},
		{"%d", 1.234, "%!d(sigfig.Value=1.23)"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.result, fmt.Sprintf(test.format, test.v))
		})
	}
}

func TestValue_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("1.23", Value(1.234).String())
	a.Equal("-1.23⨯10⁸", Value(-123456789).String())
	a.Equal("+Inf", Value(math.Inf(1)).String())
	a.Equal(strconv.FormatFloat(math.MaxFloat64, 'g', -1, 64), Value(math.MaxFloat64).String())
}

func TestValue_MarshalJSON(t *testing.T) {
	a := assert.New(t)
	data, err := json.Marshal([]Value{0.123, 99.99, -0.05678})
	if a.NoError(err) {
		a.Equal(`["0.123","1.00⨯10²","-5.68⨯10⁻²"]`, string(data))
	}
	data, err = json.Marshal(struct {
		V Value `json:"v"`
	}{V: 12.345})
	if a.NoError(err) {
		a.Equal(`{"v":"12.3"}`, string(data))
	}
	_, err = json.Marshal(Value(math.NaN()))
	a.Error(err)
	text, err := Value(1e-9).MarshalText()
	if a.NoError(err) {
		a.Equal("1.00⨯10⁻⁹", string(text))
	}
}

func BenchmarkValueString(b *testing.B) {
	v := Value(123456789.9)
	for i := 0; i < b.N; i++ {
		_ = v.String()
	}
}

func BenchmarkOtherFixedString(b *testing.B) {
	f := of.NewF(123456789.9)
	for i := 0; i < b.N; i++ {
		_ = f.String()
	}
}

func BenchmarkDecimalStringFixed(b *testing.B) {
	d := decimal.NewFromFloat(123456789.9)
	for i := 0; i < b.N; i++ {
		_ = d.StringFixed(2)
	}
}
