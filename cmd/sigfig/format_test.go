package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avdva/sigfig"
)

func TestFormatArgs(t *testing.T) {
	a := assert.New(t)
	var b bytes.Buffer
	err := formatArgs(&b, []string{"0.09999", "99.99", "-0.05678"}, 3, sigfig.StyleAuto)
	if a.NoError(err) {
		a.Equal("0.100\n1.00⨯10²\n-5.68⨯10⁻²\n", b.String())
	}

	b.Reset()
	err = formatArgs(&b, []string{"1.5", "abc", "2"}, 3, sigfig.StyleAuto)
	a.EqualError(err, `parse "abc": strconv.ParseFloat: parsing "abc": invalid syntax`)
	a.Equal("1.50\n", b.String())

	b.Reset()
	err = formatArgs(&b, []string{"NaN"}, 3, sigfig.StyleAuto)
	a.True(errors.Is(err, sigfig.ErrBadFloat))
}

func TestFormatStream(t *testing.T) {
	a := assert.New(t)
	var b bytes.Buffer
	in := strings.NewReader("0.05678\n 1234  \t0.002\n")
	err := formatStream(&b, in, 2, sigfig.StyleDecimal)
	if a.NoError(err) {
		a.Equal("0.057\n1200\n0.0020\n", b.String())
	}

	b.Reset()
	err = formatStream(&b, strings.NewReader("0.05678"), 3, sigfig.StyleScientific)
	if a.NoError(err) {
		a.Equal("5.68⨯10⁻²\n", b.String())
	}
}
