package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCurrency(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{name: "brazilian thousands and decimal", raw: "1.234,56", want: 1234.56},
		{name: "currency symbol and spaces", raw: "R$ 1.234,56", want: 1234.56},
		{name: "us style separators", raw: "1,234.56", want: 1234.56},
		{name: "plain decimal comma", raw: "740,79", want: 740.79},
		{name: "zero", raw: "0,00", want: 0},
		{name: "integer without separators", raw: "1234", want: 1234},
		{name: "multiple thousands groups", raw: "1.234.567,89", want: 1234567.89},
		{name: "empty string", raw: "", want: 0},
		{name: "whitespace only", raw: "   ", want: 0},
		{name: "garbled text", raw: "n/a", want: 0},
		{name: "ocr noise around value", raw: "R$~1.352,75*", want: 1352.75},
		{name: "plain quantity", raw: "10", want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NormalizeCurrency(tt.raw), 1e-9)
		})
	}
}

func TestNormalizeCurrencyNeverPanics(t *testing.T) {
	for _, raw := range []string{",", ".", ",,..", "R$", "..,,", ".5", ",5"} {
		assert.NotPanics(t, func() { NormalizeCurrency(raw) }, "input %q", raw)
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 150.0, Round2(150.004))
	assert.Equal(t, 150.01, Round2(150.005))
	assert.Equal(t, 120.0, Round2(120.0))
	assert.Equal(t, 0.1, Round2(0.1))
}
