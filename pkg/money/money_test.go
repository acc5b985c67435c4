package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemSubtotal(t *testing.T) {
	assert.Equal(t, 15.00, ItemSubtotal(5.00, 3))
	assert.Equal(t, 5.00, ItemSubtotal(2.50, 2))
	// Rounding happens per item, half away from zero.
	assert.Equal(t, 0.30, ItemSubtotal(0.099, 3))
	assert.Equal(t, 3.33, ItemSubtotal(1.111, 3))
}

func TestSum(t *testing.T) {
	assert.Equal(t, 20.00, Sum([]float64{15.00, 5.00}))
	assert.Equal(t, 0.00, Sum(nil))
	// Classic float trap: 0.1+0.2 must come out as exactly 0.3.
	assert.Equal(t, 0.3, Sum([]float64{0.1, 0.2}))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.2349))
	assert.Equal(t, 1.24, Round2(1.235))
	assert.Equal(t, -1.24, Round2(-1.235))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 50.0, Percent(1, 2))
	assert.Equal(t, 0.0, Percent(5, 0))
	assert.Equal(t, 0.0, Percent(5, -1))
	assert.Equal(t, 100.0, Percent(7, 7))
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 0,00", FormatBRL(0))
	assert.Equal(t, "R$ 5,00", FormatBRL(5))
	assert.Equal(t, "R$ 20,00", FormatBRL(20))
	assert.Equal(t, "R$ 1.234,56", FormatBRL(1234.56))
	assert.Equal(t, "R$ 1.234.567,89", FormatBRL(1234567.89))
	assert.Equal(t, "-R$ 12,50", FormatBRL(-12.5))
}
