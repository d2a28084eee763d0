package report

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoneyInKES(t *testing.T) {
	assert.Equal(t, 130000.0, USD(1000).InKES())
	assert.Equal(t, 130000.0, KES(130000).InKES())
	assert.Equal(t, 0.0, USD(0).InKES())
}

func TestSafeDiv(t *testing.T) {
	assert.Equal(t, 0.0, safeDiv(5, 0))
	assert.Equal(t, 0.0, safeDiv(0, 0))
	assert.Equal(t, 2.5, safeDiv(5, 2))
	assert.False(t, math.IsNaN(safeDiv(0, 0)))
	assert.False(t, math.IsInf(safeDiv(1, 0), 1))
}

func TestDeref(t *testing.T) {
	assert.Equal(t, 0.0, deref(nil))

	v := 42.5
	assert.Equal(t, 42.5, deref(&v))
}
