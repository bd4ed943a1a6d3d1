package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Zero(t, Mean(nil))
	assert.Zero(t, Mean([]float64{}))
	assert.InDelta(t, 2.0, Mean([]float64{1, 2, 3}), 1e-9)
	assert.InDelta(t, -1.5, Mean([]float64{-1, -2}), 1e-9)
}

func TestRatio(t *testing.T) {
	assert.Zero(t, Ratio(3, 0))
	assert.InDelta(t, 0.25, Ratio(1, 4), 1e-9)
	assert.InDelta(t, 1.0, Ratio(5, 5), 1e-9)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(0.5, 1, 5))
	assert.Equal(t, 5.0, Clamp(9.2, 1, 5))
	assert.Equal(t, 3.3, Clamp(3.3, 1, 5))
}
