package validate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAmount(t *testing.T) {
	assert.True(t, IsAmount(100))
	assert.True(t, IsAmount(0.01))
	assert.True(t, IsAmount(1800.50))
	assert.False(t, IsAmount(0))
	assert.False(t, IsAmount(-5))
	assert.False(t, IsAmount(10.001))
	assert.False(t, IsAmount(math.NaN()))
	assert.False(t, IsAmount(math.Inf(1)))
}
