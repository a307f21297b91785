package gamma

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrectEndpoints(t *testing.T) {
	assert.Equal(t, uint8(0), Correct(0))
	assert.Equal(t, uint8(255), Correct(255))
}

func TestCorrectMonotonic(t *testing.T) {
	for i := 1; i < 256; i++ {
		assert.GreaterOrEqual(t, Table[i], Table[i-1], "entry %d", i)
	}
}

func TestCorrectKnownValues(t *testing.T) {
	// spot checks against the widely published 2.8 table
	assert.Equal(t, uint8(0), Correct(27))
	assert.Equal(t, uint8(1), Correct(28))
	assert.Equal(t, uint8(37), Correct(128))
	assert.Equal(t, uint8(252), Correct(254))
}

func TestScale(t *testing.T) {
	assert.Equal(t, Correct(127), Scale(255, 0.5))
	assert.Equal(t, uint8(0), Scale(255, 0))
	assert.Equal(t, uint8(255), Scale(255, 1))
	assert.Equal(t, uint8(255), Scale(300, 1))
	assert.Equal(t, uint8(0), Scale(-5, 1))
}
