package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManual(t *testing.T) {
	var c Manual
	assert.Equal(t, time.Duration(0), c.Elapsed())
	c.Advance(50 * time.Millisecond)
	c.Advance(50 * time.Millisecond)
	assert.Equal(t, 100*time.Millisecond, c.Elapsed())
}

func TestMonotonic_NeverGoesBack(t *testing.T) {
	c := NewMonotonic()
	a := c.Elapsed()
	b := c.Elapsed()
	assert.GreaterOrEqual(t, b, a)
	assert.GreaterOrEqual(t, a, time.Duration(0))
}
