package autodiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTape_PostOrder tests that parents are recorded before their children.
func TestTape_PostOrder(t *testing.T) {
	a := Param(1)
	b := Param(2)
	c := Mul(a, b)
	d := Add(c, a)

	tp := newTape(d)

	require.Equal(t, []*Value{a, b, c, d}, tp.nodes)
	assert.Equal(t, []*Value{d, c, b, a}, tp.reversed())
}

func TestTape_BackwardSeedsOutput(t *testing.T) {
	a := Param(4)
	out := Pow(a, 2)

	newTape(out).backward()

	assert.True(t, out.hasGrad)
	assert.Equal(t, 1.0, out.grad)
	assert.Equal(t, 8.0, a.grad)
}

func TestTape_ClearResetsSlot(t *testing.T) {
	a := Param(4)
	a.accumulate(3)
	a.accumulate(2)
	assert.Equal(t, 5.0, a.grad)

	newTape(a).clear()
	assert.False(t, a.hasGrad)
	assert.Equal(t, 0.0, a.grad)
}

func TestAccumulate_IgnoresUntracked(t *testing.T) {
	c := Constant(1)
	c.accumulate(5)
	assert.False(t, c.hasGrad)
}
