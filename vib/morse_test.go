package vib

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eldest/units"
)

func TestReducedMass(t *testing.T) {
	assert.InDelta(t, units.AmuToAu(0.5), ReducedMass(1, 1), 1e-9)
	assert.Zero(t, ReducedMass(0, 0))
}

func TestMorseLevels(t *testing.T) {
	// H2 近似参数
	m := NewMorse(4.75, 1.94, ReducedMass(1.008, 1.008))
	lambda := m.Lambda()
	assert.Equal(t, int(lambda-0.5), m.MaxLevel())
	require.Positive(t, m.MaxLevel())

	levels := m.Levels()
	require.Len(t, levels, m.MaxLevel())
	for n := 1; n < len(levels); n++ {
		// 能级递增且间距递减
		assert.Greater(t, levels[n], levels[n-1])
		if n > 1 {
			assert.Less(t, levels[n]-levels[n-1], levels[n-1]-levels[n-2])
		}
	}
	for _, e := range levels {
		assert.Less(t, e, m.De)
	}

	// 与 E_n = ω(n+1/2)(1 - (n+1/2)/(2λ)) 等价
	e0, err := m.Eigenvalue(0)
	require.NoError(t, err)
	assert.InDelta(t, m.Omega()*0.5*(1-0.5/(2*lambda)), e0, 1e-12)
	assert.InDelta(t, 0.02, units.HartreeToEV(e0)/10, 0.01)

	_, err = m.Eigenvalue(m.MaxLevel())
	assert.Error(t, err)
	_, err = m.Eigenvalue(-1)
	assert.Error(t, err)
	assert.False(t, math.IsNaN(e0))
}
