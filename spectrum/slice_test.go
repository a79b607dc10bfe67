package spectrum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grid(n int) []float64 {
	e := make([]float64, n)
	for i := range e {
		e[i] = float64(i) * 0.5
	}
	return e
}

func TestGaussianSinglePeak(t *testing.T) {
	energies := grid(41)
	s := NewSlice(0, "test", energies)
	for _, e := range energies {
		require.NoError(t, s.Append(math.Exp(-(e-7)*(e-7)/4)))
	}
	require.True(t, s.Complete())
	peaks := s.Peaks()
	require.Len(t, peaks, 1)
	assert.Equal(t, 14, peaks[0].Index)
	assert.Equal(t, 7.0, peaks[0].Energy)
	assert.Equal(t, 1.0, peaks[0].Value)
}

func TestMaxima(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   []int
	}{
		{"empty", nil, nil},
		{"short", []float64{1, 2}, nil},
		{"boundary maximum", []float64{5, 1, 0}, nil},
		{"right boundary", []float64{0, 1, 5}, nil},
		{"plateau", []float64{0, 2, 2, 0}, nil},
		{"two peaks", []float64{0, 3, 1, 4, 2}, []int{1, 3}},
		{"nan neighbour", []float64{0, math.NaN(), 1, 0}, nil},
		{"nan apart", []float64{math.NaN(), 0, 2, 1}, []int{2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Maxima(tc.values)
			assert.Equal(t, tc.want, got)
			for _, i := range got {
				assert.Greater(t, i, 0)
				assert.Less(t, i, len(tc.values)-1)
			}
		})
	}
}

func TestAppendAndFailed(t *testing.T) {
	s := NewSlice(1, "test", grid(3))
	require.NoError(t, s.Append(1))
	require.NoError(t, s.Append(math.NaN()))
	assert.False(t, s.Complete())
	require.NoError(t, s.Append(3))
	assert.Error(t, s.Append(4))
	assert.Equal(t, []int{1}, s.Failed)
	assert.Equal(t, 3, s.Len())

	peak, ok := s.Max()
	require.True(t, ok)
	assert.Equal(t, 2, peak.Index)

	_, ok = NewSlice(0, "", nil).Max()
	assert.False(t, ok)
}
