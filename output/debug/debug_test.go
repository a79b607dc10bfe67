package debug

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eldest/spectrum"
	"eldest/units"
)

func sample(t float64, values ...float64) *spectrum.Slice {
	energies := make([]float64, len(values))
	for i := range energies {
		energies[i] = units.EVToHartree(70 + float64(i))
	}
	s := spectrum.NewSlice(t, "between the pulses", energies)
	for _, v := range values {
		_ = s.Append(v)
	}
	return s
}

func TestRecord(t *testing.T) {
	var r Record
	require.NoError(t, r.Slice(sample(0, 1, 4, 2, 5, 3)))
	require.NoError(t, r.Slice(sample(units.SecondToAtu(1e-15), 1, math.NaN(), 2, 5, 3)))
	require.NoError(t, r.Flush())

	require.Len(t, r.Time, 2)
	assert.InDelta(t, 1.0, r.Time[1], 1e-9)
	assert.InDelta(t, 71.0, r.Energies[1], 1e-9)
	assert.Len(t, r.Peaks[0], 2)
	assert.Len(t, r.Peaks[1], 1)
	assert.Equal(t, []int{1}, r.Failed[1])
	assert.Equal(t, 0.0, r.Values[1][1])

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf))
	var back Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, r.Regimes, back.Regimes)
	assert.Equal(t, r.Failed, back.Failed)
}

func TestChartsSelected(t *testing.T) {
	old := MaxSeries
	MaxSeries = 4
	defer func() { MaxSeries = old }()

	var c Charts
	assert.Nil(t, c.selected())
	for i := range 10 {
		require.NoError(t, c.Slice(sample(float64(i), 1, 2, 1)))
	}
	idx := c.selected()
	assert.Equal(t, 0, idx[0])
	assert.Equal(t, 9, idx[len(idx)-1])
	assert.LessOrEqual(t, len(idx), MaxSeries+1)
}

func TestChartsRender(t *testing.T) {
	var c Charts
	require.NoError(t, c.Slice(sample(0, 1, 4, 2, 5, 3)))
	require.NoError(t, c.Slice(sample(1, 1, math.NaN(), 2, 5, 3)))

	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf))
	assert.Contains(t, buf.String(), "<html")
	assert.Contains(t, buf.String(), "peak 2")

	rec := httptest.NewRecorder()
	c.Handler(rec, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "<html")
}
