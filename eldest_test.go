package eldest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"eldest/load"
	"eldest/types"
	"eldest/units"
)

// input 5 个脉冲内时间点、5 个脉冲间时间点、5 个能量点
func input() *types.Input {
	return &types.Input{
		RdgAu: 0.5, Q: 5,
		ErAEV: 150, EFinEV: 70, TauS: 2e-15,
		OmegaEV: 150, NX: 3, IX: 1e15, XShape: "sinsq",
		OmegaLEV: 1.6, NL: 6, IL: 1e12, DeltaTS: 6e-15, FWHML: 2e-15,
		TMaxS: units.AtuToSecond(6.2), TimestepS: units.AtuToSecond(0.8),
		EStepEV: 2.5, EMinEV: 75, EMaxEV: 85,
		Integ: "analytic", IntegOuter: "quadrature",
		Mass1: 1.008, Mass2: 1.008, GsDe: 4.75, GsA: 1.94,
	}
}

func TestSimulate(t *testing.T) {
	dir := t.TempDir()
	log, hook := test.NewNullLogger()
	el := New(Options{OutDir: dir, Workers: 2, Plot: true, Debug: true}, log)
	require.NoError(t, el.SetInput(input()))
	assert.Equal(t, 2, el.Consts.Workers)

	stats, err := el.Simulate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, stats.Slices)
	assert.Equal(t, 50, stats.Points)

	for _, name := range []string{ResultsFile, FullFile, MovieFile, SpectrogramFile, RecordFile, ChartsFile} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}

	out, err := os.ReadFile(filepath.Join(dir, ResultsFile))
	require.NoError(t, err)
	results := string(out)
	assert.True(t, strings.HasPrefix(results, "The results were obtained with eldest\n"))
	assert.Contains(t, results, "during the first pulse\n")
	assert.Contains(t, results, "between the pulses\n")
	assert.Equal(t, 10, strings.Count(results, "t_s = "))
	assert.Contains(t, results, "gs eigenvalue 0 (eV) = ")

	full, err := os.ReadFile(filepath.Join(dir, FullFile))
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(full)), "\n"), 50)

	movie, err := os.ReadFile(filepath.Join(dir, MovieFile))
	require.NoError(t, err)
	assert.Equal(t, 10, strings.Count(string(movie), " fs\"\n"))

	assert.Len(t, el.Charts.Time, 10)
	assert.NotEmpty(t, hook.AllEntries())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	data, err := yaml.Marshal(input())
	require.NoError(t, err)
	path := filepath.Join(dir, "input.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	log, _ := test.NewNullLogger()
	el := New(Options{OutDir: dir, OnFailure: "flag"}, log)
	require.NoError(t, el.Load(path))
	assert.Equal(t, types.PolicyFlag, el.Consts.Policy)
	assert.Equal(t, 150.0, el.Input.ErAEV)
}

func TestSetInputErrors(t *testing.T) {
	log, _ := test.NewNullLogger()
	el := New(Options{}, log)

	in := input()
	in.Integ = "simpson"
	assert.ErrorIs(t, el.SetInput(in), load.ErrConfig)

	in = input()
	in.EMaxEV = 10
	assert.ErrorIs(t, el.SetInput(in), load.ErrValidation)

	_, err := el.Simulate(context.Background())
	assert.Error(t, err)
}

func TestSimulateCanceled(t *testing.T) {
	dir := t.TempDir()
	log, _ := test.NewNullLogger()
	el := New(Options{OutDir: dir}, log)
	require.NoError(t, el.SetInput(input()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := el.Simulate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = os.Stat(filepath.Join(dir, ResultsFile))
	assert.NoError(t, err)
}
