package pathway

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eldest/maths"
	"eldest/types"
	"eldest/units"
)

// constants 一组计算量较小的测试常量：3 周期 sin² XUV 脉冲
func constants(t *testing.T, inner, outer, coupling string) *types.PhysicalConstants {
	t.Helper()
	c, err := types.NewPhysicalConstants(&types.Input{
		RdgAu: 0.5, Q: 5,
		ErAEV: 150, EFinEV: 70, TauS: 2e-15,
		OmegaEV: 150, NX: 3, IX: 1e15, XShape: "sinsq",
		OmegaLEV: 1.6, NL: 6, IL: 1e12, DeltaTS: 6e-15, FWHML: 2e-15,
		TMaxS: 5e-15, TimestepS: 1e-17, EStepEV: 0.5, EMinEV: 75, EMaxEV: 85,
		Integ: inner, IntegOuter: outer, IRCoupling: coupling,
	})
	require.NoError(t, err)
	return c
}

func model(t *testing.T, inner, outer, coupling string) (*Model, *types.PhysicalConstants) {
	t.Helper()
	c := constants(t, inner, outer, coupling)
	m, err := NewModel(c)
	require.NoError(t, err)
	return m, c
}

func relDiff(a, b complex128) float64 {
	return cmplx.Abs(a-b) / math.Max(cmplx.Abs(b), 1e-300)
}

func TestAnalyticInnerMatchesNumeric(t *testing.T) {
	c := constants(t, "analytic", "romberg", "none")
	p := Point{T: 1.0, EKin: units.EVToHartree(80), State: c.State(0)}
	for _, method := range []maths.Method{maths.MethodRomberg, maths.MethodQuadrature} {
		numeric, err := NewInner(method, c.Integration, types.CouplingNone)
		require.NoError(t, err)
		assert.Equal(t, method, numeric.Method())
		for _, t1 := range []float64{-1.7, -0.5, 0.9} {
			want := AnalyticInner(p, t1)
			got, err := numeric.Eval(p, t1)
			require.NoError(t, err)
			assert.Less(t, relDiff(got, want), 1e-6, "%s t1=%g", method, t1)
		}
	}
	// 退化区间
	assert.Equal(t, complex128(0), AnalyticInner(p, p.T))
}

func TestAmplitudeAnalyticMatchesNumeric(t *testing.T) {
	analytic, c := model(t, "analytic", "romberg", "none")
	numeric, _ := model(t, "romberg", "romberg", "none")
	p := Point{
		T: 0.4, EKin: units.EVToHartree(80),
		Lower: c.XUV.Start(), Upper: 0.4, State: c.State(0),
	}
	a, err := analytic.Evaluate(p)
	require.NoError(t, err)
	n, err := numeric.Evaluate(p)
	require.NoError(t, err)
	assert.Equal(t, a.Direct, n.Direct)
	assert.Less(t, relDiff(n.Resonant, a.Resonant), 1e-6)
	assert.Less(t, relDiff(n.Indirect, a.Indirect), 1e-6)
}

func TestDegenerateIntervalIsZero(t *testing.T) {
	for _, outer := range []string{"romberg", "quadrature"} {
		m, c := model(t, "analytic", outer, "none")
		start := c.XUV.Start()
		for _, ev := range []float64{75, 80, 85} {
			amp, err := m.Evaluate(Point{
				T: start, EKin: units.EVToHartree(ev),
				Lower: start, Upper: start, State: c.State(0),
			})
			require.NoError(t, err)
			assert.Equal(t, Amplitude{}, amp)
			assert.Equal(t, 0.0, amp.Square())
		}
	}
}

func TestSuppressedCoupling(t *testing.T) {
	free, c := model(t, "romberg", "quadrature", "none")
	off, _ := model(t, "romberg", "quadrature", "suppressed")
	p := Point{T: 1.2, EKin: units.EVToHartree(79), Lower: c.XUV.Start(), Upper: 1.2, State: c.State(0)}

	a, err := free.Evaluate(p)
	require.NoError(t, err)
	b, err := off.Evaluate(p)
	require.NoError(t, err)
	assert.Equal(t, a.Direct, b.Direct)
	assert.Zero(t, b.Resonant)
	assert.Zero(t, b.Indirect)
	assert.NotZero(t, a.Resonant)
	assert.Zero(t, Coupling(p, types.CouplingSuppressed, 0.3))
}

func TestSquareNonNegative(t *testing.T) {
	m, c := model(t, "analytic", "quadrature", "none")
	for _, tt := range []float64{c.XUV.Start() + 0.1, 0, c.XUV.End()} {
		for _, ev := range []float64{75, 78.5, 81, 85} {
			amp, err := m.Evaluate(Point{
				T: tt, EKin: units.EVToHartree(ev),
				Lower: c.XUV.Start(), Upper: tt, State: c.State(0),
			})
			require.NoError(t, err)
			sq := amp.Square()
			assert.GreaterOrEqual(t, sq, 0.0)
			assert.InDelta(t, cmplx.Abs(amp.Total())*cmplx.Abs(amp.Total()), sq, 1e-12*(1+sq))
		}
	}
}

func TestPrefactors(t *testing.T) {
	s := types.FinalState{V: 0.04, Cdg: 1.2, Rdg: 0.5}
	dir, res, indir := Prefactors(s)
	assert.Equal(t, complex(0, 1.2), dir)
	assert.Equal(t, complex(0.04*0.5, 0), res)
	assert.InDelta(t, -math.Pi*0.04*0.04*1.2, imag(indir), 1e-18)
	assert.Zero(t, real(indir))
}

func TestChannelErrors(t *testing.T) {
	_, c := model(t, "analytic", "quadrature", "none")
	p := Point{T: 1.0, EKin: units.EVToHartree(80), Lower: c.XUV.Start(), Upper: 1.0, State: c.State(0)}

	// 外层积分预算不足：直接通路失败
	m := &Model{Env: c.XUV, Outer: maths.NewQuadrature(1e-15, 1e-15, 1, 3), Inner: analyticInner{}}
	_, err := m.Evaluate(p)
	var ce *ChannelError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, ChannelDirect, ce.Channel)
	assert.ErrorIs(t, err, maths.ErrNoConvergence)

	// 内层积分预算不足：共振通路失败
	inner, err := NewInner(maths.MethodRomberg, maths.Options{
		RombergAbsTol: 1e-15, RombergRelTol: 1e-15, RombergMaxLevel: 2, RombergMinLevel: 2,
	}, types.CouplingNone)
	require.NoError(t, err)
	m = &Model{Env: c.XUV, Outer: maths.NewQuadrature(0, 0, 0, 0), Inner: inner}
	_, err = m.Evaluate(p)
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, ChannelResonant, ce.Channel)
	assert.ErrorIs(t, err, maths.ErrNoConvergence)
	assert.Contains(t, err.Error(), "resonant")
}

func TestIntegrandsArePure(t *testing.T) {
	_, c := model(t, "analytic", "romberg", "none")
	p := Point{T: 0.7, EKin: 3, State: c.State(0)}
	f := DirectIntegrand(c.XUV, p)
	g := DirectIntegrand(c.XUV, p)
	for _, x := range []float64{-1, 0, 0.5} {
		a, _ := f(x)
		b, _ := g(x)
		again, _ := f(x)
		assert.Equal(t, a, b)
		assert.Equal(t, a, again)
	}
}
