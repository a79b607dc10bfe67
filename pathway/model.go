// Package pathway 组合直接、共振与间接三条通路的跃迁振幅。
package pathway

import (
	"math"

	"eldest/maths"
	"eldest/pulse"
	"eldest/types"
)

// Amplitude 三条通路的相干贡献
type Amplitude struct {
	Direct   complex128
	Resonant complex128
	Indirect complex128
}

// Total 相干叠加
func (a Amplitude) Total() complex128 { return a.Direct + a.Resonant + a.Indirect }

// Square 可观测量 |J|²
func (a Amplitude) Square() float64 {
	j := a.Total()
	return real(j)*real(j) + imag(j)*imag(j)
}

// Prefactors 三条通路的常数前因子
// 直接 i·cdg，共振 V·rdg，间接 -i·π·V²·cdg
func Prefactors(s types.FinalState) (direct, resonant, indirect complex128) {
	direct = complex(0, s.Cdg)
	resonant = complex(s.V*s.Rdg, 0)
	indirect = complex(0, -math.Pi*s.V*s.V*s.Cdg)
	return direct, resonant, indirect
}

// Model 振幅通路模型，创建后只读
type Model struct {
	Env      *pulse.Envelope  // XUV 驱动场
	Outer    maths.Integrator // 外层积分器
	Inner    Inner            // 内层积分策略
	Coupling types.Coupling   // IR 耦合
}

// NewModel 按运行配置解析积分策略
func NewModel(c *types.PhysicalConstants) (*Model, error) {
	outer, err := maths.NewIntegrator(c.Outer, c.Integration)
	if err != nil {
		return nil, err
	}
	inner, err := NewInner(c.Inner, c.Integration, c.Coupling)
	if err != nil {
		return nil, err
	}
	return &Model{Env: c.XUV, Outer: outer, Inner: inner, Coupling: c.Coupling}, nil
}

// Evaluate 计算一个 (t, E) 点的跃迁振幅
func (m *Model) Evaluate(p Point) (Amplitude, error) {
	dir, res, indir := Prefactors(p.State)

	direct, err := m.Outer.Integrate(DirectIntegrand(m.Env, p), p.Lower, p.Upper)
	if err != nil {
		return Amplitude{}, &ChannelError{Channel: ChannelDirect, Err: err}
	}
	amp := Amplitude{Direct: dir * direct}
	if m.Coupling == types.CouplingSuppressed {
		return amp, nil
	}

	resonant, err := m.Outer.Integrate(ResonantIntegrand(m.Env, p, m.Inner), p.Lower, p.Upper)
	if err != nil {
		return Amplitude{}, &ChannelError{Channel: ChannelResonant, Err: err}
	}
	amp.Resonant = res * resonant
	amp.Indirect = indir * resonant
	return amp, nil
}
