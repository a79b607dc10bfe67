// Package pulse 定义 XUV 驱动场与 IR 脉冲的时间结构。
// 所有量均为原子单位。
package pulse

import (
	"fmt"
	"math"
)

// Envelope XUV 脉冲包络与由其导出的驱动场
// 创建后只读，可在多个 goroutine 中并发使用。
type Envelope struct {
	Shape  Shape     // 包络形状
	Mode   FieldMode // 场模式
	Omega  float64   // 中心光子能量
	A0     float64   // 矢势振幅 E0/Ω
	Cycles float64   // 周期数
	T      float64   // 脉冲持续时间 TX
	Sigma  float64   // 高斯宽度（仅高斯）
	FWHM   float64   // 高斯半高全宽（仅高斯）

	norm float64 // 高斯归一化系数 1/sqrt(2πσ²)
}

// New 创建脉冲包络
// 参数：omega - 中心光子能量，a0 - 矢势振幅，cycles - 周期数
func New(shape Shape, mode FieldMode, omega, a0, cycles float64) (*Envelope, error) {
	if mode != FieldConvoluted && mode != FieldInfinite {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFieldMode, int(mode))
	}
	if omega <= 0 || cycles <= 0 {
		return nil, fmt.Errorf("脉冲参数无效: omega=%g cycles=%g", omega, cycles)
	}
	env := &Envelope{Shape: shape, Mode: mode, Omega: omega, A0: a0, Cycles: cycles}
	switch shape {
	case ShapeSinSq:
		env.T = cycles * 2 * math.Pi / omega
	case ShapeGauss:
		env.Sigma = math.Pi * cycles / (omega * math.Sqrt(math.Ln2))
		env.FWHM = 2 * math.Sqrt(2*math.Ln2) * env.Sigma
		env.T = 5 * env.Sigma
		env.norm = 1 / math.Sqrt(2*math.Pi*env.Sigma*env.Sigma)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownShape, shape)
	}
	return env, nil
}

// Start 脉冲开始时间 -T/2
func (env *Envelope) Start() float64 { return -env.T / 2 }

// End 脉冲结束时间 T/2
func (env *Envelope) End() float64 { return env.T / 2 }

// F 包络值
func (env *Envelope) F(t float64) float64 {
	switch env.Shape {
	case ShapeSinSq:
		if t < -env.T/2 || t > env.T/2 {
			return 0
		}
		s := math.Sin(math.Pi * (t + env.T/2) / env.T)
		return s * s
	case ShapeGauss:
		return env.norm * math.Exp(-t*t/(2*env.Sigma*env.Sigma))
	}
	return 0
}

// FP 包络对时间的导数
func (env *Envelope) FP(t float64) float64 {
	switch env.Shape {
	case ShapeSinSq:
		if t < -env.T/2 || t > env.T/2 {
			return 0
		}
		return math.Pi / env.T * math.Sin(2*math.Pi*(t+env.T/2)/env.T)
	case ShapeGauss:
		s := env.Sigma
		return -t / (math.Sqrt(2*math.Pi) * s * s * s) * math.Exp(-t*t/(2*s*s))
	}
	return 0
}

// VectorPotential 矢势 A0·f(t)·cos(Ωt)
func (env *Envelope) VectorPotential(t float64) float64 {
	return env.A0 * env.F(t) * math.Cos(env.Omega*t)
}

// Field 通路积分使用的驱动场
// 卷积模式为 -dA/dt，无限模式为单色波 A0·Ω·cos(Ωt)。
func (env *Envelope) Field(t float64) float64 {
	if env.Mode == FieldInfinite {
		return env.A0 * env.Omega * math.Cos(env.Omega*t)
	}
	return -env.A0*math.Cos(env.Omega*t)*env.FP(t) +
		env.A0*env.Omega*math.Sin(env.Omega*t)*env.F(t)
}
