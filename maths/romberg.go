package maths

import (
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// Romberg 默认参数
const (
	defaultRombergTol      = 1.48e-8 // 默认容差
	defaultRombergMaxLevel = 18      // 默认最大二分层数（2^18+1 个采样点）
	defaultRombergMinLevel = 4       // 默认最小二分层数，防止振荡被积函数过早收敛
)

// Romberg 逐次二分采样并做 Richardson 外推
// 每层复用上一层采样点，只在新增的中点上求值。
type Romberg struct {
	AbsTol   float64 // 绝对容差
	RelTol   float64 // 相对容差
	MaxLevel int     // 最大二分层数
	MinLevel int     // 最小二分层数
}

// NewRomberg 创建 Romberg 积分器，非正参数使用默认值
func NewRomberg(absTol, relTol float64, maxLevel, minLevel int) *Romberg {
	if absTol <= 0 {
		absTol = defaultRombergTol
	}
	if relTol <= 0 {
		relTol = defaultRombergTol
	}
	if maxLevel <= 0 {
		maxLevel = defaultRombergMaxLevel
	}
	if minLevel <= 0 {
		minLevel = defaultRombergMinLevel
	}
	minLevel = min(minLevel, maxLevel)
	return &Romberg{AbsTol: absTol, RelTol: relTol, MaxLevel: maxLevel, MinLevel: minLevel}
}

// Method 积分方法
func (r *Romberg) Method() Method { return MethodRomberg }

// Integrate 计算 ∫_a^b f(x)dx
func (r *Romberg) Integrate(f Func, a, b float64) (complex128, error) {
	if a == b {
		return 0, nil
	}
	if a > b {
		v, err := r.Integrate(f, b, a)
		return -v, err
	}
	// 第 0 层：两个端点
	samples := make([]complex128, 2)
	for i, x := range []float64{a, b} {
		v, err := f(x)
		if err != nil {
			return 0, err
		}
		samples[i] = v
	}
	var prev, value complex128
	var diff float64
	for level := 1; level <= r.MaxLevel; level++ {
		n := 1 << level
		xs := floats.Span(make([]float64, n+1), a, b)
		next := make([]complex128, n+1)
		for i := range next {
			if i%2 == 0 {
				next[i] = samples[i/2]
				continue
			}
			v, err := f(xs[i])
			if err != nil {
				return 0, err
			}
			next[i] = v
		}
		samples = next
		value = r.extrapolate(samples, (b-a)/float64(n))
		if level > 1 {
			diff = cmplx.Abs(value - prev)
			if level >= r.MinLevel && diff <= tolerance(r.AbsTol, r.RelTol, cmplx.Abs(value)) {
				return value, nil
			}
		}
		prev = value
	}
	return value, &ConvergenceError{
		Method: MethodRomberg, A: a, B: b,
		Estimate: value, ErrEst: diff, Steps: r.MaxLevel,
	}
}

// extrapolate 实部与虚部分别做 Romberg 外推
func (r *Romberg) extrapolate(samples []complex128, dx float64) complex128 {
	re := make([]float64, len(samples))
	im := make([]float64, len(samples))
	for i, v := range samples {
		re[i], im[i] = real(v), imag(v)
	}
	return complex(integrate.Romberg(re, dx), integrate.Romberg(im, dx))
}
