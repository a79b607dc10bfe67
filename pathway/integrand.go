package pathway

import (
	"math"
	"math/cmplx"

	"eldest/maths"
	"eldest/pulse"
	"eldest/types"
)

// Point 单次振幅计算的完整上下文
// 被积函数只依赖 Point 中的值，不读取任何外部可变状态。
type Point struct {
	T     float64          // 当前时间（相位参考点与内层积分上限）
	EKin  float64          // 光电子动能
	Lower float64          // 外层积分下限
	Upper float64          // 外层积分上限
	State types.FinalState // 当前末态参数
}

// decay 共振衰变指数 πV² + iEr
func (p Point) decay() complex128 {
	return complex(math.Pi*p.State.V*p.State.V, p.State.Er)
}

// energy 末态总能量 E_kin + E_fin
func (p Point) energy() float64 { return p.EKin + p.State.EFin }

// DirectIntegrand 直接通路外层被积函数 F(t1)·exp(i(E_fin+E_kin)(t1-t))
func DirectIntegrand(env *pulse.Envelope, p Point) maths.Func {
	k := p.energy()
	return func(t1 float64) (complex128, error) {
		return complex(env.Field(t1), 0) * cmplx.Exp(complex(0, k*(t1-p.T))), nil
	}
}

// ResonantIntegrand 共振与间接通路共享的外层被积函数 F(t1)·exp(t1(πV²+iEr))·inner(t1)
func ResonantIntegrand(env *pulse.Envelope, p Point, inner Inner) maths.Func {
	d := p.decay()
	return func(t1 float64) (complex128, error) {
		in, err := inner.Eval(p, t1)
		if err != nil {
			return 0, err
		}
		return complex(env.Field(t1), 0) * cmplx.Exp(complex(t1, 0)*d) * in, nil
	}
}

// InnerIntegrand 内层被积函数 exp(-t2(πV²+iEr))·C(t2)
func InnerIntegrand(p Point, coupling types.Coupling) maths.Func {
	d := p.decay()
	return func(t2 float64) (complex128, error) {
		return cmplx.Exp(-complex(t2, 0)*d) * Coupling(p, coupling, t2), nil
	}
}

// Coupling 内层积分窗口内的 IR 耦合项
// 无 IR 场时为自由传播相位 exp(i(E_kin+E_fin)(t2-t))。
func Coupling(p Point, coupling types.Coupling, t2 float64) complex128 {
	if coupling == types.CouplingSuppressed {
		return 0
	}
	return cmplx.Exp(complex(0, p.energy()*(t2-p.T)))
}

// AnalyticInner 无 IR 场时内层积分的闭式解
// 1/z·(exp(t·z) - exp(t1·z))·exp(-i·t·(E_kin+E_fin))，z = i(E_kin+E_fin-Er) - πV²
func AnalyticInner(p Point, t1 float64) complex128 {
	if t1 == p.T {
		return 0
	}
	k := p.energy()
	z := complex(-math.Pi*p.State.V*p.State.V, k-p.State.Er)
	return (cmplx.Exp(complex(p.T, 0)*z) - cmplx.Exp(complex(t1, 0)*z)) / z *
		cmplx.Exp(complex(0, -p.T*k))
}
