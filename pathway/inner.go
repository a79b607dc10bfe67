package pathway

import (
	"eldest/maths"
	"eldest/types"
)

// Inner 内层积分策略 ∫_{t1}^{t} exp(-t2(πV²+iEr))·C(t2) dt2
type Inner interface {
	Eval(p Point, t1 float64) (complex128, error)
	Method() maths.Method
}

// NewInner 按方法创建内层积分策略
func NewInner(m maths.Method, opts maths.Options, coupling types.Coupling) (Inner, error) {
	if m == maths.MethodAnalytic {
		return analyticInner{}, nil
	}
	ig, err := maths.NewIntegrator(m, opts)
	if err != nil {
		return nil, err
	}
	return &numericInner{integrator: ig, coupling: coupling}, nil
}

// analyticInner 闭式解，没有数值误差
type analyticInner struct{}

func (analyticInner) Eval(p Point, t1 float64) (complex128, error) { return AnalyticInner(p, t1), nil }
func (analyticInner) Method() maths.Method                         { return maths.MethodAnalytic }

// numericInner 数值积分
type numericInner struct {
	integrator maths.Integrator
	coupling   types.Coupling
}

func (n *numericInner) Eval(p Point, t1 float64) (complex128, error) {
	return n.integrator.Integrate(InnerIntegrand(p, n.coupling), t1, p.T)
}

func (n *numericInner) Method() maths.Method { return n.integrator.Method() }
