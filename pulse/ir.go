package pulse

import "math"

// IR 红外条纹脉冲参数
type IR struct {
	Omega  float64 // 光子能量
	A0     float64 // 矢势振幅
	E0     float64 // 场强振幅
	Cycles float64 // 周期数
	T      float64 // 持续时间 TL
	FWHM   float64 // 强度半高全宽
	Sigma  float64 // 高斯宽度
	Offset float64 // 前沿偏移 a = 5/2·σ
	Delay  float64 // 相对 XUV 的延迟
}

// NewIR 创建 IR 脉冲描述
func NewIR(omega, e0, cycles, fwhm, delay float64) IR {
	ir := IR{Omega: omega, E0: e0, Cycles: cycles, FWHM: fwhm, Delay: delay}
	if omega > 0 {
		ir.A0 = e0 / omega
		ir.T = cycles * 2 * math.Pi / omega
	}
	ir.Sigma = fwhm / math.Sqrt(8*math.Ln2)
	ir.Offset = 2.5 * ir.Sigma
	return ir
}

// Start IR 脉冲开始时间
func (ir IR) Start() float64 { return ir.Delay - ir.T/2 }

// End IR 脉冲结束时间
func (ir IR) End() float64 { return ir.Delay + ir.T/2 }

// Threshold 两脉冲之间区域的上界 delay - a
func (ir IR) Threshold() float64 { return ir.Delay - ir.Offset }
