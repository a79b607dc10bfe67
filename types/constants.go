package types

import (
	"fmt"
	"math"
	"runtime"

	"eldest/maths"
	"eldest/pulse"
	"eldest/units"
)

// FinalState 单次振幅计算使用的共振/末态参数
type FinalState struct {
	EFin float64 // 末态能量
	Er   float64 // 共振能量
	V    float64 // 共振-连续态耦合 sqrt(Γ/2π)
	Cdg  float64 // 基态到连续态偶极矩阵元
	Rdg  float64 // 基态到共振态偶极矩阵元
}

// PhysicalConstants 运行期间不变的物理常量（原子单位）
type PhysicalConstants struct {
	Er, ErB     float64 // 共振能量 a, b
	EFin, EFin2 float64 // 末态能量
	Gamma       float64 // 第一末态衰变宽度 1/τ
	Gamma2      float64 // 第二末态衰变宽度
	V, W        float64 // 耦合强度 sqrt(Γ/2π)
	Rdg         float64 // 基态到共振态偶极矩阵元
	CdgV, CdgW  float64 // 由 Fano 参数导出的基态到连续态矩阵元
	Q           float64 // Fano 参数

	XUV *pulse.Envelope // XUV 驱动场
	IX  float64         // XUV 强度（原子单位）
	E0X float64         // XUV 场强振幅
	IR  pulse.IR        // IR 脉冲
	IL  float64         // IR 强度（原子单位）

	TMax, TimeStep    float64 // 时间网格
	EMin, EMax, EStep float64 // 能量网格

	Inner, Outer maths.Method  // 内外层积分方法
	Integration  maths.Options // 数值积分容差
	Coupling     Coupling      // IR 耦合取值
	Policy       FailurePolicy // 失败策略
	Workers      int           // 能量并行数
}

// NewPhysicalConstants 单位换算并导出全部常量
// 只做配置层面的解析（形状、方法、选项），物理一致性由 load.Check 校验。
func NewPhysicalConstants(in *Input) (*PhysicalConstants, error) {
	in.Defaults()
	c := &PhysicalConstants{
		Er:    units.EVToHartree(in.ErAEV),
		ErB:   units.EVToHartree(in.ErBEV),
		EFin:  units.EVToHartree(in.EFinEV),
		EFin2: units.EVToHartree(in.EFin2EV),
		Rdg:   in.RdgAu,
		Q:     in.Q,
	}
	if tau := units.SecondToAtu(in.TauS); tau > 0 {
		c.Gamma = 1 / tau
	}
	if tau := units.SecondToAtu(in.Tau2S); tau > 0 {
		c.Gamma2 = 1 / tau
	}
	c.V = math.Sqrt(c.Gamma / (2 * math.Pi))
	c.W = math.Sqrt(c.Gamma2 / (2 * math.Pi))
	if c.Q != 0 && c.V != 0 {
		c.CdgV = c.Rdg / (c.Q * math.Pi * c.V)
	}
	if c.Q != 0 && c.W != 0 {
		c.CdgW = c.Rdg / (c.Q * math.Pi * c.W)
	}

	// XUV 脉冲
	shape, err := pulse.ParseShape(in.ShapeName())
	if err != nil {
		return nil, err
	}
	mode, err := pulse.ParseFieldMode(in.XField)
	if err != nil {
		return nil, err
	}
	omega := units.EVToHartree(in.OmegaEV)
	c.IX = units.WCm2ToAiu(in.IX)
	c.E0X = math.Sqrt(c.IX)
	var a0 float64
	if omega > 0 {
		a0 = c.E0X / omega
	}
	if c.XUV, err = pulse.New(shape, mode, omega, a0, in.NX); err != nil {
		return nil, err
	}

	// IR 脉冲
	c.IL = units.WCm2ToAiu(in.IL)
	c.IR = pulse.NewIR(units.EVToHartree(in.OmegaLEV), math.Sqrt(c.IL), in.NL,
		units.SecondToAtu(in.FWHML), units.SecondToAtu(in.DeltaTS))

	// 网格
	c.TMax = units.SecondToAtu(in.TMaxS)
	c.TimeStep = units.SecondToAtu(in.TimestepS)
	c.EMin = units.EVToHartree(in.EMinEV)
	c.EMax = units.EVToHartree(in.EMaxEV)
	c.EStep = units.EVToHartree(in.EStepEV)

	// 数值方法
	if c.Inner, err = maths.ParseMethod(in.Integ); err != nil {
		return nil, fmt.Errorf("integ: %w", err)
	}
	if c.Outer, err = maths.ParseMethod(in.IntegOuter); err != nil {
		return nil, fmt.Errorf("integ_outer: %w", err)
	}
	if c.Outer == maths.MethodAnalytic {
		return nil, fmt.Errorf("integ_outer: %w", maths.ErrAnalyticOnly)
	}
	c.Integration = maths.Options{
		QuadAbsTol:      in.QuadTol,
		QuadRelTol:      in.QuadTol,
		QuadLimit:       in.QuadLimit,
		QuadOrder:       QuadOrder,
		RombergAbsTol:   in.RombergTol,
		RombergRelTol:   in.RombergTol,
		RombergMaxLevel: in.RombergMaxLevel,
		RombergMinLevel: RombergMinLevel,
	}
	if c.Coupling, err = ParseCoupling(in.IRCoupling); err != nil {
		return nil, err
	}
	if c.Coupling == CouplingSuppressed && c.Inner == maths.MethodAnalytic {
		return nil, fmt.Errorf("%w: 解析内层积分要求 ir_coupling=none", ErrUnknownOption)
	}
	if c.Policy, err = ParsePolicy(in.OnFailure); err != nil {
		return nil, err
	}
	c.Workers = in.Workers
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	return c, nil
}

// State 第 i 个末态的参数，0 为主末态，1 为第二末态
func (c *PhysicalConstants) State(i int) FinalState {
	if i == 1 {
		return FinalState{EFin: c.EFin2, Er: c.Er, V: c.W, Cdg: c.CdgW, Rdg: c.Rdg}
	}
	return FinalState{EFin: c.EFin, Er: c.Er, V: c.V, Cdg: c.CdgV, Rdg: c.Rdg}
}

// N0 高斯脉冲下共振态的初始布居估计
func (c *PhysicalConstants) N0() (float64, bool) {
	if c.XUV.Shape != pulse.ShapeGauss {
		return 0, false
	}
	s := c.XUV.Sigma
	d := c.XUV.Omega - c.Er
	return 0.25 * c.Rdg * c.Rdg * math.Exp(-s*s*d*d) *
		math.Exp(-c.Gamma*(c.IR.Delay-c.IR.Offset)), true
}
