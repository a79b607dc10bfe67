package sweep

import (
	"eldest/pulse"
)

// Regime 时间游标所处的区域
type Regime int

const (
	RegimeInsideXUV     Regime = iota // XUV 脉冲期间
	RegimeBetweenPulses               // XUV 与 IR 脉冲之间
	RegimeDone                        // 超出覆盖范围，扫描结束
)

var regimeName = map[Regime]string{
	RegimeInsideXUV:     "during the first pulse",
	RegimeBetweenPulses: "between the pulses",
	RegimeDone:          "done",
}

// String 返回区域名称（同时用作结果日志中的区域标题）
func (r Regime) String() string {
	if n, ok := regimeName[r]; ok {
		return n
	}
	return "unknown"
}

// Bounds 外层积分区间
// 脉冲期间积分到当前时间，脉冲之后固定为整个脉冲。
func (r Regime) Bounds(t float64, env *pulse.Envelope) (lower, upper float64) {
	if r == RegimeInsideXUV {
		return env.Start(), t
	}
	return env.Start(), env.End()
}

// Limits 区域转换所需的时间界限
type Limits struct {
	Half      float64 // XUV 半宽 TX/2
	Threshold float64 // IR 前沿 delay - a
	TMax      float64 // 最大模拟时间
}

// Next 状态转换：只能前进，不能回到前一个区域
func (l Limits) Next(r Regime, t float64) Regime {
	switch r {
	case RegimeInsideXUV:
		if t <= l.Half && t <= l.TMax {
			return RegimeInsideXUV
		}
		fallthrough
	case RegimeBetweenPulses:
		if t >= l.Half && t <= l.Threshold && t <= l.TMax {
			return RegimeBetweenPulses
		}
	}
	return RegimeDone
}
