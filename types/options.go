package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOption 未知的运行选项
var ErrUnknownOption = errors.New("未知的运行选项")

// Coupling 内层积分中 IR 耦合项的取值方式
// 在 XUV 脉冲期间和两脉冲之间 IR 场尚未作用。
type Coupling int

const (
	CouplingNone       Coupling = iota // 无 IR 场：自由传播相位，与解析内层积分一致
	CouplingSuppressed                 // 耦合为零：共振与间接通路消失
)

// FailurePolicy 单个网格点数值不收敛时的处理策略
type FailurePolicy int

const (
	PolicyAbort FailurePolicy = iota // 第一次失败即终止整个扫描
	PolicyFlag                       // 标记该点为 NaN 并继续
)

var couplingName = map[Coupling]string{
	CouplingNone:       "none",
	CouplingSuppressed: "suppressed",
}

var policyName = map[FailurePolicy]string{
	PolicyAbort: "abort",
	PolicyFlag:  "flag",
}

// String 返回耦合名称
func (c Coupling) String() string {
	if n, ok := couplingName[c]; ok {
		return n
	}
	return "unknown"
}

// String 返回策略名称
func (p FailurePolicy) String() string {
	if n, ok := policyName[p]; ok {
		return n
	}
	return "unknown"
}

// ParseCoupling 通过名称获取耦合方式
func ParseCoupling(name string) (Coupling, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range couplingName {
		if n == name {
			return c, nil
		}
	}
	return CouplingNone, fmt.Errorf("%w: ir_coupling '%s'", ErrUnknownOption, name)
}

// ParsePolicy 通过名称获取失败策略
func ParsePolicy(name string) (FailurePolicy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, n := range policyName {
		if n == name {
			return p, nil
		}
	}
	return PolicyAbort, fmt.Errorf("%w: on_failure '%s'", ErrUnknownOption, name)
}
