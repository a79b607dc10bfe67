// Package maths 提供复值函数在有限区间上的数值积分。
// 复值被积函数按实部与虚部分别积分后重新组合，每个节点只求值一次。
package maths

import (
	"errors"
	"fmt"
	"strings"
)

// Func 复值被积函数，返回错误时积分立即终止并向上传播
type Func func(x float64) (complex128, error)

// Integrator 复值定积分接口
type Integrator interface {
	Integrate(f Func, a, b float64) (complex128, error) // 计算 ∫_a^b f(x)dx
	Method() Method                                     // 积分方法
}

// Method 积分方法
type Method int

const (
	MethodUnknown    Method = iota // 未指定
	MethodAnalytic                 // 解析闭式（仅用于内层衰减积分）
	MethodQuadrature               // 全局自适应 Gauss-Legendre 求积
	MethodRomberg                  // Romberg 外推
)

var methodName = map[Method]string{
	MethodUnknown:    "unknown",
	MethodAnalytic:   "analytic",
	MethodQuadrature: "quadrature",
	MethodRomberg:    "romberg",
}

// ErrUnknownMethod 未知的积分方法
var ErrUnknownMethod = errors.New("未知的积分方法")

// ErrAnalyticOnly 解析方法没有通用的数值积分器
var ErrAnalyticOnly = errors.New("解析积分只适用于内层衰减积分")

// String 返回方法名称
func (m Method) String() string {
	if n, ok := methodName[m]; ok {
		return n
	}
	return methodName[MethodUnknown]
}

// ParseMethod 通过名称获取积分方法
func ParseMethod(name string) (Method, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for m, n := range methodName {
		if m != MethodUnknown && n == name {
			return m, nil
		}
	}
	if name == "" {
		return MethodUnknown, fmt.Errorf("%w: 未设置", ErrUnknownMethod)
	}
	return MethodUnknown, fmt.Errorf("%w: '%s'", ErrUnknownMethod, name)
}

// Options 数值积分容差与迭代预算
type Options struct {
	QuadAbsTol      float64 // 自适应求积绝对容差
	QuadRelTol      float64 // 自适应求积相对容差
	QuadLimit       int     // 自适应求积最大子区间数
	QuadOrder       int     // 每个子区间的 Gauss-Legendre 阶数
	RombergAbsTol   float64 // Romberg 绝对容差
	RombergRelTol   float64 // Romberg 相对容差
	RombergMaxLevel int     // Romberg 最大二分层数
	RombergMinLevel int     // Romberg 最小二分层数
}

// NewIntegrator 按方法创建积分器，整个运行期间只解析一次
func NewIntegrator(m Method, opts Options) (Integrator, error) {
	switch m {
	case MethodQuadrature:
		return NewQuadrature(opts.QuadAbsTol, opts.QuadRelTol, opts.QuadLimit, opts.QuadOrder), nil
	case MethodRomberg:
		return NewRomberg(opts.RombergAbsTol, opts.RombergRelTol, opts.RombergMaxLevel, opts.RombergMinLevel), nil
	case MethodAnalytic:
		return nil, ErrAnalyticOnly
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, m)
}

// tolerance 全局收敛阈值 max(abs, rel·|I|)
func tolerance(absTol, relTol float64, value float64) float64 {
	return max(absTol, relTol*value)
}
