package maths

import (
	"errors"
	"fmt"
)

// ErrNoConvergence 数值积分在迭代预算内未达到容差
var ErrNoConvergence = errors.New("数值积分不收敛")

// ConvergenceError 不收敛的详细信息，errors.Is(err, ErrNoConvergence) 成立
type ConvergenceError struct {
	Method   Method     // 积分方法
	A, B     float64    // 积分区间
	Estimate complex128 // 最后一次估计值
	ErrEst   float64    // 误差估计
	Steps    int        // 已用子区间数或二分层数
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s 积分 [%g, %g] 在 %d 步后不收敛: 估计值 %g, 误差 %g",
		e.Method, e.A, e.B, e.Steps, e.Estimate, e.ErrEst)
}

func (e *ConvergenceError) Unwrap() error { return ErrNoConvergence }
