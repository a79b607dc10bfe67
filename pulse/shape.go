package pulse

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownShape 未选择脉冲形状或形状不受支持
var ErrUnknownShape = errors.New("未知的脉冲形状")

// ErrUnknownFieldMode 未知的场模式
var ErrUnknownFieldMode = errors.New("未知的场模式")

// Shape XUV 脉冲包络形状
type Shape int

const (
	ShapeUnknown Shape = iota // 未选择
	ShapeSinSq                // sin² 包络，紧支撑
	ShapeGauss                // 高斯包络
)

// FieldMode 通路中使用的驱动场形式
type FieldMode int

const (
	FieldConvoluted FieldMode = iota // 包络与载波卷积后的电场
	FieldInfinite                    // 无限长单色波近似
)

var shapeName = map[Shape]string{
	ShapeUnknown: "unknown",
	ShapeSinSq:   "sinsq",
	ShapeGauss:   "gauss",
}

var fieldModeName = map[FieldMode]string{
	FieldConvoluted: "convoluted",
	FieldInfinite:   "infinite",
}

// String 返回形状名称
func (s Shape) String() string {
	if n, ok := shapeName[s]; ok {
		return n
	}
	return shapeName[ShapeUnknown]
}

// String 返回场模式名称
func (m FieldMode) String() string {
	if n, ok := fieldModeName[m]; ok {
		return n
	}
	return "unknown"
}

// ParseShape 通过名称获取形状
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sinsq", "sin2", "sinsquare":
		return ShapeSinSq, nil
	case "gauss", "gaussian":
		return ShapeGauss, nil
	}
	return ShapeUnknown, fmt.Errorf("%w: '%s'", ErrUnknownShape, name)
}

// ParseFieldMode 通过名称获取场模式，空字符串为默认的卷积场
func ParseFieldMode(name string) (FieldMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "convoluted", "convolved":
		return FieldConvoluted, nil
	case "infinite":
		return FieldInfinite, nil
	}
	return FieldConvoluted, fmt.Errorf("%w: '%s'", ErrUnknownFieldMode, name)
}
