package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Value 表示输入文件中的一个原始值
type Value struct {
	Value string // 原始值
	Line  int    // 行号
}

// String 原始字符串
func (value Value) String() string { return value.Value }

// Float64 解析64位浮点数
func (value Value) Float64() (float64, error) {
	val, err := strconv.ParseFloat(value.Value, 64)
	if err != nil {
		return 0, errorAtLine(value.Line, "无效的浮点数 '%s'", value.Value)
	}
	return val, nil
}

// Int 解析整数，允许 "3.0" 这类整值浮点写法
func (value Value) Int() (int, error) {
	if val, err := strconv.Atoi(value.Value); err == nil {
		return val, nil
	}
	f, err := strconv.ParseFloat(value.Value, 64)
	if err != nil || f != float64(int(f)) {
		return 0, errorAtLine(value.Line, "无效的整数 '%s'", value.Value)
	}
	return int(f), nil
}

// Bool 解析布尔值，兼容 0/1 与 True/False
func (value Value) Bool() (bool, error) {
	val, err := strconv.ParseBool(value.Value)
	if err != nil {
		return false, errorAtLine(value.Line, "无效的布尔值 '%s'", value.Value)
	}
	return val, nil
}

// Word 去除引号后的字符串
func (value Value) Word() string {
	return strings.Trim(value.Value, `"'`)
}

// ParseFloat64 解析64位浮点数，失败时返回默认值
func (value Value) ParseFloat64(defaultValue float64) float64 {
	if val, err := value.Float64(); err == nil {
		return val
	}
	return defaultValue
}

// GoString 调试输出
func (value Value) GoString() string {
	return fmt.Sprintf("ast.Value{%q, line %d}", value.Value, value.Line)
}
