// Package load 读取输入文件并校验物理参数。
package load

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"eldest/load/ast"
	"eldest/types"
)

var (
	// ErrConfig 配置错误：无法解析或取值未知
	ErrConfig = errors.New("配置错误")
	// ErrValidation 物理参数不一致
	ErrValidation = errors.New("参数校验失败")
)

// Format 输入文件格式
type Format string

const (
	FormatValue Format = "value" // .value name value 行格式
	FormatYAML  Format = "yaml"  // YAML 映射
)

// FormatOf 按扩展名判断格式，.yaml/.yml 之外一律按行格式处理
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatValue
}

// ReadFile 读取输入文件
func ReadFile(path string) (*types.Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	in, err := Read(f, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return in, nil
}

// Read 按指定格式读取输入
func Read(r io.Reader, format Format) (*types.Input, error) {
	in := &types.Input{}
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(in); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %w", ErrConfig, err)
		}
	case FormatValue:
		parseTree, err := ast.NewParseTree(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfig, err)
		}
		if err := setValues(in, parseTree); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfig, err)
		}
	default:
		return nil, fmt.Errorf("%w: 未知的输入格式 '%s'", ErrConfig, format)
	}
	return in, nil
}

// fieldIndex yaml 标签到字段序号
var fieldIndex = func() map[string]int {
	t := reflect.TypeFor[types.Input]()
	index := make(map[string]int, t.NumField())
	for i := range t.NumField() {
		if tag := t.Field(i).Tag.Get("yaml"); tag != "" {
			index[strings.Split(tag, ",")[0]] = i
		}
	}
	return index
}()

// setValues 按出现顺序写入参数，重复定义时后者覆盖前者
func setValues(in *types.Input, parseTree *ast.ParseTree) error {
	v := reflect.ValueOf(in).Elem()
	for _, node := range parseTree.ValueNodes {
		i, ok := fieldIndex[node.Name]
		if !ok {
			return fmt.Errorf("第 %d 行: 未知的参数 '%s'", node.Line, node.Name)
		}
		field := v.Field(i)
		switch field.Kind() {
		case reflect.Float64:
			val, err := node.Value.Float64()
			if err != nil {
				return fmt.Errorf("%s: %w", node.Name, err)
			}
			field.SetFloat(val)
		case reflect.Int:
			val, err := node.Value.Int()
			if err != nil {
				return fmt.Errorf("%s: %w", node.Name, err)
			}
			field.SetInt(int64(val))
		case reflect.Bool:
			val, err := node.Value.Bool()
			if err != nil {
				return fmt.Errorf("%s: %w", node.Name, err)
			}
			field.SetBool(val)
		case reflect.String:
			field.SetString(node.Value.Word())
		default:
			return fmt.Errorf("第 %d 行: 参数 '%s' 类型不受支持", node.Line, node.Name)
		}
	}
	return nil
}

// Constants 由输入导出物理常量，解析失败统一归为配置错误
func Constants(in *types.Input) (*types.PhysicalConstants, error) {
	c, err := types.NewPhysicalConstants(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return c, nil
}

// Check 校验物理参数，返回全部不满足的条件
func Check(c *types.PhysicalConstants) error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...)))
		}
	}
	check(c.Er > 0, "共振能量必须为正 (Er_a_eV)")
	check(c.Gamma > 0, "衰变宽度必须为正 (tau_s)")
	check(c.XUV.Omega > 0, "XUV 光子能量必须为正 (Omega_eV)")
	check(c.XUV.Cycles > 0, "XUV 周期数必须为正 (n_X)")
	check(c.XUV.T > 0, "XUV 脉冲时长必须为正")
	check(c.XUV.A0 >= 0, "XUV 矢势振幅不能为负 (I_X)")
	if c.IL > 0 || c.IR.FWHM > 0 {
		check(c.IR.Omega > 0, "IR 光子能量必须为正 (omega_eV)")
	}
	check(c.TimeStep > 0, "时间步长必须为正 (timestep_s)")
	check(c.EStep > 0, "能量步长必须为正 (E_step_eV)")
	check(c.EMin >= 0, "最小动能不能为负 (E_min_eV)")
	check(c.EMax >= c.EMin, "最大动能不能小于最小动能 (E_max_eV)")
	check(c.TMax >= c.XUV.Start(), "最大模拟时间早于 XUV 脉冲开始 (tmax_s)")
	check(c.Q != 0, "Fano 参数不能为零 (q)")
	check(c.Rdg != 0, "偶极矩阵元不能为零 (rdg_au)")
	return errors.Join(errs...)
}
