package output

import (
	"bufio"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"eldest/spectrum"
	"eldest/types"
	"eldest/units"
)

// Results 结果日志：输入回显、导出量、每个时间点的极大值
type Results struct {
	w      *bufio.Writer
	regime string
}

// NewResults 创建结果日志
func NewResults(w io.Writer) *Results { return &Results{w: bufio.NewWriter(w)} }

// Line 写一行原始文本
func (r *Results) Line(format string, args ...any) error {
	_, err := fmt.Fprintf(r.w, format+"\n", args...)
	return err
}

// Value 写一行 key = value
func (r *Results) Value(key string, v any) error {
	return r.Line("%s = %v", key, v)
}

// Echo 以 yaml 形式回显全部输入参数
func (r *Results) Echo(in *types.Input) error {
	if err := r.Line("input parameters:"); err != nil {
		return err
	}
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(in); err != nil {
		return fmt.Errorf("回显输入参数: %w", err)
	}
	return enc.Close()
}

// Derived 写出导出的物理量
func (r *Results) Derived(c *types.PhysicalConstants) error {
	values := []struct {
		key string
		v   any
	}{
		{"Gamma_eV", units.HartreeToEV(c.Gamma)},
		{"VEr_au", c.V},
		{"cdg_au_V", c.CdgV},
		{"XUV shape", c.XUV.Shape},
		{"XUV field", c.XUV.Mode},
		{"TX_s", units.AtuToSecond(c.XUV.T)},
		{"end of the first pulse", units.AtuToSecond(c.XUV.End())},
		{"I_X_au", c.IX},
		{"E0X", c.E0X},
		{"A0X", c.XUV.A0},
		{"FWHM_L", units.AtuToSecond(c.IR.FWHM)},
		{"sigma_L", units.AtuToSecond(c.IR.Sigma)},
		{"start of IR pulse", units.AtuToSecond(c.IR.Start())},
		{"end of IR pulse", units.AtuToSecond(c.IR.End())},
		{"I_L_au", c.IL},
		{"E0L", c.IR.E0},
		{"A0L", c.IR.A0},
		{"inner integration", c.Inner},
		{"outer integration", c.Outer},
		{"ir coupling", c.Coupling},
		{"on failure", c.Policy},
	}
	for _, kv := range values {
		if err := r.Value(kv.key, kv.v); err != nil {
			return err
		}
	}
	if c.XUV.Sigma > 0 {
		if err := r.Value("sigma", units.AtuToSecond(c.XUV.Sigma)); err != nil {
			return err
		}
		if err := r.Value("FWHM", units.AtuToSecond(c.XUV.FWHM)); err != nil {
			return err
		}
	}
	if n0, ok := c.N0(); ok {
		return r.Value("N0", n0)
	}
	return nil
}

// Slice 写入区域标题、时间和极大值
func (r *Results) Slice(s *spectrum.Slice) error {
	if s.Regime != r.regime {
		r.regime = s.Regime
		if err := r.Line("%s", s.Regime); err != nil {
			return err
		}
	}
	if err := r.Value("t_s", units.AtuToSecond(s.T)); err != nil {
		return err
	}
	for _, p := range s.Peaks() {
		if err := r.Line("%.10f  %.15e", units.HartreeToEV(p.Energy), p.Value); err != nil {
			return err
		}
	}
	if len(s.Failed) > 0 {
		return r.Line("not converged: %d of %d points", len(s.Failed), len(s.Values))
	}
	return nil
}

// Flush 刷新缓冲
func (r *Results) Flush() error { return r.w.Flush() }
