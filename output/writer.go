// Package output 写出结果日志、全分辨率数据流和动画数据流。
package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"eldest/spectrum"
	"eldest/units"
)

// Writer 接收完成的谱
type Writer interface {
	Slice(s *spectrum.Slice) error
	Flush() error
}

// Multi 依次写入多个 Writer
type Multi []Writer

// Slice 实现 Writer
func (m Multi) Slice(s *spectrum.Slice) error {
	for _, w := range m {
		if err := w.Slice(s); err != nil {
			return err
		}
	}
	return nil
}

// Flush 刷新全部 Writer，返回合并的错误
func (m Multi) Flush() error {
	var errs []error
	for _, w := range m {
		errs = append(errs, w.Flush())
	}
	return errors.Join(errs...)
}

// formatValue 浮点数输出，NaN 写为 nan
func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "nan"
	}
	return strconv.FormatFloat(v, 'e', 15, 64)
}

// Full 全分辨率数据流：每个 (t, E) 点一行 "E_kin_eV t_s |J|²"
type Full struct {
	w *bufio.Writer
}

// NewFull 创建全分辨率数据流
func NewFull(w io.Writer) *Full { return &Full{w: bufio.NewWriter(w)} }

// Slice 写入一个时间点
func (f *Full) Slice(s *spectrum.Slice) error {
	ts := units.AtuToSecond(s.T)
	for i, v := range s.Values {
		if _, err := fmt.Fprintf(f.w, "%.10f   %.18e   %s\n",
			units.HartreeToEV(s.Energies[i]), ts, formatValue(v)); err != nil {
			return err
		}
	}
	return nil
}

// Flush 刷新缓冲
func (f *Full) Flush() error { return f.w.Flush() }

// Movie 动画数据流：每个时间点一个带标签的数据块，块之间空两行
type Movie struct {
	w *bufio.Writer
}

// NewMovie 创建动画数据流
func NewMovie(w io.Writer) *Movie { return &Movie{w: bufio.NewWriter(w)} }

// Label 时间标签，飞秒保留三位小数
func Label(t float64) string {
	return fmt.Sprintf("\"%.3f fs\"", units.AtuToFemto(t))
}

// Slice 写入一个时间点
func (m *Movie) Slice(s *spectrum.Slice) error {
	if _, err := fmt.Fprintln(m.w, Label(s.T)); err != nil {
		return err
	}
	for i, v := range s.Values {
		if _, err := fmt.Fprintf(m.w, "%.10f   %s\n", units.HartreeToEV(s.Energies[i]), formatValue(v)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(m.w, "\n\n")
	return err
}

// Flush 刷新缓冲
func (m *Movie) Flush() error { return m.w.Flush() }
