// Package debug 记录扫描历史，输出 JSON 与交互式图表。
package debug

import (
	"encoding/json"
	"io"
	"math"

	"eldest/spectrum"
	"eldest/units"
)

// Record 记录历史状态
type Record struct {
	Energies []float64   // 能量网格 (eV)
	Time     []float64   // 时间列 (fs)
	Regimes  []string    // 区域列
	Values   [][]float64 // |J|² 列，不收敛点记为 0
	Failed   [][]int     // 不收敛的能量索引
	Peaks    [][]float64 // 极大值能量 (eV)
}

// Slice 追加一个时间点
func (list *Record) Slice(s *spectrum.Slice) error {
	if list.Energies == nil {
		list.Energies = make([]float64, len(s.Energies))
		for i, e := range s.Energies {
			list.Energies[i] = units.HartreeToEV(e)
		}
	}
	values := make([]float64, len(s.Values))
	for i, v := range s.Values {
		if !math.IsNaN(v) {
			values[i] = v
		}
	}
	peaks := make([]float64, 0)
	for _, p := range s.Peaks() {
		peaks = append(peaks, units.HartreeToEV(p.Energy))
	}
	list.Time = append(list.Time, units.AtuToFemto(s.T))
	list.Regimes = append(list.Regimes, s.Regime)
	list.Values = append(list.Values, values)
	list.Failed = append(list.Failed, append([]int{}, s.Failed...))
	list.Peaks = append(list.Peaks, peaks)
	return nil
}

// Flush 无缓冲
func (list *Record) Flush() error { return nil }

// Render 格式化
func (list *Record) Render(w io.Writer) error { return json.NewEncoder(w).Encode(list) }
