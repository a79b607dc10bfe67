// Package spectrum 记录每个时间点的动能谱并检测局部极大值。
package spectrum

import (
	"fmt"
	"math"
)

// Peak 局部极大值
type Peak struct {
	Index  int     // 能量网格索引
	Energy float64 // 动能（原子单位）
	Value  float64 // |J|²
}

// Slice 单个时间点的动能谱，按能量升序
type Slice struct {
	T        float64   // 时间（原子单位）
	Regime   string    // 所处区域
	Energies []float64 // 能量网格
	Values   []float64 // |J|²，不收敛的点为 NaN
	Failed   []int     // 不收敛的能量索引（升序）
}

// NewSlice 创建与能量网格等长的谱
func NewSlice(t float64, regime string, energies []float64) *Slice {
	return &Slice{
		T:        t,
		Regime:   regime,
		Energies: energies,
		Values:   make([]float64, 0, len(energies)),
	}
}

// Append 按能量顺序追加一个值
func (s *Slice) Append(value float64) error {
	i := len(s.Values)
	if i >= len(s.Energies) {
		return fmt.Errorf("谱已满: %d 个能量点", len(s.Energies))
	}
	s.Values = append(s.Values, value)
	if math.IsNaN(value) {
		s.Failed = append(s.Failed, i)
	}
	return nil
}

// Complete 是否每个能量点都有值
func (s *Slice) Complete() bool { return len(s.Values) == len(s.Energies) }

// Len 已记录的点数
func (s *Slice) Len() int { return len(s.Values) }

// Peaks 检测严格局部极大值，边界点不参与
func (s *Slice) Peaks() []Peak {
	idx := Maxima(s.Values)
	peaks := make([]Peak, len(idx))
	for i, j := range idx {
		peaks[i] = Peak{Index: j, Energy: s.Energies[j], Value: s.Values[j]}
	}
	return peaks
}

// Max 全局最大值（忽略不收敛的点），谱为空时 ok 为 false
func (s *Slice) Max() (peak Peak, ok bool) {
	for i, v := range s.Values {
		if math.IsNaN(v) {
			continue
		}
		if !ok || v > peak.Value {
			peak, ok = Peak{Index: i, Energy: s.Energies[i], Value: v}, true
		}
	}
	return peak, ok
}

// Maxima 返回严格大于两侧相邻值的内部索引
// 与 NaN 的比较恒为假，因此不收敛点及其邻点不会被判为极大值。
func Maxima(values []float64) []int {
	var idx []int
	for i := 1; i+1 < len(values); i++ {
		if values[i] > values[i-1] && values[i] > values[i+1] {
			idx = append(idx, i)
		}
	}
	return idx
}
