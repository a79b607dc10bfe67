// Package vib 处理 Morse 势能的振动能级。
package vib

import (
	"fmt"
	"math"

	"eldest/units"
)

// ReducedMass 两原子的约化质量，输入为原子质量单位，输出为电子质量
func ReducedMass(m1, m2 float64) float64 {
	if m1+m2 == 0 {
		return 0
	}
	return units.AmuToAu(m1 * m2 / (m1 + m2))
}

// Morse 势能 V(R) = De·(1 - exp(-a(R-Req)))²，原子单位
type Morse struct {
	De float64 // 阱深
	A  float64 // 宽度参数
	Mu float64 // 约化质量
}

// NewMorse 由 eV 与 1/Å 单位的参数创建
func NewMorse(deEV, aPerAngstrom, mu float64) Morse {
	return Morse{
		De: units.EVToHartree(deEV),
		A:  aPerAngstrom * units.BohrAngstrom,
		Mu: mu,
	}
}

// Lambda 无量纲参数 λ = sqrt(2μDe)/a
func (m Morse) Lambda() float64 {
	if m.A == 0 {
		return 0
	}
	return math.Sqrt(2*m.Mu*m.De) / m.A
}

// MaxLevel 束缚态数目 int(λ - 1/2)
func (m Morse) MaxLevel() int {
	n := int(m.Lambda() - 0.5)
	return max(n, 0)
}

// Omega 谐振频率 a·sqrt(2De/μ)
func (m Morse) Omega() float64 {
	if m.Mu == 0 {
		return 0
	}
	return m.A * math.Sqrt(2*m.De/m.Mu)
}

// Eigenvalue 第 n 个振动能级（相对势阱底）
// E_n = ω(n+1/2) - [ω(n+1/2)]²/(4De)
func (m Morse) Eigenvalue(n int) (float64, error) {
	if n < 0 || n >= m.MaxLevel() {
		return 0, fmt.Errorf("振动量子数 %d 超出束缚态范围 [0, %d)", n, m.MaxLevel())
	}
	x := m.Omega() * (float64(n) + 0.5)
	return x - x*x/(4*m.De), nil
}

// Levels 全部束缚态能级
func (m Morse) Levels() []float64 {
	levels := make([]float64, 0, m.MaxLevel())
	for n := range m.MaxLevel() {
		e, _ := m.Eigenvalue(n)
		levels = append(levels, e)
	}
	return levels
}
