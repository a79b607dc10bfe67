// Package units 提供物理单位与原子单位之间的换算。
// 全部为纯函数，内部计算统一使用原子单位（Hartree 能量、原子时间单位）。
package units

// 换算常量（CODATA 2018）
const (
	HartreeEV      = 27.211386245988     // 1 Hartree 对应的 eV
	AtuSecond      = 2.4188843265857e-17 // 1 原子时间单位对应的秒
	AiuWCm2        = 3.50944758e16       // 1 原子强度单位对应的 W/cm²
	AmuElectron    = 1822.888486209      // 1 原子质量单位对应的电子质量
	BohrAngstrom   = 0.529177210903      // 1 Bohr 对应的 Å
	FemtoPerSecond = 1e15                // 秒到飞秒
)

// EVToHartree eV 转 Hartree
func EVToHartree(ev float64) float64 { return ev / HartreeEV }

// HartreeToEV Hartree 转 eV
func HartreeToEV(au float64) float64 { return au * HartreeEV }

// SecondToAtu 秒转原子时间单位
func SecondToAtu(s float64) float64 { return s / AtuSecond }

// AtuToSecond 原子时间单位转秒
func AtuToSecond(atu float64) float64 { return atu * AtuSecond }

// AtuToFemto 原子时间单位转飞秒
func AtuToFemto(atu float64) float64 { return AtuToSecond(atu) * FemtoPerSecond }

// WCm2ToAiu 强度 W/cm² 转原子强度单位
func WCm2ToAiu(i float64) float64 { return i / AiuWCm2 }

// AmuToAu 原子质量单位转电子质量
func AmuToAu(m float64) float64 { return m * AmuElectron }

// AngstromToBohr Å 转 Bohr
func AngstromToBohr(a float64) float64 { return a / BohrAngstrom }
