package sweep

import "eldest/types"

// Cursor 时间游标 t = start + k·step
// 用整数步数计算时间，避免逐步累加的舍入漂移。
type Cursor struct {
	Start float64 // 起始时间 -TX/2
	Step  float64 // 时间步长
	k     int
}

// NewCursor 创建时间游标
func NewCursor(start, step float64) *Cursor { return &Cursor{Start: start, Step: step} }

// T 当前时间
func (c *Cursor) T() float64 { return c.Start + float64(c.k)*c.Step }

// Index 当前步数
func (c *Cursor) Index() int { return c.k }

// Next 前进一步
func (c *Cursor) Next() { c.k++ }

// EnergyGrid 动能网格 E_i = eMin + i·step，直到 eMax（含）
func EnergyGrid(eMin, eMax, step float64) []float64 {
	if step <= 0 || eMax < eMin {
		return nil
	}
	var grid []float64
	for i := 0; ; i++ {
		e := eMin + float64(i)*step
		if e > eMax+types.GridSlack*step {
			break
		}
		grid = append(grid, e)
	}
	return grid
}
