package output

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"eldest/spectrum"
	"eldest/units"
)

// Spectrogram 收集全部时间点，结束时绘制 t-E 强度图
type Spectrogram struct {
	Path   string    // 输出 PNG 路径
	Width  vg.Length // 图像宽度
	Height vg.Length // 图像高度
	slices []*spectrum.Slice
}

// NewSpectrogram 创建强度图
func NewSpectrogram(path string) *Spectrogram {
	return &Spectrogram{Path: path, Width: 8 * vg.Inch, Height: 6 * vg.Inch}
}

// Slice 记录一个时间点
func (s *Spectrogram) Slice(sl *spectrum.Slice) error {
	s.slices = append(s.slices, sl)
	return nil
}

// Dims 实现 plotter.GridXYZ，列为能量，行为时间
func (s *Spectrogram) Dims() (c, r int) {
	if len(s.slices) == 0 {
		return 0, 0
	}
	return len(s.slices[0].Energies), len(s.slices)
}

// Z 实现 plotter.GridXYZ，不收敛点取 0
func (s *Spectrogram) Z(c, r int) float64 {
	v := s.slices[r].Values[c]
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// X 实现 plotter.GridXYZ
func (s *Spectrogram) X(c int) float64 { return units.HartreeToEV(s.slices[0].Energies[c]) }

// Y 实现 plotter.GridXYZ
func (s *Spectrogram) Y(r int) float64 { return units.AtuToFemto(s.slices[r].T) }

// flat 强度是否全部相同（无法着色）
func (s *Spectrogram) flat() bool {
	cols, rows := s.Dims()
	lo, hi := math.Inf(1), math.Inf(-1)
	for r := range rows {
		for c := range cols {
			z := s.Z(c, r)
			lo, hi = min(lo, z), max(hi, z)
		}
	}
	return !(hi > lo)
}

// Flush 绘制并保存 PNG
// 网格不足 2×2 或强度恒定时退化为最后一个时间点的谱线。
func (s *Spectrogram) Flush() error {
	if len(s.slices) == 0 {
		return nil
	}
	p := plot.New()
	p.X.Label.Text = "E_kin (eV)"
	cols, rows := s.Dims()
	if cols >= 2 && rows >= 2 && !s.flat() {
		p.Title.Text = "|J|² (t, E)"
		p.Y.Label.Text = "t (fs)"
		p.Add(plotter.NewHeatMap(s, palette.Heat(64, 1)))
	} else {
		last := s.slices[len(s.slices)-1]
		p.Title.Text = fmt.Sprintf("|J|² at %.3f fs", units.AtuToFemto(last.T))
		p.Y.Label.Text = "|J|²"
		xys := make(plotter.XYs, cols)
		for c := range xys {
			xys[c] = plotter.XY{X: s.X(c), Y: s.Z(c, len(s.slices)-1)}
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("绘制谱线: %w", err)
		}
		p.Add(line)
	}
	if err := p.Save(s.Width, s.Height, s.Path); err != nil {
		return fmt.Errorf("保存强度图 %s: %w", s.Path, err)
	}
	return nil
}
