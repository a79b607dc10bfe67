package debug

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/sirupsen/logrus"
)

// MaxSeries 谱线图最多绘制的时间点数
var MaxSeries = 24

// Charts 曲线绘制
type Charts struct {
	Record
}

// newLine 统一样式的折线图
func newLine(title, subtitle string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			SplitNumber: 20,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithAnimation(true),
	)
	return line
}

// selected 等间隔选取至多 MaxSeries 个时间索引，总包含最后一个
func (c *Charts) selected() []int {
	n := len(c.Time)
	if n == 0 {
		return nil
	}
	stride := max(1, (n+MaxSeries-1)/MaxSeries)
	idx := make([]int, 0, MaxSeries+1)
	for i := 0; i < n; i += stride {
		idx = append(idx, i)
	}
	if idx[len(idx)-1] != n-1 {
		idx = append(idx, n-1)
	}
	return idx
}

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	lineS := newLine("动能谱", "各时间点的 |J|² 随动能变化曲线")
	lineP := newLine("极大值", "谱极大值能量随时间变化曲线")
	// 谱线
	{
		lineS.SetXAxis(c.Energies)
		seriesS := make([]charts.SingleSeries, 0)
		for _, i := range c.selected() {
			items := make([]opts.LineData, len(c.Values[i]))
			for x, v := range c.Values[i] {
				items[x].Value = v
			}
			for _, x := range c.Failed[i] {
				items[x].Value = "-"
			}
			series := charts.SingleSeries{
				Name: fmt.Sprintf("%.3f fs", c.Time[i]),
				Data: items,
				Type: types.ChartLine,
			}
			series.InitSeriesDefaultOpts(lineS.BaseConfiguration)
			seriesS = append(seriesS, series)
		}
		lineS.MultiSeries = seriesS
	}
	// 极大值轨迹，按极大值序号分列
	{
		lineP.SetXAxis(c.Time)
		width := 0
		for _, p := range c.Peaks {
			width = max(width, len(p))
		}
		itemsP := make([][]opts.LineData, width)
		seriesP := make([]charts.SingleSeries, width)
		for k := range width {
			itemsP[k] = make([]opts.LineData, len(c.Time))
			for i := range itemsP[k] {
				itemsP[k][i].Value = "-"
			}
			seriesP[k] = charts.SingleSeries{
				Name: fmt.Sprintf("peak %d", k+1),
				Data: itemsP[k],
				Type: types.ChartLine,
			}
			seriesP[k].InitSeriesDefaultOpts(lineP.BaseConfiguration)
		}
		for i, p := range c.Peaks {
			for k, e := range p {
				itemsP[k][i].Value = e
			}
		}
		lineP.MultiSeries = seriesP
	}
	// 构建界面
	page := components.NewPage()
	page.AddCharts(
		lineS,
		lineP,
	)
	return page.Render(w)
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	if err := c.Render(w); err != nil {
		logrus.WithError(err).Error("渲染图表失败")
	}
}
