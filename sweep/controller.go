// Package sweep 按时间推进游标，在每个时间点上扫描完整的动能网格。
package sweep

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"eldest/maths"
	"eldest/pathway"
	"eldest/spectrum"
	"eldest/types"
	"eldest/units"
)

// Sink 接收按时间升序完成的谱
type Sink interface {
	Slice(s *spectrum.Slice) error
}

// SinkFunc 函数形式的 Sink
type SinkFunc func(s *spectrum.Slice) error

// Slice 实现 Sink
func (f SinkFunc) Slice(s *spectrum.Slice) error { return f(s) }

// PointError 单个 (t, E) 网格点的计算失败
type PointError struct {
	T       float64         // 时间（原子单位）
	EKin    float64         // 动能（原子单位）
	Channel pathway.Channel // 失败的通路
	Err     error
}

func (e *PointError) Error() string {
	return fmt.Sprintf("t = %.3f fs (%g au), E_kin = %.6f eV (%g au), %s 通路: %v",
		units.AtuToFemto(e.T), e.T, units.HartreeToEV(e.EKin), e.EKin, e.Channel, e.Err)
}

func (e *PointError) Unwrap() error { return e.Err }

// newPointError 附加网格点上下文
func newPointError(t, e float64, err error) *PointError {
	perr := &PointError{T: t, EKin: e, Err: err}
	var ce *pathway.ChannelError
	if errors.As(err, &ce) {
		perr.Channel = ce.Channel
		perr.Err = ce.Err
	}
	return perr
}

// Stats 扫描统计
type Stats struct {
	Slices int // 时间点数
	Points int // 网格点数
	Failed int // 标记为不收敛的点数
}

// Controller 区域扫描控制器
type Controller struct {
	Model    *pathway.Model           // 振幅模型
	Consts   *types.PhysicalConstants // 物理常量
	Energies []float64                // 动能网格
	Limits   Limits                   // 区域界限
	Workers  int                      // 每个时间点的并行数
	Policy   types.FailurePolicy      // 不收敛处理策略
	Log      logrus.FieldLogger       // 日志
}

// New 创建扫描控制器
func New(c *types.PhysicalConstants, m *pathway.Model, log logrus.FieldLogger) *Controller {
	return &Controller{
		Model:    m,
		Consts:   c,
		Energies: EnergyGrid(c.EMin, c.EMax, c.EStep),
		Limits: Limits{
			Half:      c.XUV.End(),
			Threshold: c.IR.Threshold(),
			TMax:      c.TMax,
		},
		Workers: max(c.Workers, 1),
		Policy:  c.Policy,
		Log:     log,
	}
}

// Run 从 -TX/2 开始推进时间游标直到离开覆盖区域
func (c *Controller) Run(ctx context.Context, sink Sink) (Stats, error) {
	var stats Stats
	if c.Consts.TimeStep <= 0 {
		return stats, errors.New("时间步长必须大于0")
	}
	cursor := NewCursor(c.Consts.XUV.Start(), c.Consts.TimeStep)
	regime := RegimeInsideXUV
	for {
		t := cursor.T()
		if regime = c.Limits.Next(regime, t); regime == RegimeDone {
			break
		}
		log := c.Log.WithFields(logrus.Fields{"regime": regime.String(), "t_fs": units.AtuToFemto(t)})
		log.Info("计算时间点")

		slice, err := c.Slice(ctx, regime, t)
		if err != nil {
			return stats, err
		}
		for _, p := range slice.Peaks() {
			log.WithFields(logrus.Fields{"E_eV": units.HartreeToEV(p.Energy), "value": p.Value}).Debug("局部极大值")
		}
		stats.Slices++
		stats.Points += slice.Len()
		stats.Failed += len(slice.Failed)
		if err := sink.Slice(slice); err != nil {
			return stats, err
		}
		cursor.Next()
	}
	return stats, nil
}

// Slice 计算单个时间点的完整动能谱
// 能量点并行计算，结果按能量索引写回后再顺序合并。
func (c *Controller) Slice(ctx context.Context, regime Regime, t float64) (*spectrum.Slice, error) {
	lower, upper := regime.Bounds(t, c.Consts.XUV)
	state := c.Consts.State(0)
	values := make([]float64, len(c.Energies))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.Workers)
	for i, e := range c.Energies {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			amp, err := c.Model.Evaluate(pathway.Point{
				T: t, EKin: e, Lower: lower, Upper: upper, State: state,
			})
			if err != nil {
				perr := newPointError(t, e, err)
				if c.Policy != types.PolicyFlag || !errors.Is(err, maths.ErrNoConvergence) {
					return perr
				}
				c.Log.WithError(perr).Warn("数值积分不收敛，标记该点")
				values[i] = math.NaN()
				return nil
			}
			values[i] = amp.Square()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slice := spectrum.NewSlice(t, regime.String(), c.Energies)
	for _, v := range values {
		if err := slice.Append(v); err != nil {
			return nil, err
		}
	}
	return slice, nil
}
