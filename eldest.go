// Package eldest 计算衰变共振在 XUV 与 IR 脉冲下的时间分辨光电子谱。
package eldest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"eldest/load"
	"eldest/output"
	"eldest/output/debug"
	"eldest/pathway"
	"eldest/sweep"
	"eldest/types"
	"eldest/units"
	"eldest/vib"
)

// 输出文件名
const (
	ResultsFile     = "eldest.out"
	FullFile        = "full.dat"
	MovieFile       = "movie.dat"
	SpectrogramFile = "spectrogram.png"
	RecordFile      = "record.json"
	ChartsFile      = "charts.html"
)

// Options 运行选项，非零值覆盖输入文件
type Options struct {
	OutDir    string // 输出目录
	Workers   int    // 能量并行数
	OnFailure string // 失败策略
	Plot      bool   // 输出 PNG 强度图
	Debug     bool   // 输出 JSON 记录与 HTML 图表
}

// Eldest 模拟器
type Eldest struct {
	Input   *types.Input
	Consts  *types.PhysicalConstants
	Options Options
	Log     logrus.FieldLogger
	Charts  *debug.Charts // Debug 开启时的历史记录
}

// New 初始化
func New(opts Options, log logrus.FieldLogger) *Eldest {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if opts.OutDir == "" {
		opts.OutDir = "."
	}
	return &Eldest{Options: opts, Log: log}
}

// Load 加载输入文件
func (el *Eldest) Load(path string) error {
	in, err := load.ReadFile(path)
	if err != nil {
		return err
	}
	return el.SetInput(in)
}

// SetInput 应用运行选项覆盖并导出物理常量
func (el *Eldest) SetInput(in *types.Input) error {
	if el.Options.Workers > 0 {
		in.Workers = el.Options.Workers
	}
	if el.Options.OnFailure != "" {
		in.OnFailure = el.Options.OnFailure
	}
	c, err := load.Constants(in)
	if err != nil {
		return err
	}
	if err := load.Check(c); err != nil {
		return err
	}
	el.Input, el.Consts = in, c
	return nil
}

// Simulate 执行扫描并写出全部结果文件
func (el *Eldest) Simulate(ctx context.Context) (stats sweep.Stats, err error) {
	if el.Consts == nil {
		return stats, errors.New("尚未加载输入")
	}
	if err := os.MkdirAll(el.Options.OutDir, 0o755); err != nil {
		return stats, err
	}
	var files []io.Closer
	defer func() {
		for _, f := range files {
			err = errors.Join(err, f.Close())
		}
	}()
	create := func(name string) (*os.File, error) {
		f, err := os.Create(filepath.Join(el.Options.OutDir, name))
		if err != nil {
			return nil, err
		}
		files = append(files, f)
		return f, nil
	}

	var writers output.Multi
	f, err := create(ResultsFile)
	if err != nil {
		return stats, err
	}
	results := output.NewResults(f)
	if err := el.header(results); err != nil {
		return stats, err
	}
	writers = append(writers, results)
	if f, err = create(FullFile); err != nil {
		return stats, err
	}
	writers = append(writers, output.NewFull(f))
	if f, err = create(MovieFile); err != nil {
		return stats, err
	}
	writers = append(writers, output.NewMovie(f))
	if el.Options.Plot {
		writers = append(writers, output.NewSpectrogram(filepath.Join(el.Options.OutDir, SpectrogramFile)))
	}
	if el.Options.Debug {
		el.Charts = &debug.Charts{}
		writers = append(writers, el.Charts)
	}

	model, err := pathway.NewModel(el.Consts)
	if err != nil {
		return stats, err
	}
	stats, err = sweep.New(el.Consts, model, el.Log).Run(ctx, writers)
	// 中断或失败时保留已完成的时间点
	err = errors.Join(err, writers.Flush())
	if err != nil {
		return stats, err
	}
	if el.Charts != nil {
		if err := el.render(create); err != nil {
			return stats, err
		}
	}
	el.Log.WithFields(logrus.Fields{
		"slices": stats.Slices,
		"points": stats.Points,
		"failed": stats.Failed,
	}).Info("扫描完成")
	return stats, nil
}

// header 写出结果日志头部并记录振动能级
func (el *Eldest) header(r *output.Results) error {
	if err := r.Line("The results were obtained with eldest"); err != nil {
		return err
	}
	if err := r.Echo(el.Input); err != nil {
		return err
	}
	if err := r.Derived(el.Consts); err != nil {
		return err
	}
	for n, e := range el.levels() {
		if err := r.Value(fmt.Sprintf("gs eigenvalue %d (eV)", n), units.HartreeToEV(e)); err != nil {
			return err
		}
	}
	return nil
}

// levels 基态 Morse 势的束缚振动能级，未给出势参数时为空
func (el *Eldest) levels() []float64 {
	in := el.Input
	if in.Mass1 <= 0 || in.Mass2 <= 0 || in.GsDe <= 0 || in.GsA <= 0 {
		return nil
	}
	m := vib.NewMorse(in.GsDe, in.GsA, vib.ReducedMass(in.Mass1, in.Mass2))
	levels := m.Levels()
	el.Log.WithFields(logrus.Fields{
		"lambda": m.Lambda(),
		"n_max":  m.MaxLevel(),
	}).Info("基态振动能级")
	for n, e := range levels {
		el.Log.WithFields(logrus.Fields{"n": n, "E_eV": units.HartreeToEV(e)}).Debug("振动本征值")
	}
	return levels
}

// render 写出 JSON 记录与 HTML 图表
func (el *Eldest) render(create func(string) (*os.File, error)) error {
	f, err := create(RecordFile)
	if err != nil {
		return err
	}
	if err := el.Charts.Record.Render(f); err != nil {
		return err
	}
	if f, err = create(ChartsFile); err != nil {
		return err
	}
	return el.Charts.Render(f)
}
