package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"eldest"
)

var (
	opts     eldest.Options
	logLevel string
	serve    string
)

var rootCmd = &cobra.Command{
	Use:           "eldest <input>",
	Short:         "衰变共振在 XUV/IR 脉冲下的时间分辨光电子谱",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&opts.OutDir, "out", "o", ".", "输出目录")
	flags.IntVarP(&opts.Workers, "workers", "w", 0, "能量并行数（0 使用输入文件或 GOMAXPROCS）")
	flags.StringVar(&opts.OnFailure, "on-failure", "", "数值不收敛时的策略: abort 或 flag")
	flags.BoolVar(&opts.Plot, "plot", false, "输出 PNG 强度图")
	flags.BoolVar(&opts.Debug, "debug", false, "输出 JSON 记录与 HTML 图表")
	flags.StringVar(&serve, "serve", "", "扫描结束后在该地址发布图表（需要 --debug）")
	flags.StringVar(&logLevel, "log-level", "info", "日志级别")
}

// setupLogger 文本格式、完整时间戳
func setupLogger() (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(level)
	return logger, nil
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := setupLogger()
	if err != nil {
		return err
	}
	if serve != "" && !opts.Debug {
		return errors.New("--serve 需要同时开启 --debug")
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	el := eldest.New(opts, logger)
	if err := el.Load(args[0]); err != nil {
		return err
	}
	if _, err := el.Simulate(ctx); err != nil {
		return err
	}
	if serve == "" {
		return nil
	}
	logger.WithField("addr", serve).Info("发布图表")
	srv := &http.Server{Addr: serve, Handler: http.HandlerFunc(el.Charts.Handler)}
	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("运行失败")
		os.Exit(1)
	}
}
