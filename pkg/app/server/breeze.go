package server

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/favbox/breeze/pkg/common/config"
	"github.com/favbox/breeze/pkg/common/hlog"
	"github.com/favbox/breeze/pkg/route"
)

// Breeze 是 breeze 的核心结构体。
//
// 组合了路由引擎 route.Engine 和 优雅退出函数。
type Breeze struct {
	*route.Engine
	// 用于接收信息实现优雅退出
	signalWaiter func(err chan error) error
}

// New 创建一个无默认配置的 breeze 实例。
func New(opts ...config.Option) *Breeze {
	options := config.NewOptions(opts)
	b := &Breeze{
		Engine: route.NewEngine(options),
	}
	return b
}

// Default 创建带有默认配置的 breeze 实例。
//
// 目前与 New 等价，保留该入口以便今后加入默认中间件。
func Default(opts ...config.Option) *Breeze {
	return New(opts...)
}

// Spin 运行服务器直到捕获 os.Signal 或 b.Run 返回错误。
//
// SIGTERM 触发立即关闭，SIGINT 和 SIGHUP 触发优雅关闭。
func (b *Breeze) Spin() {
	errCh := make(chan error, 1)
	go func() {
		errCh <- b.Run()
	}()

	signalWaiter := waitSignal
	if b.signalWaiter != nil {
		signalWaiter = b.signalWaiter
	}

	if err := signalWaiter(errCh); err != nil {
		hlog.SystemLogger().Errorf("收到强制退出信号，正在立即退出")
		if err = b.Engine.Close(); err != nil {
			hlog.SystemLogger().Errorf("立即退出出错：%v", err)
		}
		return
	}

	hlog.SystemLogger().Infof("开始优雅退出，最多等待 %ds", int(b.GetOptions().ExitWaitTimeout.Seconds()))
	ctx, cancel := context.WithTimeout(context.Background(), b.GetOptions().ExitWaitTimeout)
	defer cancel()

	if err := b.Shutdown(ctx); err != nil {
		hlog.SystemLogger().Errorf("优雅退出出错：%v", err)
	}
}

// SetCustomSignalWaiter 设置自定义信号等待函数。
//
// 若返回错误则立即退出，否则优雅退出。
func (b *Breeze) SetCustomSignalWaiter(f func(err chan error) error) {
	b.signalWaiter = f
}

// 默认信号处理函数：SIGTERM 立即退出，SIGHUP 和 SIGINT 优雅退出。
// 若 Run 提前返回错误，则立即退出。
func waitSignal(errCh chan error) error {
	signalToNotify := []os.Signal{syscall.SIGINT, syscall.SIGHUP, syscall.SIGTERM}
	if signal.Ignored(syscall.SIGHUP) {
		signalToNotify = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, signalToNotify...)
	defer signal.Stop(signals)

	select {
	case sig := <-signals:
		switch sig {
		case syscall.SIGTERM:
			// 强制退出
			return errors.New(sig.String())
		case syscall.SIGHUP, syscall.SIGINT:
			hlog.SystemLogger().Infof("收到信号：%s", sig)
			// 优雅退出
			return nil
		}
	case err := <-errCh:
		// 出错立即退出
		return err
	}

	return nil
}
