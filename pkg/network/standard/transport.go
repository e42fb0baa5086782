package standard

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"github.com/favbox/breeze/pkg/common/config"
	"github.com/favbox/breeze/pkg/common/hlog"
	"github.com/favbox/breeze/pkg/network"
	"github.com/zeromicro/go-zero/core/threading"
	"golang.org/x/net/netutil"
)

type transport struct {
	network        string
	addr           string
	readTimeout    time.Duration
	maxWorkers     int
	maxConnections int
	reusePort      bool
	listenConfig   *net.ListenConfig
	handler        network.OnData
	runner         *threading.TaskRunner
	workers        sync.WaitGroup

	lock   sync.Mutex
	ln     net.Listener
	closed bool

	OnAccept func(conn net.Conn) context.Context
}

// NewTransporter 创建基于 net 的传输器。
//
// 每个连接由独立的协程处理，同时运行的协程数不超过 MaxWorkers，
// 达到上限时接受循环会等待空闲协程。
func NewTransporter(options *config.Options) network.Transporter {
	maxWorkers := options.MaxWorkers
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &transport{
		network:        options.Network,
		addr:           options.Addr,
		readTimeout:    options.ReadTimeout,
		maxWorkers:     maxWorkers,
		maxConnections: options.MaxConnections,
		reusePort:      options.ReusePort,
		listenConfig:   options.ListenConfig,
		runner:         threading.NewTaskRunner(maxWorkers),
		OnAccept:       options.OnAccept,
	}
}

// ListenAndServe 监听并处理连接，直到传输器被关闭。
func (t *transport) ListenAndServe(onData network.OnData) (err error) {
	t.handler = onData
	return t.serve()
}

func (t *transport) serve() (err error) {
	t.lock.Lock()
	if t.closed {
		t.lock.Unlock()
		return nil
	}
	t.ln, err = network.Listen(t.listenConfig, t.reusePort, t.network, t.addr)
	if err == nil && t.maxConnections > 0 {
		t.ln = netutil.LimitListener(t.ln, t.maxConnections)
	}
	ln := t.ln
	t.lock.Unlock()
	if err != nil {
		return err
	}
	hlog.SystemLogger().Infof("HTTP 服务器正在监听 address=%s", ln.Addr().String())

	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				hlog.SystemLogger().Warnf("接受连接超时，error=%s", err.Error())
				continue
			}
			hlog.SystemLogger().Errorf("接受连接失败，error=%s", err.Error())
			return err
		}

		ctx := context.Background()
		if t.OnAccept != nil {
			ctx = t.OnAccept(conn)
		}
		c := newConn(conn)
		if t.readTimeout > 0 {
			_ = c.SetReadTimeout(t.readTimeout)
		}

		t.lock.Lock()
		if t.closed {
			t.lock.Unlock()
			_ = c.Close()
			return nil
		}
		t.workers.Add(1)
		t.lock.Unlock()

		t.runner.Schedule(func() {
			defer t.workers.Done()
			if err := t.handler(ctx, c); err != nil {
				hlog.SystemLogger().Debugf("连接处理出错，remote=%s，error=%v", c.RemoteAddr(), err)
			}
		})
	}
}

// Close 立即关闭传输器，不等待处理中的连接。
func (t *transport) Close() error {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.closeListener()
}

func (t *transport) closeListener() error {
	t.closed = true
	if t.ln == nil {
		return nil
	}
	err := t.ln.Close()
	if errors.Is(err, net.ErrClosed) {
		return nil
	}
	return err
}

// Shutdown 关闭监听器并等待处理中的连接结束，直到 ctx 完成。
func (t *transport) Shutdown(ctx context.Context) error {
	t.lock.Lock()
	err := t.closeListener()
	t.lock.Unlock()
	if err != nil {
		hlog.SystemLogger().Warnf("关闭监听器出错，error=%s", err.Error())
	}

	done := make(chan struct{})
	go func() {
		t.workers.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
