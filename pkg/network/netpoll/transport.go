//go:build !windows

package netpoll

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/cloudwego/netpoll"
	"github.com/favbox/breeze/pkg/common/config"
	"github.com/favbox/breeze/pkg/common/hlog"
	"github.com/favbox/breeze/pkg/network"
	"github.com/zeromicro/go-zero/core/syncx"
)

type transporter struct {
	sync.RWMutex
	network          string
	addr             string
	keepAliveTimeout time.Duration
	readTimeout      time.Duration
	reusePort        bool
	listener         net.Listener
	eventLoop        netpoll.EventLoop
	listenConfig     *net.ListenConfig
	limit            syncx.Limit
	closed           bool
	OnAccept         func(conn net.Conn) context.Context
}

// NewTransporter 创建基于 netpoll 事件循环的传输器。
//
// 同时处理的连接数不超过 MaxWorkers。
func NewTransporter(options *config.Options) network.Transporter {
	maxWorkers := options.MaxWorkers
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &transporter{
		network:          options.Network,
		addr:             options.Addr,
		keepAliveTimeout: options.KeepAliveTimeout,
		readTimeout:      options.ReadTimeout,
		reusePort:        options.ReusePort,
		listenConfig:     options.ListenConfig,
		limit:            syncx.NewLimit(maxWorkers),
		OnAccept:         options.OnAccept,
	}
}

// ListenAndServe 绑定监听端口并开始事件循环，直到传输器被关闭。
func (t *transporter) ListenAndServe(onReq network.OnData) (err error) {
	t.Lock()
	if t.closed {
		t.Unlock()
		return nil
	}
	t.listener, err = network.Listen(t.listenConfig, t.reusePort, t.network, t.addr)
	if err != nil {
		t.Unlock()
		return err
	}

	opts := []netpoll.Option{
		netpoll.WithIdleTimeout(t.keepAliveTimeout),
		netpoll.WithOnPrepare(func(conn netpoll.Connection) context.Context {
			if t.readTimeout > 0 {
				_ = conn.SetReadTimeout(t.readTimeout)
			}
			if t.OnAccept != nil {
				return t.OnAccept(newConn(conn))
			}
			return context.Background()
		}),
	}

	t.eventLoop, err = netpoll.NewEventLoop(func(ctx context.Context, connection netpoll.Connection) error {
		t.limit.Borrow()
		defer t.limit.Return()
		conn := newConn(connection)
		if err := onReq(ctx, conn); err != nil && !conn.HandleSpecificError(err, remoteAddr(connection)) {
			return err
		}
		return nil
	}, opts...)
	ln, eventLoop := t.listener, t.eventLoop
	t.Unlock()
	if err != nil {
		_ = ln.Close()
		return err
	}

	hlog.SystemLogger().Infof("HTTP 服务器正在监听 address=%s", ln.Addr().String())
	return eventLoop.Serve(ln)
}

func remoteAddr(c netpoll.Connection) string {
	if addr := c.RemoteAddr(); addr != nil {
		return addr.String()
	}
	return ""
}

// Close 立即关闭传输器。
func (t *transporter) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()
	return t.Shutdown(ctx)
}

// Shutdown 平滑关闭传输器，等待处理中的连接结束直到 ctx 完成。
func (t *transporter) Shutdown(ctx context.Context) error {
	t.Lock()
	defer t.Unlock()
	t.closed = true
	if t.eventLoop == nil {
		return nil
	}
	return t.eventLoop.Shutdown(ctx)
}
