package server

import (
	"context"
	"net"
	"time"

	"github.com/favbox/breeze/pkg/common/config"
	"github.com/favbox/breeze/pkg/common/tracer"
	"github.com/favbox/breeze/pkg/common/utils"
	"github.com/favbox/breeze/pkg/network"
	"github.com/favbox/breeze/pkg/protocol/http1/resp"
)

// WithHostPorts 设置监听地址，未带端口时补上 :80。
func WithHostPorts(addr string) config.Option {
	return config.Option{F: func(o *config.Options) {
		o.Addr = utils.AddMissingPort(addr, false)
	}}
}

// WithNetwork 设置监听网络，如 "tcp4"。
func WithNetwork(nw string) config.Option {
	return config.Option{F: func(o *config.Options) {
		o.Network = nw
	}}
}

// WithRoot 设置静态资源根目录。
func WithRoot(root string) config.Option {
	return config.Option{F: func(o *config.Options) {
		o.Root = utils.TrimTrailingSlashes(root)
	}}
}

// WithDocuments 设置预置文档的名称，空名称保留原值。
func WithDocuments(docs resp.Documents) config.Option {
	return config.Option{F: func(o *config.Options) {
		if docs.Index != "" {
			o.IndexDocument = docs.Index
		}
		if docs.BadRequest != "" {
			o.BadRequestDocument = docs.BadRequest
		}
		if docs.NotFound != "" {
			o.NotFoundDocument = docs.NotFound
		}
	}}
}

// WithReadTimeout 设置读取请求的超时时间，0 代表永不超时。
func WithReadTimeout(t time.Duration) config.Option {
	return config.Option{F: func(o *config.Options) {
		o.ReadTimeout = t
	}}
}

// WithKeepAliveTimeout 设置 netpoll 空闲连接超时时长。
func WithKeepAliveTimeout(t time.Duration) config.Option {
	return config.Option{F: func(o *config.Options) {
		o.KeepAliveTimeout = t
	}}
}

// WithReadBufferSize 设置单次读取请求的缓冲大小。
func WithReadBufferSize(size int) config.Option {
	return config.Option{F: func(o *config.Options) {
		o.ReadBufferSize = size
	}}
}

// WithMaxWorkers 设置同时处理连接的最大协程数，小于 1 时按 1 处理。
func WithMaxWorkers(n int) config.Option {
	return config.Option{F: func(o *config.Options) {
		if n < 1 {
			n = 1
		}
		o.MaxWorkers = n
	}}
}

// WithMaxConnections 设置同时保持的最大连接数，0 代表不限制。
func WithMaxConnections(n int) config.Option {
	return config.Option{F: func(o *config.Options) {
		o.MaxConnections = n
	}}
}

// WithReusePort 设置是否启用 SO_REUSEPORT。
func WithReusePort(b bool) config.Option {
	return config.Option{F: func(o *config.Options) {
		o.ReusePort = b
	}}
}

// WithListenConfig 设置自定义的监听配置。
func WithListenConfig(l *net.ListenConfig) config.Option {
	return config.Option{F: func(o *config.Options) {
		o.ListenConfig = l
	}}
}

// WithTransport 设置传输器的创建函数。
func WithTransport(transporter func(options *config.Options) network.Transporter) config.Option {
	return config.Option{F: func(o *config.Options) {
		o.TransporterNewer = transporter
	}}
}

// WithNoDefaultServerHeader 设置是否不发送默认的 Server 标头。
func WithNoDefaultServerHeader(disable bool) config.Option {
	return config.Option{F: func(o *config.Options) {
		o.NoDefaultServerHeader = disable
	}}
}

// WithServerName 设置 Server 标头的值。
func WithServerName(name string) config.Option {
	return config.Option{F: func(o *config.Options) {
		o.ServerName = name
	}}
}

// WithExitWaitTimeout 设置优雅退出的等待时间。
func WithExitWaitTimeout(timeout time.Duration) config.Option {
	return config.Option{F: func(o *config.Options) {
		o.ExitWaitTimeout = timeout
	}}
}

// WithTracer 添加一个链路跟踪器。
func WithTracer(t tracer.Tracer) config.Option {
	return config.Option{F: func(o *config.Options) {
		o.Tracers = append(o.Tracers, t)
	}}
}

// WithOnAccept 设置接受连接后的回调。
func WithOnAccept(fn func(conn net.Conn) context.Context) config.Option {
	return config.Option{F: func(o *config.Options) {
		o.OnAccept = fn
	}}
}
