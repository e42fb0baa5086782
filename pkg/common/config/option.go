package config

import (
	"context"
	"net"
	"time"

	"github.com/favbox/breeze/pkg/network"
)

const (
	defaultKeepAliveTimeout = 1 * time.Minute
	defaultReadTimeout      = 3 * time.Minute
	defaultAddr             = ":8080"
	defaultNetwork          = "tcp"
	defaultRoot             = "./static"
	defaultIndexDocument    = "index.html"
	defaultBadRequestDoc    = "badRequest.html"
	defaultNotFoundDoc      = "notFound.html"
	defaultWaitExitTimeout  = 5 * time.Second
	defaultReadBufferSize   = 4 * 1024
	defaultMaxWorkers       = 1024
	defaultServerName       = "breeze"
)

// Option 是配置项 Options 唯一的配置方法结构体。
type Option struct {
	F func(o *Options)
}

// Options 是配置项的结构体。
type Options struct {
	// 空闲连接超时时长，默认 1 分钟，仅 netpoll 传输器使用。
	KeepAliveTimeout time.Duration

	// 读取请求的超时时间，默认 3 分钟，0 代表永不超时。
	ReadTimeout time.Duration

	NoDefaultServerHeader bool          // 是否不要默认的服务器名称标头
	ServerName            string        // 服务器名称标头的值，默认 "breeze"
	Network               string        // "tcp", "tcp4", "tcp6"，默认 "tcp"
	Addr                  string        // 监听地址，默认 ":8080"
	ExitWaitTimeout       time.Duration // 优雅退出的等待时间，默认 5s。
	ReadBufferSize        int           // 单次读取请求的缓冲大小，默认 4KB。超出部分被忽略。
	Tracers               []any         // 一组链路跟踪器
	ListenConfig          *net.ListenConfig

	// 静态资源根目录，默认 "./static"。
	Root string
	// 根路径 "/" 对应的默认文档。
	IndexDocument string
	// 请求格式错误时返回的文档。
	BadRequestDocument string
	// 资源不存在时返回的文档。
	NotFoundDocument string

	// 同时处理连接的最大协程数，默认 1024，为 1 时逐个串行处理。
	MaxWorkers int
	// 同时保持的最大连接数，0 代表不限制，仅标准传输器使用。
	MaxConnections int
	// 是否在监听套接字上启用 SO_REUSEPORT。
	ReusePort bool

	// TransporterNewer 是传输器的自定义创建函数。
	TransporterNewer func(opt *Options) network.Transporter

	// OnAccept 在接受连接之后、读取数据之前调用，可用于检查对端地址。
	OnAccept func(conn net.Conn) context.Context
}

// Apply 将指定的一组配置方法 opts 应用到配置项上。
func (o *Options) Apply(opts []Option) {
	for _, opt := range opts {
		opt.F(o)
	}
}

// NewOptions 创建配置项并应用指定的配置函数。
func NewOptions(opts []Option) *Options {
	options := &Options{
		KeepAliveTimeout:   defaultKeepAliveTimeout,
		ReadTimeout:        defaultReadTimeout,
		ServerName:         defaultServerName,
		Network:            defaultNetwork,
		Addr:               defaultAddr,
		ExitWaitTimeout:    defaultWaitExitTimeout,
		ReadBufferSize:     defaultReadBufferSize,
		Tracers:            []any{},
		Root:               defaultRoot,
		IndexDocument:      defaultIndexDocument,
		BadRequestDocument: defaultBadRequestDoc,
		NotFoundDocument:   defaultNotFoundDoc,
		MaxWorkers:         defaultMaxWorkers,
	}
	options.Apply(opts)
	return options
}
