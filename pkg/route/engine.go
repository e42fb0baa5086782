package route

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/favbox/breeze/pkg/app"
	"github.com/favbox/breeze/pkg/common/config"
	errs "github.com/favbox/breeze/pkg/common/errors"
	"github.com/favbox/breeze/pkg/common/hlog"
	"github.com/favbox/breeze/pkg/common/panics"
	"github.com/favbox/breeze/pkg/common/tracer"
	"github.com/favbox/breeze/pkg/common/utils"
	"github.com/favbox/breeze/pkg/network"
	"github.com/favbox/breeze/pkg/network/standard"
	"github.com/favbox/breeze/pkg/protocol"
	"github.com/favbox/breeze/pkg/protocol/http1"
	"github.com/favbox/breeze/pkg/protocol/http1/resp"
)

const (
	_ uint32 = iota
	statusInitialized
	statusRunning
	statusShutdown
	statusClosed
)

var (
	defaultTransporter = standard.NewTransporter

	errStatusNotRunning = errs.NewPublic("引擎未在运行")
	errAlreadyRunning   = errs.New(errs.ErrAlreadyRunning, errs.ErrorTypePublic, nil)
)

// Engine 串联静态资源存储、路由、响应构建与传输器。
type Engine struct {
	// 引擎状态
	status uint32

	// 配置项
	options *config.Options

	// 静态资源存储
	store app.AssetStore

	// 路由
	router *Router

	// 响应构建器
	builder *resp.Builder

	// HTTP/1.1 协议服务器
	http1 *http1.Server

	// 实际处理连接的协议服务器，默认为 http1
	protocolServer protocol.Server

	// 底层网络传输器
	transport network.Transporter

	// 跟踪控制器
	tracerCtl tracer.Controller
}

// NewEngine 按配置项创建引擎。
func NewEngine(opt *config.Options) *Engine {
	utils.Assert(opt.IndexDocument != "", "默认文档名称不能为空")
	utils.Assert(opt.ReadBufferSize > 0, "读缓冲大小必须大于 0")

	engine := &Engine{
		options:   opt,
		status:    statusInitialized,
		tracerCtl: tracer.NewController(),
	}

	fs := app.NewFS(opt.Root)
	engine.store = fs
	engine.router = NewRouter(fs, opt.IndexDocument)
	engine.builder = resp.NewBuilder(fs, resp.Documents{
		Index:      opt.IndexDocument,
		BadRequest: opt.BadRequestDocument,
		NotFound:   opt.NotFoundDocument,
	})

	initTrace(engine)

	engine.http1 = http1.NewServer(engine.router, engine.builder)
	engine.http1.Option = http1.Option{
		NoDefaultServerHeader: opt.NoDefaultServerHeader,
		ReadBufferSize:        opt.ReadBufferSize,
		ReadTimeout:           opt.ReadTimeout,
		ServerName:            opt.ServerName,
	}
	if engine.tracerCtl.HasTracer() {
		engine.http1.Tracer = engine.tracerCtl
	}
	engine.protocolServer = engine.http1

	newTransporter := opt.TransporterNewer
	if newTransporter == nil {
		newTransporter = defaultTransporter
	}
	engine.transport = newTransporter(opt)

	return engine
}

func initTrace(engine *Engine) {
	for _, t := range engine.options.Tracers {
		if col, ok := t.(tracer.Tracer); ok {
			engine.tracerCtl.Append(col)
			continue
		}
		hlog.SystemLogger().Warnf("忽略不支持的跟踪器类型 %T", t)
	}
}

// GetOptions 返回引擎的配置项。
func (engine *Engine) GetOptions() *config.Options {
	return engine.options
}

// Store 返回引擎使用的静态资源存储。
func (engine *Engine) Store() app.AssetStore {
	return engine.store
}

// Handle 将原始请求文本转换为响应，不涉及网络。
func (engine *Engine) Handle(raw string) *protocol.Response {
	return engine.http1.Handle(raw)
}

// IsRunning 报告引擎是否正在运行。
func (engine *Engine) IsRunning() bool {
	return atomic.LoadUint32(&engine.status) == statusRunning
}

// MarkAsRunning 将引擎标记为运行中，重复标记返回 errs.ErrAlreadyRunning。
func (engine *Engine) MarkAsRunning() error {
	if !atomic.CompareAndSwapUint32(&engine.status, statusInitialized, statusRunning) {
		return errAlreadyRunning
	}
	return nil
}

// Run 启动传输器并阻塞，直到引擎被关闭。
func (engine *Engine) Run() (err error) {
	if err = engine.MarkAsRunning(); err != nil {
		return err
	}
	defer atomic.StoreUint32(&engine.status, statusClosed)

	hlog.SystemLogger().Infof("静态资源根目录 root=%s，默认文档=%s，并发上限=%d",
		engine.options.Root, engine.options.IndexDocument, engine.options.MaxWorkers)
	return engine.transport.ListenAndServe(engine.onData)
}

// Close 立即关闭引擎。
func (engine *Engine) Close() error {
	defer atomic.StoreUint32(&engine.status, statusClosed)
	return engine.transport.Close()
}

// Shutdown 平滑关闭引擎，等待处理中的连接结束直到 ctx 完成。
func (engine *Engine) Shutdown(ctx context.Context) error {
	if !atomic.CompareAndSwapUint32(&engine.status, statusRunning, statusShutdown) {
		return errStatusNotRunning
	}
	return engine.transport.Shutdown(ctx)
}

func (engine *Engine) onData(c context.Context, conn any) (err error) {
	switch conn := conn.(type) {
	case network.Conn:
		err = engine.Serve(c, conn)
	default:
		hlog.SystemLogger().Errorf("不支持的连接类型 %T", conn)
	}
	return
}

// Serve 处理单个连接上的一次请求，处理结束后关闭连接。
//
// 处理过程中的恐慌被捕获并记录，连接仍可写时回复 500。
func (engine *Engine) Serve(c context.Context, conn network.Conn) (err error) {
	defer func() {
		if cerr := conn.Close(); cerr != nil && err == nil && !errors.Is(cerr, errs.ErrConnectionClosed) {
			err = cerr
		}
	}()

	if r := panics.Try(func() {
		err = engine.protocolServer.Serve(c, conn)
	}); r != nil {
		hlog.SystemLogger().Errorf("连接处理发生恐慌，remote=%s，%s", conn.RemoteAddr(), r.String())
		if werr := resp.Write(engine.builder.InternalServerError(), conn); werr != nil {
			hlog.SystemLogger().Debugf("无法回复 500，error=%v", werr)
		}
		return r.AsError()
	}

	if errors.Is(err, errs.ErrNothingRead) {
		return nil
	}
	return err
}
