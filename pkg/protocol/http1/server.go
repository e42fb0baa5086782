package http1

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/favbox/breeze/internal/bytesconv"
	"github.com/favbox/breeze/internal/bytestr"
	"github.com/favbox/breeze/pkg/common/bytebufferpool"
	errs "github.com/favbox/breeze/pkg/common/errors"
	"github.com/favbox/breeze/pkg/common/hlog"
	"github.com/favbox/breeze/pkg/common/tracer"
	"github.com/favbox/breeze/pkg/network"
	"github.com/favbox/breeze/pkg/protocol"
	"github.com/favbox/breeze/pkg/protocol/http1/req"
	"github.com/favbox/breeze/pkg/protocol/http1/resp"
)

const defaultReadBufferSize = 4 * 1024

var errNothingRead = errs.New(errs.ErrNothingRead, errs.ErrorTypePrivate, "连接已关闭或未发送请求")

// Resolver 将请求目标路径解析为资源路径。
type Resolver interface {
	Validate(path string) (string, error)
}

// Option 表示 HTTP/1.1 服务器选项。
type Option struct {
	NoDefaultServerHeader bool
	ReadBufferSize        int
	ReadTimeout           time.Duration
	ServerName            string
}

// Server 表示 HTTP/1.1 服务器结构体。
//
// 实现 protocol.Server 协议服务器。每个连接只处理一个请求，
// 请求即连接上第一次可读的数据块。
type Server struct {
	Option
	Router  Resolver
	Builder *resp.Builder
	Tracer  tracer.Controller
}

var _ protocol.Server = (*Server)(nil)

// NewServer 创建新的 HTTP/1.1 服务器。
func NewServer(router Resolver, builder *resp.Builder) *Server {
	return &Server{
		Option:  Option{ReadBufferSize: defaultReadBufferSize},
		Router:  router,
		Builder: builder,
	}
}

// Handle 将原始请求文本转换为响应。
//
// 解析失败返回 400，路由失败返回 404，其余情况返回资源内容。
// Handle 是纯函数：相同的输入与资源存储总是得到相同的响应。
func (s *Server) Handle(raw string) *protocol.Response {
	r, err := req.Parse(raw)
	if err != nil {
		hlog.SystemLogger().Debugf("请求解析失败，error=%v", err)
		return s.errorResponse(err)
	}

	path, err := s.Router.Validate(r.URL)
	if err != nil {
		hlog.SystemLogger().Debugf("路由失败，method=%s，url=%s，error=%v", r.Method, r.URL, err)
		return s.errorResponse(err)
	}

	return s.Builder.Send(path)
}

// errorResponse 将内部错误转换为对应的响应。
func (s *Server) errorResponse(err error) *protocol.Response {
	switch {
	case errors.Is(err, errs.ErrNotFound), errors.Is(err, errs.ErrAssetRead):
		return s.Builder.NotFound()
	default:
		return s.Builder.BadRequest()
	}
}

// Serve 从连接读取一个请求，写回响应。连接由调用方关闭。
func (s *Server) Serve(c context.Context, conn network.Conn) (err error) {
	size := s.ReadBufferSize
	if size <= 0 {
		size = defaultReadBufferSize
	}
	if s.ReadTimeout > 0 {
		_ = conn.SetReadTimeout(s.ReadTimeout)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	n, err := buf.ReadOnce(conn, size)
	if n == 0 {
		if err == nil || errors.Is(err, io.EOF) {
			return errNothingRead
		}
		return err
	}

	ctx := c
	if s.Tracer != nil && s.Tracer.HasTracer() {
		ctx = s.Tracer.DoStart(c)
	}

	r := s.Handle(bytesconv.B2s(buf.B))
	if !s.NoDefaultServerHeader {
		r = r.WithHeader(protocol.ResponseHeaderServer, s.serverName())
	}
	hlog.SystemLogger().Debugf("响应 remote=%s，status=%d", conn.RemoteAddr(), r.Status.Code())

	err = resp.Write(r, conn)
	if s.Tracer != nil && s.Tracer.HasTracer() {
		s.Tracer.DoFinish(ctx, r, err)
	}
	return err
}

func (s *Server) serverName() string {
	if s.ServerName == "" {
		return string(bytestr.DefaultServerName)
	}
	return s.ServerName
}
