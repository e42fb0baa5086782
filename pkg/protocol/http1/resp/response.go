package resp

import (
	"io"

	"github.com/favbox/breeze/pkg/app"
	"github.com/favbox/breeze/pkg/common/bytebufferpool"
	"github.com/favbox/breeze/pkg/common/hlog"
	"github.com/favbox/breeze/pkg/protocol"
	"github.com/favbox/breeze/pkg/protocol/consts"
)

// Documents 表示预置文档在资源存储中的名称。
type Documents struct {
	Index      string
	BadRequest string
	NotFound   string
}

// DefaultDocuments 返回默认的预置文档名称。
func DefaultDocuments() Documents {
	return Documents{
		Index:      "index.html",
		BadRequest: "badRequest.html",
		NotFound:   "notFound.html",
	}
}

// Builder 负责构建各类响应。
//
// Builder 本身无可变状态，可被多个协程同时使用，每次调用都返回新的响应。
type Builder struct {
	store app.AssetStore
	docs  Documents
}

// NewBuilder 创建基于资源存储 store 和预置文档 docs 的响应构建器。
func NewBuilder(store app.AssetStore, docs Documents) *Builder {
	return &Builder{store: store, docs: docs}
}

// Documents 返回构建器使用的预置文档名称。
func (b *Builder) Documents() Documents {
	return b.docs
}

// Default 返回默认响应：HTTP/1.1，状态 200，无标头，无正文。
func (b *Builder) Default() *protocol.Response {
	return protocol.NewResponse()
}

// OK 返回带有首页文档的 200 响应。
func (b *Builder) OK() *protocol.Response {
	return b.document(protocol.StatusOK, b.docs.Index)
}

// BadRequest 返回带有错误请求文档的 400 响应。
func (b *Builder) BadRequest() *protocol.Response {
	return b.document(protocol.StatusBadRequest, b.docs.BadRequest)
}

// NotFound 返回带有未找到文档的 404 响应。
func (b *Builder) NotFound() *protocol.Response {
	return b.document(protocol.StatusNotFound, b.docs.NotFound)
}

// InternalServerError 返回 500 响应，正文为状态原因短语。
func (b *Builder) InternalServerError() *protocol.Response {
	return withBody(protocol.StatusInternalServerError, protocol.StatusInternalServerError.String())
}

// Send 读取 path 对应的资源并返回 200 响应，读取失败时返回 NotFound()。
//
// 无论资源类型如何，Content-Type 总是 text/html。
func (b *Builder) Send(path string) *protocol.Response {
	body, err := b.store.ReadText(path)
	if err != nil {
		hlog.SystemLogger().Debugf("读取资源失败，path=%s，error=%v", path, err)
		return b.NotFound()
	}
	return withBody(protocol.StatusOK, body)
}

// document 返回以预置文档为正文的响应，文档不可读时以状态原因短语代替。
func (b *Builder) document(status protocol.StatusCode, name string) *protocol.Response {
	body, err := b.store.ReadText(name)
	if err != nil {
		hlog.SystemLogger().Warnf("预置文档不可用，使用默认正文，document=%s，error=%v", name, err)
		body = status.String()
	}
	return withBody(status, body)
}

func withBody(status protocol.StatusCode, body string) *protocol.Response {
	r := protocol.NewResponse()
	r.Status = status
	r.Headers[protocol.ResponseHeaderContentType] = consts.MIMETextHTML
	r.Body = &body
	return r
}

// AppendResponse 将响应 r 的线路格式附加到 dst 并返回。
func AppendResponse(dst []byte, r *protocol.Response) []byte {
	return r.AppendTo(dst)
}

// Write 将响应 r 序列化写入 w。
func Write(r *protocol.Response, w io.Writer) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.B = AppendResponse(buf.B, r)
	_, err := buf.WriteTo(w)
	return err
}
