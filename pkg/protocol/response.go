package protocol

import (
	"github.com/favbox/breeze/internal/bytesconv"
	"github.com/favbox/breeze/internal/bytestr"
	"github.com/favbox/breeze/pkg/protocol/consts"
)

// Response 表示一个待发送的 HTTP 响应。
//
// Response 由响应构建器创建，构建后视为不可变，序列化一次后丢弃。
// 需要追加标头时使用 WithHeader 获取副本。
type Response struct {
	Version string
	Status  StatusCode
	Headers map[ResponseHeaderName]string
	Body    *string
}

// NewResponse 返回默认响应：HTTP/1.1，状态 OK，无标头，无正文。
func NewResponse() *Response {
	return &Response{
		Version: consts.HTTP11,
		Status:  StatusOK,
		Headers: make(map[ResponseHeaderName]string),
	}
}

// Header 返回指定响应标头的值。
func (r *Response) Header(name ResponseHeaderName) (string, bool) {
	v, ok := r.Headers[name]
	return v, ok
}

// HasBody 报告响应是否带有正文。
func (r *Response) HasBody() bool {
	return r.Body != nil
}

// BodyString 返回正文，无正文时返回空串。
func (r *Response) BodyString() string {
	if r.Body == nil {
		return ""
	}
	return *r.Body
}

// WithHeader 返回设置了指定标头的响应副本，r 本身不变。
func (r *Response) WithHeader(name ResponseHeaderName, value string) *Response {
	headers := make(map[ResponseHeaderName]string, len(r.Headers)+1)
	for k, v := range r.Headers {
		headers[k] = v
	}
	headers[name] = value
	return &Response{
		Version: r.Version,
		Status:  r.Status,
		Headers: headers,
		Body:    r.Body,
	}
}

// AppendTo 将响应的线路格式附加到 dst 并返回。
//
// 格式为 "<version> <code>\r\n"，每个标头一行 "<Name>: <value>\r\n"，
// 然后是空行 "\r\n"，有正文时再附加 "<body>\r\n"。
// 标头按目录顺序输出，因此同一响应的序列化结果总是相同的。
func (r *Response) AppendTo(dst []byte) []byte {
	dst = append(dst, r.Version...)
	dst = append(dst, bytestr.StrSpace...)
	dst = bytesconv.AppendUint(dst, r.Status.Code())
	dst = append(dst, bytestr.StrCRLF...)
	for _, name := range ResponseHeaderNames() {
		if v, ok := r.Headers[name]; ok {
			dst = append(dst, name.String()...)
			dst = append(dst, bytestr.StrColonSpace...)
			dst = append(dst, v...)
			dst = append(dst, bytestr.StrCRLF...)
		}
	}
	dst = append(dst, bytestr.StrCRLF...)
	if r.Body != nil {
		dst = append(dst, *r.Body...)
		dst = append(dst, bytestr.StrCRLF...)
	}
	return dst
}

// String 返回响应的线路格式。
func (r *Response) String() string {
	return string(r.AppendTo(nil))
}
