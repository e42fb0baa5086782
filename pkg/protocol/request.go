package protocol

import (
	"strings"

	"github.com/favbox/breeze/pkg/protocol/consts"
)

// Request 表示一个已解析、已校验的 HTTP 请求。
//
// Request 由请求解析器构建一次，之后不再修改，仅归处理该连接的协程所有。
type Request struct {
	Method  Method
	URL     string
	Headers map[RequestHeaderName]string
	Body    *string
}

// Header 返回指定请求标头的值。
func (r *Request) Header(name RequestHeaderName) (string, bool) {
	v, ok := r.Headers[name]
	return v, ok
}

// String 返回请求行与标头的线路格式表示，标头按目录顺序输出，主要用于调试日志。
func (r *Request) String() string {
	var b strings.Builder
	b.WriteString(r.Method.String())
	b.WriteByte(' ')
	b.WriteString(r.URL)
	b.WriteByte(' ')
	b.WriteString(consts.HTTP11)
	b.WriteString("\r\n")
	for _, name := range RequestHeaderNames() {
		if v, ok := r.Headers[name]; ok {
			b.WriteString(name.String())
			b.WriteString(": ")
			b.WriteString(v)
			b.WriteString("\r\n")
		}
	}
	return b.String()
}
