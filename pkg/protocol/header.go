package protocol

import (
	"strings"

	"github.com/favbox/breeze/pkg/protocol/consts"
)

// RequestHeaderName 表示受支持的请求标头。
//
// 不在目录中的请求标头会在解析时被静默丢弃。
type RequestHeaderName uint8

const (
	RequestHeaderAccept RequestHeaderName = iota
	RequestHeaderAcceptEncoding
	RequestHeaderAcceptLanguage
	RequestHeaderUserAgent
	RequestHeaderAuthorization
	RequestHeaderContentType
	RequestHeaderCookie
	RequestHeaderConnection
)

var requestHeaderNames = [...]string{
	RequestHeaderAccept:         consts.HeaderAccept,
	RequestHeaderAcceptEncoding: consts.HeaderAcceptEncoding,
	RequestHeaderAcceptLanguage: consts.HeaderAcceptLanguage,
	RequestHeaderUserAgent:      consts.HeaderUserAgent,
	RequestHeaderAuthorization:  consts.HeaderAuthorization,
	RequestHeaderContentType:    consts.HeaderContentType,
	RequestHeaderCookie:         consts.HeaderCookie,
	RequestHeaderConnection:     consts.HeaderConnection,
}

var requestHeadersByName = func() map[string]RequestHeaderName {
	m := make(map[string]RequestHeaderName, len(requestHeaderNames))
	for i, name := range requestHeaderNames {
		m[name] = RequestHeaderName(i)
	}
	return m
}()

// String 返回标头的标准线路格式名称，如 "User-Agent"。
func (h RequestHeaderName) String() string {
	if int(h) < len(requestHeaderNames) {
		return requestHeaderNames[h]
	}
	return ""
}

// RequestHeaderNames 按目录顺序返回全部受支持的请求标头。
func RequestHeaderNames() []RequestHeaderName {
	names := make([]RequestHeaderName, len(requestHeaderNames))
	for i := range requestHeaderNames {
		names[i] = RequestHeaderName(i)
	}
	return names
}

// LookupRequestHeader 按标准名称查找请求标头，区分大小写。
func LookupRequestHeader(name string) (RequestHeaderName, bool) {
	h, ok := requestHeadersByName[name]
	return h, ok
}

// ResponseHeaderName 表示受支持的响应标头，仅用作输出键。
type ResponseHeaderName uint8

const (
	ResponseHeaderContentType ResponseHeaderName = iota
	ResponseHeaderCacheControl
	ResponseHeaderLocation
	ResponseHeaderSetCookie
	ResponseHeaderServer
	ResponseHeaderExpires
	ResponseHeaderContentLength
	ResponseHeaderLastModified
	ResponseHeaderKeepAlive
)

var responseHeaderNames = [...]string{
	ResponseHeaderContentType:   consts.HeaderContentType,
	ResponseHeaderCacheControl:  consts.HeaderCacheControl,
	ResponseHeaderLocation:      consts.HeaderLocation,
	ResponseHeaderSetCookie:     consts.HeaderSetCookie,
	ResponseHeaderServer:        consts.HeaderServer,
	ResponseHeaderExpires:       consts.HeaderExpires,
	ResponseHeaderContentLength: consts.HeaderContentLength,
	ResponseHeaderLastModified:  consts.HeaderLastModified,
	ResponseHeaderKeepAlive:     consts.HeaderKeepAlive,
}

var responseHeadersByName = func() map[string]ResponseHeaderName {
	m := make(map[string]ResponseHeaderName, len(responseHeaderNames))
	for i, name := range responseHeaderNames {
		m[name] = ResponseHeaderName(i)
	}
	return m
}()

// String 返回标头的标准线路格式名称，如 "Content-Type"。
func (h ResponseHeaderName) String() string {
	if int(h) < len(responseHeaderNames) {
		return responseHeaderNames[h]
	}
	return ""
}

// ResponseHeaderNames 按目录顺序返回全部受支持的响应标头。
func ResponseHeaderNames() []ResponseHeaderName {
	names := make([]ResponseHeaderName, len(responseHeaderNames))
	for i := range responseHeaderNames {
		names[i] = ResponseHeaderName(i)
	}
	return names
}

// LookupResponseHeader 按标准名称查找响应标头，区分大小写。
func LookupResponseHeader(name string) (ResponseHeaderName, bool) {
	h, ok := responseHeadersByName[name]
	return h, ok
}

// ValidateRequestHeaders 将已按空白切分的标头行解释为请求标头映射。
//
// 每行首个令牌为带冒号的标头名，如 "User-Agent:"。去掉恰好一个尾随冒号后（无冒号的行丢弃），
// 与目录做区分大小写的精确匹配；匹配成功则把其余令牌直接拼接（不加分隔符）
// 作为值，同名标头后者覆盖前者；未匹配的行被丢弃。
//
// 注意：令牌之间的空白不会保留，"User-Agent: test client" 的值是 "testclient"。
func ValidateRequestHeaders(lines [][]string) map[RequestHeaderName]string {
	headers := make(map[RequestHeaderName]string, len(lines))
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		name, ok := strings.CutSuffix(line[0], ":")
		if !ok {
			continue
		}
		h, ok := requestHeadersByName[name]
		if !ok {
			continue
		}
		headers[h] = strings.Join(line[1:], "")
	}
	return headers
}
