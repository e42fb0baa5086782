package consts

// 内容协商类
const (
	HeaderAccept         = "Accept"
	HeaderAcceptEncoding = "Accept-Encoding"
	HeaderAcceptLanguage = "Accept-Language"
)

// 请求上下文类
const (
	HeaderUserAgent = "User-Agent"
)

// 鉴权类
const (
	HeaderAuthorization = "Authorization"
)

// 消息体信息
const (
	HeaderContentType   = "Content-Type"
	HeaderContentLength = "Content-Length"
)

// 控制类
const (
	HeaderCookie    = "Cookie"
	HeaderSetCookie = "Set-Cookie"
)

// 连接管理类
const (
	HeaderConnection = "Connection"
	HeaderKeepAlive  = "Keep-Alive"
)

// 缓存类
const (
	HeaderCacheControl = "Cache-Control"
	HeaderExpires      = "Expires"
	HeaderLastModified = "Last-Modified"
)

// 响应上下文类
const (
	HeaderLocation = "Location" // 重定向
	HeaderServer   = "Server"
)

// 标头值
const (
	MIMETextHTML = "text/html"
)

// 协议类
const (
	HTTP11 = "HTTP/1.1"
	HTTP10 = "HTTP/1.0"
)
