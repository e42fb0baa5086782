package network

import (
	"net"
	"time"
)

// Conn 是服务端使用的网络连接。
type Conn interface {
	net.Conn

	// SetReadTimeout 设置此后每次读取的超时时长，0 代表永不超时。
	SetReadTimeout(t time.Duration) error
}
