package network

import (
	"context"
	"net"
	"syscall"
)

// Listen 按监听配置 lc 在地址 addr 上创建监听器，reusePort 为真时启用 SO_REUSEPORT。
//
// lc 为 nil 时使用零值监听配置。lc 已有 Control 时两者都会执行。
func Listen(lc *net.ListenConfig, reusePort bool, nw, addr string) (net.Listener, error) {
	cfg := net.ListenConfig{}
	if lc != nil {
		cfg = *lc
	}
	if reusePort {
		control := cfg.Control
		cfg.Control = func(network, address string, c syscall.RawConn) error {
			if control != nil {
				if err := control(network, address, c); err != nil {
					return err
				}
			}
			return reusePortControl(network, address, c)
		}
	}
	return cfg.Listen(context.Background(), nw, addr)
}
