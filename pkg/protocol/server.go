package protocol

import (
	"context"

	"github.com/favbox/breeze/pkg/network"
)

// Server 表示协议层服务器，只需实现 Serve 方法即可。
type Server interface {
	Serve(ctx context.Context, conn network.Conn) error
}
