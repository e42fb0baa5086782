//go:build windows

package network

import (
	"syscall"

	"github.com/favbox/breeze/pkg/common/hlog"
)

func reusePortControl(_, _ string, _ syscall.RawConn) error {
	hlog.SystemLogger().Warnf("当前平台不支持 SO_REUSEPORT，已忽略")
	return nil
}
