//go:build !windows

package netpoll

import (
	"errors"
	"io"
	"strings"
	"syscall"

	"github.com/cloudwego/netpoll"
	errs "github.com/favbox/breeze/pkg/common/errors"
	"github.com/favbox/breeze/pkg/common/hlog"
	"github.com/favbox/breeze/pkg/network"
)

// Conn 包装 netpoll 连接，统一其错误。
type Conn struct {
	netpoll.Connection
}

var _ network.Conn = (*Conn)(nil)

func (c *Conn) ToBreezeError(err error) error {
	if errors.Is(err, netpoll.ErrConnClosed) || errors.Is(err, syscall.EPIPE) {
		return errs.ErrConnectionClosed
	}
	return err
}

func (c *Conn) Read(p []byte) (int, error) {
	n, err := c.Connection.Read(p)
	if err == nil {
		return n, nil
	}
	return n, c.ToBreezeError(normalizeErr(err))
}

func (c *Conn) Write(p []byte) (int, error) {
	n, err := c.Connection.Write(p)
	return n, c.ToBreezeError(err)
}

// HandleSpecificError 判断连接错误是否需要忽略。
//
// 对端关闭或重置连接属于正常现象，不再向上报告。
func (c *Conn) HandleSpecificError(err error, remoteIP string) (needIgnore bool) {
	if errors.Is(err, errs.ErrConnectionClosed) || errors.Is(err, netpoll.ErrConnClosed) ||
		errors.Is(err, syscall.EPIPE) || errors.Is(err, syscall.ECONNRESET) {
		// flush 错误无需记录
		if !strings.Contains(err.Error(), "when flush") {
			hlog.SystemLogger().Debugf("Netpoll error=%s, remoteAddr=%s", err.Error(), remoteIP)
		}
		return true
	}
	return false
}

func normalizeErr(err error) error {
	if errors.Is(err, netpoll.ErrEOF) {
		return io.EOF
	}
	return err
}

// 将 netpoll 连接转为框架连接
func newConn(c netpoll.Connection) *Conn {
	return &Conn{Connection: c}
}
