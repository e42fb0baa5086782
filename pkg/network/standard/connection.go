package standard

import (
	"errors"
	"io"
	"net"
	"syscall"
	"time"

	errs "github.com/favbox/breeze/pkg/common/errors"
	"github.com/favbox/breeze/pkg/network"
)

// Conn 实现基于 net 的网络连接。
type Conn struct {
	net.Conn
}

var _ network.Conn = (*Conn)(nil)

func newConn(c net.Conn) *Conn {
	return &Conn{Conn: c}
}

// SetReadTimeout 通过读截止时间实现读取超时，每次调用都从当前时刻重新计时。
func (c *Conn) SetReadTimeout(t time.Duration) error {
	if t <= 0 {
		return c.Conn.SetReadDeadline(time.Time{})
	}
	return c.Conn.SetReadDeadline(time.Now().Add(t))
}

func (c *Conn) Read(b []byte) (int, error) {
	n, err := c.Conn.Read(b)
	return n, c.ToBreezeError(err)
}

func (c *Conn) Write(b []byte) (int, error) {
	n, err := c.Conn.Write(b)
	return n, c.ToBreezeError(err)
}

// ToBreezeError 将底层的连接错误统一为框架错误。
func (c *Conn) ToBreezeError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, syscall.EPIPE) || errors.Is(err, syscall.ENOTCONN) || errors.Is(err, net.ErrClosed) || errors.Is(err, io.ErrClosedPipe) {
		return errs.ErrConnectionClosed
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return errs.ErrTimeout
	}
	return err
}
