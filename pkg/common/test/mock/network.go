package mock

import (
	"bytes"
	"io"
	"net"
	"strings"
	"sync"
	"time"

	errs "github.com/favbox/breeze/pkg/common/errors"
	"github.com/favbox/breeze/pkg/network"
)

var localAddr = &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 8080}

// Conn 是用于测试的内存网络连接。
//
// 读取的数据来自构造时传入的字符串，写入的数据可通过 Written 取回。
type Conn struct {
	mu          sync.Mutex
	r           *strings.Reader
	w           bytes.Buffer
	closed      bool
	readTimeout time.Duration

	// ReadErr 非空时每次读取都返回该错误。
	ReadErr error
	// WriteErr 非空时每次写入都返回该错误。
	WriteErr error
}

var _ network.Conn = (*Conn)(nil)

// NewConn 创建读取数据为 s 的测试连接。
func NewConn(s string) *Conn {
	return &Conn{r: strings.NewReader(s)}
}

func (m *Conn) Read(b []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return 0, errs.ErrConnectionClosed
	}
	if m.ReadErr != nil {
		return 0, m.ReadErr
	}
	n, err := m.r.Read(b)
	if err == io.EOF && n > 0 {
		err = nil
	}
	return n, err
}

func (m *Conn) Write(b []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return 0, errs.ErrConnectionClosed
	}
	if m.WriteErr != nil {
		return 0, m.WriteErr
	}
	return m.w.Write(b)
}

// Written 返回已写入连接的全部数据。
func (m *Conn) Written() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.w.String()
}

func (m *Conn) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// IsClosed 报告连接是否已关闭。
func (m *Conn) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// ReadTimeout 返回最近一次设置的读取超时。
func (m *Conn) ReadTimeout() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.readTimeout
}

func (m *Conn) LocalAddr() net.Addr { return localAddr }

func (m *Conn) RemoteAddr() net.Addr { return localAddr }

func (m *Conn) SetDeadline(time.Time) error { return nil }

func (m *Conn) SetReadDeadline(time.Time) error { return nil }

func (m *Conn) SetWriteDeadline(time.Time) error { return nil }

func (m *Conn) SetReadTimeout(t time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readTimeout = t
	return nil
}
