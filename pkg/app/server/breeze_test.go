package server

import (
	"errors"
	"io"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/favbox/breeze/pkg/common/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newTestOptions(t *testing.T, addr string) []config.Option {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<h1>index</h1>"), 0o644))
	return []config.Option{
		WithHostPorts(addr),
		WithRoot(root),
		WithExitWaitTimeout(time.Second),
	}
}

func get(t *testing.T, addr string) string {
	var conn net.Conn
	require.Eventually(t, func() bool {
		var err error
		conn, err = net.Dial("tcp", addr)
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)
	defer conn.Close()
	_, err := conn.Write([]byte("GET / HTTP/1.1\r\n\r\n"))
	require.NoError(t, err)
	b, err := io.ReadAll(conn)
	require.NoError(t, err)
	return string(b)
}

func TestSpinGraceful(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	b := Default(newTestOptions(t, "127.0.0.1:10261")...)
	stop := make(chan struct{})
	b.SetCustomSignalWaiter(func(err chan error) error {
		<-stop
		return nil
	})

	done := make(chan struct{})
	go func() {
		b.Spin()
		close(done)
	}()

	assert.Equal(t, "HTTP/1.1 200\r\nContent-Type: text/html\r\nServer: breeze\r\n\r\n<h1>index</h1>\r\n",
		get(t, "127.0.0.1:10261"))
	assert.True(t, b.IsRunning())

	close(stop)
	<-done
	assert.Eventually(t, func() bool { return !b.IsRunning() }, time.Second, 10*time.Millisecond)
}

func TestSpinForced(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	b := New(newTestOptions(t, "127.0.0.1:10262")...)
	stop := make(chan struct{})
	b.SetCustomSignalWaiter(func(err chan error) error {
		<-stop
		return errors.New("SIGTERM")
	})

	done := make(chan struct{})
	go func() {
		b.Spin()
		close(done)
	}()

	get(t, "127.0.0.1:10262")
	close(stop)
	<-done
	assert.Eventually(t, func() bool { return !b.IsRunning() }, time.Second, 10*time.Millisecond)
}

func TestSpinRunError(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	b := New(WithHostPorts("not-a-host:-1"))
	done := make(chan struct{})
	go func() {
		b.Spin()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Spin 未在 Run 出错后返回")
	}
}
