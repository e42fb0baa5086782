package route

import (
	"context"
	"errors"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/favbox/breeze/pkg/common/config"
	errs "github.com/favbox/breeze/pkg/common/errors"
	"github.com/favbox/breeze/pkg/common/panics"
	"github.com/favbox/breeze/pkg/common/test/mock"
	"github.com/favbox/breeze/pkg/network"
	"github.com/favbox/breeze/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStatic(t *testing.T) string {
	root := t.TempDir()
	files := map[string]string{
		"index.html":      "<h1>index</h1>",
		"badRequest.html": "<h1>bad request</h1>",
		"notFound.html":   "<h1>not found</h1>",
		"about.html":      "<h1>about</h1>",
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(body), 0o644))
	}
	return root
}

func newTestEngine(t *testing.T, opts ...config.Option) *Engine {
	root := writeStatic(t)
	opts = append([]config.Option{{F: func(o *config.Options) { o.Root = root }}}, opts...)
	return NewEngine(config.NewOptions(opts))
}

func TestEngineHandle(t *testing.T) {
	e := newTestEngine(t)

	r := e.Handle("GET / HTTP/1.1\r\n\r\n")
	assert.Equal(t, protocol.StatusOK, r.Status)
	assert.Equal(t, "<h1>index</h1>", r.BodyString())

	r = e.Handle("GET /about.html HTTP/1.1\r\n\r\n")
	assert.Equal(t, protocol.StatusOK, r.Status)
	assert.Equal(t, "<h1>about</h1>", r.BodyString())

	r = e.Handle("GET /missing.html HTTP/1.1\r\n\r\n")
	assert.Equal(t, protocol.StatusNotFound, r.Status)
	assert.Equal(t, "<h1>not found</h1>", r.BodyString())

	r = e.Handle("GET /../index.html HTTP/1.1\r\n\r\n")
	assert.Equal(t, protocol.StatusOK, r.Status)

	r = e.Handle("BADLINE\r\n\r\n")
	assert.Equal(t, protocol.StatusBadRequest, r.Status)
	assert.Equal(t, "<h1>bad request</h1>", r.BodyString())
}

func TestEngineServe(t *testing.T) {
	e := newTestEngine(t)
	conn := mock.NewConn("GET / HTTP/1.1\r\n\r\n")
	assert.Nil(t, e.onData(context.Background(), conn))
	assert.True(t, conn.IsClosed())
	assert.Equal(t, "HTTP/1.1 200\r\nContent-Type: text/html\r\nServer: breeze\r\n\r\n<h1>index</h1>\r\n", conn.Written())

	// 空连接不视为错误
	conn = mock.NewConn("")
	assert.Nil(t, e.onData(context.Background(), conn))
	assert.True(t, conn.IsClosed())

	assert.Nil(t, e.onData(context.Background(), "not a conn"))
}

type panicServer struct{}

func (panicServer) Serve(ctx context.Context, conn network.Conn) error {
	panic(errs.ErrAssetRead)
}

func TestEngineServeRecoversPanic(t *testing.T) {
	e := newTestEngine(t)
	e.protocolServer = panicServer{}

	conn := mock.NewConn("GET / HTTP/1.1\r\n\r\n")
	err := e.Serve(context.Background(), conn)

	var rec *panics.ErrRecovered
	assert.True(t, errors.As(err, &rec))
	assert.True(t, errors.Is(err, errs.ErrAssetRead))
	assert.True(t, conn.IsClosed())
	assert.True(t, strings.HasPrefix(conn.Written(), "HTTP/1.1 500\r\n"))
}

func TestEngineStatus(t *testing.T) {
	e := newTestEngine(t)
	assert.False(t, e.IsRunning())
	assert.NotNil(t, e.Shutdown(context.Background()))
	assert.NotNil(t, e.Store())
	assert.Equal(t, "index.html", e.GetOptions().IndexDocument)

	assert.Nil(t, e.MarkAsRunning())
	assert.True(t, e.IsRunning())
	assert.True(t, errors.Is(e.MarkAsRunning(), errs.ErrAlreadyRunning))
}

func request(t *testing.T, addr, raw string) string {
	var conn net.Conn
	require.Eventually(t, func() bool {
		var err error
		conn, err = net.Dial("tcp", addr)
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)
	defer conn.Close()

	_, err := conn.Write([]byte(raw))
	require.NoError(t, err)
	b, err := io.ReadAll(conn)
	require.NoError(t, err)
	return string(b)
}

func TestEngineRun(t *testing.T) {
	e := newTestEngine(t, config.Option{F: func(o *config.Options) {
		o.Addr = "127.0.0.1:10251"
	}})
	errCh := make(chan error, 1)
	go func() { errCh <- e.Run() }()

	got := request(t, "127.0.0.1:10251", "GET /about.html HTTP/1.1\r\nUser-Agent: test client\r\n\r\n")
	assert.Equal(t, "HTTP/1.1 200\r\nContent-Type: text/html\r\nServer: breeze\r\n\r\n<h1>about</h1>\r\n", got)

	got = request(t, "127.0.0.1:10251", "DELETE /nope HTTP/1.1\r\n\r\n")
	assert.True(t, strings.HasPrefix(got, "HTTP/1.1 404\r\n"))

	assert.True(t, e.IsRunning())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.Nil(t, e.Shutdown(ctx))
	assert.Nil(t, <-errCh)
	assert.False(t, e.IsRunning())
}

// blockingServer 统计同时处理的连接数。
type blockingServer struct {
	active  int32
	peak    int32
	release chan struct{}
}

func (s *blockingServer) Serve(ctx context.Context, conn network.Conn) error {
	if _, err := conn.Read(make([]byte, 64)); err != nil {
		return err
	}
	n := atomic.AddInt32(&s.active, 1)
	for {
		p := atomic.LoadInt32(&s.peak)
		if n <= p || atomic.CompareAndSwapInt32(&s.peak, p, n) {
			break
		}
	}
	<-s.release
	atomic.AddInt32(&s.active, -1)
	_, err := conn.Write([]byte("done"))
	return err
}

func runDispatch(t *testing.T, addr string, workers, conns int) int32 {
	e := newTestEngine(t, config.Option{F: func(o *config.Options) {
		o.Addr = addr
		o.MaxWorkers = workers
	}})
	bs := &blockingServer{release: make(chan struct{})}
	e.protocolServer = bs
	go e.Run()

	var wg sync.WaitGroup
	for i := 0; i < conns; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "done", request(t, addr, "GET / HTTP/1.1\r\n\r\n"))
		}()
	}

	time.Sleep(200 * time.Millisecond)
	close(bs.release)
	wg.Wait()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.Nil(t, e.Shutdown(ctx))
	return atomic.LoadInt32(&bs.peak)
}

func TestEngineDispatchSerialized(t *testing.T) {
	assert.Equal(t, int32(1), runDispatch(t, "127.0.0.1:10252", 1, 4))
}

func TestEngineDispatchConcurrent(t *testing.T) {
	assert.Equal(t, int32(4), runDispatch(t, "127.0.0.1:10253", 8, 4))
}
