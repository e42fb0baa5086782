//go:build !windows

package netpoll

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/favbox/breeze/pkg/common/config"
	"github.com/favbox/breeze/pkg/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransporter(t *testing.T) {
	opt := config.NewOptions([]config.Option{{F: func(o *config.Options) {
		o.Addr = "127.0.0.1:10241"
		o.MaxWorkers = 2
	}}})
	trans := NewTransporter(opt)
	go trans.ListenAndServe(func(ctx context.Context, conn any) error {
		c := conn.(network.Conn)
		defer c.Close()
		buf := make([]byte, 16)
		n, err := c.Read(buf)
		if err != nil {
			return err
		}
		_, err = c.Write(buf[:n])
		return err
	})

	var conn net.Conn
	require.Eventually(t, func() bool {
		var err error
		conn, err = net.Dial("tcp", opt.Addr)
		return err == nil
	}, time.Second, 10*time.Millisecond)
	defer conn.Close()

	_, err := conn.Write([]byte("ping"))
	require.NoError(t, err)
	got, err := io.ReadAll(conn)
	require.NoError(t, err)
	assert.Equal(t, "ping", string(got))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, trans.Shutdown(ctx))
}

func TestTransporterShutdownBeforeListen(t *testing.T) {
	trans := NewTransporter(config.NewOptions(nil))
	assert.NoError(t, trans.Close())
	assert.NoError(t, trans.ListenAndServe(nil))
}
