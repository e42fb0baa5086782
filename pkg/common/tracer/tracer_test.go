package tracer

import (
	"context"
	"testing"

	"github.com/favbox/breeze/pkg/protocol"
	"github.com/stretchr/testify/assert"
)

type ctxKey string

type recordTracer struct {
	name  string
	calls *[]string
}

func (r recordTracer) Start(ctx context.Context) context.Context {
	*r.calls = append(*r.calls, "start:"+r.name)
	return context.WithValue(ctx, ctxKey(r.name), true)
}

func (r recordTracer) Finish(ctx context.Context, resp *protocol.Response, err error) {
	*r.calls = append(*r.calls, "finish:"+r.name)
}

type panicTracer struct{}

func (panicTracer) Start(ctx context.Context) context.Context { panic("start") }

func (panicTracer) Finish(ctx context.Context, resp *protocol.Response, err error) { panic("finish") }

func TestController(t *testing.T) {
	var calls []string
	c := NewController(recordTracer{"a", &calls})
	c.Append(recordTracer{"b", &calls})
	assert.True(t, c.HasTracer())

	ctx := c.DoStart(context.Background())
	assert.Equal(t, true, ctx.Value(ctxKey("a")))
	assert.Equal(t, true, ctx.Value(ctxKey("b")))
	c.DoFinish(ctx, protocol.NewResponse(), nil)

	assert.Equal(t, []string{"start:a", "start:b", "finish:b", "finish:a"}, calls)
}

func TestControllerRecover(t *testing.T) {
	c := NewController(panicTracer{})
	assert.NotPanics(t, func() {
		ctx := c.DoStart(context.Background())
		assert.NotNil(t, ctx)
		c.DoFinish(ctx, nil, nil)
	})
	assert.False(t, NewController().HasTracer())
}
