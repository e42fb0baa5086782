package tracer

import (
	"context"
	"runtime/debug"

	"github.com/favbox/breeze/pkg/common/hlog"
	"github.com/favbox/breeze/pkg/protocol"
)

// Tracer 在一次请求处理开始和结束时执行。
type Tracer interface {
	Start(ctx context.Context) context.Context
	Finish(ctx context.Context, resp *protocol.Response, err error)
}

// Controller 跟踪控制器
type Controller interface {
	Append(col Tracer)
	DoStart(ctx context.Context) context.Context
	DoFinish(ctx context.Context, resp *protocol.Response, err error)
	HasTracer() bool
}

type controller struct {
	tracers []Tracer
}

// NewController 创建跟踪控制器。
func NewController(tracers ...Tracer) Controller {
	return &controller{tracers: append([]Tracer(nil), tracers...)}
}

// Append 添加一个跟踪器。
func (c *controller) Append(col Tracer) {
	c.tracers = append(c.tracers, col)
}

// DoStart 依次调用各跟踪器的 Start。
func (c *controller) DoStart(ctx context.Context) (ret context.Context) {
	ret = ctx
	defer c.tryRecover()
	for _, t := range c.tracers {
		ret = t.Start(ret)
	}
	return ret
}

// DoFinish 逆序调用各跟踪器的 Finish。
func (c *controller) DoFinish(ctx context.Context, resp *protocol.Response, err error) {
	defer c.tryRecover()
	for i := len(c.tracers) - 1; i >= 0; i-- {
		c.tracers[i].Finish(ctx, resp, err)
	}
}

func (c *controller) HasTracer() bool {
	return c != nil && len(c.tracers) > 0
}

func (c *controller) tryRecover() {
	if err := recover(); err != nil {
		hlog.SystemLogger().Warnf("跟踪器发生恐慌：%v\n堆栈：%s", err, debug.Stack())
	}
}
