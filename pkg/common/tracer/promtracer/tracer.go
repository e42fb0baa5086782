// Package promtracer 提供基于 Prometheus 的服务端跟踪器。
package promtracer

import (
	"context"
	"strconv"
	"time"

	"github.com/favbox/breeze/pkg/common/tracer"
	"github.com/favbox/breeze/pkg/protocol"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const labelStatus = "status"

type startTimeKey struct{}

type serverTracer struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewServerTracer 创建按状态码统计请求数与处理耗时的跟踪器，指标注册到 reg。
//
// reg 为 nil 时使用 prometheus.DefaultRegisterer。
func NewServerTracer(reg prometheus.Registerer) tracer.Tracer {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &serverTracer{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "breeze_server_requests_total",
			Help: "Total number of handled requests, by response status code.",
		}, []string{labelStatus}),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "breeze_server_handle_seconds",
			Help:    "Request handling latency in seconds, by response status code.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{labelStatus}),
	}
}

func (s *serverTracer) Start(ctx context.Context) context.Context {
	return context.WithValue(ctx, startTimeKey{}, time.Now())
}

func (s *serverTracer) Finish(ctx context.Context, resp *protocol.Response, err error) {
	status := "none"
	if resp != nil {
		status = strconv.Itoa(resp.Status.Code())
	}
	s.requests.WithLabelValues(status).Inc()
	if start, ok := ctx.Value(startTimeKey{}).(time.Time); ok {
		s.latency.WithLabelValues(status).Observe(time.Since(start).Seconds())
	}
}
