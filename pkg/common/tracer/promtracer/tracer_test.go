package promtracer

import (
	"context"
	"testing"

	"github.com/favbox/breeze/pkg/protocol"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerTracer(t *testing.T) {
	reg := prometheus.NewRegistry()
	tr := NewServerTracer(reg)

	ok := protocol.NewResponse()
	notFound := protocol.NewResponse()
	notFound.Status = protocol.StatusNotFound

	for _, r := range []*protocol.Response{ok, ok, notFound, nil} {
		ctx := tr.Start(context.Background())
		tr.Finish(ctx, r, nil)
	}

	families, err := reg.Gather()
	require.NoError(t, err)

	counts := map[string]float64{}
	var observed uint64
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			status := m.GetLabel()[0].GetValue()
			switch mf.GetName() {
			case "breeze_server_requests_total":
				counts[status] = m.GetCounter().GetValue()
			case "breeze_server_handle_seconds":
				observed += m.GetHistogram().GetSampleCount()
			}
		}
	}
	assert.Equal(t, map[string]float64{"200": 2, "404": 1, "none": 1}, counts)
	assert.Equal(t, uint64(4), observed)
}

func TestServerTracerDuplicateRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewServerTracer(reg)
	assert.Panics(t, func() { NewServerTracer(reg) })
}
