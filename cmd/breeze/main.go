// breeze 是一个极简的 HTTP/1.1 静态文件服务器。
package main

import (
	"errors"
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/favbox/breeze/pkg/app/server"
	"github.com/favbox/breeze/pkg/common/hlog"
	"github.com/favbox/breeze/pkg/common/tracer/promtracer"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	f, set, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	cfg, err := loadConfig(f.configPath)
	if err != nil {
		hlog.Fatalf("加载配置失败：%v", err)
	}
	cfg.merge(f, set)

	lv, err := cfg.level()
	if err != nil {
		hlog.Fatalf("%v", err)
	}
	hlog.SetLevel(lv)

	opts, err := cfg.options()
	if err != nil {
		hlog.Fatalf("%v", err)
	}

	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		opts = append(opts, server.WithTracer(promtracer.NewServerTracer(reg)))
		go serveMetrics(cfg.MetricsAddr, reg)
	}

	b := server.Default(opts...)
	b.Spin()
}

func serveMetrics(addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	hlog.Infof("指标服务正在监听 address=%s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		hlog.Errorf("指标服务退出：%v", err)
	}
}
