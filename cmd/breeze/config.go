package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/favbox/breeze/pkg/app/server"
	"github.com/favbox/breeze/pkg/common/config"
	"github.com/favbox/breeze/pkg/common/hlog"
	"github.com/favbox/breeze/pkg/protocol/http1/resp"
	"gopkg.in/yaml.v3"
)

// fileConfig 是配置文件的结构，未设置的字段保留默认值。
type fileConfig struct {
	Addr            string        `yaml:"addr"`
	Network         string        `yaml:"network"`
	Root            string        `yaml:"root"`
	Documents       documents     `yaml:"documents"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	ExitWaitTimeout time.Duration `yaml:"exitWaitTimeout"`
	ReadBufferSize  int           `yaml:"readBufferSize"`
	MaxWorkers      int           `yaml:"maxWorkers"`
	MaxConnections  int           `yaml:"maxConnections"`
	ReusePort       bool          `yaml:"reusePort"`
	Transport       string        `yaml:"transport"`
	ServerName      string        `yaml:"serverName"`
	NoServerHeader  bool          `yaml:"noServerHeader"`
	LogLevel        string        `yaml:"logLevel"`
	MetricsAddr     string        `yaml:"metricsAddr"`
}

type documents struct {
	Index      string `yaml:"index"`
	BadRequest string `yaml:"badRequest"`
	NotFound   string `yaml:"notFound"`
}

// loadConfig 严格解析配置文件，path 为空时返回空配置。
func loadConfig(path string) (*fileConfig, error) {
	if path == "" {
		return &fileConfig{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件: %w", err)
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (*fileConfig, error) {
	var cfg fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &fileConfig{}, nil
		}
		return nil, fmt.Errorf("解析配置文件: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("配置文件包含多个文档或多余内容")
	}
	return &cfg, nil
}

// flags 是命令行参数，显式设置的参数覆盖配置文件。
type flags struct {
	configPath  string
	addr        string
	root        string
	logLevel    string
	transport   string
	maxWorkers  int
	metricsAddr string
}

func parseFlags(fs *flag.FlagSet, args []string) (*flags, map[string]bool, error) {
	f := &flags{}
	fs.StringVar(&f.configPath, "config", "", "YAML 配置文件路径")
	fs.StringVar(&f.addr, "addr", "", "监听地址，默认 :8080")
	fs.StringVar(&f.root, "root", "", "静态资源根目录，默认 ./static")
	fs.StringVar(&f.logLevel, "log-level", "", "日志级别：trace, debug, info, notice, warn, error, fatal")
	fs.StringVar(&f.transport, "transport", "", "传输器：standard 或 netpoll")
	fs.IntVar(&f.maxWorkers, "max-workers", 0, "同时处理连接的最大协程数，1 为串行处理")
	fs.StringVar(&f.metricsAddr, "metrics-addr", "", "Prometheus 指标监听地址，为空则不启用")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return f, set, nil
}

// merge 用显式设置的命令行参数覆盖配置文件中的值。
func (c *fileConfig) merge(f *flags, set map[string]bool) {
	if set["addr"] {
		c.Addr = f.addr
	}
	if set["root"] {
		c.Root = f.root
	}
	if set["log-level"] {
		c.LogLevel = f.logLevel
	}
	if set["transport"] {
		c.Transport = f.transport
	}
	if set["max-workers"] {
		c.MaxWorkers = f.maxWorkers
	}
	if set["metrics-addr"] {
		c.MetricsAddr = f.metricsAddr
	}
}

// level 返回配置的日志级别，未配置时为 info。
func (c *fileConfig) level() (hlog.Level, error) {
	if c.LogLevel == "" {
		return hlog.LevelInfo, nil
	}
	lv, ok := hlog.ParseLevel(c.LogLevel)
	if !ok {
		return lv, fmt.Errorf("未知的日志级别 %q", c.LogLevel)
	}
	return lv, nil
}

// options 将配置转换为服务器配置项。
func (c *fileConfig) options() ([]config.Option, error) {
	var opts []config.Option
	if c.Addr != "" {
		opts = append(opts, server.WithHostPorts(c.Addr))
	}
	if c.Network != "" {
		opts = append(opts, server.WithNetwork(c.Network))
	}
	if c.Root != "" {
		opts = append(opts, server.WithRoot(c.Root))
	}
	opts = append(opts, server.WithDocuments(resp.Documents{
		Index:      c.Documents.Index,
		BadRequest: c.Documents.BadRequest,
		NotFound:   c.Documents.NotFound,
	}))
	if c.ReadTimeout > 0 {
		opts = append(opts, server.WithReadTimeout(c.ReadTimeout))
	}
	if c.ExitWaitTimeout > 0 {
		opts = append(opts, server.WithExitWaitTimeout(c.ExitWaitTimeout))
	}
	if c.ReadBufferSize > 0 {
		opts = append(opts, server.WithReadBufferSize(c.ReadBufferSize))
	}
	if c.MaxWorkers > 0 {
		opts = append(opts, server.WithMaxWorkers(c.MaxWorkers))
	}
	if c.MaxConnections > 0 {
		opts = append(opts, server.WithMaxConnections(c.MaxConnections))
	}
	if c.ReusePort {
		opts = append(opts, server.WithReusePort(true))
	}
	if c.ServerName != "" {
		opts = append(opts, server.WithServerName(c.ServerName))
	}
	if c.NoServerHeader {
		opts = append(opts, server.WithNoDefaultServerHeader(true))
	}
	switch c.Transport {
	case "", "standard":
	default:
		newTransporter, err := transporterByName(c.Transport)
		if err != nil {
			return nil, err
		}
		opts = append(opts, server.WithTransport(newTransporter))
	}
	return opts, nil
}
