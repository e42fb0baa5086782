package hlog

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var logger FullLogger = NewDefaultLogger(os.Stderr)

// SetOutput 设置默认记录器的输出目标。默认为 os.Stderr。
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetLevel 设置默认记录器的最低输出级别。默认为 LevelInfo。
func SetLevel(lv Level) {
	logger.SetLevel(lv)
}

// DefaultLogger 返回默认记录器。
func DefaultLogger() FullLogger {
	return logger
}

// SetLogger 替换默认记录器及系统记录器的底层实现。
//
// 非协程安全，须在服务启动前调用。
func SetLogger(v FullLogger) {
	logger = v
}

func Tracef(format string, v ...any)  { logger.Tracef(format, v...) }
func Debugf(format string, v ...any)  { logger.Debugf(format, v...) }
func Infof(format string, v ...any)   { logger.Infof(format, v...) }
func Noticef(format string, v ...any) { logger.Noticef(format, v...) }
func Warnf(format string, v ...any)   { logger.Warnf(format, v...) }
func Errorf(format string, v ...any)  { logger.Errorf(format, v...) }
func Fatalf(format string, v ...any)  { logger.Fatalf(format, v...) }

// NewDefaultLogger 创建一个输出到 w 的 zerolog 记录器。
func NewDefaultLogger(w io.Writer) FullLogger {
	return &defaultLogger{
		zl:    newZerolog(w),
		level: LevelInfo,
	}
}

func newZerolog(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	// 级别过滤由 defaultLogger 自行完成
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
}

type defaultLogger struct {
	mu    sync.RWMutex
	zl    zerolog.Logger
	level Level
}

func (l *defaultLogger) SetOutput(w io.Writer) {
	l.mu.Lock()
	l.zl = newZerolog(w)
	l.mu.Unlock()
}

func (l *defaultLogger) SetLevel(lv Level) {
	l.mu.Lock()
	l.level = lv
	l.mu.Unlock()
}

func (l *defaultLogger) logf(lv Level, format string, v ...any) {
	l.mu.RLock()
	if lv < l.level {
		l.mu.RUnlock()
		return
	}
	zl := l.zl
	l.mu.RUnlock()

	zl.WithLevel(zerologLevel(lv)).Msgf(format, v...)
	if lv == LevelFatal {
		os.Exit(1)
	}
}

func zerologLevel(lv Level) zerolog.Level {
	switch lv {
	case LevelTrace:
		return zerolog.TraceLevel
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo, LevelNotice:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.FatalLevel
	}
}

func (l *defaultLogger) Tracef(format string, v ...any)  { l.logf(LevelTrace, format, v...) }
func (l *defaultLogger) Debugf(format string, v ...any)  { l.logf(LevelDebug, format, v...) }
func (l *defaultLogger) Infof(format string, v ...any)   { l.logf(LevelInfo, format, v...) }
func (l *defaultLogger) Noticef(format string, v ...any) { l.logf(LevelNotice, format, v...) }
func (l *defaultLogger) Warnf(format string, v ...any)   { l.logf(LevelWarn, format, v...) }
func (l *defaultLogger) Errorf(format string, v ...any)  { l.logf(LevelError, format, v...) }
func (l *defaultLogger) Fatalf(format string, v ...any)  { l.logf(LevelFatal, format, v...) }
