package hlog

import (
	"io"
)

const systemLogPrefix = "BREEZE: "

var sysLogger FullLogger = &systemLogger{prefix: systemLogPrefix}

// SystemLogger 返回框架内部使用的记录器，消息带有 "BREEZE: " 前缀。
//
// 其输出委托给当前的默认记录器，因此 SetLogger 同样生效。
func SystemLogger() FullLogger {
	return sysLogger
}

type systemLogger struct {
	prefix string
}

func (ll *systemLogger) SetOutput(w io.Writer) { logger.SetOutput(w) }
func (ll *systemLogger) SetLevel(lv Level)     { logger.SetLevel(lv) }

func (ll *systemLogger) Tracef(format string, v ...any) {
	logger.Tracef(ll.prefix+format, v...)
}

func (ll *systemLogger) Debugf(format string, v ...any) {
	logger.Debugf(ll.prefix+format, v...)
}

func (ll *systemLogger) Infof(format string, v ...any) {
	logger.Infof(ll.prefix+format, v...)
}

func (ll *systemLogger) Noticef(format string, v ...any) {
	logger.Noticef(ll.prefix+format, v...)
}

func (ll *systemLogger) Warnf(format string, v ...any) {
	logger.Warnf(ll.prefix+format, v...)
}

func (ll *systemLogger) Errorf(format string, v ...any) {
	logger.Errorf(ll.prefix+format, v...)
}

func (ll *systemLogger) Fatalf(format string, v ...any) {
	logger.Fatalf(ll.prefix+format, v...)
}
