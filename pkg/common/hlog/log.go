// Package hlog 是 breeze 的日志门面。
//
// 默认实现基于 zerolog 输出结构化 JSON 日志，可通过 SetLogger 替换。
package hlog

import (
	"io"
)

// Level 定义日志级别。
type Level int

// 日志级别，由低到高。
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelNotice
	LevelWarn
	LevelError
	LevelFatal
)

var strs = []string{
	"trace",
	"debug",
	"info",
	"notice",
	"warn",
	"error",
	"fatal",
}

func (lv Level) String() string {
	if lv < LevelTrace || lv > LevelFatal {
		return "unknown"
	}
	return strs[lv]
}

// ParseLevel 将级别名称解析为 Level，无法识别时返回 LevelInfo 和 false。
func ParseLevel(s string) (Level, bool) {
	for i, str := range strs {
		if str == s {
			return Level(i), true
		}
	}
	return LevelInfo, false
}

// FormatLogger 是格式化输出的日志接口。
type FormatLogger interface {
	Tracef(format string, v ...any)
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Noticef(format string, v ...any)
	Warnf(format string, v ...any)
	Errorf(format string, v ...any)
	Fatalf(format string, v ...any)
}

// Control 提供配置日志记录器的方法。
type Control interface {
	SetLevel(Level)
	SetOutput(io.Writer)
}

// FullLogger 是 Control 与 FormatLogger 的组合。
type FullLogger interface {
	FormatLogger
	Control
}
