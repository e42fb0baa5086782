package errors

import (
	"errors"
	"fmt"
)

// 网络层错误。
var (
	ErrConnectionClosed = errors.New("连接已关闭")
	ErrNothingRead      = errors.New("未读取到任何数据")
	ErrTimeout          = errors.New("超时")
	ErrAlreadyRunning   = errors.New("服务已在运行")
)

// 请求解析与路由错误。
var (
	ErrMalformedRequestLine = errors.New("请求行格式错误")
	ErrInvalidMethod        = errors.New("无效的 HTTP 方法")
	ErrInvalidEncoding      = errors.New("请求不是有效的 UTF-8 文本")
	ErrNotFound             = errors.New("资源不存在")
	ErrAssetRead            = errors.New("读取静态资源失败")
)

type ErrorType uint64

// Error 是携带类型与元信息的错误。
type Error struct {
	Err  error
	Type ErrorType
	Meta any
}

// 返回错误的消息字符串。
func (msg *Error) Error() string {
	if msg.Meta == nil {
		return msg.Err.Error()
	}
	return fmt.Sprintf("%s: %v", msg.Err.Error(), msg.Meta)
}

func (msg *Error) Unwrap() error {
	return msg.Err
}

func (msg *Error) IsType(flags ErrorType) bool {
	return (msg.Type & flags) > 0
}

func (msg *Error) SetType(flags ErrorType) *Error {
	msg.Type = flags
	return msg
}

func (msg *Error) SetMeta(data any) *Error {
	msg.Meta = data
	return msg
}

const (
	// ErrorTypePrivate 表示一个私有的错误，不应暴露给客户端。
	ErrorTypePrivate ErrorType = 1 << iota
	// ErrorTypePublic 表示一个公开的错误。
	ErrorTypePublic
	// ErrorTypeAny 表示任何其他错误。
	ErrorTypeAny
)

var _ error = (*Error)(nil)

func New(err error, t ErrorType, meta any) *Error {
	return &Error{
		Err:  err,
		Type: t,
		Meta: meta,
	}
}

func NewPublic(err string) *Error {
	return New(errors.New(err), ErrorTypePublic, nil)
}

func NewPrivate(err string) *Error {
	return New(errors.New(err), ErrorTypePrivate, nil)
}

func Newf(t ErrorType, meta any, format string, v ...any) *Error {
	return New(fmt.Errorf(format, v...), t, meta)
}

func NewPublicf(format string, v ...any) *Error {
	return New(fmt.Errorf(format, v...), ErrorTypePublic, nil)
}

func NewPrivatef(format string, v ...any) *Error {
	return New(fmt.Errorf(format, v...), ErrorTypePrivate, nil)
}
