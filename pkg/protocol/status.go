package protocol

import (
	"github.com/favbox/breeze/pkg/protocol/consts"
)

// StatusCode 是受支持的响应状态，零值为 StatusOK。
type StatusCode uint8

const (
	StatusOK StatusCode = iota
	StatusBadRequest
	StatusNotFound
	StatusInternalServerError
)

var statusCodes = [...]int{
	StatusOK:                  consts.StatusOK,
	StatusBadRequest:          consts.StatusBadRequest,
	StatusNotFound:            consts.StatusNotFound,
	StatusInternalServerError: consts.StatusInternalServerError,
}

// Code 返回线路格式的数字状态码。
func (s StatusCode) Code() int {
	if int(s) < len(statusCodes) {
		return statusCodes[s]
	}
	return consts.StatusOK
}

// String 返回原因短语，仅用于日志，线路上只写数字状态码。
func (s StatusCode) String() string {
	return consts.StatusMessage(s.Code())
}
