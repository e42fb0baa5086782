package protocol

import (
	errs "github.com/favbox/breeze/pkg/common/errors"
	"github.com/favbox/breeze/pkg/protocol/consts"
)

// Method 表示受支持的 HTTP 请求方法，零值为 GET。
type Method uint8

const (
	MethodGet Method = iota
	MethodHead
	MethodPost
	MethodPut
	MethodDelete
	MethodConnect
	MethodOptions
	MethodTrace
	MethodPatch
)

// 按目录顺序排列的方法名称，下标即 Method 值。
var methodNames = [...]string{
	MethodGet:     consts.MethodGet,
	MethodHead:    consts.MethodHead,
	MethodPost:    consts.MethodPost,
	MethodPut:     consts.MethodPut,
	MethodDelete:  consts.MethodDelete,
	MethodConnect: consts.MethodConnect,
	MethodOptions: consts.MethodOptions,
	MethodTrace:   consts.MethodTrace,
	MethodPatch:   consts.MethodPatch,
}

var methodsByName = func() map[string]Method {
	m := make(map[string]Method, len(methodNames))
	for i, name := range methodNames {
		m[name] = Method(i)
	}
	return m
}()

// String 返回方法的标准线路格式名称。
func (m Method) String() string {
	if int(m) < len(methodNames) {
		return methodNames[m]
	}
	return "UNKNOWN"
}

// Methods 按目录顺序返回全部受支持的方法。
func Methods() []Method {
	methods := make([]Method, len(methodNames))
	for i := range methodNames {
		methods[i] = Method(i)
	}
	return methods
}

// ParseMethod 将令牌解析为 Method，区分大小写且须完全匹配。
func ParseMethod(token string) (Method, error) {
	if m, ok := methodsByName[token]; ok {
		return m, nil
	}
	return 0, errs.New(errs.ErrInvalidMethod, errs.ErrorTypePublic, token)
}

// ValidateMethod 校验令牌是否为受支持的方法，成功时原样返回令牌。
func ValidateMethod(token string) (string, error) {
	if _, err := ParseMethod(token); err != nil {
		return "", err
	}
	return token, nil
}
