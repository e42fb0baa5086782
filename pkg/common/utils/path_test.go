package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 函数 AddMissingPort 只添加丢失的端口，不考虑其他错误情况。
func TestPathAddMissingPort(t *testing.T) {
	ipList := []string{"127.0.0.1", "111.111.1.1", "[0:0:0:0:0:ffff:192.1.56.10]", "[0:0:0:0:0:ffff:c0a8:101]", "www.foobar.com"}
	for _, ip := range ipList {
		assert.Equal(t, ip+":443", AddMissingPort(ip, true))
		assert.Equal(t, ip+":80", AddMissingPort(ip, false))
		customizedPort := ":8080"
		assert.Equal(t, ip+customizedPort, AddMissingPort(ip+customizedPort, true))
		assert.Equal(t, ip+customizedPort, AddMissingPort(ip+customizedPort, false))
	}
	assert.Equal(t, ":8080", AddMissingPort(":8080", false))
}

func TestTrimTrailingSlashes(t *testing.T) {
	for in, want := range map[string]string{
		"./static/":  "./static",
		"./static//": "./static",
		"static":     "static",
		"/":          "/",
		"//":         "/",
		"":           "",
	} {
		assert.Equal(t, want, TrimTrailingSlashes(in), in)
	}
}

func TestAssert(t *testing.T) {
	assert.NotPanics(t, func() { Assert(true, "ok") })
	assert.PanicsWithValue(t, "根目录不能为空", func() { Assert(false, "根目录不能为空") })
}
