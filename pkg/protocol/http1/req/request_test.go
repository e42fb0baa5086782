package req

import (
	"errors"
	"testing"

	errs "github.com/favbox/breeze/pkg/common/errors"
	"github.com/favbox/breeze/pkg/protocol"
	"github.com/stretchr/testify/assert"
)

func TestSplitRequest(t *testing.T) {
	line, headers := SplitRequest("GET / HTTP/1.1\r\nUser-Agent: test client\r\nAccept: */*\r\n\r\nbody here")
	assert.Equal(t, []string{"GET", "/", "HTTP/1.1"}, line)
	assert.Equal(t, [][]string{{"User-Agent:", "test", "client"}, {"Accept:", "*/*"}}, headers)

	line, headers = SplitRequest("GET /a.html HTTP/1.1\nAccept: */*")
	assert.Equal(t, []string{"GET", "/a.html", "HTTP/1.1"}, line)
	assert.Equal(t, [][]string{{"Accept:", "*/*"}}, headers)

	line, headers = SplitRequest("")
	assert.Nil(t, line)
	assert.Nil(t, headers)
}

func TestParse(t *testing.T) {
	r, err := Parse("GET / HTTP/1.1\r\nUser-Agent: test client\r\nAccept: */*\r\nX-Foo: bar\r\n\r\n")
	assert.Nil(t, err)
	assert.Equal(t, protocol.MethodGet, r.Method)
	assert.Equal(t, "/", r.URL)
	assert.Nil(t, r.Body)
	assert.Equal(t, map[protocol.RequestHeaderName]string{
		protocol.RequestHeaderUserAgent: "testclient",
		protocol.RequestHeaderAccept:    "*/*",
	}, r.Headers)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		text string
		want error
	}{
		{"", errs.ErrMalformedRequestLine},
		{"\r\n", errs.ErrMalformedRequestLine},
		{"GET /\r\n\r\n", errs.ErrMalformedRequestLine},
		{"GET / HTTP/1.1 extra\r\n\r\n", errs.ErrMalformedRequestLine},
		{"FOO / HTTP/1.1\r\n\r\n", errs.ErrInvalidMethod},
		{"get / HTTP/1.1\r\n\r\n", errs.ErrInvalidMethod},
		{"GET /\xff HTTP/1.1\r\n\r\n", errs.ErrInvalidEncoding},
	}
	for _, c := range cases {
		_, err := Parse(c.text)
		assert.True(t, errors.Is(err, c.want), "%q: %v", c.text, err)
	}
}

// 请求序列化后再解析应得到等价的请求。
func TestParseRoundTrip(t *testing.T) {
	for _, m := range protocol.Methods() {
		r := &protocol.Request{
			Method: m,
			URL:    "/page.html",
			Headers: map[protocol.RequestHeaderName]string{
				protocol.RequestHeaderCookie:    "a=b",
				protocol.RequestHeaderUserAgent: "curl/8.0",
			},
		}
		got, err := Parse(r.String() + "\r\n")
		assert.Nil(t, err)
		assert.Equal(t, r, got)
	}
}
