package req

import (
	"strings"
	"unicode/utf8"

	errs "github.com/favbox/breeze/pkg/common/errors"
	"github.com/favbox/breeze/pkg/protocol"
)

var (
	errInvalidEncoding = errs.New(errs.ErrInvalidEncoding, errs.ErrorTypePublic, nil)
	errEmptyRequest    = errs.New(errs.ErrMalformedRequestLine, errs.ErrorTypePublic, "空请求")
)

// SplitRequest 将原始请求文本切分为请求行令牌与各标头行的令牌。
//
// 文本按 LF 分行，每行去掉一个尾随 CR，然后按空白切分为令牌。
// 遇到第一个空行即停止，其后的内容（正文）被忽略。
// 没有任何行时返回的请求行令牌为 nil。
func SplitRequest(text string) (line []string, headers [][]string) {
	first := true
	for len(text) > 0 {
		var s string
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			s, text = text[:i], text[i+1:]
		} else {
			s, text = text, ""
		}
		s = strings.TrimSuffix(s, "\r")
		if s == "" {
			break
		}
		if first {
			line = strings.Fields(s)
			first = false
			continue
		}
		headers = append(headers, strings.Fields(s))
	}
	return line, headers
}

// Parse 将原始请求文本解析为 protocol.Request。
//
// 请求行必须恰好包含方法、目标路径、版本三个令牌，方法须在方法目录中。
// 版本令牌只计数不校验。请求体不被解析，Request.Body 总为 nil。
func Parse(text string) (*protocol.Request, error) {
	if !utf8.ValidString(text) {
		return nil, errInvalidEncoding
	}

	line, headers := SplitRequest(text)
	if len(line) == 0 {
		return nil, errEmptyRequest
	}
	if len(line) != 3 {
		return nil, errs.New(errs.ErrMalformedRequestLine, errs.ErrorTypePublic, strings.Join(line, " "))
	}

	method, err := protocol.ParseMethod(line[0])
	if err != nil {
		return nil, err
	}

	return &protocol.Request{
		Method:  method,
		URL:     line[1],
		Headers: protocol.ValidateRequestHeaders(headers),
	}, nil
}
