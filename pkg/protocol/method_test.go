package protocol

import (
	"errors"
	"testing"

	errs "github.com/favbox/breeze/pkg/common/errors"
	"github.com/stretchr/testify/assert"
)

func TestParseMethod(t *testing.T) {
	names := []string{"GET", "HEAD", "POST", "PUT", "DELETE", "CONNECT", "OPTIONS", "TRACE", "PATCH"}
	assert.Len(t, Methods(), len(names))
	for i, name := range names {
		m, err := ParseMethod(name)
		assert.Nil(t, err)
		assert.Equal(t, Method(i), m)
		assert.Equal(t, name, m.String())

		s, err := ValidateMethod(name)
		assert.Nil(t, err)
		assert.Equal(t, name, s)
	}
}

func TestParseMethodInvalid(t *testing.T) {
	for _, token := range []string{"", "get", "Get", "FOO", " GET", "GET "} {
		_, err := ParseMethod(token)
		assert.True(t, errors.Is(err, errs.ErrInvalidMethod), token)
		_, err = ValidateMethod(token)
		assert.NotNil(t, err)
	}
	assert.Equal(t, "UNKNOWN", Method(200).String())
}
