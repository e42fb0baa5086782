package bytesconv

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestB2s(t *testing.T) {
	t.Parallel()

	for _, v := range []struct {
		s string
		b []byte
	}{
		{"breeze-http", []byte("breeze-http")},
		{"breeze", []byte("breeze")},
		{"", []byte{}},
		{"", nil},
	} {
		assert.Equal(t, v.s, B2s(v.b))
	}
}

func TestAppendUint(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 7, 10, 200, 404, 65535, 1<<31 - 1} {
		assert.Equal(t, strconv.Itoa(n), string(AppendUint(nil, n)))
	}
	assert.Equal(t, "HTTP/1.1 404", string(AppendUint([]byte("HTTP/1.1 "), 404)))
	assert.Panics(t, func() { AppendUint(nil, -1) })
}

func BenchmarkB2s(b *testing.B) {
	bs := []byte("HTTP/1.1")

	b.Run("std/string", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = string(bs)
		}
	})
	b.Run("bytesconv/B2s", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = B2s(bs)
		}
	})
}
