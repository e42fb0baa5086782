// Package bytebufferpool 提供池化的字节缓冲区。
package bytebufferpool

import (
	"sync"
)

const (
	defaultSize = 4 * 1024
	// 超过该容量的缓冲区不再放回池中，避免偶发的大响应长期占用内存。
	maxSize = 1 << 20
)

// Pool 表示字节缓冲池。
//
// 不同的池可用于不同类型的字节缓冲区。
type Pool struct {
	pool sync.Pool
}

var defaultPool Pool

// Get 返回缓冲池中的一个空缓冲区。
func Get() *ByteBuffer { return defaultPool.Get() }

// Get 返回一个长度为零的字节缓冲区。
//
// 字节缓冲区可在用后通过 Put 放回池中，以最大限度减少 GC 开销。
func (p *Pool) Get() *ByteBuffer {
	v := p.pool.Get()
	if v != nil {
		return v.(*ByteBuffer)
	}
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Put 将字节缓冲区放回池中。
//
// ByteBuffer.B 放回池中以后不可再触碰，否则将引发数据竞赛。
func Put(b *ByteBuffer) { defaultPool.Put(b) }

// Put 将通过 Get 获取的字节缓冲区放入池中。
func (p *Pool) Put(b *ByteBuffer) {
	if cap(b.B) > maxSize {
		return
	}
	b.Reset()
	p.pool.Put(b)
}
