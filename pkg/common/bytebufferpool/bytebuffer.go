package bytebufferpool

import (
	"io"
)

// ByteBuffer 提供字节缓冲区，可最小化内存分配。
//
// ByteBuffer 用于暂存连接读取的原始请求，以及序列化后的响应。
type ByteBuffer struct {
	// B 是用于 append 操作的缓冲区。
	B []byte
}

// Len 返回字节缓冲区的大小。
func (b *ByteBuffer) Len() int {
	return len(b.B)
}

// ReadOnce 从 r 中读取一次（最多 n 个字节）并附加到 b。
//
// 与 ReadFrom 不同，ReadOnce 不会等待 io.EOF，适合“一个请求即一次可读数据块”的连接。
func (b *ByteBuffer) ReadOnce(r io.Reader, n int) (int, error) {
	start := len(b.B)
	if cap(b.B)-start < n {
		bNew := make([]byte, start, start+n)
		copy(bNew, b.B)
		b.B = bNew
	}
	nn, err := r.Read(b.B[start : start+n])
	b.B = b.B[:start+nn]
	return nn, err
}

// WriteTo 实现 io.WriterTo。
//
// 将 b 中所有数据写入 w。
func (b *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.B)
	return int64(n), err
}

// Bytes 返回 b.B，即缓冲区累计的所有字节。
func (b *ByteBuffer) Bytes() []byte {
	return b.B
}

// Write 实现 io.Writer - 附加字节切片 p 到缓冲区。
func (b *ByteBuffer) Write(p []byte) (int, error) {
	b.B = append(b.B, p...)
	return len(p), nil
}

// WriteString 附加字符串 s 到缓冲区。
func (b *ByteBuffer) WriteString(s string) (int, error) {
	b.B = append(b.B, s...)
	return len(s), nil
}

// String 返回字节缓冲区的字符串表达形式。
func (b *ByteBuffer) String() string {
	return string(b.B)
}

// Reset 将缓冲区重置为空，但保留底层存储以供将来写入使用。
func (b *ByteBuffer) Reset() {
	b.B = b.B[:0]
}
