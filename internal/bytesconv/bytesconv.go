// Package bytesconv 提供字节切片与字符串、数字之间的零分配转换。
package bytesconv

import (
	"strconv"
	"unsafe"
)

// B2s 将字节切片转为字符串，且不分配内存。
//
// 注意：返回的字符串与 b 共享底层存储，b 被修改或回收后不得再使用该字符串。
func B2s(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// AppendUint 附加非负整数 n 的十进制表示到 dst 并返回。
func AppendUint(dst []byte, n int) []byte {
	if n < 0 {
		panic("BUG：int 必须为非负数")
	}
	return strconv.AppendUint(dst, uint64(n), 10)
}
