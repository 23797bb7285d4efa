// Package utils 提供字节编码工具函数
package utils

import (
	"fmt"
)

// IntToLittleEndian 将无符号整数编码为定长小端字节序列
//
// 参数：
//   - value: 待编码的整数值
//   - length: 输出字节数（1-8）
//
// 返回：
//   - []byte: 小端编码结果
//   - error: 长度非法或数值超出范围时的错误
func IntToLittleEndian(value uint64, length int) ([]byte, error) {
	if length < 1 || length > 8 {
		return nil, fmt.Errorf("编码长度无效: %d (支持1-8字节)", length)
	}

	// 检查数值是否能放入指定长度
	if length < 8 && value >= (uint64(1)<<(uint(length)*8)) {
		return nil, fmt.Errorf("数值超出%d字节范围: %d", length, value)
	}

	out := make([]byte, length)
	for i := 0; i < length; i++ {
		out[i] = byte(value >> (uint(i) * 8))
	}
	return out, nil
}

// LittleEndianToInt 将小端字节序列解码为无符号整数
//
// 参数：
//   - data: 小端字节序列（1-8字节）
//
// 返回：
//   - uint64: 解码后的整数值
//   - error: 长度非法时的错误
func LittleEndianToInt(data []byte) (uint64, error) {
	if len(data) < 1 || len(data) > 8 {
		return 0, fmt.Errorf("解码长度无效: %d (支持1-8字节)", len(data))
	}

	var value uint64
	for i := len(data) - 1; i >= 0; i-- {
		value = (value << 8) | uint64(data[i])
	}
	return value, nil
}
