// Package utils 提供编码工具函数的单元测试
package utils

import (
	"bytes"
	"testing"
)

func TestIntToLittleEndian(t *testing.T) {
	tests := []struct {
		name     string
		value    uint64
		length   int
		expected []byte
		wantErr  bool
	}{
		{"单字节", 0x01, 1, []byte{0x01}, false},
		{"双字节", 0x0102, 2, []byte{0x02, 0x01}, false},
		{"四字节", 0x01020304, 4, []byte{0x04, 0x03, 0x02, 0x01}, false},
		{"八字节最大值", 0xFFFFFFFFFFFFFFFF, 8, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, false},
		{"零值", 0, 4, []byte{0x00, 0x00, 0x00, 0x00}, false},
		{"数值超出范围", 0x0100, 1, nil, true},
		{"长度为零", 1, 0, nil, true},
		{"长度超过八字节", 1, 9, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := IntToLittleEndian(tt.value, tt.length)
			if tt.wantErr {
				if err == nil {
					t.Errorf("应返回错误")
				}
				return
			}
			if err != nil {
				t.Fatalf("编码失败: %v", err)
			}
			if !bytes.Equal(result, tt.expected) {
				t.Errorf("编码结果不匹配: %x, 期望 %x", result, tt.expected)
			}
		})
	}
}

func TestLittleEndianToInt(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected uint64
		wantErr  bool
	}{
		{"单字节", []byte{0x01}, 0x01, false},
		{"双字节", []byte{0x02, 0x01}, 0x0102, false},
		{"八字节", []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, 0xFFFFFFFFFFFFFFFF, false},
		{"空输入", nil, 0, true},
		{"九字节", make([]byte, 9), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := LittleEndianToInt(tt.data)
			if tt.wantErr {
				if err == nil {
					t.Errorf("应返回错误")
				}
				return
			}
			if err != nil {
				t.Fatalf("解码失败: %v", err)
			}
			if result != tt.expected {
				t.Errorf("解码结果不匹配: %d, 期望 %d", result, tt.expected)
			}
		})
	}
}

func TestLittleEndianRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 255, 256, 65535, 1 << 32, 1<<63 - 1}

	for _, v := range values {
		encoded, err := IntToLittleEndian(v, 8)
		if err != nil {
			t.Fatalf("编码失败: %v", err)
		}
		decoded, err := LittleEndianToInt(encoded)
		if err != nil {
			t.Fatalf("解码失败: %v", err)
		}
		if decoded != v {
			t.Errorf("往返编码不一致: %d != %d", decoded, v)
		}
	}
}
