package hash

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("hex解码失败: %v", err)
	}
	return b
}

func TestSHA256(t *testing.T) {
	hashService := NewHashService()

	testCases := []struct {
		name     string
		data     []byte
		expected string
	}{
		{
			name:     "空输入",
			data:     []byte{},
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "普通字符串",
			data:     []byte("test"),
			expected: "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := hashService.SHA256(tc.data)
			if !bytes.Equal(result, mustHex(t, tc.expected)) {
				t.Errorf("SHA256结果不匹配: %x", result)
			}
		})
	}
}

func TestDoubleSHA256(t *testing.T) {
	hashService := NewHashService()

	// dsha256("test")
	result := hashService.DoubleSHA256([]byte("test"))
	expected := mustHex(t, "954d5a49fd70d9b8bcdb35d252267829957f7ef7fa6c74f88419bdc5e82209f4")
	if !bytes.Equal(result, expected) {
		t.Errorf("DoubleSHA256结果不匹配: %x", result)
	}

	// 双重哈希等价于两次单哈希
	manual := hashService.SHA256(hashService.SHA256([]byte("test")))
	if !bytes.Equal(result, manual) {
		t.Errorf("DoubleSHA256应等价于两次SHA256")
	}
}

func TestHash160(t *testing.T) {
	hashService := NewHashService()

	// 曲线生成元G的压缩公钥，其hash160是BIP173的参考见证程序
	pubKey := mustHex(t, "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	expected := mustHex(t, "751e76e8199196d454941c45d1b3a323f1433bd6")

	result := hashService.Hash160(pubKey)
	if len(result) != 20 {
		t.Fatalf("hash160长度应为20字节，得到 %d", len(result))
	}
	if !bytes.Equal(result, expected) {
		t.Errorf("Hash160结果不匹配\n得到: %x\n期望: %x", result, expected)
	}
}

func TestConstantTimeCompare(t *testing.T) {
	a := []byte{0x01, 0x02, 0x03}
	b := []byte{0x01, 0x02, 0x03}
	c := []byte{0x01, 0x02, 0x04}

	if !ConstantTimeCompare(a, b) {
		t.Errorf("相同数据比较应返回true")
	}
	if ConstantTimeCompare(a, c) {
		t.Errorf("不同数据比较应返回false")
	}
	if ConstantTimeCompare(a, a[:2]) {
		t.Errorf("不同长度比较应返回false")
	}
}
