package address

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/wesign/v1/internal/core/infrastructure/crypto/hash"
	"github.com/wesign/v1/internal/core/infrastructure/crypto/key"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("hex解码失败: %v", err)
	}
	return b
}

func newTestService() *AddressService {
	return NewAddressService(key.NewKeyManager(), hash.NewHashService())
}

func TestWitnessProgram(t *testing.T) {
	addressService := newTestService()

	// 曲线生成元G的压缩公钥，BIP173参考向量
	pubKey := mustHex(t, "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	expected := mustHex(t, "751e76e8199196d454941c45d1b3a323f1433bd6")

	program, err := addressService.WitnessProgram(pubKey)
	if err != nil {
		t.Fatalf("计算见证程序失败: %v", err)
	}
	if !bytes.Equal(program, expected) {
		t.Errorf("见证程序不匹配\n得到: %x\n期望: %x", program, expected)
	}
}

func TestPublicKeyToP2WPKHAddress(t *testing.T) {
	addressService := newTestService()
	pubKey := mustHex(t, "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")

	testCases := []struct {
		name     string
		hrp      string
		expected string
	}{
		{"主网前缀", "bc", "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4"},
		{"测试网前缀", "tb", "tb1qw508d6qejxtdg4y5r3zarvary0c5xw7kxpjzsx"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			addr, err := addressService.PublicKeyToP2WPKHAddress(pubKey, tc.hrp)
			if err != nil {
				t.Fatalf("派生地址失败: %v", err)
			}
			if addr != tc.expected {
				t.Errorf("地址不匹配\n得到: %s\n期望: %s", addr, tc.expected)
			}
			if !strings.HasPrefix(addr, tc.hrp+"1") {
				t.Errorf("地址前缀错误: %s", addr)
			}
		})
	}
}

func TestPublicKeyToP2WPKHAddressRoundTrip(t *testing.T) {
	addressService := newTestService()
	keyManager := key.NewKeyManager()

	// 随机密钥下地址派生应稳定且格式正确
	_, publicKey, err := keyManager.GenerateKeyPair()
	if err != nil {
		t.Fatalf("生成密钥对失败: %v", err)
	}

	first, err := addressService.PublicKeyToP2WPKHAddress(publicKey, DefaultHRP)
	if err != nil {
		t.Fatalf("派生地址失败: %v", err)
	}
	again, err := addressService.PublicKeyToP2WPKHAddress(publicKey, DefaultHRP)
	if err != nil {
		t.Fatalf("派生地址失败: %v", err)
	}
	if first != again {
		t.Errorf("地址派生不是确定性的: %s != %s", first, again)
	}

	// P2WPKH地址定长：hrp(2) + 分隔符(1) + 数据部分(32) + 校验和(6)
	if len(first) != 42 {
		t.Errorf("P2WPKH地址长度应为42字符，得到 %d: %s", len(first), first)
	}
}

func TestPublicKeyToP2WPKHAddressInvalidInputs(t *testing.T) {
	addressService := newTestService()
	validPubKey := mustHex(t, "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")

	testCases := []struct {
		name      string
		publicKey []byte
		hrp       string
	}{
		{"空公钥", nil, "bc"},
		{"32字节公钥", validPubKey[:32], "bc"},
		{"非法前缀公钥", append([]byte{0x04}, validPubKey[1:]...), "bc"},
		{"空HRP", validPubKey, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := addressService.PublicKeyToP2WPKHAddress(tc.publicKey, tc.hrp); err == nil {
				t.Errorf("非法输入应返回错误")
			}
		})
	}
}
