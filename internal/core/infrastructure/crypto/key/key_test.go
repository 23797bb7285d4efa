package key

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/wesign/v1/pkg/types"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("hex解码失败: %v", err)
	}
	return b
}

func TestGenerateKeyPair(t *testing.T) {
	keyManager := NewKeyManager()

	privateKey, publicKey, err := keyManager.GenerateKeyPair()
	if err != nil {
		t.Fatalf("生成密钥对失败: %v", err)
	}

	if len(privateKey) != types.PrivateKeyLength {
		t.Errorf("私钥长度应为%d字节，得到 %d", types.PrivateKeyLength, len(privateKey))
	}
	if len(publicKey) != types.CompressedPublicKeyLength {
		t.Errorf("公钥长度应为%d字节，得到 %d", types.CompressedPublicKeyLength, len(publicKey))
	}
	if publicKey[0] != 0x02 && publicKey[0] != 0x03 {
		t.Errorf("压缩公钥前缀应为0x02或0x03，得到 0x%02x", publicKey[0])
	}

	// 生成的密钥对应通过自身校验
	if err := keyManager.ValidatePrivateKey(privateKey); err != nil {
		t.Errorf("生成的私钥未通过校验: %v", err)
	}
	if err := keyManager.ValidatePublicKey(publicKey); err != nil {
		t.Errorf("生成的公钥未通过校验: %v", err)
	}

	// 派生的公钥应与生成时返回的一致
	derived, err := keyManager.DerivePublicKey(privateKey)
	if err != nil {
		t.Fatalf("派生公钥失败: %v", err)
	}
	if !bytes.Equal(derived, publicKey) {
		t.Errorf("派生公钥与生成公钥不一致\n派生: %x\n生成: %x", derived, publicKey)
	}
}

func TestDerivePublicKeyKnownVectors(t *testing.T) {
	keyManager := NewKeyManager()

	testCases := []struct {
		name          string
		privateKeyHex string
		publicKeyHex  string
	}{
		{
			// 标量1的公钥即曲线生成元G
			name:          "私钥为1",
			privateKeyHex: "0000000000000000000000000000000000000000000000000000000000000001",
			publicKeyHex:  "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		},
		{
			name:          "私钥为2",
			privateKeyHex: "0000000000000000000000000000000000000000000000000000000000000002",
			publicKeyHex:  "02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5",
		},
		{
			name:          "随机私钥",
			privateKeyHex: "2d9131e7fccfce2c2279d120c8f9249385ca612d80ac99074825e0afdab1a97d",
			publicKeyHex:  "02fdf82a2fb391745851acf19d76197c75a6bee0bef957ffe07f8fc69e2104d77e",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			privateKey := mustHex(t, tc.privateKeyHex)
			expected := mustHex(t, tc.publicKeyHex)

			publicKey, err := keyManager.DerivePublicKey(privateKey)
			if err != nil {
				t.Fatalf("派生公钥失败: %v", err)
			}
			if !bytes.Equal(publicKey, expected) {
				t.Errorf("公钥不匹配\n得到: %x\n期望: %x", publicKey, expected)
			}
		})
	}
}

func TestDerivePublicKeyDeterministic(t *testing.T) {
	keyManager := NewKeyManager()

	privateKey, _, err := keyManager.GenerateKeyPair()
	if err != nil {
		t.Fatalf("生成密钥对失败: %v", err)
	}

	first, err := keyManager.DerivePublicKey(privateKey)
	if err != nil {
		t.Fatalf("派生公钥失败: %v", err)
	}

	for i := 0; i < 4; i++ {
		again, err := keyManager.DerivePublicKey(privateKey)
		if err != nil {
			t.Fatalf("派生公钥失败: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("公钥派生不是确定性的")
		}
	}
}

func TestValidatePrivateKey(t *testing.T) {
	keyManager := NewKeyManager()

	testCases := []struct {
		name       string
		privateKey []byte
		wantErr    bool
	}{
		{"有效私钥", mustHex(t, "0000000000000000000000000000000000000000000000000000000000000001"), false},
		{"最大有效私钥", mustHex(t, "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140"), false},
		{"空私钥", nil, true},
		{"31字节私钥", make([]byte, 31), true},
		{"33字节私钥", make([]byte, 33), true},
		{"零私钥", make([]byte, 32), true},
		{"私钥等于曲线阶数", mustHex(t, "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"), true},
		{"私钥大于曲线阶数", mustHex(t, "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := keyManager.ValidatePrivateKey(tc.privateKey)
			if tc.wantErr && err == nil {
				t.Errorf("非法私钥应返回错误")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("有效私钥不应返回错误: %v", err)
			}
			if tc.wantErr && err != nil && !errors.Is(err, ErrInvalidPrivateKey) {
				t.Errorf("错误应包含ErrInvalidPrivateKey: %v", err)
			}
		})
	}
}

func TestValidatePublicKey(t *testing.T) {
	keyManager := NewKeyManager()

	validPubKey := mustHex(t, "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")

	testCases := []struct {
		name      string
		publicKey []byte
		wantErr   bool
	}{
		{"有效压缩公钥", validPubKey, false},
		{"空公钥", nil, true},
		{"32字节公钥", validPubKey[:32], true},
		{"非压缩前缀0x04", append([]byte{0x04}, validPubKey[1:]...), true},
		{"前缀0x05", append([]byte{0x05}, validPubKey[1:]...), true},
		{"不在曲线上的点", append([]byte{0x02}, make([]byte, 32)...), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := keyManager.ValidatePublicKey(tc.publicKey)
			if tc.wantErr && err == nil {
				t.Errorf("非法公钥应返回错误")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("有效公钥不应返回错误: %v", err)
			}
		})
	}
}

func TestSecureWipe(t *testing.T) {
	keyManager := NewKeyManager()

	privateKey, _, err := keyManager.GenerateKeyPair()
	if err != nil {
		t.Fatalf("生成密钥对失败: %v", err)
	}

	SecureWipe(privateKey)
	for i, b := range privateKey {
		if b != 0 {
			t.Fatalf("擦除后第%d字节非零: 0x%02x", i, b)
		}
	}
}
