package secp256k1

import (
	"errors"
	"math/big"
	"testing"
)

func TestCheckHashLength(t *testing.T) {
	curve := NewCurve()

	if err := curve.CheckHashLength(make([]byte, 32)); err != nil {
		t.Fatalf("32字节哈希不应返回错误: %v", err)
	}

	testCases := []struct {
		name string
		hash []byte
	}{
		{"空哈希", nil},
		{"31字节哈希", make([]byte, 31)},
		{"33字节哈希", make([]byte, 33)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := curve.CheckHashLength(tc.hash)
			if err == nil {
				t.Fatalf("非法长度应返回错误")
			}

			var lengthErr *ErrInvalidHashLength
			if !errors.As(err, &lengthErr) {
				t.Fatalf("错误类型应为ErrInvalidHashLength: %v", err)
			}
			if lengthErr.Expected != 32 || lengthErr.Got != len(tc.hash) {
				t.Errorf("错误字段不匹配: 期望%d, 实际%d", lengthErr.Expected, lengthErr.Got)
			}
		})
	}
}

func TestOrderAndHalfOrder(t *testing.T) {
	curve := NewCurve()

	order := curve.Order()
	halfOrder := curve.HalfOrder()

	// N/2 即阶数右移一位
	expected := new(big.Int).Rsh(order, 1)
	if halfOrder.Cmp(expected) != 0 {
		t.Errorf("HalfOrder应为Order>>1\n得到: %x\n期望: %x", halfOrder, expected)
	}

	// secp256k1阶数的已知值
	knownOrder, _ := new(big.Int).SetString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)
	if order.Cmp(knownOrder) != 0 {
		t.Errorf("曲线阶数不匹配: %x", order)
	}

	// 返回的是副本，修改不应影响后续调用
	order.SetInt64(0)
	if curve.Order().Cmp(knownOrder) != 0 {
		t.Errorf("Order应返回副本")
	}
}

func TestVerifyDERSignatureInvalidHashLength(t *testing.T) {
	curve := NewCurve()

	// 哈希长度非法时直接拒绝，不进入曲线验证
	if curve.VerifyDERSignature(make([]byte, 33), make([]byte, 31), make([]byte, 70)) {
		t.Errorf("非法哈希长度下验证应返回false")
	}
}
