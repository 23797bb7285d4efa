// Package secp256k1 提供 secp256k1 椭圆曲线封装
//
// 🎯 **设计目的**：
// 封装 btcd/btcec 的 secp256k1 实现，对外提供统一的 secp256k1 曲线接口。
// 通过封装层隔离第三方库依赖，便于未来替换底层实现。
//
// 🔒 **安全原则**：
// - 使用经过验证的密码学库（btcd是Bitcoin Core的Go实现）
// - 曲线参数（阶数、生成元）为编译期常量，不存在可变的进程级状态
package secp256k1

import (
	"crypto/elliptic"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// hashLength 消息哈希长度（32字节）
const hashLength = 32

// Curve 封装 secp256k1 椭圆曲线
//
// 通过封装 btcd/btcec，提供统一的 secp256k1 曲线接口。
// 未来如果需要替换底层实现，只需修改此封装层。
type Curve struct{}

// NewCurve 创建新的 secp256k1 曲线实例
func NewCurve() *Curve {
	return &Curve{}
}

// S256 返回 secp256k1 椭圆曲线实例
//
// 返回：
//   - elliptic.Curve: secp256k1 曲线实例，可用于标量乘法等曲线运算
func (c *Curve) S256() elliptic.Curve {
	return btcec.S256()
}

// Order 返回曲线阶数N（副本）
func (c *Curve) Order() *big.Int {
	return new(big.Int).Set(btcec.S256().Params().N)
}

// HalfOrder 返回曲线阶数的一半 N/2（副本）
//
// 低S规范化的判据：s > N/2 时取 s = N - s。
func (c *Curve) HalfOrder() *big.Int {
	return new(big.Int).Rsh(btcec.S256().Params().N, 1)
}

// ParsePublicKey 解析压缩或未压缩公钥
//
// 参数：
//   - publicKey: 33字节压缩或65字节未压缩公钥
//
// 返回：
//   - *btcec.PublicKey: 解析后的公钥对象
//   - error: 公钥不合法时的错误
func (c *Curve) ParsePublicKey(publicKey []byte) (*btcec.PublicKey, error) {
	pubKey, err := btcec.ParsePubKey(publicKey)
	if err != nil {
		return nil, &ErrCurveOperation{Op: "parse_pubkey", Err: err}
	}
	return pubKey, nil
}

// CheckHashLength 校验待签名/待验证的消息哈希长度
//
// 参数：
//   - hash: 消息哈希
//
// 返回：
//   - error: 长度不为32字节时返回ErrInvalidHashLength
func (c *Curve) CheckHashLength(hash []byte) error {
	if len(hash) != hashLength {
		return &ErrInvalidHashLength{Expected: hashLength, Got: len(hash)}
	}
	return nil
}

// VerifyDERSignature 验证 DER 编码的 secp256k1 签名
//
// 参数：
//   - pubKey: 公钥（33字节压缩或65字节未压缩）
//   - hash: 消息哈希（32字节）
//   - derSig: DER编码签名（不含签名哈希字节）
//
// 返回：
//   - bool: 签名是否有效
func (c *Curve) VerifyDERSignature(pubKey, hash, derSig []byte) bool {
	if c.CheckHashLength(hash) != nil {
		return false
	}

	pubKeyObj, err := btcec.ParsePubKey(pubKey)
	if err != nil {
		return false
	}

	sigObj, err := ecdsa.ParseDERSignature(derSig)
	if err != nil {
		return false
	}

	return sigObj.Verify(hash, pubKeyObj)
}

// 错误类型定义

// ErrInvalidHashLength 哈希长度无效
type ErrInvalidHashLength struct {
	Expected int
	Got      int
}

func (e *ErrInvalidHashLength) Error() string {
	return fmt.Sprintf("无效的哈希长度: 期望 %d 字节，实际 %d 字节", e.Expected, e.Got)
}

// ErrCurveOperation 曲线运算失败
//
// 底层曲线库的失败（如无穷远点等边界情况）原样透传。
type ErrCurveOperation struct {
	Op  string
	Err error
}

func (e *ErrCurveOperation) Error() string {
	return fmt.Sprintf("曲线运算失败 [%s]: %v", e.Op, e.Err)
}

func (e *ErrCurveOperation) Unwrap() error {
	return e.Err
}
