package key

import (
	"crypto/ecdsa"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/wesign/v1/internal/core/infrastructure/crypto/secp256k1"
	cryptointf "github.com/wesign/v1/pkg/interfaces/infrastructure/crypto"
	"github.com/wesign/v1/pkg/types"
)

// 确保KeyManager实现了cryptointf.KeyManager接口
var _ cryptointf.KeyManager = (*KeyManager)(nil)

// 错误定义
var (
	ErrInvalidPrivateKey = errors.New("无效的私钥")
	ErrInvalidPublicKey  = errors.New("无效的公钥")
)

// KeyManager 提供密钥管理功能
//
// 🎯 **设计原则**：
// - 私钥从不持久化，调用方拥有密钥生命周期
// - 公钥派生是纯函数：同一私钥总是产生同一33字节压缩公钥
// - 曲线运算委托给btcd封装层，本包只负责格式与范围校验
type KeyManager struct {
	curve *secp256k1.Curve
}

// NewKeyManager 创建新的密钥管理器
func NewKeyManager() *KeyManager {
	return &KeyManager{
		curve: secp256k1.NewCurve(),
	}
}

// GenerateKeyPair 生成新的ECDSA密钥对
//
// 返回标准格式：
//   - 私钥：32字节大端标量
//   - 公钥：33字节压缩格式（Bitcoin标准）
//
// 返回:
//   - []byte: 32字节的私钥
//   - []byte: 33字节的压缩公钥
//   - error: 生成错误，成功时为nil
func (km *KeyManager) GenerateKeyPair() ([]byte, []byte, error) {
	privateKey, err := ecdsa.GenerateKey(km.curve.S256(), rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("生成密钥对失败: %w", err)
	}

	// 转换私钥为32字节
	privateKeyBytes := make([]byte, types.PrivateKeyLength)
	privateKey.D.FillBytes(privateKeyBytes)

	// 生成33字节压缩公钥
	compressedPubKey := compressPoint(privateKey.X, privateKey.Y)

	// 安全清除敏感的私钥对象
	privateKey.D = big.NewInt(0)

	return privateKeyBytes, compressedPubKey, nil
}

// DerivePublicKey 从私钥导出公钥
//
// 对曲线生成元做标量乘法，按Y坐标奇偶性编码压缩前缀。
//
// 参数:
//   - privateKey: 32字节的私钥数据
//
// 返回:
//   - []byte: 33字节压缩公钥（Bitcoin标准）
//   - error: 操作错误，无效私钥时返回ErrInvalidPrivateKey
func (km *KeyManager) DerivePublicKey(privateKey []byte) ([]byte, error) {
	if err := km.ValidatePrivateKey(privateKey); err != nil {
		return nil, err
	}

	// 计算公钥点
	x, y := km.curve.S256().ScalarBaseMult(privateKey)
	if x == nil || y == nil || (x.Sign() == 0 && y.Sign() == 0) {
		return nil, ErrInvalidPrivateKey
	}

	// 返回33字节压缩公钥
	return compressPoint(x, y), nil
}

// ValidatePrivateKey 验证私钥有效性
//
// 检查私钥是否符合secp256k1的要求
//
// 参数：
//   - privateKey: 待验证的私钥字节
//
// 返回：
//   - error: 私钥无效时返回错误
func (km *KeyManager) ValidatePrivateKey(privateKey []byte) error {
	if len(privateKey) != types.PrivateKeyLength {
		return fmt.Errorf("%w: 长度错误 %d, 期望%d字节", ErrInvalidPrivateKey, len(privateKey), types.PrivateKeyLength)
	}

	// 检查私钥是否为零
	k := new(big.Int).SetBytes(privateKey)
	defer k.SetInt64(0)
	if k.Sign() == 0 {
		return fmt.Errorf("%w: 私钥不能为零", ErrInvalidPrivateKey)
	}

	// 检查私钥是否超出secp256k1的范围
	if k.Cmp(km.curve.Order()) >= 0 {
		return fmt.Errorf("%w: 私钥超出secp256k1曲线范围", ErrInvalidPrivateKey)
	}

	return nil
}

// ValidatePublicKey 验证压缩公钥有效性
//
// 参数：
//   - publicKey: 33字节压缩公钥
//
// 返回：
//   - error: 公钥无效时返回错误
func (km *KeyManager) ValidatePublicKey(publicKey []byte) error {
	if len(publicKey) != types.CompressedPublicKeyLength {
		return fmt.Errorf("%w: 长度错误 %d, 期望%d字节", ErrInvalidPublicKey, len(publicKey), types.CompressedPublicKeyLength)
	}

	if publicKey[0] != 0x02 && publicKey[0] != 0x03 {
		return fmt.Errorf("%w: 压缩公钥前缀错误 0x%02x, 期望0x02或0x03", ErrInvalidPublicKey, publicKey[0])
	}

	// ParsePublicKey 会进行曲线上点的校验
	if _, err := km.curve.ParsePublicKey(publicKey); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}

	return nil
}

// SecureWipe 安全擦除敏感数据
//
// 使用多阶段覆盖策略确保数据无法恢复：
// 1. 随机数据覆盖
// 2. 全1覆盖
// 3. 全0覆盖
//
// 参数:
//   - data: 要擦除的数据字节切片
func SecureWipe(data []byte) {
	if len(data) == 0 {
		return
	}

	// 第一阶段：随机数据覆盖
	randomData := make([]byte, len(data))
	rand.Read(randomData)
	copy(data, randomData)

	// 第二阶段：全1覆盖
	for i := range data {
		data[i] = 0xFF
	}

	// 第三阶段：全0覆盖（最终状态）
	for i := range data {
		data[i] = 0x00
	}

	// 清除临时随机数据
	for i := range randomData {
		randomData[i] = 0
	}
}

// compressPoint 压缩公钥坐标点
func compressPoint(x, y *big.Int) []byte {
	compressedKey := make([]byte, types.CompressedPublicKeyLength)

	// 根据Y坐标的奇偶性确定前缀
	if y.Bit(0) == 0 {
		compressedKey[0] = 0x02 // Y是偶数
	} else {
		compressedKey[0] = 0x03 // Y是奇数
	}

	// 填充X坐标
	x.FillBytes(compressedKey[1:])

	return compressedKey
}
