// Package crypto 提供WESIGN系统的密钥管理接口定义
//
// 🔑 **密钥管理服务 (Key Management Service)**
//
// 本文件定义了WESIGN系统的密钥管理接口，专注于：
// - secp256k1密钥：Bitcoin兼容的椭圆曲线密钥
// - 公钥派生：从私钥确定性派生压缩公钥
// - 密钥校验：私钥标量范围和公钥格式的验证
//
// 🎯 **核心功能**
// - KeyManager：密钥管理器接口，提供完整的密钥服务
// - 公钥派生：标准的椭圆曲线标量乘法派生
// - 安全擦除：敏感密钥数据的多重覆盖清除
//
// 🏗️ **设计原则**
// - 算法标准：完全兼容Bitcoin的secp256k1密钥格式
// - 安全可靠：私钥从不持久化，调用方拥有密钥生命周期
// - 纯函数：派生操作无共享状态，可安全并发调用
package crypto

// KeyManager 定义密钥管理相关接口
//
// 🎯 **密钥标准（Bitcoin兼容）**：
// - **私钥**：32字节大端标量，取值范围 [1, N-1]
// - **公钥**：33字节压缩SEC1编码（0x02/0x03前缀 + X坐标）
// - **曲线**：secp256k1
type KeyManager interface {
	// GenerateKeyPair 生成新的密钥对
	//
	// 返回：
	//   - []byte: 32字节私钥
	//   - []byte: 33字节压缩公钥
	//   - error: 生成失败时的错误
	GenerateKeyPair() ([]byte, []byte, error)

	// DerivePublicKey 从私钥导出压缩公钥
	//
	// 对曲线生成元做标量乘法，按Y坐标奇偶性选择0x02/0x03前缀。
	//
	// 参数:
	//   - privateKey: 32字节私钥
	//
	// 返回:
	//   - []byte: 33字节压缩公钥
	//   - error: 私钥无效时返回ErrInvalidPrivateKey
	DerivePublicKey(privateKey []byte) ([]byte, error)

	// ValidatePrivateKey 验证私钥有效性
	//
	// 检查长度为32字节、非零、小于曲线阶数。
	//
	// 参数：
	//   - privateKey: 待验证的私钥字节
	//
	// 返回：
	//   - error: 私钥无效时返回错误
	ValidatePrivateKey(privateKey []byte) error

	// ValidatePublicKey 验证压缩公钥有效性
	//
	// 参数：
	//   - publicKey: 33字节压缩公钥
	//
	// 返回：
	//   - error: 公钥无效时返回错误
	ValidatePublicKey(publicKey []byte) error
}
