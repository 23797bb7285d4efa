// Package crypto 提供WESIGN系统的数字签名接口定义
//
// ✍️ **数字签名服务 (Digital Signature Service)**
//
// 本文件定义了WESIGN系统的数字签名接口，专注于：
// - secp256k1签名：Bitcoin兼容的ECDSA数字签名算法
// - 确定性签名：RFC 6979确定性随机数，同一输入产生字节一致的输出
// - 规范化形式：低S值（BIP62）强制，消除签名可延展性
// - DER编码：标准 SEQUENCE{INTEGER r, INTEGER s} 结构，最小长度整数编码
//
// 🎯 **核心功能**
// - SignatureManager：签名管理器接口，提供完整的承诺签名服务
// - 承诺签名：对32字节承诺哈希的签名（哈希由调用方预先计算）
// - 签名验证：对签名有效性和承诺完整性的验证
//
// 🏗️ **设计原则**
// - 算法标准：完全兼容Bitcoin的secp256k1签名算法
// - 可复现性：RFC 6979确定性随机数，杜绝随机数复用风险
// - 规范输出：低S规范化在DER编码前完成，绝不输出高S签名
//
// 🔗 **组件关系**
// - SignatureManager：被见证构建器、CLI工具等模块使用
// - 与KeyManager：依赖密钥管理服务进行私钥校验
package crypto

import "github.com/wesign/v1/pkg/types"

// 兼容别名（签名哈希类型定义在 pkg/types）
type SignatureHashType = types.SignatureHashType

// 常量别名
const (
	SigHashAll                = types.SigHashAll
	SigHashNone               = types.SigHashNone
	SigHashSingle             = types.SigHashSingle
	SigHashAnyoneCanPay       = types.SigHashAnyoneCanPay
	SigHashAllAnyoneCanPay    = types.SigHashAllAnyoneCanPay
	SigHashNoneAnyoneCanPay   = types.SigHashNoneAnyoneCanPay
	SigHashSingleAnyoneCanPay = types.SigHashSingleAnyoneCanPay
)

// SignatureManager 定义承诺签名相关接口
//
// 🎯 **签名标准（Bitcoin兼容）**：
// - **签名算法**：ECDSA with secp256k1
// - **随机数**：RFC 6979确定性生成（HMAC-SHA256）
// - **签名格式**：DER编码 + 1字节签名哈希类型
// - **规范化**：低S值（s ≤ N/2），编码前完成
//
// 🔧 **签名流程**：
// 承诺哈希 → RFC6979随机数 → ECDSA签名 → 低S规范化 → DER编码 → 追加sighash字节
type SignatureManager interface {
	// SignCommitment 对32字节承诺哈希签名（默认SIGHASH_ALL）
	//
	// 确定性签名：同一(privateKey, commitment)输入总是产生字节一致的输出。
	//
	// 参数：
	//   - privateKey: 32字节私钥
	//   - commitment: 32字节承诺哈希（已由调用方哈希完成，不会被再次哈希）
	//
	// 返回：
	//   - []byte: DER编码签名 + 0x01（SIGHASH_ALL），通常70-72字节
	//   - error: 签名失败时的错误
	SignCommitment(privateKey []byte, commitment []byte) ([]byte, error)

	// SignCommitmentWithHashType 指定签名哈希类型的承诺签名
	//
	// 参数：
	//   - privateKey: 32字节私钥
	//   - commitment: 32字节承诺哈希
	//   - sigHashType: 追加在DER签名末尾的签名哈希类型
	//
	// 返回：
	//   - []byte: DER编码签名 + 1字节签名哈希类型
	//   - error: 签名失败时的错误
	SignCommitmentWithHashType(privateKey []byte, commitment []byte, sigHashType SignatureHashType) ([]byte, error)

	// VerifyCommitmentSignature 验证承诺签名
	//
	// 剥离末尾的签名哈希字节后解析DER并验证。
	//
	// 参数：
	//   - commitment: 32字节承诺哈希
	//   - signature: DER编码签名 + 1字节签名哈希类型
	//   - publicKey: 33字节压缩公钥
	//
	// 返回：
	//   - bool: 签名是否有效
	VerifyCommitmentSignature(commitment []byte, signature []byte, publicKey []byte) bool
}
