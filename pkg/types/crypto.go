// Package types provides cryptographic type definitions.
package types

// 基础长度常量（Bitcoin兼容标准）
const (
	// PrivateKeyLength 私钥长度（32字节大端标量）
	PrivateKeyLength = 32

	// CommitmentLength 承诺哈希长度（32字节消息摘要）
	CommitmentLength = 32

	// CompressedPublicKeyLength 压缩公钥长度（1字节前缀 + 32字节X坐标）
	CompressedPublicKeyLength = 33

	// WitnessProgramLength P2WPKH见证程序长度（hash160输出）
	WitnessProgramLength = 20
)

// SignatureHashType 签名哈希类型
//
// 标识签名承诺覆盖交易的哪些部分，序列化时追加在DER签名末尾（1字节）。
// 本仓库的签名器默认使用 SigHashAll。
type SignatureHashType uint32

const (
	SigHashAll                SignatureHashType = 0x01
	SigHashNone               SignatureHashType = 0x02
	SigHashSingle             SignatureHashType = 0x03
	SigHashAnyoneCanPay       SignatureHashType = 0x80
	SigHashAllAnyoneCanPay    SignatureHashType = 0x81
	SigHashNoneAnyoneCanPay   SignatureHashType = 0x82
	SigHashSingleAnyoneCanPay SignatureHashType = 0x83
)

// Byte 返回追加到签名末尾的单字节编码
func (s SignatureHashType) Byte() byte {
	return byte(s)
}

// String 返回签名哈希类型的可读名称
func (s SignatureHashType) String() string {
	switch s {
	case SigHashAll:
		return "SIGHASH_ALL"
	case SigHashNone:
		return "SIGHASH_NONE"
	case SigHashSingle:
		return "SIGHASH_SINGLE"
	case SigHashAllAnyoneCanPay:
		return "SIGHASH_ALL|ANYONECANPAY"
	case SigHashNoneAnyoneCanPay:
		return "SIGHASH_NONE|ANYONECANPAY"
	case SigHashSingleAnyoneCanPay:
		return "SIGHASH_SINGLE|ANYONECANPAY"
	default:
		return "unknown"
	}
}
