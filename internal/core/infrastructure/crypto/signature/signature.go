package signature

import (
	"errors"
	"fmt"

	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/wesign/v1/internal/core/infrastructure/crypto/key"
	"github.com/wesign/v1/internal/core/infrastructure/crypto/secp256k1"
	cryptointf "github.com/wesign/v1/pkg/interfaces/infrastructure/crypto"
	"github.com/wesign/v1/pkg/types"
)

// 确保SignatureService实现了cryptointf.SignatureManager接口
var _ cryptointf.SignatureManager = (*SignatureService)(nil)

// 错误定义
var (
	ErrInvalidCommitmentLength = errors.New("无效的承诺哈希长度")
	ErrCurveOperationFailed    = errors.New("曲线运算失败")
)

// WESIGN签名系统常量
const (
	// CommitmentLength 承诺哈希长度（32字节，已由调用方哈希完成）
	CommitmentLength = types.CommitmentLength

	// MinSignatureBlobLength 签名blob最小长度（最短DER + 1字节sighash）
	MinSignatureBlobLength = minDERSigLen + 1

	// MaxSignatureBlobLength 签名blob最大长度（最长DER + 1字节sighash）
	MaxSignatureBlobLength = maxDERSigLen + 1
)

// SignatureService 提供承诺哈希的确定性数字签名功能
//
// 🎯 **设计原则**：
// - RFC 6979确定性随机数：同一(私钥, 承诺)输入总是产生字节一致的签名
// - 低S规范化（BIP62）：编码前完成一次确定性的条件取反，绝不输出高S签名
// - DER编码：最小长度整数编码，追加1字节签名哈希类型
// - 曲线运算（标量乘法、模逆）委托给经过审计的secp256k1库
//
// 所有操作无共享可变状态，可安全并发调用。
type SignatureService struct {
	keyManager *key.KeyManager
	curve      *secp256k1.Curve
}

// NewSignatureService 创建新的签名服务
func NewSignatureService(keyManager *key.KeyManager) *SignatureService {
	return &SignatureService{
		keyManager: keyManager,
		curve:      secp256k1.NewCurve(),
	}
}

// SignCommitment 对32字节承诺哈希签名（默认SIGHASH_ALL）
//
// 参数：
//   - privateKey: 32字节私钥
//   - commitment: 32字节承诺哈希（不会被再次哈希）
//
// 返回：
//   - []byte: DER编码签名 + 0x01（SIGHASH_ALL），通常70-72字节
//   - error: 签名失败时的错误
func (ss *SignatureService) SignCommitment(privateKey []byte, commitment []byte) ([]byte, error) {
	return ss.SignCommitmentWithHashType(privateKey, commitment, types.SigHashAll)
}

// SignCommitmentWithHashType 指定签名哈希类型的承诺签名
//
// 签名流程：RFC6979随机数 → ECDSA签名 → 低S规范化 → DER编码 → 追加sighash字节。
//
// 参数：
//   - privateKey: 32字节私钥
//   - commitment: 32字节承诺哈希
//   - sigHashType: 追加在DER签名末尾的签名哈希类型
//
// 返回：
//   - []byte: DER编码签名 + 1字节签名哈希类型
//   - error: 签名失败时的错误
func (ss *SignatureService) SignCommitmentWithHashType(privateKey []byte, commitment []byte, sigHashType types.SignatureHashType) ([]byte, error) {
	if len(commitment) != CommitmentLength {
		return nil, fmt.Errorf("%w: %d, 期望%d字节", ErrInvalidCommitmentLength, len(commitment), CommitmentLength)
	}
	if err := ss.keyManager.ValidatePrivateKey(privateKey); err != nil {
		return nil, err
	}

	sig, err := signRFC6979(privateKey, commitment)
	if err != nil {
		return nil, fmt.Errorf("承诺签名失败: %w", err)
	}

	// DER编码并追加签名哈希字节
	der := sig.Serialize()
	blob := make([]byte, 0, len(der)+1)
	blob = append(blob, der...)
	blob = append(blob, sigHashType.Byte())

	return blob, nil
}

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
func (ss *SignatureService) VerifyCommitmentSignature(commitment []byte, signature []byte, publicKey []byte) bool {
	if len(commitment) != CommitmentLength {
		return false
	}
	if len(signature) < MinSignatureBlobLength || len(signature) > MaxSignatureBlobLength {
		return false
	}

	// 末尾字节为签名哈希类型，验证只针对DER部分
	der := signature[:len(signature)-1]
	return ss.curve.VerifyDERSignature(publicKey, commitment, der)
}

// signRFC6979 按RFC 6979与BIP 62生成确定性ECDSA签名
//
// 签名算法（GECC 4.29，做两点修改）：
//
//	G = 曲线生成元, N = 曲线阶数, d = 私钥, e = 承诺哈希
//	1. 取随机数 k ∈ [1, N-1]
//	2. 计算 kG
//	3. r = kG.x mod N；r = 0 则回到步骤1
//	4. s = k^-1(e + dr) mod N；s = 0 则回到步骤1
//	5. 返回 (r, s)
//
// 修改A：步骤1不使用随机数，改用RFC6979由(私钥, 承诺, 迭代计数)确定性派生
// 修改B：s > N/2 时取 s = N - s（低S规范化）
//
// 注意：低S规范化是一次确定性的条件取反，不是重试——r、s为零的
// continue分支仅存在于理论上（概率约2^-256），实际输入不会触发。
func signRFC6979(privateKey []byte, hash []byte) (*Signature, error) {
	var d secp.ModNScalar
	overflow := d.SetByteSlice(privateKey)
	defer d.Zero()
	if overflow || d.IsZero() {
		return nil, key.ErrInvalidPrivateKey
	}

	for iteration := uint32(0); ; iteration++ {
		// 步骤1（修改A）：确定性随机数 k ∈ [1, N-1]
		k := secp.NonceRFC6979(privateKey, hash, nil, nil, iteration)

		// 步骤2：计算 kG（仿射坐标）
		var kG secp.JacobianPoint
		secp.ScalarBaseMultNonConst(k, &kG)
		kG.ToAffine()
		if kG.X.IsZero() && kG.Y.IsZero() {
			k.Zero()
			return nil, fmt.Errorf("%w: 标量乘法得到无穷远点", ErrCurveOperationFailed)
		}

		// 步骤3：r = kG.x mod N
		var xBytes [32]byte
		kG.X.PutBytes(&xBytes)
		var r secp.ModNScalar
		r.SetBytes(&xBytes)
		if r.IsZero() {
			k.Zero()
			continue
		}

		// e = 承诺哈希 mod N（仅用于模N运算，取模是正确的）
		var e secp.ModNScalar
		e.SetByteSlice(hash)

		// 步骤4：s = k^-1(e + dr) mod N
		kInv := new(secp.ModNScalar).InverseValNonConst(k)
		s := new(secp.ModNScalar).Mul2(&d, &r).Add(&e).Mul(kInv)
		k.Zero()
		if s.IsZero() {
			continue
		}

		// 修改B：低S规范化（一次确定性的条件取反）
		if s.IsOverHalfOrder() {
			s.Negate()
		}

		// 步骤5：返回 (r, s)
		return NewSignature(&r, s), nil
	}
}
