package witness

import (
	"fmt"

	"github.com/wesign/v1/internal/core/infrastructure/crypto/key"
	cryptointf "github.com/wesign/v1/pkg/interfaces/infrastructure/crypto"
	"github.com/wesign/v1/pkg/types"
)

// 确保实现了接口
var (
	_ cryptointf.WitnessManager = (*WitnessService)(nil)
	_ cryptointf.WitnessStack   = (*Stack)(nil)
)

// P2WPKH见证栈常量
const (
	// P2WPKHWitnessItems P2WPKH见证栈固定项数：[签名blob, 压缩公钥]
	P2WPKHWitnessItems = 2
)

// Stack P2WPKH见证栈
//
// 按序存放的字节项。每次签名操作新建一个实例，构建后不可变：
// Items 返回副本，Serialize 只读取不修改。
type Stack struct {
	items [][]byte
}

// newStack 由既有项构造见证栈（持有传入切片，调用方不得再修改）
func newStack(items [][]byte) *Stack {
	return &Stack{items: items}
}

// Items 返回见证栈的有序项（深拷贝，保持不可变语义）
func (s *Stack) Items() [][]byte {
	out := make([][]byte, len(s.items))
	for i, item := range s.items {
		cp := make([]byte, len(item))
		copy(cp, item)
		out[i] = cp
	}
	return out
}

// Serialize 序列化见证栈
//
// 布局：1字节项数，随后每项为1字节长度前缀 + 项字节。
// 长度前缀反映各项的实际序列化长度（签名长度可变，公钥恒为33）。
func (s *Stack) Serialize() []byte {
	total := 1
	for _, item := range s.items {
		total += 1 + len(item)
	}

	out := make([]byte, 0, total)
	out = append(out, byte(len(s.items)))
	for _, item := range s.items {
		out = append(out, byte(len(item)))
		out = append(out, item...)
	}
	return out
}

// WitnessService 提供P2WPKH见证栈构建功能
//
// 🎯 **设计原则**：
// - 无状态：每次调用都是输入的纯函数，无共享可变状态
// - 依赖注入：签名由SignatureManager完成，公钥派生由KeyManager完成
// - 单遍组装：获得签名与公钥后一次性完成字节布局
type WitnessService struct {
	keyManager *key.KeyManager
	signer     cryptointf.SignatureManager
}

// NewWitnessService 创建新的见证构建服务
func NewWitnessService(keyManager *key.KeyManager, signer cryptointf.SignatureManager) *WitnessService {
	return &WitnessService{
		keyManager: keyManager,
		signer:     signer,
	}
}

// BuildP2WPKHWitness 构建P2WPKH输入的见证栈
//
// 组装 [签名blob, 压缩公钥] 两项。序列化后的总长度为
// 1 + 1 + len(sig) + 1 + 33 字节。任一子调用失败则整体失败，
// 不产生部分输出。
//
// 参数：
//   - privateKey: 32字节私钥
//   - commitment: 32字节承诺哈希
//
// 返回：
//   - cryptointf.WitnessStack: 构建完成的见证栈（不可变）
//   - error: 构建失败时的错误
func (ws *WitnessService) BuildP2WPKHWitness(privateKey []byte, commitment []byte) (cryptointf.WitnessStack, error) {
	// 获得签名blob（DER + sighash字节）
	sigBlob, err := ws.signer.SignCommitment(privateKey, commitment)
	if err != nil {
		return nil, fmt.Errorf("见证签名失败: %w", err)
	}

	// 派生压缩公钥
	pubKey, err := ws.keyManager.DerivePublicKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("见证公钥派生失败: %w", err)
	}
	if len(pubKey) != types.CompressedPublicKeyLength {
		return nil, fmt.Errorf("压缩公钥长度异常: %d, 期望%d字节", len(pubKey), types.CompressedPublicKeyLength)
	}

	return newStack([][]byte{sigBlob, pubKey}), nil
}
